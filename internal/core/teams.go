package core

import (
	"log/slog"
	"strings"
	"time"

	"planner/internal/models"
)

// MaxTeamMembers caps a team's roster, admin included.
const MaxTeamMembers = 50

// TeamInfo is the projection returned when listing a user's teams.
type TeamInfo struct {
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	CreationTime time.Time `json:"creation_time"`
}

// TeamDetail extends TeamInfo with the admin user id.
type TeamDetail struct {
	TeamInfo
	Admin string `json:"admin"`
}

// MemberInfo is the projection returned for each team member.
type MemberInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
}

// TeamUpdate carries the optional fields of UpdateTeam. A nil field is left
// unchanged; a present field is validated and applied, so an intentional
// clear of the description is distinguishable from an omitted one.
type TeamUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Admin       *string `json:"admin"`
}

// CreateTeam registers a team and its admin's membership as one unit and
// returns the team id. The admin must be an existing user; if the
// membership write fails the team row is removed again before returning.
func (p *Planner) CreateTeam(name, description, adminID string) (string, error) {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)

	if !validName(name) {
		return "", validationf("name is required and must be max %d characters", maxNameLen)
	}
	if !validDescription(description) {
		return "", validationf("description must be max %d characters", maxDescriptionLen)
	}
	if adminID == "" {
		return "", validationf("admin user id is required")
	}
	if _, ok, err := p.users.Get(adminID); err != nil {
		return "", err
	} else if !ok {
		return "", validationf("admin user not found")
	}

	taken, err := p.teams.Filter(func(t models.Team) bool { return t.Name == name })
	if err != nil {
		return "", err
	}
	if len(taken) > 0 {
		return "", validationf("team name must be unique")
	}

	teamID, err := p.teams.Create(models.Team{Name: name, Description: description, Admin: adminID})
	if err != nil {
		return "", err
	}
	if _, err := p.memberships.Create(models.Membership{UserID: adminID, TeamID: teamID}); err != nil {
		// Undo the team row so no team exists without its admin membership.
		if _, delErr := p.teams.Delete(teamID); delErr != nil {
			p.logger.Error("orphaned team after failed admin membership",
				slog.String("team_id", teamID), slog.String("error", delErr.Error()))
		}
		return "", err
	}

	p.logger.Info("team created", slog.String("id", teamID), slog.String("name", name))
	return teamID, nil
}

// DescribeTeam returns one team's details.
func (p *Planner) DescribeTeam(id string) (TeamDetail, error) {
	team, ok, err := p.teams.Get(id)
	if err != nil {
		return TeamDetail{}, err
	}
	if !ok {
		return TeamDetail{}, notFound("team")
	}
	return teamDetail(team), nil
}

// ListTeams returns every team's details.
func (p *Planner) ListTeams() ([]TeamDetail, error) {
	teams, err := p.teams.All()
	if err != nil {
		return nil, err
	}
	details := make([]TeamDetail, 0, len(teams))
	for _, t := range teams {
		details = append(details, teamDetail(t))
	}
	return details, nil
}

func teamDetail(t models.Team) TeamDetail {
	return TeamDetail{
		TeamInfo: TeamInfo{Name: t.Name, Description: t.Description, CreationTime: t.CreationTime},
		Admin:    t.Admin,
	}
}

// UpdateTeam applies the present fields of upd. A changed name must remain
// globally unique; a new admin must be an existing user and is granted a
// membership row if not already a member, so the admin stays on the roster.
// Granting that row counts against the 50-member cap like any other join.
func (p *Planner) UpdateTeam(id string, upd TeamUpdate) error {
	team, ok, err := p.teams.Get(id)
	if err != nil {
		return err
	}
	if !ok {
		return notFound("team")
	}

	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		if !validName(name) {
			return validationf("name is required and must be max %d characters", maxNameLen)
		}
		if name != team.Name {
			taken, err := p.teams.Filter(func(t models.Team) bool { return t.Name == name })
			if err != nil {
				return err
			}
			if len(taken) > 0 {
				return validationf("team name must be unique")
			}
		}
		upd.Name = &name
	}
	if upd.Description != nil && !validDescription(*upd.Description) {
		return validationf("description must be max %d characters", maxDescriptionLen)
	}
	var joinAdmin bool
	if upd.Admin != nil {
		if _, ok, err := p.users.Get(*upd.Admin); err != nil {
			return err
		} else if !ok {
			return validationf("admin user not found")
		}
		existing, err := p.memberships.Filter(func(m models.Membership) bool {
			return m.UserID == *upd.Admin && m.TeamID == id
		})
		if err != nil {
			return err
		}
		if len(existing) == 0 {
			current, err := p.memberships.Filter(func(m models.Membership) bool { return m.TeamID == id })
			if err != nil {
				return err
			}
			if len(current)+1 > MaxTeamMembers {
				return validationf("cannot exceed %d users per team", MaxTeamMembers)
			}
			joinAdmin = true
		}
	}

	applied, err := p.teams.Update(id, func(t *models.Team) {
		if upd.Name != nil {
			t.Name = *upd.Name
		}
		if upd.Description != nil {
			t.Description = *upd.Description
		}
		if upd.Admin != nil {
			t.Admin = *upd.Admin
		}
	})
	if err != nil {
		return err
	}
	if !applied {
		return notFound("team")
	}

	if joinAdmin {
		_, err = p.memberships.Create(models.Membership{UserID: *upd.Admin, TeamID: id})
		return err
	}
	return nil
}

// AddUsersToTeam adds the given users to the team's roster. Every id must
// resolve to a user before anything is written; users already on the roster
// are skipped and do not count against the cap.
func (p *Planner) AddUsersToTeam(teamID string, userIDs []string) error {
	if _, ok, err := p.teams.Get(teamID); err != nil {
		return err
	} else if !ok {
		return notFound("team")
	}
	if len(userIDs) == 0 {
		return validationf("users list is required")
	}

	for _, userID := range userIDs {
		if _, ok, err := p.users.Get(userID); err != nil {
			return err
		} else if !ok {
			return validationf("user %s not found", userID)
		}
	}

	current, err := p.memberships.Filter(func(m models.Membership) bool { return m.TeamID == teamID })
	if err != nil {
		return err
	}
	onRoster := make(map[string]bool, len(current))
	for _, m := range current {
		onRoster[m.UserID] = true
	}

	newcomers := make([]string, 0, len(userIDs))
	for _, userID := range userIDs {
		if !onRoster[userID] {
			onRoster[userID] = true
			newcomers = append(newcomers, userID)
		}
	}
	if len(current)+len(newcomers) > MaxTeamMembers {
		return validationf("cannot exceed %d users per team", MaxTeamMembers)
	}

	for _, userID := range newcomers {
		if _, err := p.memberships.Create(models.Membership{UserID: userID, TeamID: teamID}); err != nil {
			return err
		}
	}
	return nil
}

// RemoveUsersFromTeam drops the given users from the team's roster. The
// whole call aborts before any delete if the admin is among them; removing
// a non-member is a silent no-op.
func (p *Planner) RemoveUsersFromTeam(teamID string, userIDs []string) error {
	team, ok, err := p.teams.Get(teamID)
	if err != nil {
		return err
	}
	if !ok {
		return notFound("team")
	}
	if len(userIDs) == 0 {
		return validationf("users list is required")
	}

	for _, userID := range userIDs {
		if userID == team.Admin {
			return validationf("cannot remove team admin")
		}
	}

	for _, userID := range userIDs {
		links, err := p.memberships.Filter(func(m models.Membership) bool {
			return m.UserID == userID && m.TeamID == teamID
		})
		if err != nil {
			return err
		}
		for _, link := range links {
			if _, err := p.memberships.Delete(link.ID); err != nil {
				return err
			}
		}
	}
	return nil
}

// ListTeamUsers returns the team's current roster. Membership rows whose
// user record is missing are skipped.
func (p *Planner) ListTeamUsers(teamID string) ([]MemberInfo, error) {
	if _, ok, err := p.teams.Get(teamID); err != nil {
		return nil, err
	} else if !ok {
		return nil, notFound("team")
	}

	links, err := p.memberships.Filter(func(m models.Membership) bool { return m.TeamID == teamID })
	if err != nil {
		return nil, err
	}

	members := make([]MemberInfo, 0, len(links))
	for _, link := range links {
		user, ok, err := p.users.Get(link.UserID)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		members = append(members, MemberInfo{ID: user.ID, Name: user.Name, DisplayName: user.DisplayName})
	}
	return members, nil
}
