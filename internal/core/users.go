package core

import (
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"planner/internal/models"
)

// Display names accept more characters on update than on create, matching
// the registry's original contract.
const (
	maxDisplayNameCreate = 64
	maxDisplayNameUpdate = 128
)

// UserInfo is the projection returned for a single user.
type UserInfo struct {
	Name         string    `json:"name"`
	DisplayName  string    `json:"display_name"`
	CreationTime time.Time `json:"creation_time"`
}

// CreateUser registers a new user and returns its id. The name must be
// unique across all users.
func (p *Planner) CreateUser(name, displayName string) (string, error) {
	name = strings.TrimSpace(name)
	displayName = strings.TrimSpace(displayName)

	if !validName(name) {
		return "", validationf("name is required and must be max %d characters", maxNameLen)
	}
	if utf8.RuneCountInString(displayName) > maxDisplayNameCreate {
		return "", validationf("display name must be max %d characters", maxDisplayNameCreate)
	}

	taken, err := p.users.Filter(func(u models.User) bool { return u.Name == name })
	if err != nil {
		return "", err
	}
	if len(taken) > 0 {
		return "", validationf("user name must be unique")
	}

	id, err := p.users.Create(models.User{Name: name, DisplayName: displayName})
	if err != nil {
		return "", err
	}
	p.logger.Info("user created", slog.String("id", id), slog.String("name", name))
	return id, nil
}

// DescribeUser returns one user's details.
func (p *Planner) DescribeUser(id string) (UserInfo, error) {
	user, ok, err := p.users.Get(id)
	if err != nil {
		return UserInfo{}, err
	}
	if !ok {
		return UserInfo{}, notFound("user")
	}
	return UserInfo{Name: user.Name, DisplayName: user.DisplayName, CreationTime: user.CreationTime}, nil
}

// UpdateUser replaces a user's display name. The name itself is immutable.
func (p *Planner) UpdateUser(id, displayName string) error {
	if _, ok, err := p.users.Get(id); err != nil {
		return err
	} else if !ok {
		return notFound("user")
	}

	displayName = strings.TrimSpace(displayName)
	if utf8.RuneCountInString(displayName) > maxDisplayNameUpdate {
		return validationf("display name must be max %d characters", maxDisplayNameUpdate)
	}

	applied, err := p.users.Update(id, func(u *models.User) {
		u.DisplayName = displayName
	})
	if err != nil {
		return err
	}
	if !applied {
		return notFound("user")
	}
	return nil
}

// ListUsers returns every user's details.
func (p *Planner) ListUsers() ([]UserInfo, error) {
	users, err := p.users.All()
	if err != nil {
		return nil, err
	}
	infos := make([]UserInfo, 0, len(users))
	for _, u := range users {
		infos = append(infos, UserInfo{Name: u.Name, DisplayName: u.DisplayName, CreationTime: u.CreationTime})
	}
	return infos, nil
}

// UserTeams returns the teams the user belongs to. Membership rows whose
// team row is missing are skipped.
func (p *Planner) UserTeams(id string) ([]TeamInfo, error) {
	if _, ok, err := p.users.Get(id); err != nil {
		return nil, err
	} else if !ok {
		return nil, notFound("user")
	}

	links, err := p.memberships.Filter(func(m models.Membership) bool { return m.UserID == id })
	if err != nil {
		return nil, err
	}

	teams := make([]TeamInfo, 0, len(links))
	for _, link := range links {
		team, ok, err := p.teams.Get(link.TeamID)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		teams = append(teams, TeamInfo{Name: team.Name, Description: team.Description, CreationTime: team.CreationTime})
	}
	return teams, nil
}
