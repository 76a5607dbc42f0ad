package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"planner/internal/core"
)

type createTeamRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Admin       string `json:"admin"`
}

type teamIDRequest struct {
	ID string `json:"id"`
}

type updateTeamRequest struct {
	ID   string          `json:"id"`
	Team core.TeamUpdate `json:"team"`
}

type teamUsersRequest struct {
	ID    string   `json:"id"`
	Users []string `json:"users"`
}

// handleCreateTeam registers a new team with its admin.
func (s *Server) handleCreateTeam(c *gin.Context) {
	var req createTeamRequest
	if !s.bindJSON(c, &req) {
		return
	}
	id, err := s.planner.CreateTeam(req.Name, req.Description, req.Admin)
	if err != nil {
		s.respondCoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// handleListTeams returns every team.
func (s *Server) handleListTeams(c *gin.Context) {
	teams, err := s.planner.ListTeams()
	if err != nil {
		s.respondCoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, teams)
}

// handleDescribeTeam returns one team's details.
func (s *Server) handleDescribeTeam(c *gin.Context) {
	var req teamIDRequest
	if !s.bindJSON(c, &req) {
		return
	}
	detail, err := s.planner.DescribeTeam(req.ID)
	if err != nil {
		s.respondCoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// handleUpdateTeam applies the present fields of the update payload.
func (s *Server) handleUpdateTeam(c *gin.Context) {
	var req updateTeamRequest
	if !s.bindJSON(c, &req) {
		return
	}
	if err := s.planner.UpdateTeam(req.ID, req.Team); err != nil {
		s.respondCoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// handleAddUsers adds users to a team's roster.
func (s *Server) handleAddUsers(c *gin.Context) {
	var req teamUsersRequest
	if !s.bindJSON(c, &req) {
		return
	}
	if err := s.planner.AddUsersToTeam(req.ID, req.Users); err != nil {
		s.respondCoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// handleRemoveUsers removes users from a team's roster.
func (s *Server) handleRemoveUsers(c *gin.Context) {
	var req teamUsersRequest
	if !s.bindJSON(c, &req) {
		return
	}
	if err := s.planner.RemoveUsersFromTeam(req.ID, req.Users); err != nil {
		s.respondCoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// handleTeamUsers returns a team's current roster.
func (s *Server) handleTeamUsers(c *gin.Context) {
	var req teamIDRequest
	if !s.bindJSON(c, &req) {
		return
	}
	members, err := s.planner.ListTeamUsers(req.ID)
	if err != nil {
		s.respondCoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}
