package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type createUserRequest struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
}

type userIDRequest struct {
	ID string `json:"id"`
}

type updateUserRequest struct {
	ID   string `json:"id"`
	User struct {
		DisplayName string `json:"display_name"`
	} `json:"user"`
}

// handleCreateUser registers a new user.
func (s *Server) handleCreateUser(c *gin.Context) {
	var req createUserRequest
	if !s.bindJSON(c, &req) {
		return
	}
	id, err := s.planner.CreateUser(req.Name, req.DisplayName)
	if err != nil {
		s.respondCoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// handleListUsers returns every user.
func (s *Server) handleListUsers(c *gin.Context) {
	users, err := s.planner.ListUsers()
	if err != nil {
		s.respondCoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// handleDescribeUser returns one user's details.
func (s *Server) handleDescribeUser(c *gin.Context) {
	var req userIDRequest
	if !s.bindJSON(c, &req) {
		return
	}
	info, err := s.planner.DescribeUser(req.ID)
	if err != nil {
		s.respondCoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

// handleUpdateUser replaces a user's display name.
func (s *Server) handleUpdateUser(c *gin.Context) {
	var req updateUserRequest
	if !s.bindJSON(c, &req) {
		return
	}
	if err := s.planner.UpdateUser(req.ID, req.User.DisplayName); err != nil {
		s.respondCoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// handleUserTeams returns the teams a user belongs to.
func (s *Server) handleUserTeams(c *gin.Context) {
	var req userIDRequest
	if !s.bindJSON(c, &req) {
		return
	}
	teams, err := s.planner.UserTeams(req.ID)
	if err != nil {
		s.respondCoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, teams)
}
