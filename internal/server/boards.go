package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type createBoardRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	TeamID      string `json:"team_id"`
}

type boardIDRequest struct {
	ID string `json:"id"`
}

type createTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	UserID      string `json:"user_id"`
	BoardID     string `json:"board_id"`
}

type updateTaskRequest struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// handleCreateBoard opens a new board for a team.
func (s *Server) handleCreateBoard(c *gin.Context) {
	var req createBoardRequest
	if !s.bindJSON(c, &req) {
		return
	}
	id, err := s.planner.CreateBoard(req.Name, req.Description, req.TeamID)
	if err != nil {
		s.respondCoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// handleCloseBoard closes a board once all its tasks are complete.
func (s *Server) handleCloseBoard(c *gin.Context) {
	var req boardIDRequest
	if !s.bindJSON(c, &req) {
		return
	}
	if err := s.planner.CloseBoard(req.ID); err != nil {
		s.respondCoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// handleListBoards returns a team's open boards.
func (s *Server) handleListBoards(c *gin.Context) {
	var req boardIDRequest
	if !s.bindJSON(c, &req) {
		return
	}
	boards, err := s.planner.ListBoards(req.ID)
	if err != nil {
		s.respondCoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, boards)
}

// handleExportBoard writes a board report and returns its file name.
func (s *Server) handleExportBoard(c *gin.Context) {
	var req boardIDRequest
	if !s.bindJSON(c, &req) {
		return
	}
	name, err := s.planner.ExportBoard(req.ID)
	if err != nil {
		s.respondCoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"out_file": name})
}

// handleCreateTask puts a new task on an open board.
func (s *Server) handleCreateTask(c *gin.Context) {
	var req createTaskRequest
	if !s.bindJSON(c, &req) {
		return
	}
	id, err := s.planner.AddTask(req.Title, req.Description, req.UserID, req.BoardID)
	if err != nil {
		s.respondCoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// handleUpdateTask overwrites a task's status.
func (s *Server) handleUpdateTask(c *gin.Context) {
	var req updateTaskRequest
	if !s.bindJSON(c, &req) {
		return
	}
	if err := s.planner.UpdateTaskStatus(req.ID, req.Status); err != nil {
		s.respondCoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
