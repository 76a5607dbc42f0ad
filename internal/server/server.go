package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"planner/internal/core"
)

// Server provides the HTTP handlers for the planner API. Handlers only
// bind JSON, call the core and translate its typed failures; every rule
// lives in the core.
type Server struct {
	engine  *gin.Engine
	planner *core.Planner
	logger  *slog.Logger
}

// New constructs the HTTP server with routes and middleware configured.
func New(planner *core.Planner, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.LoggerWithWriter(gin.DefaultWriter))

	srv := &Server{
		engine:  router,
		planner: planner,
		logger:  logger,
	}

	srv.registerRoutes()
	return srv
}

// Engine exposes the underlying Gin engine.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// registerRoutes wires all API handlers together.
func (s *Server) registerRoutes() {
	api := s.engine.Group("/api")
	{
		api.GET("/healthz", s.handleHealth)

		users := api.Group("/users")
		{
			users.GET("", s.handleListUsers)
			users.POST("/create", s.handleCreateUser)
			users.POST("/describe", s.handleDescribeUser)
			users.PUT("/update", s.handleUpdateUser)
			users.POST("/teams", s.handleUserTeams)
		}

		teams := api.Group("/teams")
		{
			teams.GET("", s.handleListTeams)
			teams.POST("/create", s.handleCreateTeam)
			teams.POST("/describe", s.handleDescribeTeam)
			teams.PUT("/update", s.handleUpdateTeam)
			teams.POST("/add-users", s.handleAddUsers)
			teams.POST("/remove-users", s.handleRemoveUsers)
			teams.POST("/users", s.handleTeamUsers)
		}

		boards := api.Group("/boards")
		{
			boards.POST("/create", s.handleCreateBoard)
			boards.POST("/close", s.handleCloseBoard)
			boards.POST("/list", s.handleListBoards)
			boards.POST("/export", s.handleExportBoard)
		}

		tasks := api.Group("/tasks")
		{
			tasks.POST("/create", s.handleCreateTask)
			tasks.PUT("/update", s.handleUpdateTask)
		}
	}
}

// handleHealth provides a basic readiness endpoint.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// bindJSON decodes the request body, reporting malformed payloads uniformly.
func (s *Server) bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid format"})
		return false
	}
	return true
}

// respondCoreError maps the core's failure kinds onto HTTP statuses.
func (s *Server) respondCoreError(c *gin.Context, err error) {
	var validation *core.ValidationError
	var missing *core.NotFoundError
	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Message})
	case errors.As(err, &missing):
		c.JSON(http.StatusNotFound, gin.H{"error": missing.Error()})
	default:
		s.logger.Error("request failed", slog.String("path", c.FullPath()), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
