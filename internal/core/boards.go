package core

import (
	"log/slog"
	"strings"

	"planner/internal/models"
)

// BoardSummary is the projection returned when listing a team's open boards.
type BoardSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CreateBoard opens a new board for a team and returns its id. The name
// must be unique among the team's boards; boards of other teams may reuse it.
func (p *Planner) CreateBoard(name, description, teamID string) (string, error) {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)

	if !validName(name) {
		return "", validationf("name is required and must be max %d characters", maxNameLen)
	}
	if !validDescription(description) {
		return "", validationf("description must be max %d characters", maxDescriptionLen)
	}
	if teamID == "" {
		return "", validationf("team id is required")
	}
	if _, ok, err := p.teams.Get(teamID); err != nil {
		return "", err
	} else if !ok {
		return "", validationf("team not found")
	}

	taken, err := p.boards.Filter(func(b models.Board) bool {
		return b.TeamID == teamID && b.Name == name
	})
	if err != nil {
		return "", err
	}
	if len(taken) > 0 {
		return "", validationf("board name must be unique for a team")
	}

	id, err := p.boards.Create(models.Board{
		Name:        name,
		Description: description,
		TeamID:      teamID,
		Status:      models.BoardOpen,
	})
	if err != nil {
		return "", err
	}
	p.logger.Info("board created", slog.String("id", id), slog.String("team_id", teamID))
	return id, nil
}

// CloseBoard moves a board to CLOSED and stamps its end time. The board may
// only close once every one of its tasks is COMPLETE; a board without tasks
// closes trivially.
func (p *Planner) CloseBoard(boardID string) error {
	if _, ok, err := p.boards.Get(boardID); err != nil {
		return err
	} else if !ok {
		return notFound("board")
	}

	tasks, err := p.tasks.Filter(func(t models.Task) bool { return t.BoardID == boardID })
	if err != nil {
		return err
	}
	for _, task := range tasks {
		if task.Status != models.TaskComplete {
			return validationf("cannot close board with incomplete tasks")
		}
	}

	end := p.now()
	_, err = p.boards.Update(boardID, func(b *models.Board) {
		b.Status = models.BoardClosed
		b.EndTime = &end
	})
	return err
}

// AddTask puts a new OPEN task on a board. Tasks can only be added to OPEN
// boards; the title must be unique within the board and the assignee must
// be an existing user.
func (p *Planner) AddTask(title, description, userID, boardID string) (string, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)

	if !validName(title) {
		return "", validationf("title is required and must be max %d characters", maxNameLen)
	}
	if !validDescription(description) {
		return "", validationf("description must be max %d characters", maxDescriptionLen)
	}
	if userID == "" {
		return "", validationf("user id is required")
	}
	if boardID == "" {
		return "", validationf("board id is required")
	}

	board, ok, err := p.boards.Get(boardID)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", validationf("board not found")
	}
	if board.Status != models.BoardOpen {
		return "", validationf("can only add tasks to open boards")
	}

	if _, ok, err := p.users.Get(userID); err != nil {
		return "", err
	} else if !ok {
		return "", validationf("user not found")
	}

	taken, err := p.tasks.Filter(func(t models.Task) bool {
		return t.BoardID == boardID && t.Title == title
	})
	if err != nil {
		return "", err
	}
	if len(taken) > 0 {
		return "", validationf("task title must be unique for a board")
	}

	return p.tasks.Create(models.Task{
		Title:       title,
		Description: description,
		UserID:      userID,
		BoardID:     boardID,
		Status:      models.TaskOpen,
	})
}

// UpdateTaskStatus overwrites a task's status with one of the three valid
// values. Any status may follow any other; no ordering is enforced.
func (p *Planner) UpdateTaskStatus(taskID, status string) error {
	if _, ok := models.ValidTaskStatuses[status]; !ok {
		return validationf("status must be %s, %s, or %s",
			models.TaskOpen, models.TaskInProgress, models.TaskComplete)
	}

	applied, err := p.tasks.Update(taskID, func(t *models.Task) {
		t.Status = status
	})
	if err != nil {
		return err
	}
	if !applied {
		return notFound("task")
	}
	return nil
}

// ListBoards returns the team's OPEN boards. Closed boards are invisible
// to this query.
func (p *Planner) ListBoards(teamID string) ([]BoardSummary, error) {
	if _, ok, err := p.teams.Get(teamID); err != nil {
		return nil, err
	} else if !ok {
		return nil, notFound("team")
	}

	boards, err := p.boards.Filter(func(b models.Board) bool {
		return b.TeamID == teamID && b.Status == models.BoardOpen
	})
	if err != nil {
		return nil, err
	}

	summaries := make([]BoardSummary, 0, len(boards))
	for _, b := range boards {
		summaries = append(summaries, BoardSummary{ID: b.ID, Name: b.Name})
	}
	return summaries, nil
}
