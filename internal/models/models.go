package models

import "time"

// Meta carries the fields every stored record shares. The store assigns both
// on create; neither changes afterwards.
type Meta struct {
	ID           string    `json:"id"`
	CreationTime time.Time `json:"creation_time"`
}

// GetMeta exposes the embedded meta block to the generic store.
func (m *Meta) GetMeta() *Meta { return m }

// User is a person that can administer teams and be assigned tasks.
type User struct {
	Meta
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
}

// Team groups users under a single admin.
type Team struct {
	Meta
	Name        string `json:"name"`
	Description string `json:"description"`
	Admin       string `json:"admin"`
}

// Membership is the join record linking one user to one team. At most one
// row exists per (UserID, TeamID) pair.
type Membership struct {
	Meta
	UserID string `json:"user_id"`
	TeamID string `json:"team_id"`
}

// Board collects tasks for a team. Its status only ever moves OPEN to CLOSED.
type Board struct {
	Meta
	Name        string     `json:"name"`
	Description string     `json:"description"`
	TeamID      string     `json:"team_id"`
	Status      string     `json:"status"`
	EndTime     *time.Time `json:"end_time,omitempty"`
}

// Task is a single card on a board, assigned to one user.
type Task struct {
	Meta
	Title       string `json:"title"`
	Description string `json:"description"`
	UserID      string `json:"user_id"`
	BoardID     string `json:"board_id"`
	Status      string `json:"status"`
}

// Board statuses.
const (
	BoardOpen   = "OPEN"
	BoardClosed = "CLOSED"
)

// Task statuses.
const (
	TaskOpen       = "OPEN"
	TaskInProgress = "IN_PROGRESS"
	TaskComplete   = "COMPLETE"
)

// ValidTaskStatuses enumerates the statuses a task may carry.
var ValidTaskStatuses = map[string]struct{}{
	TaskOpen:       {},
	TaskInProgress: {},
	TaskComplete:   {},
}
