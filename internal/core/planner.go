// Package core implements the record-keeping rules of the planner: user and
// team registries, the board/task engine and the report exporter. All state
// goes through the typed tables of a single storage.Store; entities refer to
// each other only by stored id.
package core

import (
	"log/slog"
	"time"
	"unicode/utf8"

	"planner/internal/models"
	"planner/internal/storage"
)

// Field length limits shared by every entity.
const (
	maxNameLen        = 64
	maxDescriptionLen = 128
)

// Planner exposes every operation of the engine. One instance owns the five
// entity tables; calls are synchronous and return either a result value or a
// *ValidationError / *NotFoundError.
type Planner struct {
	users       *storage.Table[models.User, *models.User]
	teams       *storage.Table[models.Team, *models.Team]
	memberships *storage.Table[models.Membership, *models.Membership]
	boards      *storage.Table[models.Board, *models.Board]
	tasks       *storage.Table[models.Task, *models.Task]

	exportDir string
	logger    *slog.Logger
	now       func() time.Time
}

// New binds a planner to its store. Exported board reports are written
// under exportDir.
func New(store *storage.Store, exportDir string, logger *slog.Logger) *Planner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Planner{
		users:       storage.NewTable[models.User](store, storage.TableUsers),
		teams:       storage.NewTable[models.Team](store, storage.TableTeams),
		memberships: storage.NewTable[models.Membership](store, storage.TableMemberships),
		boards:      storage.NewTable[models.Board](store, storage.TableBoards),
		tasks:       storage.NewTable[models.Task](store, storage.TableTasks),
		exportDir:   exportDir,
		logger:      logger,
		now:         time.Now,
	}
}

// Length limits count characters, not bytes; multibyte names get the same
// budget as ASCII ones.
func validName(name string) bool {
	return name != "" && utf8.RuneCountInString(name) <= maxNameLen
}

func validDescription(description string) bool {
	return utf8.RuneCountInString(description) <= maxDescriptionLen
}
