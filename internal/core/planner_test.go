package core

import (
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"planner/internal/storage"
	"planner/internal/storage/jsonfile"
)

func newTestPlanner(t *testing.T) *Planner {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.Open(jsonfile.New(filepath.Join(dir, "db")), testLogger())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return New(store, filepath.Join(dir, "out"), testLogger())
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func wantValidation(t *testing.T, err error) {
	t.Helper()
	var validation *ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func wantNotFound(t *testing.T, err error) {
	t.Helper()
	var missing *NotFoundError
	if !errors.As(err, &missing) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func mustCreateUser(t *testing.T, p *Planner, name string) string {
	t.Helper()
	id, err := p.CreateUser(name, "")
	if err != nil {
		t.Fatalf("create user %s: %v", name, err)
	}
	return id
}

func mustCreateTeam(t *testing.T, p *Planner, name, adminID string) string {
	t.Helper()
	id, err := p.CreateTeam(name, "", adminID)
	if err != nil {
		t.Fatalf("create team %s: %v", name, err)
	}
	return id
}

func mustCreateBoard(t *testing.T, p *Planner, name, teamID string) string {
	t.Helper()
	id, err := p.CreateBoard(name, "", teamID)
	if err != nil {
		t.Fatalf("create board %s: %v", name, err)
	}
	return id
}
