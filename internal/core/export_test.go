package core

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"planner/internal/models"
)

func TestExportBoardReport(t *testing.T) {
	p := newTestPlanner(t)
	alice, err := p.CreateUser("alice", "Alice Liddell")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	ghost := mustCreateUser(t, p, "ghost")
	alpha := mustCreateTeam(t, p, "alpha", alice)
	board, err := p.CreateBoard("sprint-1", "first sprint", alpha)
	if err != nil {
		t.Fatalf("create board: %v", err)
	}

	done, err := p.AddTask("setup-ci", "set up ci", alice, board)
	if err != nil {
		t.Fatalf("add task: %v", err)
	}
	if _, err := p.AddTask("readme", "write readme", ghost, board); err != nil {
		t.Fatalf("add task: %v", err)
	}
	if err := p.UpdateTaskStatus(done, models.TaskComplete); err != nil {
		t.Fatalf("complete task: %v", err)
	}

	// Drop the second assignee's record to exercise the missing-user fallback.
	if _, err := p.users.Delete(ghost); err != nil {
		t.Fatalf("delete user: %v", err)
	}

	name, err := p.ExportBoard(board)
	if err != nil {
		t.Fatalf("export board: %v", err)
	}
	if !strings.HasPrefix(name, "board_"+board+"_") || !strings.HasSuffix(name, ".txt") {
		t.Fatalf("unexpected report name %q", name)
	}

	raw, err := os.ReadFile(filepath.Join(p.exportDir, name))
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	report := string(raw)

	for _, want := range []string{
		"BOARD EXPORT REPORT",
		"Board: sprint-1",
		"Description: first sprint",
		"Status: OPEN",
		"TASKS (2 total)",
		"1. setup-ci [COMPLETE]",
		"Assigned to: Alice Liddell",
		"2. readme [OPEN]",
		"Assigned to: Unknown User",
		"Open: 1",
		"In Progress: 0",
		"Complete: 1",
		"Total: 2",
	} {
		if !strings.Contains(report, want) {
			t.Fatalf("report missing %q:\n%s", want, report)
		}
	}
}

func TestExportClosedBoardIncludesCloseTime(t *testing.T) {
	p := newTestPlanner(t)
	alice := mustCreateUser(t, p, "alice")
	alpha := mustCreateTeam(t, p, "alpha", alice)
	board := mustCreateBoard(t, p, "sprint-1", alpha)
	if err := p.CloseBoard(board); err != nil {
		t.Fatalf("close board: %v", err)
	}

	name, err := p.ExportBoard(board)
	if err != nil {
		t.Fatalf("export board: %v", err)
	}
	raw, err := os.ReadFile(filepath.Join(p.exportDir, name))
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !strings.Contains(string(raw), "Status: CLOSED") || !strings.Contains(string(raw), "Closed: ") {
		t.Fatalf("closed board report incomplete:\n%s", raw)
	}
}

func TestExportUnknownBoard(t *testing.T) {
	p := newTestPlanner(t)
	_, err := p.ExportBoard("nope")
	wantNotFound(t, err)
}
