package core

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"planner/internal/models"
)

const exportTimeLayout = "20060102_150405"

// ExportBoard renders a plain-text report of the board's current state,
// writes it under the export directory and returns the generated file name.
func (p *Planner) ExportBoard(boardID string) (string, error) {
	board, ok, err := p.boards.Get(boardID)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", notFound("board")
	}

	tasks, err := p.tasks.Filter(func(t models.Task) bool { return t.BoardID == boardID })
	if err != nil {
		return "", err
	}
	// Stored order is not meaningful; report in creation order.
	sort.Slice(tasks, func(i, j int) bool {
		if !tasks[i].CreationTime.Equal(tasks[j].CreationTime) {
			return tasks[i].CreationTime.Before(tasks[j].CreationTime)
		}
		return tasks[i].Title < tasks[j].Title
	})

	var report strings.Builder
	report.WriteString("BOARD EXPORT REPORT\n")
	report.WriteString("==================\n\n")
	fmt.Fprintf(&report, "Board: %s\n", board.Name)
	fmt.Fprintf(&report, "Description: %s\n", board.Description)
	fmt.Fprintf(&report, "Status: %s\n", board.Status)
	fmt.Fprintf(&report, "Created: %s\n", board.CreationTime.Format(time.RFC3339))
	if board.EndTime != nil {
		fmt.Fprintf(&report, "Closed: %s\n", board.EndTime.Format(time.RFC3339))
	}
	fmt.Fprintf(&report, "\nTASKS (%d total)\n", len(tasks))
	report.WriteString(strings.Repeat("=", 50) + "\n\n")

	counts := map[string]int{
		models.TaskOpen:       0,
		models.TaskInProgress: 0,
		models.TaskComplete:   0,
	}
	for i, task := range tasks {
		assignee := "Unknown User"
		if user, ok, err := p.users.Get(task.UserID); err != nil {
			return "", err
		} else if ok {
			assignee = user.DisplayName
		}
		counts[task.Status]++

		fmt.Fprintf(&report, "%d. %s [%s]\n", i+1, task.Title, task.Status)
		fmt.Fprintf(&report, "   Assigned to: %s\n", assignee)
		fmt.Fprintf(&report, "   Description: %s\n", task.Description)
		fmt.Fprintf(&report, "   Created: %s\n\n", task.CreationTime.Format(time.RFC3339))
	}

	report.WriteString("\nSUMMARY\n")
	report.WriteString("-------\n")
	fmt.Fprintf(&report, "Open: %d\n", counts[models.TaskOpen])
	fmt.Fprintf(&report, "In Progress: %d\n", counts[models.TaskInProgress])
	fmt.Fprintf(&report, "Complete: %d\n", counts[models.TaskComplete])
	fmt.Fprintf(&report, "Total: %d\n", len(tasks))

	if err := os.MkdirAll(p.exportDir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	filename := fmt.Sprintf("board_%s_%s.txt", boardID, p.now().Format(exportTimeLayout))
	if err := os.WriteFile(filepath.Join(p.exportDir, filename), []byte(report.String()), 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return filename, nil
}
