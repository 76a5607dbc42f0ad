// Package seed loads a small demo data set for quick manual testing.
package seed

import (
	"fmt"

	"planner/internal/core"
)

// Result lists the ids of everything the seeder created.
type Result struct {
	UserIDs []string `json:"user_ids"`
	TeamID  string   `json:"team_id"`
	BoardID string   `json:"board_id"`
	TaskIDs []string `json:"task_ids"`
}

// Run creates two users, a team, a board and two open tasks.
func Run(p *core.Planner) (Result, error) {
	alice, err := p.CreateUser("alice", "Alice")
	if err != nil {
		return Result{}, fmt.Errorf("seed user alice: %w", err)
	}
	bob, err := p.CreateUser("bob", "Bob")
	if err != nil {
		return Result{}, fmt.Errorf("seed user bob: %w", err)
	}

	team, err := p.CreateTeam("alpha", "alpha team", alice)
	if err != nil {
		return Result{}, fmt.Errorf("seed team: %w", err)
	}
	if err := p.AddUsersToTeam(team, []string{bob}); err != nil {
		return Result{}, fmt.Errorf("seed membership: %w", err)
	}

	board, err := p.CreateBoard("sprint-1", "first sprint", team)
	if err != nil {
		return Result{}, fmt.Errorf("seed board: %w", err)
	}

	task1, err := p.AddTask("setup-ci", "set up ci", alice, board)
	if err != nil {
		return Result{}, fmt.Errorf("seed task: %w", err)
	}
	task2, err := p.AddTask("readme", "write readme", bob, board)
	if err != nil {
		return Result{}, fmt.Errorf("seed task: %w", err)
	}

	return Result{
		UserIDs: []string{alice, bob},
		TeamID:  team,
		BoardID: board,
		TaskIDs: []string{task1, task2},
	}, nil
}
