package core

import (
	"strings"
	"testing"
)

func TestCreateUserRoundTrip(t *testing.T) {
	p := newTestPlanner(t)

	id, err := p.CreateUser("  alice  ", "Alice")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	info, err := p.DescribeUser(id)
	if err != nil {
		t.Fatalf("describe user: %v", err)
	}
	if info.Name != "alice" || info.DisplayName != "Alice" {
		t.Fatalf("unexpected info: %+v", info)
	}
	if info.CreationTime.IsZero() {
		t.Fatal("creation time not set")
	}
}

func TestCreateUserValidation(t *testing.T) {
	p := newTestPlanner(t)

	cases := []struct {
		name        string
		displayName string
	}{
		{"", "Display"},
		{"   ", "Display"},
		{strings.Repeat("x", 65), "Display"},
		{"alice", strings.Repeat("x", 65)},
	}
	for _, tc := range cases {
		if _, err := p.CreateUser(tc.name, tc.displayName); err == nil {
			t.Fatalf("expected failure for name=%q display=%q", tc.name, tc.displayName)
		} else {
			wantValidation(t, err)
		}
	}

	// Right at the limits succeeds.
	if _, err := p.CreateUser(strings.Repeat("x", 64), strings.Repeat("y", 64)); err != nil {
		t.Fatalf("limit-length create failed: %v", err)
	}
}

func TestLimitsCountCharactersNotBytes(t *testing.T) {
	p := newTestPlanner(t)

	// 64 two-byte runes stay within the name budget.
	if _, err := p.CreateUser(strings.Repeat("é", 64), strings.Repeat("é", 64)); err != nil {
		t.Fatalf("multibyte limit-length create failed: %v", err)
	}
	if _, err := p.CreateUser(strings.Repeat("é", 65), ""); err == nil {
		t.Fatal("expected 65-character name to fail")
	} else {
		wantValidation(t, err)
	}
}

func TestUserNameGloballyUnique(t *testing.T) {
	p := newTestPlanner(t)

	mustCreateUser(t, p, "alice")
	_, err := p.CreateUser("alice", "Another Alice")
	wantValidation(t, err)
}

func TestDescribeUnknownUser(t *testing.T) {
	p := newTestPlanner(t)
	_, err := p.DescribeUser("nope")
	wantNotFound(t, err)
}

func TestUpdateUserDisplayNameOnly(t *testing.T) {
	p := newTestPlanner(t)
	id := mustCreateUser(t, p, "alice")

	if err := p.UpdateUser(id, strings.Repeat("x", 128)); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := p.UpdateUser(id, strings.Repeat("x", 129)); err == nil {
		t.Fatal("expected length failure")
	} else {
		wantValidation(t, err)
	}
	wantNotFound(t, p.UpdateUser("nope", "x"))
	// An unknown id wins over a too-long name.
	wantNotFound(t, p.UpdateUser("nope", strings.Repeat("x", 200)))

	info, err := p.DescribeUser(id)
	if err != nil {
		t.Fatalf("describe: %v", err)
	}
	if info.Name != "alice" {
		t.Fatalf("name changed by update: %+v", info)
	}
	if info.DisplayName != strings.Repeat("x", 128) {
		t.Fatalf("display name not replaced: %+v", info)
	}
}

func TestListUsers(t *testing.T) {
	p := newTestPlanner(t)
	mustCreateUser(t, p, "alice")
	mustCreateUser(t, p, "bob")

	users, err := p.ListUsers()
	if err != nil {
		t.Fatalf("list users: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
}

func TestUserTeams(t *testing.T) {
	p := newTestPlanner(t)
	alice := mustCreateUser(t, p, "alice")
	bob := mustCreateUser(t, p, "bob")
	mustCreateTeam(t, p, "alpha", alice)
	beta := mustCreateTeam(t, p, "beta", alice)
	if err := p.AddUsersToTeam(beta, []string{bob}); err != nil {
		t.Fatalf("add users: %v", err)
	}

	teams, err := p.UserTeams(alice)
	if err != nil {
		t.Fatalf("user teams: %v", err)
	}
	if len(teams) != 2 {
		t.Fatalf("expected 2 teams for admin, got %d", len(teams))
	}

	teams, err = p.UserTeams(bob)
	if err != nil {
		t.Fatalf("user teams: %v", err)
	}
	if len(teams) != 1 || teams[0].Name != "beta" {
		t.Fatalf("unexpected teams for bob: %+v", teams)
	}

	_, err = p.UserTeams("nope")
	wantNotFound(t, err)
}
