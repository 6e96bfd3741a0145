package services

import (
	"errors"
	"fmt"
	"testing"

	"hydration/models"
	"hydration/store"
)

func seedRankedUsers(t *testing.T, mem *store.Memory, streaks []int) {
	t.Helper()
	for i, streak := range streaks {
		userID := fmt.Sprintf("u%d", i)
		seedUser(t, mem, userID, models.Profile{Name: "User " + userID})
		if streak > 0 {
			seedStreak(t, mem, userID, streak, mustDay(t, "2025-07-10"))
		}
	}
}

func TestStandingsTopTenAndRank(t *testing.T) {
	mem := store.NewMemory()
	// 12 users, streaks 0..11: u11 leads, u0 is last.
	streaks := make([]int, 12)
	for i := range streaks {
		streaks[i] = i
	}
	seedRankedUsers(t, mem, streaks)
	svc := NewLeaderboardService(mem)

	standings, err := svc.Standings("u5")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(standings.Entries) != 10 {
		t.Fatalf("expected top 10, got %d entries", len(standings.Entries))
	}
	if standings.Entries[0].ID != "u11" || standings.Entries[0].Streak != 11 {
		t.Errorf("expected u11 on top, got %+v", standings.Entries[0])
	}
	for i := 1; i < len(standings.Entries); i++ {
		if standings.Entries[i].Streak > standings.Entries[i-1].Streak {
			t.Fatalf("entries not descending at %d: %+v", i, standings.Entries)
		}
	}

	if standings.TotalUsers != 12 {
		t.Errorf("expected 12 users, got %d", standings.TotalUsers)
	}
	// u5 has streak 5; six users (11..6) rank ahead.
	if standings.Position != 7 {
		t.Errorf("expected position 7, got %d", standings.Position)
	}
	if standings.Position < 1 || standings.Position > standings.TotalUsers {
		t.Errorf("position %d outside [1, %d]", standings.Position, standings.TotalUsers)
	}
}

func TestStandingsEveryUserHasValidRank(t *testing.T) {
	mem := store.NewMemory()
	seedRankedUsers(t, mem, []int{3, 0, 7, 7, 1})
	svc := NewLeaderboardService(mem)

	seen := make(map[int]bool)
	for i := 0; i < 5; i++ {
		userID := fmt.Sprintf("u%d", i)
		standings, err := svc.Standings(userID)
		if err != nil {
			t.Fatalf("%s: %v", userID, err)
		}
		if standings.Position < 1 || standings.Position > standings.TotalUsers {
			t.Errorf("%s: position %d outside [1, %d]", userID, standings.Position, standings.TotalUsers)
		}
		if seen[standings.Position] {
			t.Errorf("%s: duplicate position %d", userID, standings.Position)
		}
		seen[standings.Position] = true
	}
}

func TestStandingsUnknownUserHasNoRank(t *testing.T) {
	mem := store.NewMemory()
	seedRankedUsers(t, mem, []int{2, 4})
	svc := NewLeaderboardService(mem)

	standings, err := svc.Standings("ghost")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if standings.Position != 0 {
		t.Errorf("expected position 0 for unknown user, got %d", standings.Position)
	}
	if standings.TotalUsers != 2 {
		t.Errorf("expected 2 users, got %d", standings.TotalUsers)
	}
}

func TestStandingsNameFallback(t *testing.T) {
	mem := store.NewMemory()
	seedUser(t, mem, "u0", models.Profile{})
	svc := NewLeaderboardService(mem)

	standings, err := svc.Standings("u0")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(standings.Entries) != 1 || standings.Entries[0].Name != "Unknown" {
		t.Errorf("expected Unknown fallback name, got %+v", standings.Entries)
	}
}

func TestStandingsStoreFailure(t *testing.T) {
	mem := store.NewMemory()
	boom := errors.New("store unavailable")
	mem.WithError(boom)
	svc := NewLeaderboardService(mem)

	_, err := svc.Standings("u0")
	if !errors.Is(err, boom) {
		t.Fatalf("expected store error to propagate, got %v", err)
	}
}

func TestStandingsTieKeepsStoreOrder(t *testing.T) {
	mem := store.NewMemory()
	seedRankedUsers(t, mem, []int{5, 5, 5})
	svc := NewLeaderboardService(mem)

	standings, err := svc.Standings("u1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	// Equal streaks keep the order the store returned them in.
	for i, want := range []string{"u0", "u1", "u2"} {
		if standings.Entries[i].ID != want {
			t.Errorf("entry %d: expected %s, got %s", i, want, standings.Entries[i].ID)
		}
	}
	if standings.Position != 2 {
		t.Errorf("expected position 2, got %d", standings.Position)
	}
}
