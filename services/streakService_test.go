package services

import (
	"context"
	"testing"

	"hydration/models"
	"hydration/store"
)

func seedStreak(t *testing.T, mem *store.Memory, userID string, streak int, lastUpdate models.Day) {
	t.Helper()
	if err := mem.MergeUserStreak(context.Background(), userID, streak, lastUpdate.Time()); err != nil {
		t.Fatalf("seed streak: %v", err)
	}
}

func getStreak(t *testing.T, mem *store.Memory, userID string) (int, *models.Day) {
	t.Helper()
	user, err := mem.GetUser(context.Background(), userID)
	if err != nil {
		t.Fatalf("read user: %v", err)
	}
	if user.LastStreakUpdate == nil {
		return user.CurrentStreak, nil
	}
	day := models.DayOf(*user.LastStreakUpdate)
	return user.CurrentStreak, &day
}

func TestStreakFirstQualifyingDay(t *testing.T) {
	mem := store.NewMemory()
	seedUser(t, mem, "u1", models.Profile{Name: "Jane"})
	svc := NewStreakService(mem)
	today := mustDay(t, "2025-07-10")

	if err := svc.RecordGoalMet(context.Background(), "u1", today); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	streak, last := getStreak(t, mem, "u1")
	if streak != 1 {
		t.Errorf("expected streak 1, got %d", streak)
	}
	if last == nil || *last != today {
		t.Errorf("expected last update %s, got %v", today, last)
	}
}

func TestStreakSameDayIsIdempotent(t *testing.T) {
	mem := store.NewMemory()
	seedUser(t, mem, "u1", models.Profile{Name: "Jane"})
	today := mustDay(t, "2025-07-10")
	seedStreak(t, mem, "u1", 4, today)
	svc := NewStreakService(mem)

	if err := svc.RecordGoalMet(context.Background(), "u1", today); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	streak, _ := getStreak(t, mem, "u1")
	if streak != 4 {
		t.Fatalf("same-day re-trigger changed streak: expected 4, got %d", streak)
	}
}

func TestStreakConsecutiveDayIncrements(t *testing.T) {
	mem := store.NewMemory()
	seedUser(t, mem, "u1", models.Profile{Name: "Jane"})
	today := mustDay(t, "2025-07-10")
	seedStreak(t, mem, "u1", 4, today.Prev())
	svc := NewStreakService(mem)

	if err := svc.RecordGoalMet(context.Background(), "u1", today); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	streak, last := getStreak(t, mem, "u1")
	if streak != 5 {
		t.Errorf("expected streak 5, got %d", streak)
	}
	if last == nil || *last != today {
		t.Errorf("expected last update %s, got %v", today, last)
	}
}

func TestStreakGapResets(t *testing.T) {
	mem := store.NewMemory()
	seedUser(t, mem, "u1", models.Profile{Name: "Jane"})
	today := mustDay(t, "2025-07-10")
	seedStreak(t, mem, "u1", 9, mustDay(t, "2025-07-07")) // 3 days ago
	svc := NewStreakService(mem)

	if err := svc.RecordGoalMet(context.Background(), "u1", today); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	streak, _ := getStreak(t, mem, "u1")
	if streak != 1 {
		t.Fatalf("expected reset to 1 after gap, got %d", streak)
	}
}

func TestStreakAcrossMonthBoundary(t *testing.T) {
	mem := store.NewMemory()
	seedUser(t, mem, "u1", models.Profile{Name: "Jane"})
	seedStreak(t, mem, "u1", 2, mustDay(t, "2025-06-30"))
	svc := NewStreakService(mem)

	if err := svc.RecordGoalMet(context.Background(), "u1", mustDay(t, "2025-07-01")); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	streak, _ := getStreak(t, mem, "u1")
	if streak != 3 {
		t.Fatalf("expected streak 3 across month boundary, got %d", streak)
	}
}
