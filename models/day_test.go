package models

import (
	"testing"
	"time"
)

func TestDayOfTruncatesToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	// 02:30 on the 10th in UTC+5 is 21:30 on the 9th in UTC.
	ts := time.Date(2025, 3, 10, 2, 30, 0, 0, loc)

	day := DayOf(ts)
	if day.Key() != "2025-03-09" {
		t.Fatalf("expected 2025-03-09, got %s", day.Key())
	}
	if !day.Time().Equal(time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected UTC midnight, got %v", day.Time())
	}
}

func TestParseDayRoundTrip(t *testing.T) {
	day, err := ParseDay("2025-06-15")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if day.Key() != "2025-06-15" {
		t.Fatalf("expected key 2025-06-15, got %s", day.Key())
	}

	if _, err := ParseDay("15/06/2025"); err == nil {
		t.Fatal("expected error for malformed date")
	}
	if _, err := ParseDay(""); err == nil {
		t.Fatal("expected error for empty date")
	}
}

func TestDayNextPrevAcrossBoundaries(t *testing.T) {
	day, _ := ParseDay("2024-01-31")
	if got := day.Next().Key(); got != "2024-02-01" {
		t.Errorf("expected 2024-02-01, got %s", got)
	}

	day, _ = ParseDay("2024-03-01")
	if got := day.Prev().Key(); got != "2024-02-29" {
		t.Errorf("expected leap day 2024-02-29, got %s", got)
	}

	day, _ = ParseDay("2025-01-01")
	if got := day.Prev().Key(); got != "2024-12-31" {
		t.Errorf("expected 2024-12-31, got %s", got)
	}
}

func TestDayComparisons(t *testing.T) {
	a, _ := ParseDay("2025-05-01")
	b, _ := ParseDay("2025-05-02")

	if !a.Before(b) || b.Before(a) {
		t.Error("expected a < b")
	}
	if !b.After(a) {
		t.Error("expected b > a")
	}
	if a != DayOf(a.Time()) {
		t.Error("expected Day to round-trip through Time")
	}
}
