package services

import (
	"context"
	"math"
	"strconv"
	"strings"
	"time"

	"hydration/models"
	"hydration/store"
)

// IntakeService validates and appends intake entries to the day's
// ledger and triggers the streak transition when the goal is met.
type IntakeService struct {
	store   store.Store
	streaks *StreakService
}

func NewIntakeService(s store.Store, streaks *StreakService) *IntakeService {
	return &IntakeService{store: s, streaks: streaks}
}

// AddIntake appends one drink of rawAmount ml at the given time and
// returns the day's new completion percentage. If no record exists yet
// for the day, one is created with the 2000ml default goal; this path
// covers an "add drink" tap before the day's record has been lazily
// created with profile and weather context.
func (s *IntakeService) AddIntake(userID, rawAmount string, at time.Time) (int, error) {
	amount, err := parseAmount(rawAmount)
	if err != nil {
		return 0, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	day := models.DayOf(at)
	rec, err := s.store.GetDailyRecord(ctx, userID, day)
	if err == store.ErrNotFound {
		rec = &models.DailyRecord{
			UserID:      userID,
			Date:        day.Time(),
			DateKey:     day.Key(),
			BaseGoal:    DefaultDailyGoal,
			TotalAmount: DefaultDailyGoal,
			Entries:     []models.WaterEntry{},
			LastUpdated: time.Now(),
		}
		if err := s.store.PutDailyRecord(ctx, userID, rec); err != nil {
			return 0, err
		}
	} else if err != nil {
		return 0, err
	}

	completed := rec.CompletedAmount + amount
	percentage := int(math.Round(math.Min(100, float64(completed)/float64(rec.TotalAmount)*100)))

	timestamp := at.UTC().Format(time.RFC3339Nano)
	entry := models.WaterEntry{ID: timestamp, Time: timestamp, Amount: amount}
	if err := s.store.AppendIntake(ctx, userID, day, entry, completed, percentage, time.Now()); err != nil {
		return 0, err
	}

	if percentage >= 100 {
		if err := s.streaks.RecordGoalMet(ctx, userID, day); err != nil {
			return 0, err
		}
	}

	return percentage, nil
}

// parseAmount accepts the raw user input and returns whole ml. Anything
// that is not a finite number greater than zero is a validation error.
func parseAmount(raw string) (int, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return 0, ErrInvalidAmount
	}
	amount := int(math.Round(f))
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}
	return amount, nil
}
