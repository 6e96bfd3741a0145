package services

import (
	"context"

	"hydration/models"
	"hydration/store"
)

// StreakService is the cross-day state machine for consecutive
// goal-met days. The counter advances by at most 1 per calendar day:
// the last-update day acts as the idempotence guard against repeated
// qualifying intakes within the same day.
type StreakService struct {
	store store.Store
}

func NewStreakService(s store.Store) *StreakService {
	return &StreakService{store: s}
}

// RecordGoalMet applies the streak transition for the given day. It is
// invoked once per intake event that crosses the 100% threshold.
func (s *StreakService) RecordGoalMet(ctx context.Context, userID string, day models.Day) error {
	var streak int
	var lastUpdate *models.Day

	user, err := s.store.GetUser(ctx, userID)
	if err != nil && err != store.ErrNotFound {
		return err
	}
	if err == nil {
		streak = user.CurrentStreak
		if user.LastStreakUpdate != nil {
			d := models.DayOf(*user.LastStreakUpdate)
			lastUpdate = &d
		}
	}

	switch {
	case lastUpdate != nil && *lastUpdate == day:
		// Already credited today.
		return nil
	case lastUpdate != nil && *lastUpdate == day.Prev():
		streak++
	default:
		streak = 1
	}

	return s.store.MergeUserStreak(ctx, userID, streak, day.Time())
}
