package services

import (
	"context"
	"time"

	"hydration/models"
	"hydration/store"
)

const leaderboardSize = 10

// LeaderboardService ranks users by current streak.
type LeaderboardService struct {
	store store.Store
}

func NewLeaderboardService(s store.Store) *LeaderboardService {
	return &LeaderboardService{store: s}
}

// Standings returns the top users by streak plus the requesting user's
// 1-based position in the full descending ordering and the total user
// count. Position is 0 when the user does not appear in the store. The
// relative order of equal streaks is whatever the store returns.
func (s *LeaderboardService) Standings(userID string) (*models.Leaderboard, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	top, err := s.store.UsersByStreak(ctx, leaderboardSize)
	if err != nil {
		return nil, err
	}
	entries := make([]models.LeaderboardEntry, 0, len(top))
	for _, user := range top {
		entries = append(entries, leaderboardEntry(user))
	}

	all, err := s.store.UsersByStreak(ctx, 0)
	if err != nil {
		return nil, err
	}
	position := 0
	for i, user := range all {
		if user.UserID == userID {
			position = i + 1
			break
		}
	}

	return &models.Leaderboard{
		Entries:    entries,
		Position:   position,
		TotalUsers: len(all),
	}, nil
}

func leaderboardEntry(user models.User) models.LeaderboardEntry {
	name := user.Profile.Name
	if name == "" {
		name = "Unknown"
	}
	return models.LeaderboardEntry{
		ID:     user.UserID,
		Name:   name,
		Streak: user.CurrentStreak,
	}
}
