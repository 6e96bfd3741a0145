package services

import (
	"context"
	"time"

	"hydration/models"
	"hydration/store"
)

// ProfileService handles profile-edit flows. The daily goal is
// recomputed from biometrics on every save and snapshotted onto the
// profile; existing daily records keep the goal they were created with.
type ProfileService struct {
	store store.Store
}

func NewProfileService(s store.Store) *ProfileService {
	return &ProfileService{store: s}
}

// UpdateProfile recomputes the daily goal from the submitted biometrics
// and merge-writes profile and settings. Returns the new goal in ml.
func (s *ProfileService) UpdateProfile(userID string, profile models.Profile, settings models.Settings) (int, error) {
	profile.DailyGoal = CalculateDailyGoal(GoalInputFromProfile(profile))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.store.MergeUserProfile(ctx, userID, profile, settings)
	if err == store.ErrNotFound {
		return 0, ErrUserNotFound
	}
	if err != nil {
		return 0, err
	}
	return profile.DailyGoal, nil
}

// Get returns the user document for profile views.
func (s *ProfileService) Get(userID string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user, err := s.store.GetUser(ctx, userID)
	if err == store.ErrNotFound {
		return nil, ErrUserNotFound
	}
	return user, err
}
