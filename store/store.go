package store

import (
	"context"
	"errors"
	"time"

	"hydration/models"
)

// ErrNotFound is returned when a point read matches no document.
var ErrNotFound = errors.New("document not found")

// Store abstracts the remote document store. It is constructed once in
// main and handed to each service explicitly; there is no package-level
// client. Merge methods follow the store's merge-write semantics:
// listed fields are set, everything else on the document is untouched,
// and a missing document is created.
//
// Read-modify-write sequences built on top of these calls are not
// transactional. The service assumes a single writer per user (one
// device, sequential taps); see DESIGN.md.
type Store interface {
	// Users.
	GetUser(ctx context.Context, userID string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	CountUsersByEmail(ctx context.Context, email string) (int64, error)
	InsertUser(ctx context.Context, user *models.User) error
	MergeUserProfile(ctx context.Context, userID string, profile models.Profile, settings models.Settings) error
	MergeUserStreak(ctx context.Context, userID string, streak int, lastUpdate time.Time) error
	MergeUserTokens(ctx context.Context, userID, token, refreshToken string) error

	// Daily records, keyed by (userID, calendar day).
	GetDailyRecord(ctx context.Context, userID string, day models.Day) (*models.DailyRecord, error)
	PutDailyRecord(ctx context.Context, userID string, rec *models.DailyRecord) error
	AppendIntake(ctx context.Context, userID string, day models.Day, entry models.WaterEntry, completedAmount, percentage int, at time.Time) error
	DailyRecordsInRange(ctx context.Context, userID string, start, end models.Day) ([]models.DailyRecord, error)

	// UsersByStreak returns users ordered by current streak descending.
	// A limit of 0 returns all users. The relative order of users with
	// equal streaks is whatever the store returns.
	UsersByStreak(ctx context.Context, limit int64) ([]models.User, error)
}
