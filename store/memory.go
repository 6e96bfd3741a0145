package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"hydration/models"
)

// Memory is an in-memory implementation of Store used for unit testing
// service logic without a running MongoDB. Users keep their insertion
// order when streaks tie, mirroring a stable store ordering.
type Memory struct {
	mu      sync.Mutex
	users   map[string]*models.User
	order   []string // userIDs in insertion order
	records map[string]map[string]*models.DailyRecord
	err     error
}

func NewMemory() *Memory {
	return &Memory{
		users:   make(map[string]*models.User),
		records: make(map[string]map[string]*models.DailyRecord),
	}
}

// WithError forces every subsequent call to fail with err. Passing nil
// clears the failure.
func (m *Memory) WithError(err error) *Memory {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
	return m
}

func (m *Memory) GetUser(ctx context.Context, userID string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[userID]
	if !ok {
		return nil, ErrNotFound
	}
	return copyUser(user), nil
}

func (m *Memory) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	for _, id := range m.order {
		user := m.users[id]
		if user.Email != nil && *user.Email == email {
			return copyUser(user), nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) CountUsersByEmail(ctx context.Context, email string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	var n int64
	for _, user := range m.users {
		if user.Email != nil && *user.Email == email {
			n++
		}
	}
	return n, nil
}

func (m *Memory) InsertUser(ctx context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if _, ok := m.users[user.UserID]; !ok {
		m.order = append(m.order, user.UserID)
	}
	m.users[user.UserID] = copyUser(user)
	return nil
}

func (m *Memory) MergeUserProfile(ctx context.Context, userID string, profile models.Profile, settings models.Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	user, ok := m.users[userID]
	if !ok {
		return ErrNotFound
	}
	user.Profile = profile
	user.Settings = settings
	user.UpdatedAt = time.Now()
	return nil
}

func (m *Memory) MergeUserStreak(ctx context.Context, userID string, streak int, lastUpdate time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	user, ok := m.users[userID]
	if !ok {
		user = &models.User{UserID: userID}
		m.users[userID] = user
		m.order = append(m.order, userID)
	}
	user.CurrentStreak = streak
	user.LastStreakUpdate = &lastUpdate
	user.UpdatedAt = time.Now()
	return nil
}

func (m *Memory) MergeUserTokens(ctx context.Context, userID, token, refreshToken string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	user, ok := m.users[userID]
	if !ok {
		return ErrNotFound
	}
	user.Token = &token
	user.RefreshToken = &refreshToken
	user.UpdatedAt = time.Now()
	return nil
}

func (m *Memory) GetDailyRecord(ctx context.Context, userID string, day models.Day) (*models.DailyRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	rec, ok := m.records[userID][day.Key()]
	if !ok {
		return nil, ErrNotFound
	}
	return copyRecord(rec), nil
}

func (m *Memory) PutDailyRecord(ctx context.Context, userID string, rec *models.DailyRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	rec.UserID = userID
	if m.records[userID] == nil {
		m.records[userID] = make(map[string]*models.DailyRecord)
	}
	m.records[userID][rec.DateKey] = copyRecord(rec)
	return nil
}

func (m *Memory) AppendIntake(ctx context.Context, userID string, day models.Day, entry models.WaterEntry, completedAmount, percentage int, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if m.records[userID] == nil {
		m.records[userID] = make(map[string]*models.DailyRecord)
	}
	rec, ok := m.records[userID][day.Key()]
	if !ok {
		rec = &models.DailyRecord{
			UserID:  userID,
			Date:    day.Time(),
			DateKey: day.Key(),
		}
		m.records[userID][day.Key()] = rec
	}
	rec.Entries = append(rec.Entries, entry)
	rec.CompletedAmount = completedAmount
	rec.Percentage = percentage
	rec.LastUpdated = at
	return nil
}

func (m *Memory) DailyRecordsInRange(ctx context.Context, userID string, start, end models.Day) ([]models.DailyRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	var out []models.DailyRecord
	for _, rec := range m.records[userID] {
		if rec.Date.Before(start.Time()) || rec.Date.After(end.Time()) {
			continue
		}
		out = append(out, *copyRecord(rec))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (m *Memory) UsersByStreak(ctx context.Context, limit int64) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := make([]models.User, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, *copyUser(m.users[id]))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CurrentStreak > out[j].CurrentStreak })
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func copyUser(u *models.User) *models.User {
	c := *u
	if u.LastStreakUpdate != nil {
		t := *u.LastStreakUpdate
		c.LastStreakUpdate = &t
	}
	return &c
}

func copyRecord(r *models.DailyRecord) *models.DailyRecord {
	c := *r
	c.Entries = append([]models.WaterEntry(nil), r.Entries...)
	return &c
}
