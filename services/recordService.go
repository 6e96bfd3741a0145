package services

import (
	"context"
	"log"
	"time"

	"hydration/models"
	"hydration/store"
)

// RecordService owns the get-or-create path for daily records. Weather
// is sampled once, when the day's record is first created; an existing
// record is returned unchanged even if profile or weather has since
// moved.
type RecordService struct {
	store   store.Store
	weather WeatherService
}

func NewRecordService(s store.Store, w WeatherService) *RecordService {
	return &RecordService{store: s, weather: w}
}

// EnsureDailyRecord returns the record for (userID, day), creating it
// on first access. location is the device's live position, if any;
// otherwise the profile's stored location is used, else (0, 0).
func (s *RecordService) EnsureDailyRecord(userID string, day models.Day, location *models.Location) (*models.DailyRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	rec, err := s.store.GetDailyRecord(ctx, userID, day)
	if err == nil {
		return rec, nil
	}
	if err != store.ErrNotFound {
		return nil, err
	}

	user, err := s.store.GetUser(ctx, userID)
	if err == store.ErrNotFound {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	baseGoal := user.Profile.DailyGoal
	if baseGoal <= 0 {
		baseGoal = DefaultDailyGoal
	}

	var latitude, longitude float64
	switch {
	case location != nil:
		latitude, longitude = location.Latitude, location.Longitude
	case user.Settings.Location != nil:
		latitude, longitude = user.Settings.Location.Latitude, user.Settings.Location.Longitude
	}

	conditions, err := s.weather.Current(ctx, latitude, longitude)
	if err != nil {
		// Zero conditions yield a zero adjustment; accuracy degrades
		// silently rather than failing the goal computation.
		log.Printf("weather lookup failed, using zero adjustment: %v", err)
		conditions = Weather{}
	}
	adjustment := WeatherAdjustment(conditions)

	rec = &models.DailyRecord{
		UserID:            userID,
		Date:              day.Time(),
		DateKey:           day.Key(),
		BaseGoal:          baseGoal,
		WeatherAdjustment: adjustment,
		TotalAmount:       baseGoal + adjustment,
		CompletedAmount:   0,
		Percentage:        0,
		Entries:           []models.WaterEntry{},
		LastUpdated:       time.Now(),
	}
	if err := s.store.PutDailyRecord(ctx, userID, rec); err != nil {
		return nil, err
	}
	return s.store.GetDailyRecord(ctx, userID, day)
}
