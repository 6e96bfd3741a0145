package services

import (
	"context"
	"time"

	"hydration/models"
	"hydration/store"
)

// HistoryService aggregates a contiguous date range of daily records
// for history views.
type HistoryService struct {
	store store.Store
}

func NewHistoryService(s store.Store) *HistoryService {
	return &HistoryService{store: s}
}

// Range returns one record per calendar day in [start, end] inclusive,
// keyed by day. Days with no stored record are filled with zero-valued
// placeholders, which chart and calendar rendering depend on; the
// placeholders are never written back.
func (s *HistoryService) Range(userID string, start, end models.Day) (map[string]models.DailyRecord, error) {
	if start.After(end) {
		return nil, ErrInvalidRange
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	records, err := s.store.DailyRecordsInRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	history := make(map[string]models.DailyRecord)
	for _, rec := range records {
		history[rec.DateKey] = rec
	}
	for day := start; !day.After(end); day = day.Next() {
		if _, ok := history[day.Key()]; !ok {
			history[day.Key()] = models.EmptyDailyRecord(day)
		}
	}
	return history, nil
}
