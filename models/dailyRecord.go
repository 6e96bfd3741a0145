package models

import "time"

// WaterEntry is one logged drink. Entries are append-only and owned by
// their parent DailyRecord; the ID is derived from the entry timestamp.
type WaterEntry struct {
	ID     string `bson:"id" json:"id"`
	Time   string `bson:"time" json:"time"` // ISO-8601
	Amount int    `bson:"amount" json:"amount"` // ml
}

// DailyRecord is the per-user per-calendar-day ledger. BaseGoal and
// WeatherAdjustment are fixed at creation time: weather is sampled once
// per day, so TotalAmount is never recomputed as entries accrue.
type DailyRecord struct {
	UserID            string       `bson:"user_id" json:"-"`
	Date              time.Time    `bson:"date" json:"-"` // UTC midnight
	DateKey           string       `bson:"date_key" json:"date"`
	BaseGoal          int          `bson:"base_goal" json:"base_goal"`                   // ml
	WeatherAdjustment int          `bson:"weather_adjustment" json:"weather_adjustment"` // ml, signed
	TotalAmount       int          `bson:"total_amount" json:"total_amount"`
	CompletedAmount   int          `bson:"completed_amount" json:"completed_amount"`
	Percentage        int          `bson:"percentage" json:"percentage"` // 0-100
	Entries           []WaterEntry `bson:"entries" json:"entries"`
	LastUpdated       time.Time    `bson:"last_updated" json:"last_updated"`
}

// EmptyDailyRecord returns the zero-valued placeholder used to gap-fill
// history ranges for days with no stored record. Never persisted.
func EmptyDailyRecord(day Day) DailyRecord {
	return DailyRecord{
		Date:    day.Time(),
		DateKey: day.Key(),
		Entries: []WaterEntry{},
	}
}
