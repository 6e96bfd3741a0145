package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Profile is the biometric and settings snapshot used to derive the
// daily fluid goal. DailyGoal is computed at profile-save time and
// snapshotted into each new DailyRecord as its base goal.
type Profile struct {
	Name      string  `bson:"name" json:"name" validate:"required,min=2,max=100"`
	Weight    float64 `bson:"weight,omitempty" json:"weight,omitempty" validate:"omitempty,gt=0,lt=500"` // kg
	Height    float64 `bson:"height,omitempty" json:"height,omitempty" validate:"omitempty,gt=0,lt=300"` // cm
	Age       int     `bson:"age,omitempty" json:"age,omitempty" validate:"omitempty,gt=0,lt=150"`
	Activity  string  `bson:"activity,omitempty" json:"activity,omitempty" validate:"omitempty,oneof=sedentary light moderate very extreme"`
	Gender    string  `bson:"gender,omitempty" json:"gender,omitempty"`
	Climate   string  `bson:"climate,omitempty" json:"climate,omitempty"`
	DailyGoal int     `bson:"daily_goal" json:"daily_goal"` // ml
}

// Location is a latitude/longitude pair, the last position reported by
// the device. Used to resolve weather when no live position is given.
type Location struct {
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
}

// NotificationSettings is persisted on the user document and consumed
// by the external reminder scheduler; the core never reads it.
type NotificationSettings struct {
	Enabled           bool `bson:"enabled" json:"enabled"`
	ReminderFrequency int  `bson:"reminder_frequency" json:"reminder_frequency"` // reminders per day
	StartTime         int  `bson:"start_time" json:"start_time"`                 // hour of day
	EndTime           int  `bson:"end_time" json:"end_time"`
	SoundEnabled      bool `bson:"sound_enabled" json:"sound_enabled"`
}

// DefaultNotificationSettings returns the reminder defaults applied at
// signup: 4 reminders between 8 AM and 8 PM, with sound.
func DefaultNotificationSettings() NotificationSettings {
	return NotificationSettings{
		Enabled:           true,
		ReminderFrequency: 4,
		StartTime:         8,
		EndTime:           20,
		SoundEnabled:      true,
	}
}

type Settings struct {
	Location      *Location            `bson:"location,omitempty" json:"location,omitempty"`
	Notifications NotificationSettings `bson:"notifications" json:"notifications"`
}

// User is the top-level user document. Streak state lives here rather
// than on the daily records: it is a single cross-day counter advanced
// at most once per calendar day.
type User struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID           string             `bson:"user_id" json:"user_id"`
	Email            *string            `bson:"email" json:"email" validate:"required,email"`
	Password         *string            `bson:"password" json:"password,omitempty" validate:"required,min=6"`
	Token            *string            `bson:"token,omitempty" json:"token,omitempty"`
	RefreshToken     *string            `bson:"refresh_token,omitempty" json:"refresh_token,omitempty"`
	Profile          Profile            `bson:"profile" json:"profile"`
	Settings         Settings           `bson:"settings" json:"settings"`
	CurrentStreak    int                `bson:"current_streak" json:"current_streak"`
	LastStreakUpdate *time.Time         `bson:"last_streak_update,omitempty" json:"last_streak_update,omitempty"`
	CreatedAt        time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time          `bson:"updated_at" json:"updated_at"`
}
