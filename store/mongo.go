package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"hydration/models"
)

// Mongo implements Store against MongoDB. Daily records live in their
// own collection keyed by (user_id, date_key) rather than a true
// subcollection, which Mongo does not have.
type Mongo struct {
	users   *mongo.Collection
	records *mongo.Collection
}

func NewMongo(client *mongo.Client, database string) *Mongo {
	db := client.Database(database)
	return &Mongo{
		users:   db.Collection("users"),
		records: db.Collection("daily_records"),
	}
}

func (m *Mongo) GetUser(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	err := m.users.FindOne(ctx, bson.M{"user_id": userID}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (m *Mongo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := m.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (m *Mongo) CountUsersByEmail(ctx context.Context, email string) (int64, error) {
	return m.users.CountDocuments(ctx, bson.M{"email": email})
}

func (m *Mongo) InsertUser(ctx context.Context, user *models.User) error {
	_, err := m.users.InsertOne(ctx, user)
	return err
}

func (m *Mongo) MergeUserProfile(ctx context.Context, userID string, profile models.Profile, settings models.Settings) error {
	update := bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "profile", Value: profile},
			{Key: "settings", Value: settings},
			{Key: "updated_at", Value: time.Now()},
		}},
	}
	res, err := m.users.UpdateOne(ctx, bson.M{"user_id": userID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *Mongo) MergeUserStreak(ctx context.Context, userID string, streak int, lastUpdate time.Time) error {
	update := bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "current_streak", Value: streak},
			{Key: "last_streak_update", Value: lastUpdate},
			{Key: "updated_at", Value: time.Now()},
		}},
	}
	opts := options.Update().SetUpsert(true)
	_, err := m.users.UpdateOne(ctx, bson.M{"user_id": userID}, update, opts)
	return err
}

func (m *Mongo) MergeUserTokens(ctx context.Context, userID, token, refreshToken string) error {
	update := bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "token", Value: token},
			{Key: "refresh_token", Value: refreshToken},
			{Key: "updated_at", Value: time.Now()},
		}},
	}
	_, err := m.users.UpdateOne(ctx, bson.M{"user_id": userID}, update)
	return err
}

func (m *Mongo) GetDailyRecord(ctx context.Context, userID string, day models.Day) (*models.DailyRecord, error) {
	var rec models.DailyRecord
	filter := bson.M{"user_id": userID, "date_key": day.Key()}
	err := m.records.FindOne(ctx, filter).Decode(&rec)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (m *Mongo) PutDailyRecord(ctx context.Context, userID string, rec *models.DailyRecord) error {
	rec.UserID = userID
	filter := bson.M{"user_id": userID, "date_key": rec.DateKey}
	opts := options.Replace().SetUpsert(true)
	_, err := m.records.ReplaceOne(ctx, filter, rec, opts)
	return err
}

func (m *Mongo) AppendIntake(ctx context.Context, userID string, day models.Day, entry models.WaterEntry, completedAmount, percentage int, at time.Time) error {
	filter := bson.M{"user_id": userID, "date_key": day.Key()}
	update := bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "completed_amount", Value: completedAmount},
			{Key: "percentage", Value: percentage},
			{Key: "last_updated", Value: at},
		}},
		{Key: "$push", Value: bson.D{
			{Key: "entries", Value: entry},
		}},
		{Key: "$setOnInsert", Value: bson.D{
			{Key: "date", Value: day.Time()},
		}},
	}
	opts := options.Update().SetUpsert(true)
	_, err := m.records.UpdateOne(ctx, filter, update, opts)
	return err
}

func (m *Mongo) DailyRecordsInRange(ctx context.Context, userID string, start, end models.Day) ([]models.DailyRecord, error) {
	filter := bson.M{
		"user_id": userID,
		"date":    bson.M{"$gte": start.Time(), "$lte": end.Time()},
	}
	cursor, err := m.records.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var out []models.DailyRecord
	err = cursor.All(ctx, &out)
	return out, err
}

func (m *Mongo) UsersByStreak(ctx context.Context, limit int64) ([]models.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "current_streak", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cursor, err := m.users.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var out []models.User
	err = cursor.All(ctx, &out)
	return out, err
}
