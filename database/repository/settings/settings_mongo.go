package settingsRepo

import (
	"context"
	"fmt"
	"time"

	"rosterly/database"
	"rosterly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const canonicalSettingsID = "venue"

// SettingsRepository defines data access methods for venue settings.
type SettingsRepository interface {
	GetOperatingHours() (models.OperatingHours, error)
	SetOperatingHours(hours models.OperatingHours) error
}

// MongoSettingsRepo implements SettingsRepository using MongoDB.
type MongoSettingsRepo struct {
	coll *mongo.Collection
}

// NewMongoSettingsRepo creates a new instance of SettingsRepository using MongoDB.
func NewMongoSettingsRepo() SettingsRepository {
	return &MongoSettingsRepo{coll: database.DB().Collection("settings")}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// GetOperatingHours returns the hours from the canonical settings record, or
// failing that, from the first settings record that carries them. Returns nil
// (not an error) when no record has hours.
func (r *MongoSettingsRepo) GetOperatingHours() (models.OperatingHours, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var canonical models.Settings
	err := r.coll.FindOne(ctx, bson.M{"id": canonicalSettingsID}).Decode(&canonical)
	if err == nil && len(canonical.HoursOfOperation) > 0 {
		return canonical.HoursOfOperation, nil
	}
	if err != nil && err != mongo.ErrNoDocuments {
		return nil, fmt.Errorf("failed to fetch settings: %w", err)
	}

	cursor, err := r.coll.Find(ctx, bson.M{"hours_of_operation": bson.M{"$exists": true}})
	if err != nil {
		return nil, fmt.Errorf("failed to scan settings: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var s models.Settings
		if err := cursor.Decode(&s); err != nil {
			continue
		}
		if len(s.HoursOfOperation) > 0 {
			return s.HoursOfOperation, nil
		}
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return nil, nil
}

// SetOperatingHours stores the hours on the canonical settings record.
func (r *MongoSettingsRepo) SetOperatingHours(hours models.OperatingHours) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": canonicalSettingsID}
	update := bson.M{"$set": bson.M{"hours_of_operation": hours}}
	opts := options.Update().SetUpsert(true)
	if _, err := r.coll.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to store operating hours: %w", err)
	}
	return nil
}
