package scheduleRepo

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

// MongoScheduleRepo implements ScheduleRepository using MongoDB.
type MongoScheduleRepo struct {
	coll *mongo.Collection
}

// NewMongoScheduleRepo creates a new instance of ScheduleRepository using MongoDB.
func NewMongoScheduleRepo() ScheduleRepository {
	coll := database.DB().Collection("schedules")
	repo := &MongoScheduleRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoScheduleRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "isCurrent", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// UpsertCurrent replaces the single current schedule with doc, or inserts it
// when no current schedule exists yet. Upsert, not append: repeated
// generation runs leave exactly one isCurrent document behind.
func (r *MongoScheduleRepo) UpsertCurrent(doc *models.ScheduleDocument) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	doc.IsCurrent = true
	filter := bson.M{"isCurrent": true}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, filter, doc, opts); err != nil {
		return fmt.Errorf("failed to upsert current schedule: %w", err)
	}
	return nil
}

// GetCurrent retrieves the schedule flagged current. Returns nil when no
// schedule has been generated yet.
func (r *MongoScheduleRepo) GetCurrent() (*models.ScheduleDocument, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var doc models.ScheduleDocument
	if err := r.coll.FindOne(ctx, bson.M{"isCurrent": true}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch current schedule: %w", err)
	}
	return &doc, nil
}

// GetByID retrieves a schedule document by its ID.
func (r *MongoScheduleRepo) GetByID(id string) (*models.ScheduleDocument, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var doc models.ScheduleDocument
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to fetch schedule with id %s: %w", id, err)
	}
	return &doc, nil
}

// SetOnlyCurrent marks the schedule with the given id current and clears the
// flag on every other document.
func (r *MongoScheduleRepo) SetOnlyCurrent(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.UpdateMany(ctx,
		bson.M{"id": bson.M{"$ne": id}, "isCurrent": true},
		bson.M{"$set": bson.M{"isCurrent": false}},
	); err != nil {
		return fmt.Errorf("failed to clear current schedules: %w", err)
	}

	result, err := r.coll.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"isCurrent": true}},
	)
	if err != nil {
		return fmt.Errorf("failed to set schedule %s current: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("schedule with id %s not found", id)
	}
	return nil
}

// List retrieves all schedule documents, newest first.
func (r *MongoScheduleRepo) List() ([]models.ScheduleDocument, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []models.ScheduleDocument
	for cursor.Next(ctx) {
		var d models.ScheduleDocument
		if err := cursor.Decode(&d); err != nil {
			return nil, fmt.Errorf("failed to decode schedule: %w", err)
		}
		docs = append(docs, d)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return docs, nil
}

// Delete removes a schedule document by its ID.
func (r *MongoScheduleRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete schedule with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("schedule with id %s not found", id)
	}
	return nil
}
