package announcementRepo

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

// AnnouncementRepository defines data access methods for announcements.
type AnnouncementRepository interface {
	Create(a *models.Announcement) error
	Update(a *models.Announcement) error
	Delete(id string) error
	List() ([]models.Announcement, error)
}

// MongoAnnouncementRepo implements AnnouncementRepository using MongoDB.
type MongoAnnouncementRepo struct {
	coll *mongo.Collection
}

// NewMongoAnnouncementRepo creates a new instance of AnnouncementRepository using MongoDB.
func NewMongoAnnouncementRepo() AnnouncementRepository {
	return &MongoAnnouncementRepo{coll: database.DB().Collection("announcements")}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// Create inserts a new announcement document.
func (r *MongoAnnouncementRepo) Create(a *models.Announcement) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	a.CreatedAt = now
	a.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, a); err != nil {
		return fmt.Errorf("failed to create announcement: %w", err)
	}
	return nil
}

// Update modifies an existing announcement document.
func (r *MongoAnnouncementRepo) Update(a *models.Announcement) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	a.UpdatedAt = time.Now()
	update := bson.M{"$set": bson.M{
		"title":      a.Title,
		"body":       a.Body,
		"updated_at": a.UpdatedAt,
	}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": a.ID}, update)
	if err != nil {
		return fmt.Errorf("failed to update announcement with id %s: %w", a.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("announcement with id %s not found", a.ID)
	}
	return nil
}

// Delete removes an announcement document by its ID.
func (r *MongoAnnouncementRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete announcement with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("announcement with id %s not found", id)
	}
	return nil
}

// List retrieves all announcements, newest first.
func (r *MongoAnnouncementRepo) List() ([]models.Announcement, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}
	defer cursor.Close(ctx)

	var items []models.Announcement
	for cursor.Next(ctx) {
		var a models.Announcement
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("failed to decode announcement: %w", err)
		}
		items = append(items, a)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return items, nil
}
