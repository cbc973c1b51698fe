package workerRepo

import (
	"fmt"
	"time"

	"rosterly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new worker document.
func (r *MongoWorkerRepo) Create(worker *models.Worker) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	worker.CreatedAt = now
	worker.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, worker)
	if err != nil {
		return fmt.Errorf("failed to create worker: %w", err)
	}
	return nil
}

// Update modifies an existing worker document.
func (r *MongoWorkerRepo) Update(worker *models.Worker) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	worker.UpdatedAt = time.Now()
	filter := bson.M{"id": worker.ID}
	update := bson.M{"$set": worker}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update worker with id %s: %w", worker.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("worker with id %s not found", worker.ID)
	}
	return nil
}

// Delete removes a worker document by its ID.
func (r *MongoWorkerRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete worker with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("worker with id %s not found", id)
	}
	return nil
}

// GetByID retrieves a worker by its unique ID.
func (r *MongoWorkerRepo) GetByID(id string) (*models.Worker, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var worker models.Worker
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&worker); err != nil {
		return nil, fmt.Errorf("failed to fetch worker with id %s: %w", id, err)
	}
	return &worker, nil
}

// GetByEmail retrieves a worker by its email address. Returns nil when no
// worker carries the email.
func (r *MongoWorkerRepo) GetByEmail(email string) (*models.Worker, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var worker models.Worker
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&worker); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch worker with email %s: %w", email, err)
	}
	return &worker, nil
}

// GetAll retrieves all worker documents.
func (r *MongoWorkerRepo) GetAll() ([]models.Worker, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve workers: %w", err)
	}
	defer cursor.Close(ctx)

	var workers []models.Worker
	for cursor.Next(ctx) {
		var w models.Worker
		if err := cursor.Decode(&w); err != nil {
			return nil, fmt.Errorf("failed to decode worker: %w", err)
		}
		workers = append(workers, w)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return workers, nil
}
