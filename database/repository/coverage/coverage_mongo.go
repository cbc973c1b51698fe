package coverageRepo

import (
	"context"
	"fmt"
	"time"

	"rosterly/database"
	"rosterly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoCoverageRepo implements CoverageRepository using MongoDB.
type MongoCoverageRepo struct {
	postingColl     *mongo.Collection
	applicationColl *mongo.Collection
	requestColl     *mongo.Collection
	activeColl      *mongo.Collection
}

// NewMongoCoverageRepo constructs a new instance of MongoCoverageRepo.
func NewMongoCoverageRepo() CoverageRepository {
	db := database.DB()
	return &MongoCoverageRepo{
		postingColl:     db.Collection("shift_postings"),
		applicationColl: db.Collection("posting_applications"),
		requestColl:     db.Collection("coverage_requests"),
		activeColl:      db.Collection("active_coverage"),
	}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// CreatePosting inserts a new shift posting.
func (r *MongoCoverageRepo) CreatePosting(p *models.ShiftPosting) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	p.CreatedAt = time.Now()
	if p.Status == "" {
		p.Status = models.PostingOpen
	}
	if _, err := r.postingColl.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("failed to create shift posting: %w", err)
	}
	return nil
}

// GetPosting retrieves a posting by its ID.
func (r *MongoCoverageRepo) GetPosting(id string) (*models.ShiftPosting, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var p models.ShiftPosting
	if err := r.postingColl.FindOne(ctx, bson.M{"id": id}).Decode(&p); err != nil {
		return nil, fmt.Errorf("failed to fetch posting with id %s: %w", id, err)
	}
	return &p, nil
}

// ListPostings retrieves postings, optionally filtered by status.
func (r *MongoCoverageRepo) ListPostings(status string) ([]models.ShiftPosting, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	cursor, err := r.postingColl.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list postings: %w", err)
	}
	defer cursor.Close(ctx)

	var postings []models.ShiftPosting
	for cursor.Next(ctx) {
		var p models.ShiftPosting
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode posting: %w", err)
		}
		postings = append(postings, p)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return postings, nil
}

// UpdatePostingStatus transitions a posting to the given status, stamping the
// matching timestamp field.
func (r *MongoCoverageRepo) UpdatePostingStatus(id, status string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	set := bson.M{"status": status}
	now := time.Now()
	switch status {
	case models.PostingClosed:
		set["closed_at"] = now
	case models.PostingFilled:
		set["filled_at"] = now
	}

	result, err := r.postingColl.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update posting %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("posting with id %s not found", id)
	}
	return nil
}

// CreateApplication inserts an application against a posting.
func (r *MongoCoverageRepo) CreateApplication(a *models.ShiftApplication) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	a.CreatedAt = time.Now()
	if a.Status == "" {
		a.Status = models.ApplicationPending
	}
	if _, err := r.applicationColl.InsertOne(ctx, a); err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}
	return nil
}

// ListApplications retrieves all applications for a posting.
func (r *MongoCoverageRepo) ListApplications(postingID string) ([]models.ShiftApplication, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.applicationColl.Find(ctx, bson.M{"posting_id": postingID})
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer cursor.Close(ctx)

	var apps []models.ShiftApplication
	for cursor.Next(ctx) {
		var a models.ShiftApplication
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("failed to decode application: %w", err)
		}
		apps = append(apps, a)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return apps, nil
}

// ApproveApplication marks the application approved and stamps it.
func (r *MongoCoverageRepo) ApproveApplication(postingID, applicationID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.applicationColl.UpdateOne(ctx,
		bson.M{"id": applicationID, "posting_id": postingID},
		bson.M{"$set": bson.M{"status": models.ApplicationApproved, "approved_at": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("failed to approve application %s: %w", applicationID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("application with id %s not found for posting %s", applicationID, postingID)
	}
	return nil
}

// CreateRequest inserts a coverage request.
func (r *MongoCoverageRepo) CreateRequest(req *models.CoverageRequest) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	req.CreatedAt = time.Now()
	if req.Status == "" {
		req.Status = models.RequestOpen
	}
	if _, err := r.requestColl.InsertOne(ctx, req); err != nil {
		return fmt.Errorf("failed to create coverage request: %w", err)
	}
	return nil
}

// ListRequests retrieves coverage requests, optionally filtered by status.
func (r *MongoCoverageRepo) ListRequests(status string) ([]models.CoverageRequest, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	cursor, err := r.requestColl.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list coverage requests: %w", err)
	}
	defer cursor.Close(ctx)

	var reqs []models.CoverageRequest
	for cursor.Next(ctx) {
		var req models.CoverageRequest
		if err := cursor.Decode(&req); err != nil {
			return nil, fmt.Errorf("failed to decode coverage request: %w", err)
		}
		reqs = append(reqs, req)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return reqs, nil
}

// ResolveRequest marks a coverage request resolved.
func (r *MongoCoverageRepo) ResolveRequest(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.requestColl.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"status": models.RequestResolved, "resolved_at": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("failed to resolve coverage request %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("coverage request with id %s not found", id)
	}
	return nil
}

// RecordActiveCoverage inserts an active coverage record.
func (r *MongoCoverageRepo) RecordActiveCoverage(ac *models.ActiveCoverage) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	ac.CreatedAt = time.Now()
	if _, err := r.activeColl.InsertOne(ctx, ac); err != nil {
		return fmt.Errorf("failed to record active coverage: %w", err)
	}
	return nil
}

// ListActiveCoverage retrieves all active coverage records.
func (r *MongoCoverageRepo) ListActiveCoverage() ([]models.ActiveCoverage, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.activeColl.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list active coverage: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.ActiveCoverage
	for cursor.Next(ctx) {
		var ac models.ActiveCoverage
		if err := cursor.Decode(&ac); err != nil {
			return nil, fmt.Errorf("failed to decode active coverage: %w", err)
		}
		records = append(records, ac)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return records, nil
}
