package accountRepo

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

// AccountRepository defines data access methods for sign-in accounts.
type AccountRepository interface {
	Create(acct *models.Account) error
	GetByID(id string) (*models.Account, error)
	GetByEmail(email string) (*models.Account, error)
	SetAdmin(email string, isAdmin bool) error
	SetSuspended(email string, suspended bool) error
	UpdateLoginTime(id string, at time.Time) error
}

// MongoAccountRepo implements AccountRepository using MongoDB.
type MongoAccountRepo struct {
	coll *mongo.Collection
}

// NewMongoAccountRepo creates a new instance of AccountRepository using MongoDB.
func NewMongoAccountRepo() AccountRepository {
	coll := database.DB().Collection("accounts")
	repo := &MongoAccountRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoAccountRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new account document.
func (r *MongoAccountRepo) Create(acct *models.Account) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	acct.CreatedAt = now
	acct.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, acct); err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// GetByID retrieves an account by its unique ID.
func (r *MongoAccountRepo) GetByID(id string) (*models.Account, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var acct models.Account
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&acct); err != nil {
		return nil, fmt.Errorf("failed to fetch account with id %s: %w", id, err)
	}
	return &acct, nil
}

// GetByEmail retrieves an account by email. Returns nil when no account
// carries the email.
func (r *MongoAccountRepo) GetByEmail(email string) (*models.Account, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var acct models.Account
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&acct); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch account with email %s: %w", email, err)
	}
	return &acct, nil
}

// SetAdmin updates the admin flag on the account with the given email.
func (r *MongoAccountRepo) SetAdmin(email string, isAdmin bool) error {
	return r.setFlag(email, "is_admin", isAdmin)
}

// SetSuspended updates the suspension flag on the account with the given email.
func (r *MongoAccountRepo) SetSuspended(email string, suspended bool) error {
	return r.setFlag(email, "suspended", suspended)
}

func (r *MongoAccountRepo) setFlag(email, field string, value bool) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{field: value, "updated_at": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("failed to update account %s: %w", email, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("account with email %s not found", email)
	}
	return nil
}

// UpdateLoginTime stamps the last successful login.
func (r *MongoAccountRepo) UpdateLoginTime(id string, at time.Time) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"login_time": at}},
	); err != nil {
		return fmt.Errorf("failed to update login time for account %s: %w", id, err)
	}
	return nil
}
