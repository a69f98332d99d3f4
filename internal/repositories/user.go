package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/sbilibin2017/account-pages/internal/logger"
	"github.com/sbilibin2017/account-pages/internal/models"
)

// ErrUserNotFound is returned by write operations when no record matches the id.
var ErrUserNotFound = errors.New("user not found")

// UserReadRepository provides read-only access to the users collection.
type UserReadRepository struct {
	coll *mongo.Collection
}

func NewUserReadRepository(coll *mongo.Collection) *UserReadRepository {
	return &UserReadRepository{coll: coll}
}

// GetByEmail returns the user with the given email, or nil if absent.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

// GetByUsername returns the user with the given username, or nil if absent.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

// GetByID returns the user with the given id, or nil if absent.
func (r *UserReadRepository) GetByID(ctx context.Context, id bson.ObjectID) (*models.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *UserReadRepository) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var user models.User
	err := r.coll.FindOne(ctx, filter).Decode(&user)

	logger.Log.Infow("find user",
		"filter", filter,
		"error", err,
	)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// UserWriteRepository provides mutating access to the users collection.
type UserWriteRepository struct {
	coll *mongo.Collection
}

func NewUserWriteRepository(coll *mongo.Collection) *UserWriteRepository {
	return &UserWriteRepository{coll: coll}
}

// Create inserts a new user record and returns it with the assigned id.
// Uniqueness of username/email is not enforced here; callers check first.
func (w *UserWriteRepository) Create(ctx context.Context, username, email, passwordHash string) (*models.User, error) {
	now := time.Now().UTC()
	user := models.User{
		ID:           bson.NewObjectID(),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := w.coll.InsertOne(ctx, user)

	logger.Log.Infow("insert user",
		"username", username,
		"email", email,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &user, nil
}

// Update applies a partial update to the record with the given id.
// The password hash is only set when non-nil. Returns ErrUserNotFound
// when no record matches.
func (w *UserWriteRepository) Update(ctx context.Context, id bson.ObjectID, username, email string, passwordHash *string) error {
	set := bson.M{
		"username":   username,
		"email":      email,
		"updated_at": time.Now().UTC(),
	}
	if passwordHash != nil {
		set["password"] = *passwordHash
	}

	res, err := w.coll.UpdateByID(ctx, id, bson.M{"$set": set})

	logger.Log.Infow("update user",
		"id", id.Hex(),
		"username", username,
		"email", email,
		"error", err,
	)

	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}

	return nil
}

// Delete removes the record with the given id. Returns ErrUserNotFound
// when no record matches, so a second delete of the same id fails.
func (w *UserWriteRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := w.coll.DeleteOne(ctx, bson.M{"_id": id})

	logger.Log.Infow("delete user",
		"id", id.Hex(),
		"error", err,
	)

	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrUserNotFound
	}

	return nil
}
