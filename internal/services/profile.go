package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/account-pages/internal/logger"
	"github.com/sbilibin2017/account-pages/internal/models"
	"github.com/sbilibin2017/account-pages/internal/repositories"
)

// ProfileReader defines the read operation needed for profile updates.
type ProfileReader interface {
	GetByID(ctx context.Context, id bson.ObjectID) (*models.User, error)
}

// ProfileWriter defines the write operations needed for profile updates.
type ProfileWriter interface {
	Update(ctx context.Context, id bson.ObjectID, username, email string, passwordHash *string) error
	Delete(ctx context.Context, id bson.ObjectID) error
}

// ProfileService handles profile edits and account deletion.
type ProfileService struct {
	reader      ProfileReader
	writer      ProfileWriter
	kafkaWriter KafkaWriter
	bcryptCost  int
}

// NewProfileService creates a new ProfileService instance. The Kafka writer
// may be nil, which disables event publishing.
func NewProfileService(reader ProfileReader, writer ProfileWriter, kafkaWriter KafkaWriter, bcryptCost int) *ProfileService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &ProfileService{
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
		bcryptCost:  bcryptCost,
	}
}

// Update overwrites username and email, and the password when newPassword
// is non-empty. It re-reads and returns the canonical record so callers can
// refresh their session snapshot. Concurrent updates to the same record
// race, last write wins.
func (svc *ProfileService) Update(ctx context.Context, id bson.ObjectID, newUsername, newEmail, newPassword string) (*models.User, error) {
	var passwordHash *string
	if newPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), svc.bcryptCost)
		if err != nil {
			logger.Log.Errorw("failed to hash password", "err", err)
			return nil, err
		}
		s := string(hash)
		passwordHash = &s
	}

	if err := svc.writer.Update(ctx, id, newUsername, newEmail, passwordHash); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			logger.Log.Infow("update for missing user", "id", id.Hex())
			return nil, ErrUserDoesNotExist
		}
		logger.Log.Errorw("failed to update user", "id", id.Hex(), "err", err)
		return nil, err
	}

	user, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to re-read user after update", "id", id.Hex(), "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserDoesNotExist
	}

	publishAccountEvent(ctx, svc.kafkaWriter, models.EventUserUpdated, user)

	return user, nil
}

// Delete removes the user record. Deleting an absent id fails with
// ErrUserDoesNotExist.
func (svc *ProfileService) Delete(ctx context.Context, id bson.ObjectID) error {
	user, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to read user before delete", "id", id.Hex(), "err", err)
		return err
	}

	if err := svc.writer.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			logger.Log.Infow("delete for missing user", "id", id.Hex())
			return ErrUserDoesNotExist
		}
		logger.Log.Errorw("failed to delete user", "id", id.Hex(), "err", err)
		return err
	}

	if user != nil {
		publishAccountEvent(ctx, svc.kafkaWriter, models.EventUserDeleted, user)
	}

	return nil
}
