package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/account-pages/internal/logger"
	"github.com/sbilibin2017/account-pages/internal/models"
)

// Error variables
var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrUserDoesNotExist   = errors.New("user does not exist")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, username, email, passwordHash string) (*models.User, error)
}

// AuthService handles signup and login.
type AuthService struct {
	reader      UserReader
	writer      UserWriter
	kafkaWriter KafkaWriter
	bcryptCost  int
}

// NewAuthService creates a new AuthService instance. The Kafka writer may
// be nil, which disables event publishing.
func NewAuthService(reader UserReader, writer UserWriter, kafkaWriter KafkaWriter, bcryptCost int) *AuthService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
		bcryptCost:  bcryptCost,
	}
}

// Register creates a new user. The username check and the insert are two
// separate store operations, so concurrent signups with the same username
// can still race through; there is no uniqueness constraint below this.
func (svc *AuthService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	existing, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check username", "username", username, "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Infow("username already taken", "username", username)
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), svc.bcryptCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user, err := svc.writer.Create(ctx, username, email, string(hash))
	if err != nil {
		logger.Log.Errorw("failed to create user", "username", username, "err", err)
		return nil, err
	}

	publishAccountEvent(ctx, svc.kafkaWriter, models.EventUserRegistered, user)

	return user, nil
}

// Login authenticates a user by email and password and returns the record.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user by email", "err", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Infow("login for unknown email", "email", email)
		return nil, ErrUserDoesNotExist
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("invalid credentials", "email", email)
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
