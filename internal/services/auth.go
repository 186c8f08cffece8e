package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/actrac/actrac-server/internal/logger"
	"github.com/actrac/actrac-server/internal/models"
	"github.com/actrac/actrac-server/internal/repositories"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("username or email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsernameOrEmail(ctx context.Context, username, email *string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, email, passwordHash string) (*models.UserDB, error)
}

// AuthService handles registration and login.
type AuthService struct {
	reader UserReader
	writer UserWriter
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
	}
}

// Register creates a new user with a bcrypt-hashed password and returns
// its public projection. The existence pre-check keeps the common
// duplicate path friendly; the database unique constraints close the
// remaining race between check and insert.
func (svc *AuthService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	existing, err := svc.reader.GetByUsernameOrEmail(ctx, &username, &email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "error", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Infow("user already exists", "username", username, "email", email)
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "error", err)
		return nil, err
	}

	user, err := svc.writer.Save(ctx, username, email, string(hashedPassword))
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateUser) {
			return nil, ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "error", err)
		return nil, err
	}

	return &models.User{ID: user.ID, Username: user.Username, Email: user.Email}, nil
}

// Login authenticates a user by email and password. A missing user and
// a wrong password collapse to the same error so the response never
// reveals which one it was.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := svc.reader.GetByUsernameOrEmail(ctx, nil, &email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &models.User{ID: user.ID, Username: user.Username, Email: user.Email}, nil
}
