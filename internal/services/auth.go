package services

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

import (
	"context"
	"errors"
	"strings"

	"github.com/sbilibin2017/date-tracker/internal/logger"
	"github.com/sbilibin2017/date-tracker/internal/models"
	"github.com/sbilibin2017/date-tracker/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, passwordHash, firstName, lastName string) (int64, error)
	UpdateProfile(ctx context.Context, id int64, firstName, lastName string) (*models.User, error)
}

// AuthService handles registration, login and profile changes.
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

// Register creates a user with a bcrypt password hash and returns it with its new id.
func (svc *AuthService) Register(ctx context.Context, username, password, firstName, lastName string) (*models.User, error) {
	username = strings.TrimSpace(username)
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)

	if username == "" || password == "" {
		return nil, validationError("Username and password are required")
	}
	if firstName == "" || lastName == "" {
		return nil, validationError("First name and last name are required")
	}

	existing, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if existing != nil {
		logger.FromContext(ctx).Infow("user already exists", "username", username)
		return nil, ErrDuplicateUsername
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to hash password", "err", err)
		return nil, err
	}

	id, err := svc.writer.Save(ctx, username, string(hashedPassword), firstName, lastName)
	if errors.Is(err, repositories.ErrUniqueViolation) {
		return nil, ErrDuplicateUsername
	}
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to save user", "err", err)
		return nil, err
	}

	return &models.User{
		ID:           id,
		Username:     username,
		PasswordHash: string(hashedPassword),
		FirstName:    firstName,
		LastName:     lastName,
	}, nil
}

// Login verifies the credentials. Unknown users and wrong passwords both
// yield ErrInvalidCredentials.
func (svc *AuthService) Login(ctx context.Context, username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, validationError("Username and password are required")
	}

	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		logger.FromContext(ctx).Infow("user does not exist", "username", username)
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.FromContext(ctx).Infow("invalid credentials", "username", username)
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// GetUser returns the user behind a session.
func (svc *AuthService) GetUser(ctx context.Context, userID int64) (*models.User, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get user", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, notFoundError("User not found")
	}
	return user, nil
}

// UpdateProfile replaces the first and last name of a user.
func (svc *AuthService) UpdateProfile(ctx context.Context, userID int64, firstName, lastName string) (*models.User, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if firstName == "" || lastName == "" {
		return nil, validationError("First name and last name are required")
	}

	user, err := svc.writer.UpdateProfile(ctx, userID, firstName, lastName)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to update profile", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, notFoundError("User not found")
	}
	return user, nil
}
