package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/reliefmap/reliefmap/internal/models"
	"github.com/reliefmap/reliefmap/pkg/crypto"
	apperrors "github.com/reliefmap/reliefmap/pkg/errors"
)

// RegisterInput describes the fields accepted at registration.
type RegisterInput struct {
	Username string
	Password string
	Role     string
}

// UserService manages account registration and credential verification.
type UserService struct {
	db *gorm.DB
}

// NewUserService constructs a UserService instance.
func NewUserService(db *gorm.DB) (*UserService, error) {
	if db == nil {
		return nil, errors.New("user service: db is required")
	}
	return &UserService{db: db}, nil
}

// Register provisions a new account with a hashed password. The role defaults
// to MEMBER when absent. A duplicate username never alters the existing
// account.
func (s *UserService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	ctx = ensureContext(ctx)

	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, apperrors.NewBadRequest("username is required")
	}
	if strings.TrimSpace(input.Password) == "" {
		return nil, apperrors.NewBadRequest("password is required")
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("username = ?", username).
		Count(&count).Error; err != nil {
		return nil, fmt.Errorf("user service: check username: %w", err)
	}
	if count > 0 {
		return nil, apperrors.ErrUsernameTaken
	}

	hashed, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("user service: hash password: %w", err)
	}

	user := &models.User{
		Username: username,
		Password: hashed,
		Role:     models.ParseRole(input.Role),
	}

	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		// The count check above races with concurrent registrations; the
		// unique index is the authority.
		if isUniqueConstraintError(err) {
			return nil, apperrors.ErrUsernameTaken
		}
		return nil, fmt.Errorf("user service: create user: %w", err)
	}

	return user, nil
}

// Authenticate verifies the username/password pair and returns the account.
// Unknown users and bad passwords are indistinguishable to the caller.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	ctx = ensureContext(ctx)

	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, apperrors.ErrInvalidCredentials
	}

	var user models.User
	err := s.db.WithContext(ctx).Where("username = ?", username).Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("user service: find user: %w", err)
	}

	if !crypto.VerifyPassword(user.Password, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return &user, nil
}

// GetByID loads a user by identifier.
func (s *UserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	ctx = ensureContext(ctx)

	var user models.User
	err := s.db.WithContext(ctx).Take(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("user service: get user: %w", err)
	}

	return &user, nil
}
