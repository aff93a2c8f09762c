package userRepo

import (
	"context"
	"errors"

	"justnest/models"
)

var (
	// ErrUserNotFound is returned when no account matches.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUser is returned when email or phone is already registered.
	ErrDuplicateUser = errors.New("user already exists")
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// Create inserts a new user record, rejecting a taken email or phone.
	Create(ctx context.Context, user *models.User) error
	// GetByID retrieves a user by its unique ID.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetByLogin retrieves a user whose email (case-insensitive) or phone equals login.
	GetByLogin(ctx context.Context, login string) (*models.User, error)
	// IsUserAvailable reports whether neither email nor phone is registered.
	IsUserAvailable(ctx context.Context, email, phone string) (bool, error)
	// Update replaces an existing user record.
	Update(ctx context.Context, user *models.User) error
}
