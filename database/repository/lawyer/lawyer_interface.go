package lawyerRepo

import (
	"context"
	"errors"
	"time"

	"justnest/models"
)

var (
	// ErrLawyerNotFound is returned when no lawyer carries the requested id.
	ErrLawyerNotFound = errors.New("lawyer not found")
	// ErrDuplicateLawyer is returned when email, phone or bar council number is taken.
	ErrDuplicateLawyer = errors.New("lawyer already registered")
)

// LawyerRepository defines methods for lawyer directory data access.
type LawyerRepository interface {
	// Create inserts a new lawyer, rejecting duplicates.
	Create(ctx context.Context, lawyer *models.Lawyer) error
	// GetByID retrieves a lawyer by id.
	GetByID(ctx context.Context, id string) (*models.Lawyer, error)
	// Find returns one page of lawyers matching the query and the total match count.
	Find(ctx context.Context, q models.LawyerQuery) ([]models.Lawyer, int64, error)
	// ExistsDuplicate reports whether email, phone or bar council number is already registered.
	ExistsDuplicate(ctx context.Context, email, phone, barCouncilNumber string) (bool, error)
	// IsVerifiedEmail reports whether a verified lawyer is registered under email (case-insensitive).
	IsVerifiedEmail(ctx context.Context, email string) (bool, error)
	// SetVerified flips the verification flag and returns the updated lawyer.
	SetVerified(ctx context.Context, id string, verified bool, at time.Time) (*models.Lawyer, error)
}
