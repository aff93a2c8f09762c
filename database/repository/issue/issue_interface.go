package issueRepo

import (
	"context"
	"errors"
	"time"

	"justnest/models"
)

// ErrIssueNotFound is returned when no issue carries the requested id.
var ErrIssueNotFound = errors.New("legal issue not found")

// IssueRepository defines methods for legal issue data access.
// Every mutation touches a single record atomically.
type IssueRepository interface {
	// Create inserts a new issue.
	Create(ctx context.Context, issue *models.LegalIssue) error
	// GetByID retrieves an issue without touching its view counter.
	GetByID(ctx context.Context, id string) (*models.LegalIssue, error)
	// GetAll retrieves every stored issue.
	GetAll(ctx context.Context) ([]models.LegalIssue, error)
	// Find returns one page of issues matching the query and the total match count.
	Find(ctx context.Context, q models.IssueQuery) ([]models.LegalIssue, int64, error)
	// IncrementViews adds one view, stamps updatedAt and returns the updated issue.
	IncrementViews(ctx context.Context, id string, at time.Time) (*models.LegalIssue, error)
	// AppendResponse adds a response to the end of the thread.
	AppendResponse(ctx context.Context, id string, resp models.Response, at time.Time) error
	// UpdateStatus sets the status, and the notes when non-empty.
	UpdateStatus(ctx context.Context, id, status, notes string, at time.Time) (*models.LegalIssue, error)
	// AssignLawyer stores the assignment and forces the status to in-progress.
	AssignLawyer(ctx context.Context, id string, assignment models.LawyerAssignment, at time.Time) (*models.LegalIssue, error)
}
