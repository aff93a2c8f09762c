package issue

import (
	"context"
	"time"

	issueRepo "justnest/database/repository/issue"
	lawyerRepo "justnest/database/repository/lawyer"
	"justnest/models"
	"justnest/services/notification"

	"go.uber.org/zap"
)

// IssueService is the Legal Issue Record Service.
type IssueService interface {
	// Intake
	Submit(ctx context.Context, in models.IssueSubmission, submitter *models.Identity) (*models.LegalIssue, error)

	// Queries
	List(ctx context.Context, q models.IssueQuery) (*models.IssuePage, error)
	// View is a side-effecting read: every call increments the view counter.
	View(ctx context.Context, id string) (*models.IssueDetail, error)
	Stats(ctx context.Context) (*models.IssueStats, error)

	// Thread and transitions
	AddResponse(ctx context.Context, id string, in models.ResponseInput, responder models.Identity) (*models.Response, error)
	UpdateStatus(ctx context.Context, id string, in models.StatusUpdate, actor models.Identity) (*models.LegalIssue, error)
	AssignLawyer(ctx context.Context, id string, in models.AssignmentRequest, actor models.Identity) (*models.LegalIssue, error)
}

// DefaultIssueService is the production implementation.
type DefaultIssueService struct {
	Repo     issueRepo.IssueRepository
	Lawyers  lawyerRepo.LawyerRepository
	Notifier notification.NotificationService
	Logger   *zap.Logger
	Now      func() time.Time
}

// NewDefaultIssueService wires the service with the wall clock.
func NewDefaultIssueService(
	repo issueRepo.IssueRepository,
	lawyers lawyerRepo.LawyerRepository,
	notifier notification.NotificationService,
	logger *zap.Logger,
) *DefaultIssueService {
	return &DefaultIssueService{
		Repo:     repo,
		Lawyers:  lawyers,
		Notifier: notifier,
		Logger:   logger,
		Now:      time.Now,
	}
}

func (s *DefaultIssueService) now() time.Time {
	return s.Now().UTC()
}
