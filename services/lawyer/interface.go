package lawyer

import (
	"context"
	"net/url"
	"time"

	lawyerRepo "justnest/database/repository/lawyer"
	"justnest/models"

	"go.uber.org/zap"
)

// LawyerService manages the lawyer directory.
type LawyerService interface {
	Register(ctx context.Context, req models.LawyerRegistration) (*models.Lawyer, error)
	List(ctx context.Context, values url.Values) (*models.LawyerPage, error)
	Get(ctx context.Context, id string) (*models.LawyerSummary, error)
	Verify(ctx context.Context, id string, verified bool) (*models.Lawyer, error)
	SeedFromFile(ctx context.Context, path string) (int, error)
}

// DefaultLawyerService is the production implementation.
type DefaultLawyerService struct {
	Repo   lawyerRepo.LawyerRepository
	Logger *zap.Logger
	Now    func() time.Time
}

func NewDefaultLawyerService(repo lawyerRepo.LawyerRepository, logger *zap.Logger) *DefaultLawyerService {
	return &DefaultLawyerService{Repo: repo, Logger: logger, Now: time.Now}
}
