package lawyer

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	lawyerRepo "justnest/database/repository/lawyer"
	"justnest/models"
	"justnest/utils"

	"go.uber.org/zap"
)

const (
	msgLawyerExists   = "Lawyer with this email, phone, or bar council number already exists"
	msgLawyerNotFound = "Lawyer not found"
)

var registrationMessages = map[string]string{
	"firstName":        "First name must be at least 2 characters",
	"lastName":         "Last name must be at least 2 characters",
	"email":            "Valid email is required",
	"phone":            "Valid 10-digit phone number is required",
	"barCouncilNumber": "Bar Council number is required",
	"specializations":  "At least one specialization is required",
	"languages":        "At least one language is required",
	"experience":       "Experience must be a positive number",
	"location":         "Location is required",
	"availability":     "Availability must be available, busy or unavailable",
}

// Register adds an unverified lawyer to the directory.
func (s *DefaultLawyerService) Register(ctx context.Context, req models.LawyerRegistration) (*models.Lawyer, error) {
	req = cleanRegistration(req)
	if errs := utils.ValidateStruct(req, registrationMessages); len(errs) > 0 {
		return nil, utils.NewValidationError(errs)
	}

	taken, err := s.Repo.ExistsDuplicate(ctx, req.Email, req.Phone, req.BarCouncilNumber)
	if err != nil {
		return nil, fmt.Errorf("duplicate check failed: %w", err)
	}
	if taken {
		return nil, utils.NewConflictError(msgLawyerExists)
	}

	availability := req.Availability
	if availability == "" {
		availability = models.AvailabilityAvailable
	}
	now := s.Now().UTC()
	l := &models.Lawyer{
		ID:               utils.NewID(utils.LawyerIDPrefix),
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		Phone:            req.Phone,
		BarCouncilNumber: req.BarCouncilNumber,
		Specializations:  req.Specializations,
		Languages:        req.Languages,
		Experience:       req.Experience,
		Location:         req.Location,
		Bio:              req.Bio,
		ConsultationFee:  req.ConsultationFee,
		Availability:     availability,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.Repo.Create(ctx, l); err != nil {
		if errors.Is(err, lawyerRepo.ErrDuplicateLawyer) {
			return nil, utils.NewConflictError(msgLawyerExists)
		}
		return nil, fmt.Errorf("failed to register lawyer: %w", err)
	}
	s.Logger.Info("Lawyer registered", zap.String("lawyerId", l.ID))
	return l, nil
}

// List returns one page of the directory in its public projection.
func (s *DefaultLawyerService) List(ctx context.Context, values url.Values) (*models.LawyerPage, error) {
	q, err := parseQuery(values)
	if err != nil {
		return nil, err
	}
	lawyers, total, err := s.Repo.Find(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list lawyers: %w", err)
	}

	out := make([]models.LawyerSummary, 0, len(lawyers))
	for i := range lawyers {
		out = append(out, lawyers[i].Public())
	}
	return &models.LawyerPage{
		Lawyers: out,
		Pagination: models.LawyerPagination{
			Pagination:   models.NewPagination(q.Page, q.Limit, total),
			TotalLawyers: total,
		},
	}, nil
}

// Get returns the public projection of one lawyer.
func (s *DefaultLawyerService) Get(ctx context.Context, id string) (*models.LawyerSummary, error) {
	l, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err)
	}
	summary := l.Public()
	return &summary, nil
}

// Verify sets the verification flag of a lawyer.
func (s *DefaultLawyerService) Verify(ctx context.Context, id string, verified bool) (*models.Lawyer, error) {
	l, err := s.Repo.SetVerified(ctx, id, verified, s.Now().UTC())
	if err != nil {
		return nil, mapRepoError(err)
	}
	return l, nil
}

// SeedFromFile loads the YAML seed at path into the directory.
func (s *DefaultLawyerService) SeedFromFile(ctx context.Context, path string) (int, error) {
	return lawyerRepo.Seed(ctx, s.Repo, path, s.Now().UTC(), s.Logger)
}

func parseQuery(values url.Values) (models.LawyerQuery, error) {
	q := models.LawyerQuery{
		Filter: models.LawyerFilter{
			Specialization: values.Get("specialization"),
			Language:       values.Get("language"),
			Location:       strings.TrimSpace(values.Get("location")),
			Availability:   values.Get("availability"),
		},
		Page:  models.DefaultPage,
		Limit: models.DefaultLimit,
	}

	var errs []models.FieldError
	if raw := values.Get("verified"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			errs = append(errs, models.FieldError{Field: "verified", Message: "Verified must be true or false", Value: raw})
		} else {
			q.Filter.Verified = &v
		}
	}
	if raw := values.Get("page"); raw != "" {
		if n, err := strconv.Atoi(raw); err != nil || n < 1 {
			errs = append(errs, models.FieldError{Field: "page", Message: "Page must be a positive integer", Value: raw})
		} else {
			q.Page = n
		}
	}
	if raw := values.Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err != nil || n < 1 {
			errs = append(errs, models.FieldError{Field: "limit", Message: "Limit must be a positive integer", Value: raw})
		} else {
			q.Limit = n
		}
	}
	if len(errs) > 0 {
		return q, utils.NewValidationError(errs)
	}
	return q, nil
}

func mapRepoError(err error) error {
	if errors.Is(err, lawyerRepo.ErrLawyerNotFound) {
		return utils.NewNotFoundError(msgLawyerNotFound)
	}
	return err
}

func cleanRegistration(req models.LawyerRegistration) models.LawyerRegistration {
	req.FirstName = utils.CleanText(req.FirstName)
	req.LastName = utils.CleanText(req.LastName)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Phone = strings.TrimSpace(req.Phone)
	req.BarCouncilNumber = utils.CleanText(req.BarCouncilNumber)
	req.Location = utils.CleanText(req.Location)
	req.Bio = utils.CleanText(req.Bio)
	req.Availability = utils.CleanText(req.Availability)
	req.Specializations = cleanList(req.Specializations)
	req.Languages = cleanList(req.Languages)
	return req
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		if v = utils.CleanText(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
