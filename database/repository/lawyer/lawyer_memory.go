package lawyerRepo

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"justnest/models"
)

// MemoryLawyerRepo keeps the directory in process memory in registration order.
type MemoryLawyerRepo struct {
	mu      sync.RWMutex
	lawyers []*models.Lawyer
	byID    map[string]*models.Lawyer
}

// NewMemoryLawyerRepo creates an empty in-memory LawyerRepository.
func NewMemoryLawyerRepo() *MemoryLawyerRepo {
	return &MemoryLawyerRepo{byID: make(map[string]*models.Lawyer)}
}

func (r *MemoryLawyerRepo) Create(_ context.Context, lawyer *models.Lawyer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[lawyer.ID]; exists || r.duplicateLocked(lawyer.Email, lawyer.Phone, lawyer.BarCouncilNumber) {
		return ErrDuplicateLawyer
	}
	stored := lawyer.Clone()
	r.lawyers = append(r.lawyers, stored)
	r.byID[stored.ID] = stored
	return nil
}

func (r *MemoryLawyerRepo) GetByID(_ context.Context, id string) (*models.Lawyer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lawyer, ok := r.byID[id]
	if !ok {
		return nil, ErrLawyerNotFound
	}
	return lawyer.Clone(), nil
}

func (r *MemoryLawyerRepo) Find(_ context.Context, q models.LawyerQuery) ([]models.Lawyer, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]models.Lawyer, 0, len(r.lawyers))
	for _, lawyer := range r.lawyers {
		if matchesFilter(lawyer, q.Filter) {
			matched = append(matched, *lawyer.Clone())
		}
	}

	start, end := models.PageBounds(q.Page, q.Limit, len(matched))
	return matched[start:end], int64(len(matched)), nil
}

func (r *MemoryLawyerRepo) ExistsDuplicate(_ context.Context, email, phone, barCouncilNumber string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.duplicateLocked(email, phone, barCouncilNumber), nil
}

func (r *MemoryLawyerRepo) IsVerifiedEmail(_ context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, l := range r.lawyers {
		if l.IsVerified && strings.EqualFold(l.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryLawyerRepo) SetVerified(_ context.Context, id string, verified bool, at time.Time) (*models.Lawyer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lawyer, ok := r.byID[id]
	if !ok {
		return nil, ErrLawyerNotFound
	}
	lawyer.IsVerified = verified
	lawyer.UpdatedAt = at
	return lawyer.Clone(), nil
}

func (r *MemoryLawyerRepo) duplicateLocked(email, phone, barCouncilNumber string) bool {
	for _, l := range r.lawyers {
		if strings.EqualFold(l.Email, email) || l.Phone == phone || l.BarCouncilNumber == barCouncilNumber {
			return true
		}
	}
	return false
}

func matchesFilter(l *models.Lawyer, f models.LawyerFilter) bool {
	if f.Specialization != "" && !slices.Contains(l.Specializations, f.Specialization) {
		return false
	}
	if f.Language != "" && !slices.Contains(l.Languages, f.Language) {
		return false
	}
	if f.Location != "" && !strings.Contains(strings.ToLower(l.Location), strings.ToLower(f.Location)) {
		return false
	}
	if f.Verified != nil && l.IsVerified != *f.Verified {
		return false
	}
	if f.Availability != "" && l.Availability != f.Availability {
		return false
	}
	return true
}
