package issueRepo

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"justnest/models"
)

// MemoryIssueRepo keeps issues in process memory in insertion order.
type MemoryIssueRepo struct {
	mu     sync.RWMutex
	issues []*models.LegalIssue
	byID   map[string]*models.LegalIssue
}

// NewMemoryIssueRepo creates an empty in-memory IssueRepository.
func NewMemoryIssueRepo() *MemoryIssueRepo {
	return &MemoryIssueRepo{byID: make(map[string]*models.LegalIssue)}
}

func (r *MemoryIssueRepo) Create(_ context.Context, issue *models.LegalIssue) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[issue.ID]; exists {
		return fmt.Errorf("legal issue with id %s already exists", issue.ID)
	}
	stored := issue.Clone()
	r.issues = append(r.issues, stored)
	r.byID[stored.ID] = stored
	return nil
}

func (r *MemoryIssueRepo) GetByID(_ context.Context, id string) (*models.LegalIssue, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	issue, ok := r.byID[id]
	if !ok {
		return nil, ErrIssueNotFound
	}
	return issue.Clone(), nil
}

func (r *MemoryIssueRepo) GetAll(_ context.Context) ([]models.LegalIssue, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.LegalIssue, 0, len(r.issues))
	for _, issue := range r.issues {
		out = append(out, *issue.Clone())
	}
	return out, nil
}

func (r *MemoryIssueRepo) Find(_ context.Context, q models.IssueQuery) ([]models.LegalIssue, int64, error) {
	r.mu.RLock()
	matched := make([]*models.LegalIssue, 0, len(r.issues))
	for _, issue := range r.issues {
		if matchesFilter(issue, q.Filter) {
			matched = append(matched, issue.Clone())
		}
	}
	r.mu.RUnlock()

	desc := q.SortOrder != models.SortAsc
	slices.SortFunc(matched, func(a, b *models.LegalIssue) int {
		c := compareField(a, b, q.SortBy)
		if c == 0 {
			c = strings.Compare(a.ID, b.ID)
		}
		if desc {
			return -c
		}
		return c
	})

	start, end := models.PageBounds(q.Page, q.Limit, len(matched))
	page := make([]models.LegalIssue, 0, end-start)
	for _, issue := range matched[start:end] {
		page = append(page, *issue)
	}
	return page, int64(len(matched)), nil
}

func (r *MemoryIssueRepo) IncrementViews(_ context.Context, id string, at time.Time) (*models.LegalIssue, error) {
	return r.mutate(id, func(issue *models.LegalIssue) {
		issue.Views++
		issue.UpdatedAt = at
	})
}

func (r *MemoryIssueRepo) AppendResponse(_ context.Context, id string, resp models.Response, at time.Time) error {
	_, err := r.mutate(id, func(issue *models.LegalIssue) {
		issue.Responses = append(issue.Responses, resp)
		issue.UpdatedAt = at
	})
	return err
}

func (r *MemoryIssueRepo) UpdateStatus(_ context.Context, id, status, notes string, at time.Time) (*models.LegalIssue, error) {
	return r.mutate(id, func(issue *models.LegalIssue) {
		issue.Status = status
		if notes != "" {
			issue.Notes = notes
		}
		issue.UpdatedAt = at
	})
}

func (r *MemoryIssueRepo) AssignLawyer(_ context.Context, id string, assignment models.LawyerAssignment, at time.Time) (*models.LegalIssue, error) {
	return r.mutate(id, func(issue *models.LegalIssue) {
		issue.AssignedLawyer = &assignment
		issue.Status = models.StatusInProgress
		issue.UpdatedAt = at
	})
}

// mutate applies fn to the stored issue under the write lock and returns a copy.
func (r *MemoryIssueRepo) mutate(id string, fn func(*models.LegalIssue)) (*models.LegalIssue, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	issue, ok := r.byID[id]
	if !ok {
		return nil, ErrIssueNotFound
	}
	fn(issue)
	return issue.Clone(), nil
}

func matchesFilter(issue *models.LegalIssue, f models.IssueFilter) bool {
	if f.Category != "" && issue.Category != f.Category {
		return false
	}
	if f.Urgency != "" && issue.Urgency != f.Urgency {
		return false
	}
	if f.Language != "" && issue.Language != f.Language {
		return false
	}
	if f.Status != "" && issue.Status != f.Status {
		return false
	}
	return true
}

// compareField compares the raw values of a sortable field.
func compareField(a, b *models.LegalIssue, field string) int {
	switch field {
	case "createdAt":
		return a.CreatedAt.Compare(b.CreatedAt)
	case "updatedAt":
		return a.UpdatedAt.Compare(b.UpdatedAt)
	case "views":
		return cmp.Compare(a.Views, b.Views)
	case "title":
		return strings.Compare(a.Title, b.Title)
	case "category":
		return strings.Compare(a.Category, b.Category)
	case "urgency":
		return strings.Compare(a.Urgency, b.Urgency)
	case "language":
		return strings.Compare(a.Language, b.Language)
	case "status":
		return strings.Compare(a.Status, b.Status)
	case "priority":
		return strings.Compare(a.Priority, b.Priority)
	default:
		return strings.Compare(a.ID, b.ID)
	}
}
