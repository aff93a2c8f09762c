package issue

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strconv"

	issueRepo "justnest/database/repository/issue"
	"justnest/models"
	"justnest/utils"
)

// ParseIssueQuery reads listing parameters, applying defaults for absent
// values and rejecting invalid ones.
func ParseIssueQuery(values url.Values) (models.IssueQuery, error) {
	q := models.IssueQuery{
		Filter: models.IssueFilter{
			Category: values.Get("category"),
			Urgency:  values.Get("urgency"),
			Language: values.Get("language"),
			Status:   values.Get("status"),
		},
		Page:      models.DefaultPage,
		Limit:     models.DefaultLimit,
		SortBy:    models.DefaultSortBy,
		SortOrder: models.DefaultSortOrder,
	}

	var errs []models.FieldError
	reject := func(field, value string) {
		errs = append(errs, models.FieldError{Field: field, Message: queryMessages[field], Value: value})
	}

	checkEnum := func(field, value string, allowed []string) {
		if value != "" && !slices.Contains(allowed, value) {
			reject(field, value)
		}
	}
	checkEnum("category", q.Filter.Category, models.IssueCategories)
	checkEnum("urgency", q.Filter.Urgency, models.UrgencyLevels)
	checkEnum("language", q.Filter.Language, models.SupportedLanguages)
	checkEnum("status", q.Filter.Status, models.IssueStatuses)

	if raw := values.Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			reject("page", raw)
		} else {
			q.Page = n
		}
	}
	if raw := values.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			reject("limit", raw)
		} else {
			q.Limit = n
		}
	}
	if raw := values.Get("sortBy"); raw != "" {
		if slices.Contains(models.IssueSortFields, raw) {
			q.SortBy = raw
		} else {
			reject("sortBy", raw)
		}
	}
	if raw := values.Get("sortOrder"); raw != "" {
		if raw == models.SortAsc || raw == models.SortDesc {
			q.SortOrder = raw
		} else {
			reject("sortOrder", raw)
		}
	}

	if len(errs) > 0 {
		return q, utils.NewValidationError(errs)
	}
	return q, nil
}

// List returns one page of summaries. Summaries never carry personal info.
func (s *DefaultIssueService) List(ctx context.Context, q models.IssueQuery) (*models.IssuePage, error) {
	issues, total, err := s.Repo.Find(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list legal issues: %w", err)
	}

	summaries := make([]models.IssueSummary, 0, len(issues))
	for i := range issues {
		summaries = append(summaries, summarize(&issues[i]))
	}
	return &models.IssuePage{
		Issues: summaries,
		Pagination: models.IssuePagination{
			Pagination:  models.NewPagination(q.Page, q.Limit, total),
			TotalIssues: total,
		},
	}, nil
}

// View increments the view counter and returns the detail projection.
func (s *DefaultIssueService) View(ctx context.Context, id string) (*models.IssueDetail, error) {
	issue, err := s.Repo.IncrementViews(ctx, id, s.now())
	if err != nil {
		return nil, mapRepoError(err)
	}
	detail := detailOf(issue)
	return &detail, nil
}

func mapRepoError(err error) error {
	if errors.Is(err, issueRepo.ErrIssueNotFound) {
		return utils.NewNotFoundError(msgIssueNotFound)
	}
	return err
}
