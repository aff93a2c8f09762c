package issue

import (
	"context"
	"fmt"
	"math"

	"justnest/models"
)

// Stats scans every stored issue and aggregates the overview counters.
func (s *DefaultIssueService) Stats(ctx context.Context) (*models.IssueStats, error) {
	issues, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load legal issues: %w", err)
	}

	stats := &models.IssueStats{
		Total:      len(issues),
		Categories: map[string]int{},
		Languages:  map[string]int{},
		Urgency:    map[string]int{},
	}
	for _, issue := range issues {
		switch issue.Status {
		case models.StatusResolved:
			stats.Resolved++
		case models.StatusPending:
			stats.Pending++
		}
		if issue.Urgency == models.UrgencyEmergency {
			stats.Emergency++
		}
		stats.Categories[issue.Category]++
		stats.Languages[issue.Language]++
		stats.Urgency[issue.Urgency]++
	}
	if stats.Total > 0 {
		rate := float64(stats.Resolved) / float64(stats.Total) * 100
		stats.ResolutionRate = math.Round(rate*100) / 100
	}
	return stats, nil
}
