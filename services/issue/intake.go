package issue

import (
	"context"
	"fmt"

	"justnest/models"
	"justnest/utils"

	"go.uber.org/zap"
)

// Submit validates and stores a new issue, then announces it to the language
// room and to lawyers. Announcement failures never fail the submission.
func (s *DefaultIssueService) Submit(ctx context.Context, in models.IssueSubmission, submitter *models.Identity) (*models.LegalIssue, error) {
	in = cleanSubmission(in)
	if errs := utils.ValidateStruct(in, submissionMessages); len(errs) > 0 {
		return nil, utils.NewValidationError(errs)
	}

	now := s.now()
	issue := &models.LegalIssue{
		ID:          utils.NewID(utils.IssueIDPrefix),
		Category:    in.Category,
		Title:       in.Title,
		Description: in.Description,
		Urgency:     in.Urgency,
		Language:    in.Language,
		Anonymous:   in.Anonymous,
		Location:    in.Location,
		Files:       append([]string{}, in.Files...),
		HasAudio:    in.HasAudio,
		Consent:     in.Consent,
		Status:      models.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
		Responses:   []models.Response{},
		Tags:        []string{},
		Priority:    models.PriorityFor(in.Urgency),
	}
	if !in.Anonymous && in.PersonalInfo != nil {
		pi := *in.PersonalInfo
		issue.PersonalInfo = &pi
	}
	if submitter != nil {
		issue.SubmittedBy = submitter.UserID
	}

	if err := s.Repo.Create(ctx, issue); err != nil {
		return nil, fmt.Errorf("failed to store legal issue: %w", err)
	}

	s.notify(ctx, models.LanguageRoom(issue.Language), models.EventNewLegalIssue, map[string]any{
		"id":        issue.ID,
		"category":  issue.Category,
		"urgency":   issue.Urgency,
		"language":  issue.Language,
		"timestamp": issue.CreatedAt,
	})
	s.notify(ctx, models.RoomLawyers, models.EventNewCaseAvailable, map[string]any{
		"category": issue.Category,
		"urgency":  issue.Urgency,
		"language": issue.Language,
	})

	return issue, nil
}

// notify logs and swallows broadcast failures.
func (s *DefaultIssueService) notify(ctx context.Context, room, event string, data map[string]any) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.Notify(ctx, room, event, data); err != nil {
		s.Logger.Warn("Broadcast failed",
			zap.String("room", room),
			zap.String("event", event),
			zap.Error(err),
		)
	}
}

func cleanSubmission(in models.IssueSubmission) models.IssueSubmission {
	in.Category = utils.CleanText(in.Category)
	in.Title = utils.CleanText(in.Title)
	in.Description = utils.CleanText(in.Description)
	in.Urgency = utils.CleanText(in.Urgency)
	in.Language = utils.CleanText(in.Language)
	in.Location = utils.CleanText(in.Location)
	if in.PersonalInfo != nil {
		pi := models.PersonalInfo{
			Name:     utils.CleanText(in.PersonalInfo.Name),
			Phone:    utils.CleanText(in.PersonalInfo.Phone),
			Email:    utils.CleanText(in.PersonalInfo.Email),
			Location: utils.CleanText(in.PersonalInfo.Location),
		}
		in.PersonalInfo = &pi
	}
	return in
}
