package issue

import (
	"context"
	"errors"
	"fmt"

	lawyerRepo "justnest/database/repository/lawyer"
	"justnest/models"
	"justnest/utils"
)

// UpdateStatus moves an issue to any status. Only lawyers and admins may do so.
func (s *DefaultIssueService) UpdateStatus(ctx context.Context, id string, in models.StatusUpdate, actor models.Identity) (*models.LegalIssue, error) {
	if !actor.CanManageIssues() {
		return nil, utils.NewForbiddenError(msgForbidden)
	}
	in.Status = utils.CleanText(in.Status)
	in.Notes = utils.CleanText(in.Notes)
	if errs := utils.ValidateStruct(in, statusMessages); len(errs) > 0 {
		return nil, utils.NewValidationError(errs)
	}

	issue, err := s.Repo.UpdateStatus(ctx, id, in.Status, in.Notes, s.now())
	if err != nil {
		return nil, mapRepoError(err)
	}

	s.notify(ctx, models.IssueRoom(issue.ID), models.EventIssueStatusChanged, map[string]any{
		"id":        issue.ID,
		"status":    issue.Status,
		"updatedAt": issue.UpdatedAt,
	})
	return issue, nil
}

// AssignLawyer attaches a directory lawyer to an issue and moves it to in-progress.
func (s *DefaultIssueService) AssignLawyer(ctx context.Context, id string, in models.AssignmentRequest, actor models.Identity) (*models.LegalIssue, error) {
	if !actor.CanManageIssues() {
		return nil, utils.NewForbiddenError(msgForbidden)
	}
	in.LawyerID = utils.CleanText(in.LawyerID)
	if errs := utils.ValidateStruct(in, assignmentMessages); len(errs) > 0 {
		return nil, utils.NewValidationError(errs)
	}

	if _, err := s.Repo.GetByID(ctx, id); err != nil {
		return nil, mapRepoError(err)
	}
	lawyer, err := s.Lawyers.GetByID(ctx, in.LawyerID)
	if err != nil {
		if errors.Is(err, lawyerRepo.ErrLawyerNotFound) {
			return nil, utils.NewNotFoundError(msgLawyerNotFound)
		}
		return nil, fmt.Errorf("failed to resolve lawyer %s: %w", in.LawyerID, err)
	}

	now := s.now()
	assignment := models.LawyerAssignment{
		ID:         lawyer.ID,
		Name:       lawyer.FullName(),
		AssignedAt: now,
		AssignedBy: actor.UserID,
	}
	issue, err := s.Repo.AssignLawyer(ctx, id, assignment, now)
	if err != nil {
		return nil, mapRepoError(err)
	}

	s.notify(ctx, models.IssueRoom(issue.ID), models.EventLawyerAssigned, map[string]any{
		"id":             issue.ID,
		"assignedLawyer": issue.AssignedLawyer,
		"status":         issue.Status,
	})
	return issue, nil
}
