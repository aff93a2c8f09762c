package issue

import (
	"justnest/models"
	"justnest/utils"
)

const excerptLength = 200

func summarize(issue *models.LegalIssue) models.IssueSummary {
	return models.IssueSummary{
		ID:             issue.ID,
		Category:       issue.Category,
		Title:          issue.Title,
		Description:    utils.Truncate(issue.Description, excerptLength),
		Urgency:        issue.Urgency,
		Language:       issue.Language,
		Status:         issue.Status,
		Priority:       issue.Priority,
		CreatedAt:      issue.CreatedAt,
		Views:          issue.Views,
		ResponsesCount: len(issue.Responses),
		Anonymous:      issue.Anonymous,
		Location:       issue.Location,
		Tags:           nonNil(issue.Tags),
	}
}

func detailOf(issue *models.LegalIssue) models.IssueDetail {
	d := models.IssueDetail{
		ID:             issue.ID,
		Category:       issue.Category,
		Title:          issue.Title,
		Description:    issue.Description,
		Urgency:        issue.Urgency,
		Language:       issue.Language,
		Status:         issue.Status,
		Priority:       issue.Priority,
		Notes:          issue.Notes,
		CreatedAt:      issue.CreatedAt,
		UpdatedAt:      issue.UpdatedAt,
		Views:          issue.Views,
		Responses:      issue.Responses,
		Anonymous:      issue.Anonymous,
		Location:       issue.Location,
		Files:          nonNil(issue.Files),
		HasAudio:       issue.HasAudio,
		Tags:           nonNil(issue.Tags),
		AssignedLawyer: issue.AssignedLawyer,
	}
	if d.Responses == nil {
		d.Responses = []models.Response{}
	}
	if !issue.Anonymous {
		d.PersonalInfo = issue.PersonalInfo
	}
	return d
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
