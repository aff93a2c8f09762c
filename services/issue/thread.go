package issue

import (
	"context"

	"justnest/models"
	"justnest/utils"
)

// AddResponse appends a response attributed to the authenticated responder.
func (s *DefaultIssueService) AddResponse(ctx context.Context, id string, in models.ResponseInput, responder models.Identity) (*models.Response, error) {
	in.Content = utils.CleanText(in.Content)
	if errs := utils.ValidateStruct(in, responseMessages); len(errs) > 0 {
		return nil, utils.NewValidationError(errs)
	}

	now := s.now()
	resp := models.Response{
		ID:            utils.NewID(utils.ResponseIDPrefix),
		Content:       in.Content,
		ResponderType: responder.Role,
		ResponderID:   responder.UserID,
		ResponderName: responder.Name,
		CreatedAt:     now,
	}
	if err := s.Repo.AppendResponse(ctx, id, resp, now); err != nil {
		return nil, mapRepoError(err)
	}
	return &resp, nil
}
