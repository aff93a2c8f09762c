package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	userRepo "justnest/database/repository/user"
	"justnest/models"
	"justnest/utils"

	"golang.org/x/crypto/bcrypt"
)

// GetProfile returns the account of userID.
func (s *DefaultUserService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, utils.NewNotFoundError(msgUserNotFound)
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return u, nil
}

// UpdateProfile applies the non-empty fields of req. The nested profile is
// merged field by field.
func (s *DefaultUserService) UpdateProfile(ctx context.Context, userID string, req models.ProfileUpdate) (*models.User, error) {
	req.FirstName = utils.CleanText(req.FirstName)
	req.LastName = utils.CleanText(req.LastName)
	req.Phone = strings.TrimSpace(req.Phone)
	req.PreferredLanguage = utils.CleanText(req.PreferredLanguage)
	if errs := utils.ValidateStruct(req, profileMessages); len(errs) > 0 {
		return nil, utils.NewValidationError(errs)
	}

	u, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if req.FirstName != "" {
		u.FirstName = req.FirstName
	}
	if req.LastName != "" {
		u.LastName = req.LastName
	}
	if req.Phone != "" {
		u.Phone = req.Phone
	}
	if req.PreferredLanguage != "" {
		u.PreferredLanguage = req.PreferredLanguage
	}
	if p := req.Profile; p != nil {
		if loc := utils.CleanText(p.Location); loc != "" {
			u.Profile.Location = loc
		}
		if p.Languages != nil {
			u.Profile.Languages = p.Languages
		}
		if p.Interests != nil {
			u.Profile.Interests = p.Interests
		}
		if p.EmergencyContacts != nil {
			u.Profile.EmergencyContacts = p.EmergencyContacts
		}
	}

	if err := s.Repo.Update(ctx, u); err != nil {
		if errors.Is(err, userRepo.ErrDuplicateUser) {
			return nil, utils.NewConflictError(msgUserExists)
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return u, nil
}

// ChangePassword replaces the password after checking the current one.
func (s *DefaultUserService) ChangePassword(ctx context.Context, userID string, req models.PasswordChange) error {
	if errs := utils.ValidateStruct(req, passwordMessages); len(errs) > 0 {
		return utils.NewValidationError(errs)
	}
	u, err := s.GetProfile(ctx, userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.CurrentPassword)) != nil {
		return utils.NewUnauthorizedError(msgWrongPassword)
	}

	hashed, err := s.hash(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	u.PasswordHash = hashed
	if err := s.Repo.Update(ctx, u); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}
