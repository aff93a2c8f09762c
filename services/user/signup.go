package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	userRepo "justnest/database/repository/user"
	"justnest/models"
	"justnest/utils"

	"go.uber.org/zap"
)

// Register creates an account and signs the caller in.
func (s *DefaultUserService) Register(ctx context.Context, req models.UserRegistration) (*models.AuthResponse, error) {
	req.FirstName = utils.CleanText(req.FirstName)
	req.LastName = utils.CleanText(req.LastName)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Phone = strings.TrimSpace(req.Phone)
	req.UserType = strings.TrimSpace(req.UserType)
	req.PreferredLanguage = utils.CleanText(req.PreferredLanguage)
	if errs := utils.ValidateStruct(req, registrationMessages); len(errs) > 0 {
		return nil, utils.NewValidationError(errs)
	}

	available, err := s.Repo.IsUserAvailable(ctx, req.Email, req.Phone)
	if err != nil {
		return nil, fmt.Errorf("availability check failed: %w", err)
	}
	if !available {
		return nil, utils.NewConflictError(msgUserExists)
	}

	hashed, err := s.hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	lang := req.PreferredLanguage
	if lang == "" {
		lang = "en"
	}
	u := &models.User{
		ID:                utils.NewID(utils.UserIDPrefix),
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Email:             req.Email,
		Phone:             req.Phone,
		PasswordHash:      hashed,
		UserType:          req.UserType,
		PreferredLanguage: lang,
		CreatedAt:         s.Now().UTC(),
		Profile: models.UserProfile{
			Languages:         []string{lang},
			Interests:         []string{},
			EmergencyContacts: []string{},
		},
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, userRepo.ErrDuplicateUser) {
			return nil, utils.NewConflictError(msgUserExists)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	id, err := s.identityOf(ctx, u)
	if err != nil {
		return nil, err
	}
	token, err := s.Tokens.GenerateToken(id, utils.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	s.Logger.Info("User registered", zap.String("userId", u.ID), zap.String("userType", u.UserType))
	return &models.AuthResponse{User: u, Token: token}, nil
}

// identityOf resolves the role u acts with. A lawyer account needs a verified
// directory entry under the same email; until then it acts as a citizen.
func (s *DefaultUserService) identityOf(ctx context.Context, u *models.User) (models.Identity, error) {
	verified := false
	if u.UserType == models.UserTypeLawyer && s.Lawyers != nil {
		ok, err := s.Lawyers.IsVerifiedEmail(ctx, u.Email)
		if err != nil {
			return models.Identity{}, fmt.Errorf("failed to check lawyer verification: %w", err)
		}
		verified = ok
	}
	return models.Identity{
		UserID: u.ID,
		Name:   u.FullName(),
		Email:  u.Email,
		Role:   models.RoleForAccount(u.UserType, verified),
	}, nil
}
