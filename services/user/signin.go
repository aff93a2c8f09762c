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
	"golang.org/x/crypto/bcrypt"
)

// Login accepts an email or a phone number and issues a bearer token.
func (s *DefaultUserService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	req.Email = strings.TrimSpace(req.Email)
	if errs := utils.ValidateStruct(req, loginMessages); len(errs) > 0 {
		return nil, utils.NewValidationError(errs)
	}

	u, err := s.Repo.GetByLogin(ctx, req.Email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, utils.NewUnauthorizedError(msgInvalidCredentials)
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return nil, utils.NewUnauthorizedError(msgInvalidCredentials)
	}

	now := s.Now().UTC()
	u.LastLogin = &now
	if err := s.Repo.Update(ctx, u); err != nil {
		s.Logger.Warn("Failed to record last login", zap.String("userId", u.ID), zap.Error(err))
	}

	ttl := utils.TokenTTL
	if req.RememberMe {
		ttl = utils.RememberMeTokenTTL
	}
	id, err := s.identityOf(ctx, u)
	if err != nil {
		return nil, err
	}
	token, err := s.Tokens.GenerateToken(id, ttl)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &models.AuthResponse{User: u, Token: token}, nil
}

// Authenticate verifies a bearer token and returns the identity it carries.
func (s *DefaultUserService) Authenticate(ctx context.Context, token string) (models.Identity, error) {
	id, _, err := s.Tokens.ParseToken(token)
	if err != nil {
		return models.Identity{}, utils.NewUnauthorizedError(msgInvalidToken)
	}
	revoked, err := s.Revoked.IsRevoked(ctx, utils.HashToken(token))
	if err != nil {
		return models.Identity{}, fmt.Errorf("failed to check token revocation: %w", err)
	}
	if revoked {
		return models.Identity{}, utils.NewUnauthorizedError(msgRevokedToken)
	}
	return id, nil
}

// Logout revokes token until it would have expired anyway.
func (s *DefaultUserService) Logout(ctx context.Context, token string) error {
	_, expiresAt, err := s.Tokens.ParseToken(token)
	if err != nil {
		return utils.NewUnauthorizedError(msgInvalidToken)
	}
	ttl := expiresAt.Sub(s.Now())
	if ttl <= 0 {
		return nil
	}
	if err := s.Revoked.Revoke(ctx, utils.HashToken(token), ttl); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}
