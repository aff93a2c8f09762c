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

// ForgotPassword issues a one-hour reset token when the email belongs to an
// account. Callers answer MsgResetRequested either way so accounts cannot be
// enumerated.
func (s *DefaultUserService) ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) error {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if errs := utils.ValidateStruct(req, forgotPasswordMessages); len(errs) > 0 {
		return utils.NewValidationError(errs)
	}

	u, err := s.Repo.GetByLogin(ctx, req.Email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil
		}
		return fmt.Errorf("failed to fetch user: %w", err)
	}

	token, err := s.Tokens.GenerateResetToken(u.ID, utils.PasswordResetTokenTTL)
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}
	if s.DeliverReset == nil {
		s.Logger.Debug("Password reset token issued", zap.String("userId", u.ID), zap.String("token", token))
		return nil
	}
	if err := s.DeliverReset(ctx, u, token); err != nil {
		return fmt.Errorf("failed to deliver reset token: %w", err)
	}
	s.Logger.Info("Password reset token issued", zap.String("userId", u.ID))
	return nil
}

// ResetPassword sets a new password with a reset token. A token works once.
func (s *DefaultUserService) ResetPassword(ctx context.Context, req models.PasswordReset) error {
	req.Token = strings.TrimSpace(req.Token)
	if errs := utils.ValidateStruct(req, resetPasswordMessages); len(errs) > 0 {
		return utils.NewValidationError(errs)
	}

	userID, expiresAt, err := s.Tokens.ParseResetToken(req.Token)
	if err != nil {
		return utils.NewUnauthorizedError(msgInvalidResetToken)
	}
	hash := utils.HashToken(req.Token)
	used, err := s.Revoked.IsRevoked(ctx, hash)
	if err != nil {
		return fmt.Errorf("failed to check token revocation: %w", err)
	}
	if used {
		return utils.NewUnauthorizedError(msgInvalidResetToken)
	}

	u, err := s.GetProfile(ctx, userID)
	if err != nil {
		return err
	}
	hashed, err := s.hash(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	u.PasswordHash = hashed
	if err := s.Repo.Update(ctx, u); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	if ttl := expiresAt.Sub(s.Now()); ttl > 0 {
		if err := s.Revoked.Revoke(ctx, hash, ttl); err != nil {
			s.Logger.Warn("Failed to revoke used reset token", zap.String("userId", u.ID), zap.Error(err))
		}
	}
	s.Logger.Info("Password reset", zap.String("userId", u.ID))
	return nil
}
