package user

import (
	"context"
	"time"

	tokenRepo "justnest/database/repository/token"
	userRepo "justnest/database/repository/user"
	"justnest/models"
	"justnest/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// PasswordCost is the bcrypt cost used for new password hashes.
const PasswordCost = 12

type UserService interface {
	// Registration and authentication
	Register(ctx context.Context, req models.UserRegistration) (*models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	Authenticate(ctx context.Context, token string) (models.Identity, error)
	Logout(ctx context.Context, token string) error

	// Profile
	GetProfile(ctx context.Context, userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, req models.ProfileUpdate) (*models.User, error)
	ChangePassword(ctx context.Context, userID string, req models.PasswordChange) error

	// Password recovery
	ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req models.PasswordReset) error
}

// ResetDelivery hands a freshly issued reset token to the account holder.
type ResetDelivery func(ctx context.Context, u *models.User, token string) error

// LawyerVerifier tells whether an email belongs to a verified directory lawyer.
type LawyerVerifier interface {
	IsVerifiedEmail(ctx context.Context, email string) (bool, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo     userRepo.UserRepository
	Lawyers  LawyerVerifier
	Revoked  tokenRepo.RevocationStore
	Tokens   *utils.TokenManager
	Logger   *zap.Logger
	HashCost int
	Now      func() time.Time

	// DeliverReset sends reset tokens. When nil the token is only logged at debug level.
	DeliverReset ResetDelivery
}

// NewDefaultUserService wires the service with the production bcrypt cost.
func NewDefaultUserService(
	repo userRepo.UserRepository,
	lawyers LawyerVerifier,
	revoked tokenRepo.RevocationStore,
	tokens *utils.TokenManager,
	logger *zap.Logger,
) *DefaultUserService {
	return &DefaultUserService{
		Repo:     repo,
		Lawyers:  lawyers,
		Revoked:  revoked,
		Tokens:   tokens,
		Logger:   logger,
		HashCost: PasswordCost,
		Now:      time.Now,
	}
}

func (s *DefaultUserService) hash(password string) (string, error) {
	cost := s.HashCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
