package user

import (
	"context"
	"testing"
	"time"

	lawyerRepo "justnest/database/repository/lawyer"
	tokenRepo "justnest/database/repository/token"
	userRepo "justnest/database/repository/user"
	"justnest/models"
	"justnest/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T) *DefaultUserService {
	t.Helper()
	svc := NewDefaultUserService(
		userRepo.NewMemoryUserRepo(),
		lawyerRepo.NewMemoryLawyerRepo(),
		tokenRepo.NewMemoryRevocationStore(),
		utils.NewTokenManager("test-secret"),
		zap.NewNop(),
	)
	svc.HashCost = bcrypt.MinCost
	return svc
}

func registration() models.UserRegistration {
	return models.UserRegistration{
		FirstName: "Ravi",
		LastName:  "Kumar",
		Email:     "Ravi.Kumar@Example.com",
		Phone:     "9876543210",
		Password:  "s3cret-pass",
		UserType:  models.UserTypeCitizen,
	}
}

func requireKind(t *testing.T, err error, kind utils.ErrorKind) *utils.AppError {
	t.Helper()
	appErr, ok := utils.AsAppError(err)
	require.True(t, ok, "expected AppError, got %v", err)
	require.Equal(t, kind, appErr.Kind)
	return appErr
}

func TestRegister(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	ctx := context.Background()

	resp, err := svc.Register(ctx, registration())
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, "ravi.kumar@example.com", resp.User.Email)
	assert.Equal(t, "en", resp.User.PreferredLanguage)
	assert.NotEqual(t, "s3cret-pass", resp.User.PasswordHash)

	id, err := svc.Authenticate(ctx, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, id.UserID)
	assert.Equal(t, models.RoleCitizen, id.Role)
	assert.Equal(t, "Ravi Kumar", id.Name)
}

func TestRegister_LawyerRole(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	ctx := context.Background()
	req := registration()
	req.UserType = models.UserTypeLawyer

	// Without a verified directory entry the account acts as a citizen.
	resp, err := svc.Register(ctx, req)
	require.NoError(t, err)
	id, err := svc.Authenticate(ctx, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, models.RoleCitizen, id.Role)

	lawyers := svc.Lawyers.(*lawyerRepo.MemoryLawyerRepo)
	l := &models.Lawyer{ID: "LAW_1", Email: "ravi.kumar@example.com", Phone: "9000000000", BarCouncilNumber: "KA/1/2020"}
	require.NoError(t, lawyers.Create(ctx, l))
	_, err = lawyers.SetVerified(ctx, l.ID, true, time.Now())
	require.NoError(t, err)

	login, err := svc.Login(ctx, models.LoginRequest{Email: "Ravi.Kumar@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)
	id, err = svc.Authenticate(ctx, login.Token)
	require.NoError(t, err)
	assert.Equal(t, models.RoleLawyer, id.Role)
}

func TestLogin_CitizenNeverActsAsLawyer(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	ctx := context.Background()
	_, err := svc.Register(ctx, registration())
	require.NoError(t, err)

	lawyers := svc.Lawyers.(*lawyerRepo.MemoryLawyerRepo)
	l := &models.Lawyer{ID: "LAW_1", Email: "ravi.kumar@example.com", Phone: "9000000000", BarCouncilNumber: "KA/1/2020", IsVerified: true}
	require.NoError(t, lawyers.Create(ctx, l))

	login, err := svc.Login(ctx, models.LoginRequest{Email: "9876543210", Password: "s3cret-pass"})
	require.NoError(t, err)
	id, err := svc.Authenticate(ctx, login.Token)
	require.NoError(t, err)
	assert.Equal(t, models.RoleCitizen, id.Role)
}

func TestRegister_Errors(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	ctx := context.Background()
	_, err := svc.Register(ctx, registration())
	require.NoError(t, err)

	dup := registration()
	dup.Email = "someone.else@example.com"
	_, err = svc.Register(ctx, dup)
	appErr := requireKind(t, err, utils.KindConflict)
	assert.Equal(t, msgUserExists, appErr.Message)

	bad := registration()
	bad.Phone = "12345"
	bad.UserType = "judge"
	_, err = svc.Register(ctx, bad)
	appErr = requireKind(t, err, utils.KindValidation)
	require.Len(t, appErr.Errors, 2)
	assert.Equal(t, "phone", appErr.Errors[0].Field)
	assert.Equal(t, "userType", appErr.Errors[1].Field)
}

func TestLogin(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	ctx := context.Background()
	_, err := svc.Register(ctx, registration())
	require.NoError(t, err)

	tests := []struct {
		name  string
		req   models.LoginRequest
		valid bool
	}{
		{"by email", models.LoginRequest{Email: "ravi.kumar@example.com", Password: "s3cret-pass"}, true},
		{"by phone", models.LoginRequest{Email: "9876543210", Password: "s3cret-pass"}, true},
		{"wrong password", models.LoginRequest{Email: "9876543210", Password: "nope-nope"}, false},
		{"unknown login", models.LoginRequest{Email: "ghost@example.com", Password: "s3cret-pass"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			resp, err := svc.Login(ctx, tt.req)
			if !tt.valid {
				appErr := requireKind(t, err, utils.KindUnauthorized)
				assert.Equal(t, msgInvalidCredentials, appErr.Message)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, resp.User.LastLogin)
		})
	}
}

func TestLogin_RememberMeExtendsExpiry(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	ctx := context.Background()
	_, err := svc.Register(ctx, registration())
	require.NoError(t, err)

	resp, err := svc.Login(ctx, models.LoginRequest{Email: "9876543210", Password: "s3cret-pass", RememberMe: true})
	require.NoError(t, err)

	_, exp, err := svc.Tokens.ParseToken(resp.Token)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(utils.RememberMeTokenTTL), exp, time.Minute)
}

func TestLogout_RevokesToken(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	ctx := context.Background()
	resp, err := svc.Register(ctx, registration())
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, resp.Token))

	_, err = svc.Authenticate(ctx, resp.Token)
	appErr := requireKind(t, err, utils.KindUnauthorized)
	assert.Equal(t, msgRevokedToken, appErr.Message)

	_, err = svc.Authenticate(ctx, "not-a-token")
	appErr = requireKind(t, err, utils.KindUnauthorized)
	assert.Equal(t, msgInvalidToken, appErr.Message)
}

func TestForgotPassword(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	ctx := context.Background()
	resp, err := svc.Register(ctx, registration())
	require.NoError(t, err)

	var delivered []string
	svc.DeliverReset = func(_ context.Context, u *models.User, token string) error {
		assert.Equal(t, resp.User.ID, u.ID)
		delivered = append(delivered, token)
		return nil
	}

	require.NoError(t, svc.ForgotPassword(ctx, models.ForgotPasswordRequest{Email: " RAVI.KUMAR@example.com "}))
	require.Len(t, delivered, 1)

	// Unknown accounts succeed silently.
	require.NoError(t, svc.ForgotPassword(ctx, models.ForgotPasswordRequest{Email: "nobody@example.com"}))
	assert.Len(t, delivered, 1)

	err = svc.ForgotPassword(ctx, models.ForgotPasswordRequest{Email: "not-an-email"})
	appErr := requireKind(t, err, utils.KindValidation)
	assert.Equal(t, "Valid email is required", appErr.Errors[0].Message)

	_, err = svc.Authenticate(ctx, delivered[0])
	requireKind(t, err, utils.KindUnauthorized)
}

func TestResetPassword(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	ctx := context.Background()
	resp, err := svc.Register(ctx, registration())
	require.NoError(t, err)

	var token string
	svc.DeliverReset = func(_ context.Context, _ *models.User, tok string) error {
		token = tok
		return nil
	}
	require.NoError(t, svc.ForgotPassword(ctx, models.ForgotPasswordRequest{Email: "ravi.kumar@example.com"}))

	err = svc.ResetPassword(ctx, models.PasswordReset{Token: token, NewPassword: "short"})
	requireKind(t, err, utils.KindValidation)

	err = svc.ResetPassword(ctx, models.PasswordReset{Token: resp.Token, NewPassword: "reset-pass-1"})
	appErr := requireKind(t, err, utils.KindUnauthorized)
	assert.Equal(t, msgInvalidResetToken, appErr.Message)

	require.NoError(t, svc.ResetPassword(ctx, models.PasswordReset{Token: token, NewPassword: "reset-pass-1"}))

	_, err = svc.Login(ctx, models.LoginRequest{Email: "9876543210", Password: "s3cret-pass"})
	requireKind(t, err, utils.KindUnauthorized)
	_, err = svc.Login(ctx, models.LoginRequest{Email: "9876543210", Password: "reset-pass-1"})
	require.NoError(t, err)

	err = svc.ResetPassword(ctx, models.PasswordReset{Token: token, NewPassword: "reset-pass-2"})
	appErr = requireKind(t, err, utils.KindUnauthorized)
	assert.Equal(t, msgInvalidResetToken, appErr.Message)
}

func TestUpdateProfile(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	ctx := context.Background()
	resp, err := svc.Register(ctx, registration())
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(ctx, resp.User.ID, models.ProfileUpdate{
		FirstName: "Ravindra",
		Profile:   &models.UserProfile{Location: "Nagpur", Languages: []string{"mr", "hi"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Ravindra", updated.FirstName)
	assert.Equal(t, "Kumar", updated.LastName)
	assert.Equal(t, "Nagpur", updated.Profile.Location)
	assert.Equal(t, []string{"mr", "hi"}, updated.Profile.Languages)
	assert.Empty(t, updated.Profile.Interests)

	_, err = svc.UpdateProfile(ctx, resp.User.ID, models.ProfileUpdate{Phone: "12"})
	requireKind(t, err, utils.KindValidation)

	_, err = svc.UpdateProfile(ctx, "USR_missing", models.ProfileUpdate{FirstName: "Nobody"})
	requireKind(t, err, utils.KindNotFound)
}

func TestChangePassword(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	ctx := context.Background()
	resp, err := svc.Register(ctx, registration())
	require.NoError(t, err)

	err = svc.ChangePassword(ctx, resp.User.ID, models.PasswordChange{CurrentPassword: "wrong-pass", NewPassword: "brand-new-pass"})
	requireKind(t, err, utils.KindUnauthorized)

	err = svc.ChangePassword(ctx, resp.User.ID, models.PasswordChange{CurrentPassword: "s3cret-pass", NewPassword: "short"})
	requireKind(t, err, utils.KindValidation)

	require.NoError(t, svc.ChangePassword(ctx, resp.User.ID, models.PasswordChange{CurrentPassword: "s3cret-pass", NewPassword: "brand-new-pass"}))

	_, err = svc.Login(ctx, models.LoginRequest{Email: "9876543210", Password: "s3cret-pass"})
	requireKind(t, err, utils.KindUnauthorized)
	_, err = svc.Login(ctx, models.LoginRequest{Email: "9876543210", Password: "brand-new-pass"})
	require.NoError(t, err)
}
