package handlers

import (
	"net/http"

	"justnest/middleware"
	"justnest/models"
	"justnest/services/user"
	"justnest/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves account endpoints.
type AuthHandler struct {
	svc user.UserService
}

func NewAuthHandler(svc user.UserService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// RegisterUserHandler handles POST /auth/register.
func (h *AuthHandler) RegisterUserHandler(c *gin.Context) {
	var req models.UserRegistration
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	res, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Internal server error during registration")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, "User registered successfully", gin.H{
		"user":  res.User,
		"token": res.Token,
	})
}

// LoginHandler handles POST /auth/login.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	res, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Internal server error during login")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Login successful", gin.H{
		"user":  res.User,
		"token": res.Token,
	})
}

// GetProfileHandler handles GET /auth/profile.
func (h *AuthHandler) GetProfileHandler(c *gin.Context) {
	id, _ := middleware.GetIdentity(c)
	u, err := h.svc.GetProfile(c.Request.Context(), id.UserID)
	if err != nil {
		respondError(c, err, "Internal server error while fetching profile")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "", gin.H{"user": u})
}

// UpdateProfileHandler handles PUT /auth/profile.
func (h *AuthHandler) UpdateProfileHandler(c *gin.Context) {
	var req models.ProfileUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	id, _ := middleware.GetIdentity(c)
	u, err := h.svc.UpdateProfile(c.Request.Context(), id.UserID, req)
	if err != nil {
		respondError(c, err, "Internal server error while updating profile")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Profile updated successfully", gin.H{"user": u})
}

// ChangePasswordHandler handles PUT /auth/change-password.
func (h *AuthHandler) ChangePasswordHandler(c *gin.Context) {
	var req models.PasswordChange
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	id, _ := middleware.GetIdentity(c)
	if err := h.svc.ChangePassword(c.Request.Context(), id.UserID, req); err != nil {
		respondError(c, err, "Internal server error while changing password")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Password changed successfully", nil)
}

// LogoutHandler handles POST /auth/logout by revoking the presented token.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	if err := h.svc.Logout(c.Request.Context(), c.GetString(middleware.TokenKey)); err != nil {
		respondError(c, err, "Internal server error during logout")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Logout successful", nil)
}

// ForgotPasswordHandler handles POST /auth/forgot-password. The answer does not
// reveal whether the account exists.
func (h *AuthHandler) ForgotPasswordHandler(c *gin.Context) {
	var req models.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.svc.ForgotPassword(c.Request.Context(), req); err != nil {
		respondError(c, err, "Internal server error during password reset request")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, user.MsgResetRequested, nil)
}

// ResetPasswordHandler handles POST /auth/reset-password.
func (h *AuthHandler) ResetPasswordHandler(c *gin.Context) {
	var req models.PasswordReset
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.svc.ResetPassword(c.Request.Context(), req); err != nil {
		respondError(c, err, "Internal server error during password reset")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Password reset successfully", nil)
}
