// File: justnest/handlers/bundle.go
package handlers

import (
	"justnest/middleware"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Auth       middleware.Authenticator
	AdminToken string

	// Legal issue endpoints
	CreateIssueHandler  gin.HandlerFunc
	ListIssuesHandler   gin.HandlerFunc
	GetIssueHandler     gin.HandlerFunc
	AddResponseHandler  gin.HandlerFunc
	UpdateStatusHandler gin.HandlerFunc
	AssignLawyerHandler gin.HandlerFunc
	IssueStatsHandler   gin.HandlerFunc

	// Auth endpoints
	RegisterUserHandler   gin.HandlerFunc
	LoginHandler          gin.HandlerFunc
	GetProfileHandler     gin.HandlerFunc
	UpdateProfileHandler  gin.HandlerFunc
	ChangePasswordHandler gin.HandlerFunc
	LogoutHandler         gin.HandlerFunc
	ForgotPasswordHandler gin.HandlerFunc
	ResetPasswordHandler  gin.HandlerFunc

	// Lawyer directory endpoints
	RegisterLawyerHandler gin.HandlerFunc
	ListLawyersHandler    gin.HandlerFunc
	GetLawyerHandler      gin.HandlerFunc
	VerifyLawyerHandler   gin.HandlerFunc

	// Translation endpoints
	ListLanguagesHandler      gin.HandlerFunc
	GetTranslationsHandler    gin.HandlerFunc
	UpdateTranslationsHandler gin.HandlerFunc

	// Realtime and health
	RealtimeHandler gin.HandlerFunc
	HealthHandler   gin.HandlerFunc
}
