package routes

import (
	"time"

	"justnest/handlers"
	"justnest/middleware"
	"justnest/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterIssueRoutes registers the legal issue endpoints.
func RegisterIssueRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	issues := api.Group("/legal-issues")
	{
		// Public endpoints. Intake records the submitter when a token is presented.
		issues.POST("", middleware.OptionalAuthMiddleware(hb.Auth, hb.AdminToken), hb.CreateIssueHandler)
		issues.GET("", hb.ListIssuesHandler)
		issues.GET("/stats/overview", hb.IssueStatsHandler)
		issues.GET("/:id", hb.GetIssueHandler)

		protected := issues.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.Auth, hb.AdminToken))
		protected.POST("/:id/responses", hb.AddResponseHandler)

		managed := protected.Group("")
		managed.Use(middleware.RequireRole(models.RoleLawyer, models.RoleAdmin))
		managed.PUT("/:id/status", hb.UpdateStatusHandler)
		managed.PUT("/:id/assign-lawyer", hb.AssignLawyerHandler)
	}
}

// RegisterAuthRoutes registers account endpoints.
func RegisterAuthRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	auth := api.Group("/auth")
	{
		auth.POST("/register", hb.RegisterUserHandler)
		auth.POST("/login", hb.LoginHandler)
		auth.POST("/forgot-password", hb.ForgotPasswordHandler)
		auth.POST("/reset-password", hb.ResetPasswordHandler)

		// Protected routes (Require Authentication)
		protected := auth.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.Auth, hb.AdminToken))
		protected.GET("/profile", hb.GetProfileHandler)
		protected.PUT("/profile", hb.UpdateProfileHandler)
		protected.PUT("/change-password", hb.ChangePasswordHandler)
		protected.POST("/logout", hb.LogoutHandler)
	}
}

// RegisterLawyerRoutes registers the lawyer directory endpoints.
func RegisterLawyerRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	lawyers := api.Group("/lawyers")
	{
		lawyers.POST("/register", hb.RegisterLawyerHandler)
		lawyers.GET("", hb.ListLawyersHandler)
		lawyers.GET("/:id", hb.GetLawyerHandler)
		lawyers.PUT("/:id/verify", middleware.JWTAuthAdminMiddleware(hb.AdminToken), hb.VerifyLawyerHandler)
	}
}

// RegisterTranslationRoutes registers the interface dictionary endpoints.
func RegisterTranslationRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	translations := api.Group("/translations")
	{
		translations.GET("", hb.ListLanguagesHandler)
		translations.GET("/:language", hb.GetTranslationsHandler)
		translations.POST("/:language", middleware.JWTAuthAdminMiddleware(hb.AdminToken), hb.UpdateTranslationsHandler)
	}
}

// RegisterRealtimeRoute registers the websocket event stream.
func RegisterRealtimeRoute(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	api.GET("/realtime", hb.RealtimeHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	api.GET("/health", hb.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	RegisterIssueRoutes(api, hb)
	RegisterAuthRoutes(api, hb)
	RegisterLawyerRoutes(api, hb)
	RegisterTranslationRoutes(api, hb)
	RegisterRealtimeRoute(api, hb)
	RegisterHealthRoute(api, hb)
}
