// File: justnest/main.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"justnest/config"
	"justnest/cron"
	"justnest/database"
	"justnest/database/repository"
	"justnest/handlers"
	"justnest/middleware"
	"justnest/routes"
	"justnest/services/issue"
	"justnest/services/lawyer"
	"justnest/services/notification"
	"justnest/services/translation"
	"justnest/services/user"
	"justnest/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := utils.InitRedis(ctx); err != nil {
		logger.Fatal("main: failed to connect to Redis", zap.Error(err))
	}
	defer utils.CloseRedis()

	// repositories.
	var repos repository.Set
	if config.UsesMongo() {
		if err := database.InitDB(ctx, logger); err != nil {
			logger.Fatal("main: failed to connect to MongoDB", zap.Error(err))
		}
		defer database.Close(context.Background())
		repos = repository.NewMongoSet(database.Database(), utils.AuthCacheClient, logger)
	} else {
		repos = repository.NewMemorySet(utils.AuthCacheClient)
	}
	logger.Info("Repositories ready", zap.String("store", config.AppConfig.Store), zap.Bool("redis", utils.RedisEnabled()))

	// notifications.
	hub := notification.NewHub(logger)
	sinks := []notification.Broadcaster{hub}
	instanceID := uuid.NewString()
	if utils.PubSubClient != nil {
		subscriber := notification.NewRelaySubscriber(utils.PubSubClient, hub, instanceID, logger)
		go func() {
			if err := subscriber.Run(ctx); err != nil {
				logger.Error("Relay subscriber stopped", zap.Error(err))
			}
		}()
		if err := cron.InitRelayWorker(ctx, notification.NewRedisPublisher(utils.PubSubClient), logger); err != nil {
			logger.Fatal("main: failed to start relay worker", zap.Error(err))
		}
		queue := asynq.NewClient(cron.QueueRedisOpt())
		defer queue.Close()
		sinks = append(sinks, notification.NewQueuedRelay(queue))
	}
	notifier := notification.NewDefaultNotificationService(sinks...)
	notifier.Origin = instanceID

	// services.
	tokens := utils.NewTokenManager(config.AppConfig.JWTSecret)
	userService := user.NewDefaultUserService(repos.Users, repos.Lawyers, repos.Tokens, tokens, logger)
	lawyerService := lawyer.NewDefaultLawyerService(repos.Lawyers, logger)
	issueService := issue.NewDefaultIssueService(repos.Issues, repos.Lawyers, notifier, logger)

	if path := config.AppConfig.LawyerSeedFile; path != "" {
		n, err := lawyerService.SeedFromFile(ctx, path)
		if err != nil {
			logger.Fatal("main: failed to seed lawyer directory", zap.String("file", path), zap.Error(err))
		}
		logger.Info("Lawyer directory seeded", zap.Int("inserted", n))
	}

	translations := translation.NewCatalog(logger)
	if path := config.AppConfig.TranslationSeedFile; path != "" {
		n, err := translations.SeedFromFile(path)
		if err != nil {
			logger.Warn("Translation seed not loaded", zap.String("file", path), zap.Error(err))
		} else {
			logger.Info("Translations seeded", zap.Int("languages", n))
		}
	}

	utils.StartHealthMonitor(ctx, []*redis.Client{utils.PubSubClient, utils.AuthCacheClient}, database.MongoClient)

	// Create the Gin router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	issueHandler := handlers.NewIssueHandler(issueService)
	authHandler := handlers.NewAuthHandler(userService)
	lawyerHandler := handlers.NewLawyerHandler(lawyerService)
	translationHandler := handlers.NewTranslationHandler(translations)
	realtimeHandler := handlers.NewRealtimeHandler(hub)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Auth:       userService,
		AdminToken: config.AppConfig.AdminToken,

		// Legal issue endpoints.
		CreateIssueHandler:  issueHandler.CreateIssueHandler,
		ListIssuesHandler:   issueHandler.ListIssuesHandler,
		GetIssueHandler:     issueHandler.GetIssueHandler,
		AddResponseHandler:  issueHandler.AddResponseHandler,
		UpdateStatusHandler: issueHandler.UpdateStatusHandler,
		AssignLawyerHandler: issueHandler.AssignLawyerHandler,
		IssueStatsHandler:   issueHandler.IssueStatsHandler,

		// Auth endpoints.
		RegisterUserHandler:   authHandler.RegisterUserHandler,
		LoginHandler:          authHandler.LoginHandler,
		GetProfileHandler:     authHandler.GetProfileHandler,
		UpdateProfileHandler:  authHandler.UpdateProfileHandler,
		ChangePasswordHandler: authHandler.ChangePasswordHandler,
		LogoutHandler:         authHandler.LogoutHandler,
		ForgotPasswordHandler: authHandler.ForgotPasswordHandler,
		ResetPasswordHandler:  authHandler.ResetPasswordHandler,

		// Lawyer directory endpoints.
		RegisterLawyerHandler: lawyerHandler.RegisterLawyerHandler,
		ListLawyersHandler:    lawyerHandler.ListLawyersHandler,
		GetLawyerHandler:      lawyerHandler.GetLawyerHandler,
		VerifyLawyerHandler:   lawyerHandler.VerifyLawyerHandler,

		// Translation endpoints.
		ListLanguagesHandler:      translationHandler.ListLanguagesHandler,
		GetTranslationsHandler:    translationHandler.GetTranslationsHandler,
		UpdateTranslationsHandler: translationHandler.UpdateTranslationsHandler,

		RealtimeHandler: realtimeHandler.StreamHandler,
		HealthHandler:   handlers.HealthHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "3000"
	}
	srv := &http.Server{
		Addr:              "0.0.0.0:" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	<-ctx.Done()
	logger.Sugar().Info("main: server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
