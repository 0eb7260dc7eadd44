package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	cacheadapter "workdeck/internal/adapter/cache"
	dbadapter "workdeck/internal/adapter/db"
	httpadapter "workdeck/internal/adapter/http"
	"workdeck/internal/adapter/http/handlers"
	httpmiddleware "workdeck/internal/adapter/http/middleware"
	"workdeck/internal/adapter/http/validation"
	"workdeck/internal/app/service"
	"workdeck/internal/auth"
	"workdeck/internal/config"
	"workdeck/pkg/translator"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cfg := config.LoadConfig()
	if cfg.JwtSecret == "" {
		logger.Fatal("JWT_SECRET is required")
	}

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	progressCache, err := cacheadapter.NewProgressCache(cfg.ProgressCacheSize)
	if err != nil {
		logger.Fatal("failed to build progress cache", zap.Error(err))
	}

	clientRepo := dbadapter.NewClientRepository(db)
	projectRepo := dbadapter.NewProjectRepository(db)
	applicationRepo := dbadapter.NewApplicationRepository(db)
	taskRepo := dbadapter.NewTaskRepository(db)
	commentRepo := dbadapter.NewCommentRepository(db)
	activityRepo := dbadapter.NewActivityRepository(db)
	notificationRepo := dbadapter.NewNotificationRepository(db)
	timeEntryRepo := dbadapter.NewTimeEntryRepository(db)
	userRepo := dbadapter.NewUserRepository(db)
	permissionRepo := dbadapter.NewPermissionRepository(db)
	productRepo := dbadapter.NewProductRepository(db)
	subscriptionRepo := dbadapter.NewSubscriptionRepository(db)

	tokens := auth.NewTokenManager(cfg.JwtSecret, cfg.TokenTTL)
	clock := service.SystemClock{}

	permissionService := service.NewPermissionService(permissionRepo, projectRepo, clientRepo, userRepo, activityRepo)
	authService := service.NewAuthService(userRepo, tokens, clock)
	clientService := service.NewClientService(clientRepo, permissionService)
	projectService := service.NewProjectService(projectRepo, applicationRepo, clientRepo, taskRepo, activityRepo, permissionService, progressCache)
	applicationService := service.NewApplicationService(applicationRepo)
	taskService := service.NewTaskService(taskRepo, projectRepo, applicationRepo, userRepo, activityRepo, notificationRepo, permissionService, progressCache)
	commentService := service.NewCommentService(commentRepo, taskRepo, userRepo, activityRepo, notificationRepo, permissionService)
	timeEntryService := service.NewTimeEntryService(timeEntryRepo, taskRepo, permissionService)
	activityService := service.NewActivityService(activityRepo)
	notificationService := service.NewNotificationService(notificationRepo)
	userService := service.NewUserService(userRepo, cfg.BcryptCost)
	productService := service.NewProductService(productRepo)
	subscriptionService := service.NewSubscriptionService(subscriptionRepo)

	validation.RegisterCustomValidators()

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.RequestIDMiddleware(), httpmiddleware.GinZapMiddleware(logger))
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Error(err))
	}

	httpadapter.RegisterRoutes(r, tokens, httpadapter.Handlers{
		Health:        handlers.NewHealthHandler(db),
		Auth:          handlers.NewAuthHandler(authService),
		Clients:       handlers.NewClientHandler(clientService),
		Projects:      handlers.NewProjectHandler(projectService),
		Applications:  handlers.NewApplicationHandler(applicationService),
		Tasks:         handlers.NewTaskHandler(taskService),
		Comments:      handlers.NewCommentHandler(commentService),
		TimeEntries:   handlers.NewTimeEntryHandler(timeEntryService),
		Activities:    handlers.NewActivityHandler(activityService),
		Notifications: handlers.NewNotificationHandler(notificationService),
		Users:         handlers.NewUserHandler(userService, permissionService),
		Products:      handlers.NewProductHandler(productService, clock),
		Subscriptions: handlers.NewSubscriptionHandler(subscriptionService, clock),
	})

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
