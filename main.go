package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gatherly/config"
	"gatherly/cron"
	"gatherly/database"
	adminRepoPkg "gatherly/database/repository/admin"
	auditRepoPkg "gatherly/database/repository/audit"
	eventRepoPkg "gatherly/database/repository/event"
	"gatherly/handlers"
	"gatherly/middleware"
	"gatherly/routes"
	"gatherly/services/event"
	"gatherly/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	storageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize banner storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	evtRepo := eventRepoPkg.NewMongoEventRepo()
	audRepo := auditRepoPkg.NewMongoAuditRepo()
	admRepo := adminRepoPkg.NewMongoAdminRepo()

	// background reminder worker and its enqueue client.
	reminderClient := cron.NewReminderClient()
	defer reminderClient.Close()
	cron.InitReminderWorker(audRepo)

	// services.
	eventService := &event.DefaultEventService{
		Repo:         evtRepo,
		AuditRepo:    audRepo,
		Reminders:    reminderClient,
		PreviewCache: utils.GetPreviewCacheClient(),
	}

	authHandler := handlers.NewAuthHandler(admRepo)
	eventHandler := handlers.NewEventHandler(eventService, logger)
	auditHandler := handlers.NewAuditHandler(audRepo)
	storageHandler := handlers.NewStorageHandler(storageService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		AdminRepo: admRepo,

		// Auth endpoints.
		LoginHandler: authHandler.LoginHandler,

		// Event endpoints.
		CreateEventHandler:         eventHandler.CreateEventHandler,
		PreviewRecurrenceHandler:   eventHandler.PreviewRecurrenceHandler,
		GetEventHandler:            eventHandler.GetEventHandler,
		ListCommunityEventsHandler: eventHandler.ListCommunityEventsHandler,
		GetSeriesHandler:           eventHandler.GetSeriesHandler,
		UpdateEventHandler:         eventHandler.UpdateEventHandler,
		DeleteSeriesHandler:        eventHandler.DeleteSeriesHandler,

		// Audit endpoints.
		ListRecentAuditHandler: auditHandler.ListRecentHandler,
		ListEntityAuditHandler: auditHandler.ListByEntityHandler,

		// Storage endpoints.
		UploadBannerHandler: storageHandler.UploadBannerHandler,
		GetBannerURLHandler: storageHandler.GetBannerURLHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
