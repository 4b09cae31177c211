// File: sctclinic/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sctclinic/config"
	"sctclinic/cron"
	"sctclinic/database"
	adminRepoPkg "sctclinic/database/repository/admin"
	appointmentRepoPkg "sctclinic/database/repository/appointment"
	blockedDateRepoPkg "sctclinic/database/repository/blockeddate"
	notificationRepoPkg "sctclinic/database/repository/notification"
	"sctclinic/handlers"
	"sctclinic/middleware"
	"sctclinic/routes"
	adminSvc "sctclinic/services/admin"
	"sctclinic/services/appointment"
	"sctclinic/services/availability"
	"sctclinic/services/blockeddate"
	"sctclinic/services/notify"
	"sctclinic/services/tasks"
	"sctclinic/services/ticker"
	"sctclinic/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	utils.InitRateLimitClient()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	blockedRepo := blockedDateRepoPkg.NewMongoBlockedDateRepo()
	notifRepo := notificationRepoPkg.NewMongoNotificationRepo()
	apptRepo := appointmentRepoPkg.NewMongoAppointmentRepo()
	admRepo := adminRepoPkg.NewMongoAdminRepo()

	for _, ensure := range []func() error{
		blockedRepo.EnsureIndexes,
		notifRepo.EnsureIndexes,
		apptRepo.EnsureIndexes,
		admRepo.EnsureIndexes,
	} {
		if err := ensure(); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure indexes: %v", err)
		}
	}

	// services.
	mailer := notify.NewSendGridMailer()
	reminderScheduler := tasks.NewAsynqScheduler()

	resolver := &availability.DefaultResolver{
		BlockedRepo:     blockedRepo,
		AppointmentRepo: apptRepo,
	}

	blockedDateService := &blockeddate.DefaultService{
		Repo:      blockedRepo,
		NotifRepo: notifRepo,
		Cache:     utils.GetCacheClient(),
	}

	appointmentService := &appointment.DefaultService{
		Repo:          apptRepo,
		BlockedRepo:   blockedRepo,
		Resolver:      resolver,
		Mailer:        mailer,
		Reminders:     reminderScheduler,
		VerifyCaptcha: utils.VerifyCaptcha,
	}

	feedService := &ticker.DefaultFeedService{
		Repo:  notifRepo,
		Cache: utils.GetCacheClient(),
	}

	authService := &adminSvc.DefaultAuthService{
		Repo:     admRepo,
		Sessions: utils.GetAuthCacheClient(),
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		AdminRepo:    admRepo,
		Auth:         handlers.NewAdminAuthHandler(authService),
		BlockedDates: handlers.NewBlockedDateHandler(blockedDateService),
		Appointments: handlers.NewAppointmentHandler(appointmentService),
		Ticker:       handlers.NewTickerHandler(feedService),
		Slots:        handlers.NewSlotHandler(resolver),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background reminder delivery and health monitoring.
	cron.InitReminderWorker(mailer)
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()},
		database.MongoClient,
	)

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
