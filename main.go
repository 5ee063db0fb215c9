package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"

	"github.com/joaquinperez028/landingPageNahuel-sub003/config"
	"github.com/joaquinperez028/landingPageNahuel-sub003/cron"
	"github.com/joaquinperez028/landingPageNahuel-sub003/database"
	reservationRepo "github.com/joaquinperez028/landingPageNahuel-sub003/database/repository/reservation"
	scheduleRepo "github.com/joaquinperez028/landingPageNahuel-sub003/database/repository/schedule"
	"github.com/joaquinperez028/landingPageNahuel-sub003/handlers"
	"github.com/joaquinperez028/landingPageNahuel-sub003/middleware"
	"github.com/joaquinperez028/landingPageNahuel-sub003/models"
	"github.com/joaquinperez028/landingPageNahuel-sub003/routes"
	"github.com/joaquinperez028/landingPageNahuel-sub003/services/booking"
	"github.com/joaquinperez028/landingPageNahuel-sub003/services/calendar"
	"github.com/joaquinperez028/landingPageNahuel-sub003/services/notification"
	"github.com/joaquinperez028/landingPageNahuel-sub003/services/pricing"
	"github.com/joaquinperez028/landingPageNahuel-sub003/utils"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()
	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	// repositories.
	resRepo := reservationRepo.NewMongoReservationRepo()
	if err := resRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure reservation indexes: %v", err)
	}
	schedRepo := scheduleRepo.NewMongoScheduleRepo()

	// services.
	catalog := models.NewClassCatalog(config.AppConfig.Classes)
	notificationService := notification.NewFCMNotificationService(utils.FCMClient, logger)

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer asynqClient.Close()
	reminderScheduler := cron.NewReminderScheduler(asynqClient,
		time.Duration(config.AppConfig.ReminderLeadMinutes)*time.Minute)

	availabilityCache := booking.NewAvailabilityCache(utils.GetCacheClient(),
		time.Duration(config.AppConfig.AvailabilityTTLSecs)*time.Second)

	bookingService := &booking.DefaultBookingService{
		Repo:     resRepo,
		Registry: booking.NewRegistry(schedRepo),
		Catalog:  catalog,
		Hours: booking.OperatingHours{
			OpenMinute:         config.AppConfig.OpenMinute,
			CloseMinute:        config.AppConfig.CloseMinute,
			GranularityMinutes: config.AppConfig.GranularityMinutes,
			HorizonDays:        config.AppConfig.BookingHorizonDays,
		},
		Pricing:      pricing.NewCatalogPricing(catalog),
		Calendar:     calendar.NewMeetLinkService(config.AppConfig.MeetLinkBaseURL, logger),
		Payments:     booking.NewStripePaymentHandler(config.AppConfig.CheckoutSuccessURL, config.AppConfig.CheckoutCancelURL),
		Notification: notificationService,
		Reminders:    reminderScheduler,
		Cache:        availabilityCache,
		StoreTimeout: time.Duration(config.AppConfig.StoreTimeoutSeconds) * time.Second,
		AutoConfirm:  config.AppConfig.AutoConfirm,
	}

	handlers.BookingService = bookingService
	handlers.ScheduleRepo = schedRepo
	handlers.AvailabilityCache = availabilityCache

	// Start the reminder worker in background.
	cron.InitReminderWorker(notificationService)

	routes.RegisterRoutes(router)

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
