// File: fitbook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fitbook/config"
	"fitbook/cron"
	"fitbook/database"
	bookingRepoPkg "fitbook/database/repository/booking"
	trainerRepoPkg "fitbook/database/repository/trainer"
	userRepoPkg "fitbook/database/repository/user"
	"fitbook/handlers"
	"fitbook/middleware"
	"fitbook/routes"
	"fitbook/services/booking"
	"fitbook/services/payment"
	"fitbook/services/tasks"
	"fitbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	trainerRepo := trainerRepoPkg.NewMongoTrainerRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()

	// reminder queue client and worker.
	reminderQueue := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	})
	defer reminderQueue.Close()
	cron.InitReminderWorker()

	// services.
	bookingService := &booking.DefaultBookingService{
		TrainerRepo:   trainerRepo,
		UserRepo:      userRepo,
		BookingRepo:   bookingRepo,
		Gateway:       payment.NewStripeGateway(),
		WebhookSecret: config.AppConfig.StripeWebhookSecret,
		Reminders:     &tasks.AsynqReminderScheduler{Client: reminderQueue},
	}

	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	trainerHandler := handlers.NewTrainerHandler(trainerRepo, utils.GetCacheClient(), config.AppConfig.BookingHorizonDays)

	// Register routes.
	routes.RegisterRoutes(router, bookingHandler, trainerHandler, middleware.JWTAuthUserMiddleware(userRepo))

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
