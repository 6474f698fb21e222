package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pawmart/config"
	"pawmart/cron"
	"pawmart/database"
	appointmentRepo "pawmart/database/repository/appointment"
	petRepo "pawmart/database/repository/pet"
	providerRepo "pawmart/database/repository/provider"
	scheduleRepo "pawmart/database/repository/schedule"
	"pawmart/handlers"
	"pawmart/middleware"
	"pawmart/routes"
	"pawmart/services/booking"
	"pawmart/services/payment"
	"pawmart/services/scheduling"
	"pawmart/utils"

	"github.com/gin-gonic/gin"
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
	schedules := scheduleRepo.NewMongoScheduleRepo()
	appointments := appointmentRepo.NewMongoAppointmentRepo()
	providers := providerRepo.NewMongoProviderRepo()
	pets := petRepo.NewMongoPetRepo()

	if err := schedules.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure schedule indexes: %v", err)
	}
	if err := appointments.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure appointment indexes: %v", err)
	}

	// services.
	schedulingService := &scheduling.DefaultSchedulingService{
		Repo:         schedules,
		Appointments: appointments,
		ProviderRepo: providers,
		CacheClient:  utils.GetCacheClient(),
		CacheTTL:     time.Duration(config.AppConfig.CalendarCacheTTLSec) * time.Second,
	}

	paymentGate := payment.NewStripeGate()
	bookingEngine := &booking.DefaultBookingEngine{
		Appointments: appointments,
		Schedules:    schedules,
		Providers:    providers,
		Pets:         pets,
		Gate:         paymentGate,
		Expiry:       cron.NewExpiryScheduler(),
	}

	// The reaper releases reservations whose checkout never completed.
	cron.InitExpiryWorker(bookingEngine)

	schedulingHandler := handlers.NewSchedulingHandler(schedulingService)
	bookingHandler := handlers.NewBookingHandler(bookingEngine, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		SetAvailabilityHandler: schedulingHandler.SetAvailabilityHandler,
		GetAvailabilityHandler: schedulingHandler.GetAvailabilityHandler,
		DeleteWindowHandler:    schedulingHandler.DeleteWindowHandler,

		GetSlotsHandler:      schedulingHandler.GetSlotsHandler,
		MonthActivityHandler: schedulingHandler.MonthActivityHandler,

		CreateBookingHandler:        bookingHandler.CreateBookingHandler,
		CancelBookingHandler:        bookingHandler.CancelBookingHandler,
		ListConsumerBookingsHandler: bookingHandler.ListConsumerBookingsHandler,
		ListProviderBookingsHandler: bookingHandler.ListProviderBookingsHandler,

		PaymentCallbackHandler: bookingHandler.PaymentCallbackHandler,
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
