package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prkservices/booking-service/internal/infrastructure/config"
	"github.com/prkservices/booking-service/internal/infrastructure/oauth"
	"github.com/prkservices/booking-service/internal/infrastructure/persistence"
	httpapi "github.com/prkservices/booking-service/internal/interface/http"
	"github.com/prkservices/booking-service/internal/interface/mail"
	"github.com/prkservices/booking-service/internal/interface/payments"
	mongoRepo "github.com/prkservices/booking-service/internal/interface/repository"
	"github.com/prkservices/booking-service/internal/realtime"
	"github.com/prkservices/booking-service/internal/usecase"
	"github.com/prkservices/booking-service/pkg/logger"
	"github.com/prkservices/booking-service/pkg/metrics"

	"github.com/prkservices/booking-service/internal/domain/repository"
)

func main() {
	// Create logger
	log := logger.NewLogger()
	log.Info("Starting Booking Service")
	defer log.Sync()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := metrics.NewMetrics("booking_service")

	// Set up MongoDB connection
	log.Info("Connecting to MongoDB")
	mongoClient, db, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoDB, cfg.MongoUser, cfg.MongoPassword)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}

	gormDB, err := persistence.NewPostgresDB(cfg.PostgresURI)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", "error", err)
	}
	if err := gormDB.AutoMigrate(&mongoRepo.ArchivalTasks{}); err != nil {
		log.Fatal("Failed to migrate archival task table", "error", err)
	}

	// Set up repositories
	bookingRepo := mongoRepo.NewMongoBookingRepository(db)
	notificationRepo := mongoRepo.NewMongoNotificationRepository(db)
	archiveRepo := mongoRepo.NewMongoArchivedBookingRepository(db)
	userRepo := mongoRepo.NewMongoUserRepository(db)
	otpRepo := mongoRepo.NewMongoOTPRepository(db)
	taskRepo := mongoRepo.NewGormArchivalTaskRepository(gormDB)

	// Set up Gmail OAuth and the outbound mailer
	gmailOAuth := oauth.NewGmailOAuth(
		cfg.GmailClientID,
		cfg.GmailClientSecret,
		cfg.GmailRefreshToken,
		log,
	)
	tokenSource := gmailOAuth.GetTokenSource(ctx)

	mailer, err := mail.NewGmailSender(ctx, tokenSource, cfg.EmailFrom, log)
	if err != nil {
		log.Fatal("Failed to create Gmail sender", "error", err)
	}

	// Payment gateway is optional; without credentials the payment
	// endpoints report the gateway as unavailable
	var gateway repository.PaymentGateway
	if rzp, err := payments.NewRazorpayGateway(cfg.RazorpayKeyID, cfg.RazorpayKeySecret); err != nil {
		log.Warn("Razorpay disabled", "error", err)
	} else {
		gateway = rzp
	}

	// Set up the realtime hub and usecases
	hub := realtime.NewHub(log, m)

	archiver := usecase.NewArchiverUseCase(taskRepo, bookingRepo, archiveRepo, hub, cfg.ArchiveDelay, log, m)
	bookingUC := usecase.NewBookingUseCase(bookingRepo, notificationRepo, mailer, hub, archiver, cfg.AdminEmail, log, m)
	notificationUC := usecase.NewNotificationUseCase(notificationRepo)
	otpUC := usecase.NewOTPUseCase(otpRepo, userRepo, mailer, cfg.AdminEmail, cfg.OTPTTL, log)
	paymentUC := usecase.NewPaymentUseCase(bookingUC, gateway, log)

	// Start the archival sweep in a goroutine
	go func() {
		sweepTicker := time.NewTicker(cfg.ArchivePollInterval)
		defer sweepTicker.Stop()

		for {
			select {
			case <-ctx.Done():
				log.Info("Archival sweep stopped")
				return
			case <-sweepTicker.C:
				if err := archiver.Sweep(ctx); err != nil {
					log.Error("Archival sweep failed", "error", err)
				}
			}
		}
	}()

	// Set up the HTTP API
	router := httpapi.NewRouter(httpapi.RouterConfig{
		Bookings:      httpapi.NewBookingHandler(bookingUC, archiver),
		Notifications: httpapi.NewNotificationHandler(notificationUC),
		Auth:          httpapi.NewAuthHandler(otpUC, cfg.JWTSecret),
		Payments:      httpapi.NewPaymentHandler(paymentUC, cfg.RazorpayKeyID),
		Events:        httpapi.NewEventsHandler(hub),
		JWTSecret:     cfg.JWTSecret,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	hub.Stop()
	cancel()

	// Disconnect from MongoDB
	if err := mongoClient.Disconnect(context.Background()); err != nil {
		log.Error("MongoDB disconnect error", "error", err)
	}

	log.Info("Booking Service stopped")
}
