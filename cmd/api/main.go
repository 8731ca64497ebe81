package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/harborlight/orphanage-api/internal/config"
	"github.com/harborlight/orphanage-api/internal/database"
	"github.com/harborlight/orphanage-api/internal/handler"
	"github.com/harborlight/orphanage-api/internal/middleware"
	"github.com/harborlight/orphanage-api/internal/models"
	"github.com/harborlight/orphanage-api/internal/repository"
	"github.com/harborlight/orphanage-api/internal/router"
	"github.com/harborlight/orphanage-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.ConnectPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Staff{},
		&models.Child{},
		&models.Donor{},
		&models.Donation{},
		&models.Expense{},
		&models.Activity{},
		&models.ActivityParticipation{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	redisClient, err := database.ConnectRedis(cfg.RedisURL)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer redisClient.Close()

	natsConn, err := database.ConnectNATS(cfg.NATSURL)
	if err != nil {
		log.Fatalf("failed to connect to nats: %v", err)
	}
	if natsConn != nil {
		defer natsConn.Close()
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	userRepo := repository.NewUserRepository(db)
	staffRepo := repository.NewStaffRepository(db)
	childRepo := repository.NewChildRepository(db)
	donorRepo := repository.NewDonorRepository(db)
	donationRepo := repository.NewDonationRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	participationRepo := repository.NewParticipationRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)

	authService := service.NewAuthService(userRepo, validate, cfg.JWTSecret, cfg.JWTTokenTTL, logger)
	staffService := service.NewStaffService(staffRepo, validate, logger)
	childService := service.NewChildService(childRepo, validate, logger)
	donorService := service.NewDonorService(donorRepo, validate, logger)
	donationService := service.NewDonationService(donationRepo, donorRepo, validate, logger)
	expenseService := service.NewExpenseService(expenseRepo, staffRepo, validate, logger)
	activityService := service.NewActivityService(activityRepo, staffRepo, validate, logger)
	// A typed nil *nats.Conn must not reach the service as a non-nil
	// interface value.
	var publisher service.EventPublisher
	if natsConn != nil {
		publisher = natsConn
	}

	participationService := service.NewParticipationService(
		participationRepo, activityRepo, childRepo, validate,
		publisher, cfg.EventSubjectBase, logger,
	)
	dashboardService := service.NewDashboardService(
		childRepo, donorRepo, staffRepo, donationRepo, expenseRepo,
		activityRepo, participationRepo, redisClient, cfg.DashboardCacheTTL, logger,
	)
	auditService := service.NewAuditService(auditRepo, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		AuthHandler:          handler.NewAuthHandler(authService, logger),
		ActivityHandler:      handler.NewActivityHandler(activityService, auditService, logger),
		ParticipationHandler: handler.NewParticipationHandler(participationService, auditService, logger),
		ChildHandler:         handler.NewChildHandler(childService, logger),
		StaffHandler:         handler.NewStaffHandler(staffService, logger),
		DonorHandler:         handler.NewDonorHandler(donorService, donationService, logger),
		DonationHandler:      handler.NewDonationHandler(donationService, logger),
		ExpenseHandler:       handler.NewExpenseHandler(expenseService, logger),
		DashboardHandler:     handler.NewDashboardHandler(dashboardService, logger),
		AuditHandler:         handler.NewAuditHandler(auditService, logger),
		JWTMiddleware:        middleware.JWTProtected(cfg.JWTSecret),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
