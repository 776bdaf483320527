package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pondpatrol-web/config"
	_ "pondpatrol-web/docs" // Important for Swagger
	v1 "pondpatrol-web/internal/delivery/http/v1"
	"pondpatrol-web/internal/domain"
	"pondpatrol-web/internal/form"
	"pondpatrol-web/internal/repository/postgres"
	"pondpatrol-web/internal/usecase"
	"pondpatrol-web/pkg/database"
	"pondpatrol-web/pkg/email"
	"pondpatrol-web/pkg/logger"
	"pondpatrol-web/pkg/redis"
	"pondpatrol-web/pkg/security"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

// @title           Pond Patrol Web API
// @version         1.0
// @description     Contact and newsletter API behind the Pond Patrol landing page.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	// 2. Setup Loggers
	logger.Init(cfg.LogLevel)
	env := "development"
	if cfg.IsProduction() {
		env = "production"
	}
	secLog := security.InitSecurityLogger("pondpatrol-web", env)
	defer func() { _ = secLog.Sync() }()
	logger.Log.Info("Starting Pond Patrol web", "port", cfg.Port, "mode", cfg.GinMode)

	ctx := context.Background()
	probes := map[string]usecase.HealthProbe{"database": nil, "redis": nil}

	// 3. Optional Database
	var (
		inquiryRepo    domain.InquiryRepository
		subscriberRepo domain.SubscriberRepository
		inquiryUC      domain.InquiryUsecase
	)
	if cfg.DBUrl != "" {
		dbPool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
		if err != nil {
			logger.Log.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer dbPool.Close()

		if err := postgres.EnsureSchema(ctx, dbPool); err != nil {
			logger.Log.Error("Failed to prepare schema", "error", err)
			os.Exit(1)
		}
		inquiryRepo = postgres.NewInquiryRepository(dbPool)
		subscriberRepo = postgres.NewSubscriberRepository(dbPool)
		inquiryUC = usecase.NewInquiryUsecase(inquiryRepo)
		probes["database"] = dbPool.Ping
	}

	// 4. Optional Redis (rate limit store)
	var rdb *goredis.Client
	if cfg.UpstashRedisURL != "" {
		rdb, err = redis.NewClient(ctx, redis.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword})
		if err != nil {
			// Fail open: the in-memory limiter still protects a single instance
			logger.Log.Warn("Redis unavailable, using in-memory rate limiting", "error", err)
			rdb = nil
		} else {
			defer func() { _ = rdb.Close() }()
			probes["redis"] = redis.HealthCheck(rdb)
		}
	}

	// 5. Optional Email Notification
	var notifier domain.InquiryNotifier
	emailService := email.NewEmailService(cfg)
	if emailService.IsConfigured() {
		notifier = emailService
	} else {
		logger.Log.Info("SMTP not configured - inquiries will not be emailed")
	}

	// 6. Setup UseCases
	validate := usecase.NewFormValidator()
	contactUC := usecase.NewContactUsecase(validate, inquiryRepo, notifier)
	newsletterUC := usecase.NewNewsletterUsecase(validate, subscriberRepo)
	healthUC := usecase.NewHealthUsecase(probes)

	// 7. Per-visitor contact forms
	forms := form.NewStore(func() *form.Form {
		return form.New(contactUC, form.RealClock{}, cfg.ContactResetDelay)
	}, cfg.SessionTTL)
	forms.Start(time.Minute)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC:    contactUC,
		NewsletterUC: newsletterUC,
		InquiryUC:    inquiryUC,
		HealthUC:     healthUC,
		Forms:        forms,
		Redis:        rdb,
		Spam:         security.NewSpamTracker(security.DefaultSpamTrackerConfig(), rdb, secLog),
		Config:       cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}
	// pending thank-you resets are cancelled with their forms
	forms.Close()

	logger.Log.Info("Server exiting")
}
