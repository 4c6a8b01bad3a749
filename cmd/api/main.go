package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"obsidianiq-forms-api/config"
	_ "obsidianiq-forms-api/docs" // Important for Swagger
	v1 "obsidianiq-forms-api/internal/delivery/http/v1"
	"obsidianiq-forms-api/internal/usecase"
	"obsidianiq-forms-api/pkg/audit"
	"obsidianiq-forms-api/pkg/email"
	"obsidianiq-forms-api/pkg/logger"
	"obsidianiq-forms-api/pkg/metrics"
	"obsidianiq-forms-api/pkg/validation"

	"github.com/gin-gonic/gin"
)

// @title           ObsidianIQ Forms API
// @version         1.0
// @description     Accepts contact and work-with-us submissions and forwards them by email.
// @host            localhost:8080
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting forms api", "port", cfg.Port, "cors_policy", cfg.CORSPolicy)

	auditLog := audit.New("obsidianiq-forms-api", cfg.GinMode)
	defer auditLog.Sync()

	metrics.Register()
	if cfg.IsRelease() {
		gin.SetMode(gin.ReleaseMode)
	}

	// 3. Setup Email Transport
	transport := email.NewSMTPTransport(email.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		UseTLS:   cfg.SMTPEnableTLS,
	})
	if !transport.IsConfigured() {
		logger.Log.Warn("Email transport not fully configured - form submissions will fail to deliver")
	}

	// 4. Setup UseCases
	formValidator := usecase.NewFormValidator(validation.New())
	notifier := usecase.NewNotifier(transport, usecase.NotifierConfig{
		FromEmail: cfg.SMTPFromEmail,
		ToEmail:   cfg.ContactEmailTo,
		Timeout:   cfg.SMTPTimeout,
	}, formValidator)
	formUC := usecase.NewFormUsecase(formValidator, notifier, auditLog)
	healthUC := usecase.NewHealthUsecase(cfg)

	// 5. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		FormUC:   formUC,
		HealthUC: healthUC,
		Config:   cfg,
	})

	// 6. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	// in-flight sends may take up to the SMTP timeout
	ctx, cancel := context.WithTimeout(context.Background(), cfg.SMTPTimeout+5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
