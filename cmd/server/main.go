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

	"sysmayal-backend/internal/api/routes"
	"sysmayal-backend/internal/app"
	"sysmayal-backend/internal/config"
	"sysmayal-backend/internal/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "sysmayal-backend/docs" // This is needed for swag
)

const version = "1.0.0"

const shutdownTimeout = 30 * time.Second

//	@title			Sysmayal Backend API
//	@version		1.0
//	@description	Backend API for the Sysmayal aloe vera distribution network: organizations, contacts, product compliance, certificates, market entry plans, market research, R&D projects, country regulations and reports.
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	API Support
//	@contact.email	support@sysmayal.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7008
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	setupLogging(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tracer, err := telemetry.NewTracerProvider(ctx, telemetry.Config{
		Enabled:        cfg.TracingEnabled,
		Endpoint:       cfg.OTLPEndpoint,
		ServiceName:    cfg.ServiceName,
		SampleRatio:    cfg.TracingSampleRatio,
		Insecure:       cfg.TracingInsecure,
		ServiceVersion: version,
	})
	if err != nil {
		logrus.Fatal("Failed to initialize tracing:", err)
	}

	application, err := app.New(ctx, cfg)
	if err != nil {
		logrus.Fatal("Failed to initialize application:", err)
	}

	if cfg.SchedulerEnabled {
		application.Scheduler.Start()
	} else {
		logrus.Info("Scheduler disabled, maintenance jobs run only on demand")
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := routes.SetupRoutes(cfg, &routes.Dependencies{
		DB:           application.DB,
		Services:     application.Services,
		Auth:         application.Auth,
		Importer:     application.Importer,
		Tasks:        application.Scheduler,
		HealthChecks: application.HealthChecks(),
		Version:      version,
	})

	port := cfg.Port
	if port == "" {
		port = "7008"
	}
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.Infof("Starting server on port %s", port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Failed to start server:", err)
		}
	}()

	<-ctx.Done()
	logrus.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("Server shutdown failed: %v", err)
	}
	if err := application.Close(shutdownCtx); err != nil {
		logrus.Errorf("Failed to release resources: %v", err)
	}
	if err := tracer.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("Failed to flush traces: %v", err)
	}
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)
}
