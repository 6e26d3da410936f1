// Package app wires the shared components used by the server and the operator CLI.
package app

import (
	"context"
	"fmt"

	"sysmayal-backend/internal/api/handlers"
	"sysmayal-backend/internal/auth"
	"sysmayal-backend/internal/cache"
	"sysmayal-backend/internal/config"
	"sysmayal-backend/internal/database"
	"sysmayal-backend/internal/importer"
	"sysmayal-backend/internal/logger"
	"sysmayal-backend/internal/notification"
	"sysmayal-backend/internal/scheduler"
	"sysmayal-backend/internal/service"
	"sysmayal-backend/internal/storage"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// App holds the database, stores and services of a running process
type App struct {
	DB        *gorm.DB
	Cache     cache.Cache
	Store     storage.ObjectStore
	Services  *service.Registry
	Importer  *importer.Importer
	Scheduler *scheduler.Scheduler
	Auth      *auth.AuthService
}

// New connects to the database, cache and document store and builds the services
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logger.ForComponent("app")

	dbLogLevel := gormlogger.Error
	if cfg.LogLevel == "debug" {
		dbLogLevel = gormlogger.Info
	}
	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{LogLevel: dbLogLevel})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	store, err := cache.New(cfg)
	if err != nil {
		return nil, err
	}
	if cfg.RedisAddr == "" {
		log.Info("REDIS_ADDR not set, using in-process dashboard cache")
	}

	docs, err := storage.New(cfg)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to initialize document storage: %w", err)
	}
	if s3Store, ok := docs.(*storage.S3Store); ok {
		if err := s3Store.EnsureBucket(ctx); err != nil {
			_ = store.Close()
			return nil, err
		}
	}

	authService, err := auth.NewAuthService(&auth.AuthConfig{
		JWTSecret: cfg.JWTSecret,
		Issuer:    cfg.JWTIssuer,
		TokenTTL:  cfg.JWTTTL(),
	})
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	registry := service.NewRegistry(db, docs, notification.NewMailer(cfg), service.NewDashboardCache(store, cfg.CacheTTL()))
	imp := importer.New(registry.Organizations, registry.Contacts, registry.OrganizationRepo, registry.Regulations, registry.Validator)

	sched, err := scheduler.NewMaintenanceScheduler(cfg, registry)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to register maintenance jobs: %w", err)
	}

	return &App{
		DB:        db,
		Cache:     store,
		Store:     docs,
		Services:  registry,
		Importer:  imp,
		Scheduler: sched,
		Auth:      authService,
	}, nil
}

// HealthChecks lists the dependencies /health reports next to the database
func (a *App) HealthChecks() map[string]handlers.Pinger {
	checks := make(map[string]handlers.Pinger)
	if pinger, ok := a.Cache.(handlers.Pinger); ok {
		checks["cache"] = pinger
	}
	return checks
}

// Close stops the scheduler and releases the connections
func (a *App) Close(ctx context.Context) error {
	var firstErr error
	if err := a.Scheduler.Stop(ctx); err != nil {
		firstErr = err
	}
	if err := a.Cache.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	if sqlDB, err := a.DB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
