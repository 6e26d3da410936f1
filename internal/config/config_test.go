package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildDatabaseURL(t *testing.T) {
	cfg := &Config{
		DatabaseUser:     "postgres",
		DatabasePassword: "secret",
		DatabaseHost:     "db",
		DatabasePort:     "5432",
		DatabaseName:     "sysmayal",
		DatabaseSSLMode:  "disable",
	}

	assert.Equal(t, "postgres://postgres:secret@db:5432/sysmayal?sslmode=disable", buildDatabaseURL(cfg))
}

func TestValidate(t *testing.T) {
	t.Run("default JWT secret rejected in production", func(t *testing.T) {
		cfg := &Config{Environment: "production", JWTSecret: defaultJWTSecret, DatabaseName: "sysmayal"}
		assert.Error(t, validate(cfg))
	})

	t.Run("database name required", func(t *testing.T) {
		cfg := &Config{Environment: "development"}
		assert.EqualError(t, validate(cfg), "database name is required")
	})

	t.Run("s3 driver needs a bucket", func(t *testing.T) {
		cfg := &Config{DatabaseName: "sysmayal", StorageDriver: "s3"}
		assert.Error(t, validate(cfg))

		cfg.S3Bucket = "certificates"
		assert.NoError(t, validate(cfg))
	})

	t.Run("tracing needs an endpoint", func(t *testing.T) {
		cfg := &Config{DatabaseName: "sysmayal", TracingEnabled: true}
		assert.Error(t, validate(cfg))

		cfg.OTLPEndpoint = "localhost:4317"
		assert.NoError(t, validate(cfg))
	})
}

func TestDurations(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL())
	assert.Equal(t, time.Hour, cfg.JWTTTL())

	cfg.CacheTTLSeconds = 30
	cfg.JWTTTLMinutes = 15
	assert.Equal(t, 30*time.Second, cfg.CacheTTL())
	assert.Equal(t, 15*time.Minute, cfg.JWTTTL())
}

func TestEnvironmentHelpers(t *testing.T) {
	assert.True(t, (&Config{Environment: "development"}).IsDevelopment())
	assert.True(t, (&Config{Environment: "production"}).IsProduction())
	assert.False(t, (&Config{Environment: "staging"}).IsProduction())
}
