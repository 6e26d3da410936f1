// Package storage keeps certificate document files in an object store.
package storage

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"sysmayal-backend/internal/config"
)

// ErrObjectNotFound is returned when a key has no stored object
var ErrObjectNotFound = errors.New("object not found")

// ObjectStore reads and writes opaque blobs by key
type ObjectStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Get(ctx context.Context, key string) ([]byte, error)
	Exists(ctx context.Context, key string) (bool, error)
	Delete(ctx context.Context, key string) error
}

// New builds the store selected by STORAGE_DRIVER
func New(cfg *config.Config) (ObjectStore, error) {
	switch strings.ToLower(cfg.StorageDriver) {
	case "", "local":
		return NewLocalStore(cfg.StorageLocalDir)
	case "s3":
		return NewS3Store(S3Config{
			Endpoint:     cfg.S3Endpoint,
			Region:       cfg.S3Region,
			Bucket:       cfg.S3Bucket,
			AccessKey:    cfg.S3AccessKey,
			SecretKey:    cfg.S3SecretKey,
			UsePathStyle: cfg.S3UsePathStyle,
		})
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

// CertificateKey returns the object key of a file attached to a certificate
func CertificateKey(certificateID, filename string) string {
	return path.Join("certificates", certificateID, path.Base(strings.ReplaceAll(filename, "\\", "/")))
}

func validateKey(key string) error {
	if key == "" {
		return errors.New("storage key is required")
	}
	if strings.Contains(key, "..") {
		return fmt.Errorf("invalid storage key %q", key)
	}
	return nil
}
