package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strings"
)

// ErrObjectNotFound is returned when a key does not exist in the backend
var ErrObjectNotFound = errors.New("object not found")

// Storage interface for corpus file storage operations
type Storage interface {
	// Upload stores data under key and returns the resolved storage path
	Upload(ctx context.Context, key string, data io.Reader) (string, error)

	// Download retrieves an object by key
	Download(ctx context.Context, key string) (io.ReadCloser, error)
}

// StorageType represents the storage backend type
type StorageType string

const (
	StorageTypeLocal StorageType = "local"
	StorageTypeS3    StorageType = "s3"
)

// StorageConfig holds configuration for storage
type StorageConfig struct {
	Type         StorageType
	LocalPath    string // For local storage
	S3Bucket     string // For S3 storage
	S3Region     string // For S3 storage
	AWSAccessKey string
	AWSSecretKey string
}

// NewStorage creates a new storage instance based on configuration
func NewStorage(cfg StorageConfig) (Storage, error) {
	switch cfg.Type {
	case StorageTypeLocal:
		return NewLocalStorage(cfg.LocalPath)
	case StorageTypeS3:
		if cfg.S3Bucket == "" {
			return nil, errors.New("S3 bucket is required for S3 storage")
		}
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
}

// ConfigFromEnv reads the storage configuration from environment variables
func ConfigFromEnv() StorageConfig {
	storageType := os.Getenv("STORAGE_TYPE")
	if storageType == "" {
		storageType = string(StorageTypeLocal) // Default to local for development
	}

	cfg := StorageConfig{
		Type:         StorageType(storageType),
		LocalPath:    os.Getenv("STORAGE_LOCAL_PATH"),
		S3Bucket:     os.Getenv("AWS_S3_BUCKET"),
		S3Region:     os.Getenv("AWS_REGION"),
		AWSAccessKey: os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
	}
	if cfg.LocalPath == "" {
		cfg.LocalPath = "./data"
	}
	if cfg.S3Region == "" {
		cfg.S3Region = "us-east-1"
	}
	return cfg
}

// NewStorageFromEnv creates a storage instance from environment variables
func NewStorageFromEnv() (Storage, error) {
	cfg := ConfigFromEnv()
	if cfg.Type == StorageTypeS3 && cfg.S3Bucket == "" {
		return nil, errors.New("AWS_S3_BUCKET environment variable is required for S3 storage")
	}
	return NewStorage(cfg)
}

// ObjectKey joins a prefix and a file name into a slash separated storage key
func ObjectKey(prefix, name string) string {
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return name
	}
	return path.Join(prefix, name)
}

// cleanKey rejects keys that would escape the storage root
func cleanKey(key string) (string, error) {
	cleaned := path.Clean("/" + strings.ReplaceAll(key, "\\", "/"))
	cleaned = strings.TrimPrefix(cleaned, "/")
	if cleaned == "" || cleaned == "." {
		return "", fmt.Errorf("invalid storage key: %q", key)
	}
	return cleaned, nil
}
