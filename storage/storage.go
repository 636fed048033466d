// Package storage keeps rendered demand letters on the local filesystem or
// in S3.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"lawpick-backend/config"
)

// ErrNotFound is returned by Download when nothing is stored at the path
var ErrNotFound = errors.New("document not found in storage")

// Storage is the document store for archived letters
type Storage interface {
	// Upload stores a document and returns its storage path
	Upload(ctx context.Context, docID uuid.UUID, filename string, data io.Reader) (string, error)

	// Download opens a stored document
	Download(ctx context.Context, storagePath string) (io.ReadCloser, error)

	// Delete removes a stored document; deleting a missing one is not an error
	Delete(ctx context.Context, storagePath string) error
}

// Type is the storage backend type
type Type string

const (
	TypeLocal Type = "local"
	TypeS3    Type = "s3"
)

// Config selects and configures a backend
type Config struct {
	Type         Type
	LocalPath    string
	S3Bucket     string
	S3Region     string
	AWSAccessKey string
	AWSSecretKey string
}

// ConfigFrom extracts the storage settings from the service config
func ConfigFrom(cfg *config.Config) Config {
	return Config{
		Type:         Type(cfg.StorageType),
		LocalPath:    cfg.StorageLocalPath,
		S3Bucket:     cfg.S3Bucket,
		S3Region:     cfg.S3Region,
		AWSAccessKey: cfg.AWSAccessKey,
		AWSSecretKey: cfg.AWSSecretKey,
	}
}

// New creates the configured backend
func New(ctx context.Context, cfg Config) (Storage, error) {
	switch cfg.Type {
	case TypeLocal:
		return NewLocalStorage(cfg.LocalPath)
	case TypeS3:
		if cfg.S3Bucket == "" {
			return nil, errors.New("S3 bucket is required for S3 storage")
		}
		return NewS3Storage(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
}

// storagePath shards documents by the first two characters of their ID
func storagePath(docID uuid.UUID, filename string) string {
	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filename, ext)
	base = strings.NewReplacer(" ", "_", "/", "_", "\\", "_", "..", "_").Replace(base)

	id := docID.String()
	return fmt.Sprintf("%s/%s_%s%s", id[:2], id, base, ext)
}

// ContentType maps a document filename to its MIME type
func ContentType(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt":
		return "text/plain; charset=utf-8"
	case ".json":
		return "application/json"
	case ".pdf":
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}
