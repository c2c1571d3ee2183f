// Package storage holds the external object store port and its drivers.
// Media bytes live here; the database only keeps object names and URLs.
package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/Bhavishya0149/Real-Real-Estate/config"
)

// BlobStore is the external object store seen by the media lifecycle.
// Upload returns the public URL of the stored object.
type BlobStore interface {
	Upload(ctx context.Context, objectName, contentType string, r io.Reader) (string, error)
	Delete(ctx context.Context, objectName string) error
}

// New selects a driver from the config. Both drivers satisfy the same port,
// so the rest of the code never knows which cloud it talks to.
func New(ctx context.Context, cfg *config.Config) (BlobStore, error) {
	switch cfg.StorageDriver {
	case "gcs":
		return NewGCSStore(ctx, cfg)
	case "r2":
		return NewR2Store(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
