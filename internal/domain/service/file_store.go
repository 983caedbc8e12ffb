package service

import (
	"context"
	"io"
)

// FileStore persists uploaded images and returns a URL the dashboard can
// render. Keys are caller-chosen and overwriting an existing key replaces
// the stored object.
type FileStore interface {
	// Save writes the content under key and returns its public URL.
	Save(ctx context.Context, key string, contentType string, content io.Reader) (string, error)

	// Close flushes and releases the underlying bucket.
	Close() error
}
