// Package storage persists uploaded images through a gocloud blob bucket.
// The bucket URL decides the backend; local disk via file:// in development.
package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"closecart/config"
	"closecart/internal/domain/lifecycle"
	"closecart/internal/domain/service"
	"closecart/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Register the file:// bucket scheme.
	_ "gocloud.dev/blob/fileblob"
)

// blobStore implements service.FileStore on top of gocloud blob.
type blobStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// Params defines the dependencies for the blob store.
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and returns it as a service.FileStore.
func New(params Params) (service.FileStore, error) {
	cfg := params.Config.Uploads
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("uploads bucket URL must be configured")
	}

	openCtx, cancel := context.WithTimeout(params.Ctx, lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(openCtx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "open uploads bucket")
	}

	store := &blobStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(cfg.PublicBaseURL, "/"),
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			params.Logger.Info("Closing uploads bucket")

			return store.Close()
		},
	})

	return store, nil
}

// Save writes the content under key and returns its public URL.
// Writing an existing key replaces the stored object.
func (s *blobStore) Save(ctx context.Context, key string, contentType string, content io.Reader) (string, error) {
	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrap(err, "open bucket writer")
	}

	if _, err := io.Copy(writer, content); err != nil {
		_ = writer.Close()

		return "", errors.Wrap(err, "write upload content")
	}

	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "commit upload")
	}

	return s.publicBaseURL + "/" + key, nil
}

// Close releases the underlying bucket.
func (s *blobStore) Close() error {
	return errors.Wrap(s.bucket.Close(), "close uploads bucket")
}
