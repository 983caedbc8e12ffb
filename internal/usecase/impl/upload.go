// Package impl contains the application-specific business rules implementations.
package impl

import (
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"

	"closecart/config"
	domainerrors "closecart/internal/domain/errors"
	"closecart/internal/usecase"
)

// validateUpload checks an uploaded image against the configured type and
// size limits before anything is written to storage.
func validateUpload(cfg *config.UploadsConfig, upload *usecase.Upload) error {
	if upload == nil || upload.Content == nil {
		return domainerrors.ErrValidationFailed.WrapMessage("no file provided")
	}

	if cfg != nil && cfg.MaxBytes > 0 && upload.Size > cfg.MaxBytes {
		return domainerrors.ErrImageTooLarge.WithDetails(
			fmt.Sprintf("file is %d bytes, limit is %d bytes", upload.Size, cfg.MaxBytes))
	}

	if cfg != nil && len(cfg.AllowedMIMETypes) > 0 {
		contentType := strings.ToLower(strings.TrimSpace(upload.ContentType))
		for _, allowed := range cfg.AllowedMIMETypes {
			if contentType == strings.ToLower(allowed) {
				return nil
			}
		}

		return domainerrors.ErrUnsupportedImageType.WithDetails(
			fmt.Sprintf("content type %q is not allowed", upload.ContentType))
	}

	return nil
}

// uploadKey builds a collision-free storage key, keeping the original
// extension so browsers infer the right type from the URL.
func uploadKey(prefix string, upload *usecase.Upload) string {
	ext := strings.ToLower(path.Ext(upload.Filename))

	return prefix + "/" + uuid.New().String() + ext
}
