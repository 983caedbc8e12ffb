package impl

import (
	"io"
	"log/slog"

	"closecart/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Uploads: &config.UploadsConfig{
			PublicBaseURL:    "http://cdn.test",
			MaxBytes:         1 << 20,
			AllowedMIMETypes: []string{"image/jpeg", "image/png"},
		},
		Offers: &config.OffersConfig{
			Categories:      []string{"Food & Drink", "Fashion"},
			RecommendedTags: []string{"sale", "new"},
		},
	}
}
