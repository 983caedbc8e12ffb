package service

import (
	"context"

	"closecart/internal/domain/entity"
)

// Geocoder resolves between addresses and coordinates through an upstream
// geocoding provider. Implementations are expected to rate-limit and cache;
// callers must not add retries on top.
type Geocoder interface {
	// Forward resolves a free-text address to candidate coordinates.
	Forward(ctx context.Context, query string, limit int) ([]entity.GeocodeResult, error)

	// Reverse resolves a coordinate pair to a human-readable address.
	Reverse(ctx context.Context, lat, lng float64) (string, error)
}
