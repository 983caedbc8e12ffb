package usecase

import (
	"context"

	"closecart/internal/domain/entity"
)

// GeocodingUsecase proxies address lookups through the rate-limited,
// cached geocoder.
type GeocodingUsecase interface {
	// SearchAddress resolves a free-text query to candidate locations.
	SearchAddress(ctx context.Context, query string, limit int) ([]entity.GeocodeResult, error)

	// ResolveAddress reverse-geocodes coordinates to an address. When the
	// upstream provider is unreachable it degrades to the coordinate
	// fallback string instead of failing.
	ResolveAddress(ctx context.Context, lat, lng float64) (string, error)
}
