package impl

import (
	"context"
	"log/slog"
	"strings"

	"closecart/internal/domain/entity"
	domainerrors "closecart/internal/domain/errors"
	"closecart/internal/domain/service"
	"closecart/internal/usecase"

	"github.com/pkg/errors"
)

const (
	defaultSearchLimit = 5
	maxSearchLimit     = 10
)

// geocodingService implements the GeocodingUsecase interface.
type geocodingService struct {
	geocoder service.Geocoder
	logger   *slog.Logger
}

// NewGeocodingService is the constructor for geocodingService.
func NewGeocodingService(
	geocoder service.Geocoder,
	logger *slog.Logger,
) usecase.GeocodingUsecase {
	return &geocodingService{
		geocoder: geocoder,
		logger:   logger,
	}
}

// SearchAddress resolves a free-text query to candidate locations.
func (srv *geocodingService) SearchAddress(ctx context.Context, query string, limit int) ([]entity.GeocodeResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("query is required")
	}

	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	results, err := srv.geocoder.Forward(ctx, query, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search address")
	}

	return results, nil
}

// ResolveAddress reverse-geocodes coordinates to an address. Upstream
// failures degrade to the coordinate fallback string; the pin still gets a
// label even when the provider is down.
func (srv *geocodingService) ResolveAddress(ctx context.Context, lat, lng float64) (string, error) {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return "", domainerrors.ErrValidationFailed.WrapMessage("coordinates out of range")
	}

	address, err := srv.geocoder.Reverse(ctx, lat, lng)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return "", err
		}

		srv.logger.Warn("reverse geocoding failed, using coordinate fallback",
			"lat", lat, "lng", lng, "error", err)

		return entity.FallbackAddress(lat, lng), nil
	}

	return address, nil
}
