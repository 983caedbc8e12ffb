package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"closecart/internal/delivery/http/response"
	"closecart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// GeocodingHandler exposes the server-side geocoding proxy the dashboard's
// location picker talks to.
type GeocodingHandler struct {
	uc     usecase.GeocodingUsecase
	logger *slog.Logger
}

// NewGeocodingHandler is the constructor for GeocodingHandler, injected by Fx.
func NewGeocodingHandler(uc usecase.GeocodingUsecase, logger *slog.Logger) *GeocodingHandler {
	return &GeocodingHandler{
		uc:     uc,
		logger: logger,
	}
}

// Search resolves a free-text address query to candidate coordinates.
func (h *GeocodingHandler) Search(c echo.Context) error {
	query := c.QueryParam("q")

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "limit must be an integer")
		}
		limit = parsed
	}

	results, err := h.uc.SearchAddress(c.Request().Context(), query, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, results, "")
}

// Reverse resolves coordinates to a human-readable address. Provider
// failures degrade to the coordinate fallback label.
func (h *GeocodingHandler) Reverse(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "lat must be a number")
	}

	lng, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "lng must be a number")
	}

	address, err := h.uc.ResolveAddress(c.Request().Context(), lat, lng)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"address": address}, "")
}
