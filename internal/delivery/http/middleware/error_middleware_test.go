package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "closecart/internal/delivery/context"
	"closecart/internal/delivery/http/response"
	domainerrors "closecart/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newErrorTestContext(t *testing.T, req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func TestHandleHTTPError_MapsAppErrorToEnvelope(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/offers/missing", nil)
	c, rec := newErrorTestContext(t, req)

	middleware := NewErrorMiddleware(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	middleware.HandleHTTPError(domainerrors.ErrOfferNotFound, c)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var envelope response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.False(t, envelope.Success)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "OFFER_NOT_FOUND", envelope.Error.Code)
}

func TestHandleHTTPError_UnhandledErrorLogsWithRequestScopedLogger(t *testing.T) {
	t.Parallel()

	var fallbackBuf, requestBuf bytes.Buffer
	fallback := slog.New(slog.NewJSONHandler(&fallbackBuf, nil))
	requestLogger := slog.New(slog.NewJSONHandler(&requestBuf, nil)).
		With("request_id", "req-42")

	req := httptest.NewRequest(http.MethodGet, "/offers", nil)
	req = req.WithContext(deliverycontext.WithLogger(req.Context(), requestLogger))
	c, rec := newErrorTestContext(t, req)

	middleware := NewErrorMiddleware(fallback)
	middleware.HandleHTTPError(errors.New("storage exploded"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, requestBuf.String(), "req-42")
	assert.Contains(t, requestBuf.String(), "storage exploded")
	assert.Empty(t, fallbackBuf.String())
}

func TestHandleHTTPError_FallsBackWhenContextHasNoLogger(t *testing.T) {
	t.Parallel()

	var fallbackBuf bytes.Buffer
	fallback := slog.New(slog.NewJSONHandler(&fallbackBuf, nil))

	req := httptest.NewRequest(http.MethodGet, "/offers", nil)
	c, rec := newErrorTestContext(t, req)

	middleware := NewErrorMiddleware(fallback)
	middleware.HandleHTTPError(errors.New("storage exploded"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, fallbackBuf.String(), "storage exploded")
}
