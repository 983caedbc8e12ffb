package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"closecart/internal/delivery/http/middleware"
	"closecart/internal/delivery/http/response"
	"closecart/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// offerDateLayout is the date format the dashboard sends for offer validity.
const offerDateLayout = "2006-01-02"

// OfferHandler holds dependencies for offer handlers.
type OfferHandler struct {
	uc     usecase.OfferUsecase
	logger *slog.Logger
}

// NewOfferHandler is the constructor for OfferHandler, injected by Fx.
func NewOfferHandler(uc usecase.OfferUsecase, logger *slog.Logger) *OfferHandler {
	return &OfferHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListOffers returns all offers of the authenticated shop, newest first.
func (h *OfferHandler) ListOffers(c echo.Context) error {
	shopID, ok := middleware.ShopID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	offers, err := h.uc.ListOffers(c.Request().Context(), shopID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, offers, "")
}

// GetOffer returns a single offer.
func (h *OfferHandler) GetOffer(c echo.Context) error {
	shopID, ok := middleware.ShopID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid offer ID")
	}

	offer, err := h.uc.GetOffer(c.Request().Context(), shopID, offerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, offer, "")
}

// CreateOffer creates a new offer from a multipart form.
func (h *OfferHandler) CreateOffer(c echo.Context) error {
	shopID, ok := middleware.ShopID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	input, closeFn, err := bindOfferForm(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}
	defer closeFn()

	offer, err := h.uc.CreateOffer(c.Request().Context(), shopID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, offer, "Offer created")
}

// UpdateOffer replaces an offer's editable fields from a multipart form.
func (h *OfferHandler) UpdateOffer(c echo.Context) error {
	shopID, ok := middleware.ShopID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid offer ID")
	}

	input, closeFn, err := bindOfferForm(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}
	defer closeFn()

	offer, err := h.uc.UpdateOffer(c.Request().Context(), shopID, offerID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, offer, "Offer updated")
}

// DeleteOffer removes an offer permanently.
func (h *OfferHandler) DeleteOffer(c echo.Context) error {
	shopID, ok := middleware.ShopID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid offer ID")
	}

	if err := h.uc.DeleteOffer(c.Request().Context(), shopID, offerID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Offer deleted")
}

// GetCatalog returns the configured categories and recommended tags.
func (h *OfferHandler) GetCatalog(c echo.Context) error {
	catalog, err := h.uc.GetCatalog(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, catalog, "")
}

// GenerateQR streams the offer QR code as a PNG.
func (h *OfferHandler) GenerateQR(c echo.Context) error {
	shopID, ok := middleware.ShopID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid offer ID")
	}

	png, err := h.uc.GenerateQR(c.Request().Context(), shopID, offerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// bindOfferForm parses the multipart offer form the dashboard submits. Tags
// arrive as a JSON array string; dates as YYYY-MM-DD; the image is optional.
func bindOfferForm(c echo.Context) (*usecase.OfferInput, func(), error) {
	input := &usecase.OfferInput{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Category:    c.FormValue("category"),
	}

	if raw := c.FormValue("tags"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &input.Tags); err != nil {
			return nil, nil, errors.New("tags must be a JSON array of strings")
		}
	}

	if raw := c.FormValue("discount"); raw != "" {
		discount, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, nil, errors.New("discount must be a number")
		}
		input.Discount = discount
	}

	if raw := c.FormValue("minPurchase"); raw != "" {
		minPurchase, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, nil, errors.New("minPurchase must be a number")
		}
		input.MinPurchase = &minPurchase
	}

	startDate, err := time.Parse(offerDateLayout, c.FormValue("startDate"))
	if err != nil {
		return nil, nil, errors.New("startDate must be YYYY-MM-DD")
	}
	input.StartDate = startDate

	endDate, err := time.Parse(offerDateLayout, c.FormValue("endDate"))
	if err != nil {
		return nil, nil, errors.New("endDate must be YYYY-MM-DD")
	}
	input.EndDate = endDate

	closeFn := func() {}
	if fileHeader, err := c.FormFile("image"); err == nil {
		upload, cleanup, err := openUpload(fileHeader)
		if err != nil {
			return nil, nil, errors.New("cannot read uploaded image")
		}
		input.Image = upload
		closeFn = cleanup
	}

	return input, closeFn, nil
}
