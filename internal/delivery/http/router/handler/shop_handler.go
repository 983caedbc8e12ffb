package handler

import (
	"context"
	"log/slog"
	"mime/multipart"
	"net/http"

	"closecart/internal/delivery/http/middleware"
	"closecart/internal/delivery/http/response"
	"closecart/internal/domain/entity"
	"closecart/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ShopHandler holds dependencies for shop profile handlers. Each update
// endpoint maps to one savable section of the profile page.
type ShopHandler struct {
	uc     usecase.ShopUsecase
	logger *slog.Logger
}

// NewShopHandler is the constructor for ShopHandler, injected by Fx.
func NewShopHandler(uc usecase.ShopUsecase, logger *slog.Logger) *ShopHandler {
	return &ShopHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetShop returns the full shop profile.
func (h *ShopHandler) GetShop(c echo.Context) error {
	shopID, ok := middleware.ShopID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	shop, err := h.uc.GetShop(c.Request().Context(), shopID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, shop, "")
}

// UpdateBasicInfo replaces the shop identity section.
func (h *ShopHandler) UpdateBasicInfo(c echo.Context) error {
	shopID, ok := middleware.ShopID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	var input *usecase.UpdateBasicInfoInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid basic info input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	shop, err := h.uc.UpdateBasicInfo(c.Request().Context(), shopID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, shop, "Shop info updated")
}

// UpdateContact replaces the public contact section.
func (h *ShopHandler) UpdateContact(c echo.Context) error {
	shopID, ok := middleware.ShopID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	var input *usecase.UpdateContactInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid contact input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	shop, err := h.uc.UpdateContact(c.Request().Context(), shopID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, shop, "Contact info updated")
}

// UpdateBusinessHours replaces the weekly opening schedule.
func (h *ShopHandler) UpdateBusinessHours(c echo.Context) error {
	shopID, ok := middleware.ShopID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	var hours entity.BusinessHours
	if err := c.Bind(&hours); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid business hours input")
	}

	shop, err := h.uc.UpdateBusinessHours(c.Request().Context(), shopID, hours)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, shop, "Business hours updated")
}

// UpdateLocation replaces the address and coordinates.
func (h *ShopHandler) UpdateLocation(c echo.Context) error {
	shopID, ok := middleware.ShopID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	var input *usecase.UpdateLocationInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	shop, err := h.uc.UpdateLocation(c.Request().Context(), shopID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, shop, "Location updated")
}

// UpdateSocialLinks replaces the social media links.
func (h *ShopHandler) UpdateSocialLinks(c echo.Context) error {
	shopID, ok := middleware.ShopID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	var links entity.SocialLinks
	if err := c.Bind(&links); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid social links input")
	}

	shop, err := h.uc.UpdateSocialLinks(c.Request().Context(), shopID, links)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, shop, "Social links updated")
}

// UploadLogo stores a new logo image.
func (h *ShopHandler) UploadLogo(c echo.Context) error {
	return h.uploadImage(c, "logo", h.uc.UploadLogo)
}

// UploadCoverImage stores a new cover image.
func (h *ShopHandler) UploadCoverImage(c echo.Context) error {
	return h.uploadImage(c, "coverImage", h.uc.UploadCoverImage)
}

func (h *ShopHandler) uploadImage(
	c echo.Context,
	field string,
	store func(ctx context.Context, shopID uuid.UUID, upload *usecase.Upload) (*entity.Shop, error),
) error {
	shopID, ok := middleware.ShopID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	fileHeader, err := c.FormFile(field)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Missing "+field+" file")
	}

	upload, closeFn, err := openUpload(fileHeader)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Cannot read uploaded file")
	}
	defer closeFn()

	shop, err := store(c.Request().Context(), shopID, upload)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, shop, "Image uploaded")
}

// openUpload converts a multipart file header to the usecase upload DTO.
func openUpload(fileHeader *multipart.FileHeader) (*usecase.Upload, func(), error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, nil, err
	}

	upload := &usecase.Upload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Content:     file,
	}

	return upload, func() { _ = file.Close() }, nil
}
