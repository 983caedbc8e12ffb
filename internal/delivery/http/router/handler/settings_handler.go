package handler

import (
	"log/slog"
	"net/http"

	"closecart/internal/delivery/http/middleware"
	"closecart/internal/delivery/http/response"
	"closecart/internal/domain/entity"
	"closecart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SettingsHandler holds dependencies for notification and chat settings handlers.
type SettingsHandler struct {
	uc     usecase.SettingsUsecase
	logger *slog.Logger
}

// NewSettingsHandler is the constructor for SettingsHandler, injected by Fx.
func NewSettingsHandler(uc usecase.SettingsUsecase, logger *slog.Logger) *SettingsHandler {
	return &SettingsHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetSettings returns the shop's settings, seeding defaults on first access.
func (h *SettingsHandler) GetSettings(c echo.Context) error {
	shopID, ok := middleware.ShopID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	settings, err := h.uc.GetSettings(c.Request().Context(), shopID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, settings, "")
}

// UpdateChannels replaces the delivery channel selection.
func (h *SettingsHandler) UpdateChannels(c echo.Context) error {
	shopID, ok := middleware.ShopID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	var channels entity.NotificationChannels
	if err := c.Bind(&channels); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid channels input")
	}

	settings, err := h.uc.UpdateChannels(c.Request().Context(), shopID, channels)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, settings, "Channels updated")
}

// UpdateNotifications replaces the per-event notification toggles.
func (h *SettingsHandler) UpdateNotifications(c echo.Context) error {
	shopID, ok := middleware.ShopID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	var toggles entity.NotificationToggles
	if err := c.Bind(&toggles); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid notification toggles input")
	}

	settings, err := h.uc.UpdateNotifications(c.Request().Context(), shopID, toggles)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, settings, "Notifications updated")
}

// UpdateChat replaces the chat preferences.
func (h *SettingsHandler) UpdateChat(c echo.Context) error {
	shopID, ok := middleware.ShopID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	var chat entity.ChatSettings
	if err := c.Bind(&chat); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid chat settings input")
	}

	settings, err := h.uc.UpdateChat(c.Request().Context(), shopID, chat)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, settings, "Chat settings updated")
}
