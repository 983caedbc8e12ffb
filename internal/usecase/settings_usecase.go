package usecase

import (
	"context"

	"closecart/internal/domain/entity"

	"github.com/google/uuid"
)

// SettingsUsecase defines the interface for notification and chat
// preferences. Each section saves independently; updating one never
// rewrites the others.
type SettingsUsecase interface {
	// GetSettings returns the shop's settings, creating defaults on first access.
	GetSettings(ctx context.Context, shopID uuid.UUID) (*entity.ShopSettings, error)

	// UpdateChannels replaces the delivery channel selection.
	UpdateChannels(ctx context.Context, shopID uuid.UUID, channels entity.NotificationChannels) (*entity.ShopSettings, error)

	// UpdateNotifications replaces the per-event notification toggles.
	UpdateNotifications(ctx context.Context, shopID uuid.UUID, toggles entity.NotificationToggles) (*entity.ShopSettings, error)

	// UpdateChat replaces the chat preferences. Quick replies must be
	// non-empty and unique.
	UpdateChat(ctx context.Context, shopID uuid.UUID, chat entity.ChatSettings) (*entity.ShopSettings, error)
}
