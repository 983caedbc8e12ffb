package repository

import (
	"context"

	"closecart/internal/domain/entity"
	"closecart/internal/errors"

	"github.com/google/uuid"
)

// ErrSettingsNotFound is returned when a shop has no stored settings yet.
var ErrSettingsNotFound = errors.New("settings not found")

// SettingsRepository persists per-shop notification and chat preferences.
type SettingsRepository interface {
	// FindByShop retrieves the settings of a shop.
	FindByShop(ctx context.Context, shopID uuid.UUID) (*entity.ShopSettings, error)

	// Save creates or replaces the settings of a shop.
	Save(ctx context.Context, settings *entity.ShopSettings) error
}
