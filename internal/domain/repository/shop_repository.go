package repository

import (
	"context"

	"closecart/internal/domain/entity"
	"closecart/internal/errors"

	"github.com/google/uuid"
)

// ErrShopNotFound is returned when no shop matches the query.
var ErrShopNotFound = errors.New("shop not found")

// ShopRepository persists merchant storefront profiles.
type ShopRepository interface {
	// Create persists a new shop.
	Create(ctx context.Context, shop *entity.Shop) error

	// FindByID retrieves a shop by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error)

	// Update persists changes to an existing shop.
	Update(ctx context.Context, shop *entity.Shop) error
}
