package repository

import (
	"context"

	"closecart/internal/domain/entity"
	"closecart/internal/errors"

	"github.com/google/uuid"
)

// ErrOfferNotFound is returned when no offer matches the query.
var ErrOfferNotFound = errors.New("offer not found")

// OfferRepository persists promotional offers.
type OfferRepository interface {
	// Create persists a new offer.
	Create(ctx context.Context, offer *entity.Offer) error

	// FindByID retrieves an offer by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Offer, error)

	// FindByShop retrieves all offers of a shop, newest first.
	FindByShop(ctx context.Context, shopID uuid.UUID) ([]*entity.Offer, error)

	// Update persists changes to an existing offer.
	Update(ctx context.Context, offer *entity.Offer) error

	// Delete removes an offer permanently. Offers have no soft-delete.
	Delete(ctx context.Context, id uuid.UUID) error
}
