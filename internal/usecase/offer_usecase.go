package usecase

import (
	"context"
	"time"

	"closecart/internal/domain/entity"

	"github.com/google/uuid"
)

// OfferUsecase defines the interface for promotional offer operations.
// All operations are scoped to the authenticated shop; an offer belonging to
// another shop behaves as if it did not exist.
type OfferUsecase interface {
	// ListOffers returns all offers of the shop, newest first.
	ListOffers(ctx context.Context, shopID uuid.UUID) ([]*entity.Offer, error)

	// GetOffer retrieves a single offer of the shop.
	GetOffer(ctx context.Context, shopID, offerID uuid.UUID) (*entity.Offer, error)

	// CreateOffer creates an offer, optionally storing an uploaded image.
	CreateOffer(ctx context.Context, shopID uuid.UUID, input *OfferInput) (*entity.Offer, error)

	// UpdateOffer replaces an offer's editable fields.
	UpdateOffer(ctx context.Context, shopID, offerID uuid.UUID, input *OfferInput) (*entity.Offer, error)

	// DeleteOffer removes an offer permanently.
	DeleteOffer(ctx context.Context, shopID, offerID uuid.UUID) error

	// GetCatalog returns the configured categories and recommended tags.
	GetCatalog(ctx context.Context) (*OfferCatalog, error)

	// GenerateQR renders a QR code PNG linking to the offer.
	GenerateQR(ctx context.Context, shopID, offerID uuid.UUID) ([]byte, error)
}

// --- Input DTOs ---

// OfferInput defines the editable fields of an offer. The Image is optional;
// when nil an update keeps the existing image.
type OfferInput struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Tags        []string  `json:"tags"`
	Discount    float64   `json:"discount" validate:"gte=0,lte=100"`
	MinPurchase *float64  `json:"minPurchase" validate:"omitempty,gte=0"`
	StartDate   time.Time `json:"startDate" validate:"required"`
	EndDate     time.Time `json:"endDate" validate:"required"`
	Image       *Upload   `json:"-"`
}

// --- Output DTOs ---

// OfferCatalog lists the categories and recommended tags offered to the
// dashboard's create and edit forms.
type OfferCatalog struct {
	Categories      []string `json:"categories"`
	RecommendedTags []string `json:"recommendedTags"`
}
