package usecase

import (
	"context"
	"io"

	"closecart/internal/domain/entity"

	"github.com/google/uuid"
)

// ShopUsecase defines the interface for shop profile operations. Each update
// method maps to one independently savable section of the profile page and
// never touches fields outside its section.
type ShopUsecase interface {
	// GetShop retrieves the full shop profile.
	GetShop(ctx context.Context, shopID uuid.UUID) (*entity.Shop, error)

	// UpdateBasicInfo replaces name, description and category.
	UpdateBasicInfo(ctx context.Context, shopID uuid.UUID, input *UpdateBasicInfoInput) (*entity.Shop, error)

	// UpdateContact replaces the public contact details.
	UpdateContact(ctx context.Context, shopID uuid.UUID, input *UpdateContactInput) (*entity.Shop, error)

	// UpdateBusinessHours replaces the weekly opening schedule.
	UpdateBusinessHours(ctx context.Context, shopID uuid.UUID, hours entity.BusinessHours) (*entity.Shop, error)

	// UpdateLocation replaces the address and coordinates.
	UpdateLocation(ctx context.Context, shopID uuid.UUID, input *UpdateLocationInput) (*entity.Shop, error)

	// UpdateSocialLinks replaces the social media links.
	UpdateSocialLinks(ctx context.Context, shopID uuid.UUID, links entity.SocialLinks) (*entity.Shop, error)

	// UploadLogo stores a new logo image and updates the profile.
	UploadLogo(ctx context.Context, shopID uuid.UUID, upload *Upload) (*entity.Shop, error)

	// UploadCoverImage stores a new cover image and updates the profile.
	UploadCoverImage(ctx context.Context, shopID uuid.UUID, upload *Upload) (*entity.Shop, error)
}

// --- Input DTOs ---

// UpdateBasicInfoInput defines the shop identity section.
type UpdateBasicInfoInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// UpdateContactInput defines the public contact section.
type UpdateContactInput struct {
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone"`
	Website string `json:"website" validate:"omitempty,url"`
}

// UpdateLocationInput defines the address section. Location may be nil when
// the owner cleared the pin.
type UpdateLocationInput struct {
	Address  string         `json:"address"`
	Location *entity.LatLng `json:"location"`
}

// Upload is a file received from a multipart form.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}
