package apiclient

import (
	"context"
	"net/http"

	"closecart/internal/domain/entity"
	"closecart/internal/usecase"
	"closecart/pkg/staged"
)

// ShopLocation is the staged payload of the location section: the address
// line plus the optional map pin.
type ShopLocation struct {
	Address  string
	Location *entity.LatLng
}

// ShopEditor stages the five savable sections of the shop profile page.
// Each section tracks its own dirty state, saves through its own endpoint,
// and never touches fields owned by another section.
type ShopEditor struct {
	client *Client

	BasicInfo     *staged.Section[usecase.UpdateBasicInfoInput]
	Contact       *staged.Section[usecase.UpdateContactInput]
	BusinessHours *staged.Section[entity.BusinessHours]
	Location      *staged.Section[ShopLocation]
	SocialLinks   *staged.Section[entity.SocialLinks]
}

// LoadShop fetches the profile and hydrates a clean editor.
func (c *Client) LoadShop(ctx context.Context) (*ShopEditor, error) {
	var shop entity.Shop
	if err := c.do(ctx, http.MethodGet, "/shop", nil, &shop); err != nil {
		return nil, err
	}

	return &ShopEditor{
		client: c,
		BasicInfo: staged.New(usecase.UpdateBasicInfoInput{
			Name:        shop.Name,
			Description: shop.Description,
			Category:    shop.Category,
		}),
		Contact: staged.New(usecase.UpdateContactInput{
			Email:   shop.Email,
			Phone:   shop.Phone,
			Website: shop.Website,
		}),
		BusinessHours: staged.New(shop.BusinessHours),
		Location: staged.New(ShopLocation{
			Address:  shop.Address,
			Location: shop.Location,
		}),
		SocialLinks: staged.New(shop.SocialLinks),
	}, nil
}

// Dirty reports whether any profile section has unsaved changes.
func (e *ShopEditor) Dirty() bool {
	return e.BasicInfo.IsDirty() ||
		e.Contact.IsDirty() ||
		e.BusinessHours.IsDirty() ||
		e.Location.IsDirty() ||
		e.SocialLinks.IsDirty()
}

// DiscardAll rolls every section back to its last saved value.
func (e *ShopEditor) DiscardAll() {
	e.BasicInfo.Discard()
	e.Contact.Discard()
	e.BusinessHours.Discard()
	e.Location.Discard()
	e.SocialLinks.Discard()
}

// SaveBasicInfo persists name, description and category.
func (e *ShopEditor) SaveBasicInfo(ctx context.Context) error {
	return e.BasicInfo.Save(ctx, func(ctx context.Context, input usecase.UpdateBasicInfoInput) (usecase.UpdateBasicInfoInput, error) {
		var shop entity.Shop
		if err := e.client.do(ctx, http.MethodPut, "/shop/basic-info", input, &shop); err != nil {
			return input, err
		}

		return usecase.UpdateBasicInfoInput{
			Name:        shop.Name,
			Description: shop.Description,
			Category:    shop.Category,
		}, nil
	})
}

// SaveContact persists the public contact details.
func (e *ShopEditor) SaveContact(ctx context.Context) error {
	return e.Contact.Save(ctx, func(ctx context.Context, input usecase.UpdateContactInput) (usecase.UpdateContactInput, error) {
		var shop entity.Shop
		if err := e.client.do(ctx, http.MethodPut, "/shop/contact", input, &shop); err != nil {
			return input, err
		}

		return usecase.UpdateContactInput{
			Email:   shop.Email,
			Phone:   shop.Phone,
			Website: shop.Website,
		}, nil
	})
}

// SaveBusinessHours persists the weekly opening schedule.
func (e *ShopEditor) SaveBusinessHours(ctx context.Context) error {
	return e.BusinessHours.Save(ctx, func(ctx context.Context, hours entity.BusinessHours) (entity.BusinessHours, error) {
		var shop entity.Shop
		if err := e.client.do(ctx, http.MethodPut, "/shop/business-hours", hours, &shop); err != nil {
			return hours, err
		}

		return shop.BusinessHours, nil
	})
}

// SaveLocation persists the address and the map pin.
func (e *ShopEditor) SaveLocation(ctx context.Context) error {
	return e.Location.Save(ctx, func(ctx context.Context, location ShopLocation) (ShopLocation, error) {
		input := &usecase.UpdateLocationInput{
			Address:  location.Address,
			Location: location.Location,
		}

		var shop entity.Shop
		if err := e.client.do(ctx, http.MethodPut, "/shop/location", input, &shop); err != nil {
			return location, err
		}

		return ShopLocation{Address: shop.Address, Location: shop.Location}, nil
	})
}

// SaveSocialLinks persists the social media links.
func (e *ShopEditor) SaveSocialLinks(ctx context.Context) error {
	return e.SocialLinks.Save(ctx, func(ctx context.Context, links entity.SocialLinks) (entity.SocialLinks, error) {
		var shop entity.Shop
		if err := e.client.do(ctx, http.MethodPut, "/shop/social-links", links, &shop); err != nil {
			return links, err
		}

		return shop.SocialLinks, nil
	})
}

// UploadLogo stores a new logo. Validated client-side like offer images.
func (e *ShopEditor) UploadLogo(ctx context.Context, image *ImageAttachment) (*entity.Shop, error) {
	return e.uploadImage(ctx, "/shop/logo", "logo", image)
}

// UploadCoverImage stores a new cover image.
func (e *ShopEditor) UploadCoverImage(ctx context.Context, image *ImageAttachment) (*entity.Shop, error) {
	return e.uploadImage(ctx, "/shop/cover-image", "coverImage", image)
}

func (e *ShopEditor) uploadImage(ctx context.Context, path, field string, image *ImageAttachment) (*entity.Shop, error) {
	if err := validateImage(image); err != nil {
		return nil, err
	}

	body, contentType, err := encodeImageForm(field, image)
	if err != nil {
		return nil, err
	}

	var shop entity.Shop
	if err := e.client.doMultipart(ctx, http.MethodPost, path, contentType, body, &shop); err != nil {
		return nil, err
	}

	return &shop, nil
}
