package impl

import (
	"context"
	"log/slog"

	"closecart/config"
	"closecart/internal/domain/entity"
	domainerrors "closecart/internal/domain/errors"
	"closecart/internal/domain/repository"
	"closecart/internal/domain/service"
	"closecart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// shopService implements the ShopUsecase interface.
type shopService struct {
	txManager repository.TransactionManager
	fileStore service.FileStore
	uploads   *config.UploadsConfig
	logger    *slog.Logger
}

// NewShopService is the constructor for shopService.
func NewShopService(
	txManager repository.TransactionManager,
	fileStore service.FileStore,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.ShopUsecase {
	return &shopService{
		txManager: txManager,
		fileStore: fileStore,
		uploads:   cfg.Uploads,
		logger:    logger,
	}
}

// GetShop retrieves the full shop profile.
func (srv *shopService) GetShop(ctx context.Context, shopID uuid.UUID) (*entity.Shop, error) {
	var shop *entity.Shop

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ShopRepo().FindByID(ctx, shopID)
		if err != nil {
			if errors.Is(err, repository.ErrShopNotFound) {
				return errors.Wrap(domainerrors.ErrShopNotFound, "shop not found")
			}

			return errors.Wrap(err, "failed to find shop")
		}
		shop = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get shop")
	}

	return shop, nil
}

// UpdateBasicInfo replaces name, description and category.
func (srv *shopService) UpdateBasicInfo(ctx context.Context, shopID uuid.UUID, input *usecase.UpdateBasicInfoInput) (*entity.Shop, error) {
	srv.logger.Info("Updating shop basic info", "shopID", shopID)

	return srv.updateSection(ctx, shopID, func(shop *entity.Shop) error {
		shop.Name = input.Name
		shop.Description = input.Description
		shop.Category = input.Category

		return nil
	})
}

// UpdateContact replaces the public contact details.
func (srv *shopService) UpdateContact(ctx context.Context, shopID uuid.UUID, input *usecase.UpdateContactInput) (*entity.Shop, error) {
	srv.logger.Info("Updating shop contact", "shopID", shopID)

	return srv.updateSection(ctx, shopID, func(shop *entity.Shop) error {
		shop.Email = input.Email
		shop.Phone = input.Phone
		shop.Website = input.Website

		return nil
	})
}

// UpdateBusinessHours replaces the weekly opening schedule.
func (srv *shopService) UpdateBusinessHours(ctx context.Context, shopID uuid.UUID, hours entity.BusinessHours) (*entity.Shop, error) {
	srv.logger.Info("Updating shop business hours", "shopID", shopID)

	for day := range hours {
		if !isWeekday(day) {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown weekday: " + day)
		}
	}

	return srv.updateSection(ctx, shopID, func(shop *entity.Shop) error {
		shop.BusinessHours = hours

		return nil
	})
}

// UpdateLocation replaces the address and coordinates.
func (srv *shopService) UpdateLocation(ctx context.Context, shopID uuid.UUID, input *usecase.UpdateLocationInput) (*entity.Shop, error) {
	srv.logger.Info("Updating shop location", "shopID", shopID)

	if input.Location != nil {
		if input.Location.Lat < -90 || input.Location.Lat > 90 ||
			input.Location.Lng < -180 || input.Location.Lng > 180 {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("coordinates out of range")
		}
	}

	return srv.updateSection(ctx, shopID, func(shop *entity.Shop) error {
		shop.Address = input.Address
		shop.Location = input.Location

		return nil
	})
}

// UpdateSocialLinks replaces the social media links.
func (srv *shopService) UpdateSocialLinks(ctx context.Context, shopID uuid.UUID, links entity.SocialLinks) (*entity.Shop, error) {
	srv.logger.Info("Updating shop social links", "shopID", shopID)

	return srv.updateSection(ctx, shopID, func(shop *entity.Shop) error {
		shop.SocialLinks = links

		return nil
	})
}

// UploadLogo stores a new logo image and updates the profile.
func (srv *shopService) UploadLogo(ctx context.Context, shopID uuid.UUID, upload *usecase.Upload) (*entity.Shop, error) {
	srv.logger.Info("Uploading shop logo", "shopID", shopID)

	url, err := srv.storeImage(ctx, "shops/"+shopID.String()+"/logo", upload)
	if err != nil {
		return nil, err
	}

	return srv.updateSection(ctx, shopID, func(shop *entity.Shop) error {
		shop.LogoURL = url

		return nil
	})
}

// UploadCoverImage stores a new cover image and updates the profile.
func (srv *shopService) UploadCoverImage(ctx context.Context, shopID uuid.UUID, upload *usecase.Upload) (*entity.Shop, error) {
	srv.logger.Info("Uploading shop cover image", "shopID", shopID)

	url, err := srv.storeImage(ctx, "shops/"+shopID.String()+"/cover", upload)
	if err != nil {
		return nil, err
	}

	return srv.updateSection(ctx, shopID, func(shop *entity.Shop) error {
		shop.CoverImageURL = url

		return nil
	})
}

// updateSection loads the shop, applies the mutation and saves it, all in
// one transaction. Only the mutated section changes; everything else is
// written back as loaded.
func (srv *shopService) updateSection(ctx context.Context, shopID uuid.UUID, mutate func(*entity.Shop) error) (*entity.Shop, error) {
	var shop *entity.Shop

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		shopRepo := repoFactory.ShopRepo()

		found, err := shopRepo.FindByID(ctx, shopID)
		if err != nil {
			if errors.Is(err, repository.ErrShopNotFound) {
				return errors.Wrap(domainerrors.ErrShopNotFound, "shop not found")
			}

			return errors.Wrap(err, "failed to find shop")
		}

		if err := mutate(found); err != nil {
			return err
		}

		if err := shopRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update shop")
		}
		shop = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update shop section")
	}

	return shop, nil
}

// storeImage validates the upload and writes it to the file store.
func (srv *shopService) storeImage(ctx context.Context, prefix string, upload *usecase.Upload) (string, error) {
	if err := validateUpload(srv.uploads, upload); err != nil {
		return "", err
	}

	url, err := srv.fileStore.Save(ctx, uploadKey(prefix, upload), upload.ContentType, upload.Content)
	if err != nil {
		return "", errors.Wrap(err, "failed to store image")
	}

	return url, nil
}

func isWeekday(day string) bool {
	for _, d := range entity.Weekdays {
		if d == day {
			return true
		}
	}

	return false
}
