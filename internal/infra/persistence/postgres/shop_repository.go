package postgres

import (
	"context"

	"closecart/internal/domain/entity"
	domainerrors "closecart/internal/domain/errors"
	"closecart/internal/domain/repository"
	"closecart/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// shopRepository implements the repository.ShopRepository interface.
type shopRepository struct {
	db *gorm.DB
}

// NewShopRepository is the constructor for shopRepository.
func NewShopRepository(db *gorm.DB) repository.ShopRepository {
	return &shopRepository{db: db}
}

// Create persists a new shop profile.
func (repo *shopRepository) Create(ctx context.Context, shop *entity.Shop) error {
	shopM := fromShopDomain(shop)

	if err := repo.db.WithContext(ctx).Create(shopM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("owner already has a shop")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid owner reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create shop")
	}

	shop.ID = shopM.ID
	shop.CreatedAt = shopM.CreatedAt
	shop.UpdatedAt = shopM.UpdatedAt

	return nil
}

// FindByID retrieves a shop by its unique ID.
func (repo *shopRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error) {
	var shopM model.ShopModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&shopM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop by ID")
	}

	return toShopDomain(&shopM), nil
}

// Update persists changes to an existing shop.
func (repo *shopRepository) Update(ctx context.Context, shop *entity.Shop) error {
	shopM := fromShopDomain(shop)

	if err := repo.db.WithContext(ctx).Save(shopM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required shop information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update shop")
	}

	shop.UpdatedAt = shopM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// toShopDomain converts a GORM ShopModel to a domain Shop entity.
func toShopDomain(data *model.ShopModel) *entity.Shop {
	if data == nil {
		return nil
	}

	return &entity.Shop{
		ID:            data.ID,
		OwnerID:       data.OwnerID,
		Name:          data.Name,
		Description:   data.Description,
		Category:      data.Category,
		Email:         data.Email,
		Phone:         data.Phone,
		Website:       data.Website,
		Address:       data.Address,
		Location:      data.Location.LatLng,
		SocialLinks:   entity.SocialLinks(data.SocialLinks),
		BusinessHours: entity.BusinessHours(data.BusinessHours),
		LogoURL:       data.LogoURL,
		CoverImageURL: data.CoverImageURL,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromShopDomain converts a domain Shop entity to a GORM ShopModel.
func fromShopDomain(data *entity.Shop) *model.ShopModel {
	if data == nil {
		return nil
	}

	return &model.ShopModel{
		ID:            data.ID,
		OwnerID:       data.OwnerID,
		Name:          data.Name,
		Description:   data.Description,
		Category:      data.Category,
		Email:         data.Email,
		Phone:         data.Phone,
		Website:       data.Website,
		Address:       data.Address,
		Location:      model.GeoPointJSON{LatLng: data.Location},
		SocialLinks:   model.SocialLinksJSON(data.SocialLinks),
		BusinessHours: model.BusinessHoursJSON(data.BusinessHours),
		LogoURL:       data.LogoURL,
		CoverImageURL: data.CoverImageURL,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
