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

// offerRepository implements the repository.OfferRepository interface.
type offerRepository struct {
	db *gorm.DB
}

// NewOfferRepository is the constructor for offerRepository.
func NewOfferRepository(db *gorm.DB) repository.OfferRepository {
	return &offerRepository{db: db}
}

// Create persists a new offer.
func (repo *offerRepository) Create(ctx context.Context, offer *entity.Offer) error {
	offerM := fromOfferDomain(offer)

	if err := repo.db.WithContext(ctx).Create(offerM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrShopNotFound.WrapMessage("invalid shop reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required offer information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create offer")
	}

	offer.ID = offerM.ID
	offer.CreatedAt = offerM.CreatedAt
	offer.UpdatedAt = offerM.UpdatedAt

	return nil
}

// FindByID retrieves an offer by its unique ID.
func (repo *offerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Offer, error) {
	var offerM model.OfferModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&offerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOfferNotFound
		}

		return nil, errors.Wrap(err, "failed to find offer by ID")
	}

	return toOfferDomain(&offerM), nil
}

// FindByShop retrieves all offers of a shop, newest first.
func (repo *offerRepository) FindByShop(ctx context.Context, shopID uuid.UUID) ([]*entity.Offer, error) {
	var offerModels []*model.OfferModel
	if err := repo.db.WithContext(ctx).
		Where("shop_id = ?", shopID).
		Order("created_at DESC").
		Find(&offerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find offers by shop")
	}

	offers := make([]*entity.Offer, 0, len(offerModels))
	for _, offerM := range offerModels {
		offers = append(offers, toOfferDomain(offerM))
	}

	return offers, nil
}

// Update persists changes to an existing offer.
func (repo *offerRepository) Update(ctx context.Context, offer *entity.Offer) error {
	offerM := fromOfferDomain(offer)

	if err := repo.db.WithContext(ctx).Save(offerM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required offer information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update offer")
	}

	offer.UpdatedAt = offerM.UpdatedAt

	return nil
}

// Delete removes an offer permanently.
func (repo *offerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.OfferModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete offer")
	}

	// If no rows were affected, the offer was not found.
	if result.RowsAffected == 0 {
		return repository.ErrOfferNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toOfferDomain converts a GORM OfferModel to a domain Offer entity.
func toOfferDomain(data *model.OfferModel) *entity.Offer {
	if data == nil {
		return nil
	}

	return &entity.Offer{
		ID:          data.ID,
		ShopID:      data.ShopID,
		Title:       data.Title,
		Description: data.Description,
		Category:    data.Category,
		Tags:        []string(data.Tags),
		ImageURL:    data.ImageURL,
		Discount:    data.Discount,
		MinPurchase: data.MinPurchase,
		StartDate:   data.StartDate,
		EndDate:     data.EndDate,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromOfferDomain converts a domain Offer entity to a GORM OfferModel.
func fromOfferDomain(data *entity.Offer) *model.OfferModel {
	if data == nil {
		return nil
	}

	return &model.OfferModel{
		ID:          data.ID,
		ShopID:      data.ShopID,
		Title:       data.Title,
		Description: data.Description,
		Category:    data.Category,
		Tags:        model.StringSlice(data.Tags),
		ImageURL:    data.ImageURL,
		Discount:    data.Discount,
		MinPurchase: data.MinPurchase,
		StartDate:   data.StartDate,
		EndDate:     data.EndDate,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
