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
	"gorm.io/gorm/clause"
)

// settingsRepository implements the repository.SettingsRepository interface.
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository is the constructor for settingsRepository.
func NewSettingsRepository(db *gorm.DB) repository.SettingsRepository {
	return &settingsRepository{db: db}
}

// FindByShop retrieves the settings of a shop.
func (repo *settingsRepository) FindByShop(ctx context.Context, shopID uuid.UUID) (*entity.ShopSettings, error) {
	var settingsM model.ShopSettingsModel
	if err := repo.db.WithContext(ctx).Where("shop_id = ?", shopID).First(&settingsM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSettingsNotFound
		}

		return nil, errors.Wrap(err, "failed to find settings by shop")
	}

	return toSettingsDomain(&settingsM), nil
}

// Save creates or replaces the settings of a shop.
func (repo *settingsRepository) Save(ctx context.Context, settings *entity.ShopSettings) error {
	settingsM := fromSettingsDomain(settings)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "shop_id"}},
			UpdateAll: true,
		}).
		Create(settingsM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrShopNotFound.WrapMessage("invalid shop reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save settings")
	}

	settings.UpdatedAt = settingsM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// toSettingsDomain converts a GORM ShopSettingsModel to a domain ShopSettings entity.
func toSettingsDomain(data *model.ShopSettingsModel) *entity.ShopSettings {
	if data == nil {
		return nil
	}

	return &entity.ShopSettings{
		ShopID:        data.ShopID,
		Channels:      entity.NotificationChannels(data.Channels),
		Notifications: entity.NotificationToggles(data.Notifications),
		Chat:          entity.ChatSettings(data.Chat),
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromSettingsDomain converts a domain ShopSettings entity to a GORM ShopSettingsModel.
func fromSettingsDomain(data *entity.ShopSettings) *model.ShopSettingsModel {
	if data == nil {
		return nil
	}

	return &model.ShopSettingsModel{
		ShopID:        data.ShopID,
		Channels:      model.ChannelsJSON(data.Channels),
		Notifications: model.TogglesJSON(data.Notifications),
		Chat:          model.ChatJSON(data.Chat),
		UpdatedAt:     data.UpdatedAt,
	}
}
