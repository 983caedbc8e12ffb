package impl

import (
	"context"
	"log/slog"
	"strings"

	"closecart/internal/domain/entity"
	domainerrors "closecart/internal/domain/errors"
	"closecart/internal/domain/repository"
	"closecart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const maxQuickReplies = 10

// settingsService implements the SettingsUsecase interface.
type settingsService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewSettingsService is the constructor for settingsService.
func NewSettingsService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.SettingsUsecase {
	return &settingsService{
		txManager: txManager,
		logger:    logger,
	}
}

// GetSettings returns the shop's settings, creating defaults on first access.
func (srv *settingsService) GetSettings(ctx context.Context, shopID uuid.UUID) (*entity.ShopSettings, error) {
	var settings *entity.ShopSettings

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		settingsRepo := repoFactory.SettingsRepo()

		found, err := settingsRepo.FindByShop(ctx, shopID)
		if err == nil {
			settings = found

			return nil
		}
		if !errors.Is(err, repository.ErrSettingsNotFound) {
			return errors.Wrap(err, "failed to find settings")
		}

		// Older shops may predate the settings table; seed defaults lazily.
		settings = entity.DefaultShopSettings(shopID)
		if err := settingsRepo.Save(ctx, settings); err != nil {
			return errors.Wrap(err, "failed to seed default settings")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get settings")
	}

	return settings, nil
}

// UpdateChannels replaces the delivery channel selection.
func (srv *settingsService) UpdateChannels(ctx context.Context, shopID uuid.UUID, channels entity.NotificationChannels) (*entity.ShopSettings, error) {
	srv.logger.Info("Updating notification channels", "shopID", shopID)

	return srv.updateSection(ctx, shopID, func(settings *entity.ShopSettings) error {
		settings.Channels = channels

		return nil
	})
}

// UpdateNotifications replaces the per-event notification toggles.
func (srv *settingsService) UpdateNotifications(ctx context.Context, shopID uuid.UUID, toggles entity.NotificationToggles) (*entity.ShopSettings, error) {
	srv.logger.Info("Updating notification toggles", "shopID", shopID)

	return srv.updateSection(ctx, shopID, func(settings *entity.ShopSettings) error {
		settings.Notifications = toggles

		return nil
	})
}

// UpdateChat replaces the chat preferences.
func (srv *settingsService) UpdateChat(ctx context.Context, shopID uuid.UUID, chat entity.ChatSettings) (*entity.ShopSettings, error) {
	srv.logger.Info("Updating chat settings", "shopID", shopID)

	if err := validateQuickReplies(chat.QuickReplies); err != nil {
		return nil, err
	}

	return srv.updateSection(ctx, shopID, func(settings *entity.ShopSettings) error {
		settings.Chat = chat

		return nil
	})
}

// updateSection loads the settings (seeding defaults when missing), applies
// the mutation and saves, all in one transaction.
func (srv *settingsService) updateSection(ctx context.Context, shopID uuid.UUID, mutate func(*entity.ShopSettings) error) (*entity.ShopSettings, error) {
	var settings *entity.ShopSettings

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		settingsRepo := repoFactory.SettingsRepo()

		found, err := settingsRepo.FindByShop(ctx, shopID)
		if err != nil {
			if !errors.Is(err, repository.ErrSettingsNotFound) {
				return errors.Wrap(err, "failed to find settings")
			}
			found = entity.DefaultShopSettings(shopID)
		}

		if err := mutate(found); err != nil {
			return err
		}

		if err := settingsRepo.Save(ctx, found); err != nil {
			return errors.Wrap(err, "failed to save settings")
		}
		settings = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update settings section")
	}

	return settings, nil
}

// validateQuickReplies rejects blank and duplicate entries.
func validateQuickReplies(replies []string) error {
	if len(replies) > maxQuickReplies {
		return domainerrors.ErrValidationFailed.WrapMessage("too many quick replies")
	}

	seen := make(map[string]struct{}, len(replies))
	for _, reply := range replies {
		trimmed := strings.TrimSpace(reply)
		if trimmed == "" {
			return domainerrors.ErrValidationFailed.WrapMessage("quick reply cannot be empty")
		}
		if _, ok := seen[trimmed]; ok {
			return domainerrors.ErrValidationFailed.WrapMessage("duplicate quick reply: " + trimmed)
		}
		seen[trimmed] = struct{}{}
	}

	return nil
}
