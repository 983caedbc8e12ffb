package impl

import (
	"context"
	"testing"

	"closecart/internal/domain/entity"
	domainerrors "closecart/internal/domain/errors"
	"closecart/internal/domain/repository"
	mockRepo "closecart/internal/mocks/repository"
	"closecart/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// settingsServiceFixtures holds all test dependencies for settings service tests.
type settingsServiceFixtures struct {
	service   usecase.SettingsUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestSettingsService(t *testing.T) settingsServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewSettingsService(txManager, newDiscardLogger())

	return settingsServiceFixtures{
		service:   service,
		txManager: txManager,
	}
}

func TestSettingsService_GetSettings_Existing(t *testing.T) {
	fx := createTestSettingsService(t)

	ctx := context.Background()
	shopID := uuid.New()
	existing := entity.DefaultShopSettings(shopID)
	existing.Channels.SMS = true

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSettingsRepo := mockRepo.NewMockSettingsRepository(t)

			mockFactory.EXPECT().SettingsRepo().Return(mockSettingsRepo)
			mockSettingsRepo.EXPECT().FindByShop(ctx, shopID).Return(existing, nil)

			return fn(mockFactory)
		})

	settings, err := fx.service.GetSettings(ctx, shopID)

	require.NoError(t, err)
	assert.Equal(t, existing, settings)
	assert.True(t, settings.Channels.SMS)
}

func TestSettingsService_GetSettings_SeedsDefaultsWhenMissing(t *testing.T) {
	fx := createTestSettingsService(t)

	ctx := context.Background()
	shopID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSettingsRepo := mockRepo.NewMockSettingsRepository(t)

			mockFactory.EXPECT().SettingsRepo().Return(mockSettingsRepo)
			mockSettingsRepo.EXPECT().FindByShop(ctx, shopID).
				Return(nil, repository.ErrSettingsNotFound)
			mockSettingsRepo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.ShopSettings")).
				RunAndReturn(func(_ context.Context, settings *entity.ShopSettings) error {
					assert.Equal(t, shopID, settings.ShopID)

					return nil
				})

			return fn(mockFactory)
		})

	settings, err := fx.service.GetSettings(ctx, shopID)

	require.NoError(t, err)
	assert.Equal(t, entity.DefaultShopSettings(shopID), settings)
}

func TestSettingsService_UpdateChannels_Success(t *testing.T) {
	fx := createTestSettingsService(t)

	ctx := context.Background()
	shopID := uuid.New()
	existing := entity.DefaultShopSettings(shopID)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSettingsRepo := mockRepo.NewMockSettingsRepository(t)

			mockFactory.EXPECT().SettingsRepo().Return(mockSettingsRepo)
			mockSettingsRepo.EXPECT().FindByShop(ctx, shopID).Return(existing, nil)
			mockSettingsRepo.EXPECT().Save(ctx, existing).Return(nil)

			return fn(mockFactory)
		})

	updated, err := fx.service.UpdateChannels(ctx, shopID, entity.NotificationChannels{
		Email: true,
		Push:  false,
		SMS:   true,
	})

	require.NoError(t, err)
	assert.True(t, updated.Channels.SMS)
	assert.False(t, updated.Channels.Push)
}

func TestSettingsService_UpdateNotifications_Success(t *testing.T) {
	fx := createTestSettingsService(t)

	ctx := context.Background()
	shopID := uuid.New()
	existing := entity.DefaultShopSettings(shopID)

	toggles := existing.Notifications
	toggles.NewOrder = false

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSettingsRepo := mockRepo.NewMockSettingsRepository(t)

			mockFactory.EXPECT().SettingsRepo().Return(mockSettingsRepo)
			mockSettingsRepo.EXPECT().FindByShop(ctx, shopID).Return(existing, nil)
			mockSettingsRepo.EXPECT().Save(ctx, existing).Return(nil)

			return fn(mockFactory)
		})

	updated, err := fx.service.UpdateNotifications(ctx, shopID, toggles)

	require.NoError(t, err)
	assert.False(t, updated.Notifications.NewOrder)
}

func TestSettingsService_UpdateChat_Success(t *testing.T) {
	fx := createTestSettingsService(t)

	ctx := context.Background()
	shopID := uuid.New()
	existing := entity.DefaultShopSettings(shopID)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSettingsRepo := mockRepo.NewMockSettingsRepository(t)

			mockFactory.EXPECT().SettingsRepo().Return(mockSettingsRepo)
			mockSettingsRepo.EXPECT().FindByShop(ctx, shopID).Return(existing, nil)
			mockSettingsRepo.EXPECT().Save(ctx, existing).Return(nil)

			return fn(mockFactory)
		})

	updated, err := fx.service.UpdateChat(ctx, shopID, entity.ChatSettings{
		AutoReply:        true,
		ShowOnlineStatus: true,
		QuickReplies:     []string{"On our way", "Out of stock"},
	})

	require.NoError(t, err)
	assert.True(t, updated.Chat.AutoReply)
	assert.Len(t, updated.Chat.QuickReplies, 2)
}

func TestSettingsService_UpdateChat_RejectsDuplicateQuickReplies(t *testing.T) {
	fx := createTestSettingsService(t)

	updated, err := fx.service.UpdateChat(context.Background(), uuid.New(), entity.ChatSettings{
		QuickReplies: []string{"On our way", "On our way"},
	})

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestSettingsService_UpdateChat_RejectsBlankQuickReply(t *testing.T) {
	fx := createTestSettingsService(t)

	updated, err := fx.service.UpdateChat(context.Background(), uuid.New(), entity.ChatSettings{
		QuickReplies: []string{"On our way", "   "},
	})

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestSettingsService_UpdateChat_RejectsTooManyQuickReplies(t *testing.T) {
	fx := createTestSettingsService(t)

	replies := make([]string, maxQuickReplies+1)
	for i := range replies {
		replies[i] = uuid.New().String()
	}

	updated, err := fx.service.UpdateChat(context.Background(), uuid.New(), entity.ChatSettings{
		QuickReplies: replies,
	})

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestSettingsService_UpdateChannels_SeedsDefaultsWhenMissing(t *testing.T) {
	fx := createTestSettingsService(t)

	ctx := context.Background()
	shopID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSettingsRepo := mockRepo.NewMockSettingsRepository(t)

			mockFactory.EXPECT().SettingsRepo().Return(mockSettingsRepo)
			mockSettingsRepo.EXPECT().FindByShop(ctx, shopID).
				Return(nil, repository.ErrSettingsNotFound)
			mockSettingsRepo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.ShopSettings")).Return(nil)

			return fn(mockFactory)
		})

	updated, err := fx.service.UpdateChannels(ctx, shopID, entity.NotificationChannels{Email: true})

	require.NoError(t, err)
	assert.Equal(t, shopID, updated.ShopID)
	assert.True(t, updated.Channels.Email)
}
