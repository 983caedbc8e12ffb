package impl

import (
	"context"
	"strings"
	"testing"

	"closecart/internal/domain/entity"
	domainerrors "closecart/internal/domain/errors"
	"closecart/internal/domain/repository"
	mockRepo "closecart/internal/mocks/repository"
	mockService "closecart/internal/mocks/service"
	"closecart/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// shopServiceFixtures holds all test dependencies for shop service tests.
type shopServiceFixtures struct {
	service   usecase.ShopUsecase
	txManager *mockRepo.MockTransactionManager
	fileStore *mockService.MockFileStore
}

func createTestShopService(t *testing.T) shopServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	fileStore := mockService.NewMockFileStore(t)
	service := NewShopService(txManager, fileStore, newTestConfig(), newDiscardLogger())

	return shopServiceFixtures{
		service:   service,
		txManager: txManager,
		fileStore: fileStore,
	}
}

// expectShopUpdate wires the transaction to load the given shop and accept
// one Update call.
func expectShopUpdate(t *testing.T, fx shopServiceFixtures, ctx context.Context, shop *entity.Shop) {
	t.Helper()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockShopRepo := mockRepo.NewMockShopRepository(t)

			mockFactory.EXPECT().ShopRepo().Return(mockShopRepo)
			mockShopRepo.EXPECT().FindByID(ctx, shop.ID).Return(shop, nil)
			mockShopRepo.EXPECT().Update(ctx, shop).Return(nil)

			return fn(mockFactory)
		})
}

func TestShopService_GetShop_Success(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	shopID := uuid.New()
	expectedShop := &entity.Shop{ID: shopID, Name: "Corner Bakery"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockShopRepo := mockRepo.NewMockShopRepository(t)

			mockFactory.EXPECT().ShopRepo().Return(mockShopRepo)
			mockShopRepo.EXPECT().FindByID(ctx, shopID).Return(expectedShop, nil)

			return fn(mockFactory)
		})

	shop, err := fx.service.GetShop(ctx, shopID)

	require.NoError(t, err)
	assert.Equal(t, expectedShop, shop)
}

func TestShopService_GetShop_NotFound(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	shopID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockShopRepo := mockRepo.NewMockShopRepository(t)

			mockFactory.EXPECT().ShopRepo().Return(mockShopRepo)
			mockShopRepo.EXPECT().FindByID(ctx, shopID).Return(nil, repository.ErrShopNotFound)

			return fn(mockFactory)
		})

	shop, err := fx.service.GetShop(ctx, shopID)

	require.Error(t, err)
	assert.Nil(t, shop)
	assert.ErrorIs(t, err, domainerrors.ErrShopNotFound)
}

func TestShopService_UpdateBasicInfo_OnlyTouchesItsSection(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	existing := &entity.Shop{
		ID:          uuid.New(),
		Name:        "Old Name",
		Description: "Old description",
		Category:    "Food & Drink",
		Email:       "contact@example.com",
		Phone:       "+49123456",
		Address:     "Alexanderplatz 1",
		Location:    &entity.LatLng{Lat: 52.52, Lng: 13.405},
	}

	expectShopUpdate(t, fx, ctx, existing)

	updated, err := fx.service.UpdateBasicInfo(ctx, existing.ID, &usecase.UpdateBasicInfoInput{
		Name:        "New Name",
		Description: "New description",
		Category:    "Fashion",
	})

	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, "Fashion", updated.Category)

	// Other sections stay exactly as loaded.
	assert.Equal(t, "contact@example.com", updated.Email)
	assert.Equal(t, "Alexanderplatz 1", updated.Address)
	assert.Equal(t, &entity.LatLng{Lat: 52.52, Lng: 13.405}, updated.Location)
}

func TestShopService_UpdateContact_Success(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	existing := &entity.Shop{ID: uuid.New(), Name: "Corner Bakery", Email: "old@example.com"}

	expectShopUpdate(t, fx, ctx, existing)

	updated, err := fx.service.UpdateContact(ctx, existing.ID, &usecase.UpdateContactInput{
		Email:   "new@example.com",
		Phone:   "+49777",
		Website: "https://bakery.example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "new@example.com", updated.Email)
	assert.Equal(t, "https://bakery.example.com", updated.Website)
	assert.Equal(t, "Corner Bakery", updated.Name)
}

func TestShopService_UpdateBusinessHours_Success(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	existing := &entity.Shop{ID: uuid.New(), BusinessHours: entity.DefaultBusinessHours()}

	hours := entity.DefaultBusinessHours()
	hours["sunday"] = entity.DayHours{Open: "10:00", Close: "14:00", IsOpen: true}

	expectShopUpdate(t, fx, ctx, existing)

	updated, err := fx.service.UpdateBusinessHours(ctx, existing.ID, hours)

	require.NoError(t, err)
	assert.True(t, updated.BusinessHours["sunday"].IsOpen)
}

func TestShopService_UpdateBusinessHours_UnknownWeekday(t *testing.T) {
	fx := createTestShopService(t)

	hours := entity.BusinessHours{
		"funday": {Open: "09:00", Close: "18:00", IsOpen: true},
	}

	updated, err := fx.service.UpdateBusinessHours(context.Background(), uuid.New(), hours)

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestShopService_UpdateLocation_Success(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	existing := &entity.Shop{ID: uuid.New(), Address: "Old Street 1"}

	expectShopUpdate(t, fx, ctx, existing)

	updated, err := fx.service.UpdateLocation(ctx, existing.ID, &usecase.UpdateLocationInput{
		Address:  "Unter den Linden 5",
		Location: &entity.LatLng{Lat: 52.517, Lng: 13.389},
	})

	require.NoError(t, err)
	assert.Equal(t, "Unter den Linden 5", updated.Address)
	assert.Equal(t, 52.517, updated.Location.Lat)
}

func TestShopService_UpdateLocation_ClearedPin(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	existing := &entity.Shop{
		ID:       uuid.New(),
		Address:  "Old Street 1",
		Location: &entity.LatLng{Lat: 52.52, Lng: 13.405},
	}

	expectShopUpdate(t, fx, ctx, existing)

	updated, err := fx.service.UpdateLocation(ctx, existing.ID, &usecase.UpdateLocationInput{
		Address: "Somewhere without a pin",
	})

	require.NoError(t, err)
	assert.Nil(t, updated.Location)
}

func TestShopService_UpdateLocation_OutOfRange(t *testing.T) {
	fx := createTestShopService(t)

	updated, err := fx.service.UpdateLocation(context.Background(), uuid.New(), &usecase.UpdateLocationInput{
		Address:  "Nowhere",
		Location: &entity.LatLng{Lat: 95, Lng: 0},
	})

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestShopService_UpdateSocialLinks_Success(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	existing := &entity.Shop{ID: uuid.New()}

	expectShopUpdate(t, fx, ctx, existing)

	updated, err := fx.service.UpdateSocialLinks(ctx, existing.ID, entity.SocialLinks{
		Facebook:  "https://facebook.com/bakery",
		Instagram: "https://instagram.com/bakery",
	})

	require.NoError(t, err)
	assert.Equal(t, "https://facebook.com/bakery", updated.SocialLinks.Facebook)
}

func TestShopService_UploadLogo_Success(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	existing := &entity.Shop{ID: uuid.New()}
	upload := &usecase.Upload{
		Filename:    "logo.png",
		ContentType: "image/png",
		Size:        1024,
		Content:     strings.NewReader("png-bytes"),
	}

	fx.fileStore.EXPECT().
		Save(ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "shops/"+existing.ID.String()+"/logo/") &&
				strings.HasSuffix(key, ".png")
		}), "image/png", upload.Content).
		Return("http://cdn.test/logo.png", nil)

	expectShopUpdate(t, fx, ctx, existing)

	updated, err := fx.service.UploadLogo(ctx, existing.ID, upload)

	require.NoError(t, err)
	assert.Equal(t, "http://cdn.test/logo.png", updated.LogoURL)
}

func TestShopService_UploadCoverImage_TooLarge(t *testing.T) {
	fx := createTestShopService(t)

	upload := &usecase.Upload{
		Filename:    "cover.jpg",
		ContentType: "image/jpeg",
		Size:        10 << 20,
		Content:     strings.NewReader("jpeg-bytes"),
	}

	updated, err := fx.service.UploadCoverImage(context.Background(), uuid.New(), upload)

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrImageTooLarge)
	fx.fileStore.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestShopService_UploadLogo_UnsupportedType(t *testing.T) {
	fx := createTestShopService(t)

	upload := &usecase.Upload{
		Filename:    "logo.gif",
		ContentType: "image/tiff",
		Size:        1024,
		Content:     strings.NewReader("tiff-bytes"),
	}

	updated, err := fx.service.UploadLogo(context.Background(), uuid.New(), upload)

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrUnsupportedImageType)
}
