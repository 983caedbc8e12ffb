package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	deliverycontext "closecart/internal/delivery/context"
	"closecart/internal/domain/constants"
	"closecart/internal/domain/entity"
	domainerrors "closecart/internal/domain/errors"
	"closecart/internal/domain/repository"
	"closecart/internal/domain/service"
	mockRepo "closecart/internal/mocks/repository"
	mockService "closecart/internal/mocks/service"
	"closecart/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// offerServiceFixtures holds all test dependencies for offer service tests.
type offerServiceFixtures struct {
	service   usecase.OfferUsecase
	offerRepo *mockRepo.MockOfferRepository
	fileStore *mockService.MockFileStore
	qrService *mockService.MockQRCodeService
	publisher *mockService.MockEventPublisher
}

func createTestOfferService(t *testing.T) offerServiceFixtures {
	offerRepo := mockRepo.NewMockOfferRepository(t)
	fileStore := mockService.NewMockFileStore(t)
	qrService := mockService.NewMockQRCodeService(t)
	publisher := mockService.NewMockEventPublisher(t)
	svc := NewOfferService(offerRepo, fileStore, qrService, publisher, newTestConfig(), newDiscardLogger())

	return offerServiceFixtures{
		service:   svc,
		offerRepo: offerRepo,
		fileStore: fileStore,
		qrService: qrService,
		publisher: publisher,
	}
}

func validOfferInput() *usecase.OfferInput {
	return &usecase.OfferInput{
		Title:       "Summer Sale",
		Description: "20% off everything",
		Category:    "Fashion",
		Tags:        []string{"sale", "summer"},
		Discount:    20,
		StartDate:   time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
	}
}

func TestOfferService_ListOffers_Success(t *testing.T) {
	fx := createTestOfferService(t)

	ctx := context.Background()
	shopID := uuid.New()
	expected := []*entity.Offer{
		{ID: uuid.New(), ShopID: shopID, Title: "Summer Sale"},
		{ID: uuid.New(), ShopID: shopID, Title: "Winter Clearance"},
	}

	fx.offerRepo.EXPECT().FindByShop(ctx, shopID).Return(expected, nil)

	offers, err := fx.service.ListOffers(ctx, shopID)

	require.NoError(t, err)
	assert.Equal(t, expected, offers)
}

func TestOfferService_CreateOffer_Success(t *testing.T) {
	fx := createTestOfferService(t)

	requestID := uuid.New().String()
	ctx := deliverycontext.WithRequestID(context.Background(), requestID)
	shopID := uuid.New()
	input := validOfferInput()

	fx.offerRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Offer")).
		RunAndReturn(func(_ context.Context, offer *entity.Offer) error {
			offer.ID = uuid.New()

			return nil
		})

	var published *service.OfferEvent
	fx.publisher.EXPECT().PublishOfferEvent(ctx, mock.AnythingOfType("*service.OfferEvent")).
		RunAndReturn(func(_ context.Context, event *service.OfferEvent) error {
			published = event

			return nil
		})

	offer, err := fx.service.CreateOffer(ctx, shopID, input)

	require.NoError(t, err)
	assert.Equal(t, shopID, offer.ShopID)
	assert.Equal(t, "Summer Sale", offer.Title)

	require.NotNil(t, published)
	assert.Equal(t, constants.OfferEventCreated, published.EventType)
	assert.Equal(t, offer.ID.String(), published.OfferID)
	assert.Equal(t, requestID, published.RequestID)
}

func TestOfferService_CreateOffer_DedupesTags(t *testing.T) {
	fx := createTestOfferService(t)

	ctx := context.Background()
	input := validOfferInput()
	input.Tags = []string{"sale", "summer", "sale", "new", "summer"}

	fx.offerRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Offer")).Return(nil)
	fx.publisher.EXPECT().PublishOfferEvent(ctx, mock.AnythingOfType("*service.OfferEvent")).Return(nil)

	offer, err := fx.service.CreateOffer(ctx, uuid.New(), input)

	require.NoError(t, err)
	assert.Equal(t, []string{"sale", "summer", "new"}, offer.Tags)
}

func TestOfferService_CreateOffer_InvalidInput(t *testing.T) {
	fx := createTestOfferService(t)

	tests := []struct {
		name   string
		mutate func(*usecase.OfferInput)
	}{
		{"missing title", func(in *usecase.OfferInput) { in.Title = "" }},
		{"discount above 100", func(in *usecase.OfferInput) { in.Discount = 120 }},
		{"negative discount", func(in *usecase.OfferInput) { in.Discount = -5 }},
		{"negative minimum purchase", func(in *usecase.OfferInput) {
			min := -10.0
			in.MinPurchase = &min
		}},
		{"end before start", func(in *usecase.OfferInput) {
			in.EndDate = in.StartDate.Add(-24 * time.Hour)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validOfferInput()
			tt.mutate(input)

			offer, err := fx.service.CreateOffer(context.Background(), uuid.New(), input)

			require.Error(t, err)
			assert.Nil(t, offer)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}

	fx.offerRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOfferService_CreateOffer_PublishFailureDoesNotFailCreate(t *testing.T) {
	fx := createTestOfferService(t)

	ctx := context.Background()

	fx.offerRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Offer")).Return(nil)
	fx.publisher.EXPECT().PublishOfferEvent(ctx, mock.AnythingOfType("*service.OfferEvent")).
		Return(assert.AnError)

	offer, err := fx.service.CreateOffer(ctx, uuid.New(), validOfferInput())

	require.NoError(t, err)
	assert.NotNil(t, offer)
}

func TestOfferService_CreateOffer_WithImage(t *testing.T) {
	fx := createTestOfferService(t)

	ctx := context.Background()
	shopID := uuid.New()
	input := validOfferInput()
	input.Image = &usecase.Upload{
		Filename:    "banner.jpg",
		ContentType: "image/jpeg",
		Size:        2048,
		Content:     strings.NewReader("jpeg-bytes"),
	}

	fx.fileStore.EXPECT().
		Save(ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "offers/"+shopID.String()+"/") &&
				strings.HasSuffix(key, ".jpg")
		}), "image/jpeg", input.Image.Content).
		Return("http://cdn.test/banner.jpg", nil)
	fx.offerRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Offer")).Return(nil)
	fx.publisher.EXPECT().PublishOfferEvent(ctx, mock.AnythingOfType("*service.OfferEvent")).Return(nil)

	offer, err := fx.service.CreateOffer(ctx, shopID, input)

	require.NoError(t, err)
	assert.Equal(t, "http://cdn.test/banner.jpg", offer.ImageURL)
}

func TestOfferService_UpdateOffer_Success(t *testing.T) {
	fx := createTestOfferService(t)

	ctx := context.Background()
	shopID := uuid.New()
	existing := &entity.Offer{
		ID:       uuid.New(),
		ShopID:   shopID,
		Title:    "Old Title",
		ImageURL: "http://cdn.test/old.jpg",
	}

	fx.offerRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	fx.offerRepo.EXPECT().Update(ctx, existing).Return(nil)
	fx.publisher.EXPECT().PublishOfferEvent(ctx, mock.AnythingOfType("*service.OfferEvent")).
		RunAndReturn(func(_ context.Context, event *service.OfferEvent) error {
			assert.Equal(t, constants.OfferEventUpdated, event.EventType)

			return nil
		})

	updated, err := fx.service.UpdateOffer(ctx, shopID, existing.ID, validOfferInput())

	require.NoError(t, err)
	assert.Equal(t, "Summer Sale", updated.Title)

	// No new image in the input keeps the existing one.
	assert.Equal(t, "http://cdn.test/old.jpg", updated.ImageURL)
}

func TestOfferService_UpdateOffer_OtherShopBehavesAsNotFound(t *testing.T) {
	fx := createTestOfferService(t)

	ctx := context.Background()
	existing := &entity.Offer{ID: uuid.New(), ShopID: uuid.New(), Title: "Summer Sale"}

	fx.offerRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)

	updated, err := fx.service.UpdateOffer(ctx, uuid.New(), existing.ID, validOfferInput())

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrOfferNotFound)
	fx.offerRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestOfferService_GetOffer_NotFound(t *testing.T) {
	fx := createTestOfferService(t)

	ctx := context.Background()
	offerID := uuid.New()

	fx.offerRepo.EXPECT().FindByID(ctx, offerID).Return(nil, repository.ErrOfferNotFound)

	offer, err := fx.service.GetOffer(ctx, uuid.New(), offerID)

	require.Error(t, err)
	assert.Nil(t, offer)
	assert.ErrorIs(t, err, domainerrors.ErrOfferNotFound)
}

func TestOfferService_DeleteOffer_Success(t *testing.T) {
	fx := createTestOfferService(t)

	ctx := context.Background()
	shopID := uuid.New()
	existing := &entity.Offer{ID: uuid.New(), ShopID: shopID, Title: "Summer Sale"}

	fx.offerRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	fx.offerRepo.EXPECT().Delete(ctx, existing.ID).Return(nil)
	fx.publisher.EXPECT().PublishOfferEvent(ctx, mock.AnythingOfType("*service.OfferEvent")).
		RunAndReturn(func(_ context.Context, event *service.OfferEvent) error {
			assert.Equal(t, constants.OfferEventDeleted, event.EventType)
			assert.Equal(t, existing.ID.String(), event.OfferID)

			return nil
		})

	err := fx.service.DeleteOffer(ctx, shopID, existing.ID)

	require.NoError(t, err)
}

func TestOfferService_DeleteOffer_OtherShop(t *testing.T) {
	fx := createTestOfferService(t)

	ctx := context.Background()
	existing := &entity.Offer{ID: uuid.New(), ShopID: uuid.New()}

	fx.offerRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)

	err := fx.service.DeleteOffer(ctx, uuid.New(), existing.ID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOfferNotFound)
	fx.offerRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestOfferService_GetCatalog_ReturnsConfiguredLists(t *testing.T) {
	fx := createTestOfferService(t)

	catalog, err := fx.service.GetCatalog(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"Food & Drink", "Fashion"}, catalog.Categories)
	assert.Equal(t, []string{"sale", "new"}, catalog.RecommendedTags)
}

func TestOfferService_GenerateQR_Success(t *testing.T) {
	fx := createTestOfferService(t)

	ctx := context.Background()
	shopID := uuid.New()
	existing := &entity.Offer{ID: uuid.New(), ShopID: shopID}

	fx.offerRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	fx.qrService.EXPECT().GenerateOfferQR(existing.ID).Return([]byte("png-bytes"), nil)

	png, err := fx.service.GenerateQR(ctx, shopID, existing.ID)

	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), png)
}
