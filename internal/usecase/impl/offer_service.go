package impl

import (
	"context"
	"log/slog"
	"time"

	"closecart/config"
	deliverycontext "closecart/internal/delivery/context"
	"closecart/internal/domain/constants"
	"closecart/internal/domain/entity"
	domainerrors "closecart/internal/domain/errors"
	"closecart/internal/domain/repository"
	"closecart/internal/domain/service"
	"closecart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// offerService implements the OfferUsecase interface.
type offerService struct {
	offerRepo repository.OfferRepository
	fileStore service.FileStore
	qrService service.QRCodeService
	publisher service.EventPublisher
	uploads   *config.UploadsConfig
	catalog   *config.OffersConfig
	logger    *slog.Logger
}

// NewOfferService is the constructor for offerService.
func NewOfferService(
	offerRepo repository.OfferRepository,
	fileStore service.FileStore,
	qrService service.QRCodeService,
	publisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.OfferUsecase {
	return &offerService{
		offerRepo: offerRepo,
		fileStore: fileStore,
		qrService: qrService,
		publisher: publisher,
		uploads:   cfg.Uploads,
		catalog:   cfg.Offers,
		logger:    logger,
	}
}

// ListOffers returns all offers of the shop, newest first.
func (srv *offerService) ListOffers(ctx context.Context, shopID uuid.UUID) ([]*entity.Offer, error) {
	offers, err := srv.offerRepo.FindByShop(ctx, shopID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list offers")
	}

	return offers, nil
}

// GetOffer retrieves a single offer of the shop.
func (srv *offerService) GetOffer(ctx context.Context, shopID, offerID uuid.UUID) (*entity.Offer, error) {
	return srv.findOwnedOffer(ctx, shopID, offerID)
}

// CreateOffer creates an offer, optionally storing an uploaded image.
func (srv *offerService) CreateOffer(ctx context.Context, shopID uuid.UUID, input *usecase.OfferInput) (*entity.Offer, error) {
	srv.logger.Info("Creating offer", "shopID", shopID, "title", input.Title)

	if err := validateOfferInput(input); err != nil {
		return nil, err
	}

	offer := &entity.Offer{
		ShopID:      shopID,
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Tags:        dedupeTags(input.Tags),
		Discount:    input.Discount,
		MinPurchase: input.MinPurchase,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
	}

	if input.Image != nil {
		url, err := srv.storeImage(ctx, shopID, input.Image)
		if err != nil {
			return nil, err
		}
		offer.ImageURL = url
	}

	if err := srv.offerRepo.Create(ctx, offer); err != nil {
		return nil, errors.Wrap(err, "failed to create offer")
	}

	srv.publishEvent(ctx, constants.OfferEventCreated, offer)

	return offer, nil
}

// UpdateOffer replaces an offer's editable fields.
func (srv *offerService) UpdateOffer(ctx context.Context, shopID, offerID uuid.UUID, input *usecase.OfferInput) (*entity.Offer, error) {
	srv.logger.Info("Updating offer", "shopID", shopID, "offerID", offerID)

	if err := validateOfferInput(input); err != nil {
		return nil, err
	}

	offer, err := srv.findOwnedOffer(ctx, shopID, offerID)
	if err != nil {
		return nil, err
	}

	offer.Title = input.Title
	offer.Description = input.Description
	offer.Category = input.Category
	offer.Tags = dedupeTags(input.Tags)
	offer.Discount = input.Discount
	offer.MinPurchase = input.MinPurchase
	offer.StartDate = input.StartDate
	offer.EndDate = input.EndDate

	// A missing image keeps the existing one.
	if input.Image != nil {
		url, err := srv.storeImage(ctx, shopID, input.Image)
		if err != nil {
			return nil, err
		}
		offer.ImageURL = url
	}

	if err := srv.offerRepo.Update(ctx, offer); err != nil {
		return nil, errors.Wrap(err, "failed to update offer")
	}

	srv.publishEvent(ctx, constants.OfferEventUpdated, offer)

	return offer, nil
}

// DeleteOffer removes an offer permanently.
func (srv *offerService) DeleteOffer(ctx context.Context, shopID, offerID uuid.UUID) error {
	srv.logger.Info("Deleting offer", "shopID", shopID, "offerID", offerID)

	offer, err := srv.findOwnedOffer(ctx, shopID, offerID)
	if err != nil {
		return err
	}

	if err := srv.offerRepo.Delete(ctx, offer.ID); err != nil {
		return errors.Wrap(err, "failed to delete offer")
	}

	srv.publishEvent(ctx, constants.OfferEventDeleted, offer)

	return nil
}

// GetCatalog returns the configured categories and recommended tags.
func (srv *offerService) GetCatalog(_ context.Context) (*usecase.OfferCatalog, error) {
	catalog := &usecase.OfferCatalog{}
	if srv.catalog != nil {
		catalog.Categories = srv.catalog.Categories
		catalog.RecommendedTags = srv.catalog.RecommendedTags
	}

	return catalog, nil
}

// GenerateQR renders a QR code PNG linking to the offer.
func (srv *offerService) GenerateQR(ctx context.Context, shopID, offerID uuid.UUID) ([]byte, error) {
	offer, err := srv.findOwnedOffer(ctx, shopID, offerID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateOfferQR(offer.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate offer QR code")
	}

	return png, nil
}

// findOwnedOffer loads an offer and verifies it belongs to the shop. An
// offer of another shop behaves exactly like a missing one.
func (srv *offerService) findOwnedOffer(ctx context.Context, shopID, offerID uuid.UUID) (*entity.Offer, error) {
	offer, err := srv.offerRepo.FindByID(ctx, offerID)
	if err != nil {
		if errors.Is(err, repository.ErrOfferNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOfferNotFound, "offer not found")
		}

		return nil, errors.Wrap(err, "failed to find offer")
	}

	if offer.ShopID != shopID {
		return nil, errors.Wrap(domainerrors.ErrOfferNotFound, "offer belongs to another shop")
	}

	return offer, nil
}

// storeImage validates the upload and writes it to the file store.
func (srv *offerService) storeImage(ctx context.Context, shopID uuid.UUID, upload *usecase.Upload) (string, error) {
	if err := validateUpload(srv.uploads, upload); err != nil {
		return "", err
	}

	url, err := srv.fileStore.Save(ctx, uploadKey("offers/"+shopID.String(), upload), upload.ContentType, upload.Content)
	if err != nil {
		return "", errors.Wrap(err, "failed to store offer image")
	}

	return url, nil
}

// publishEvent sends an offer lifecycle event. Publish failures are logged
// and never fail the triggering operation.
func (srv *offerService) publishEvent(ctx context.Context, eventType string, offer *entity.Offer) {
	event := &service.OfferEvent{
		EventType:  eventType,
		OfferID:    offer.ID.String(),
		ShopID:     offer.ShopID.String(),
		Title:      offer.Title,
		OccurredAt: time.Now().UTC(),
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
	}

	if err := srv.publisher.PublishOfferEvent(ctx, event); err != nil {
		srv.logger.Error("failed to publish offer event",
			"eventType", eventType, "offerID", event.OfferID, "error", err)
	}
}

// validateOfferInput enforces the rules the dashboard form promises.
func validateOfferInput(input *usecase.OfferInput) error {
	if input.Title == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("title is required")
	}
	if input.Discount < 0 || input.Discount > 100 {
		return domainerrors.ErrValidationFailed.WrapMessage("discount must be between 0 and 100")
	}
	if input.MinPurchase != nil && *input.MinPurchase < 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("minimum purchase cannot be negative")
	}
	if input.EndDate.Before(input.StartDate) {
		return domainerrors.ErrValidationFailed.WrapMessage("end date is before start date")
	}

	return nil
}

// dedupeTags drops duplicates while preserving first-seen order.
func dedupeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}

	return out
}
