package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"sort"
	"strconv"
	"strings"
	"time"

	"closecart/internal/domain/entity"
	"closecart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Image constraints enforced before any upload leaves the client. The type
// whitelist matches the server's default `uploads.allowedMimeTypes`.
const maxImageBytes = 5 << 20

var allowedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/jpg":  {},
	"image/png":  {},
	"image/gif":  {},
	"image/webp": {},
}

var (
	ErrImageTooLarge        = errors.New("apiclient: image exceeds the 5 MB limit")
	ErrUnsupportedImageType = errors.New("apiclient: image type must be JPEG, PNG, GIF, or WebP")
)

const offerDateLayout = "2006-01-02"

// ImageAttachment is an image file selected for upload.
type ImageAttachment struct {
	FileName    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// OfferForm carries the editable offer fields for create and update. The
// image is optional; on update a missing image keeps the existing one.
type OfferForm struct {
	Title       string
	Description string
	Category    string
	Tags        []string
	Discount    float64
	MinPurchase *float64
	StartDate   time.Time
	EndDate     time.Time
	Image       *ImageAttachment
}

// ListOffers returns all offers of the authenticated shop, newest first.
func (c *Client) ListOffers(ctx context.Context) ([]*entity.Offer, error) {
	var out []*entity.Offer
	if err := c.do(ctx, http.MethodGet, "/offers", nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// GetOffer returns a single offer.
func (c *Client) GetOffer(ctx context.Context, offerID uuid.UUID) (*entity.Offer, error) {
	var out entity.Offer
	if err := c.do(ctx, http.MethodGet, "/offers/"+offerID.String(), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// CreateOffer submits the form as multipart and returns the created offer.
func (c *Client) CreateOffer(ctx context.Context, form *OfferForm) (*entity.Offer, error) {
	return c.submitOffer(ctx, http.MethodPost, "/offers", form)
}

// UpdateOffer replaces an offer's editable fields.
func (c *Client) UpdateOffer(ctx context.Context, offerID uuid.UUID, form *OfferForm) (*entity.Offer, error) {
	return c.submitOffer(ctx, http.MethodPut, "/offers/"+offerID.String(), form)
}

// DeleteOffer removes an offer permanently.
func (c *Client) DeleteOffer(ctx context.Context, offerID uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/offers/"+offerID.String(), nil, nil)
}

// GetCatalog returns the configured categories and recommended tags.
func (c *Client) GetCatalog(ctx context.Context) (*usecase.OfferCatalog, error) {
	var out usecase.OfferCatalog
	if err := c.do(ctx, http.MethodGet, "/offers/catalog", nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) submitOffer(ctx context.Context, method, path string, form *OfferForm) (*entity.Offer, error) {
	if form.Image != nil {
		if err := validateImage(form.Image); err != nil {
			return nil, err
		}
	}

	body, contentType, err := encodeOfferForm(form)
	if err != nil {
		return nil, err
	}

	var out entity.Offer
	if err := c.doMultipart(ctx, method, path, contentType, body, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func validateImage(image *ImageAttachment) error {
	if image.Size > maxImageBytes {
		return ErrImageTooLarge
	}
	if _, ok := allowedImageTypes[image.ContentType]; !ok {
		return ErrUnsupportedImageType
	}

	return nil
}

func encodeOfferForm(form *OfferForm) (io.Reader, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	fields := map[string]string{
		"title":       form.Title,
		"description": form.Description,
		"category":    form.Category,
		"discount":    strconv.FormatFloat(form.Discount, 'f', -1, 64),
		"startDate":   form.StartDate.Format(offerDateLayout),
		"endDate":     form.EndDate.Format(offerDateLayout),
	}
	if form.MinPurchase != nil {
		fields["minPurchase"] = strconv.FormatFloat(*form.MinPurchase, 'f', -1, 64)
	}
	if len(form.Tags) > 0 {
		tags, err := json.Marshal(form.Tags)
		if err != nil {
			return nil, "", errors.Wrap(err, "failed to encode tags")
		}
		fields["tags"] = string(tags)
	}

	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return nil, "", errors.Wrapf(err, "failed to write field %s", name)
		}
	}

	if form.Image != nil {
		if err := writeImagePart(writer, "image", form.Image); err != nil {
			return nil, "", err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", errors.Wrap(err, "failed to finalize form")
	}

	return &buf, writer.FormDataContentType(), nil
}

// encodeImageForm builds a multipart body carrying a single image field.
func encodeImageForm(field string, image *ImageAttachment) (io.Reader, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if err := writeImagePart(writer, field, image); err != nil {
		return nil, "", err
	}
	if err := writer.Close(); err != nil {
		return nil, "", errors.Wrap(err, "failed to finalize form")
	}

	return &buf, writer.FormDataContentType(), nil
}

// writeImagePart adds a file part with the real content type instead of the
// octet-stream default of CreateFormFile.
func writeImagePart(writer *multipart.Writer, field string, image *ImageAttachment) error {
	header := textproto.MIMEHeader{
		"Content-Disposition": {fmt.Sprintf(`form-data; name="%s"; filename="%s"`, field, image.FileName)},
		"Content-Type":        {image.ContentType},
	}
	part, err := writer.CreatePart(header)
	if err != nil {
		return errors.Wrap(err, "failed to create image part")
	}
	if _, err := io.Copy(part, image.Content); err != nil {
		return errors.Wrap(err, "failed to copy image content")
	}

	return nil
}

// SortMode selects the ordering applied by SortOffers.
type SortMode string

const (
	SortNewest          SortMode = "newest"
	SortHighestDiscount SortMode = "highest"
	SortLowestDiscount  SortMode = "lowest"
)

// FilterOffers returns the offers whose title or description contains the
// query, case-insensitively. A blank query matches everything. The input
// slice is not modified.
func FilterOffers(offers []*entity.Offer, query string) []*entity.Offer {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return append([]*entity.Offer(nil), offers...)
	}

	filtered := make([]*entity.Offer, 0, len(offers))
	for _, offer := range offers {
		if strings.Contains(strings.ToLower(offer.Title), query) ||
			strings.Contains(strings.ToLower(offer.Description), query) {
			filtered = append(filtered, offer)
		}
	}

	return filtered
}

// SortOffers returns a sorted copy of the offers. Newest orders by creation
// time descending; the discount modes order by discount percentage. The sort
// is stable so equal elements keep their relative order.
func SortOffers(offers []*entity.Offer, mode SortMode) []*entity.Offer {
	sorted := append([]*entity.Offer(nil), offers...)

	switch mode {
	case SortHighestDiscount:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Discount > sorted[j].Discount
		})
	case SortLowestDiscount:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Discount < sorted[j].Discount
		})
	default:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
		})
	}

	return sorted
}
