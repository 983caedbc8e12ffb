package apiclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"closecart/internal/domain/entity"
	"closecart/pkg/apiclient"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func offerNamed(title string, discount float64, createdAt time.Time) *entity.Offer {
	return &entity.Offer{
		ID:        uuid.New(),
		Title:     title,
		Discount:  discount,
		CreatedAt: createdAt,
	}
}

func TestFilterOffers_MatchesTitleAndDescription(t *testing.T) {
	t.Parallel()

	offers := []*entity.Offer{
		{Title: "Summer Sale", Description: "Beachwear discounts"},
		{Title: "Winter Clearance", Description: "Cozy knits on sale"},
		{Title: "Lunch Deal", Description: "Weekday specials"},
	}

	assert.Len(t, apiclient.FilterOffers(offers, "sale"), 2)
	assert.Len(t, apiclient.FilterOffers(offers, "SUMMER"), 1)
	assert.Len(t, apiclient.FilterOffers(offers, "beachwear"), 1)
	assert.Empty(t, apiclient.FilterOffers(offers, "nonexistent"))
	assert.Len(t, apiclient.FilterOffers(offers, "  "), 3)
}

func TestSortOffers_NewestPutsLatestCreationFirst(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	offers := []*entity.Offer{
		offerNamed("Old Favorite", 50, base.Add(-48*time.Hour)),
		offerNamed("Summer Sale", 20, base),
		offerNamed("Mid Season", 30, base.Add(-24*time.Hour)),
	}

	sorted := apiclient.SortOffers(offers, apiclient.SortNewest)

	require.Len(t, sorted, 3)
	assert.Equal(t, "Summer Sale", sorted[0].Title)
	assert.Equal(t, "Mid Season", sorted[1].Title)
	assert.Equal(t, "Old Favorite", sorted[2].Title)
	// Input order must be untouched.
	assert.Equal(t, "Old Favorite", offers[0].Title)
}

func TestSortOffers_DiscountModes(t *testing.T) {
	t.Parallel()

	base := time.Now()
	offers := []*entity.Offer{
		offerNamed("Ten", 10, base),
		offerNamed("Forty", 40, base),
		offerNamed("Twenty", 20, base),
	}

	highest := apiclient.SortOffers(offers, apiclient.SortHighestDiscount)
	require.Len(t, highest, 3)
	assert.Equal(t, "Forty", highest[0].Title)

	lowest := apiclient.SortOffers(offers, apiclient.SortLowestDiscount)
	assert.Equal(t, "Ten", lowest[0].Title)
}

func TestCreateOffer_EncodesMultipartForm(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/v1/offers", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(8<<20))

		assert.Equal(t, "Summer Sale", r.FormValue("title"))
		assert.Equal(t, "20", r.FormValue("discount"))
		assert.Equal(t, "2026-06-01", r.FormValue("startDate"))
		assert.Equal(t, "2026-08-31", r.FormValue("endDate"))

		var tags []string
		require.NoError(t, json.Unmarshal([]byte(r.FormValue("tags")), &tags))
		assert.Equal(t, []string{"sale", "summer"}, tags)

		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "banner.png", header.Filename)
		assert.Equal(t, "image/png", header.Header.Get("Content-Type"))

		writeData(t, w, http.StatusCreated, entity.Offer{ID: uuid.New(), Title: "Summer Sale"})
	}))
	defer server.Close()

	content := strings.NewReader("png bytes")
	client := apiclient.New(server.URL)
	offer, err := client.CreateOffer(context.Background(), &apiclient.OfferForm{
		Title:     "Summer Sale",
		Tags:      []string{"sale", "summer"},
		Discount:  20,
		StartDate: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		Image: &apiclient.ImageAttachment{
			FileName:    "banner.png",
			ContentType: "image/png",
			Size:        int64(content.Len()),
			Content:     content,
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "Summer Sale", offer.Title)
}

func TestCreateOffer_OversizedImageNeverReachesNetwork(t *testing.T) {
	t.Parallel()

	var requests atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		writeData(t, w, http.StatusCreated, nil)
	}))
	defer server.Close()

	client := apiclient.New(server.URL)
	_, err := client.CreateOffer(context.Background(), &apiclient.OfferForm{
		Title:     "Summer Sale",
		StartDate: time.Now(),
		EndDate:   time.Now().AddDate(0, 1, 0),
		Image: &apiclient.ImageAttachment{
			FileName:    "huge.jpg",
			ContentType: "image/jpeg",
			Size:        6 << 20,
			Content:     strings.NewReader("too big"),
		},
	})

	require.ErrorIs(t, err, apiclient.ErrImageTooLarge)
	assert.Zero(t, requests.Load())
}

func TestCreateOffer_RejectsUnsupportedImageType(t *testing.T) {
	t.Parallel()

	var requests atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		writeData(t, w, http.StatusCreated, nil)
	}))
	defer server.Close()

	client := apiclient.New(server.URL)
	_, err := client.CreateOffer(context.Background(), &apiclient.OfferForm{
		Title:     "Summer Sale",
		StartDate: time.Now(),
		EndDate:   time.Now().AddDate(0, 1, 0),
		Image: &apiclient.ImageAttachment{
			FileName:    "scan.tiff",
			ContentType: "image/tiff",
			Size:        1024,
			Content:     strings.NewReader("tiff"),
		},
	})

	require.ErrorIs(t, err, apiclient.ErrUnsupportedImageType)
	assert.Zero(t, requests.Load())
}

func TestCreateOffer_AcceptsEveryServerDefaultImageType(t *testing.T) {
	t.Parallel()

	// Mirror of the backend's default uploads.allowedMimeTypes.
	contentTypes := []string{"image/jpeg", "image/jpg", "image/png", "image/gif", "image/webp"}

	var requests atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		writeData(t, w, http.StatusCreated, entity.Offer{ID: uuid.New()})
	}))
	defer server.Close()

	client := apiclient.New(server.URL)
	for _, contentType := range contentTypes {
		_, err := client.CreateOffer(context.Background(), &apiclient.OfferForm{
			Title:     "Summer Sale",
			StartDate: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
			Image: &apiclient.ImageAttachment{
				FileName:    "banner",
				ContentType: contentType,
				Size:        1024,
				Content:     strings.NewReader("image bytes"),
			},
		})
		require.NoError(t, err, contentType)
	}

	assert.EqualValues(t, len(contentTypes), requests.Load())
}

func TestDeleteOffer_HitsOfferPath(t *testing.T) {
	t.Parallel()

	offerID := uuid.New()
	var path, method string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		method = r.Method
		writeData(t, w, http.StatusOK, nil)
	}))
	defer server.Close()

	client := apiclient.New(server.URL)
	err := client.DeleteOffer(context.Background(), offerID)

	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, method)
	assert.Equal(t, "/api/v1/offers/"+offerID.String(), path)
}

func TestGetCatalog_ReturnsCategoriesAndTags(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/offers/catalog", r.URL.Path)
		writeData(t, w, http.StatusOK, map[string]any{
			"categories":      []string{"Food & Drink", "Fashion"},
			"recommendedTags": []string{"sale", "new"},
		})
	}))
	defer server.Close()

	client := apiclient.New(server.URL)
	catalog, err := client.GetCatalog(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"Food & Drink", "Fashion"}, catalog.Categories)
	assert.Equal(t, []string{"sale", "new"}, catalog.RecommendedTags)
}
