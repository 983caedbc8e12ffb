package apiclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"closecart/internal/domain/entity"
	"closecart/internal/usecase"
	"closecart/pkg/apiclient"
	"closecart/pkg/staged"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testShop() *entity.Shop {
	return &entity.Shop{
		ID:            uuid.New(),
		Name:          "Corner Bakery",
		Description:   "Fresh bread daily",
		Category:      "Food & Drink",
		Email:         "hello@cornerbakery.test",
		Phone:         "+49 30 1234567",
		Website:       "https://cornerbakery.test",
		Address:       "Bäckerstraße 1, Berlin",
		Location:      &entity.LatLng{Lat: 52.52, Lng: 13.405},
		SocialLinks:   entity.SocialLinks{Instagram: "https://instagram.com/cornerbakery"},
		BusinessHours: entity.DefaultBusinessHours(),
	}
}

func shopServer(t *testing.T, shop *entity.Shop, putRequests *atomic.Int64) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/shop", func(w http.ResponseWriter, r *http.Request) {
		writeData(t, w, http.StatusOK, shop)
	})
	mux.HandleFunc("PUT /api/v1/shop/basic-info", func(w http.ResponseWriter, r *http.Request) {
		putRequests.Add(1)
		var input usecase.UpdateBasicInfoInput
		require.NoError(t, decodeJSON(r, &input))
		shop.Name = input.Name
		shop.Description = input.Description
		shop.Category = input.Category
		writeData(t, w, http.StatusOK, shop)
	})
	mux.HandleFunc("PUT /api/v1/shop/business-hours", func(w http.ResponseWriter, r *http.Request) {
		putRequests.Add(1)
		var hours entity.BusinessHours
		require.NoError(t, decodeJSON(r, &hours))
		shop.BusinessHours = hours
		writeData(t, w, http.StatusOK, shop)
	})
	mux.HandleFunc("PUT /api/v1/shop/location", func(w http.ResponseWriter, r *http.Request) {
		putRequests.Add(1)
		var input usecase.UpdateLocationInput
		require.NoError(t, decodeJSON(r, &input))
		shop.Address = input.Address
		shop.Location = input.Location
		writeData(t, w, http.StatusOK, shop)
	})

	return httptest.NewServer(mux)
}

func TestShopEditor_CleanAfterLoad(t *testing.T) {
	t.Parallel()

	var puts atomic.Int64
	server := shopServer(t, testShop(), &puts)
	defer server.Close()

	client := apiclient.New(server.URL)
	editor, err := client.LoadShop(context.Background())

	require.NoError(t, err)
	assert.False(t, editor.Dirty())
	assert.Equal(t, "Corner Bakery", editor.BasicInfo.Value().Name)
	assert.Len(t, editor.BusinessHours.Value(), 7)
}

func TestShopEditor_EditingOneSectionLeavesOthersClean(t *testing.T) {
	t.Parallel()

	var puts atomic.Int64
	server := shopServer(t, testShop(), &puts)
	defer server.Close()

	client := apiclient.New(server.URL)
	editor, err := client.LoadShop(context.Background())
	require.NoError(t, err)

	editor.BasicInfo.Update(func(i *usecase.UpdateBasicInfoInput) {
		i.Name = "Corner Bakery & Café"
	})

	assert.True(t, editor.BasicInfo.IsDirty())
	assert.False(t, editor.Contact.IsDirty())
	assert.False(t, editor.BusinessHours.IsDirty())
	assert.False(t, editor.Location.IsDirty())
	assert.False(t, editor.SocialLinks.IsDirty())
}

func TestShopEditor_SaveBasicInfoPromotesServerEcho(t *testing.T) {
	t.Parallel()

	var puts atomic.Int64
	server := shopServer(t, testShop(), &puts)
	defer server.Close()

	client := apiclient.New(server.URL)
	editor, err := client.LoadShop(context.Background())
	require.NoError(t, err)

	editor.BasicInfo.Update(func(i *usecase.UpdateBasicInfoInput) {
		i.Name = "Corner Bakery & Café"
	})

	require.NoError(t, editor.SaveBasicInfo(context.Background()))

	assert.False(t, editor.BasicInfo.IsDirty())
	assert.Equal(t, "Corner Bakery & Café", editor.BasicInfo.Initial().Name)
	assert.EqualValues(t, 1, puts.Load())
}

func TestShopEditor_NetZeroHoursEditStaysClean(t *testing.T) {
	t.Parallel()

	var puts atomic.Int64
	server := shopServer(t, testShop(), &puts)
	defer server.Close()

	client := apiclient.New(server.URL)
	editor, err := client.LoadShop(context.Background())
	require.NoError(t, err)

	editor.BusinessHours.Update(func(h *entity.BusinessHours) {
		day := (*h)["sunday"]
		day.IsOpen = true
		(*h)["sunday"] = day
	})
	require.True(t, editor.BusinessHours.IsDirty())

	editor.BusinessHours.Update(func(h *entity.BusinessHours) {
		day := (*h)["sunday"]
		day.IsOpen = false
		(*h)["sunday"] = day
	})

	assert.False(t, editor.BusinessHours.IsDirty())
	err = editor.SaveBusinessHours(context.Background())
	require.ErrorIs(t, err, staged.ErrNotDirty)
	assert.Zero(t, puts.Load())
}

func TestShopEditor_ClearingPinSavesNilLocation(t *testing.T) {
	t.Parallel()

	var puts atomic.Int64
	shop := testShop()
	server := shopServer(t, shop, &puts)
	defer server.Close()

	client := apiclient.New(server.URL)
	editor, err := client.LoadShop(context.Background())
	require.NoError(t, err)

	editor.Location.Update(func(l *apiclient.ShopLocation) {
		l.Location = nil
	})
	require.True(t, editor.Location.IsDirty())

	require.NoError(t, editor.SaveLocation(context.Background()))

	assert.False(t, editor.Location.IsDirty())
	assert.Nil(t, editor.Location.Initial().Location)
	assert.Nil(t, shop.Location)
}

func TestShopEditor_UploadLogoSendsNamedField(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/shop/logo", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(8<<20))
		file, header, err := r.FormFile("logo")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "logo.png", header.Filename)

		shop := testShop()
		shop.LogoURL = "http://cdn.test/shops/logo.png"
		writeData(t, w, http.StatusOK, shop)
	})
	mux.HandleFunc("GET /api/v1/shop", func(w http.ResponseWriter, r *http.Request) {
		writeData(t, w, http.StatusOK, testShop())
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := apiclient.New(server.URL)
	editor, err := client.LoadShop(context.Background())
	require.NoError(t, err)

	content := strings.NewReader("png bytes")
	shop, err := editor.UploadLogo(context.Background(), &apiclient.ImageAttachment{
		FileName:    "logo.png",
		ContentType: "image/png",
		Size:        int64(content.Len()),
		Content:     content,
	})

	require.NoError(t, err)
	assert.Equal(t, "http://cdn.test/shops/logo.png", shop.LogoURL)
}

func TestShopEditor_OversizedUploadNeverReachesNetwork(t *testing.T) {
	t.Parallel()

	var requests atomic.Int64
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/shop", func(w http.ResponseWriter, r *http.Request) {
		writeData(t, w, http.StatusOK, testShop())
	})
	mux.HandleFunc("POST /api/v1/shop/cover-image", func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		writeData(t, w, http.StatusOK, nil)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := apiclient.New(server.URL)
	editor, err := client.LoadShop(context.Background())
	require.NoError(t, err)

	_, err = editor.UploadCoverImage(context.Background(), &apiclient.ImageAttachment{
		FileName:    "cover.jpg",
		ContentType: "image/jpeg",
		Size:        6 << 20,
		Content:     strings.NewReader("too big"),
	})

	require.ErrorIs(t, err, apiclient.ErrImageTooLarge)
	assert.Zero(t, requests.Load())
}
