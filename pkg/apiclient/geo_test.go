package apiclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"closecart/internal/domain/entity"
	"closecart/pkg/apiclient"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationPicker_SearchReturnsSuggestions(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/geocode/search", r.URL.Path)
		require.Equal(t, "Alexanderplatz", r.URL.Query().Get("q"))
		writeData(t, w, http.StatusOK, []entity.GeocodeResult{
			{Address: "Alexanderplatz, Berlin, Germany", Lat: 52.5219, Lng: 13.4132},
		})
	}))
	defer server.Close()

	picker := apiclient.NewLocationPicker(apiclient.New(server.URL))
	results := picker.Search(context.Background(), "Alexanderplatz")

	require.Len(t, results, 1)
	assert.Equal(t, "Alexanderplatz, Berlin, Germany", results[0].Address)
	assert.InDelta(t, 52.5219, results[0].Lat, 1e-9)
}

func TestLocationPicker_BlankQueryReturnsNothing(t *testing.T) {
	t.Parallel()

	var requests atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		writeData(t, w, http.StatusOK, nil)
	}))
	defer server.Close()

	picker := apiclient.NewLocationPicker(apiclient.New(server.URL))

	assert.Nil(t, picker.Search(context.Background(), "   "))
	assert.Zero(t, requests.Load())
}

func TestLocationPicker_NewerSearchSupersedesSlowerOne(t *testing.T) {
	t.Parallel()

	parisStarted := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("q") {
		case "Paris":
			close(parisStarted)
			// Hang until the superseding search cancels this request.
			<-r.Context().Done()
		case "Berlin":
			writeData(t, w, http.StatusOK, []entity.GeocodeResult{
				{Address: "Berlin, Germany", Lat: 52.52, Lng: 13.405},
			})
		}
	}))
	defer server.Close()

	picker := apiclient.NewLocationPicker(apiclient.New(server.URL))

	var wg sync.WaitGroup
	var parisResults []entity.GeocodeResult
	wg.Add(1)
	go func() {
		defer wg.Done()
		parisResults = picker.Search(context.Background(), "Paris")
	}()

	<-parisStarted
	berlinResults := picker.Search(context.Background(), "Berlin")
	wg.Wait()

	require.Len(t, berlinResults, 1)
	assert.Equal(t, "Berlin, Germany", berlinResults[0].Address)
	// The slower Paris lookup was canceled and its results dropped.
	assert.Nil(t, parisResults)
}

func TestLocationPicker_SearchFailureShowsNothing(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeAPIError(t, w, http.StatusServiceUnavailable, "GEOCODING_FAILED", "Upstream unavailable")
	}))
	defer server.Close()

	picker := apiclient.NewLocationPicker(apiclient.New(server.URL))

	assert.Nil(t, picker.Search(context.Background(), "Paris"))
}

func TestLocationPicker_ResolveAddressSuccess(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/geocode/reverse", r.URL.Path)
		require.Equal(t, "48.856614", r.URL.Query().Get("lat"))
		writeData(t, w, http.StatusOK, map[string]string{"address": "Paris, Île-de-France, France"})
	}))
	defer server.Close()

	picker := apiclient.NewLocationPicker(apiclient.New(server.URL))
	address := picker.ResolveAddress(context.Background(), 48.856614, 2.352222)

	assert.Equal(t, "Paris, Île-de-France, France", address)
}

func TestLocationPicker_OfflineFallsBackWithoutNetwork(t *testing.T) {
	t.Parallel()

	var requests atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		writeData(t, w, http.StatusOK, nil)
	}))
	defer server.Close()

	picker := apiclient.NewLocationPicker(
		apiclient.New(server.URL),
		apiclient.WithOnlineCheck(func() bool { return false }),
	)

	address := picker.ResolveAddress(context.Background(), 12.345678901, -98.765432109)

	assert.Equal(t, "Location (12.345679, -98.765432)", address)
	assert.Nil(t, picker.Search(context.Background(), "Paris"))
	assert.Zero(t, requests.Load())
}

func TestLocationPicker_ReverseFailureFallsBackToCoordinates(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeAPIError(t, w, http.StatusServiceUnavailable, "GEOCODING_FAILED", "Upstream unavailable")
	}))
	defer server.Close()

	picker := apiclient.NewLocationPicker(apiclient.New(server.URL))
	address := picker.ResolveAddress(context.Background(), 48.856614, 2.352222)

	assert.Equal(t, "Location (48.856614, 2.352222)", address)
}
