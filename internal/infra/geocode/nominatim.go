package geocode

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"closecart/config"
	"closecart/internal/domain/entity"
)

// ForwardQuery is the cache and throttle key for address searches.
type ForwardQuery struct {
	Query string
	Limit int
}

// ReverseQuery is the cache and throttle key for coordinate lookups.
type ReverseQuery struct {
	Lat float64
	Lng float64
}

// NominatimClient talks to a Nominatim instance over its JSON API.
type NominatimClient struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	requests   *prometheus.CounterVec // May be nil.
}

// NewNominatimClient builds a client from the geocoding config.
func NewNominatimClient(cfg *config.GeocodingConfig, requests *prometheus.CounterVec) *NominatimClient {
	return &NominatimClient{
		baseURL:    cfg.BaseURL,
		userAgent:  cfg.UserAgent,
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		requests:   requests,
	}
}

type nominatimPlace struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

// Forward resolves a free-text address query to candidate places.
func (c *NominatimClient) Forward(ctx context.Context, query ForwardQuery) ([]entity.GeocodeResult, error) {
	params := url.Values{}
	params.Set("q", query.Query)
	params.Set("format", "json")
	params.Set("addressdetails", "0")
	if query.Limit > 0 {
		params.Set("limit", strconv.Itoa(query.Limit))
	}

	var places []nominatimPlace
	if err := c.get(ctx, "forward", "/search", params, &places); err != nil {
		return nil, err
	}

	results := make([]entity.GeocodeResult, 0, len(places))
	for _, place := range places {
		lat, err := strconv.ParseFloat(place.Lat, 64)
		if err != nil {
			continue
		}
		lng, err := strconv.ParseFloat(place.Lon, 64)
		if err != nil {
			continue
		}
		results = append(results, entity.GeocodeResult{
			Address: place.DisplayName,
			Lat:     lat,
			Lng:     lng,
		})
	}

	return results, nil
}

// Reverse resolves coordinates to a display address.
func (c *NominatimClient) Reverse(ctx context.Context, query ReverseQuery) (string, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(query.Lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(query.Lng, 'f', -1, 64))
	params.Set("format", "json")

	var place nominatimPlace
	if err := c.get(ctx, "reverse", "/reverse", params, &place); err != nil {
		return "", err
	}

	if place.DisplayName == "" {
		return entity.FallbackAddress(query.Lat, query.Lng), nil
	}

	return place.DisplayName, nil
}

func (c *NominatimClient) get(ctx context.Context, operation, path string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return errors.Wrap(err, "build nominatim request")
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.countRequest(operation, "error")

		return errors.Wrap(err, "call nominatim")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.countRequest(operation, strconv.Itoa(resp.StatusCode))

		return errors.Errorf("nominatim returned status %d", resp.StatusCode)
	}
	c.countRequest(operation, "ok")

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "decode nominatim response")
	}

	return nil
}

func (c *NominatimClient) countRequest(operation, status string) {
	if c.requests == nil {
		return
	}
	c.requests.WithLabelValues(operation, status).Inc()
}
