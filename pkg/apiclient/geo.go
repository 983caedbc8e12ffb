package apiclient

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"closecart/internal/domain/entity"
	"closecart/internal/infra/geocode"
)

// LocationPicker drives the address search box and the map pin of the shop
// location form. Forward searches supersede each other so a slow earlier
// query can never overwrite the results of a newer one. Reverse lookups are
// lenient: when offline or when the backend fails, the picker falls back to
// a coordinate-derived label instead of erroring.
type LocationPicker struct {
	search  *geocode.Searcher[string, []entity.GeocodeResult]
	reverse geocode.Func[reverseKey, string]
	online  func() bool
	logger  *slog.Logger
}

type reverseKey struct {
	lat float64
	lng float64
}

// PickerOption customizes the location picker.
type PickerOption func(*LocationPicker)

// WithOnlineCheck injects the connectivity probe. When it reports offline
// the picker skips the network entirely.
func WithOnlineCheck(online func() bool) PickerOption {
	return func(p *LocationPicker) {
		p.online = online
	}
}

// WithPickerLogger sets the logger for dropped and failed lookups.
func WithPickerLogger(logger *slog.Logger) PickerOption {
	return func(p *LocationPicker) {
		p.logger = logger
	}
}

// NewLocationPicker builds a picker on top of the client's geocoding proxy.
func NewLocationPicker(client *Client, opts ...PickerOption) *LocationPicker {
	picker := &LocationPicker{
		online: func() bool { return true },
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(picker)
	}

	picker.search = geocode.NewSearcher(client.searchAddresses)
	picker.reverse = geocode.WithSingleFlight(func(ctx context.Context, key reverseKey) (string, error) {
		return client.reverseGeocode(ctx, key.lat, key.lng)
	})

	return picker
}

// Search looks up address suggestions for the query. Results are empty when
// the query is blank, the picker is offline, the request was superseded by a
// newer one, or the backend failed. The search box shows nothing rather
// than an error in all of those cases.
func (p *LocationPicker) Search(ctx context.Context, query string) []entity.GeocodeResult {
	query = strings.TrimSpace(query)
	if query == "" || !p.online() {
		return nil
	}

	results, err := p.search.Search(ctx, query)
	if err != nil {
		p.logger.Debug("address search yielded no results",
			slog.String("query", query),
			slog.Any("error", err),
		)

		return nil
	}

	return results
}

// ResolveAddress labels a dropped pin. Offline or on failure it returns the
// coordinate fallback without touching the network again.
func (p *LocationPicker) ResolveAddress(ctx context.Context, lat, lng float64) string {
	if !p.online() {
		return entity.FallbackAddress(lat, lng)
	}

	address, err := p.reverse(ctx, reverseKey{lat: lat, lng: lng})
	if err != nil || address == "" {
		if err != nil {
			p.logger.Debug("reverse lookup fell back to coordinates",
				slog.Float64("lat", lat),
				slog.Float64("lng", lng),
				slog.Any("error", err),
			)
		}

		return entity.FallbackAddress(lat, lng)
	}

	return address
}

func (c *Client) searchAddresses(ctx context.Context, query string) ([]entity.GeocodeResult, error) {
	params := url.Values{}
	params.Set("q", query)

	var out []entity.GeocodeResult
	if err := c.do(ctx, http.MethodGet, "/geocode/search?"+params.Encode(), nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *Client) reverseGeocode(ctx context.Context, lat, lng float64) (string, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lng", strconv.FormatFloat(lng, 'f', -1, 64))

	var out struct {
		Address string `json:"address"`
	}
	if err := c.do(ctx, http.MethodGet, "/geocode/reverse?"+params.Encode(), nil, &out); err != nil {
		return "", err
	}

	return out.Address, nil
}
