package geocode

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"

	"closecart/config"
	"closecart/internal/domain/entity"
	"closecart/internal/domain/service"
	"closecart/internal/infra/metrics"
)

// Params defines the dependencies for the composed geocoder.
type Params struct {
	fx.In

	Config  *config.Config
	Metrics *metrics.Metrics `optional:"true"`
}

// geocoder is the service.Geocoder implementation: a Nominatim client with a
// TTL cache in front of a collapsing throttle. Cache hits never touch the
// throttle, so repeated lookups cost nothing upstream.
type geocoder struct {
	forward Func[ForwardQuery, []entity.GeocodeResult]
	reverse Func[ReverseQuery, string]
}

// New composes the geocoding pipeline from config.
func New(params Params) service.Geocoder {
	cfg := params.Config.Geocoding

	var upstream *prometheus.CounterVec
	var stats *CacheStats
	if params.Metrics != nil {
		upstream = params.Metrics.GeocodeUpstreamRequests
		stats = &CacheStats{
			Hits:   params.Metrics.GeocodeCacheHits,
			Misses: params.Metrics.GeocodeCacheMisses,
		}
	}

	client := NewNominatimClient(cfg, upstream)

	return &geocoder{
		forward: WithCache(WithThrottle(client.Forward, cfg.ThrottleInterval), cfg.CacheTTL, nil, stats),
		reverse: WithCache(WithThrottle(client.Reverse, cfg.ThrottleInterval), cfg.CacheTTL, nil, stats),
	}
}

func (g *geocoder) Forward(ctx context.Context, query string, limit int) ([]entity.GeocodeResult, error) {
	return g.forward(ctx, ForwardQuery{Query: query, Limit: limit})
}

func (g *geocoder) Reverse(ctx context.Context, lat, lng float64) (string, error) {
	return g.reverse(ctx, ReverseQuery{Lat: lat, Lng: lng})
}
