// Package metrics registers the Prometheus collectors exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds every collector the service reports to.
type Metrics struct {
	Registry *prometheus.Registry

	// Geocoding pipeline counters.
	GeocodeCacheHits        prometheus.Counter
	GeocodeCacheMisses      prometheus.Counter
	GeocodeUpstreamRequests *prometheus.CounterVec

	// Offer event publishing, labeled by event type and outcome.
	OfferEventsPublished *prometheus.CounterVec
}

// New builds a dedicated registry with the service collectors plus the
// standard Go and process collectors.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Metrics{
		Registry: registry,
		GeocodeCacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "closecart_geocode_cache_hits_total",
			Help: "Geocoding lookups served from the local cache.",
		}),
		GeocodeCacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Name: "closecart_geocode_cache_misses_total",
			Help: "Geocoding lookups that had to go upstream.",
		}),
		GeocodeUpstreamRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "closecart_geocode_upstream_requests_total",
			Help: "Requests sent to the upstream geocoding provider.",
		}, []string{"operation", "status"}),
		OfferEventsPublished: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "closecart_offer_events_published_total",
			Help: "Offer lifecycle events published to the event bus.",
		}, []string{"event_type", "status"}),
	}
}
