package service

import (
	"context"
	"time"
)

// OfferEvent is published on the event bus whenever an offer changes.
// Consumer apps (feeds, notification workers) subscribe to these events.
type OfferEvent struct {
	EventType  string    `json:"event_type"` // offer.created, offer.updated or offer.deleted.
	OfferID    string    `json:"offer_id"`
	ShopID     string    `json:"shop_id"`
	Title      string    `json:"title"`
	OccurredAt time.Time `json:"occurred_at"`
	RequestID  string    `json:"request_id,omitempty"` // Propagated for tracing.
}

// EventPublisher publishes offer lifecycle events to the configured backend.
type EventPublisher interface {
	// PublishOfferEvent publishes a single event. Failures are logged by the
	// caller and never roll back the triggering operation.
	PublishOfferEvent(ctx context.Context, event *OfferEvent) error

	// Close releases any underlying connections.
	Close() error
}
