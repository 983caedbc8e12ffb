// Package constants holds shared domain-level constant values.
package constants

// Pub/Sub provider identifiers used in configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Offer event types published on the event bus.
const (
	OfferEventCreated = "offer.created"
	OfferEventUpdated = "offer.updated"
	OfferEventDeleted = "offer.deleted"
)
