// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Offer is a promotional offer published by a shop. The backend owns the
// canonical state; dashboards mirror server responses after each round trip.
type Offer struct {
	ID          uuid.UUID // The Global Unique Identifier (GUID) for the offer.
	ShopID      uuid.UUID // The ID of the shop this offer belongs to.
	Title       string    // Short headline shown in listings.
	Description string    // Longer marketing copy.
	Category    string    // Offer category (from the configured category list).
	Tags        []string  // Free-form tag set, no duplicates.
	ImageURL    string    // URL of the uploaded offer image.
	Discount    float64   // Discount percentage, 0-100.
	MinPurchase *float64  // Optional minimum purchase amount to qualify.
	StartDate   time.Time // First day the offer is valid.
	EndDate     time.Time // Last day the offer is valid.
	CreatedAt   time.Time // Timestamp of when this offer was created.
	UpdatedAt   time.Time // Timestamp of the last modification.
}

// HasTag reports whether the offer already carries the given tag.
func (o *Offer) HasTag(tag string) bool {
	for _, t := range o.Tags {
		if t == tag {
			return true
		}
	}

	return false
}
