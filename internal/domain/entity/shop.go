// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Shop is the merchant's storefront profile. Every field group below maps to
// an independently savable section of the owner dashboard.
type Shop struct {
	ID          uuid.UUID // The Global Unique Identifier (GUID) for the shop.
	OwnerID     uuid.UUID // The ID of the user account that owns this shop.
	Name        string    // The shop's display name.
	Description string    // A description of the shop and its products.
	Category    string    // The shop's primary category.

	Email   string // Public contact email.
	Phone   string // Public contact phone number.
	Website string // Public website URL.

	Address  string  // The full, human-readable street address.
	Location *LatLng // The geographic coordinates. Nil when the owner has not set a location yet.

	SocialLinks   SocialLinks   // Social media profile links.
	BusinessHours BusinessHours // Opening hours, keyed by weekday.

	LogoURL       string // URL of the uploaded shop logo.
	CoverImageURL string // URL of the uploaded cover image.

	CreatedAt time.Time // Timestamp of when this shop was created.
	UpdatedAt time.Time // Timestamp of the last modification.
}

// SocialLinks holds the shop's social media profile URLs.
type SocialLinks struct {
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
	Twitter   string `json:"twitter"`
}

// DayHours describes the opening hours for a single weekday.
type DayHours struct {
	Open   string `json:"open"`   // Opening time, "HH:MM".
	Close  string `json:"close"`  // Closing time, "HH:MM".
	IsOpen bool   `json:"isOpen"` // Whether the shop opens at all on this day.
}

// BusinessHours maps a lowercase weekday name ("monday".."sunday") to its hours.
type BusinessHours map[string]DayHours

// Weekdays lists the business-hours keys in calendar order.
//
//nolint:gochecknoglobals
var Weekdays = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// DefaultBusinessHours returns the dashboard's default opening schedule:
// weekdays 09:00-17:00, Saturday 10:00-15:00, closed Sunday.
func DefaultBusinessHours() BusinessHours {
	hours := make(BusinessHours, len(Weekdays))
	for _, day := range Weekdays {
		switch day {
		case "saturday":
			hours[day] = DayHours{Open: "10:00", Close: "15:00", IsOpen: true}
		case "sunday":
			hours[day] = DayHours{Open: "10:00", Close: "15:00", IsOpen: false}
		default:
			hours[day] = DayHours{Open: "09:00", Close: "17:00", IsOpen: true}
		}
	}

	return hours
}
