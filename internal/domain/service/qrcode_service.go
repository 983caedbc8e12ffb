package service

import "github.com/google/uuid"

// QRCodeService generates and parses the QR codes printed on offer flyers.
// The encoded payload is a URL so generic scanners can open the offer page.
type QRCodeService interface {
	// GenerateOfferQR renders a PNG QR code that links to the given offer.
	GenerateOfferQR(offerID uuid.UUID) ([]byte, error)

	// ParseOfferQR extracts the offer ID from a scanned QR payload.
	ParseOfferQR(content string) (uuid.UUID, error)
}
