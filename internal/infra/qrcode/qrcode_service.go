// Package qrcode renders offer QR codes as PNG images.
package qrcode

import (
	"fmt"
	"strings"

	"closecart/config"
	"closecart/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize = 256
	offerPath   = "/offers/"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance.
// The encoded payload is a plain URL so any generic scanner app can open
// the offer page directly.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size := defaultSize
	level := qrcode.Medium
	baseURL := ""

	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		baseURL = strings.TrimSuffix(cfg.QRCode.BaseURL, "/")

		switch cfg.QRCode.ErrorCorrectionLevel {
		case "L":
			level = qrcode.Low
		case "M":
			level = qrcode.Medium
		case "Q":
			level = qrcode.High
		case "H":
			level = qrcode.Highest
		}
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              baseURL,
	}
}

// GenerateOfferQR renders a PNG QR code linking to the given offer.
func (s *qrcodeService) GenerateOfferQR(offerID uuid.UUID) ([]byte, error) {
	content := s.baseURL + offerPath + offerID.String()

	qrCode, err := qrcode.New(content, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseOfferQR extracts the offer ID from a scanned QR payload.
func (s *qrcodeService) ParseOfferQR(content string) (uuid.UUID, error) {
	idx := strings.LastIndex(content, offerPath)
	if idx < 0 {
		return uuid.Nil, fmt.Errorf("not an offer QR payload: %s", content)
	}

	offerID, err := uuid.Parse(content[idx+len(offerPath):])
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse offer ID: %w", err)
	}

	return offerID, nil
}
