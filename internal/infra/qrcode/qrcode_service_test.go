package qrcode

import (
	"bytes"
	"testing"

	"closecart/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService() *qrcodeService {
	cfg := &config.Config{}
	cfg.QRCode = &config.QRCodeConfig{
		Size:                 128,
		ErrorCorrectionLevel: "M",
		BaseURL:              "https://closecart.example.com",
	}

	return NewQRCodeService(cfg).(*qrcodeService)
}

func TestQRCodeService_GenerateOfferQR(t *testing.T) {
	svc := testService()

	png, err := svc.GenerateOfferQR(uuid.New())
	require.NoError(t, err)
	assert.NotEmpty(t, png)

	// PNG magic bytes
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
}

func TestQRCodeService_ParseOfferQR(t *testing.T) {
	svc := testService()
	offerID := uuid.New()

	parsed, err := svc.ParseOfferQR("https://closecart.example.com/offers/" + offerID.String())
	require.NoError(t, err)
	assert.Equal(t, offerID, parsed)
}

func TestQRCodeService_ParseOfferQR_RoundTripPayload(t *testing.T) {
	svc := testService()
	offerID := uuid.New()

	content := svc.baseURL + offerPath + offerID.String()
	parsed, err := svc.ParseOfferQR(content)
	require.NoError(t, err)
	assert.Equal(t, offerID, parsed)
}

func TestQRCodeService_ParseOfferQR_InvalidPayloads(t *testing.T) {
	svc := testService()

	_, err := svc.ParseOfferQR("https://elsewhere.example.com/products/123")
	assert.Error(t, err)

	_, err = svc.ParseOfferQR("https://closecart.example.com/offers/not-a-uuid")
	assert.Error(t, err)
}
