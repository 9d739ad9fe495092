package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"galassia/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRCodeService_GenerateCouponQR_DefaultConfig(t *testing.T) {
	svc := NewQRCodeService(&config.Config{})

	data, err := svc.GenerateCouponQR("GIFT-ABC123")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
	assert.Equal(t, 256, img.Bounds().Dy())
}

func TestQRCodeService_GenerateCouponQR_ConfiguredSize(t *testing.T) {
	cfg := &config.Config{
		QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "H"},
	}
	svc := NewQRCodeService(cfg)

	data, err := svc.GenerateCouponQR("GIFT-ABC123")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())
}

func TestQRCodeService_GenerateCouponQR_EmptyCode(t *testing.T) {
	svc := NewQRCodeService(&config.Config{})

	_, err := svc.GenerateCouponQR("")
	require.Error(t, err)
}
