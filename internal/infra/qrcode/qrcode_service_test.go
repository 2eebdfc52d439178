package qrcode

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 0x50, 0x4e, 0x47}

func TestQRCodeService_GenerateURLQR_ProducesPNG(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	png, err := svc.GenerateURLQR("https://cumple.example.com/event/123")

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic))
}

func TestQRCodeService_GenerateURLQR_RejectsEmptyURL(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	_, err := svc.GenerateURLQR("")

	assert.Error(t, err)
}

func TestQRCodeService_UnknownLevelFallsBack(t *testing.T) {
	svc := NewQRCodeService(128, "X")

	png, err := svc.GenerateURLQR("https://cumple.example.com")

	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
