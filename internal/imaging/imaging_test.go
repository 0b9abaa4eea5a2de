package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestAllowedExtension(t *testing.T) {
	tests := []struct {
		filename string
		want     bool
	}{
		{"avatar.png", true},
		{"avatar.jpeg", true},
		{"avatar.JPG", true},
		{"avatar.gif", true},
		{"avatar.webp", false},
		{"avatar.pdf", false},
		{"noextension", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, AllowedExtension(tt.filename))
		})
	}
}

func TestValidateAcceptsPNG(t *testing.T) {
	format, err := Validate(encodePNG(t, 10, 10))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
}

func TestValidateRejectsGarbage(t *testing.T) {
	_, err := Validate([]byte("definitely not pixels"))
	assert.ErrorIs(t, err, ErrNotAnImage)
}

func TestValidateRejectsOversized(t *testing.T) {
	_, err := Validate(make([]byte, MaxUploadBytes+1))
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestThumbnail(t *testing.T) {
	thumb, err := Thumbnail(encodePNG(t, 400, 300))
	require.NoError(t, err)
	assert.NotEmpty(t, thumb)
}

func TestThumbnailRejectsGarbage(t *testing.T) {
	_, err := Thumbnail([]byte{0x00, 0x01})
	assert.ErrorIs(t, err, ErrNotAnImage)
}
