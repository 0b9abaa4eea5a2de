package imaging

import (
	"bytes"
	"errors"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const MaxUploadBytes = 5 << 20 // 5 MB

const thumbnailWidth = 200

var ErrNotAnImage = errors.New("file is not a supported image")
var ErrTooLarge = errors.New("file exceeds the upload size limit")

var allowedExtensions = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
}

// AllowedExtension checks the filename against the jpeg/jpg/png/gif
// allow-list. The decoded format is verified separately; the extension
// check alone is not trusted.
func AllowedExtension(filename string) bool {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return false
	}
	return allowedExtensions[strings.ToLower(filename[idx:])]
}

// Validate decodes the payload and confirms it really is one of the
// accepted image formats. Returns the detected format name.
func Validate(data []byte) (string, error) {
	if len(data) > MaxUploadBytes {
		return "", ErrTooLarge
	}

	_, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", ErrNotAnImage
	}

	switch format {
	case "jpeg", "png", "gif":
		return format, nil
	}
	return "", ErrNotAnImage
}

// Thumbnail re-encodes the image as a fixed-width webp for the profile
// page listing.
func Thumbnail(data []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, ErrNotAnImage
	}

	bounds := src.Bounds()
	if bounds.Dx() == 0 {
		return nil, ErrNotAnImage
	}

	height := bounds.Dy() * thumbnailWidth / bounds.Dx()
	if height < 1 {
		height = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, thumbnailWidth, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, dst, &webp.Options{Quality: 80}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
