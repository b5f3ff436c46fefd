package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
)

// Rendered is an output image ready for display, encoded as base64 PNG.
type Rendered struct {
	// Width of the output image in pixels.
	Width int `json:"width"`

	// Height of the output image in pixels.
	Height int `json:"height"`

	// ImageBase64 is the image encoded as base64 PNG.
	ImageBase64 string `json:"image_base64"`

	// MimeType is always "image/png".
	MimeType string `json:"mime_type"`

	// Caption describes the operation that produced the image.
	Caption string `json:"caption"`
}

// Render encodes img as PNG and attaches a caption.
func Render(img image.Image, caption string) (*Rendered, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	bounds := img.Bounds()
	return &Rendered{
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
		Caption:     caption,
	}, nil
}

// DataURI returns the image as a data URI suitable for an <img src>.
func (r *Rendered) DataURI() string {
	return "data:" + r.MimeType + ";base64," + r.ImageBase64
}
