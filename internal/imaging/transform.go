package imaging

import (
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/transform"
	"github.com/disintegration/imaging"
)

const (
	// MaxDimension is the largest width or height Resize produces.
	MaxDimension = 10000

	// MaxPixels caps the area of a resized image, about 160 MB of NRGBA.
	MaxPixels = 40_000_000
)

// CheckSize reports whether width x height is an output size Resize accepts.
func CheckSize(width, height int) error {
	switch {
	case width < 1 || height < 1:
		return fmt.Errorf("invalid resize dimensions %dx%d: both must be >= 1", width, height)
	case width > MaxDimension || height > MaxDimension:
		return fmt.Errorf("invalid resize dimensions %dx%d: both must be <= %d", width, height, MaxDimension)
	case width*height > MaxPixels:
		return fmt.Errorf("invalid resize dimensions %dx%d: at most %d pixels", width, height, MaxPixels)
	}
	return nil
}

// Resize scales img to exactly width x height pixels using bilinear
// interpolation. Aspect ratio is not preserved.
//
// The size must pass CheckSize.
func Resize(img image.Image, width, height int) (*image.NRGBA, error) {
	if err := CheckSize(width, height); err != nil {
		return nil, err
	}
	return imaging.Resize(img, width, height, imaging.Linear), nil
}

// Shift translates img by (dx, dy) pixels. Positive dx moves the content
// right and positive dy moves it down, matching image coordinates.
//
// The output keeps the original canvas size: content shifted past an edge is
// clipped and uncovered pixels are opaque black. For an opaque source,
// Shift(img, 0, 0) is pixel-for-pixel equal to img.
func Shift(img image.Image, dx, dy int) *image.NRGBA {
	bounds := img.Bounds()

	// bild treats positive dy as "up", so flip it into image coordinates.
	moved := transform.Translate(img, dx, -dy)

	canvas := imaging.New(bounds.Dx(), bounds.Dy(), color.Black)
	return imaging.Overlay(canvas, moved, image.Pt(0, 0), 1.0)
}
