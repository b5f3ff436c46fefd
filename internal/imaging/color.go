package imaging

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBColor represents an RGB color with 8-bit components.
//
// Components are held as int so out-of-range input can be reported rather
// than silently wrapped; Validate checks each is within 0-255.
type RGBColor struct {
	R int `json:"r" form:"r"` // Red component (0-255)
	G int `json:"g" form:"g"` // Green component (0-255)
	B int `json:"b" form:"b"` // Blue component (0-255)
}

var (
	// Green is the face box and default shape color.
	Green = RGBColor{R: 0, G: 255, B: 0}

	// White is the default text color.
	White = RGBColor{R: 255, G: 255, B: 255}
)

// Validate reports an error if any component is outside 0-255.
func (c RGBColor) Validate() error {
	for _, comp := range []struct {
		name string
		v    int
	}{{"red", c.R}, {"green", c.G}, {"blue", c.B}} {
		if comp.v < 0 || comp.v > 255 {
			return fmt.Errorf("invalid %s component %d: must be in [0, 255]", comp.name, comp.v)
		}
	}
	return nil
}

// NRGBA converts the color into an opaque color.NRGBA. Components are
// clamped to 0-255.
func (c RGBColor) NRGBA() color.NRGBA {
	return color.NRGBA{R: clampByte(c.R), G: clampByte(c.G), B: clampByte(c.B), A: 255}
}

// Hex renders the color as "#rrggbb".
func (c RGBColor) Hex() string {
	n := c.NRGBA()
	return colorful.Color{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
	}.Hex()
}

// ParseHexColor parses "#RRGGBB" (or the short "#RGB" form) into an RGBColor.
func ParseHexColor(hex string) (RGBColor, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return RGBColor{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	r, g, b := c.Clamped().RGB255()
	return RGBColor{R: int(r), G: int(g), B: int(b)}, nil
}

func clampByte(v int) uint8 {
	return uint8(clamp(v, 0, 255))
}
