package playground

import (
	"errors"
	"fmt"

	"github.com/ironsheep/vision-demos/internal/imaging"
)

// ErrInvalidParams is returned when a parameter is outside its range.
var ErrInvalidParams = errors.New("invalid parameters")

// Params holds the parameters of every operation. Each operation reads only
// the fields it needs.
type Params struct {
	// Resize
	Width  int `json:"width" form:"width"`
	Height int `json:"height" form:"height"`

	// Shift
	DX int `json:"dx" form:"dx"`
	DY int `json:"dy" form:"dy"`

	// Line
	StartX int `json:"start_x" form:"start_x"`
	StartY int `json:"start_y" form:"start_y"`
	EndX   int `json:"end_x" form:"end_x"`
	EndY   int `json:"end_y" form:"end_y"`

	// Circle
	CenterX int `json:"center_x" form:"center_x"`
	CenterY int `json:"center_y" form:"center_y"`
	Radius  int `json:"radius" form:"radius"`

	// Shape and text color. A non-empty Color ("#RRGGBB") overrides R, G, B.
	R     int    `json:"r" form:"r"`
	G     int    `json:"g" form:"g"`
	B     int    `json:"b" form:"b"`
	Color string `json:"color,omitempty" form:"color"`

	// Stroke width for lines, circles and text.
	Thickness int `json:"thickness" form:"thickness"`

	// Gaussian blur
	KernelSize int `json:"kernel_size" form:"kernel_size"`

	// Threshold
	Threshold int `json:"threshold" form:"threshold"`
	MaxValue  int `json:"max_value" form:"max_value"`

	// Canny
	LowerThreshold int `json:"lower_threshold" form:"lower_threshold"`
	UpperThreshold int `json:"upper_threshold" form:"upper_threshold"`

	// Text
	Text      string  `json:"text" form:"text"`
	X         int     `json:"x" form:"x"`
	Y         int     `json:"y" form:"y"`
	FontScale float64 `json:"font_scale" form:"font_scale"`
}

// DefaultParams returns the starting parameters for op.
func DefaultParams(op Operation) Params {
	p := Params{
		Width:          200,
		Height:         400,
		DX:             50,
		DY:             50,
		StartX:         560,
		StartY:         560,
		EndX:           70,
		EndY:           70,
		CenterX:        450,
		CenterY:        450,
		Radius:         200,
		KernelSize:     21,
		Threshold:      117,
		MaxValue:       255,
		LowerThreshold: 100,
		UpperThreshold: 255,
		Text:           "This is dog",
		X:              0,
		Y:              100,
		FontScale:      5.0,
	}

	switch op {
	case OpPutText:
		p.setRGB(imaging.White)
		p.Thickness = 2
	case OpDrawLine:
		p.setRGB(imaging.Green)
		p.Thickness = 1
	default:
		p.setRGB(imaging.Green)
		p.Thickness = 2
	}
	return p
}

func (p *Params) setRGB(c imaging.RGBColor) {
	p.R, p.G, p.B = c.R, c.G, c.B
}

// RGB returns the drawing color. Color takes precedence over R, G, B when set.
func (p Params) RGB() (imaging.RGBColor, error) {
	if p.Color != "" {
		c, err := imaging.ParseHexColor(p.Color)
		if err != nil {
			return imaging.RGBColor{}, fmt.Errorf("%w: %v", ErrInvalidParams, err)
		}
		return c, nil
	}
	c := imaging.RGBColor{R: p.R, G: p.G, B: p.B}
	if err := c.Validate(); err != nil {
		return imaging.RGBColor{}, fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}
	return c, nil
}

// Validate checks the fields op reads.
func (p Params) Validate(op Operation) error {
	switch op {
	case OpOriginal, OpShift:
		return nil
	case OpResize:
		if err := imaging.CheckSize(p.Width, p.Height); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidParams, err)
		}
	case OpDrawLine:
		if err := p.validateStroke(); err != nil {
			return err
		}
	case OpDrawCircle:
		if p.Radius < 1 {
			return invalid("radius %d: must be >= 1", p.Radius)
		}
		if err := p.validateStroke(); err != nil {
			return err
		}
	case OpGaussianBlur:
		if p.KernelSize < 1 || p.KernelSize > imaging.MaxKernelSize || p.KernelSize%2 == 0 {
			return invalid("kernel size %d: must be odd and in [1, %d]", p.KernelSize, imaging.MaxKernelSize)
		}
	case OpThreshold:
		if err := inByteRange("threshold", p.Threshold); err != nil {
			return err
		}
		if err := inByteRange("max value", p.MaxValue); err != nil {
			return err
		}
	case OpCanny:
		if err := inByteRange("lower threshold", p.LowerThreshold); err != nil {
			return err
		}
		if err := inByteRange("upper threshold", p.UpperThreshold); err != nil {
			return err
		}
	case OpPutText:
		if p.FontScale < imaging.MinFontScale || p.FontScale > imaging.MaxFontScale {
			return invalid("font scale %.2f: must be in [%.1f, %.1f]", p.FontScale, imaging.MinFontScale, imaging.MaxFontScale)
		}
		if err := p.validateStroke(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w %q", ErrUnknownOperation, op)
	}
	return nil
}

func (p Params) validateStroke() error {
	if p.Thickness < 1 || p.Thickness > imaging.MaxThickness {
		return invalid("thickness %d: must be in [1, %d]", p.Thickness, imaging.MaxThickness)
	}
	_, err := p.RGB()
	return err
}

func inByteRange(name string, v int) error {
	if v < 0 || v > 255 {
		return invalid("%s %d: must be in [0, 255]", name, v)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidParams}, args...)...)
}
