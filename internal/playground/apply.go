package playground

import (
	"fmt"
	"image"

	"github.com/ironsheep/vision-demos/internal/imaging"
)

// OriginalCaption is the caption of the unmodified upload.
const OriginalCaption = "Original Image"

// Result is the output of one playground operation.
type Result struct {
	// Operation that produced the image.
	Operation Operation `json:"operation"`

	// Image is the processed image with its caption.
	Image *imaging.Rendered `json:"image"`
}

// Apply runs op on img with p. img itself is never modified.
func Apply(img image.Image, op Operation, p Params) (*Result, error) {
	if err := p.Validate(op); err != nil {
		return nil, err
	}

	out, caption, err := run(img, op, p)
	if err != nil {
		return nil, fmt.Errorf("%s failed: %w", op, err)
	}

	rendered, err := imaging.Render(out, caption)
	if err != nil {
		return nil, err
	}
	return &Result{Operation: op, Image: rendered}, nil
}

func run(img image.Image, op Operation, p Params) (image.Image, string, error) {
	switch op {
	case OpOriginal:
		return img, OriginalCaption, nil

	case OpResize:
		out, err := imaging.Resize(img, p.Width, p.Height)
		return out, fmt.Sprintf("Resized Image (%dx%d)", p.Width, p.Height), err

	case OpShift:
		return imaging.Shift(img, p.DX, p.DY), fmt.Sprintf("Shifted Image (X: %d, Y: %d)", p.DX, p.DY), nil

	case OpDrawLine:
		c, err := p.RGB()
		if err != nil {
			return nil, "", err
		}
		out, err := imaging.DrawLine(img,
			imaging.Point{X: p.StartX, Y: p.StartY},
			imaging.Point{X: p.EndX, Y: p.EndY},
			c, p.Thickness)
		return out, "Image with Line", err

	case OpDrawCircle:
		c, err := p.RGB()
		if err != nil {
			return nil, "", err
		}
		out, err := imaging.DrawCircle(img, imaging.Point{X: p.CenterX, Y: p.CenterY}, p.Radius, c, p.Thickness)
		return out, "Image with Circle", err

	case OpGaussianBlur:
		out, err := imaging.GaussianBlur(img, p.KernelSize)
		return out, fmt.Sprintf("Blurred Image (Kernel: %dx%d)", p.KernelSize, p.KernelSize), err

	case OpThreshold:
		out, err := imaging.Threshold(img, p.Threshold, p.MaxValue)
		if err != nil {
			return nil, "", err
		}
		return imaging.ToRGB(out), fmt.Sprintf("Thresholded Image (Value: %d)", p.Threshold), nil

	case OpCanny:
		out, err := imaging.Canny(img, p.LowerThreshold, p.UpperThreshold)
		if err != nil {
			return nil, "", err
		}
		return imaging.ToRGB(out), "Canny Edge Detection", nil

	case OpPutText:
		c, err := p.RGB()
		if err != nil {
			return nil, "", err
		}
		out, err := imaging.PutText(img, p.Text, imaging.TextOptions{
			Origin:    imaging.Point{X: p.X, Y: p.Y},
			Scale:     p.FontScale,
			Color:     c,
			Thickness: p.Thickness,
		})
		return out, "Image with Text", err
	}
	return nil, "", fmt.Errorf("%w %q", ErrUnknownOperation, op)
}
