package imaging

import (
	"fmt"
	"image"
	"image/draw"
	"math"
	"sync"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	// MinFontScale and MaxFontScale bound the font scale accepted by PutText.
	MinFontScale = 0.1
	MaxFontScale = 10.0

	// fontPointsPerScale is the font size at scale 1.0. It gives capital
	// letters roughly 22px of height, close to a classic Hershey simplex font.
	fontPointsPerScale = 30.0
)

var parseFont = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(goregular.TTF)
})

// TextOptions controls how PutText renders a string.
type TextOptions struct {
	// Origin is the bottom-left corner of the text, on the baseline.
	Origin Point

	// Scale multiplies the base font size; must be within [MinFontScale, MaxFontScale].
	Scale float64

	// Color of the glyphs.
	Color RGBColor

	// Thickness of the strokes in pixels; must be within [1, MaxThickness].
	Thickness int
}

// PutText returns a copy of img with text drawn at opts.Origin.
//
// Text running past the image edges is clipped. An empty string returns an
// unmodified copy.
//
// The glyphs are rasterized once into an alpha mask, which is then dilated
// by a disk of radius Thickness/2 to widen the strokes.
func PutText(img image.Image, text string, opts TextOptions) (*image.NRGBA, error) {
	if opts.Scale < MinFontScale || opts.Scale > MaxFontScale {
		return nil, fmt.Errorf("invalid font scale %.2f: must be in [%.1f, %.1f]", opts.Scale, MinFontScale, MaxFontScale)
	}
	if err := checkThickness(opts.Thickness); err != nil {
		return nil, err
	}
	if err := opts.Color.Validate(); err != nil {
		return nil, err
	}

	out := imaging.Clone(img)
	if text == "" {
		return out, nil
	}

	f, err := parseFont()
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    fontPointsPerScale * opts.Scale,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}
	defer face.Close()

	r := opts.Thickness / 2
	b, _ := font.BoundString(face, text)
	glyphs := image.Rect(b.Min.X.Floor(), b.Min.Y.Floor(), b.Max.X.Ceil(), b.Max.Y.Ceil()).
		Add(image.Pt(opts.Origin.X, opts.Origin.Y)).
		Inset(-1)

	ink := glyphs.Inset(-r).Intersect(out.Bounds())
	src := ink.Inset(-r).Intersect(glyphs)
	if ink.Empty() || src.Empty() {
		return out, nil
	}

	mask := image.NewAlpha(src)
	d := &font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.P(opts.Origin.X, opts.Origin.Y),
	}
	d.DrawString(text)

	draw.DrawMask(out, ink, image.NewUniform(opts.Color.NRGBA()), image.Point{}, dilate(mask, ink, r), ink.Min, draw.Over)
	return out, nil
}

// dilate returns the maximum of mask over a disk of radius r around every
// pixel of rect. Pixels outside mask count as 0.
//
// Each disk row is a horizontal window, so the cost is O(area * (2r+1)).
func dilate(mask *image.Alpha, rect image.Rectangle, r int) *image.Alpha {
	out := image.NewAlpha(rect)
	row := make([]uint8, rect.Dx())
	queue := make([]int, 0, mask.Rect.Dx())
	off := mask.Rect.Min.X - rect.Min.X

	for dy := -r; dy <= r; dy++ {
		w := int(math.Sqrt(float64(r*r - dy*dy)))
		for y := rect.Min.Y; y < rect.Max.Y; y++ {
			sy := y + dy
			if sy < mask.Rect.Min.Y || sy >= mask.Rect.Max.Y {
				continue
			}
			src := mask.Pix[mask.PixOffset(mask.Rect.Min.X, sy):][:mask.Rect.Dx()]
			queue = windowMax(row, src, off, w, queue[:0])
			dst := out.Pix[out.PixOffset(rect.Min.X, y):][:rect.Dx()]
			for i, v := range row {
				if v > dst[i] {
					dst[i] = v
				}
			}
		}
	}
	return out
}

// windowMax sets dst[i] to the maximum of src[i-off-w : i-off+w+1], using a
// monotonic queue of src indices. It returns the queue for reuse.
func windowMax(dst, src []uint8, off, w int, queue []int) []int {
	head, next := 0, 0
	for i := range dst {
		for hi := i - off + w; next <= hi && next < len(src); next++ {
			for len(queue) > head && src[queue[len(queue)-1]] <= src[next] {
				queue = queue[:len(queue)-1]
			}
			queue = append(queue, next)
		}
		for head < len(queue) && queue[head] < i-off-w {
			head++
		}
		if head < len(queue) {
			dst[i] = src[queue[head]]
		} else {
			dst[i] = 0
		}
	}
	return queue
}
