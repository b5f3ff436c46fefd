package imaging

import (
	"fmt"
	"image"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"
	"golang.org/x/image/vector"
)

// MaxThickness is the widest stroke the drawing functions accept.
const MaxThickness = 50

// Point represents a 2D point in pixel coordinates.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// DrawLine returns a copy of img with a straight line from start to end.
//
// The stroke is thickness pixels wide with round caps. Endpoints may lie
// outside the image; the line is clipped to the canvas.
func DrawLine(img image.Image, start, end Point, c RGBColor, thickness int) (*image.NRGBA, error) {
	if err := checkThickness(thickness); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	out := imaging.Clone(img)
	z := newRasterizer(out)
	strokeSegment(z, start, end, float64(thickness)/2)
	fill(z, out, c)
	return out, nil
}

func checkThickness(thickness int) error {
	if thickness < 1 || thickness > MaxThickness {
		return fmt.Errorf("invalid thickness %d: must be in [1, %d]", thickness, MaxThickness)
	}
	return nil
}

// DrawCircle returns a copy of img with a circle outline of the given radius.
//
// The outline is thickness pixels wide, centered on the radius.
func DrawCircle(img image.Image, center Point, radius int, c RGBColor, thickness int) (*image.NRGBA, error) {
	if radius < 1 {
		return nil, fmt.Errorf("invalid radius %d: must be >= 1", radius)
	}
	if err := checkThickness(thickness); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	out := imaging.Clone(img)
	z := newRasterizer(out)
	half := float64(thickness) / 2
	cx, cy := float64(center.X), float64(center.Y)
	outer := float64(radius) + half
	inner := float64(radius) - half

	circlePath(z, cx, cy, outer, false)
	if inner > 0 {
		// Opposite winding cuts the inner disk out of the outer one.
		circlePath(z, cx, cy, inner, true)
	}
	fill(z, out, c)
	return out, nil
}

// DrawRectangle draws a rectangle outline in place on dst.
//
// The rectangle spans r (Min inclusive, Max exclusive) and the stroke is
// thickness pixels wide, centered on the rectangle's edges.
func DrawRectangle(dst *image.NRGBA, r image.Rectangle, c RGBColor, thickness int) {
	if thickness < 1 || r.Empty() {
		return
	}

	z := newRasterizer(dst)
	half := float64(thickness) / 2
	x1, y1 := float64(r.Min.X), float64(r.Min.Y)
	x2, y2 := float64(r.Max.X-1), float64(r.Max.Y-1)

	rectPath(z, x1-half, y1-half, x2+half+1, y2+half+1, false)
	if x2-x1 > 2*half && y2-y1 > 2*half {
		rectPath(z, x1+half, y1+half, x2-half+1, y2-half+1, true)
	}
	fill(z, dst, c)
}

func newRasterizer(dst *image.NRGBA) *vector.Rasterizer {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	return z
}

func fill(z *vector.Rasterizer, dst *image.NRGBA, c RGBColor) {
	z.Draw(dst, dst.Bounds(), image.NewUniform(c.NRGBA()), image.Point{})
}

// strokeSegment adds a thick segment with round caps. Coordinates address
// pixel centers, hence the +0.5 offsets.
func strokeSegment(z *vector.Rasterizer, a, b Point, half float64) {
	ax, ay := float64(a.X)+0.5, float64(a.Y)+0.5
	bx, by := float64(b.X)+0.5, float64(b.Y)+0.5

	circlePath(z, ax, ay, half, false)
	if a == b {
		return
	}
	circlePath(z, bx, by, half, false)

	dx, dy := bx-ax, by-ay
	length := math.Hypot(dx, dy)
	nx, ny := -dy/length*half, dx/length*half

	z.MoveTo(float32(ax+nx), float32(ay+ny))
	z.LineTo(float32(bx+nx), float32(by+ny))
	z.LineTo(float32(bx-nx), float32(by-ny))
	z.LineTo(float32(ax-nx), float32(ay-ny))
	z.ClosePath()
}

// circlePath adds a closed polygon approximating a circle. reverse flips the
// winding direction.
func circlePath(z *vector.Rasterizer, cx, cy, r float64, reverse bool) {
	segments := int(math.Ceil(2 * math.Pi * r / 2))
	if segments < 16 {
		segments = 16
	}
	if segments > 4096 {
		segments = 4096
	}
	step := 2 * math.Pi / float64(segments)
	if reverse {
		step = -step
	}

	z.MoveTo(float32(cx+r), float32(cy))
	for i := 1; i < segments; i++ {
		a := step * float64(i)
		z.LineTo(float32(cx+r*math.Cos(a)), float32(cy+r*math.Sin(a)))
	}
	z.ClosePath()
}

func rectPath(z *vector.Rasterizer, x1, y1, x2, y2 float64, reverse bool) {
	z.MoveTo(float32(x1), float32(y1))
	if reverse {
		z.LineTo(float32(x1), float32(y2))
		z.LineTo(float32(x2), float32(y2))
		z.LineTo(float32(x2), float32(y1))
	} else {
		z.LineTo(float32(x2), float32(y1))
		z.LineTo(float32(x2), float32(y2))
		z.LineTo(float32(x1), float32(y2))
	}
	z.ClosePath()
}
