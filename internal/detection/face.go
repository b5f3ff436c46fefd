package detection

import (
	"errors"
	"fmt"
	"image"

	"github.com/ironsheep/vision-demos/internal/imaging"
)

// ErrNoClassifier is returned when the face cascade cannot be loaded.
var ErrNoClassifier = errors.New("face classifier not available")

// FacesCaption is the caption of the annotated output image.
const FacesCaption = "Detected Faces"

// faceBoxThickness is the stroke width of the rectangles drawn around faces.
const faceBoxThickness = 2

// Bounds represents a rectangular bounding box in pixel coordinates.
type Bounds struct {
	X1 int `json:"x1"` // Left edge (inclusive)
	Y1 int `json:"y1"` // Top edge (inclusive)
	X2 int `json:"x2"` // Right edge (exclusive)
	Y2 int `json:"y2"` // Bottom edge (exclusive)
}

// Rect converts the bounds to an image.Rectangle.
func (b Bounds) Rect() image.Rectangle {
	return image.Rect(b.X1, b.Y1, b.X2, b.Y2)
}

// Face is a single detected face.
type Face struct {
	// Bounds is the bounding box of the face.
	Bounds Bounds `json:"bounds"`

	// Width is the horizontal extent in pixels (X2 - X1).
	Width int `json:"width"`

	// Height is the vertical extent in pixels (Y2 - Y1).
	Height int `json:"height"`

	// Score is the backend's detection score. The OpenCV backend does not
	// report one.
	Score float64 `json:"score,omitempty"`
}

// FaceDetector finds faces in an image.
//
// Implementations must be safe for concurrent use.
type FaceDetector interface {
	Detect(img image.Image) ([]Face, error)
}

// Params tunes a cascade detector.
type Params struct {
	// CascadePath is the classifier file to load.
	CascadePath string

	// ScaleFactor is the ratio between successive detection window sizes.
	ScaleFactor float64

	// MinNeighbors is how many overlapping raw detections a face needs.
	MinNeighbors int

	// MinSize and MaxSize bound the face size in pixels. A MaxSize of 0
	// allows faces as large as the image.
	MinSize int
	MaxSize int

	// ShiftFactor is the sliding window step relative to the window size.
	ShiftFactor float64

	// MinQuality drops clustered detections scoring below it.
	MinQuality float64

	// IoUThreshold is the overlap above which raw detections are grouped.
	IoUThreshold float64
}

// DefaultParams returns the face viewer's detector settings.
func DefaultParams() Params {
	return Params{
		ScaleFactor:  1.1,
		MinNeighbors: 5,
		MinSize:      30,
		MaxSize:      0,
		ShiftFactor:  0.1,
		MinQuality:   0,
		IoUThreshold: 0.2,
	}
}

// Validate checks that the parameters describe a usable search.
func (p Params) Validate() error {
	switch {
	case p.ScaleFactor <= 1:
		return fmt.Errorf("invalid scale factor %.2f: must be > 1", p.ScaleFactor)
	case p.MinNeighbors < 0:
		return fmt.Errorf("invalid min neighbors %d: must be >= 0", p.MinNeighbors)
	case p.MinSize < 1:
		return fmt.Errorf("invalid min size %d: must be >= 1", p.MinSize)
	case p.MaxSize < 0:
		return fmt.Errorf("invalid max size %d: must be >= 0", p.MaxSize)
	case p.MaxSize != 0 && p.MaxSize < p.MinSize:
		return fmt.Errorf("invalid max size %d: must be >= min size %d", p.MaxSize, p.MinSize)
	case p.ShiftFactor <= 0 || p.ShiftFactor > 1:
		return fmt.Errorf("invalid shift factor %.2f: must be in (0, 1]", p.ShiftFactor)
	case p.IoUThreshold <= 0 || p.IoUThreshold > 1:
		return fmt.Errorf("invalid IoU threshold %.2f: must be in (0, 1]", p.IoUThreshold)
	}
	return nil
}

// FacesResult contains the faces found in an image and the annotated image.
type FacesResult struct {
	// Faces is the list of detected faces, in detector order.
	Faces []Face `json:"faces"`

	// Count is the number of faces detected.
	Count int `json:"count"`

	// Image is the source image with a green box around every face.
	Image *imaging.Rendered `json:"image"`
}

// DetectFaces runs d on img, clips the boxes to the image and draws them.
//
// img is normalized to an origin-based RGBA copy before detection, so
// detectors always see bounds starting at (0, 0).
func DetectFaces(d FaceDetector, img image.Image) (*FacesResult, error) {
	if d == nil {
		return nil, ErrNoClassifier
	}
	src := imaging.ToRGB(img)

	found, err := d.Detect(src)
	if err != nil {
		return nil, fmt.Errorf("face detection failed: %w", err)
	}

	faces := make([]Face, 0, len(found))
	for _, f := range found {
		if clipped, ok := clipFace(f, src.Bounds()); ok {
			faces = append(faces, clipped)
		}
	}

	out := imaging.ToRGB(src)
	for _, f := range faces {
		imaging.DrawRectangle(out, f.Bounds.Rect(), imaging.Green, faceBoxThickness)
	}

	rendered, err := imaging.Render(out, FacesCaption)
	if err != nil {
		return nil, err
	}

	return &FacesResult{
		Faces: faces,
		Count: len(faces),
		Image: rendered,
	}, nil
}

// clipFace limits f to bounds. Faces entirely outside are dropped.
func clipFace(f Face, bounds image.Rectangle) (Face, bool) {
	r := f.Bounds.Rect().Canon().Intersect(bounds)
	if r.Empty() {
		return Face{}, false
	}
	return Face{
		Bounds: Bounds{X1: r.Min.X, Y1: r.Min.Y, X2: r.Max.X, Y2: r.Max.Y},
		Width:  r.Dx(),
		Height: r.Dy(),
		Score:  f.Score,
	}, true
}

// faceFromRect builds an unclipped face from a detector rectangle.
func faceFromRect(r image.Rectangle, score float64) Face {
	return Face{
		Bounds: Bounds{X1: r.Min.X, Y1: r.Min.Y, X2: r.Max.X, Y2: r.Max.Y},
		Width:  r.Dx(),
		Height: r.Dy(),
		Score:  score,
	}
}
