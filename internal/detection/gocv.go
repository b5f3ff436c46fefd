//go:build gocv

package detection

import (
	"fmt"
	"image"
	"sync"

	"gocv.io/x/gocv"
)

// DefaultCascadePath is the configured default for OpenCV's frontal face
// Haar cascade.
const DefaultCascadePath = "haarcascade_frontalface_default.xml"

// CascadeDetector detects faces with an OpenCV Haar cascade.
type CascadeDetector struct {
	// mu serializes access to the classifier, which is not safe for
	// concurrent use.
	mu         sync.Mutex
	classifier gocv.CascadeClassifier
	params     Params
}

// NewCascadeDetector loads the Haar cascade XML at p.CascadePath.
func NewCascadeDetector(p Params) (*CascadeDetector, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if p.CascadePath == "" {
		return nil, fmt.Errorf("%w: no cascade path configured", ErrNoClassifier)
	}

	classifier := gocv.NewCascadeClassifier()
	if !classifier.Load(p.CascadePath) {
		classifier.Close()
		return nil, fmt.Errorf("%w: failed to load %s", ErrNoClassifier, p.CascadePath)
	}

	return &CascadeDetector{classifier: classifier, params: p}, nil
}

// Detect implements FaceDetector.
func (d *CascadeDetector) Detect(img image.Image) ([]Face, error) {
	mat, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return nil, fmt.Errorf("failed to convert image: %w", err)
	}
	defer mat.Close()

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(mat, &gray, gocv.ColorBGRToGray)

	d.mu.Lock()
	rects := d.classifier.DetectMultiScaleWithParams(
		gray,
		d.params.ScaleFactor,
		d.params.MinNeighbors,
		0,
		image.Pt(d.params.MinSize, d.params.MinSize),
		image.Pt(d.params.MaxSize, d.params.MaxSize), // 0x0 leaves the size unbounded
	)
	d.mu.Unlock()

	faces := make([]Face, 0, len(rects))
	for _, r := range rects {
		faces = append(faces, faceFromRect(r, 0))
	}
	return faces, nil
}

// Close releases the native classifier.
func (d *CascadeDetector) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.classifier.Close()
}
