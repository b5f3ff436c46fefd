//go:build !gocv

package detection

import (
	_ "embed"
	"fmt"
	"image"
	"os"

	pigo "github.com/esimov/pigo/core"

	"github.com/ironsheep/vision-demos/internal/imaging"
)

// DefaultCascadePath is empty, selecting the embedded "facefinder" cascade.
const DefaultCascadePath = ""

//go:embed cascade/facefinder
var facefinder []byte

// CascadeDetector detects faces with a pigo binary cascade.
//
// The unpacked classifier is read-only, so one detector serves concurrent
// requests.
type CascadeDetector struct {
	classifier *pigo.Pigo
	params     Params
}

// NewCascadeDetector loads the cascade at p.CascadePath, or the embedded
// facefinder cascade when the path is empty.
func NewCascadeDetector(p Params) (*CascadeDetector, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	data, name := facefinder, "embedded facefinder"
	if p.CascadePath != "" {
		var err error
		if data, err = os.ReadFile(p.CascadePath); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNoClassifier, err)
		}
		name = p.CascadePath
	}

	classifier, err := pigo.NewPigo().Unpack(data)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to unpack %s: %v", ErrNoClassifier, name, err)
	}

	return &CascadeDetector{classifier: classifier, params: p}, nil
}

// Detect implements FaceDetector.
func (d *CascadeDetector) Detect(img image.Image) ([]Face, error) {
	src := imaging.ToRGB(img)
	cols, rows := src.Bounds().Dx(), src.Bounds().Dy()

	maxSize := d.params.MaxSize
	if maxSize == 0 {
		maxSize = min(cols, rows)
	}

	cp := pigo.CascadeParams{
		MinSize:     d.params.MinSize,
		MaxSize:     maxSize,
		ShiftFactor: d.params.ShiftFactor,
		ScaleFactor: d.params.ScaleFactor,
		ImageParams: pigo.ImageParams{
			Pixels: pigo.RgbToGrayscale(src),
			Rows:   rows,
			Cols:   cols,
			Dim:    cols,
		},
	}

	raw := d.classifier.RunCascade(cp, 0.0)
	clustered := d.classifier.ClusterDetections(raw, d.params.IoUThreshold)

	selected := selectFaces(toCandidates(raw), toCandidates(clustered), d.params)
	faces := make([]Face, 0, len(selected))
	for _, c := range selected {
		faces = append(faces, faceFromRect(c.rect(), c.score))
	}
	return faces, nil
}

// Close releases the detector. The pigo classifier holds no native resources.
func (d *CascadeDetector) Close() error {
	return nil
}

func toCandidates(dets []pigo.Detection) []candidate {
	out := make([]candidate, len(dets))
	for i, det := range dets {
		out[i] = candidate{row: det.Row, col: det.Col, size: det.Scale, score: float64(det.Q)}
	}
	return out
}
