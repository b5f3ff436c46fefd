package detection

import "image"

// candidate is a square detection centered on (row, col).
type candidate struct {
	row, col, size int
	score          float64
}

func (c candidate) rect() image.Rectangle {
	x := c.col - c.size/2
	y := c.row - c.size/2
	return image.Rect(x, y, x+c.size, y+c.size)
}

// iou returns the intersection over union of two rectangles.
func iou(a, b image.Rectangle) float64 {
	inter := a.Intersect(b)
	if inter.Empty() {
		return 0
	}
	ia := inter.Dx() * inter.Dy()
	union := a.Dx()*a.Dy() + b.Dx()*b.Dy() - ia
	if union <= 0 {
		return 0
	}
	return float64(ia) / float64(union)
}

// selectFaces keeps the clustered candidates that are large enough, score
// at least p.MinQuality and overlap at least p.MinNeighbors raw detections.
func selectFaces(raw, clustered []candidate, p Params) []candidate {
	var keep []candidate
	for _, cl := range clustered {
		if cl.size < p.MinSize || cl.score < p.MinQuality {
			continue
		}
		support := 0
		for _, r := range raw {
			if iou(r.rect(), cl.rect()) > p.IoUThreshold {
				support++
			}
		}
		if support >= p.MinNeighbors {
			keep = append(keep, cl)
		}
	}
	return keep
}
