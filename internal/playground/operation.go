package playground

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownOperation is returned for operation names outside the menu.
var ErrUnknownOperation = errors.New("unknown operation")

// Operation names a playground operation.
type Operation string

const (
	OpOriginal     Operation = "original"
	OpResize       Operation = "resize"
	OpShift        Operation = "shift"
	OpDrawLine     Operation = "draw_line"
	OpDrawCircle   Operation = "draw_circle"
	OpGaussianBlur Operation = "gaussian_blur"
	OpThreshold    Operation = "threshold"
	OpCanny        Operation = "canny"
	OpPutText      Operation = "put_text"
)

// Operations lists every operation in menu order.
var Operations = []Operation{
	OpOriginal,
	OpResize,
	OpShift,
	OpDrawLine,
	OpDrawCircle,
	OpGaussianBlur,
	OpThreshold,
	OpCanny,
	OpPutText,
}

// MenuEntry is one item of the operation menu. "Draw Shape" groups the line
// and circle operations.
type MenuEntry struct {
	Label      string
	Operations []Operation
}

// Menu is the operation menu shown by the web front-end.
var Menu = []MenuEntry{
	{Label: "Original Image", Operations: []Operation{OpOriginal}},
	{Label: "Resize Image", Operations: []Operation{OpResize}},
	{Label: "Shift Image", Operations: []Operation{OpShift}},
	{Label: "Draw Shape", Operations: []Operation{OpDrawLine, OpDrawCircle}},
	{Label: "Gaussian Blur", Operations: []Operation{OpGaussianBlur}},
	{Label: "Thresholding", Operations: []Operation{OpThreshold}},
	{Label: "Canny Edge Detection", Operations: []Operation{OpCanny}},
	{Label: "Write Text", Operations: []Operation{OpPutText}},
}

var labels = map[Operation]string{
	OpOriginal:     "Original Image",
	OpResize:       "Resize Image",
	OpShift:        "Shift Image",
	OpDrawLine:     "Line",
	OpDrawCircle:   "Circle",
	OpGaussianBlur: "Gaussian Blur",
	OpThreshold:    "Thresholding",
	OpCanny:        "Canny Edge Detection",
	OpPutText:      "Write Text",
}

// Label returns the human readable name of op.
func (op Operation) Label() string {
	if l, ok := labels[op]; ok {
		return l
	}
	return string(op)
}

// ParseOperation resolves an operation name. Matching ignores case and
// accepts dashes in place of underscores.
func ParseOperation(name string) (Operation, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for _, op := range Operations {
		if string(op) == normalized {
			return op, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownOperation, name)
}
