// Package imaging provides the image operations behind the vision demos.
//
// This package decodes uploaded image bytes, applies a single transform
// (resize, shift, blur, threshold, Canny edges, shape and text drawing) and
// encodes the result for display. Every operation is a pure function of its
// inputs: the source image is never modified and nothing is cached between
// calls.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - For rectangles, (x1,y1) is inclusive (top-left), (x2,y2) is exclusive (bottom-right)
//
// Decoded images are normalized to *image.NRGBA with bounds starting at (0,0),
// so coordinates never need to be offset by Bounds().Min.
//
// # Colors
//
// Drawing operations take an RGB triple in natural red, green, blue order.
// Hex strings ("#RRGGBB") are parsed with go-colorful.
//
// # Error Handling
//
// Functions return errors for invalid inputs such as:
//   - Missing upload bytes (ErrNoImage)
//   - File extensions outside the demo's allow-list (ErrUnsupportedFormat)
//   - Bytes that cannot be decoded as an image
//   - Encoding errors during image output
package imaging
