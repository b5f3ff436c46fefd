// Package playground applies one image operation from a fixed menu.
//
// The menu mirrors the image processing demo: resize, shift, draw a line or
// a circle, Gaussian blur, binary threshold, Canny edges and text overlay,
// plus showing the original image. Exactly one operation runs per call and
// always starts from the uploaded image; results are never chained.
//
// Parameters travel as one flat Params value so that HTML forms, JSON bodies
// and MCP tool arguments can all bind to it directly. DefaultParams supplies
// the starting value of every field for a given operation, and Validate
// rejects out-of-range values with ErrInvalidParams.
package playground
