// Package detection finds frontal faces in images and annotates them.
//
// A FaceDetector turns an image into a list of face bounding boxes. Two
// cascade backends exist, selected at build time:
//
//   - default: a pure Go pixel-intensity-comparison cascade (pigo). The
//     classifier is a binary cascade file whose path comes from configuration.
//   - build tag "gocv": an OpenCV Haar cascade loaded through gocv, for hosts
//     that have OpenCV installed.
//
// Both are tuned by the same Params: scale factor 1.1, five supporting
// neighbors and a 30x30 minimum face, the classic Haar cascade settings.
//
// # Coordinate System
//
// Face bounds use the standard image convention:
//   - Origin (0, 0) at top-left corner
//   - (X1, Y1) inclusive, (X2, Y2) exclusive
//
// DetectFaces clips every box returned by a detector to the image, so callers
// can rely on boxes lying inside the image with non-negative width and height
// regardless of backend.
//
// # Annotation
//
// DetectFaces draws a 2 pixel green rectangle around each face on a copy of
// the source image and returns it rendered as PNG, captioned "Detected Faces".
package detection
