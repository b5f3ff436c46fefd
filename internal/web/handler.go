package web

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ironsheep/vision-demos/internal/detection"
	"github.com/ironsheep/vision-demos/internal/imaging"
	"github.com/ironsheep/vision-demos/internal/playground"
)

// imageField is the multipart field carrying the upload.
const imageField = "image"

var (
	errUploadTooLarge = errors.New("upload too large")
	errBadRequest     = errors.New("bad request")
)

// Handler serves the demo pages and API.
type Handler struct {
	detector  detection.FaceDetector
	maxUpload int64
}

// NewHandler creates a handler. detector may be nil, in which case face
// detection reports that no classifier is available.
func NewHandler(detector detection.FaceDetector, maxUpload int64) *Handler {
	return &Handler{detector: detector, maxUpload: maxUpload}
}

// readUpload returns the uploaded image file. A request without one yields
// an empty upload and no error.
func (h *Handler) readUpload(c *gin.Context) (imaging.Upload, error) {
	fh, err := c.FormFile(imageField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
			return imaging.Upload{}, nil
		case errors.As(err, &tooLarge):
			return imaging.Upload{}, fmt.Errorf("%w: limit is %d bytes", errUploadTooLarge, h.maxUpload)
		}
		return imaging.Upload{}, fmt.Errorf("%w: failed to read upload: %v", errBadRequest, err)
	}
	if fh.Size > h.maxUpload {
		return imaging.Upload{}, fmt.Errorf("%w: %d bytes, limit is %d", errUploadTooLarge, fh.Size, h.maxUpload)
	}

	f, err := fh.Open()
	if err != nil {
		return imaging.Upload{}, fmt.Errorf("failed to open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return imaging.Upload{}, fmt.Errorf("failed to read upload: %w", err)
	}
	return imaging.Upload{Name: fh.Filename, Data: data}, nil
}

// bindParams reads operation parameters from the form over op's defaults.
func bindParams(c *gin.Context, op playground.Operation) (playground.Params, error) {
	p := playground.DefaultParams(op)
	if err := c.ShouldBind(&p); err != nil {
		return p, badRequest(err)
	}
	return p, nil
}

func badRequest(err error) error {
	return fmt.Errorf("%w: %v", errBadRequest, err)
}

// statusFor maps an error to the HTTP status reported to the client.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errUploadTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, playground.ErrUnknownOperation):
		return http.StatusNotFound
	case errors.Is(err, errBadRequest),
		errors.Is(err, imaging.ErrNoImage),
		errors.Is(err, playground.ErrInvalidParams):
		return http.StatusBadRequest
	case errors.Is(err, imaging.ErrUnsupportedFormat):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, imaging.ErrDecode):
		return http.StatusUnprocessableEntity
	case errors.Is(err, detection.ErrNoClassifier):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
