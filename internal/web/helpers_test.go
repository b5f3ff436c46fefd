package web

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ironsheep/vision-demos/internal/detection"
)

const testMaxUpload = 1 << 20

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type stubDetector struct {
	faces []detection.Face
	err   error
}

func (s *stubDetector) Detect(image.Image) ([]detection.Face, error) {
	return s.faces, s.err
}

func face(x1, y1, x2, y2 int) detection.Face {
	return detection.Face{
		Bounds: detection.Bounds{X1: x1, Y1: y1, X2: x2, Y2: y2},
		Width:  x2 - x1,
		Height: y2 - y1,
	}
}

func newTestRouter(det detection.FaceDetector, maxUpload int64) *gin.Engine {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return InitRoutes(NewHandler(det, maxUpload), logger)
}

func encodeTestPNG(t *testing.T, width, height int, c color.Color) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode PNG: %v", err)
	}
	return buf.Bytes()
}

// createMultipartRequest builds a POST with form fields and, when fileName
// is not empty, an "image" file part.
func createMultipartRequest(t *testing.T, path, fileName string, content []byte, fields map[string]string) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for k, v := range fields {
		if err := writer.WriteField(k, v); err != nil {
			t.Fatalf("failed to write field %s: %v", k, err)
		}
	}
	if fileName != "" {
		part, err := writer.CreateFormFile(imageField, fileName)
		if err != nil {
			t.Fatalf("failed to create form file: %v", err)
		}
		if _, err := io.Copy(part, bytes.NewReader(content)); err != nil {
			t.Fatalf("failed to copy content: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
