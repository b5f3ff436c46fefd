package web

import (
	"image/color"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/vision-demos/internal/detection"
	"github.com/ironsheep/vision-demos/internal/playground"
	"github.com/ironsheep/vision-demos/internal/sentiment"
)

const dataURIPrefix = "data:image/png;base64,"

func postForm(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestIndexPage(t *testing.T) {
	router := newTestRouter(nil, testMaxUpload)

	w := serve(router, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	for _, link := range []string{`href="/faces"`, `href="/playground"`, `href="/sentiment"`} {
		assert.Contains(t, w.Body.String(), link)
	}
}

func TestFacesPage(t *testing.T) {
	router := newTestRouter(nil, testMaxUpload)

	w := serve(router, httptest.NewRequest(http.MethodGet, "/faces", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<h1>Face Detection</h1>")
	assert.Contains(t, w.Body.String(), "Upload an image")
	assert.Contains(t, w.Body.String(), `accept=".png,.jpg,.jpeg"`)
}

func TestDetectFacesPage(t *testing.T) {
	det := &stubDetector{faces: []detection.Face{face(5, 5, 20, 20), face(30, 30, 45, 45)}}
	router := newTestRouter(det, testMaxUpload)

	req := createMultipartRequest(t, "/faces", "group.png", encodeTestPNG(t, 50, 50, color.White), nil)
	w := serve(router, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Faces found: 2")
	assert.Contains(t, body, `src="`+dataURIPrefix)
	assert.Contains(t, body, "<figcaption>Detected Faces</figcaption>")
}

func TestDetectFacesPage_NoUpload(t *testing.T) {
	router := newTestRouter(&stubDetector{}, testMaxUpload)

	w := serve(router, createMultipartRequest(t, "/faces", "", nil, nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), UploadPrompt)
	assert.NotContains(t, w.Body.String(), dataURIPrefix)
}

func TestDetectFacesPage_CorruptUpload(t *testing.T) {
	router := newTestRouter(&stubDetector{}, testMaxUpload)

	w := serve(router, createMultipartRequest(t, "/faces", "photo.png", []byte("garbage"), nil))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), `class="error"`)
}

func TestPlaygroundPage(t *testing.T) {
	router := newTestRouter(nil, testMaxUpload)

	w := serve(router, httptest.NewRequest(http.MethodGet, "/playground", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `<optgroup label="Draw Shape">`)
	assert.Contains(t, body, `<option value="original" selected>Original Image</option>`)
	assert.Contains(t, body, UploadPrompt)
	assert.Contains(t, body, `accept=".png,.jpg,.jpeg,.jfif"`)
}

func TestPlaygroundPage_SelectOperation(t *testing.T) {
	router := newTestRouter(nil, testMaxUpload)

	w := serve(router, httptest.NewRequest(http.MethodGet, "/playground?operation=draw_circle", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `<option value="draw_circle" selected>Circle</option>`)
	assert.Contains(t, body, `name="center_x" value="450"`)
	assert.Contains(t, body, `name="radius" value="200" min="1"`)
	assert.Contains(t, body, `name="thickness" value="2" min="1" max="50"`)
	assert.Contains(t, body, ">Draw Circle</button>")
}

func TestPlaygroundPage_UnknownOperation(t *testing.T) {
	router := newTestRouter(nil, testMaxUpload)

	w := serve(router, httptest.NewRequest(http.MethodGet, "/playground?operation=sharpen", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `class="error"`)
}

func TestApplyOperationPage_Original(t *testing.T) {
	router := newTestRouter(nil, testMaxUpload)

	req := createMultipartRequest(t, "/playground", "photo.png", encodeTestPNG(t, 40, 30, color.White),
		map[string]string{"operation": string(playground.OpOriginal)})
	w := serve(router, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, OriginalNotice)
	assert.Contains(t, body, `width="300"`)
	assert.Equal(t, 1, strings.Count(body, dataURIPrefix))
}

func TestApplyOperationPage_ShowsOriginalAndResult(t *testing.T) {
	router := newTestRouter(nil, testMaxUpload)

	req := createMultipartRequest(t, "/playground", "photo.png", encodeTestPNG(t, 40, 30, color.White),
		map[string]string{"operation": "resize", "width": "20", "height": "10"})
	w := serve(router, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Equal(t, 2, strings.Count(body, dataURIPrefix))
	assert.Contains(t, body, "<figcaption>Resized Image (20x10)</figcaption>")
	// Submitted values are kept in the form.
	assert.Contains(t, body, `name="width" value="20"`)
}

func TestApplyOperationPage_NoUpload(t *testing.T) {
	router := newTestRouter(nil, testMaxUpload)

	w := serve(router, createMultipartRequest(t, "/playground", "", nil, map[string]string{"operation": "canny"}))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), UploadPrompt)
	assert.NotContains(t, w.Body.String(), dataURIPrefix)
}

func TestApplyOperationPage_InvalidParams(t *testing.T) {
	router := newTestRouter(nil, testMaxUpload)

	req := createMultipartRequest(t, "/playground", "photo.png", encodeTestPNG(t, 10, 10, color.White),
		map[string]string{"operation": "gaussian_blur", "kernel_size": "8"})
	w := serve(router, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "kernel size 8")
}

func TestSentimentPage(t *testing.T) {
	router := newTestRouter(nil, testMaxUpload)

	w := serve(router, httptest.NewRequest(http.MethodGet, "/sentiment", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "<h1>Sentiment analysis</h1>")
	assert.Contains(t, body, "enter your comment about the product")
	assert.Contains(t, body, ">Check polarity</button>")
	assert.Contains(t, body, ">check subjectivity</button>")
}

func TestCheckSentimentPage(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		check string
		label string
	}{
		{"positive", "This product is great", "polarity", sentiment.LabelPositive},
		{"negative", "not good", "polarity", sentiment.LabelNegative},
		{"neutral", "The box arrived on Tuesday", "polarity", sentiment.LabelNeutral},
		{"objective", "The box arrived on Tuesday", "subjectivity", sentiment.LabelObjective},
		{"subjective", "This product is great", "subjectivity", sentiment.LabelSubjective},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(nil, testMaxUpload)

			w := serve(router, postForm("/sentiment", url.Values{"text": {tt.text}, "check": {tt.check}}))

			require.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), `<p class="label">`+tt.label+`</p>`)
			assert.Contains(t, w.Body.String(), tt.text)
		})
	}
}

func TestCheckSentimentPage_UnknownCheck(t *testing.T) {
	router := newTestRouter(nil, testMaxUpload)

	w := serve(router, postForm("/sentiment", url.Values{"text": {"fine"}, "check": {"sarcasm"}}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
