package web

import (
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ironsheep/vision-demos/internal/detection"
	"github.com/ironsheep/vision-demos/internal/imaging"
	"github.com/ironsheep/vision-demos/internal/playground"
	"github.com/ironsheep/vision-demos/internal/sentiment"
)

const (
	// UploadPrompt is shown while no image has been uploaded.
	UploadPrompt = "Please upload an image to start processing."

	// OriginalNotice accompanies the "Original Image" operation.
	OriginalNotice = "Displaying the original uploaded image."

	// originalWidth is the display width of the upload on the playground.
	originalWidth = 300
)

// page holds what every template renders.
type page struct {
	Title  string
	Nav    string
	Error  string
	Notice string
}

// imageView is an image ready for an <img> tag. Width 0 means natural size.
type imageView struct {
	Src     template.URL
	Caption string
	Width   int
}

func newImageView(r *imaging.Rendered, width int) *imageView {
	return &imageView{
		// Rendered data URIs are produced locally and always base64 PNG.
		Src:     template.URL(r.DataURI()),
		Caption: r.Caption,
		Width:   width,
	}
}

type facesPage struct {
	page
	Accept string
	Count  int
	Faces  []detection.Face
	Result *imageView
}

type playgroundPage struct {
	page
	Menu       []menuGroup
	Operation  string
	Accept     string
	Fields     []field
	ApplyLabel string
	Original   *imageView
	Result     *imageView
}

type sentimentPage struct {
	page
	Text    string
	Verdict *sentiment.Verdict
}

// acceptList renders an allow-list for an <input accept> attribute.
func acceptList(exts imaging.Extensions) string {
	return "." + strings.Join(exts, ",.")
}

// Index handles GET /.
func (h *Handler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", page{Title: "Vision Demos", Nav: "home"})
}

// FacesPage handles GET /faces.
func (h *Handler) FacesPage(c *gin.Context) {
	c.HTML(http.StatusOK, "faces.html", h.newFacesPage())
}

func (h *Handler) newFacesPage() facesPage {
	return facesPage{
		page:   page{Title: "Face Detection", Nav: "faces"},
		Accept: acceptList(imaging.FaceExtensions),
	}
}

// DetectFacesPage handles POST /faces.
func (h *Handler) DetectFacesPage(c *gin.Context) {
	data := h.newFacesPage()
	fail := func(err error) {
		_ = c.Error(err)
		data.Error = err.Error()
		c.HTML(statusFor(err), "faces.html", data)
	}

	upload, err := h.readUpload(c)
	if err != nil {
		fail(err)
		return
	}
	if upload.IsEmpty() {
		data.Notice = UploadPrompt
		c.HTML(http.StatusOK, "faces.html", data)
		return
	}

	img, err := imaging.Decode(upload, imaging.FaceExtensions)
	if err != nil {
		fail(err)
		return
	}
	result, err := detection.DetectFaces(h.detector, img)
	if err != nil {
		fail(err)
		return
	}

	data.Count = result.Count
	data.Faces = result.Faces
	data.Result = newImageView(result.Image, 0)
	c.HTML(http.StatusOK, "faces.html", data)
}

func (h *Handler) newPlaygroundPage(op playground.Operation, p playground.Params) playgroundPage {
	return playgroundPage{
		page:       page{Title: "Image Processing App", Nav: "playground"},
		Menu:       menuGroups(op),
		Operation:  string(op),
		Accept:     acceptList(imaging.PlaygroundExtensions),
		Fields:     formFields(op, p),
		ApplyLabel: applyLabel(op),
	}
}

// PlaygroundPage handles GET /playground. The operation query parameter
// selects the form shown.
func (h *Handler) PlaygroundPage(c *gin.Context) {
	op := playground.OpOriginal
	if name := c.Query("operation"); name != "" {
		parsed, err := playground.ParseOperation(name)
		if err != nil {
			_ = c.Error(err)
			data := h.newPlaygroundPage(op, playground.DefaultParams(op))
			data.Error = err.Error()
			c.HTML(statusFor(err), "playground.html", data)
			return
		}
		op = parsed
	}

	data := h.newPlaygroundPage(op, playground.DefaultParams(op))
	data.Notice = UploadPrompt
	c.HTML(http.StatusOK, "playground.html", data)
}

// ApplyOperationPage handles POST /playground.
func (h *Handler) ApplyOperationPage(c *gin.Context) {
	op, err := playground.ParseOperation(c.DefaultPostForm("operation", string(playground.OpOriginal)))
	if err != nil {
		op = playground.OpOriginal
	}
	p := playground.DefaultParams(op)
	if err == nil {
		p, err = bindParams(c, op)
	}

	data := h.newPlaygroundPage(op, p)
	fail := func(err error) {
		_ = c.Error(err)
		data.Error = err.Error()
		c.HTML(statusFor(err), "playground.html", data)
	}
	if err != nil {
		fail(err)
		return
	}

	upload, err := h.readUpload(c)
	if err != nil {
		fail(err)
		return
	}
	if upload.IsEmpty() {
		data.Notice = UploadPrompt
		c.HTML(http.StatusOK, "playground.html", data)
		return
	}

	img, err := imaging.Decode(upload, imaging.PlaygroundExtensions)
	if err != nil {
		fail(err)
		return
	}
	original, err := imaging.Render(img, playground.OriginalCaption)
	if err != nil {
		fail(err)
		return
	}
	data.Original = newImageView(original, originalWidth)

	if op == playground.OpOriginal {
		data.Notice = OriginalNotice
		c.HTML(http.StatusOK, "playground.html", data)
		return
	}

	result, err := playground.Apply(img, op, p)
	if err != nil {
		fail(err)
		return
	}
	data.Result = newImageView(result.Image, 0)
	c.HTML(http.StatusOK, "playground.html", data)
}

func newSentimentPage(text string) sentimentPage {
	return sentimentPage{
		page: page{Title: "Sentiment analysis", Nav: "sentiment"},
		Text: text,
	}
}

// SentimentPage handles GET /sentiment.
func (h *Handler) SentimentPage(c *gin.Context) {
	c.HTML(http.StatusOK, "sentiment.html", newSentimentPage(""))
}

// CheckSentimentPage handles POST /sentiment. The check field names the
// button pressed: "polarity" or "subjectivity".
func (h *Handler) CheckSentimentPage(c *gin.Context) {
	text := c.PostForm("text")
	data := newSentimentPage(text)

	var v sentiment.Verdict
	switch check := c.PostForm("check"); check {
	case "polarity":
		v = sentiment.CheckPolarity(text)
	case "subjectivity":
		v = sentiment.CheckSubjectivity(text)
	default:
		err := badRequest(fmt.Errorf("unknown check %q", check))
		_ = c.Error(err)
		data.Error = err.Error()
		c.HTML(statusFor(err), "sentiment.html", data)
		return
	}

	data.Verdict = &v
	c.HTML(http.StatusOK, "sentiment.html", data)
}
