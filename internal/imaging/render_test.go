package imaging

import (
	"bytes"
	"encoding/base64"
	"image/color"
	"image/png"
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	img := createInMemoryImage(30, 20, color.NRGBA{10, 20, 30, 255})

	r, err := Render(img, "Original Image")
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if r.Width != 30 || r.Height != 20 {
		t.Errorf("dimensions: got %dx%d, want 30x20", r.Width, r.Height)
	}
	if r.MimeType != "image/png" {
		t.Errorf("MimeType: got %s, want image/png", r.MimeType)
	}
	if r.Caption != "Original Image" {
		t.Errorf("Caption: got %q", r.Caption)
	}

	decoded, err := base64.StdEncoding.DecodeString(r.ImageBase64)
	if err != nil {
		t.Fatalf("failed to decode base64: %v", err)
	}
	out, err := png.Decode(bytes.NewReader(decoded))
	if err != nil {
		t.Fatalf("failed to decode PNG: %v", err)
	}
	if out.Bounds().Dx() != 30 || out.Bounds().Dy() != 20 {
		t.Errorf("decoded dimensions: got %dx%d", out.Bounds().Dx(), out.Bounds().Dy())
	}
}

func TestRendered_DataURI(t *testing.T) {
	r := &Rendered{MimeType: "image/png", ImageBase64: "AAAA"}
	if got := r.DataURI(); got != "data:image/png;base64,AAAA" {
		t.Errorf("DataURI: got %q", got)
	}
	if !strings.HasPrefix(r.DataURI(), "data:image/png") {
		t.Error("DataURI should start with the mime type")
	}
}
