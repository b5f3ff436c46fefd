package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

var (
	// ErrNoImage is returned when no image bytes were supplied.
	ErrNoImage = errors.New("no image uploaded")

	// ErrUnsupportedFormat is returned when the file extension is not in the allow-list.
	ErrUnsupportedFormat = errors.New("unsupported image type")

	// ErrDecode is returned when the bytes are not a decodable image.
	ErrDecode = errors.New("failed to decode image")
)

// Extensions is an allow-list of lowercase file extensions without the leading dot.
type Extensions []string

var (
	// FaceExtensions are the upload types accepted by the face detection viewer.
	FaceExtensions = Extensions{"png", "jpg", "jpeg"}

	// PlaygroundExtensions are the upload types accepted by the processing playground.
	// "jfif" is a JPEG variant some browsers save images as.
	PlaygroundExtensions = Extensions{"png", "jpg", "jpeg", "jfif"}
)

// Allows reports whether the file name carries an allowed extension.
// Matching is case-insensitive.
func (e Extensions) Allows(name string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	if ext == "" {
		return false
	}
	for _, allowed := range e {
		if ext == allowed {
			return true
		}
	}
	return false
}

// String renders the allow-list for error messages, e.g. "png, jpg, jpeg".
func (e Extensions) String() string {
	return strings.Join(e, ", ")
}

// Upload is a user-supplied image file held in memory for a single request.
type Upload struct {
	// Name is the original file name; only its extension is inspected.
	Name string

	// Data holds the raw encoded bytes.
	Data []byte
}

// IsEmpty reports whether the upload carries no bytes.
func (u Upload) IsEmpty() bool {
	return len(u.Data) == 0
}

// LoadFile reads an image file from disk into an Upload.
func LoadFile(path string) (Upload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Upload{}, fmt.Errorf("failed to open image: %w", err)
	}
	return Upload{Name: filepath.Base(path), Data: data}, nil
}

// UploadFromBase64 builds an Upload from base64 (standard encoding) bytes.
// A "data:<mime>;base64," prefix is accepted and stripped.
func UploadFromBase64(name, encoded string) (Upload, error) {
	if i := strings.Index(encoded, ";base64,"); i >= 0 && strings.HasPrefix(encoded, "data:") {
		encoded = encoded[i+len(";base64,"):]
	}
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return Upload{}, fmt.Errorf("invalid base64 image data: %w", err)
	}
	return Upload{Name: name, Data: data}, nil
}

// Decode checks the upload against the allow-list and decodes it into an
// 8-bit NRGBA pixel grid with bounds starting at (0,0).
//
// EXIF orientation is applied for JPEG uploads so phone photos render upright.
//
// # Errors
//
//   - ErrNoImage if the upload is empty
//   - ErrUnsupportedFormat if the extension is not allowed
//   - ErrDecode if the bytes are not a valid image
func Decode(u Upload, allowed Extensions) (*image.NRGBA, error) {
	if u.IsEmpty() {
		return nil, ErrNoImage
	}
	if !allowed.Allows(u.Name) {
		return nil, fmt.Errorf("%w %q: supported: %s", ErrUnsupportedFormat, filepath.Ext(u.Name), allowed)
	}

	img, err := imaging.Decode(bytes.NewReader(u.Data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return imaging.Clone(img), nil
}
