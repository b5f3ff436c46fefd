package web

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/vision-demos/internal/detection"
	"github.com/ironsheep/vision-demos/internal/imaging"
	"github.com/ironsheep/vision-demos/internal/playground"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: 30 MB", errUploadTooLarge), http.StatusRequestEntityTooLarge},
		{fmt.Errorf("%w \"sharpen\"", playground.ErrUnknownOperation), http.StatusNotFound},
		{fmt.Errorf("%w: radius 0", playground.ErrInvalidParams), http.StatusBadRequest},
		{imaging.ErrNoImage, http.StatusBadRequest},
		{badRequest(errors.New("malformed form")), http.StatusBadRequest},
		{fmt.Errorf("%w \".gif\"", imaging.ErrUnsupportedFormat), http.StatusUnsupportedMediaType},
		{fmt.Errorf("%w: unexpected EOF", imaging.ErrDecode), http.StatusUnprocessableEntity},
		{detection.ErrNoClassifier, http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, statusFor(tt.err), tt.err.Error())
	}
}

func TestMenuGroups(t *testing.T) {
	groups := menuGroups(playground.OpDrawLine)

	require.Len(t, groups, len(playground.Menu))

	shapes := groups[3]
	assert.Equal(t, "Draw Shape", shapes.Label)
	require.Len(t, shapes.Options, 2)
	assert.Equal(t, menuOption{Value: "draw_line", Label: "Line", Selected: true}, shapes.Options[0])
	assert.Equal(t, menuOption{Value: "draw_circle", Label: "Circle"}, shapes.Options[1])

	resize := groups[1]
	assert.Empty(t, resize.Label)
	assert.Equal(t, menuOption{Value: "resize", Label: "Resize Image"}, resize.Options[0])
}

func TestFormFields(t *testing.T) {
	assert.Empty(t, formFields(playground.OpOriginal, playground.DefaultParams(playground.OpOriginal)))

	for _, op := range playground.Operations[1:] {
		fields := formFields(op, playground.DefaultParams(op))
		assert.NotEmpty(t, fields, op)
		assert.NotEqual(t, "Show Image", applyLabel(op), op)
	}

	text := formFields(playground.OpPutText, playground.DefaultParams(playground.OpPutText))
	assert.Equal(t, field{Name: "text", Label: "Text to Write", Type: "text", Value: "This is dog"}, text[0])
	assert.Equal(t, "5", text[3].Value)
	assert.Equal(t, "0.1", text[3].Min)
}

func TestAcceptList(t *testing.T) {
	assert.Equal(t, ".png,.jpg,.jpeg", acceptList(imaging.FaceExtensions))
}
