package server

import (
	"fmt"

	"github.com/ironsheep/vision-demos/internal/imaging"
	"github.com/ironsheep/vision-demos/internal/playground"
)

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// playgroundTools maps each playground operation to its tool name.
var playgroundTools = map[playground.Operation]string{
	playground.OpOriginal:     "image_original",
	playground.OpResize:       "image_resize",
	playground.OpShift:        "image_shift",
	playground.OpDrawLine:     "image_draw_line",
	playground.OpDrawCircle:   "image_draw_circle",
	playground.OpGaussianBlur: "image_gaussian_blur",
	playground.OpThreshold:    "image_threshold",
	playground.OpCanny:        "image_canny",
	playground.OpPutText:      "image_put_text",
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	tools := []Tool{
		// Face Detection
		{
			Name:        "face_detect",
			Description: "Detect frontal faces in a PNG or JPEG image. Returns the face bounding boxes and the image with a 2px green box around each face, as base64 PNG.",
			InputSchema: objectSchema(imageProperties(imaging.FaceExtensions), nil),
		},
	}

	// Image Processing Playground
	for _, op := range playground.Operations {
		tools = append(tools, playgroundTool(op))
	}

	// Sentiment
	tools = append(tools,
		Tool{
			Name:        "sentiment_polarity",
			Description: "Score how positive or negative a text is. Returns a polarity in [-1, 1] and the label Positive Comment, Negative Comment or Neutral Comment.",
			InputSchema: textSchema(),
		},
		Tool{
			Name:        "sentiment_subjectivity",
			Description: "Score how opinionated a text is. Returns a subjectivity in [0, 1] and the label Completely objective (exactly 0) or Highly subjective.",
			InputSchema: textSchema(),
		},
		Tool{
			Name:        "sentiment_analyze",
			Description: "Return polarity, subjectivity and the scored word groups of a text.",
			InputSchema: textSchema(),
		},
	)

	return tools
}

func playgroundTool(op playground.Operation) Tool {
	d := playground.DefaultParams(op)
	props := imageProperties(imaging.PlaygroundExtensions)

	var desc string
	switch op {
	case playground.OpOriginal:
		desc = "Decode an image and return it unchanged as base64 PNG."
	case playground.OpResize:
		desc = "Resize an image to exactly width x height pixels. The aspect ratio is not preserved."
		props["width"] = intProperty(fmt.Sprintf("Output width in pixels, 1-%d", imaging.MaxDimension), d.Width)
		props["height"] = intProperty(fmt.Sprintf("Output height in pixels, 1-%d", imaging.MaxDimension), d.Height)
	case playground.OpShift:
		desc = "Translate an image by (dx, dy) pixels. The canvas keeps its size; uncovered areas are black."
		props["dx"] = intProperty("Horizontal shift in pixels (positive moves right)", d.DX)
		props["dy"] = intProperty("Vertical shift in pixels (positive moves down)", d.DY)
	case playground.OpDrawLine:
		desc = "Draw a straight line on a copy of the image."
		props["start_x"] = intProperty("Start X coordinate", d.StartX)
		props["start_y"] = intProperty("Start Y coordinate", d.StartY)
		props["end_x"] = intProperty("End X coordinate", d.EndX)
		props["end_y"] = intProperty("End Y coordinate", d.EndY)
		addStrokeProperties(props, d)
	case playground.OpDrawCircle:
		desc = "Draw a circle outline on a copy of the image."
		props["center_x"] = intProperty("Center X coordinate", d.CenterX)
		props["center_y"] = intProperty("Center Y coordinate", d.CenterY)
		props["radius"] = intProperty("Radius in pixels (>= 1)", d.Radius)
		addStrokeProperties(props, d)
	case playground.OpGaussianBlur:
		desc = "Blur an image with a square Gaussian kernel."
		props["kernel_size"] = intProperty("Kernel size, odd, 1-99", d.KernelSize)
	case playground.OpThreshold:
		desc = "Binary threshold of the grayscale image: pixels >= threshold become max_value, all others 0."
		props["threshold"] = intProperty("Threshold value, 0-255", d.Threshold)
		props["max_value"] = intProperty("Value for pixels at or above the threshold, 0-255", d.MaxValue)
	case playground.OpCanny:
		desc = "Canny edge detection on the grayscale image."
		props["lower_threshold"] = intProperty("Lower hysteresis threshold, 0-255", d.LowerThreshold)
		props["upper_threshold"] = intProperty("Upper hysteresis threshold, 0-255", d.UpperThreshold)
	case playground.OpPutText:
		desc = "Write text on a copy of the image. (x, y) is the bottom-left corner of the text baseline."
		props["text"] = map[string]interface{}{
			"type":        "string",
			"description": "Text to write",
			"default":     d.Text,
		}
		props["x"] = intProperty("Baseline start X", d.X)
		props["y"] = intProperty("Baseline Y", d.Y)
		props["font_scale"] = map[string]interface{}{
			"type":        "number",
			"description": "Font scale, 0.1-10",
			"default":     d.FontScale,
		}
		addStrokeProperties(props, d)
	}

	return Tool{
		Name:        playgroundTools[op],
		Description: desc + " Accepts PNG, JPEG and JFIF input; returns base64 PNG with a caption.",
		InputSchema: objectSchema(props, nil),
	}
}

func objectSchema(props map[string]interface{}, required []string) map[string]interface{} {
	schema := map[string]interface{}{
		"type":       "object",
		"properties": props,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

func imageProperties(allowed imaging.Extensions) map[string]interface{} {
	return map[string]interface{}{
		"path": map[string]interface{}{
			"type":        "string",
			"description": "Absolute path to the image file (" + allowed.String() + ")",
		},
		"image_base64": map[string]interface{}{
			"type":        "string",
			"description": "Image bytes as base64, used when path is not given",
		},
		"filename": map[string]interface{}{
			"type":        "string",
			"description": "File name of the base64 image; its extension must be one of " + allowed.String(),
		},
	}
}

func addStrokeProperties(props map[string]interface{}, d playground.Params) {
	props["r"] = intProperty("Red component, 0-255", d.R)
	props["g"] = intProperty("Green component, 0-255", d.G)
	props["b"] = intProperty("Blue component, 0-255", d.B)
	props["color"] = map[string]interface{}{
		"type":        "string",
		"description": "Optional #RRGGBB color; overrides r, g and b",
	}
	props["thickness"] = intProperty(fmt.Sprintf("Stroke thickness in pixels, 1-%d", imaging.MaxThickness), d.Thickness)
}

func intProperty(desc string, def int) map[string]interface{} {
	return map[string]interface{}{
		"type":        "integer",
		"description": desc,
		"default":     def,
	}
}

func textSchema() map[string]interface{} {
	return objectSchema(map[string]interface{}{
		"text": map[string]interface{}{
			"type":        "string",
			"description": "Text to score",
		},
	}, []string{"text"})
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
