package server

import (
	"strings"
	"testing"
)

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	if len(tools) == 0 {
		t.Fatal("GetToolDefinitions returned empty slice")
	}

	expectedTools := []string{
		"face_detect",
		"image_original",
		"image_resize",
		"image_shift",
		"image_draw_line",
		"image_draw_circle",
		"image_gaussian_blur",
		"image_threshold",
		"image_canny",
		"image_put_text",
		"sentiment_polarity",
		"sentiment_subjectivity",
		"sentiment_analyze",
	}

	toolMap := make(map[string]Tool)
	for _, tool := range tools {
		if _, dup := toolMap[tool.Name]; dup {
			t.Errorf("Duplicate tool name: %s", tool.Name)
		}
		toolMap[tool.Name] = tool
	}

	for _, name := range expectedTools {
		if _, ok := toolMap[name]; !ok {
			t.Errorf("Expected tool %s not found", name)
		}
	}
	if len(tools) != len(expectedTools) {
		t.Errorf("Expected %d tools, got %d", len(expectedTools), len(tools))
	}
}

func TestToolDefinitions_Structure(t *testing.T) {
	tools := GetToolDefinitions()

	for _, tool := range tools {
		t.Run(tool.Name, func(t *testing.T) {
			if tool.Name == "" {
				t.Error("Tool name is empty")
			}
			if tool.Description == "" {
				t.Error("Tool description is empty")
			}
			if tool.InputSchema == nil {
				t.Fatal("InputSchema is nil")
			}
			if tool.InputSchema["type"] != "object" {
				t.Errorf("InputSchema type: got %v, want object", tool.InputSchema["type"])
			}
			if _, ok := tool.InputSchema["properties"].(map[string]interface{}); !ok {
				t.Error("InputSchema properties should be a map")
			}
		})
	}
}

func TestToolDefinitions_ImageTools(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		if tool.Name == "face_detect" || strings.HasPrefix(tool.Name, "image_") {
			props := tool.InputSchema["properties"].(map[string]interface{})
			for _, key := range []string{"path", "image_base64", "filename"} {
				if _, ok := props[key]; !ok {
					t.Errorf("%s: missing %s property", tool.Name, key)
				}
			}
		}
	}
}

func TestToolDefinitions_PlaygroundDefaults(t *testing.T) {
	tools := make(map[string]Tool)
	for _, tool := range GetToolDefinitions() {
		tools[tool.Name] = tool
	}

	tests := []struct {
		tool, property string
		want           interface{}
	}{
		{"image_resize", "width", 200},
		{"image_resize", "height", 400},
		{"image_gaussian_blur", "kernel_size", 21},
		{"image_threshold", "threshold", 117},
		{"image_canny", "lower_threshold", 100},
		{"image_draw_line", "thickness", 1},
		{"image_draw_circle", "thickness", 2},
		{"image_put_text", "font_scale", 5.0},
		{"image_put_text", "text", "This is dog"},
	}

	for _, tt := range tests {
		props := tools[tt.tool].InputSchema["properties"].(map[string]interface{})
		prop, ok := props[tt.property].(map[string]interface{})
		if !ok {
			t.Errorf("%s: missing property %s", tt.tool, tt.property)
			continue
		}
		if prop["default"] != tt.want {
			t.Errorf("%s.%s default: got %v, want %v", tt.tool, tt.property, prop["default"], tt.want)
		}
	}
}

func TestSentimentTools_RequireText(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		if !strings.HasPrefix(tool.Name, "sentiment_") {
			continue
		}
		required, ok := tool.InputSchema["required"].([]string)
		if !ok || len(required) != 1 || required[0] != "text" {
			t.Errorf("%s: required should be [text], got %v", tool.Name, tool.InputSchema["required"])
		}
	}
}
