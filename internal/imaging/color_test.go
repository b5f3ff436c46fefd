package imaging

import (
	"image/color"
	"testing"
)

func TestRGBColor_Validate(t *testing.T) {
	tests := []struct {
		name    string
		c       RGBColor
		wantErr bool
	}{
		{"black", RGBColor{}, false},
		{"white", White, false},
		{"negative red", RGBColor{R: -1}, true},
		{"green overflow", RGBColor{G: 256}, true},
		{"blue overflow", RGBColor{B: 1000}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.c.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() err=%v, wantErr=%v", err, tt.wantErr)
			}
		})
	}
}

func TestRGBColor_NRGBA(t *testing.T) {
	if got := (RGBColor{R: 10, G: 20, B: 30}).NRGBA(); got != (color.NRGBA{10, 20, 30, 255}) {
		t.Errorf("got %v", got)
	}
	if got := (RGBColor{R: -5, G: 300, B: 0}).NRGBA(); got != (color.NRGBA{0, 255, 0, 255}) {
		t.Errorf("out-of-range components should clamp, got %v", got)
	}
}

func TestRGBColor_Hex(t *testing.T) {
	if got := Green.Hex(); got != "#00ff00" {
		t.Errorf("Green.Hex() = %q, want #00ff00", got)
	}
	if got := (RGBColor{R: 18, G: 52, B: 86}).Hex(); got != "#123456" {
		t.Errorf("Hex() = %q, want #123456", got)
	}
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#00ff00")
	if err != nil {
		t.Fatalf("ParseHexColor failed: %v", err)
	}
	if c != Green {
		t.Errorf("got %+v, want %+v", c, Green)
	}

	c, err = ParseHexColor("#123456")
	if err != nil {
		t.Fatalf("ParseHexColor failed: %v", err)
	}
	if c.Hex() != "#123456" {
		t.Errorf("round trip: got %s", c.Hex())
	}

	if _, err := ParseHexColor("green"); err == nil {
		t.Error("expected an error for a non-hex value")
	}
}
