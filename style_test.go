package pdfoverlay

import (
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	fallback := color.RGBA{R: 1, G: 2, B: 3, A: 4}

	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"#ff8000", color.RGBA{R: 255, G: 128, B: 0, A: 255}},
		{"rgb(10, 20, 30)", color.RGBA{R: 10, G: 20, B: 30, A: 255}},
		{"rgba(255,255,0,0.3)", color.RGBA{R: 255, G: 255, B: 0, A: 77}},
		{"rgba(0,0,0,1)", color.RGBA{A: 255}},
		{"", fallback},
		{"bogus", fallback},
		{"#zzz", fallback},
		{"rgb(300,0,0)", fallback},
	}

	for _, tt := range tests {
		if got := ParseColor(tt.in, fallback); got != tt.want {
			t.Errorf("ParseColor(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestColorCategory(t *testing.T) {
	tests := []struct {
		in   color.RGBA
		want string
	}{
		{color.RGBA{R: 255, G: 255, B: 0, A: 255}, "Yellow"},
		{color.RGBA{R: 255, A: 255}, "Red"},
		{color.RGBA{G: 128, A: 255}, "Green"},
		{color.RGBA{A: 255}, "Black"},
		{color.RGBA{R: 255, G: 255, B: 255, A: 255}, "White"},
	}

	for _, tt := range tests {
		if got := ColorCategory(tt.in); got != tt.want {
			t.Errorf("ColorCategory(%+v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
