package pdfoverlay

import "testing"

func TestRectNormToAbs(t *testing.T) {
	vp := Viewport{Width: 1000, Height: 1400}

	got := RectNormToAbs(NormRect{X: 0.1, Y: 0.2, W: 0.5, H: 0.3}, vp)
	want := AbsRect{Left: 100, Top: 280, Width: 500, Height: 420}

	if got != want {
		t.Errorf("RectNormToAbs() = %+v, want %+v", got, want)
	}
}

func TestRectNormToAbsZeroSize(t *testing.T) {
	vp := Viewport{Width: 800, Height: 600}

	got := RectNormToAbs(NormRect{X: 0.5, Y: 0.5}, vp)

	if got.Width != 0 || got.Height != 0 {
		t.Errorf("zero-size rect mapped to %+v, want zero width and height", got)
	}
	if got.Left != 400 || got.Top != 300 {
		t.Errorf("position = (%v,%v), want (400,300)", got.Left, got.Top)
	}
}

func TestPointNormToAbs(t *testing.T) {
	vp := Viewport{Width: 1000, Height: 1400}

	got := PointNormToAbs(NormPoint{X: 0.25, Y: 0.5}, vp)

	if got.X != 250 || got.Y != 700 {
		t.Errorf("PointNormToAbs() = %+v, want {250 700}", got)
	}
}

func TestClamp01(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{-0.5, 0},
		{0, 0},
		{0.25, 0.25},
		{1, 1},
		{1.5, 1},
	}

	for _, tt := range tests {
		if got := clamp01(tt.in); got != tt.want {
			t.Errorf("clamp01(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
