package pdfoverlay

// Viewport is the pixel size of a rendered page at a given scale. It is
// always derived from the page and the scale, never stored independently.
type Viewport struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// NormRect is a rectangle in normalized page coordinates. All fields are in
// [0,1] with the origin at the top-left of the page.
type NormRect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// NormPoint is a point in normalized page coordinates.
type NormPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// AbsRect is a rectangle in viewport pixels.
type AbsRect struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// AbsPoint is a point in viewport pixels.
type AbsPoint struct {
	X float64
	Y float64
}

// RectNormToAbs maps a normalized rectangle onto a viewport.
func RectNormToAbs(r NormRect, vp Viewport) AbsRect {
	vw := float64(vp.Width)
	vh := float64(vp.Height)

	return AbsRect{
		Left:   r.X * vw,
		Top:    r.Y * vh,
		Width:  r.W * vw,
		Height: r.H * vh,
	}
}

// PointNormToAbs maps a normalized point onto a viewport.
func PointNormToAbs(p NormPoint, vp Viewport) AbsPoint {
	return AbsPoint{
		X: p.X * float64(vp.Width),
		Y: p.Y * float64(vp.Height),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
