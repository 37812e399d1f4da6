package pdfoverlay

import (
	"image/color"
	"regexp"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Default colors applied when a style omits them.
var (
	defaultHighlightColor = color.RGBA{R: 255, G: 255, B: 0, A: 76} // rgba(255,255,0,0.3)
	defaultInkColor       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	defaultTextColor      = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	defaultTextBackground = color.RGBA{R: 255, G: 255, B: 255, A: 216}
)

var rgbFuncRe = regexp.MustCompile(`^rgba?\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*(?:,\s*([0-9.]+)\s*)?\)$`)

// ParseColor converts a CSS-style color string ("#rrggbb", "rgb(r,g,b)" or
// "rgba(r,g,b,a)") to an RGBA value. Unparseable or empty strings yield the
// fallback.
func ParseColor(s string, fallback color.RGBA) color.RGBA {
	s = strings.TrimSpace(s)

	if s == "" {
		return fallback
	}

	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return fallback
		}

		r, g, b := c.RGB255()
		return color.RGBA{R: r, G: g, B: b, A: 255}
	}

	m := rgbFuncRe.FindStringSubmatch(s)
	if m == nil {
		return fallback
	}

	r, _ := strconv.Atoi(m[1])
	g, _ := strconv.Atoi(m[2])
	b, _ := strconv.Atoi(m[3])

	alpha := 1.0
	if m[4] != "" {
		a, err := strconv.ParseFloat(m[4], 64)
		if err != nil || a < 0 || a > 1 {
			return fallback
		}
		alpha = a
	}

	if r > 255 || g > 255 || b > 255 {
		return fallback
	}

	return color.RGBA{
		R: uint8(r),
		G: uint8(g),
		B: uint8(b),
		A: uint8(alpha*255 + 0.5),
	}
}

// ColorCategory buckets a color into a human readable name based on HSL.
func ColorCategory(c color.RGBA) string {
	clr := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
	h, s, l := clr.Hsl()

	if l < 0.12 {
		return "Black"
	}
	if l > 0.98 {
		return "White"
	}
	if s < 0.2 {
		return "Gray"
	}
	if h < 15 {
		return "Red"
	}
	if h < 45 {
		return "Orange"
	}
	if h < 65 {
		return "Yellow"
	}
	if h < 170 {
		return "Green"
	}
	if h < 190 {
		return "Cyan"
	}
	if h < 263 {
		return "Blue"
	}
	if h < 280 {
		return "Purple"
	}
	if h < 335 {
		return "Magenta"
	}
	return "Red"
}
