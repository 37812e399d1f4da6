package pdfoverlay

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// blendPixel composites c over the pixel at (x,y) using straight (not
// premultiplied) source alpha. Out-of-bounds coordinates are ignored.
func blendPixel(img *image.RGBA, x, y int, c color.RGBA) {
	bounds := img.Bounds()
	if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
		return
	}

	if c.A == 255 {
		img.SetRGBA(x, y, c)
		return
	}
	if c.A == 0 {
		return
	}

	dst := img.RGBAAt(x, y)
	a := uint32(c.A)
	inv := 255 - a

	img.SetRGBA(x, y, color.RGBA{
		R: uint8((uint32(c.R)*a + uint32(dst.R)*inv) / 255),
		G: uint8((uint32(c.G)*a + uint32(dst.G)*inv) / 255),
		B: uint8((uint32(c.B)*a + uint32(dst.B)*inv) / 255),
		A: uint8(a + uint32(dst.A)*inv/255),
	})
}

// fillRect blends a filled rectangle onto the image.
func fillRect(img *image.RGBA, rect image.Rectangle, c color.RGBA) {
	rect = rect.Intersect(img.Bounds())

	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			blendPixel(img, x, y, c)
		}
	}
}

// strokeRect draws a 1px rectangle outline.
func strokeRect(img *image.RGBA, rect image.Rectangle, c color.RGBA) {
	for x := rect.Min.X; x < rect.Max.X; x++ {
		blendPixel(img, x, rect.Min.Y, c)
		blendPixel(img, x, rect.Max.Y-1, c)
	}
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		blendPixel(img, rect.Min.X, y, c)
		blendPixel(img, rect.Max.X-1, y, c)
	}
}

// fillDisc blends a filled disc centered at (cx,cy).
func fillDisc(img *image.RGBA, cx, cy int, radius float64, c color.RGBA) {
	if radius <= 0.5 {
		blendPixel(img, cx, cy, c)
		return
	}

	r := int(math.Ceil(radius))
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if float64(dx*dx+dy*dy) <= radius*radius {
				blendPixel(img, cx+dx, cy+dy, c)
			}
		}
	}
}

// drawLine draws a line of the given width using Bresenham stepping with a
// disc brush.
func drawLine(img *image.RGBA, x1, y1, x2, y2 int, width float64, c color.RGBA) {
	radius := width / 2

	dx := absInt(x2 - x1)
	dy := absInt(y2 - y1)
	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy

	for {
		fillDisc(img, x1, y1, radius, c)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// drawString renders text with the built-in 7x13 face, clipped to the image.
func drawString(img *image.RGBA, x, y int, text string, c color.RGBA) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

// measureString returns the advance of text in pixels for the 7x13 face.
func measureString(text string) int {
	return font.MeasureString(basicfont.Face7x13, text).Ceil()
}

// clearImage resets every pixel to transparent.
func clearImage(img *image.RGBA) {
	for i := range img.Pix {
		img.Pix[i] = 0
	}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func absRectToImageRect(r AbsRect) image.Rectangle {
	return image.Rect(
		int(math.Round(r.Left)),
		int(math.Round(r.Top)),
		int(math.Round(r.Left+r.Width)),
		int(math.Round(r.Top+r.Height)),
	)
}
