package pdfoverlay

import (
	"strings"

	"golang.org/x/image/font/basicfont"
)

const textPadding = 4

// textLayer positions a text box at each annotation's normalized rect and
// renders its content verbatim, wrapped to the box width. No markup parsing.
type textLayer struct {
	layerSurface
}

func (l *textLayer) Kind() Kind { return Text }

func (l *textLayer) Render(entries []ActiveAnnotation, vp Viewport) {
	img := l.prepare(vp)

	face := basicfont.Face7x13
	lineHeight := face.Height + 2

	for _, entry := range entries {
		annot := entry.Annotation
		if annot.Rect == nil {
			continue
		}
		box := absRectToImageRect(RectNormToAbs(*annot.Rect, vp))

		bg := ParseColor(annot.Style.Background, defaultTextBackground)
		fg := ParseColor(annot.Style.TextColor, defaultTextColor)

		fillRect(img, box, bg)
		strokeRect(img, box, fg)

		maxWidth := box.Dx() - 2*textPadding
		if maxWidth <= 0 {
			continue
		}

		x := box.Min.X + textPadding
		y := box.Min.Y + textPadding + face.Ascent

		for _, line := range wrapText(annot.Content, maxWidth) {
			if y > box.Max.Y-textPadding {
				break
			}
			drawString(img, x, y, line, fg)
			y += lineHeight
		}
	}
}

// wrapText breaks content into lines no wider than maxWidth pixels,
// respecting explicit newlines and breaking on spaces where possible.
func wrapText(content string, maxWidth int) []string {
	lines := []string{}

	for _, raw := range strings.Split(content, "\n") {
		words := strings.Fields(raw)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		current := words[0]

		for _, word := range words[1:] {
			candidate := current + " " + word
			if measureString(candidate) <= maxWidth {
				current = candidate
				continue
			}
			lines = append(lines, current)
			current = word
		}

		lines = append(lines, current)
	}

	return lines
}
