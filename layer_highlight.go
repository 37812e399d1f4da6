package pdfoverlay

// highlightLayer paints filled, semi-transparent rectangles for each quad of
// each active highlight. Entries are stacked in annotation order: later ones
// paint over earlier ones.
type highlightLayer struct {
	layerSurface
}

func (l *highlightLayer) Kind() Kind { return Highlight }

func (l *highlightLayer) Render(entries []ActiveAnnotation, vp Viewport) {
	img := l.prepare(vp)

	for _, entry := range entries {
		annot := entry.Annotation
		clr := ParseColor(annot.Style.Color, defaultHighlightColor)

		for _, quad := range annot.Quads {
			abs := RectNormToAbs(quad, vp)
			fillRect(img, absRectToImageRect(abs), clr)
		}
	}
}
