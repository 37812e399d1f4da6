package pdfoverlay

import "math"

// inkLayer draws each stroke as a polyline through its points. While an
// annotation is mid-progress only points whose relative timestamp has been
// reached are drawn, producing the "being drawn" effect; at progress 1 the
// full stroke appears.
type inkLayer struct {
	layerSurface
}

func (l *inkLayer) Kind() Kind { return Ink }

func (l *inkLayer) Render(entries []ActiveAnnotation, vp Viewport) {
	img := l.prepare(vp)

	for _, entry := range entries {
		annot := entry.Annotation
		elapsed := math.Inf(1)

		if !annot.Untimed() && entry.Progress < 1 {
			elapsed = entry.Progress * (annot.End - annot.Start)
		}

		for _, stroke := range annot.Strokes {
			clr := ParseColor(stroke.Color, ParseColor(annot.Style.Color, defaultInkColor))

			width := stroke.Size
			if width <= 0 {
				width = 2
			}

			var prev AbsPoint
			havePrev := false

			for _, pt := range stroke.Points {
				if pt.T > elapsed {
					break
				}

				abs := PointNormToAbs(NormPoint{X: pt.X, Y: pt.Y}, vp)

				if havePrev {
					drawLine(img,
						int(math.Round(prev.X)), int(math.Round(prev.Y)),
						int(math.Round(abs.X)), int(math.Round(abs.Y)),
						width, clr)
				} else {
					fillDisc(img, int(math.Round(abs.X)), int(math.Round(abs.Y)), width/2, clr)
				}

				prev = abs
				havePrev = true
			}
		}
	}
}
