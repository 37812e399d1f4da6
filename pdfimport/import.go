// Package pdfimport converts annotations embedded in a PDF (highlights,
// strike-outs, underlines and text notes) into overlay annotations for the
// pdfoverlay engine. Imported annotations are untimed: they carry the
// always-visible sentinel start == end == 0.
package pdfimport

import (
	"fmt"
	"io"
	"os"

	"github.com/golang/geo/r2"
	"github.com/mgmeyers/unipdf/v3/core"
	"github.com/mgmeyers/unipdf/v3/model"

	"github.com/mgmeyers/pdfoverlay"
)

// Import reads the PDF at path and extracts its markup annotations.
func Import(path string) ([]pdfoverlay.Annotation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ImportReader(f)
}

// ImportReader extracts markup annotations from an open PDF.
func ImportReader(rs io.ReadSeeker) ([]pdfoverlay.Annotation, error) {
	reader, err := model.NewPdfReader(rs)
	if err != nil {
		return nil, err
	}

	numPages, err := reader.GetNumPages()
	if err != nil {
		return nil, err
	}

	annots := []pdfoverlay.Annotation{}
	ids := map[string]bool{}

	for i := 0; i < numPages; i++ {
		page, err := reader.GetPage(i + 1)
		if err != nil {
			return nil, err
		}

		pageAnnots, err := page.GetAnnotations()
		if err != nil {
			return nil, err
		}

		for _, annotation := range pageAnnots {
			if annotation == nil {
				continue
			}

			converted, ok := convertAnnotation(ids, i+1, page, annotation)
			if ok {
				annots = append(annots, converted)
			}
		}
	}

	return annots, nil
}

func convertAnnotation(
	ids map[string]bool,
	pageNumber int,
	page *model.PdfPage,
	annotation *model.PdfAnnotation,
) (pdfoverlay.Annotation, bool) {
	mediaW := page.MediaBox.Width()
	mediaH := page.MediaBox.Height()

	if mediaW <= 0 || mediaH <= 0 {
		return pdfoverlay.Annotation{}, false
	}

	// Annotation geometry is stored in unrotated PDF space, but the
	// renderer displays the page with /Rotate applied. Map onto the rotated
	// page before normalizing; for 90/270 the page axes swap.
	angle := pageRotation(page)
	effW, effH := mediaW, mediaH
	if angle == 90 || angle == 270 {
		effW, effH = mediaH, mediaW
	}

	content := ""
	if annotation.Contents != nil {
		content = annotation.Contents.String()
	}
	hex := annotationColor(annotation)

	switch annotation.GetContext().(type) {
	case *model.PdfAnnotationHighlight,
		*model.PdfAnnotationStrikeOut,
		*model.PdfAnnotationUnderline:
		rects := annotationQuads(annotation)
		if len(rects) == 0 {
			return pdfoverlay.Annotation{}, false
		}

		quads := make([]pdfoverlay.NormRect, 0, len(rects))
		for _, r := range rects {
			quads = append(quads, normalizeRect(applyRotation(r, angle, mediaW, mediaH), effW, effH))
		}

		return pdfoverlay.Annotation{
			ID:    newID(ids, pdfoverlay.Highlight, pageNumber, quads[0].X, quads[0].Y),
			Type:  pdfoverlay.Highlight,
			Page:  pageNumber,
			Mode:  "quads",
			Quads: quads,
			Style: pdfoverlay.Style{Color: hex},
		}, true

	case *model.PdfAnnotationText:
		rect, ok := annotationRect(annotation)
		if !ok {
			return pdfoverlay.Annotation{}, false
		}

		norm := normalizeRect(applyRotation(rect, angle, mediaW, mediaH), effW, effH)

		return pdfoverlay.Annotation{
			ID:      newID(ids, pdfoverlay.Text, pageNumber, norm.X, norm.Y),
			Type:    pdfoverlay.Text,
			Page:    pageNumber,
			Rect:    &norm,
			Content: content,
			Style:   pdfoverlay.Style{Background: hex},
		}, true
	}

	return pdfoverlay.Annotation{}, false
}

// annotationQuads assembles the annotation's QuadPoints into rectangles,
// eight coordinates per quad.
func annotationQuads(annotation *model.PdfAnnotation) []r2.Rect {
	qp := quadPoints(annotation)
	if qp == nil {
		return nil
	}

	coords, err := qp.GetAsFloat64Slice()
	if err != nil {
		return nil
	}

	coordHolder := []float64{}
	ptHolder := []r2.Point{}
	rects := []r2.Rect{}

	for _, coord := range coords {
		coordHolder = append(coordHolder, coord)

		if len(coordHolder) == 2 {
			pt := r2.Point{X: coordHolder[0], Y: coordHolder[1]}
			ptHolder = append(ptHolder, pt)

			coordHolder = []float64{}

			if len(ptHolder) == 4 {
				r := r2.RectFromPoints(ptHolder[0], ptHolder[1], ptHolder[2], ptHolder[3])
				rects = append(rects, r)
				ptHolder = []r2.Point{}
			}
		}
	}

	return rects
}

func quadPoints(annotation *model.PdfAnnotation) *core.PdfObjectArray {
	switch ctx := annotation.GetContext().(type) {
	case *model.PdfAnnotationHighlight:
		if qp, ok := ctx.QuadPoints.(*core.PdfObjectArray); ok {
			return qp
		}
	case *model.PdfAnnotationStrikeOut:
		if qp, ok := ctx.QuadPoints.(*core.PdfObjectArray); ok {
			return qp
		}
	case *model.PdfAnnotationUnderline:
		if qp, ok := ctx.QuadPoints.(*core.PdfObjectArray); ok {
			return qp
		}
	}

	return nil
}

func annotationRect(annotation *model.PdfAnnotation) (r2.Rect, bool) {
	objArr, ok := annotation.Rect.(*core.PdfObjectArray)
	if !ok {
		return r2.Rect{}, false
	}

	coords, err := objArr.ToFloat64Array()
	if err != nil || len(coords) < 4 {
		return r2.Rect{}, false
	}

	return r2.RectFromPoints(
		r2.Point{X: coords[0], Y: coords[1]},
		r2.Point{X: coords[2], Y: coords[3]},
	), true
}

func pageRotation(page *model.PdfPage) int64 {
	if page.Rotate == nil {
		return 0
	}

	angle := *page.Rotate % 360
	if angle < 0 {
		angle += 360
	}

	return angle
}

// applyRotation maps a rectangle from unrotated PDF space onto the page as
// displayed with /Rotate applied. mediaW and mediaH are the unrotated
// MediaBox dimensions.
func applyRotation(r r2.Rect, angle int64, mediaW, mediaH float64) r2.Rect {
	switch angle {
	case 90:
		return r2.RectFromPoints(
			r2.Point{X: r.Y.Lo, Y: mediaW - r.X.Hi},
			r2.Point{X: r.Y.Hi, Y: mediaW - r.X.Lo},
		)
	case 180:
		return r2.RectFromPoints(
			r2.Point{X: mediaW - r.X.Hi, Y: mediaH - r.Y.Hi},
			r2.Point{X: mediaW - r.X.Lo, Y: mediaH - r.Y.Lo},
		)
	case 270:
		return r2.RectFromPoints(
			r2.Point{X: mediaH - r.Y.Hi, Y: r.X.Lo},
			r2.Point{X: mediaH - r.Y.Lo, Y: r.X.Hi},
		)
	}

	return r
}

// normalizeRect maps a PDF-space rectangle (origin bottom-left, points) to
// the overlay's normalized page coordinates (origin top-left, [0,1]).
func normalizeRect(r r2.Rect, mediaW, mediaH float64) pdfoverlay.NormRect {
	return pdfoverlay.NormRect{
		X: r.X.Lo / mediaW,
		Y: (mediaH - r.Y.Hi) / mediaH,
		W: (r.X.Hi - r.X.Lo) / mediaW,
		H: (r.Y.Hi - r.Y.Lo) / mediaH,
	}
}

// newID derives a stable, unique id from kind, page and position, suffixing
// a counter on collision.
func newID(ids map[string]bool, kind pdfoverlay.Kind, page int, x, y float64) string {
	xInt := int(x * 1000)
	yInt := int(y * 1000)
	id := fmt.Sprintf("%s-p%dx%dy%d", kind, page, xInt, yInt)
	_, ok := ids[id]

	for i := 1; ok; i++ {
		id = fmt.Sprintf("%s-p%dx%dy%d-%d", kind, page, xInt, yInt, i)
		_, ok = ids[id]
	}

	ids[id] = true

	return id
}
