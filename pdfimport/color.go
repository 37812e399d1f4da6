package pdfimport

import (
	"fmt"

	"github.com/mgmeyers/unipdf/v3/core"
	"github.com/mgmeyers/unipdf/v3/model"
)

func toHEXStr(i int) string {
	s := fmt.Sprintf("%x", i)

	if len(s) == 1 {
		return "0" + s
	}

	return s
}

// PDFObjToHex converts a PDF color array to a "#rrggbb" string, or "" when
// the object is missing or malformed.
func PDFObjToHex(c core.PdfObject) string {
	if c == nil {
		return ""
	}

	objArr, ok := c.(*core.PdfObjectArray)
	if !ok {
		return ""
	}

	clr, err := objArr.ToFloat64Array()
	if err != nil {
		return ""
	}

	if len(clr) < 3 {
		return ""
	}

	return "#" + toHEXStr(int(clr[0]*255)) + toHEXStr(int(clr[1]*255)) + toHEXStr(int(clr[2]*255))
}

func annotationColor(annotation *model.PdfAnnotation) string {
	if annotation == nil {
		return ""
	}

	switch ctx := annotation.GetContext().(type) {
	case *model.PdfAnnotationHighlight:
		return PDFObjToHex(ctx.C)
	case *model.PdfAnnotationStrikeOut:
		return PDFObjToHex(ctx.C)
	case *model.PdfAnnotationUnderline:
		return PDFObjToHex(ctx.C)
	case *model.PdfAnnotationText:
		return PDFObjToHex(ctx.C)
	}

	return ""
}
