package pdfoverlay

import (
	"context"
	"image/draw"
)

// DocumentService opens documents by URL or path. The engine treats it as an
// external capability; FitzService is the stock implementation.
type DocumentService interface {
	Open(ctx context.Context, url string) (Document, error)
}

// Document is an open, paginated document.
type Document interface {
	PageCount() int
	Page(n int) (Page, error)
	Close() error
}

// Page renders itself at a chosen scale.
type Page interface {
	// Viewport returns the pixel size of the page at the given scale.
	Viewport(scale float64) Viewport

	// RenderTo draws the page into dst, which has the viewport's size.
	RenderTo(dst draw.Image, vp Viewport) error
}
