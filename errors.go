package pdfoverlay

import (
	"errors"
	"fmt"
)

var (
	// ErrDestroyed is returned by every operation invoked after Destroy.
	ErrDestroyed = errors.New("engine destroyed")

	// ErrNoDocument is returned by operations that need a loaded document.
	ErrNoDocument = errors.New("no document loaded")

	// ErrNotInitialized is returned by NewEngine when no DocumentService is
	// supplied and Init has not been called.
	ErrNotInitialized = errors.New("pdfoverlay runtime not initialized")

	errInvalidScale = errors.New("scale must be > 0")
)

// LoadError reports a failed document fetch or parse.
type LoadError struct {
	URL string
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading document %q: %v", e.URL, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// PageRangeError reports a page number outside [1, PageCount].
type PageRangeError struct {
	Page      int
	PageCount int
}

func (e *PageRangeError) Error() string {
	return fmt.Sprintf("page %d out of range [1,%d]", e.Page, e.PageCount)
}

// RenderError reports a failed page draw. The previously committed frame is
// left untouched when it occurs.
type RenderError struct {
	Page int
	Err  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("rendering page %d: %v", e.Page, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
