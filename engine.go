package pdfoverlay

import (
	"context"
	"image"
	"image/color"
	"image/draw"
	"log/slog"
	"sync"
)

// EngineOptions configures a new Engine.
type EngineOptions struct {
	// Service opens documents. Nil uses the service configured by Init.
	Service DocumentService

	// Background fills the frame behind the rendered page. Zero value means
	// white.
	Background color.RGBA

	// Logger receives debug events. Nil uses slog.Default.
	Logger *slog.Logger
}

// LoadResult is the outcome of LoadDocument.
type LoadResult struct {
	PageCount int

	// Superseded is true when a newer mutation won the race while this call
	// was in flight. The engine state is untouched in that case; this is not
	// an error.
	Superseded bool
}

// RenderResult is the outcome of SetPage and SetScale.
type RenderResult struct {
	Viewport   Viewport
	Superseded bool
}

// Engine renders a document page with timed annotation overlays and keeps
// the overlay in sync with page, scale and playback time.
//
// Engine is safe for concurrent use. Mutations that redraw the page
// (LoadDocument, SetPage, SetScale) do their slow work outside the state
// lock and commit through a generation token: a later call always wins over
// an earlier one still in flight, and the stale completion is dropped
// without touching committed state.
type Engine struct {
	mu        sync.Mutex
	svc       DocumentService
	doc       Document
	page      int
	scale     float64
	vp        Viewport
	annots    []Annotation
	time      float64
	gen       uint64
	destroyed bool

	surface *image.RGBA
	layers  *LayerManager

	background color.RGBA
	log        *slog.Logger
}

// NewEngine constructs an engine. Without an explicit Service, Init must
// have been called first; otherwise ErrNotInitialized is returned.
func NewEngine(opts *EngineOptions) (*Engine, error) {
	if opts == nil {
		opts = &EngineOptions{}
	}

	svc := opts.Service
	if svc == nil {
		svc = runtimeService()
		if svc == nil {
			return nil, ErrNotInitialized
		}
	}

	log := opts.Logger
	if log == nil {
		log = runtimeLogger()
	}

	bg := opts.Background
	if bg == (color.RGBA{}) {
		bg = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}

	return &Engine{
		svc:        svc,
		scale:      1,
		layers:     NewLayerManager(log),
		background: bg,
		log:        log,
	}, nil
}

// LoadDocument opens the document at url, resets the page to 1 and renders
// it at the current scale. Prior annotations' rendered state is cleared; the
// stored annotation list is kept and re-filtered against the new document.
func (e *Engine) LoadDocument(ctx context.Context, url string) (LoadResult, error) {
	e.mu.Lock()
	if e.destroyed {
		e.mu.Unlock()
		return LoadResult{}, ErrDestroyed
	}
	e.gen++
	gen := e.gen
	svc := e.svc
	e.mu.Unlock()

	doc, err := svc.Open(ctx, url)
	if err != nil {
		return LoadResult{}, err
	}

	// Render page 1 before committing so a failed first render leaves the
	// previous document visible.
	pg, err := doc.Page(1)
	if err != nil {
		doc.Close()
		return LoadResult{}, &LoadError{URL: url, Err: err}
	}

	e.mu.Lock()
	scale := e.scale
	e.mu.Unlock()

	vp := pg.Viewport(scale)
	surface := image.NewRGBA(image.Rect(0, 0, vp.Width, vp.Height))

	if err := pg.RenderTo(surface, vp); err != nil {
		doc.Close()
		return LoadResult{}, &RenderError{Page: 1, Err: err}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.destroyed || gen != e.gen {
		doc.Close()
		e.log.Debug("dropping superseded document load", "url", url)
		return LoadResult{Superseded: true}, nil
	}

	if e.doc != nil {
		e.doc.Close()
	}

	e.doc = doc
	e.page = 1
	e.vp = vp
	e.surface = surface

	e.layers.UpdateViewport(vp)
	e.applyTimelineLocked()

	return LoadResult{PageCount: doc.PageCount()}, nil
}

// SetPage renders page n at the current scale.
func (e *Engine) SetPage(n int) (RenderResult, error) {
	e.mu.Lock()

	if e.destroyed {
		e.mu.Unlock()
		return RenderResult{}, ErrDestroyed
	}
	if e.doc == nil {
		e.mu.Unlock()
		return RenderResult{}, ErrNoDocument
	}

	if count := e.doc.PageCount(); n < 1 || n > count {
		e.mu.Unlock()
		return RenderResult{}, &PageRangeError{Page: n, PageCount: count}
	}

	e.gen++
	gen := e.gen
	doc := e.doc
	scale := e.scale
	e.mu.Unlock()

	return e.renderPage(gen, doc, n, scale)
}

// SetScale re-renders the current page at scale s.
func (e *Engine) SetScale(s float64) (RenderResult, error) {
	e.mu.Lock()

	if e.destroyed {
		e.mu.Unlock()
		return RenderResult{}, ErrDestroyed
	}
	if e.doc == nil {
		e.mu.Unlock()
		return RenderResult{}, ErrNoDocument
	}
	if s <= 0 {
		e.mu.Unlock()
		return RenderResult{}, &RenderError{Page: e.page, Err: errInvalidScale}
	}

	e.gen++
	gen := e.gen
	doc := e.doc
	page := e.page
	e.mu.Unlock()

	return e.renderPage(gen, doc, page, s)
}

// renderPage draws the page into a fresh surface outside the lock, then
// commits surface, viewport, page and scale together if the generation is
// still current. A failed render commits nothing: the previous good frame
// stays displayed and the observed viewport is unchanged.
func (e *Engine) renderPage(gen uint64, doc Document, n int, scale float64) (RenderResult, error) {
	pg, err := doc.Page(n)
	if err != nil {
		return RenderResult{}, err
	}

	vp := pg.Viewport(scale)
	surface := image.NewRGBA(image.Rect(0, 0, vp.Width, vp.Height))

	if err := pg.RenderTo(surface, vp); err != nil {
		return RenderResult{}, &RenderError{Page: n, Err: err}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.destroyed || gen != e.gen {
		e.log.Debug("dropping superseded page render", "page", n)
		return RenderResult{Superseded: true}, nil
	}

	e.page = n
	e.scale = scale
	e.vp = vp
	e.surface = surface

	e.layers.UpdateViewport(vp)
	e.applyTimelineLocked()

	return RenderResult{Viewport: vp}, nil
}

// SetAnnotations replaces the stored annotation list. The engine keeps a
// deep copy; an empty or nil list clears the overlay.
func (e *Engine) SetAnnotations(annots []Annotation) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.destroyed {
		return ErrDestroyed
	}

	e.annots = cloneAnnotations(annots)
	e.applyTimelineLocked()

	return nil
}

// SetTime moves the playback position. Cheap enough to call per frame.
func (e *Engine) SetTime(t float64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.destroyed {
		return ErrDestroyed
	}

	e.time = t
	e.applyTimelineLocked()

	return nil
}

// applyTimelineLocked re-filters the annotation set at the current time and
// pushes the active subset for the current page to the layers. Geometry is
// always computed against the latest committed viewport. Caller holds e.mu.
func (e *Engine) applyTimelineLocked() {
	if e.doc == nil {
		return
	}

	pageCount := e.doc.PageCount()
	onPage := []Annotation{}

	for _, a := range e.annots {
		if a.Page < 1 || a.Page > pageCount {
			continue
		}
		if a.Page != e.page {
			continue
		}
		onPage = append(onPage, a)
	}

	active := FilterActive(onPage, e.time)
	e.layers.UpdateAnnotations(groupByKind(active), e.vp)
}

// Frame composites the rendered page and the overlay layers into a new
// image. Returns ErrNoDocument before the first successful load.
func (e *Engine) Frame() (*image.RGBA, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.destroyed {
		return nil, ErrDestroyed
	}
	if e.surface == nil {
		return nil, ErrNoDocument
	}

	frame := image.NewRGBA(e.surface.Bounds())
	draw.Draw(frame, frame.Bounds(), image.NewUniform(e.background), image.Point{}, draw.Src)
	draw.Draw(frame, frame.Bounds(), e.surface, e.surface.Bounds().Min, draw.Over)
	e.layers.Composite(frame)

	return frame, nil
}

// Viewport returns the latest committed viewport.
func (e *Engine) Viewport() Viewport {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.vp
}

// PageCount reports the loaded document's page count, 0 before a load.
func (e *Engine) PageCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.doc == nil {
		return 0
	}
	return e.doc.PageCount()
}

// Destroy tears the engine down: in-flight renders are invalidated, layer
// surfaces released and the document closed. Idempotent; every later
// operation returns ErrDestroyed.
func (e *Engine) Destroy() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.destroyed {
		return
	}

	e.destroyed = true
	e.gen++

	e.layers.DestroyAll()

	if e.doc != nil {
		e.doc.Close()
		e.doc = nil
	}

	e.surface = nil
	e.annots = nil

	e.log.Debug("engine destroyed")
}
