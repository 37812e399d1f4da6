package pdfoverlay

import (
	"image"
	"image/draw"
	"log/slog"
)

// LayerRenderer draws one annotation kind's visual representation onto its
// own overlay surface. Render fully clears and redraws the surface; the
// annotation sets involved are small enough that incremental patching is not
// worth its complexity.
type LayerRenderer interface {
	Kind() Kind
	Render(entries []ActiveAnnotation, vp Viewport)
	Image() *image.RGBA
	Destroy()
}

// LayerManager owns the overlay surfaces. Layers are created lazily, one per
// kind the active annotation set requires; idle kinds are never instantiated.
type LayerManager struct {
	layers    map[Kind]LayerRenderer
	vp        Viewport
	destroyed bool
	log       *slog.Logger
}

// NewLayerManager returns an empty manager. A nil logger falls back to
// slog.Default.
func NewLayerManager(log *slog.Logger) *LayerManager {
	if log == nil {
		log = slog.Default()
	}

	return &LayerManager{
		layers: map[Kind]LayerRenderer{},
		log:    log,
	}
}

// EnsureLayer returns the renderer for kind, constructing it on first use.
// Returns nil for unknown kinds and after DestroyAll.
func (m *LayerManager) EnsureLayer(kind Kind) LayerRenderer {
	if m.destroyed {
		return nil
	}

	if layer, ok := m.layers[kind]; ok {
		return layer
	}

	var layer LayerRenderer

	switch kind {
	case Highlight:
		layer = &highlightLayer{}
	case Text:
		layer = &textLayer{}
	case Ink:
		layer = &inkLayer{}
	default:
		return nil
	}

	m.log.Debug("overlay layer created", "kind", string(kind))
	m.layers[kind] = layer

	// Give the fresh layer a surface at the current viewport so it
	// composites cleanly even before its first annotation update.
	if m.vp.Width > 0 && m.vp.Height > 0 {
		layer.Render(nil, m.vp)
	}

	return layer
}

// UpdateViewport rescales every live layer. Their surfaces are cleared; the
// next annotation update repaints them.
func (m *LayerManager) UpdateViewport(vp Viewport) {
	if m.destroyed {
		return
	}

	m.vp = vp

	for _, layer := range m.layers {
		layer.Render(nil, vp)
	}
}

// UpdateAnnotations fans the per-kind active sets out to the layers. Kinds
// absent from the map but already instantiated are rendered empty so stale
// visuals never linger.
func (m *LayerManager) UpdateAnnotations(byKind map[Kind][]ActiveAnnotation, vp Viewport) {
	if m.destroyed {
		return
	}

	m.vp = vp

	for kind := range byKind {
		m.EnsureLayer(kind)
	}

	for kind, layer := range m.layers {
		layer.Render(byKind[kind], vp)
	}
}

// Composite draws the live layers onto dst in back-to-front kind order:
// highlights under ink, text on top.
func (m *LayerManager) Composite(dst draw.Image) {
	if m.destroyed {
		return
	}

	for _, kind := range knownKinds {
		layer, ok := m.layers[kind]
		if !ok {
			continue
		}

		img := layer.Image()
		if img == nil {
			continue
		}

		draw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, draw.Over)
	}
}

// DestroyAll releases every layer. Subsequent calls are no-ops.
func (m *LayerManager) DestroyAll() {
	if m.destroyed {
		return
	}

	m.destroyed = true

	for kind, layer := range m.layers {
		layer.Destroy()
		delete(m.layers, kind)
	}

	m.log.Debug("overlay layers destroyed")
}

// layerSurface is the piece every renderer shares: an RGBA surface resized
// to the viewport and wiped before each redraw.
type layerSurface struct {
	img *image.RGBA
}

func (s *layerSurface) prepare(vp Viewport) *image.RGBA {
	if s.img == nil || s.img.Bounds().Dx() != vp.Width || s.img.Bounds().Dy() != vp.Height {
		s.img = image.NewRGBA(image.Rect(0, 0, vp.Width, vp.Height))
		return s.img
	}

	clearImage(s.img)

	return s.img
}

func (s *layerSurface) Image() *image.RGBA { return s.img }

func (s *layerSurface) Destroy() { s.img = nil }
