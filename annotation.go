package pdfoverlay

import (
	"encoding/json"
	"fmt"
	"io"
)

// Kind identifies the visual representation of an annotation.
type Kind string

const (
	Highlight Kind = "highlight"
	Text      Kind = "text"
	Ink       Kind = "ink"
)

// knownKinds lists every kind the engine can render, in composite order
// (back to front).
var knownKinds = []Kind{Highlight, Ink, Text}

// Style carries kind-specific rendering hints. Colors are CSS-style strings:
// "#rrggbb", "rgb(r,g,b)" or "rgba(r,g,b,a)".
type Style struct {
	Color      string `json:"color,omitempty"`
	Background string `json:"background,omitempty"`
	TextColor  string `json:"textColor,omitempty"`
}

// StrokePoint is one sample of an ink stroke. T is seconds relative to the
// stroke's own recording start and is non-decreasing within a stroke.
type StrokePoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	T float64 `json:"t"`
}

// Stroke is a single ink polyline.
type Stroke struct {
	Color  string        `json:"color,omitempty"`
	Size   float64       `json:"size"`
	Points []StrokePoint `json:"points"`
}

// Annotation is a timed, positioned overlay of one kind. Start and End are
// seconds on the playback timeline; Start == End == 0 marks an untimed,
// always-visible annotation.
//
// The kind-specific fields follow the wire format: Mode and Quads for
// highlights, Rect and Content for text, Strokes for ink.
type Annotation struct {
	ID    string  `json:"id"`
	Type  Kind    `json:"type"`
	Page  int     `json:"page"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Style Style   `json:"style"`

	Mode  string     `json:"mode,omitempty"`
	Quads []NormRect `json:"quads,omitempty"`

	Rect    *NormRect `json:"rect,omitempty"`
	Content string    `json:"content,omitempty"`

	Strokes []Stroke `json:"strokes,omitempty"`
}

// Untimed reports whether the annotation carries the always-visible
// sentinel.
func (a *Annotation) Untimed() bool {
	return a.Start == 0 && a.End == 0
}

// Clone returns a deep copy. The engine stores clones so callers can keep
// mutating their own slices after SetAnnotations.
func (a *Annotation) Clone() Annotation {
	c := *a

	if a.Rect != nil {
		r := *a.Rect
		c.Rect = &r
	}

	if a.Quads != nil {
		c.Quads = make([]NormRect, len(a.Quads))
		copy(c.Quads, a.Quads)
	}

	if a.Strokes != nil {
		c.Strokes = make([]Stroke, len(a.Strokes))
		for i, s := range a.Strokes {
			cs := s
			cs.Points = make([]StrokePoint, len(s.Points))
			copy(cs.Points, s.Points)
			c.Strokes[i] = cs
		}
	}

	return c
}

func cloneAnnotations(annots []Annotation) []Annotation {
	out := make([]Annotation, len(annots))
	for i := range annots {
		out[i] = annots[i].Clone()
	}
	return out
}

// DecodeAnnotations reads a JSON array of annotations, the CLI input format.
func DecodeAnnotations(r io.Reader) ([]Annotation, error) {
	var annots []Annotation

	if err := json.NewDecoder(r).Decode(&annots); err != nil {
		return nil, fmt.Errorf("decoding annotations: %w", err)
	}

	return annots, nil
}
