package pdfoverlay

import "fmt"

// Issue describes a data-quality problem found while normalizing raw
// annotation records.
type Issue struct {
	ID     string `json:"id"`
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// NormalizeResult is the normalization collaborator's output. Every entry in
// Normalized satisfies the data model invariants and can be handed to
// SetAnnotations as trusted input.
type NormalizeResult struct {
	Normalized []Annotation `json:"normalized"`
	Warnings   []Issue      `json:"warnings"`
	Skipped    []Issue      `json:"skipped"`
}

// Normalize repairs raw, possibly partial annotation records: coordinates
// are clamped to [0,1], missing ids and stroke sizes are defaulted and
// inverted time windows swapped (with a warning each); records with an
// unknown kind or an invalid page are skipped.
func Normalize(raw []Annotation) NormalizeResult {
	res := NormalizeResult{Normalized: []Annotation{}}

	for i, in := range raw {
		a := in.Clone()

		if a.ID == "" {
			a.ID = fmt.Sprintf("%s-%d", a.Type, i+1)
			res.Warnings = append(res.Warnings, Issue{
				ID: a.ID, Field: "id", Reason: "missing id, generated",
			})
		}

		switch a.Type {
		case Highlight, Text, Ink:
		default:
			res.Skipped = append(res.Skipped, Issue{
				ID: a.ID, Field: "type", Reason: fmt.Sprintf("unknown kind %q", a.Type),
			})
			continue
		}

		if a.Page < 1 {
			res.Skipped = append(res.Skipped, Issue{
				ID: a.ID, Field: "page", Reason: fmt.Sprintf("page %d < 1", a.Page),
			})
			continue
		}

		if a.End < a.Start {
			a.Start, a.End = a.End, a.Start
			res.Warnings = append(res.Warnings, Issue{
				ID: a.ID, Field: "start", Reason: "start > end, swapped",
			})
		}

		clampAnnotation(&a, a.ID, &res)
		res.Normalized = append(res.Normalized, a)
	}

	return res
}

func clampAnnotation(a *Annotation, id string, res *NormalizeResult) {
	warned := false

	warn := func(field string) {
		if warned {
			return
		}
		warned = true
		res.Warnings = append(res.Warnings, Issue{
			ID: id, Field: field, Reason: "coordinates clamped to [0,1]",
		})
	}

	clampRect := func(r *NormRect, field string) {
		c := NormRect{X: clamp01(r.X), Y: clamp01(r.Y), W: clamp01(r.W), H: clamp01(r.H)}
		if c != *r {
			warn(field)
		}
		*r = c
	}

	switch a.Type {
	case Highlight:
		if a.Mode == "" {
			a.Mode = "quads"
		}
		for i := range a.Quads {
			clampRect(&a.Quads[i], "quads")
		}

	case Text:
		if a.Rect == nil {
			res.Warnings = append(res.Warnings, Issue{
				ID: id, Field: "rect", Reason: "missing rect, text will not be drawn",
			})
		} else {
			clampRect(a.Rect, "rect")
		}

	case Ink:
		for i := range a.Strokes {
			stroke := &a.Strokes[i]

			if stroke.Size <= 0 {
				stroke.Size = 2
				res.Warnings = append(res.Warnings, Issue{
					ID: id, Field: "strokes", Reason: "non-positive stroke size, defaulted",
				})
			}

			for j := range stroke.Points {
				pt := &stroke.Points[j]
				cx, cy := clamp01(pt.X), clamp01(pt.Y)
				if cx != pt.X || cy != pt.Y {
					warn("strokes")
				}
				pt.X, pt.Y = cx, cy
			}
		}
	}
}
