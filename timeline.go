package pdfoverlay

// ActiveAnnotation pairs an annotation with its animation progress at a
// given time. Progress is in [0,1] and drives progressive reveal effects.
type ActiveAnnotation struct {
	Annotation *Annotation
	Progress   float64
}

// FilterActive computes the subset of annotations visible at time t, each
// with its progress. Untimed annotations (start == end == 0) are visible at
// every time with progress 1. A timed annotation is visible while
// start <= t <= end; an instantaneous one (start == end, nonzero) is visible
// from its instant onward.
//
// The function is pure: identical inputs always yield identical output, so
// redraws driven by it are idempotent.
func FilterActive(annots []Annotation, t float64) []ActiveAnnotation {
	active := []ActiveAnnotation{}

	for i := range annots {
		a := &annots[i]

		if a.Untimed() {
			active = append(active, ActiveAnnotation{Annotation: a, Progress: 1})
			continue
		}

		if a.End > a.Start {
			if t < a.Start || t > a.End {
				continue
			}
			p := (t - a.Start) / (a.End - a.Start)
			active = append(active, ActiveAnnotation{Annotation: a, Progress: clamp01(p)})
			continue
		}

		// Instantaneous: visible from its single instant onward.
		if t >= a.Start {
			active = append(active, ActiveAnnotation{Annotation: a, Progress: 1})
		}
	}

	return active
}

// groupByKind splits an active set into per-kind lists, preserving order.
// Unknown kinds are dropped.
func groupByKind(active []ActiveAnnotation) map[Kind][]ActiveAnnotation {
	byKind := map[Kind][]ActiveAnnotation{}

	for _, entry := range active {
		switch entry.Annotation.Type {
		case Highlight, Text, Ink:
			byKind[entry.Annotation.Type] = append(byKind[entry.Annotation.Type], entry)
		}
	}

	return byKind
}
