package pdfoverlay

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFilterActiveUntimedSentinel(t *testing.T) {
	annots := []Annotation{
		{ID: "hl-1", Type: Highlight, Page: 1},
	}

	for _, tm := range []float64{0, 0.001, 5, 1000} {
		active := FilterActive(annots, tm)

		if len(active) != 1 {
			t.Fatalf("t=%v: got %d active, want 1", tm, len(active))
		}
		if active[0].Progress != 1 {
			t.Errorf("t=%v: progress = %v, want 1", tm, active[0].Progress)
		}
	}
}

func TestFilterActiveWindow(t *testing.T) {
	annots := []Annotation{
		{ID: "ink-1", Type: Ink, Page: 1, Start: 5, End: 10},
	}

	tests := []struct {
		time     float64
		included bool
		progress float64
	}{
		{4.999, false, 0},
		{5, true, 0},
		{7.5, true, 0.5},
		{10, true, 1},
		{10.001, false, 0},
	}

	for _, tt := range tests {
		active := FilterActive(annots, tt.time)

		if !tt.included {
			if len(active) != 0 {
				t.Errorf("t=%v: got %d active, want 0", tt.time, len(active))
			}
			continue
		}

		if len(active) != 1 {
			t.Fatalf("t=%v: got %d active, want 1", tt.time, len(active))
		}
		if active[0].Progress != tt.progress {
			t.Errorf("t=%v: progress = %v, want %v", tt.time, active[0].Progress, tt.progress)
		}
	}
}

func TestFilterActiveInstantaneous(t *testing.T) {
	// A nonzero instantaneous annotation is visible from its instant onward.
	annots := []Annotation{
		{ID: "txt-1", Type: Text, Page: 1, Start: 3, End: 3},
	}

	if active := FilterActive(annots, 2.999); len(active) != 0 {
		t.Errorf("before the instant: got %d active, want 0", len(active))
	}

	for _, tm := range []float64{3, 3.5, 100} {
		active := FilterActive(annots, tm)

		if len(active) != 1 {
			t.Fatalf("t=%v: got %d active, want 1", tm, len(active))
		}
		if active[0].Progress != 1 {
			t.Errorf("t=%v: progress = %v, want 1", tm, active[0].Progress)
		}
	}
}

func TestFilterActiveDeterministic(t *testing.T) {
	annots := []Annotation{
		{ID: "a", Type: Highlight, Page: 1},
		{ID: "b", Type: Ink, Page: 1, Start: 1, End: 4},
		{ID: "c", Type: Text, Page: 2, Start: 2, End: 2},
	}

	first := FilterActive(annots, 2.5)
	second := FilterActive(annots, 2.5)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("identical inputs produced different output (-first +second):\n%s", diff)
	}
}

func TestGroupByKind(t *testing.T) {
	annots := []Annotation{
		{ID: "a", Type: Highlight, Page: 1},
		{ID: "b", Type: Ink, Page: 1},
		{ID: "c", Type: Highlight, Page: 1},
		{ID: "d", Type: Kind("sticker"), Page: 1},
	}

	byKind := groupByKind(FilterActive(annots, 0))

	if len(byKind[Highlight]) != 2 {
		t.Errorf("highlights = %d, want 2", len(byKind[Highlight]))
	}
	if len(byKind[Ink]) != 1 {
		t.Errorf("inks = %d, want 1", len(byKind[Ink]))
	}
	if _, ok := byKind[Kind("sticker")]; ok {
		t.Error("unknown kind should be dropped")
	}
	if byKind[Highlight][0].Annotation.ID != "a" || byKind[Highlight][1].Annotation.ID != "c" {
		t.Error("grouping must preserve annotation order")
	}
}
