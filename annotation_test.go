package pdfoverlay

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const wireSample = `[
  { "id":"hl-1","type":"highlight","page":1,"start":0,"end":0,
    "mode":"quads","quads":[{"x":0.1,"y":0.15,"w":0.6,"h":0.03}],
    "style":{"color":"rgba(255,255,0,0.3)"} },
  { "id":"txt-1","type":"text","page":2,"start":4,"end":9.5,
    "rect":{"x":0.2,"y":0.3,"w":0.25,"h":0.1},"content":"see figure 2",
    "style":{"background":"#ffffff","textColor":"#222222"} },
  { "id":"ink-1","type":"ink","page":1,"start":1,"end":3,
    "strokes":[{"color":"#ff0000","size":3,
      "points":[{"x":0.1,"y":0.1,"t":0},{"x":0.2,"y":0.15,"t":0.5},{"x":0.3,"y":0.1,"t":1.2}]}],
    "style":{} }
]`

func TestDecodeAnnotations(t *testing.T) {
	annots, err := DecodeAnnotations(strings.NewReader(wireSample))
	if err != nil {
		t.Fatalf("DecodeAnnotations() error: %v", err)
	}

	if len(annots) != 3 {
		t.Fatalf("got %d annotations, want 3", len(annots))
	}

	hl := annots[0]
	if hl.Type != Highlight || hl.Mode != "quads" || len(hl.Quads) != 1 {
		t.Errorf("highlight decoded as %+v", hl)
	}
	if hl.Quads[0] != (NormRect{X: 0.1, Y: 0.15, W: 0.6, H: 0.03}) {
		t.Errorf("quad = %+v", hl.Quads[0])
	}
	if !hl.Untimed() {
		t.Error("start==end==0 must decode as untimed")
	}

	txt := annots[1]
	if txt.Content != "see figure 2" || txt.Rect.W != 0.25 {
		t.Errorf("text decoded as %+v", txt)
	}
	if txt.Style.TextColor != "#222222" {
		t.Errorf("textColor = %q", txt.Style.TextColor)
	}

	ink := annots[2]
	if len(ink.Strokes) != 1 || len(ink.Strokes[0].Points) != 3 {
		t.Fatalf("ink decoded as %+v", ink)
	}
	if ink.Strokes[0].Points[2].T != 1.2 {
		t.Errorf("point t = %v, want 1.2", ink.Strokes[0].Points[2].T)
	}
}

func TestDecodeAnnotationsBadInput(t *testing.T) {
	if _, err := DecodeAnnotations(strings.NewReader(`{"not":"an array"}`)); err == nil {
		t.Error("expected error for non-array input")
	}
}

func TestAnnotationClone(t *testing.T) {
	orig := Annotation{
		ID:    "ink-1",
		Type:  Ink,
		Page:  1,
		Rect:  &NormRect{X: 0.1},
		Quads: []NormRect{{X: 0.1}},
		Strokes: []Stroke{
			{Size: 2, Points: []StrokePoint{{X: 0.1, Y: 0.2, T: 0}}},
		},
	}

	clone := orig.Clone()

	if diff := cmp.Diff(orig, clone); diff != "" {
		t.Fatalf("clone differs (-orig +clone):\n%s", diff)
	}

	clone.Strokes[0].Points[0].X = 0.9
	clone.Quads[0].X = 0.9
	clone.Rect.X = 0.9

	if orig.Strokes[0].Points[0].X != 0.1 || orig.Quads[0].X != 0.1 || orig.Rect.X != 0.1 {
		t.Error("mutating the clone leaked into the original")
	}
}
