package pdfoverlay

import (
	"context"
	"testing"
)

func newBoundEngine(t *testing.T) (*Binding, *stubDocument) {
	t.Helper()

	doc := threePageDoc()
	engine := newTestEngine(t, doc)

	return NewBinding(engine), doc
}

func TestBindingMountAppliesEverything(t *testing.T) {
	b, doc := newBoundEngine(t)
	defer b.Unmount()

	err := b.Mount(context.Background(), Props{
		URL:         "test.pdf",
		Page:        2,
		Scale:       2,
		Annotations: testAnnotations(),
		Time:        7.5,
	})
	if err != nil {
		t.Fatalf("Mount() error: %v", err)
	}

	if b.engine.Viewport() != (Viewport{Width: 80, Height: 80}) {
		t.Errorf("viewport = %+v, want page 2 at scale 2", b.engine.Viewport())
	}
	if doc.pages[1].renders == 0 {
		t.Error("page 2 never rendered")
	}
}

func TestBindingUpdateDiffs(t *testing.T) {
	b, doc := newBoundEngine(t)
	defer b.Unmount()

	props := Props{URL: "test.pdf", Page: 1, Scale: 1, Time: 0}

	if err := b.Mount(context.Background(), props); err != nil {
		t.Fatal(err)
	}

	before := doc.pages[0].renders

	// Unchanged props must not re-render.
	if err := b.Update(context.Background(), props); err != nil {
		t.Fatal(err)
	}
	if doc.pages[0].renders != before {
		t.Errorf("update with unchanged props re-rendered page (%d -> %d)",
			before, doc.pages[0].renders)
	}

	// Changing only the page renders the new page once, nothing else.
	props.Page = 3
	if err := b.Update(context.Background(), props); err != nil {
		t.Fatal(err)
	}
	if doc.pages[2].renders != 1 {
		t.Errorf("page 3 renders = %d, want 1", doc.pages[2].renders)
	}
	if doc.pages[0].renders != before {
		t.Error("page change must not re-render the old page")
	}
}

func TestBindingTimeOnlyUpdate(t *testing.T) {
	b, doc := newBoundEngine(t)
	defer b.Unmount()

	props := Props{URL: "test.pdf", Page: 1, Scale: 1, Annotations: testAnnotations()}

	if err := b.Mount(context.Background(), props); err != nil {
		t.Fatal(err)
	}
	before := doc.pages[0].renders

	props.Time = 2.5
	if err := b.Update(context.Background(), props); err != nil {
		t.Fatal(err)
	}

	if doc.pages[0].renders != before {
		t.Error("time change must only touch the overlay, not the page surface")
	}
}

func TestBindingUnmountExactlyOnce(t *testing.T) {
	b, doc := newBoundEngine(t)

	if err := b.Mount(context.Background(), Props{URL: "test.pdf"}); err != nil {
		t.Fatal(err)
	}

	b.Unmount()
	b.Unmount()

	if doc.closed != 1 {
		t.Errorf("document closed %d times, want 1", doc.closed)
	}

	if err := b.Update(context.Background(), Props{URL: "test.pdf", Page: 2}); err != nil {
		t.Errorf("Update after Unmount must be a no-op, got %v", err)
	}
}

func TestBindingUpdateBeforeMount(t *testing.T) {
	b, doc := newBoundEngine(t)
	defer b.Unmount()

	if err := b.Update(context.Background(), Props{URL: "test.pdf"}); err != nil {
		t.Fatal(err)
	}

	if doc.pages[0].renders != 0 {
		t.Error("Update before Mount must not touch the engine")
	}
}
