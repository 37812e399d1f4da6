package pdfoverlay

import (
	"context"
	"reflect"
)

// Props is the declarative description of what the engine should show. A
// UI-framework adapter sets these from its own reactive state and lets
// Binding translate changes into imperative engine calls.
type Props struct {
	URL         string
	Page        int
	Scale       float64
	Annotations []Annotation
	Time        float64
}

// Binding diffs successive Props against the last applied value and invokes
// only the operations whose inputs changed. Mount applies everything once,
// Unmount destroys the engine exactly once.
type Binding struct {
	engine    *Engine
	last      Props
	mounted   bool
	unmounted bool
}

// NewBinding wraps an engine. The binding does not take ownership until
// Mount.
func NewBinding(engine *Engine) *Binding {
	return &Binding{engine: engine}
}

// Mount applies the initial props. Calling Mount twice is an error in the
// adapter; the second call is ignored.
func (b *Binding) Mount(ctx context.Context, props Props) error {
	if b.mounted || b.unmounted {
		return nil
	}
	b.mounted = true

	return b.apply(ctx, props, true)
}

// Update applies only the operations whose props changed since the last
// Mount or Update.
func (b *Binding) Update(ctx context.Context, props Props) error {
	if !b.mounted || b.unmounted {
		return nil
	}

	return b.apply(ctx, props, false)
}

// Unmount destroys the engine. Safe to call more than once.
func (b *Binding) Unmount() {
	if b.unmounted {
		return
	}
	b.unmounted = true

	if b.mounted {
		b.engine.Destroy()
	}
}

func (b *Binding) apply(ctx context.Context, props Props, initial bool) error {
	if props.URL != "" && (initial || props.URL != b.last.URL) {
		if _, err := b.engine.LoadDocument(ctx, props.URL); err != nil {
			return err
		}
		// A fresh load resets the page; force the page prop through.
		b.last.Page = 1
	}

	if props.Page >= 1 && (initial || props.Page != b.last.Page) {
		if _, err := b.engine.SetPage(props.Page); err != nil {
			return err
		}
	}

	if props.Scale > 0 && (initial || props.Scale != b.last.Scale) {
		if _, err := b.engine.SetScale(props.Scale); err != nil {
			return err
		}
	}

	if initial || !reflect.DeepEqual(props.Annotations, b.last.Annotations) {
		if err := b.engine.SetAnnotations(props.Annotations); err != nil {
			return err
		}
	}

	if initial || props.Time != b.last.Time {
		if err := b.engine.SetTime(props.Time); err != nil {
			return err
		}
	}

	b.last = props

	return nil
}
