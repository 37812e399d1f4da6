// Package pdfoverlay renders timed, positioned annotation overlays
// (highlights, text callouts, freehand ink) on top of rasterized PDF pages
// and keeps the overlay in sync with page, zoom and a playback timeline.
//
// Host applications call Init once to configure the document backend, then
// drive an Engine through its imperative surface: LoadDocument, SetPage,
// SetScale, SetAnnotations, SetTime and Destroy. Frame returns the current
// composited image. Binding offers a declarative alternative for UI
// adapters.
package pdfoverlay
