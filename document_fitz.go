package pdfoverlay

import (
	"context"
	"fmt"
	"image/draw"
	"io"
	"math"
	"net/http"
	"os"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// FitzService opens PDFs with MuPDF (go-fitz). URLs with an http or https
// scheme are fetched with Client; anything else is treated as a local path.
type FitzService struct {
	Client *http.Client
}

// Open fetches and parses the document. Failures are wrapped in a LoadError.
func (s *FitzService) Open(ctx context.Context, url string) (Document, error) {
	data, err := s.fetch(ctx, url)
	if err != nil {
		return nil, &LoadError{URL: url, Err: err}
	}

	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, &LoadError{URL: url, Err: err}
	}

	return &fitzDocument{doc: doc}, nil
}

func (s *FitzService) fetch(ctx context.Context, url string) ([]byte, error) {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return os.ReadFile(url)
	}

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	res, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", res.Status)
	}

	return io.ReadAll(res.Body)
}

type fitzDocument struct {
	doc *fitz.Document
}

func (d *fitzDocument) PageCount() int {
	return d.doc.NumPage()
}

func (d *fitzDocument) Page(n int) (Page, error) {
	count := d.doc.NumPage()

	if n < 1 || n > count {
		return nil, &PageRangeError{Page: n, PageCount: count}
	}

	// fitz page bounds are reported at 72 dpi.
	bound, err := d.doc.Bound(n - 1)
	if err != nil {
		return nil, err
	}

	return &fitzPage{doc: d.doc, index: n - 1, baseW: bound.Dx(), baseH: bound.Dy()}, nil
}

func (d *fitzDocument) Close() error {
	return d.doc.Close()
}

type fitzPage struct {
	doc   *fitz.Document
	index int
	baseW int
	baseH int
}

func (p *fitzPage) Viewport(scale float64) Viewport {
	return Viewport{
		Width:  int(math.Round(float64(p.baseW) * scale)),
		Height: int(math.Round(float64(p.baseH) * scale)),
	}
}

func (p *fitzPage) RenderTo(dst draw.Image, vp Viewport) error {
	dpi := 72.0
	if p.baseW > 0 {
		dpi = 72.0 * float64(vp.Width) / float64(p.baseW)
	}

	img, err := p.doc.ImageDPI(p.index, dpi)
	if err != nil {
		return err
	}

	draw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, draw.Src)

	return nil
}
