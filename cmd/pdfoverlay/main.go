package main

import (
	"context"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/alecthomas/kong"
	"golang.org/x/sync/errgroup"

	"github.com/mgmeyers/pdfoverlay"
	"github.com/mgmeyers/pdfoverlay/pdfimport"
)

var args struct {
	Annotations string  `short:"a" type:"path" help:"Path to a JSON array of overlay annotations"`
	FromPDF     bool    `help:"Import annotations embedded in the input PDF"`
	Page        int     `short:"p" default:"1" help:"Page to render"`
	Scale       float64 `short:"s" default:"1.5" help:"Render scale"`
	Time        float64 `short:"t" default:"0" help:"Timeline position in seconds"`

	From float64 `help:"Sequence start time in seconds"`
	To   float64 `help:"Sequence end time in seconds. Enables sequence output when > From"`
	FPS  float64 `default:"10" help:"Frames per second for sequence output"`

	OutputPath   string `short:"o" type:"path" default:"." help:"Output directory"`
	BaseName     string `short:"n" default:"frame" help:"Base name of output images"`
	ImageFormat  string `short:"f" enum:"jpg,png" default:"png" help:"Image format. Supports png and jpg"`
	ImageQuality int    `short:"q" default:"90" help:"Image quality. Only applies to jpg images"`

	InputPDF string `arg:"" name:"input" help:"Path to input PDF" type:"path"`
}

func endIfErr(e error) {
	if e != nil {
		eLog := log.New(os.Stderr, "", 0)
		eLog.Fatalln(e)
	}
}

func loadAnnotations() []pdfoverlay.Annotation {
	annots := []pdfoverlay.Annotation{}

	if args.FromPDF {
		imported, err := pdfimport.Import(args.InputPDF)
		endIfErr(err)
		annots = append(annots, imported...)
	}

	if args.Annotations != "" {
		f, err := os.Open(args.Annotations)
		endIfErr(err)
		defer f.Close()

		decoded, err := pdfoverlay.DecodeAnnotations(f)
		endIfErr(err)
		annots = append(annots, decoded...)
	}

	res := pdfoverlay.Normalize(annots)

	for _, warning := range res.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s %s: %s\n", warning.ID, warning.Field, warning.Reason)
	}
	for _, skipped := range res.Skipped {
		fmt.Fprintf(os.Stderr, "skipped: %s %s: %s\n", skipped.ID, skipped.Field, skipped.Reason)
	}

	return res.Normalized
}

func main() {
	kong.Parse(&args)

	pdfoverlay.Init(pdfoverlay.RuntimeConfig{})

	engine, err := pdfoverlay.NewEngine(nil)
	endIfErr(err)
	defer engine.Destroy()

	ctx := context.Background()

	loaded, err := engine.LoadDocument(ctx, args.InputPDF)
	endIfErr(err)

	if args.Page != 1 {
		_, err = engine.SetPage(args.Page)
		endIfErr(err)
	}

	_, err = engine.SetScale(args.Scale)
	endIfErr(err)

	endIfErr(engine.SetAnnotations(loadAnnotations()))

	if _, err := os.Stat(args.OutputPath); os.IsNotExist(err) {
		endIfErr(os.MkdirAll(args.OutputPath, os.ModePerm))
	}

	if args.To > args.From {
		renderSequence(engine)
		return
	}

	endIfErr(engine.SetTime(args.Time))

	frame, err := engine.Frame()
	endIfErr(err)

	name := fmt.Sprintf("%s/%s.%s", args.OutputPath, args.BaseName, args.ImageFormat)
	endIfErr(writeImage(args.ImageFormat, frame, name, args.ImageQuality))

	fmt.Fprintf(os.Stderr, "rendered page %d/%d to %s\n", args.Page, loaded.PageCount, name)
}

// renderSequence walks the timeline at the configured frame rate. Rendering
// is sequential (the engine serializes page state anyway); encoding runs on
// an errgroup so slow PNG compression overlaps with the next frame.
func renderSequence(engine *pdfoverlay.Engine) {
	frames := int(math.Floor((args.To-args.From)*args.FPS)) + 1

	g := errgroup.Group{}
	g.SetLimit(4)

	for i := 0; i < frames; i++ {
		t := args.From + float64(i)/args.FPS

		endIfErr(engine.SetTime(t))

		frame, err := engine.Frame()
		endIfErr(err)

		name := fmt.Sprintf("%s/%s-%05d.%s", args.OutputPath, args.BaseName, i, args.ImageFormat)

		g.Go(func() error {
			return writeImage(args.ImageFormat, frame, name, args.ImageQuality)
		})
	}

	endIfErr(g.Wait())

	fmt.Fprintf(os.Stderr, "rendered %d frames to %s\n", frames, args.OutputPath)
}
