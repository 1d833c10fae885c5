// Command annotate demonstrates the annotate engine: it draws a set of
// annotations over an image and saves the result.
package main

import (
	"flag"
	"image"
	"image/color"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/gogpu/annotate"
)

func main() {
	var (
		input   = flag.String("input", "", "image to annotate (default: generated gradient)")
		output  = flag.String("output", "annotated.png", "output file (.png, .jpg, .bmp, .tiff, .pdf)")
		tools   = flag.String("tools", "", "TOML tool configuration")
		dpr     = flag.Float64("dpr", 1, "device pixel ratio of the input")
		rotate  = flag.Float64("rotate", 0, "rotate the canvas by this many degrees")
		crop    = flag.Bool("crop", false, "crop a 10% margin off every edge")
		quality = flag.Int("quality", 90, "JPEG quality")
		verbose = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	if *verbose {
		annotate.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg := annotate.DefaultToolConfig()
	if *tools != "" {
		var err error
		if cfg, err = annotate.LoadToolConfig(*tools); err != nil {
			log.Fatalf("Failed to load tools: %v", err)
		}
	}

	var base image.Image = gradient(800, 600)
	if *input != "" {
		img, err := annotate.LoadImage(*input)
		if err != nil {
			log.Fatalf("Failed to load image: %v", err)
		}
		base = img
	}

	doc := annotate.NewDocument(
		annotate.WithTool(annotate.NewTool(cfg)),
		annotate.WithBlurBackend(annotate.ParallelBlur(0)),
	)
	doc.SetBaseImage(base, *dpr)
	if doc.BaseImage() == nil {
		log.Fatal("Image has no pixels")
	}

	drawAnnotations(doc)

	if *crop {
		r := doc.CanvasRect()
		mx, my := r.Width()/10, r.Height()/10
		doc.CropCanvas(annotate.RectXYWH(mx, my, r.Width()-2*mx, r.Height()-2*my))
	}
	if *rotate != 0 {
		doc.ApplyTransform(annotate.Rotate(*rotate * math.Pi / 180))
	}

	if err := doc.SaveImage(*output, annotate.SaveOptions{Quality: *quality}); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	size := doc.ImageSize()
	log.Printf("Annotated image saved to %s (%dx%d, %d records)\n", *output, size.X, size.Y, doc.UndoDepth())
}

// drawAnnotations places one annotation of every kind, scaled to the
// canvas.
func drawAnnotations(doc *annotate.Document) {
	r := doc.CanvasRect()
	at := func(fx, fy float64) annotate.Point {
		return annotate.Pt(r.Min.X+r.Width()*fx, r.Min.Y+r.Height()*fy)
	}

	drag(doc, annotate.RectangleTool, 0, at(0.1, 0.1), at(0.35, 0.3))
	drag(doc, annotate.EllipseTool, annotate.Snap, at(0.45, 0.1), at(0.6, 0.25))
	drag(doc, annotate.ArrowTool, 0, at(0.7, 0.4), at(0.5, 0.25))
	drag(doc, annotate.LineTool, annotate.Snap, at(0.1, 0.9), at(0.4, 0.88))
	drag(doc, annotate.BlurTool, 0, at(0.1, 0.45), at(0.35, 0.6))
	drag(doc, annotate.PixelateTool, 0, at(0.45, 0.45), at(0.7, 0.6))
	drag(doc, annotate.HighlighterTool, annotate.Snap, at(0.1, 0.7), at(0.6, 0.7))
	drag(doc, annotate.FreehandTool, 0, at(0.75, 0.75), at(0.8, 0.8), at(0.85, 0.75), at(0.9, 0.8))

	doc.Tool().SetType(annotate.TextTool)
	doc.BeginItem(at(0.7, 0.1))
	doc.SelectedItem().SetText("annotate")
	doc.SelectedItem().CommitChanges()
	doc.DeselectItem()

	for _, p := range []annotate.Point{at(0.8, 0.3), at(0.9, 0.3)} {
		drag(doc, annotate.NumberTool, 0, p)
	}
	doc.Tool().ResetType()
}

// drag creates one annotation through the points.
func drag(doc *annotate.Document, typ annotate.ToolType, flags annotate.ContinueFlags, pts ...annotate.Point) {
	doc.Tool().SetType(typ)
	doc.BeginItem(pts[0])
	for _, p := range pts[1:] {
		doc.ContinueItem(p, flags)
	}
	doc.FinishItem()
	doc.DeselectItem()
}

// gradient returns a background image for running without input.
func gradient(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		t := float64(y) / float64(h)
		c := color.RGBA{
			R: uint8(255 * (0.1 + t*0.4)),
			G: uint8(255 * (0.2 + t*0.3)),
			B: uint8(255 * (0.4 + t*0.2)),
			A: 255,
		}
		for x := range w {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}
