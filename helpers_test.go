package annotate

import (
	"image"
	"image/color"
	"testing"
)

var gray = color.RGBA{R: 200, G: 200, B: 200, A: 255}

// uniformImage returns an opaque image filled with c.
func uniformImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

// checkerImage returns a black and white checkerboard with 1 pixel cells.
func checkerImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			v := uint8(0)
			if (x+y)%2 == 0 {
				v = 255
			}
			img.SetRGBA(x, y, color.RGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return img
}

func cloneImage(img *image.RGBA) *image.RGBA {
	out := image.NewRGBA(img.Rect)
	copy(out.Pix, img.Pix)
	return out
}

// maxDiff returns the largest channel difference between two images of the
// same size.
func maxDiff(t *testing.T, a, b *image.RGBA) int {
	t.Helper()
	if a.Bounds() != b.Bounds() {
		t.Fatalf("image bounds %v and %v differ", a.Bounds(), b.Bounds())
	}
	d := 0
	for i := range a.Pix {
		v := int(a.Pix[i]) - int(b.Pix[i])
		d = max(d, v, -v)
	}
	return d
}

// newTestDocument returns a document over a gray w x h image.
func newTestDocument(w, h int) *Document {
	doc := NewDocument(WithBlurBackend(SoftwareBlur()))
	doc.SetBaseImage(uniformImage(w, h, gray), 1)
	return doc
}

// drag creates an annotation through pts with tool typ and returns it.
// The new record stays selected.
func drag(doc *Document, typ ToolType, flags ContinueFlags, pts ...Point) *Record {
	doc.Tool().SetType(typ)
	doc.BeginItem(pts[0])
	for _, p := range pts[1:] {
		doc.ContinueItem(p, flags)
	}
	doc.FinishItem()
	return doc.CurrentItem()
}

// eventCounter counts document notifications by kind.
type eventCounter struct {
	counts  map[EventKind]int
	repaint []RepaintTypes
}

func countEvents(doc *Document) *eventCounter {
	c := &eventCounter{counts: make(map[EventKind]int)}
	doc.Subscribe(func(e Event) {
		c.counts[e.Kind]++
		if e.Kind == RepaintNeeded {
			c.repaint = append(c.repaint, e.Repaint)
		}
	})
	return c
}

func (c *eventCounter) reset() {
	clear(c.counts)
	c.repaint = nil
}

func pixelAt(img *image.RGBA, x, y int) color.RGBA {
	return img.RGBAAt(x, y)
}
