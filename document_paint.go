package annotate

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/annotate/internal/blend"
	"github.com/gogpu/annotate/internal/raster"
	"github.com/gogpu/annotate/internal/region"
)

// Effect scales: a strength of 1 gives a radius or cell of this many
// logical units.
const (
	BlurScale     = 32
	PixelateScale = 32
)

// CanvasBaseImage returns the base image cropped and transformed to the
// canvas, at ImageSize. It is nil without a base image.
func (d *Document) CanvasBaseImage() *image.RGBA { return d.canvasBase }

// AnnotationsImage returns the annotations layer at ImageSize, repainting
// the pending repaint region first. The image is owned by the document and
// changes on later calls.
func (d *Document) AnnotationsImage() *image.RGBA {
	if d.annotations == nil {
		return nil
	}
	if !d.repaint.IsEmpty() {
		dev := d.deviceTransform()
		var area region.Region
		for _, r := range d.repaint.Rects() {
			area.Union(dev.MapRect(RectFromImage(r)).Aligned())
		}
		d.dropEffects(area.Rects())
		for _, r := range area.Rects() {
			r = r.Intersect(d.annotations.Bounds())
			if r.Empty() {
				continue
			}
			sub := d.annotations.SubImage(r).(*image.RGBA)
			raster.Clear(sub, r)
			d.paintAnnotations(sub, d.history.All())
		}
		d.repaint.Reset()
	}
	return d.annotations
}

// RenderToImage returns a new image with the annotations composed over the
// canvas base image.
func (d *Document) RenderToImage() *image.RGBA {
	out := image.NewRGBA(image.Rectangle{Max: d.imageSize})
	if d.canvasBase != nil {
		xdraw.Draw(out, out.Bounds(), d.canvasBase, image.Point{}, xdraw.Src)
	}
	if ann := d.AnnotationsImage(); ann != nil {
		xdraw.Draw(out, out.Bounds(), ann, image.Point{}, xdraw.Over)
	}
	return out
}

// renderTraits returns the traits to draw for rec: the edited copy while it
// is selected.
func (d *Document) renderTraits(rec *Record) *Traits {
	if rec == d.sel.selected && d.sel.temp != nil {
		return d.sel.temp.Traits()
	}
	return rec.Traits()
}

// paintAnnotations draws the visible records of rng onto dst, which is a
// device-space sub-image of the output.
func (d *Document) paintAnnotations(dst *image.RGBA, rng SubRange) {
	p := &painter{dst: dst, m: d.deviceTransform(), tolerance: deviceTolerance}
	area := RectFromImage(dst.Bounds())
	visible := func(rec *Record) (*Traits, bool) {
		if !d.history.ItemVisible(rec) {
			return nil, false
		}
		t := d.renderTraits(rec)
		if !CanBeVisible(t) || !p.m.MapRect(t.Visual.Rect).Intersects(area) {
			return nil, false
		}
		return t, true
	}

	// Highlighters darken the base image, so it must be underneath them.
	if d.canvasBase != nil {
		for _, rec := range rng.Items() {
			if t, ok := visible(rec); ok && t.Highlight != nil {
				r := p.m.MapRect(t.Visual.Rect).Aligned().Intersect(dst.Bounds())
				xdraw.Draw(dst, r, d.canvasBase, r.Min, xdraw.Src)
			}
		}
	}

	for i, rec := range rng.Items() {
		t, ok := visible(rec)
		if !ok {
			continue
		}
		mode := blend.SourceOver
		if t.Highlight != nil {
			mode = blend.Darken
		}
		if t.Shadow != nil && t.Shadow.Enabled {
			d.paintShadow(p, t)
		}
		switch f := t.Fill.(type) {
		case Brush:
			p.fillPath(t.Geometry.Path, f.Color, mode)
		case Blur, Pixelate:
			d.paintEffect(p, t, d.history.Range(rng.Begin(), i), mode)
		}
		if t.Stroke != nil {
			p.fillPath(t.Stroke.Path, t.Stroke.Pen.Color, mode)
		}
		if t.Text != nil {
			p.fillPath(t.Text.outline, t.Text.Color, mode)
		}
	}
}

// paintShadow draws the shadow of t, rendering it first if the fast
// derivation left it out.
func (d *Document) paintShadow(p *painter, t *Traits) {
	s := t.Shadow
	if s.image == nil {
		s.image = shadowImage(t, 1, d.blur)
		s.imageScale = 1
	}
	if s.image == nil {
		return
	}
	vis := t.Visual.Rect
	toDoc := Scale(1/s.imageScale, 1/s.imageScale).Then(Translate(vis.Min.X, vis.Min.Y))
	p.drawImage(s.image, s.image.Bounds(), toDoc, xdraw.BiLinear, blend.SourceOver)
}

// Effect radii below these are raised to them. A blur radius of 1 leaves
// the image unchanged.
const (
	minBlurRadius   = 2
	minPixelateCell = 2
)

// effectImage is the filtered content under an effect record, covering
// bounds in device space. It stays valid until a repaint overlaps bounds.
type effectImage struct {
	bounds image.Rectangle
	fill   Fill
	dpr    float64
	img    *image.RGBA
}

// paintEffect fills the geometry of a blur or pixelate record with a
// filtered copy of everything painted below it. The filtered copy is
// rendered once over the whole geometry bounds and reused until
// dropEffects discards it.
func (d *Document) paintEffect(p *painter, t *Traits, below SubRange, mode blend.Mode) {
	bounds := p.m.MapRect(GeometryPathBounds(t)).Aligned().Intersect(image.Rectangle{Max: d.imageSize})
	if bounds.Empty() {
		return
	}
	e := t.effect
	if e == nil || e.bounds != bounds || e.fill != t.Fill || e.dpr != d.imageDPR {
		img := d.rangeImage(bounds, below)
		switch f := t.Fill.(type) {
		case Blur:
			r := max(minBlurRadius, int(math.Round(f.Strength*BlurScale*d.imageDPR)))
			d.blur.Blur(img, r, r)
		case Pixelate:
			pixelate(img, max(minPixelateCell, int(math.Round(f.Strength*PixelateScale*d.imageDPR))))
		}
		e = &effectImage{bounds: bounds, fill: t.Fill, dpr: d.imageDPR, img: img}
		t.effect = e
	}
	p.fillPathImage(t.Geometry.Path, e.img, mode)
}

// dropEffects discards the effect images overlapping any of the device
// rects, since the content below them is about to change.
func (d *Document) dropEffects(rects []image.Rectangle) {
	drop := func(t *Traits) {
		if t == nil || t.effect == nil {
			return
		}
		for _, r := range rects {
			if t.effect.bounds.Overlaps(r) {
				t.effect = nil
				return
			}
		}
	}
	for _, rec := range d.history.UndoList() {
		drop(rec.Traits())
	}
	for _, rec := range d.history.RedoList() {
		drop(rec.Traits())
	}
	if d.sel.temp != nil {
		drop(d.sel.temp.Traits())
	}
}

// rangeImage renders the canvas base image with the records of rng over it
// into the device rectangle r.
func (d *Document) rangeImage(r image.Rectangle, rng SubRange) *image.RGBA {
	img := image.NewRGBA(r)
	if d.canvasBase != nil {
		xdraw.Draw(img, r, d.canvasBase, r.Min, xdraw.Src)
	}
	d.paintAnnotations(img, rng)
	return img
}

// pixelate replaces img with square cells of its average color.
func pixelate(img *image.RGBA, cell int) {
	b := img.Bounds()
	w := (b.Dx() + cell - 1) / cell
	h := (b.Dy() + cell - 1) / cell
	small := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.BiLinear.Scale(small, small.Bounds(), img, b, xdraw.Src, nil)
	xdraw.NearestNeighbor.Scale(img, b, small, small.Bounds(), xdraw.Src, nil)
}
