package annotate

import (
	"image"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/gogpu/annotate/internal/blend"
	"github.com/gogpu/annotate/internal/raster"
)

// deviceTolerance is the flattening tolerance in device pixels.
const deviceTolerance = 0.25

// painter draws document-space shapes onto a device-space target.
// m maps document coordinates to dst pixels; dst may be a sub-image, in
// which case drawing is clipped to its bounds.
type painter struct {
	dst       *image.RGBA
	m         Matrix
	tolerance float64
}

func (p *painter) contours(path *Path) []raster.Contour {
	if path == nil || path.IsEmpty() {
		return nil
	}
	polys := path.Transform(p.m).Flatten(p.tolerance)
	out := make([]raster.Contour, 0, len(polys))
	for _, poly := range polys {
		if len(poly.Points) < 3 {
			continue
		}
		c := make(raster.Contour, len(poly.Points))
		for i, pt := range poly.Points {
			c[i] = f64.Vec2{pt.X, pt.Y}
		}
		out = append(out, c)
	}
	return out
}

// fillPath fills path with c using the non-zero rule.
func (p *painter) fillPath(path *Path, c RGBA, mode blend.Mode) {
	if c.A <= 0 {
		return
	}
	if cs := p.contours(path); len(cs) > 0 {
		raster.Fill(p.dst, cs, c.Premultiplied(), mode)
	}
}

// fillPathImage fills path with the pixels of src, which is already in
// device space.
func (p *painter) fillPathImage(path *Path, src *image.RGBA, mode blend.Mode) {
	cs := p.contours(path)
	if len(cs) == 0 {
		return
	}
	mask := raster.Mask(cs, p.dst.Bounds().Intersect(src.Bounds()))
	if mask == nil {
		return
	}
	masked := image.NewRGBA(mask.Bounds())
	xdraw.DrawMask(masked, masked.Bounds(), src, masked.Bounds().Min, mask, mask.Bounds().Min, xdraw.Src)
	raster.CompositeImage(p.dst, masked, mode)
}

// drawImage draws the sr part of src, placed in document space by toDoc.
func (p *painter) drawImage(src image.Image, sr image.Rectangle, toDoc Matrix, interp xdraw.Interpolator, mode blend.Mode) {
	raster.DrawImage(p.dst, aff3(toDoc.Then(p.m)), src, sr, interp, mode)
}

// clear erases the whole target.
func (p *painter) clear() {
	raster.Clear(p.dst, p.dst.Bounds())
}

func aff3(m Matrix) f64.Aff3 {
	return f64.Aff3{m.A, m.B, m.C, m.D, m.E, m.F}
}
