package raster

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/gogpu/annotate/internal/blend"
)

// TransformBounds returns the pixel rectangle covered by sr after applying m.
func TransformBounds(m f64.Aff3, sr image.Rectangle) image.Rectangle {
	corners := [4][2]float64{
		{float64(sr.Min.X), float64(sr.Min.Y)},
		{float64(sr.Max.X), float64(sr.Min.Y)},
		{float64(sr.Max.X), float64(sr.Max.Y)},
		{float64(sr.Min.X), float64(sr.Max.Y)},
	}
	c := make(Contour, 0, 4)
	for _, p := range corners {
		c = append(c, f64.Vec2{
			m[0]*p[0] + m[1]*p[1] + m[2],
			m[3]*p[0] + m[4]*p[1] + m[5],
		})
	}
	return Bounds([]Contour{c})
}

// DrawImage draws the sr part of src onto dst through the src-to-dst
// transform m, composing with mode.
//
// A pure integer translation is copied without resampling.
func DrawImage(dst *image.RGBA, m f64.Aff3, src image.Image, sr image.Rectangle, interp xdraw.Interpolator, mode blend.Mode) {
	target := TransformBounds(m, sr).Intersect(dst.Bounds())
	if target.Empty() {
		return
	}

	// Over and Src map onto draw operators directly.
	if op, ok := drawOp(mode); ok {
		if dx, dy, ok := integerTranslation(m); ok {
			d := image.Pt(dx, dy)
			r := sr.Add(d).Intersect(target)
			xdraw.Draw(dst, r, src, r.Min.Sub(d), op)
			return
		}
		interp.Transform(dst, m, src, sr, op, nil)
		return
	}

	tmp := image.NewRGBA(target)
	interp.Transform(tmp, m, src, sr, xdraw.Src, nil)
	CompositeImage(dst, tmp, mode)
}

func drawOp(mode blend.Mode) (xdraw.Op, bool) {
	switch mode {
	case blend.SourceOver:
		return xdraw.Over, true
	case blend.Source:
		return xdraw.Src, true
	}
	return 0, false
}

func integerTranslation(m f64.Aff3) (dx, dy int, ok bool) {
	if m[0] != 1 || m[1] != 0 || m[3] != 0 || m[4] != 1 {
		return 0, 0, false
	}
	if m[2] != math.Trunc(m[2]) || m[5] != math.Trunc(m[5]) {
		return 0, 0, false
	}
	return int(m[2]), int(m[5]), true
}
