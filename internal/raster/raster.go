// Package raster turns flattened outlines into coverage masks and composes
// them onto premultiplied RGBA targets.
//
// Coverage is computed by golang.org/x/image/vector, which accumulates
// signed area. Overlapping contours of the same orientation saturate
// instead of cancelling, so callers emit every contour positively oriented.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/math/f64"
	"golang.org/x/image/vector"

	"github.com/gogpu/annotate/internal/blend"
)

// Contour is a closed polygon in device pixel coordinates.
type Contour []f64.Vec2

// Bounds returns the integer pixel rectangle covering all contours.
func Bounds(contours []Contour) image.Rectangle {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range contours {
		for _, p := range c {
			minX, maxX = math.Min(minX, p[0]), math.Max(maxX, p[0])
			minY, maxY = math.Min(minY, p[1]), math.Max(maxY, p[1])
		}
	}
	if minX > maxX || minY > maxY {
		return image.Rectangle{}
	}
	return image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	)
}

// Mask rasterizes contours into an alpha mask covering bounds.
// It returns nil when bounds is empty or no contour touches it.
func Mask(contours []Contour, bounds image.Rectangle) *image.Alpha {
	bounds = bounds.Intersect(Bounds(contours))
	if bounds.Empty() {
		return nil
	}
	w, h := bounds.Dx(), bounds.Dy()
	ox, oy := float64(bounds.Min.X), float64(bounds.Min.Y)

	z := vector.NewRasterizer(w, h)
	z.DrawOp = draw.Src
	for _, c := range contours {
		if len(c) < 3 {
			continue
		}
		z.MoveTo(float32(c[0][0]-ox), float32(c[0][1]-oy))
		for _, p := range c[1:] {
			z.LineTo(float32(p[0]-ox), float32(p[1]-oy))
		}
		z.ClosePath()
	}

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	mask.Rect = bounds
	return mask
}

// Fill paints contours onto dst with the premultiplied color c.
func Fill(dst *image.RGBA, contours []Contour, c color.RGBA, mode blend.Mode) {
	if mask := Mask(contours, dst.Bounds()); mask != nil {
		Composite(dst, mask, c, mode)
	}
}

// Composite blends c through mask onto dst. Only the overlap of the two
// rectangles is touched.
func Composite(dst *image.RGBA, mask *image.Alpha, c color.RGBA, mode blend.Mode) {
	r := dst.Bounds().Intersect(mask.Bounds())
	if r.Empty() {
		return
	}
	fn := blend.Lookup(mode)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		mo := mask.PixOffset(r.Min.X, y)
		do := dst.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x, mo, do = x+1, mo+1, do+4 {
			m := mask.Pix[mo]
			if m == 0 {
				continue
			}
			sr, sg, sb, sa := c.R, c.G, c.B, c.A
			if m != 255 {
				sr = blend.MulDiv255(sr, m)
				sg = blend.MulDiv255(sg, m)
				sb = blend.MulDiv255(sb, m)
				sa = blend.MulDiv255(sa, m)
			}
			d := dst.Pix[do : do+4 : do+4]
			d[0], d[1], d[2], d[3] = fn(sr, sg, sb, sa, d[0], d[1], d[2], d[3])
		}
	}
}

// CompositeImage blends src onto dst where their rectangles overlap.
// Both images share one coordinate space.
func CompositeImage(dst, src *image.RGBA, mode blend.Mode) {
	r := dst.Bounds().Intersect(src.Bounds())
	if r.Empty() {
		return
	}
	fn := blend.Lookup(mode)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		so := src.PixOffset(r.Min.X, y)
		do := dst.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x, so, do = x+1, so+4, do+4 {
			s := src.Pix[so : so+4 : so+4]
			if s[3] == 0 && mode != blend.Source && mode != blend.Clear {
				continue
			}
			d := dst.Pix[do : do+4 : do+4]
			d[0], d[1], d[2], d[3] = fn(s[0], s[1], s[2], s[3], d[0], d[1], d[2], d[3])
		}
	}
}

// Clear zeroes the pixels of dst inside r.
func Clear(dst *image.RGBA, r image.Rectangle) {
	r = r.Intersect(dst.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := dst.Pix[dst.PixOffset(r.Min.X, y):dst.PixOffset(r.Max.X, y)]
		clear(row)
	}
}
