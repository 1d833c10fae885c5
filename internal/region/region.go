// Package region maintains a union of pixel rectangles as a set of
// non-overlapping rectangles.
//
// Painting each rectangle of a Region once touches every covered pixel
// exactly once, which matters for composition modes that are not
// idempotent such as SourceOver.
package region

import "image"

// Region is a union of disjoint rectangles. The zero value is empty.
type Region struct {
	rects  []image.Rectangle
	bounds image.Rectangle
}

// Union adds r to the region.
func (g *Region) Union(r image.Rectangle) {
	r = r.Canon()
	if r.Empty() {
		return
	}
	pending := []image.Rectangle{r}
	for _, have := range g.rects {
		if !have.Overlaps(r) {
			continue
		}
		next := pending[:0:0]
		for _, p := range pending {
			next = append(next, subtract(p, have)...)
		}
		pending = next
		if len(pending) == 0 {
			return
		}
	}
	g.rects = append(g.rects, pending...)
	g.bounds = g.bounds.Union(r)
}

// subtract returns the parts of r outside cut, as at most four rectangles.
func subtract(r, cut image.Rectangle) []image.Rectangle {
	in := r.Intersect(cut)
	if in.Empty() {
		return []image.Rectangle{r}
	}
	out := make([]image.Rectangle, 0, 4)
	if in.Min.Y > r.Min.Y {
		out = append(out, image.Rect(r.Min.X, r.Min.Y, r.Max.X, in.Min.Y))
	}
	if in.Max.Y < r.Max.Y {
		out = append(out, image.Rect(r.Min.X, in.Max.Y, r.Max.X, r.Max.Y))
	}
	if in.Min.X > r.Min.X {
		out = append(out, image.Rect(r.Min.X, in.Min.Y, in.Min.X, in.Max.Y))
	}
	if in.Max.X < r.Max.X {
		out = append(out, image.Rect(in.Max.X, in.Min.Y, r.Max.X, in.Max.Y))
	}
	return out
}

// Rects returns the disjoint rectangles of the region.
// The slice is owned by the region and must not be modified.
func (g *Region) Rects() []image.Rectangle { return g.rects }

// Bounds returns the smallest rectangle containing the region.
func (g *Region) Bounds() image.Rectangle { return g.bounds }

// IsEmpty reports whether the region covers no pixels.
func (g *Region) IsEmpty() bool { return len(g.rects) == 0 }

// Intersects reports whether r overlaps any rectangle of the region.
func (g *Region) Intersects(r image.Rectangle) bool {
	if !g.bounds.Overlaps(r) {
		return false
	}
	for _, have := range g.rects {
		if have.Overlaps(r) {
			return true
		}
	}
	return false
}

// Area returns the number of pixels covered.
func (g *Region) Area() int {
	n := 0
	for _, r := range g.rects {
		n += r.Dx() * r.Dy()
	}
	return n
}

// Reset empties the region, keeping its storage.
func (g *Region) Reset() {
	g.rects = g.rects[:0]
	g.bounds = image.Rectangle{}
}
