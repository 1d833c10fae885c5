package annotate

import (
	"image"
	"math"
)

// Rect is an axis-aligned rectangle in document coordinates.
// Min is the top-left corner and Max the bottom-right corner.
// A Rect built with RectFromPoints is always normalized.
type Rect struct {
	Min, Max Point
}

// RectXYWH creates a rectangle from its top-left corner and size.
// Negative sizes are normalized.
func RectXYWH(x, y, w, h float64) Rect {
	return RectFromPoints(Pt(x, y), Pt(x+w, y+h))
}

// RectFromPoints returns the normalized rectangle spanned by two corners.
func RectFromPoints(a, b Point) Rect {
	return Rect{
		Min: Pt(math.Min(a.X, b.X), math.Min(a.Y, b.Y)),
		Max: Pt(math.Max(a.X, b.X), math.Max(a.Y, b.Y)),
	}
}

// RectFromImage converts an integer pixel rectangle.
func RectFromImage(r image.Rectangle) Rect {
	return Rect{
		Min: Pt(float64(r.Min.X), float64(r.Min.Y)),
		Max: Pt(float64(r.Max.X), float64(r.Max.Y)),
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the height of the rectangle.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Size returns the width and height as a vector.
func (r Rect) Size() Point { return r.Max.Sub(r.Min) }

// Center returns the center point.
func (r Rect) Center() Point {
	return Pt((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2)
}

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return !(r.Max.X > r.Min.X && r.Max.Y > r.Min.Y)
}

// IsNull reports whether both the width and the height are zero.
func (r Rect) IsNull() bool {
	return r.Max.X == r.Min.X && r.Max.Y == r.Min.Y
}

// Contains reports whether pt lies inside the rectangle (edges inclusive).
func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.Min.X && pt.X <= r.Max.X && pt.Y >= r.Min.Y && pt.Y <= r.Max.Y
}

// Union returns the smallest rectangle containing both rectangles.
// The zero Rect is ignored.
func (r Rect) Union(o Rect) Rect {
	if r == (Rect{}) {
		return o
	}
	if o == (Rect{}) {
		return r
	}
	return Rect{
		Min: Pt(math.Min(r.Min.X, o.Min.X), math.Min(r.Min.Y, o.Min.Y)),
		Max: Pt(math.Max(r.Max.X, o.Max.X), math.Max(r.Max.Y, o.Max.Y)),
	}
}

// Intersect returns the overlapping part of both rectangles.
// The result is the zero Rect when they do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	out := Rect{
		Min: Pt(math.Max(r.Min.X, o.Min.X), math.Max(r.Min.Y, o.Min.Y)),
		Max: Pt(math.Min(r.Max.X, o.Max.X), math.Min(r.Max.Y, o.Max.Y)),
	}
	if out.IsEmpty() {
		return Rect{}
	}
	return out
}

// Intersects reports whether both rectangles share a positive area.
func (r Rect) Intersects(o Rect) bool {
	return !r.IsEmpty() && !o.IsEmpty() &&
		r.Min.X < o.Max.X && o.Min.X < r.Max.X &&
		r.Min.Y < o.Max.Y && o.Min.Y < r.Max.Y
}

// Translate returns the rectangle moved by d.
func (r Rect) Translate(d Point) Rect {
	return Rect{Min: r.Min.Add(d), Max: r.Max.Add(d)}
}

// Adjusted returns the rectangle with each edge moved by the given amount.
func (r Rect) Adjusted(dx1, dy1, dx2, dy2 float64) Rect {
	return Rect{
		Min: Pt(r.Min.X+dx1, r.Min.Y+dy1),
		Max: Pt(r.Max.X+dx2, r.Max.Y+dy2),
	}
}

// Scale returns the rectangle with all coordinates multiplied by s.
func (r Rect) Scale(s float64) Rect {
	return Rect{Min: r.Min.Mul(s), Max: r.Max.Mul(s)}
}

// Aligned returns the smallest integer rectangle containing r.
func (r Rect) Aligned() image.Rectangle {
	return image.Rect(
		int(math.Floor(r.Min.X)), int(math.Floor(r.Min.Y)),
		int(math.Ceil(r.Max.X)), int(math.Ceil(r.Max.Y)),
	)
}
