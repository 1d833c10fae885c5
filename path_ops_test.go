package annotate

import (
	"math"
	"testing"
)

func square(x, y, size float64) *Path {
	p := NewPath()
	p.Rectangle(x, y, size, size)
	return p
}

func TestPathBoundingBox(t *testing.T) {
	tests := []struct {
		name string
		path func() *Path
		want Rect
	}{
		{"empty", NewPath, Rect{}},
		{
			"single point",
			func() *Path {
				p := NewPath()
				p.MoveTo(3, 4)
				return p
			},
			RectFromPoints(Pt(3, 4), Pt(3, 4)),
		},
		{"rectangle", func() *Path { return square(10, 20, 5) }, RectXYWH(10, 20, 5, 5)},
		{
			"ellipse",
			func() *Path {
				p := NewPath()
				p.Ellipse(50, 50, 20, 10)
				return p
			},
			RectFromPoints(Pt(30, 40), Pt(70, 60)),
		},
		{
			"quad bulges past its end points",
			func() *Path {
				p := NewPath()
				p.MoveTo(0, 0)
				p.QuadraticTo(5, 10, 10, 0)
				return p
			},
			RectFromPoints(Pt(0, 0), Pt(10, 5)),
		},
		{
			"trailing move counts",
			func() *Path {
				p := square(0, 0, 10)
				p.MoveTo(20, 5)
				return p
			},
			RectFromPoints(Pt(0, 0), Pt(20, 10)),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.path().BoundingBox()
			if math.Abs(got.Min.X-tt.want.Min.X) > 1e-9 || math.Abs(got.Min.Y-tt.want.Min.Y) > 1e-9 ||
				math.Abs(got.Max.X-tt.want.Max.X) > 1e-9 || math.Abs(got.Max.Y-tt.want.Max.Y) > 1e-9 {
				t.Errorf("BoundingBox() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPathFlatten(t *testing.T) {
	p := square(0, 0, 10)
	p.MoveTo(20, 0)
	p.LineTo(30, 0)

	polys := p.Flatten(0.1)
	if len(polys) != 2 {
		t.Fatalf("Flatten() returned %d polygons, want 2", len(polys))
	}
	if !polys[0].Closed || len(polys[0].Points) != 4 {
		t.Errorf("square polygon = %+v, want 4 closed points", polys[0])
	}
	if polys[1].Closed || len(polys[1].Points) != 2 {
		t.Errorf("line polygon = %+v, want 2 open points", polys[1])
	}

	circle := NewPath()
	circle.Ellipse(0, 0, 100, 100)
	for _, tol := range []float64{1, 0.1} {
		for _, pt := range circle.Flatten(tol)[0].Points {
			if d := math.Abs(pt.Length() - 100); d > 0.1 {
				t.Errorf("tolerance %v: point %v is %v off the circle", tol, pt, d)
			}
		}
	}
	if coarse, fine := len(circle.Flatten(1)[0].Points), len(circle.Flatten(0.1)[0].Points); coarse >= fine {
		t.Errorf("coarse flattening has %d points, fine has %d", coarse, fine)
	}
}

func TestPathContains(t *testing.T) {
	donut := square(0, 0, 30)
	// The inner square runs the other way, so it is a hole under non-zero.
	donut.MoveTo(10, 10)
	donut.LineTo(10, 20)
	donut.LineTo(20, 20)
	donut.LineTo(20, 10)
	donut.Close()

	tests := []struct {
		pt   Point
		want bool
	}{
		{Pt(5, 5), true},
		{Pt(15, 15), false},
		{Pt(25, 15), true},
		{Pt(35, 15), false},
		{Pt(-1, -1), false},
	}
	for _, tt := range tests {
		if got := donut.Contains(tt.pt); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.pt, got, tt.want)
		}
	}

	overlap := square(0, 0, 10)
	overlap.Append(square(5, 5, 10))
	if !overlap.Contains(Pt(7, 7)) {
		t.Error("overlapping squares of the same orientation must not cancel")
	}
}

func TestPathIntersects(t *testing.T) {
	ring := NewPath()
	ring.Ellipse(0, 0, 10, 10)

	tests := []struct {
		name string
		o    *Path
		want bool
	}{
		{"inside", square(-2, -2, 4), true},
		{"contains", square(-20, -20, 40), true},
		{"crossing edge", square(8, -1, 4), true},
		{"apart", square(20, 20, 4), false},
		{"bounding boxes overlap only", square(8, 8, 4), false},
		{"empty", NewPath(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ring.Intersects(tt.o); got != tt.want {
				t.Errorf("Intersects() = %v, want %v", got, tt.want)
			}
			if got := tt.o.Intersects(ring); got != tt.want {
				t.Errorf("reverse Intersects() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPathEditing(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.QuadraticTo(10, 10, 0, 10)

	p.SetElementPoint(1, Pt(20, 0))
	if got, want := p.ElementPoint(1), Pt(20, 0); got != want {
		t.Errorf("ElementPoint(1) = %v, want %v", got, want)
	}
	if got, want := p.CurrentPoint(), Pt(0, 10); got != want {
		t.Errorf("CurrentPoint() = %v, want %v", got, want)
	}

	c := p.Clone()
	p.Translate(Pt(5, 5))
	if got, want := p.ElementPoint(0), Pt(5, 5); got != want {
		t.Errorf("translated start = %v, want %v", got, want)
	}
	if c.Equal(p) {
		t.Error("clone changed with the original")
	}
	if got, want := c.Transform(Translate(5, 5)), p; !got.Equal(want) {
		t.Error("Transform(Translate) differs from Translate")
	}
}
