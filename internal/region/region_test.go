package region

import (
	"image"
	"math/rand"
	"testing"
)

func TestUnionDisjoint(t *testing.T) {
	var g Region
	g.Union(image.Rect(0, 0, 10, 10))
	g.Union(image.Rect(5, 5, 15, 15))
	g.Union(image.Rect(2, 2, 4, 4)) // fully inside

	if got, want := g.Area(), 100+100-25; got != want {
		t.Errorf("Area = %d, want %d", got, want)
	}
	if got, want := g.Bounds(), image.Rect(0, 0, 15, 15); got != want {
		t.Errorf("Bounds = %v, want %v", got, want)
	}
	assertDisjoint(t, &g)
}

func TestUnionEmpty(t *testing.T) {
	var g Region
	g.Union(image.Rectangle{})
	g.Union(image.Rect(3, 3, 3, 8))
	if !g.IsEmpty() {
		t.Errorf("region holds %d rects after empty unions", len(g.Rects()))
	}
}

func TestIntersects(t *testing.T) {
	var g Region
	g.Union(image.Rect(0, 0, 4, 4))
	g.Union(image.Rect(10, 10, 14, 14))

	tests := []struct {
		r    image.Rectangle
		want bool
	}{
		{image.Rect(2, 2, 3, 3), true},
		{image.Rect(5, 5, 9, 9), false}, // inside bounds, between rects
		{image.Rect(13, 13, 20, 20), true},
		{image.Rect(4, 0, 8, 4), false}, // touching edge only
	}
	for _, tt := range tests {
		if got := g.Intersects(tt.r); got != tt.want {
			t.Errorf("Intersects(%v) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestReset(t *testing.T) {
	var g Region
	g.Union(image.Rect(0, 0, 4, 4))
	g.Reset()
	if !g.IsEmpty() || !g.Bounds().Empty() {
		t.Error("Reset left content behind")
	}
}

func TestUnionRandomMatchesBitmap(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const size = 64
	var g Region
	var grid [size][size]bool

	for range 40 {
		x0, y0 := rng.Intn(size), rng.Intn(size)
		r := image.Rect(x0, y0, x0+rng.Intn(20), y0+rng.Intn(20)).Intersect(image.Rect(0, 0, size, size))
		g.Union(r)
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				grid[y][x] = true
			}
		}
	}

	want := 0
	for y := range size {
		for x := range size {
			if grid[y][x] {
				want++
			}
		}
	}
	if got := g.Area(); got != want {
		t.Errorf("Area = %d, want %d", got, want)
	}
	assertDisjoint(t, &g)
}

func assertDisjoint(t *testing.T, g *Region) {
	t.Helper()
	rs := g.Rects()
	for i := range rs {
		for j := i + 1; j < len(rs); j++ {
			if rs[i].Overlaps(rs[j]) {
				t.Fatalf("rects %v and %v overlap", rs[i], rs[j])
			}
		}
	}
}
