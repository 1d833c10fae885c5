package stackblur

import (
	"image"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// minStripe is the smallest number of rows or columns handed to one goroutine.
const minStripe = 16

// Parallel splits each pass into stripes of rows (horizontal pass) or
// columns (vertical pass) and runs them concurrently. Stripes never share
// output pixels, so the result is identical to Software.
//
// Blur returns only after every stripe has finished.
type Parallel struct {
	// Workers bounds the number of concurrent stripes.
	// Zero means runtime.GOMAXPROCS(0).
	Workers int
}

// Name implements Backend.
func (Parallel) Name() string { return "parallel" }

// Blur implements Backend.
func (b Parallel) Blur(img *image.RGBA, rx, ry int) {
	p := newPlan(img, rx, ry)
	if p == nil {
		return
	}
	workers := b.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	fanOut(p.h, workers, p.horizontal)
	fanOut(p.w, workers, p.vertical)
}

// fanOut calls fn over [0, n) split into contiguous stripes.
func fanOut(n, workers int, fn func(lo, hi int)) {
	stripe := max(minStripe, (n+workers-1)/workers)
	if stripe >= n {
		fn(0, n)
		return
	}
	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < n; lo += stripe {
		hi := min(lo+stripe, n)
		g.Go(func() error {
			fn(lo, hi)
			return nil
		})
	}
	_ = g.Wait()
}
