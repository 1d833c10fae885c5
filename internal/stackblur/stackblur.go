package stackblur

import "image"

// Backend blurs an image in place.
//
// rx and ry are the horizontal and vertical radii in pixels. A radius of 0
// leaves that axis untouched, and (1, 1) is a no-op. Implementations must
// produce the same pixels as Software for the same input.
type Backend interface {
	// Name returns a short identifier such as "software".
	Name() string

	// Blur blurs the pixels inside img.Bounds().
	Blur(img *image.RGBA, rx, ry int)
}

// Blur blurs img in place with the reference software backend.
func Blur(img *image.RGBA, rx, ry int) {
	Software{}.Blur(img, rx, ry)
}

// plan holds the shared state of one blur invocation.
type plan struct {
	img    *image.RGBA
	w, h   int
	rx, ry int
	buf    []int // intermediate result of the horizontal pass, 4 ints per pixel
}

// newPlan validates the arguments. It returns nil when there is nothing to do.
func newPlan(img *image.RGBA, rx, ry int) *plan {
	if img == nil || (rx == 1 && ry == 1) {
		return nil
	}
	rx, ry = clampRadius(rx), clampRadius(ry)
	if rx == 0 && ry == 0 {
		return nil
	}
	b := img.Bounds()
	if b.Empty() {
		return nil
	}
	return &plan{
		img: img,
		w:   b.Dx(),
		h:   b.Dy(),
		rx:  rx,
		ry:  ry,
		buf: make([]int, b.Dx()*b.Dy()*4),
	}
}

func clampRadius(r int) int {
	return max(0, min(r, MaxRadius))
}

// offset returns the Pix offset of the pixel at local coordinates (x, y).
func (p *plan) offset(x, y int) int {
	return p.img.PixOffset(p.img.Rect.Min.X+x, p.img.Rect.Min.Y+y)
}

// horizontal runs the horizontal pass over rows [y0, y1), reading the image
// and writing the intermediate buffer.
func (p *plan) horizontal(y0, y1 int) {
	pix := p.img.Pix
	r := p.rx
	w := p.w
	if r == 0 {
		for y := y0; y < y1; y++ {
			src := p.offset(0, y)
			dst := y * w * 4
			for i := 0; i < w*4; i++ {
				p.buf[dst+i] = int(pix[src+i])
			}
		}
		return
	}

	div := 2*r + 1
	mul, shg := mulTable[r], shgTable[r]
	stack := make([][4]int, div)
	wm := w - 1

	for y := y0; y < y1; y++ {
		var sum, inSum, outSum [4]int
		row := p.offset(0, y)

		for i := -r; i <= r; i++ {
			o := row + min(max(i, 0), wm)*4
			s := &stack[i+r]
			weight := r + 1 - abs(i)
			for c := range 4 {
				s[c] = int(pix[o+c])
				sum[c] += s[c] * weight
				if i > 0 {
					inSum[c] += s[c]
				} else {
					outSum[c] += s[c]
				}
			}
		}

		sp := r
		out := y * w * 4
		for x := 0; x < w; x++ {
			for c := range 4 {
				p.buf[out+c] = (sum[c] * mul) >> shg
				sum[c] -= outSum[c]
			}

			s := &stack[(sp-r+div)%div]
			o := row + min(x+r+1, wm)*4
			for c := range 4 {
				outSum[c] -= s[c]
				s[c] = int(pix[o+c])
				inSum[c] += s[c]
				sum[c] += inSum[c]
			}

			sp = (sp + 1) % div
			s = &stack[sp]
			for c := range 4 {
				outSum[c] += s[c]
				inSum[c] -= s[c]
			}
			out += 4
		}
	}
}

// vertical runs the vertical pass over columns [x0, x1), reading the
// intermediate buffer and writing the image.
func (p *plan) vertical(x0, x1 int) {
	pix := p.img.Pix
	r := p.ry
	w, h := p.w, p.h
	if r == 0 {
		for y := 0; y < h; y++ {
			dst := p.offset(0, y)
			for x := x0; x < x1; x++ {
				for c := range 4 {
					pix[dst+x*4+c] = uint8(p.buf[(y*w+x)*4+c])
				}
			}
		}
		return
	}

	div := 2*r + 1
	mul, shg := mulTable[r], shgTable[r]
	stack := make([][4]int, div)
	hm := h - 1

	for x := x0; x < x1; x++ {
		var sum, inSum, outSum [4]int

		for i := -r; i <= r; i++ {
			o := (min(max(i, 0), hm)*w + x) * 4
			s := &stack[i+r]
			weight := r + 1 - abs(i)
			for c := range 4 {
				s[c] = p.buf[o+c]
				sum[c] += s[c] * weight
				if i > 0 {
					inSum[c] += s[c]
				} else {
					outSum[c] += s[c]
				}
			}
		}

		sp := r
		for y := 0; y < h; y++ {
			dst := p.offset(x, y)
			for c := range 4 {
				pix[dst+c] = uint8(min((sum[c]*mul)>>shg, 255))
				sum[c] -= outSum[c]
			}

			s := &stack[(sp-r+div)%div]
			o := (min(y+r+1, hm)*w + x) * 4
			for c := range 4 {
				outSum[c] -= s[c]
				s[c] = p.buf[o+c]
				inSum[c] += s[c]
				sum[c] += inSum[c]
			}

			sp = (sp + 1) % div
			s = &stack[sp]
			for c := range 4 {
				outSum[c] += s[c]
				inSum[c] -= s[c]
			}
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Software is the reference single-threaded backend.
type Software struct{}

// Name implements Backend.
func (Software) Name() string { return "software" }

// Blur implements Backend.
func (Software) Blur(img *image.RGBA, rx, ry int) {
	p := newPlan(img, rx, ry)
	if p == nil {
		return
	}
	p.horizontal(0, p.h)
	p.vertical(0, p.w)
}
