package stackblur

import (
	"image"
	"image/color"
	"math/rand"
)

func uniformImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func randomImage(w, h int, seed int64) *image.RGBA {
	rng := rand.New(rand.NewSource(seed))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			a := uint8(rng.Intn(256))
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(rng.Intn(int(a) + 1)),
				G: uint8(rng.Intn(int(a) + 1)),
				B: uint8(rng.Intn(int(a) + 1)),
				A: a,
			})
		}
	}
	return img
}

func cloneImage(img *image.RGBA) *image.RGBA {
	out := image.NewRGBA(img.Rect)
	copy(out.Pix, img.Pix)
	return out
}

// referenceBlur computes the stack blur by direct summation over a
// replicate-padded window. It shares the lookup tables but none of the
// sliding-window bookkeeping.
func referenceBlur(img *image.RGBA, rx, ry int) *image.RGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	clamp := func(v, hi int) int { return min(max(v, 0), hi) }

	tmp := make([]int, w*h*4)
	for y := range h {
		for x := range w {
			for c := range 4 {
				if rx == 0 {
					tmp[(y*w+x)*4+c] = int(img.Pix[img.PixOffset(b.Min.X+x, b.Min.Y+y)+c])
					continue
				}
				sum := 0
				for i := -rx; i <= rx; i++ {
					sx := clamp(x+i, w-1)
					sum += int(img.Pix[img.PixOffset(b.Min.X+sx, b.Min.Y+y)+c]) * (rx + 1 - abs(i))
				}
				tmp[(y*w+x)*4+c] = (sum * mulTable[rx]) >> shgTable[rx]
			}
		}
	}

	out := cloneImage(img)
	for y := range h {
		for x := range w {
			for c := range 4 {
				v := tmp[(y*w+x)*4+c]
				if ry > 0 {
					sum := 0
					for i := -ry; i <= ry; i++ {
						sy := clamp(y+i, h-1)
						sum += tmp[(sy*w+x)*4+c] * (ry + 1 - abs(i))
					}
					v = (sum * mulTable[ry]) >> shgTable[ry]
				}
				out.Pix[out.PixOffset(b.Min.X+x, b.Min.Y+y)+c] = uint8(min(v, 255))
			}
		}
	}
	return out
}
