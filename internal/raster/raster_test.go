package raster

import (
	"image"
	"image/color"
	"testing"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/gogpu/annotate/internal/blend"
)

func square(x0, y0, x1, y1 float64) Contour {
	return Contour{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
}

func TestBounds(t *testing.T) {
	got := Bounds([]Contour{square(1.5, 2.2, 4.1, 6)})
	want := image.Rect(1, 2, 5, 6)
	if got != want {
		t.Errorf("Bounds = %v, want %v", got, want)
	}
	if got := Bounds(nil); !got.Empty() {
		t.Errorf("Bounds(nil) = %v, want empty", got)
	}
}

func TestMaskCoverage(t *testing.T) {
	mask := Mask([]Contour{square(2, 2, 6, 6)}, image.Rect(0, 0, 10, 10))
	if mask == nil {
		t.Fatal("Mask returned nil")
	}
	if got, want := mask.Bounds(), image.Rect(2, 2, 6, 6); got != want {
		t.Fatalf("mask bounds = %v, want %v", got, want)
	}
	for y := 2; y < 6; y++ {
		for x := 2; x < 6; x++ {
			if a := mask.AlphaAt(x, y).A; a != 255 {
				t.Fatalf("coverage at (%d,%d) = %d, want 255", x, y, a)
			}
		}
	}
}

func TestMaskOverlapSaturates(t *testing.T) {
	a := square(0, 0, 4, 4)
	b := square(2, 0, 6, 4)
	mask := Mask([]Contour{a, b}, image.Rect(0, 0, 8, 8))
	if got := mask.AlphaAt(3, 2).A; got != 255 {
		t.Errorf("overlap coverage = %d, want 255", got)
	}
}

func TestMaskHalfPixel(t *testing.T) {
	mask := Mask([]Contour{square(0, 0, 1.5, 1)}, image.Rect(0, 0, 4, 4))
	if got := mask.AlphaAt(1, 0).A; got < 120 || got > 135 {
		t.Errorf("half pixel coverage = %d, want ~128", got)
	}
}

func TestMaskOutside(t *testing.T) {
	if m := Mask([]Contour{square(20, 20, 30, 30)}, image.Rect(0, 0, 10, 10)); m != nil {
		t.Errorf("Mask outside bounds = %v, want nil", m.Bounds())
	}
}

func TestFillModes(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := 0; i < len(dst.Pix); i += 4 {
		copy(dst.Pix[i:], []byte{100, 100, 100, 255})
	}
	c := square(0, 0, 2, 4)

	Fill(dst, []Contour{c}, color.RGBA{200, 50, 200, 255}, blend.Darken)
	if got, want := dst.RGBAAt(0, 0), (color.RGBA{100, 50, 100, 255}); got != want {
		t.Errorf("Darken = %v, want %v", got, want)
	}
	if got, want := dst.RGBAAt(3, 0), (color.RGBA{100, 100, 100, 255}); got != want {
		t.Errorf("outside pixel changed to %v", got)
	}

	Fill(dst, []Contour{c}, color.RGBA{}, blend.Clear)
	if got := dst.RGBAAt(1, 1); got != (color.RGBA{}) {
		t.Errorf("Clear = %v, want transparent", got)
	}
}

func TestClear(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := range dst.Pix {
		dst.Pix[i] = 255
	}
	Clear(dst, image.Rect(1, 1, 3, 3))
	if got := dst.RGBAAt(1, 1); got != (color.RGBA{}) {
		t.Errorf("cleared pixel = %v", got)
	}
	if got := dst.RGBAAt(0, 0); got.A != 255 {
		t.Errorf("pixel outside rect cleared")
	}
	Clear(dst, image.Rect(-5, -5, 100, 100))
	for _, v := range dst.Pix {
		if v != 0 {
			t.Fatal("oversized clear left pixels behind")
		}
	}
}

func TestDrawImageTranslation(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src.SetRGBA(0, 0, color.RGBA{255, 0, 0, 255})
	dst := image.NewRGBA(image.Rect(0, 0, 8, 8))

	m := f64.Aff3{1, 0, 3, 0, 1, 4}
	DrawImage(dst, m, src, src.Bounds(), xdraw.BiLinear, blend.SourceOver)
	if got := dst.RGBAAt(3, 4); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("translated pixel = %v", got)
	}
	if got := dst.RGBAAt(0, 0); got.A != 0 {
		t.Errorf("origin pixel = %v, want transparent", got)
	}
}

func TestDrawImageScaleDarken(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for i := 0; i < len(src.Pix); i += 4 {
		copy(src.Pix[i:], []byte{0, 0, 0, 255})
	}
	dst := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for i := 0; i < len(dst.Pix); i += 4 {
		copy(dst.Pix[i:], []byte{255, 255, 255, 255})
	}

	m := f64.Aff3{2, 0, 0, 0, 2, 0}
	DrawImage(dst, m, src, src.Bounds(), xdraw.NearestNeighbor, blend.Darken)
	if got := dst.RGBAAt(3, 3); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("scaled pixel = %v, want black", got)
	}
	if got := dst.RGBAAt(5, 5); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("pixel outside scaled image = %v, want white", got)
	}
}

func TestTransformBounds(t *testing.T) {
	m := f64.Aff3{0, -1, 10, 1, 0, 0} // quarter turn
	got := TransformBounds(m, image.Rect(0, 0, 4, 2))
	if want := image.Rect(8, 0, 10, 4); got != want {
		t.Errorf("TransformBounds = %v, want %v", got, want)
	}
}
