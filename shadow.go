package annotate

import (
	"image"
	"math"

	"github.com/gogpu/annotate/internal/blend"
)

// Shadow geometry in logical units.
const (
	ShadowXOffset = 1
	ShadowYOffset = 1
	ShadowRadius  = 2

	// shadowMargin covers the blur spread at a device pixel ratio of 1.
	shadowMargin = 13

	// shadowAlpha scales the blurred black silhouette (0.5 in bytes).
	shadowAlpha = 127
)

// shadowKernel returns the blur radius of the shadow at the given scale.
// It is always odd.
func shadowKernel(scale float64) int {
	return int(math.Round(ShadowRadius*scale*6+1)) | 1
}

// shadowRect returns the area covered by the shadow of content bounded by r.
func shadowRect(r Rect) Rect {
	return r.Translate(Pt(ShadowXOffset, ShadowYOffset)).
		Adjusted(-shadowMargin, -shadowMargin, shadowMargin, shadowMargin)
}

// shadowImage renders the drop shadow of t covering its visual rect at the
// given scale: the filled, stroked and text shapes in black, offset, blurred
// and faded to half opacity.
func shadowImage(t *Traits, scale float64, blur BlurBackend) *image.RGBA {
	if t.Visual == nil || t.Visual.Rect.IsEmpty() || scale <= 0 {
		return nil
	}
	vis := t.Visual.Rect
	w := int(math.Ceil(vis.Width() * scale))
	h := int(math.Ceil(vis.Height() * scale))
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	p := painter{
		dst:       img,
		m:         Translate(ShadowXOffset-vis.Min.X, ShadowYOffset-vis.Min.Y).Then(Scale(scale, scale)),
		tolerance: deviceTolerance,
	}
	// Shapes cast as much shadow as they are opaque.
	if b, ok := t.Fill.(Brush); ok && t.Geometry != nil {
		p.fillPath(t.Geometry.Path, Black.WithAlpha(b.Color.A), blend.SourceOver)
	}
	if t.Stroke != nil {
		p.fillPath(t.Stroke.Path, Black.WithAlpha(t.Stroke.Pen.Color.A), blend.SourceOver)
	}
	if t.Text != nil {
		p.fillPath(t.Text.outline, Black.WithAlpha(t.Text.Color.A), blend.SourceOver)
	}

	k := shadowKernel(scale)
	blur.Blur(img, k, k)
	for i := range img.Pix {
		img.Pix[i] = blend.MulDiv255(img.Pix[i], shadowAlpha)
	}
	return img
}
