package annotate

import (
	"math"

	"github.com/gogpu/annotate/internal/stroke"
)

// Derivation constants.
const (
	// MinInteractiveWidth is the minimum width of the hit-test outline
	// around strokes.
	MinInteractiveWidth = 6

	// flattenTolerance is the curve flattening tolerance of the full
	// derivation; fastFlattenTolerance is used while dragging.
	flattenTolerance     = 0.1
	fastFlattenTolerance = 0.25

	// minPathOffset is the length of the segment MinPath adds to a single
	// point.
	minPathOffset = 0.0001

	// arrowHeadMin is the minimum length of an arrow head. Longer heads
	// scale with the pen width.
	arrowHeadMin   = 10
	arrowHeadScale = 4

	// numberPadding is the space around a number label inside its circle,
	// relative to the line height.
	numberPadding = 0.4
)

// InitTraits derives every dependent trait from the geometry and parameters,
// including the pre-rendered shadow. It never fails: traits that cannot be
// derived are left absent, which makes the record not visible.
func InitTraits(t *Traits) {
	initTraits(t, flattenTolerance, true)
}

// FastInitTraits is the cheap variant of InitTraits used during drags.
// It flattens curves more coarsely and leaves the shadow to be rendered
// lazily.
func FastInitTraits(t *Traits) {
	initTraits(t, fastFlattenTolerance, false)
}

// ReInitTraits clears and fully re-derives the dependent traits.
func ReInitTraits(t *Traits) {
	ClearForInit(t)
	InitTraits(t)
}

// ClearForInit drops derived data so the next derivation starts from the
// geometry alone.
func ClearForInit(t *Traits) {
	if t == nil {
		return
	}
	t.Interactive = nil
	t.Visual = nil
	t.effect = nil
	if t.Stroke != nil {
		t.Stroke.Path = nil
	}
	if t.Text != nil {
		t.Text.outline = nil
	}
	if t.Shadow != nil {
		t.Shadow.image = nil
		t.Shadow.imageScale = 0
	}
}

func initTraits(t *Traits, tolerance float64, renderShadow bool) {
	if t == nil || t.Geometry == nil || t.Geometry.Path == nil || t.IsMeta() {
		return
	}
	if t.Text != nil {
		deriveText(t)
	}
	if t.Stroke != nil {
		t.Stroke.Path = strokeOutline(t.Geometry.Path, t.Stroke.Pen, t.Stroke.Pen.Width, tolerance)
		if t.Arrow != nil {
			t.Stroke.Path.Append(arrowHead(t.Geometry.Path, t.Stroke.Pen.Width, tolerance))
		}
	}
	t.Interactive = &Interactive{Path: interactivePath(t, tolerance)}
	t.Visual = &Visual{Rect: visualRect(t)}

	if t.Shadow != nil {
		t.Shadow.image = nil
		t.Shadow.imageScale = 0
		if renderShadow && t.Shadow.Enabled {
			t.Shadow.image = shadowImage(t, 1, DefaultBlurBackend())
			t.Shadow.imageScale = 1
		}
	}
}

// deriveText lays out the label and rebuilds the geometry around it.
func deriveText(t *Traits) {
	l := t.Text.layout()
	bounds := t.Geometry.Path.BoundingBox()

	var origin Point
	geometry := NewPath()
	if t.Text.IsNumber() {
		c := bounds.Center()
		d := math.Max(l.Width, l.Height) + l.LineHeight*numberPadding
		geometry.Ellipse(c.X, c.Y, d/2, d/2)
		origin = Pt(c.X-l.Width/2, c.Y-l.Height/2)
	} else {
		origin = bounds.Min
		geometry.Rectangle(origin.X, origin.Y, l.Width, l.Height)
	}
	t.Geometry.Path = geometry
	t.Text.outline = pathFromOutline(l.Outline, origin)
}

// MinPath returns p extended by a tiny segment when it covers a single
// point, so the stroke stays visible and hit-testable. Otherwise p itself
// is returned.
func MinPath(p *Path) *Path {
	if p.Len() == 0 {
		return p
	}
	if b := p.BoundingBox(); b.Width() > 0 || b.Height() > 0 {
		return p
	}
	out := p.Clone()
	pt := out.CurrentPoint()
	out.LineTo(pt.X+minPathOffset, pt.Y)
	return out
}

// TransformTraits applies m directly to the geometry and every derived
// trait. It is exact for translations; other transforms should be followed
// by ReInitTraits.
func TransformTraits(m Matrix, t *Traits) {
	if t == nil {
		return
	}
	if t.Geometry != nil {
		t.Geometry.Path = t.Geometry.Path.Transform(m)
	}
	t.effect = nil
	if t.Interactive != nil && t.Interactive.Path != nil {
		t.Interactive.Path = t.Interactive.Path.Transform(m)
	}
	if t.Stroke != nil && t.Stroke.Path != nil {
		t.Stroke.Path = t.Stroke.Path.Transform(m)
	}
	if t.Text != nil && t.Text.outline != nil {
		t.Text.outline = t.Text.outline.Transform(m)
	}
	if t.Visual != nil {
		t.Visual.Rect = m.MapRect(t.Visual.Rect)
	}
	if t.Shadow != nil && !m.IsTranslation() {
		t.Shadow.image = nil
		t.Shadow.imageScale = 0
	}
}

// strokeOutline returns the fillable outline of path stroked with pen at
// the given width.
func strokeOutline(path *Path, pen Pen, width, tolerance float64) *Path {
	polys := path.Flatten(tolerance)
	lines := make([]stroke.Polyline, 0, len(polys))
	for _, poly := range polys {
		// A lone MoveTo is an anchor, not a dot.
		if len(poly.Points) < 2 {
			continue
		}
		pts := make([]stroke.Point, len(poly.Points))
		for i, p := range poly.Points {
			pts[i] = stroke.Point{X: p.X, Y: p.Y}
		}
		lines = append(lines, stroke.Polyline{Points: pts, Closed: poly.Closed})
	}
	style := stroke.Style{Width: width, Cap: strokeCap(pen.Cap), Join: strokeJoin(pen.Join), MiterLimit: 4}

	out := NewPath()
	for _, piece := range stroke.Outline(lines, style, tolerance) {
		for i, p := range piece {
			if i == 0 {
				out.MoveTo(p.X, p.Y)
			} else {
				out.LineTo(p.X, p.Y)
			}
		}
		out.Close()
	}
	return out
}

func strokeCap(c Cap) stroke.Cap {
	switch c {
	case CapFlat:
		return stroke.CapButt
	case CapSquare:
		return stroke.CapSquare
	}
	return stroke.CapRound
}

func strokeJoin(j Join) stroke.Join {
	switch j {
	case JoinMiter:
		return stroke.JoinMiter
	case JoinBevel:
		return stroke.JoinBevel
	}
	return stroke.JoinRound
}

// arrowHead returns a triangle pointing along the last segment of path.
func arrowHead(path *Path, width, tolerance float64) *Path {
	polys := path.Flatten(tolerance)
	head := NewPath()
	if len(polys) == 0 {
		return head
	}
	pts := polys[len(polys)-1].Points
	if len(pts) < 2 {
		return head
	}
	tip := pts[len(pts)-1]
	var from Point
	found := false
	for i := len(pts) - 2; i >= 0; i-- {
		if pts[i] != tip {
			from, found = pts[i], true
			break
		}
	}
	if !found {
		return head
	}
	length := math.Max(arrowHeadMin, width*arrowHeadScale)
	dir := tip.Sub(from).Normalize()
	base := tip.Sub(dir.Mul(length))
	side := dir.Perp().Mul(length / 2)
	a, b := base.Add(side), base.Sub(side)
	head.MoveTo(tip.X, tip.Y)
	head.LineTo(a.X, a.Y)
	head.LineTo(b.X, b.Y)
	head.Close()
	return positivePath(head.Flatten(tolerance))
}

// interactivePath builds the hit-test path: the filled geometry for fills
// and labels, plus a stroke outline at least MinInteractiveWidth wide.
// Every subpath is positively oriented so overlaps add up under the
// non-zero rule.
func interactivePath(t *Traits, tolerance float64) *Path {
	out := NewPath()
	if t.Fill != nil || t.Text != nil {
		var closed []Polygon
		for _, poly := range t.Geometry.Path.Flatten(tolerance) {
			closed = append(closed, Polygon{Points: poly.Points, Closed: true})
		}
		out.Append(positivePath(closed))
	}
	if t.Stroke != nil {
		pen := t.Stroke.Pen
		pen.Cap = CapRound
		out.Append(strokeOutline(t.Geometry.Path, pen, math.Max(pen.Width, MinInteractiveWidth), tolerance))
		if t.Arrow != nil {
			out.Append(arrowHead(t.Geometry.Path, pen.Width, tolerance))
		}
	}
	return out
}

// visualRect returns the bounds of everything the record paints.
func visualRect(t *Traits) Rect {
	r := t.Geometry.Path.BoundingBox()
	if t.Stroke != nil && t.Stroke.Path != nil && !t.Stroke.Path.IsEmpty() {
		r = r.Union(t.Stroke.Path.BoundingBox())
	}
	if t.Text != nil && t.Text.outline != nil && !t.Text.outline.IsEmpty() {
		r = r.Union(t.Text.outline.BoundingBox())
	}
	if t.Shadow != nil && t.Shadow.Enabled && !r.IsNull() {
		r = r.Union(shadowRect(r))
	}
	return r
}

// positivePath converts polygons to a path, reversing those with negative
// orientation.
func positivePath(polys []Polygon) *Path {
	out := NewPath()
	for _, poly := range polys {
		pts := poly.Points
		if len(pts) < 3 {
			continue
		}
		if signedArea(pts) < 0 {
			rev := make([]Point, len(pts))
			for i, p := range pts {
				rev[len(pts)-1-i] = p
			}
			pts = rev
		}
		out.MoveTo(pts[0].X, pts[0].Y)
		for _, p := range pts[1:] {
			out.LineTo(p.X, p.Y)
		}
		out.Close()
	}
	return out
}

// signedArea returns twice the signed area of a polygon.
func signedArea(pts []Point) float64 {
	var a float64
	for i := range pts {
		a += pts[i].Cross(pts[(i+1)%len(pts)])
	}
	return a
}
