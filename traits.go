package annotate

import "image"

// Traits is the fixed set of optional facets attached to a record.
// A nil field means the trait is absent.
//
// Geometry is the source of truth. Interactive, Visual and the derived parts
// of Stroke, Text and Shadow are recomputed from it by InitTraits and its
// variants.
type Traits struct {
	Geometry    *Geometry
	Interactive *Interactive
	Visual      *Visual
	Stroke      *Stroke
	Fill        Fill
	Text        *Text
	Highlight   *Highlight
	Shadow      *Shadow
	Arrow       *Arrow

	Crop      *Crop
	Transform *TransformMeta
	Delete    *Delete

	// effect is the rendered Blur or Pixelate fill. Clones start without one.
	effect *effectImage
}

// Geometry holds the path that defines the shape.
type Geometry struct {
	Path *Path
}

// Interactive holds the path used for hit testing. It is at least
// MinInteractiveWidth wide around strokes so thin lines stay clickable.
type Interactive struct {
	Path *Path
}

// Visual holds the rectangle covering everything the record paints,
// shadow included.
type Visual struct {
	Rect Rect
}

// Pen describes how a stroke is drawn.
type Pen struct {
	Color RGBA
	Width float64
	Cap   Cap
	Join  Join
}

// Cap is the shape of open stroke ends.
type Cap int

// Line caps.
const (
	CapRound Cap = iota
	CapFlat
	CapSquare
)

// Join is the shape of stroke corners.
type Join int

// Line joins.
const (
	JoinRound Join = iota
	JoinMiter
	JoinBevel
)

// DefaultPen returns the pen new strokes start with.
func DefaultPen() Pen {
	return Pen{Color: Black, Width: 1, Cap: CapRound, Join: JoinRound}
}

// Stroke draws the outline of the geometry. Path is the derived fillable
// outline.
type Stroke struct {
	Pen  Pen
	Path *Path
}

// Fill is one of Brush, Blur or Pixelate.
type Fill interface {
	isFill()
}

// Brush fills the geometry with a solid color.
type Brush struct {
	Color RGBA
}

// Blur fills the geometry bounds with a blurred copy of everything below.
type Blur struct {
	Strength float64
}

// Pixelate fills the geometry bounds with a pixelated copy of everything
// below.
type Pixelate struct {
	Strength float64
}

func (Brush) isFill()    {}
func (Blur) isFill()     {}
func (Pixelate) isFill() {}

// Highlight marks a highlighter stroke. It is composed with the darken mode
// on top of the base image.
type Highlight struct{}

// Shadow enables a drop shadow beneath the record.
type Shadow struct {
	Enabled bool

	// image is the pre-rendered shadow covering the visual rect at scale
	// imageScale. It is immutable and may be shared between clones.
	image      *image.RGBA
	imageScale float64
}

// Arrow adds an arrow head at the end of a line.
type Arrow struct{}

// Crop records a canvas crop. The new canvas rect is the geometry bounds,
// expressed under the document transform that was active at the time.
type Crop struct {
	Transform Matrix
}

// TransformMeta records a document transform change.
type TransformMeta struct {
	Matrix Matrix
}

// Delete marks the parent record as deleted.
type Delete struct{}

// IsMeta reports whether the traits describe a control record rather than
// a drawable annotation.
func (t *Traits) IsMeta() bool {
	return t.Crop != nil || t.Transform != nil || t.Delete != nil
}

// Clone returns a deep copy. Cached shadow images are shared.
func (t *Traits) Clone() Traits {
	c := Traits{Fill: t.Fill}
	if t.Geometry != nil {
		c.Geometry = &Geometry{Path: t.Geometry.Path.Clone()}
	}
	if t.Interactive != nil {
		c.Interactive = &Interactive{Path: t.Interactive.Path.Clone()}
	}
	if t.Visual != nil {
		v := *t.Visual
		c.Visual = &v
	}
	if t.Stroke != nil {
		c.Stroke = &Stroke{Pen: t.Stroke.Pen, Path: t.Stroke.Path.Clone()}
	}
	if t.Text != nil {
		tx := *t.Text
		tx.outline = t.Text.outline.Clone()
		c.Text = &tx
	}
	if t.Highlight != nil {
		c.Highlight = &Highlight{}
	}
	if t.Shadow != nil {
		s := *t.Shadow
		c.Shadow = &s
	}
	if t.Arrow != nil {
		c.Arrow = &Arrow{}
	}
	if t.Crop != nil {
		cr := *t.Crop
		c.Crop = &cr
	}
	if t.Transform != nil {
		m := *t.Transform
		c.Transform = &m
	}
	if t.Delete != nil {
		c.Delete = &Delete{}
	}
	return c
}

// Equal compares the primary data of both trait sets: presence of every
// trait, geometry, pen, fill, text and shadow flag. Derived paths and
// caches are not compared.
func (t *Traits) Equal(o *Traits) bool {
	if (t.Geometry == nil) != (o.Geometry == nil) ||
		(t.Interactive == nil) != (o.Interactive == nil) ||
		(t.Visual == nil) != (o.Visual == nil) ||
		(t.Stroke == nil) != (o.Stroke == nil) ||
		(t.Text == nil) != (o.Text == nil) ||
		(t.Highlight == nil) != (o.Highlight == nil) ||
		(t.Shadow == nil) != (o.Shadow == nil) ||
		(t.Arrow == nil) != (o.Arrow == nil) ||
		(t.Crop == nil) != (o.Crop == nil) ||
		(t.Transform == nil) != (o.Transform == nil) ||
		(t.Delete == nil) != (o.Delete == nil) {
		return false
	}
	if t.Fill != o.Fill {
		return false
	}
	if t.Geometry != nil && !t.Geometry.Path.Equal(o.Geometry.Path) {
		return false
	}
	if t.Stroke != nil && t.Stroke.Pen != o.Stroke.Pen {
		return false
	}
	if t.Text != nil && (t.Text.Value != o.Text.Value || t.Text.Font != o.Text.Font || t.Text.Color != o.Text.Color) {
		return false
	}
	if t.Shadow != nil && t.Shadow.Enabled != o.Shadow.Enabled {
		return false
	}
	if t.Crop != nil && *t.Crop != *o.Crop {
		return false
	}
	if t.Transform != nil && t.Transform.Matrix != o.Transform.Matrix {
		return false
	}
	return true
}

// CanBeVisible reports whether the traits describe something drawable:
// no meta trait, the geometry, interactive and visual traits present, and
// at least one of stroke, fill or text.
//
// A freshly begun shape with a single point is drawable; whether it is worth
// keeping is decided by Record.IsValid.
func CanBeVisible(t *Traits) bool {
	if t == nil || t.IsMeta() {
		return false
	}
	if t.Geometry == nil || t.Interactive == nil || t.Visual == nil {
		return false
	}
	return t.Stroke != nil || t.Fill != nil || t.Text != nil
}

// GeometryPathBounds returns the bounds of the geometry path, or the zero
// Rect without geometry.
func GeometryPathBounds(t *Traits) Rect {
	if t == nil || t.Geometry == nil {
		return Rect{}
	}
	return t.Geometry.Path.BoundingBox()
}

// GeometryPath returns the geometry path, or nil.
func GeometryPath(t *Traits) *Path {
	if t == nil || t.Geometry == nil {
		return nil
	}
	return t.Geometry.Path
}

// InteractivePath returns the hit-test path, or nil.
func InteractivePath(t *Traits) *Path {
	if t == nil || t.Interactive == nil {
		return nil
	}
	return t.Interactive.Path
}
