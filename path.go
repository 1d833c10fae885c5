package annotate

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path is an ordered list of path commands.
//
// Unlike many path builders, a Path never relocates a leading MoveTo:
// every command is stored exactly as issued, and the current point is
// always the end point of the last command.
type Path struct {
	elements []PathElement
	start    Point // Starting point of current subpath
	current  Point // Current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadraticTo draws a quadratic Bezier curve.
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, QuadTo{Control: Pt(cx, cy), Point: pt})
	p.current = pt
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    pt,
	})
	p.current = pt
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Clear removes all elements from the path.
func (p *Path) Clear() {
	p.elements = p.elements[:0]
	p.start = Point{}
	p.current = Point{}
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// Len returns the number of elements.
func (p *Path) Len() int {
	if p == nil {
		return 0
	}
	return len(p.elements)
}

// IsEmpty reports whether the path has no elements.
func (p *Path) IsEmpty() bool {
	return p.Len() == 0
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// ElementAt returns the i-th element.
func (p *Path) ElementAt(i int) PathElement {
	return p.elements[i]
}

// ElementPoint returns the end point of the i-th element.
// For Close this is the start of the subpath it closes.
func (p *Path) ElementPoint(i int) Point {
	switch e := p.elements[i].(type) {
	case MoveTo:
		return e.Point
	case LineTo:
		return e.Point
	case QuadTo:
		return e.Point
	case CubicTo:
		return e.Point
	}
	for j := i - 1; j >= 0; j-- {
		if m, ok := p.elements[j].(MoveTo); ok {
			return m.Point
		}
	}
	return Point{}
}

// SetElementPoint moves the end point of the i-th element.
// Control points are left untouched. Close elements are ignored.
func (p *Path) SetElementPoint(i int, pt Point) {
	switch e := p.elements[i].(type) {
	case MoveTo:
		e.Point = pt
		p.elements[i] = e
	case LineTo:
		e.Point = pt
		p.elements[i] = e
	case QuadTo:
		e.Point = pt
		p.elements[i] = e
	case CubicTo:
		e.Point = pt
		p.elements[i] = e
	default:
		return
	}
	p.rescan()
}

// rescan recomputes the start and current points from the elements.
func (p *Path) rescan() {
	p.start, p.current = Point{}, Point{}
	for i, el := range p.elements {
		if m, ok := el.(MoveTo); ok {
			p.start = m.Point
		}
		p.current = p.ElementPoint(i)
	}
}

// Transform returns a copy of the path with every point transformed by m.
func (p *Path) Transform(m Matrix) *Path {
	result := &Path{elements: make([]PathElement, 0, len(p.elements))}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			result.elements = append(result.elements, MoveTo{Point: m.TransformPoint(e.Point)})
		case LineTo:
			result.elements = append(result.elements, LineTo{Point: m.TransformPoint(e.Point)})
		case QuadTo:
			result.elements = append(result.elements, QuadTo{
				Control: m.TransformPoint(e.Control),
				Point:   m.TransformPoint(e.Point),
			})
		case CubicTo:
			result.elements = append(result.elements, CubicTo{
				Control1: m.TransformPoint(e.Control1),
				Control2: m.TransformPoint(e.Control2),
				Point:    m.TransformPoint(e.Point),
			})
		case Close:
			result.elements = append(result.elements, Close{})
		}
	}
	result.rescan()
	return result
}

// Translate moves every point of the path by d in place.
func (p *Path) Translate(d Point) {
	t := p.Transform(Translate(d.X, d.Y))
	*p = *t
}

// Rectangle adds a rectangle to the path.
func (p *Path) Rectangle(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// Ellipse adds an ellipse to the path.
func (p *Path) Ellipse(cx, cy, rx, ry float64) {
	const k = 0.5522847498307936 // 4/3 * (sqrt(2) - 1)
	ox := rx * k
	oy := ry * k

	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
	p.CubicTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
	p.CubicTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
	p.CubicTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
	p.Close()
}

// AddRect adds r as a closed rectangle.
func (p *Path) AddRect(r Rect) {
	p.Rectangle(r.Min.X, r.Min.Y, r.Width(), r.Height())
}

// AddEllipse adds the ellipse inscribed in r.
func (p *Path) AddEllipse(r Rect) {
	c := r.Center()
	p.Ellipse(c.X, c.Y, r.Width()/2, r.Height()/2)
}

// Append adds every element of other to the path.
func (p *Path) Append(other *Path) {
	if other == nil {
		return
	}
	p.elements = append(p.elements, other.elements...)
	p.rescan()
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	if p == nil {
		return nil
	}
	elements := make([]PathElement, len(p.elements))
	copy(elements, p.elements)
	return &Path{
		elements: elements,
		start:    p.start,
		current:  p.current,
	}
}

// Equal reports whether both paths hold the same elements.
func (p *Path) Equal(o *Path) bool {
	if p.Len() != o.Len() {
		return false
	}
	for i := range p.Len() {
		if p.elements[i] != o.elements[i] {
			return false
		}
	}
	return true
}
