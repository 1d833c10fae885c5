package stroke

import "math"

// Point represents a 2D point (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

func (p Point) add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) scale(s float64) Point { return Point{p.X * s, p.Y * s} }
func (p Point) cross(q Point) float64 { return p.X*q.Y - p.Y*q.X }
func (p Point) dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }
func (p Point) length() float64 { return math.Hypot(p.X, p.Y) }
func (p Point) perp() Point { return Point{-p.Y, p.X} }
func (p Point) unit() Point {
	l := p.length()
	if l == 0 {
		return Point{}
	}
	return Point{p.X / l, p.Y / l}
}

// Cap specifies the shape of line endpoints.
type Cap int

const (
	// CapButt specifies a flat line cap.
	CapButt Cap = iota
	// CapRound specifies a rounded line cap.
	CapRound
	// CapSquare specifies a square line cap.
	CapSquare
)

// Join specifies the shape of line joins.
type Join int

const (
	// JoinMiter specifies a sharp (mitered) join.
	JoinMiter Join = iota
	// JoinRound specifies a rounded join.
	JoinRound
	// JoinBevel specifies a beveled join.
	JoinBevel
)

// Style defines the pen used for outlining.
type Style struct {
	Width      float64
	Cap        Cap
	Join       Join
	MiterLimit float64
}

// Polyline is one flattened subpath.
type Polyline struct {
	Points []Point
	Closed bool
}

// Outline returns the pieces covering the stroke of lines.
// tolerance bounds the chord error of round caps and joins.
func Outline(lines []Polyline, style Style, tolerance float64) [][]Point {
	if style.Width <= 0 {
		return nil
	}
	if tolerance <= 0 {
		tolerance = 0.1
	}
	if style.MiterLimit <= 0 {
		style.MiterLimit = 4
	}
	o := outliner{style: style, hw: style.Width / 2, tolerance: tolerance}
	for _, l := range lines {
		o.polyline(l)
	}
	return o.pieces
}

type outliner struct {
	style     Style
	hw        float64
	tolerance float64
	pieces    [][]Point
}

func (o *outliner) polyline(l Polyline) {
	pts := dedupe(l.Points)
	closed := l.Closed && len(pts) > 2
	if closed && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}

	switch len(pts) {
	case 0:
		return
	case 1:
		// A lone point only shows with caps that extend past the endpoint.
		switch o.style.Cap {
		case CapRound:
			o.emit(o.circle(pts[0]))
		case CapSquare:
			h := o.hw
			c := pts[0]
			o.emit([]Point{{c.X - h, c.Y - h}, {c.X + h, c.Y - h}, {c.X + h, c.Y + h}, {c.X - h, c.Y + h}})
		}
		return
	}

	n := len(pts)
	segs := n - 1
	if closed {
		segs = n
	}
	for i := range segs {
		o.segment(pts[i], pts[(i+1)%n])
	}

	for i := 1; i < n-1; i++ {
		o.join(pts[i-1], pts[i], pts[i+1])
	}
	if closed {
		o.join(pts[n-2], pts[n-1], pts[0])
		o.join(pts[n-1], pts[0], pts[1])
		return
	}
	o.cap(pts[0], pts[1])
	o.cap(pts[n-1], pts[n-2])
}

// segment emits the body rectangle of a to b.
func (o *outliner) segment(a, b Point) {
	n := b.sub(a).unit().perp().scale(o.hw)
	o.emit([]Point{a.add(n), b.add(n), b.sub(n), a.sub(n)})
}

// join emits the piece filling the outer gap at vertex b.
func (o *outliner) join(a, b, c Point) {
	d0 := b.sub(a).unit()
	d1 := c.sub(b).unit()
	cross := d0.cross(d1)
	if math.Abs(cross) < 1e-12 && d0.dot(d1) > 0 {
		return
	}

	if o.style.Join == JoinRound {
		o.emit(o.circle(b))
		return
	}

	side := 1.0
	if cross > 0 {
		side = -1
	}
	n0 := d0.perp().scale(o.hw * side)
	n1 := d1.perp().scale(o.hw * side)
	p0, p1 := b.add(n0), b.add(n1)

	if o.style.Join == JoinMiter {
		cosHalf := math.Sqrt(math.Max(0, (1+d0.dot(d1))/2))
		if cosHalf > 1e-9 && 1/cosHalf <= o.style.MiterLimit {
			mid := n0.add(n1).unit().scale(o.hw / cosHalf)
			o.emit([]Point{b, p0, b.add(mid), p1})
			return
		}
	}
	o.emit([]Point{b, p0, p1})
}

// cap emits the cap at end, where prev is the neighbouring point.
func (o *outliner) cap(end, prev Point) {
	switch o.style.Cap {
	case CapRound:
		o.emit(o.circle(end))
	case CapSquare:
		d := end.sub(prev).unit().scale(o.hw)
		n := d.perp()
		o.emit([]Point{end.add(n), end.add(n).add(d), end.sub(n).add(d), end.sub(n)})
	}
}

// circle approximates a circle of radius hw around c.
func (o *outliner) circle(c Point) []Point {
	steps := 8
	if o.hw > o.tolerance {
		steps = int(math.Ceil(math.Pi / math.Acos(1-o.tolerance/o.hw)))
	}
	steps = max(8, min(steps, 96))
	pts := make([]Point, steps)
	for i := range steps {
		a := 2 * math.Pi * float64(i) / float64(steps)
		pts[i] = Point{c.X + o.hw*math.Cos(a), c.Y + o.hw*math.Sin(a)}
	}
	return pts
}

// emit appends a piece with positive orientation.
func (o *outliner) emit(piece []Point) {
	if signedArea(piece) < 0 {
		for i, j := 0, len(piece)-1; i < j; i, j = i+1, j-1 {
			piece[i], piece[j] = piece[j], piece[i]
		}
	}
	o.pieces = append(o.pieces, piece)
}

// signedArea returns twice the signed area of the polygon.
func signedArea(pts []Point) float64 {
	var a float64
	for i := range pts {
		a += pts[i].cross(pts[(i+1)%len(pts)])
	}
	return a
}

func dedupe(pts []Point) []Point {
	out := make([]Point, 0, len(pts))
	for _, p := range pts {
		if len(out) == 0 || out[len(out)-1] != p {
			out = append(out, p)
		}
	}
	return out
}
