package annotate

import "math"

// Polygon is one flattened subpath.
type Polygon struct {
	Points []Point
	Closed bool
}

// BoundingBox returns the tight axis-aligned bounding box of the path.
// Every element contributes, including a lone or trailing MoveTo, so the
// box of a single-point path is the zero-size rect at that point.
func (p *Path) BoundingBox() Rect {
	if p.Len() == 0 {
		return Rect{}
	}

	bbox := Rect{
		Min: Point{X: math.MaxFloat64, Y: math.MaxFloat64},
		Max: Point{X: -math.MaxFloat64, Y: -math.MaxFloat64},
	}

	var current Point
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			bbox = expandBBox(bbox, e.Point)
			current = e.Point
		case LineTo:
			bbox = expandBBox(bbox, e.Point)
			current = e.Point
		case QuadTo:
			bbox = expandBBox(bbox, e.Point)
			for _, t := range quadExtrema(current, e.Control, e.Point) {
				bbox = expandBBox(bbox, quadAt(current, e.Control, e.Point, t))
			}
			current = e.Point
		case CubicTo:
			bbox = expandBBox(bbox, e.Point)
			for _, t := range cubicExtrema(current, e.Control1, e.Control2, e.Point) {
				bbox = expandBBox(bbox, cubicAt(current, e.Control1, e.Control2, e.Point, t))
			}
			current = e.Point
		case Close:
			// Close doesn't add new points
		}
	}
	return bbox
}

// expandBBox expands the bounding box to include the point.
func expandBBox(bbox Rect, pt Point) Rect {
	return Rect{
		Min: Point{X: math.Min(bbox.Min.X, pt.X), Y: math.Min(bbox.Min.Y, pt.Y)},
		Max: Point{X: math.Max(bbox.Max.X, pt.X), Y: math.Max(bbox.Max.Y, pt.Y)},
	}
}

func quadAt(p0, p1, p2 Point, t float64) Point {
	mt := 1 - t
	return p0.Mul(mt * mt).Add(p1.Mul(2 * mt * t)).Add(p2.Mul(t * t))
}

func cubicAt(p0, p1, p2, p3 Point, t float64) Point {
	mt := 1 - t
	return p0.Mul(mt * mt * mt).
		Add(p1.Mul(3 * mt * mt * t)).
		Add(p2.Mul(3 * mt * t * t)).
		Add(p3.Mul(t * t * t))
}

// quadExtrema returns the parameters in (0,1) where the curve turns on either axis.
func quadExtrema(p0, p1, p2 Point) []float64 {
	var ts []float64
	for _, axis := range [2][3]float64{{p0.X, p1.X, p2.X}, {p0.Y, p1.Y, p2.Y}} {
		den := axis[0] - 2*axis[1] + axis[2]
		if den == 0 {
			continue
		}
		if t := (axis[0] - axis[1]) / den; t > 0 && t < 1 {
			ts = append(ts, t)
		}
	}
	return ts
}

// cubicExtrema returns the parameters in (0,1) where the curve turns on either axis.
func cubicExtrema(p0, p1, p2, p3 Point) []float64 {
	var ts []float64
	for _, axis := range [2][4]float64{{p0.X, p1.X, p2.X, p3.X}, {p0.Y, p1.Y, p2.Y, p3.Y}} {
		// Derivative coefficients of the cubic on this axis.
		a := -axis[0] + 3*axis[1] - 3*axis[2] + axis[3]
		b := 2 * (axis[0] - 2*axis[1] + axis[2])
		c := axis[1] - axis[0]
		if math.Abs(a) < 1e-12 {
			if b != 0 {
				if t := -c / b; t > 0 && t < 1 {
					ts = append(ts, t)
				}
			}
			continue
		}
		disc := b*b - 4*a*c
		if disc < 0 {
			continue
		}
		sq := math.Sqrt(disc)
		for _, t := range [2]float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)} {
			if t > 0 && t < 1 {
				ts = append(ts, t)
			}
		}
	}
	return ts
}

// Flatten converts the path into polygons with the given tolerance.
// tolerance is the maximum distance from the curve.
func (p *Path) Flatten(tolerance float64) []Polygon {
	if p.Len() == 0 {
		return nil
	}
	if tolerance <= 0 {
		tolerance = 0.1
	}

	var polys []Polygon
	var cur Polygon
	var current, start Point
	flush := func() {
		if len(cur.Points) > 0 {
			polys = append(polys, cur)
		}
		cur = Polygon{}
	}

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			flush()
			cur.Points = append(cur.Points, e.Point)
			start, current = e.Point, e.Point
		case LineTo:
			if len(cur.Points) == 0 {
				cur.Points = append(cur.Points, current)
			}
			cur.Points = append(cur.Points, e.Point)
			current = e.Point
		case QuadTo:
			if len(cur.Points) == 0 {
				cur.Points = append(cur.Points, current)
			}
			n := curveSteps(current.Distance(e.Control)+e.Control.Distance(e.Point), tolerance)
			for i := 1; i <= n; i++ {
				cur.Points = append(cur.Points, quadAt(current, e.Control, e.Point, float64(i)/float64(n)))
			}
			current = e.Point
		case CubicTo:
			if len(cur.Points) == 0 {
				cur.Points = append(cur.Points, current)
			}
			n := curveSteps(current.Distance(e.Control1)+e.Control1.Distance(e.Control2)+e.Control2.Distance(e.Point), tolerance)
			for i := 1; i <= n; i++ {
				cur.Points = append(cur.Points, cubicAt(current, e.Control1, e.Control2, e.Point, float64(i)/float64(n)))
			}
			current = e.Point
		case Close:
			cur.Closed = true
			flush()
			current = start
		}
	}
	flush()
	return polys
}

// curveSteps picks a segment count for a curve with the given control polygon length.
func curveSteps(length, tolerance float64) int {
	n := int(math.Ceil(math.Sqrt(length / tolerance)))
	return max(1, min(n, 256))
}

// Contains tests if a point is inside the path using the non-zero fill rule.
// Open subpaths are implicitly closed.
func (p *Path) Contains(pt Point) bool {
	if p.Len() == 0 || !p.BoundingBox().Contains(pt) {
		return false
	}
	return windingOf(p.Flatten(0.1), pt) != 0
}

// windingOf returns the winding number of pt relative to the polygons.
func windingOf(polys []Polygon, pt Point) int {
	var winding int
	for _, poly := range polys {
		n := len(poly.Points)
		for i := range n {
			a := poly.Points[i]
			b := poly.Points[(i+1)%n]
			winding += lineWinding(a, b, pt)
		}
	}
	return winding
}

// lineWinding computes the winding contribution of a line segment.
func lineWinding(p0, p1, pt Point) int {
	if p0.Y <= pt.Y {
		if p1.Y > pt.Y && isLeft(p0, p1, pt) > 0 {
			return 1
		}
	} else if p1.Y <= pt.Y && isLeft(p0, p1, pt) < 0 {
		return -1
	}
	return 0
}

// isLeft tests if point pt is left of the line from p0 to p1.
func isLeft(p0, p1, pt Point) float64 {
	return (p1.X-p0.X)*(pt.Y-p0.Y) - (pt.X-p0.X)*(p1.Y-p0.Y)
}

// Intersects reports whether the filled areas of both paths overlap.
func (p *Path) Intersects(o *Path) bool {
	if p.Len() == 0 || o.Len() == 0 {
		return false
	}
	if !p.BoundingBox().Adjusted(-1e-9, -1e-9, 1e-9, 1e-9).Intersects(o.BoundingBox().Adjusted(-1e-9, -1e-9, 1e-9, 1e-9)) {
		return false
	}
	a, b := p.Flatten(0.25), o.Flatten(0.25)
	for _, poly := range a {
		for _, pt := range poly.Points {
			if windingOf(b, pt) != 0 {
				return true
			}
		}
	}
	for _, poly := range b {
		for _, pt := range poly.Points {
			if windingOf(a, pt) != 0 {
				return true
			}
		}
	}
	for _, pa := range a {
		for i := range pa.Points {
			a0, a1 := pa.Points[i], pa.Points[(i+1)%len(pa.Points)]
			for _, pb := range b {
				for j := range pb.Points {
					if segmentsCross(a0, a1, pb.Points[j], pb.Points[(j+1)%len(pb.Points)]) {
						return true
					}
				}
			}
		}
	}
	return false
}

// segmentsCross reports whether segments ab and cd properly intersect.
func segmentsCross(a, b, c, d Point) bool {
	d1 := isLeft(c, d, a)
	d2 := isLeft(c, d, b)
	d3 := isLeft(a, b, c)
	d4 := isLeft(a, b, d)
	return ((d1 > 0) != (d2 > 0)) && ((d3 > 0) != (d4 > 0)) && d1 != 0 && d2 != 0 && d3 != 0 && d4 != 0
}
