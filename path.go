package squircle

import "math"

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

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// ArcSize selects which of the two arcs between two endpoints is drawn.
type ArcSize uint8

const (
	// ArcSizeMinor draws the arc with sweep <= 180 degrees.
	ArcSizeMinor ArcSize = iota
	// ArcSizeMajor draws the arc with sweep > 180 degrees.
	ArcSizeMajor
)

// PathDirection is the winding direction of an arc, as seen in the
// y-down coordinate system used throughout this package.
type PathDirection uint8

const (
	Clockwise PathDirection = iota
	CounterClockwise
)

// ArcTo draws an elliptical arc from the current point to Point.
// Radii are the ellipse radii, Rotation the x-axis rotation in radians.
// Together with Size and Dir they select one of the four candidate arcs
// through the two endpoints, mirroring the SVG/Skia arc command.
type ArcTo struct {
	Radii    Vec2
	Rotation float64
	Size     ArcSize
	Dir      PathDirection
	Point    Point
}

func (ArcTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path represents a vector path.
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

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	ctrl1 := Pt(c1x, c1y)
	ctrl2 := Pt(c2x, c2y)
	pt := Pt(x, y)
	p.elements = append(p.elements, CubicTo{
		Control1: ctrl1,
		Control2: ctrl2,
		Point:    pt,
	})
	p.current = pt
}

// ArcTo draws an elliptical arc to a point.
// rx, ry are the ellipse radii and rotation the x-axis rotation in
// radians; size and dir select the arc, as in the SVG arc command.
func (p *Path) ArcTo(rx, ry, rotation float64, size ArcSize, dir PathDirection, x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, ArcTo{
		Radii:    V2(rx, ry),
		Rotation: rotation,
		Size:     size,
		Dir:      dir,
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

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// Transform applies a transformation matrix to all points in the path.
//
// ArcTo elements are carried over exactly only for similarity
// transforms (translation, rotation, uniform scale, reflection); a
// non-uniform scale would turn a circular arc into a general ellipse
// section and is not supported here.
func (p *Path) Transform(m Matrix) *Path {
	det := m.A*m.E - m.B*m.D
	scale := math.Sqrt(math.Abs(det))
	angle := math.Atan2(m.D, m.A)

	result := NewPath()
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			pt := m.TransformPoint(e.Point)
			result.MoveTo(pt.X, pt.Y)
		case LineTo:
			pt := m.TransformPoint(e.Point)
			result.LineTo(pt.X, pt.Y)
		case CubicTo:
			ctrl1 := m.TransformPoint(e.Control1)
			ctrl2 := m.TransformPoint(e.Control2)
			pt := m.TransformPoint(e.Point)
			result.CubicTo(ctrl1.X, ctrl1.Y, ctrl2.X, ctrl2.Y, pt.X, pt.Y)
		case ArcTo:
			pt := m.TransformPoint(e.Point)
			dir := e.Dir
			if det < 0 {
				// Reflection flips the winding.
				if dir == Clockwise {
					dir = CounterClockwise
				} else {
					dir = Clockwise
				}
			}
			result.ArcTo(e.Radii.X*scale, e.Radii.Y*scale, e.Rotation+angle,
				e.Size, dir, pt.X, pt.Y)
		case Close:
			result.Close()
		}
	}
	return result
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := NewPath()
	result.elements = make([]PathElement, len(p.elements))
	copy(result.elements, p.elements)
	result.start = p.start
	result.current = p.current
	return result
}

// Rectangle adds a rectangle to the path.
func (p *Path) Rectangle(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// RoundedRectangle adds a rectangle with plainly rounded corners: each
// edge connects directly to a quarter-circle arc. This is the routine
// to use when no corner smoothing is wanted (the smoothness == 0 case
// of SmoothRoundedRectangle). The radius is clamped to half of the
// smaller dimension.
func (p *Path) RoundedRectangle(x, y, w, h, r float64) {
	maxR := math.Min(w, h) / 2
	if r > maxR {
		r = maxR
	}

	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.ArcTo(r, r, 0, ArcSizeMinor, Clockwise, x+w, y+r)
	p.LineTo(x+w, y+h-r)
	p.ArcTo(r, r, 0, ArcSizeMinor, Clockwise, x+w-r, y+h)
	p.LineTo(x+r, y+h)
	p.ArcTo(r, r, 0, ArcSizeMinor, Clockwise, x, y+h-r)
	p.LineTo(x, y+r)
	p.ArcTo(r, r, 0, ArcSizeMinor, Clockwise, x+r, y)
	p.Close()
}

// DefaultFlattenTolerance is the maximum distance between a curve and
// its polyline approximation used by Bounds.
const DefaultFlattenTolerance = 0.1

// Flatten converts the path into a polyline. Curves and arcs are
// subdivided until they deviate from their chord by less than
// tolerance.
func (p *Path) Flatten(tolerance float64) []Point {
	var points []Point
	var current Point

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			current = e.Point
			points = append(points, current)

		case LineTo:
			current = e.Point
			points = append(points, current)

		case CubicTo:
			flattenCubicRec(current, e.Control1, e.Control2, e.Point, tolerance, &points)
			current = e.Point

		case ArcTo:
			for _, c := range arcToCubics(current, e) {
				flattenCubicRec(current, c.Control1, c.Control2, c.Point, tolerance, &points)
				current = c.Point
			}
			current = e.Point

		case Close:
			if len(points) > 0 {
				points = append(points, points[0])
			}
		}
	}

	return points
}

// Bounds returns the axis-aligned bounding box of the path.
// Curves are measured via flattening, so the result is tight to within
// DefaultFlattenTolerance.
func (p *Path) Bounds() Rect {
	points := p.Flatten(DefaultFlattenTolerance)
	if len(points) == 0 {
		return Rect{}
	}
	bounds := NewRect(points[0], points[0])
	for _, pt := range points[1:] {
		bounds = bounds.Union(NewRect(pt, pt))
	}
	return bounds
}

// flattenCubicRec recursively subdivides a cubic Bezier curve,
// appending polyline points until flat enough.
func flattenCubicRec(p0, p1, p2, p3 Point, tolerance float64, points *[]Point) {
	d1 := distanceToLine(p1, p0, p3)
	d2 := distanceToLine(p2, p0, p3)
	if math.Max(d1, d2) < tolerance {
		*points = append(*points, p3)
		return
	}

	// Subdivide the curve using de Casteljau's algorithm.
	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := p2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	s := r0.Lerp(r1, 0.5)

	flattenCubicRec(p0, q0, r0, s, tolerance, points)
	flattenCubicRec(s, r1, q2, p3, tolerance, points)
}

// distanceToLine calculates the perpendicular distance from point p to
// line segment (a, b).
func distanceToLine(p, a, b Point) float64 {
	ab := b.Sub(a)
	abLen := ab.Length()

	if abLen < 1e-10 {
		return p.Distance(a)
	}

	ap := p.Sub(a)
	t := ap.Dot(ab) / (abLen * abLen)

	if t < 0 {
		return p.Distance(a)
	}
	if t > 1 {
		return p.Distance(b)
	}

	closest := a.Add(ab.Mul(t))
	return p.Distance(closest)
}
