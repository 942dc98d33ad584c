package squircle

import "math"

// Shape constants of the smooth-corner construction. They are
// intrinsic to the algorithm, not configuration.
const (
	// arcConnectingBaseAngle, scaled by smoothness, gives the angle
	// from the corner bisector at which the shoulder curve hands off
	// to the circular arc. Full smoothing hands off at 45 degrees,
	// consuming the entire quarter arc.
	arcConnectingBaseAngle = math.Pi / 4

	// edgeCurvePointRatio places the edge-side Bezier control point
	// between the full smoothing length and the arc hand-off offset.
	// An empirical constant: it governs how flat the shoulder of the
	// curve looks.
	edgeCurvePointRatio = 2.0 / 3.0
)

// cornerGeometry holds the scalar offsets shared by all four corners
// of a smooth rounded rectangle. It is computed once per rectangle and
// reused, mirrored by axis swap and sign flip, for every corner.
//
// "Parallel" and "perpendicular" below are relative to the direction
// of the edge the outline travels along.
type cornerGeometry struct {
	// roundingSegmentLength is the edge length consumed by plain
	// rounding. The general squircle edge formula
	// R*sqrt((1+cos t)/(1-cos t)) collapses to exactly R at the
	// 90 degree corner of a rectangle.
	roundingSegmentLength float64

	// smoothingRoundingSegmentLength is the edge length consumed by
	// rounding and smoothing together: (1+smoothness) times the plain
	// rounding length.
	smoothingRoundingSegmentLength float64

	// edgeConnectingOffset is the distance from the corner, along each
	// edge, at which the shoulder curve begins.
	edgeConnectingOffset float64

	// arcConnectingAngle is where the shoulder curve meets the arc,
	// measured from the corner bisector.
	arcConnectingAngle float64

	// arcConnectingVector is the offset from the arc's center to the
	// point where the shoulder curve meets the arc.
	arcConnectingVector Vec2

	// arcCurveOffset is the arc-side control point's offset from the
	// corner in the edge-parallel direction.
	arcCurveOffset float64

	// edgeCurveOffset is the edge-side control point's offset from the
	// corner in the edge-parallel direction.
	edgeCurveOffset float64

	radius float64
}

func newCornerGeometry(smoothness, radius float64) cornerGeometry {
	g := cornerGeometry{radius: radius}

	g.roundingSegmentLength = radius
	g.smoothingRoundingSegmentLength = (1 + smoothness) * g.roundingSegmentLength
	g.edgeConnectingOffset = g.smoothingRoundingSegmentLength

	g.arcConnectingAngle = arcConnectingBaseAngle * smoothness
	sin, cos := math.Sincos(g.arcConnectingAngle)
	g.arcConnectingVector = V2(1-sin, 1-cos).Mul(radius)

	arcCurveOffsetFromConnecting := math.Tan(g.arcConnectingAngle/2) * cos * radius
	g.arcCurveOffset = g.arcConnectingVector.X + arcCurveOffsetFromConnecting

	g.edgeCurveOffset = g.smoothingRoundingSegmentLength -
		(g.smoothingRoundingSegmentLength-g.arcCurveOffset)*edgeCurvePointRatio

	return g
}

// cornerFrame orients the shared corner geometry for one rectangle
// corner: the corner position plus unit axes pointing from the corner
// back along the entry edge (where the outline arrives from) and along
// the exit edge (where it leaves). The four frames are pure axis/sign
// permutations of one another.
type cornerFrame struct {
	corner Point
	entry  Vec2
	exit   Vec2
}

// appendCorner emits one corner: shoulder curve in, circular arc
// across the tip, mirrored shoulder curve out. first selects MoveTo
// over LineTo for the entry point.
func (g cornerGeometry) appendCorner(p *Path, f cornerFrame, first bool) {
	entryAt := func(d float64) Point { return f.corner.Translate(f.entry.Mul(d)) }
	exitAt := func(d float64) Point { return f.corner.Translate(f.exit.Mul(d)) }

	in := entryAt(g.edgeConnectingOffset)
	if first {
		p.MoveTo(in.X, in.Y)
	} else {
		p.LineTo(in.X, in.Y)
	}

	// Shoulder from the entry edge to the arc hand-off point. The
	// hand-off sits at arcConnectingVector, with its components mapped
	// onto this corner's axes (parallel component along the entry
	// edge, perpendicular component toward the exit edge).
	handOffIn := f.corner.Translate(
		f.entry.Mul(g.arcConnectingVector.X).Add(f.exit.Mul(g.arcConnectingVector.Y)))
	c1 := entryAt(g.edgeCurveOffset)
	c2 := entryAt(g.arcCurveOffset)
	p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, handOffIn.X, handOffIn.Y)

	// Circular arc to the mirrored hand-off point.
	handOffOut := f.corner.Translate(
		f.entry.Mul(g.arcConnectingVector.Y).Add(f.exit.Mul(g.arcConnectingVector.X)))
	p.ArcTo(g.radius, g.radius, 0, ArcSizeMinor, Clockwise, handOffOut.X, handOffOut.Y)

	// Mirrored shoulder out to the exit edge.
	c3 := exitAt(g.arcCurveOffset)
	c4 := exitAt(g.edgeCurveOffset)
	out := exitAt(g.edgeConnectingOffset)
	p.CubicTo(c3.X, c3.Y, c4.X, c4.Y, out.X, out.Y)
}

// SmoothRoundedRectangle appends a closed smooth-corner rounded
// rectangle, traced clockwise starting on the left edge at
// (x, y+(1+smoothness)*radius).
//
// Preconditions, the caller's responsibility: w > 0, h > 0,
// 0 < smoothness <= 1, radius > 0, and the rectangle must be large
// enough that opposing corner geometries do not overlap, i.e.
// 2*(1+smoothness)*radius may exceed neither w nor h. Builds with the
// debug tag assert these; release builds do not check and produce an
// unspecified path for invalid input.
//
// smoothness == 0 is deliberately not handled here: the arc hand-off
// would have zero extent. Use RoundedRectangle for unsmoothed corners.
func (p *Path) SmoothRoundedRectangle(x, y, w, h, smoothness, radius float64) {
	debugAssert(w > 0, "width must be positive")
	debugAssert(h > 0, "height must be positive")
	debugAssert(smoothness > 0, "smoothness must be positive; use RoundedRectangle for smoothness == 0")
	debugAssert(smoothness <= 1, "smoothness must not exceed 1")
	debugAssert(radius > 0, "radius must be positive")

	g := newCornerGeometry(smoothness, radius)
	debugAssert(2*g.edgeConnectingOffset <= w && 2*g.edgeConnectingOffset <= h,
		"rectangle too small for its corner geometry")

	frames := [4]cornerFrame{
		{corner: Pt(x, y), entry: V2(0, 1), exit: V2(1, 0)},       // top-left
		{corner: Pt(x+w, y), entry: V2(-1, 0), exit: V2(0, 1)},    // top-right
		{corner: Pt(x+w, y+h), entry: V2(0, -1), exit: V2(-1, 0)}, // bottom-right
		{corner: Pt(x, y+h), entry: V2(1, 0), exit: V2(0, -1)},    // bottom-left
	}
	for i, f := range frames {
		g.appendCorner(p, f, i == 0)
	}
	p.Close()
}

// SmoothRoundRect builds the outline of a smooth-corner rounded
// rectangle as a new path. See Path.SmoothRoundedRectangle for the
// traversal order and preconditions.
func SmoothRoundRect(x, y, width, height, smoothness, radius float64) *Path {
	p := NewPath()
	p.SmoothRoundedRectangle(x, y, width, height, smoothness, radius)
	return p
}
