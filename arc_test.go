package squircle

import (
	"math"
	"testing"
)

func TestArcToCubics_QuarterCircle(t *testing.T) {
	// Corner arc of a rounded rectangle: from (90, 0) to (100, 10),
	// radius 10, clockwise minor. Center is (90, 10).
	from := Pt(90, 0)
	arc := ArcTo{
		Radii: V2(10, 10),
		Size:  ArcSizeMinor,
		Dir:   Clockwise,
		Point: Pt(100, 10),
	}

	cubics := arcToCubics(from, arc)
	if len(cubics) != 1 {
		t.Fatalf("quarter circle split into %d cubics, want 1", len(cubics))
	}
	if !cubics[0].Point.Approx(arc.Point, 1e-12) {
		t.Errorf("endpoint = %v, want %v", cubics[0].Point, arc.Point)
	}

	// Every on-curve point of the approximation stays close to the
	// true radius.
	center := Pt(90, 10)
	var points []Point
	flattenCubicRec(from, cubics[0].Control1, cubics[0].Control2, cubics[0].Point, 1e-4, &points)
	for _, pt := range points {
		if d := math.Abs(pt.Distance(center) - 10); d > 0.01 {
			t.Errorf("point %v deviates %v from the circle", pt, d)
		}
	}

	// The clockwise arc bulges toward the corner (x > 90 and y < 10
	// along the way); its midpoint is on the outer side.
	mid := evalCubic(from, cubics[0], 0.5)
	if !(mid.X > 90 && mid.Y < 10) {
		t.Errorf("midpoint %v on the wrong side for a clockwise arc", mid)
	}
}

func TestArcToCubics_DirectionSelectsSide(t *testing.T) {
	from := Pt(90, 0)
	end := Pt(100, 10)
	cw := arcToCubics(from, ArcTo{Radii: V2(10, 10), Size: ArcSizeMinor, Dir: Clockwise, Point: end})
	ccw := arcToCubics(from, ArcTo{Radii: V2(10, 10), Size: ArcSizeMinor, Dir: CounterClockwise, Point: end})

	midCW := evalCubic(from, cw[0], 0.5)
	midCCW := evalCubic(from, ccw[0], 0.5)
	if midCW.Approx(midCCW, 1e-3) {
		t.Errorf("cw and ccw arcs coincide at %v", midCW)
	}

	// Opposite windings bow to opposite sides of the chord.
	chord := end.Sub(from)
	crossCW := chord.X*(midCW.Y-from.Y) - chord.Y*(midCW.X-from.X)
	crossCCW := chord.X*(midCCW.Y-from.Y) - chord.Y*(midCCW.X-from.X)
	if crossCW*crossCCW >= 0 {
		t.Errorf("arcs bow to the same side: cross products %v and %v", crossCW, crossCCW)
	}
}

func TestArcToCubics_MajorArc(t *testing.T) {
	from := Pt(90, 0)
	end := Pt(100, 10)
	major := arcToCubics(from, ArcTo{Radii: V2(10, 10), Size: ArcSizeMajor, Dir: Clockwise, Point: end})
	if len(major) < 3 {
		t.Errorf("major arc split into %d cubics, want >= 3 (270 degree sweep)", len(major))
	}
	if !major[len(major)-1].Point.Approx(end, 1e-12) {
		t.Errorf("major arc endpoint = %v, want %v", major[len(major)-1].Point, end)
	}
}

func TestArcToCubics_Degenerate(t *testing.T) {
	tests := []struct {
		name string
		from Point
		arc  ArcTo
	}{
		{"zero radii", Pt(0, 0), ArcTo{Radii: V2(0, 0), Point: Pt(10, 0)}},
		{"coincident endpoints", Pt(5, 5), ArcTo{Radii: V2(10, 10), Point: Pt(5, 5)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cubics := arcToCubics(tt.from, tt.arc)
			if len(cubics) != 1 {
				t.Fatalf("got %d cubics, want 1 straight segment", len(cubics))
			}
			if !cubics[0].Point.Approx(tt.arc.Point, 1e-12) {
				t.Errorf("endpoint = %v, want %v", cubics[0].Point, tt.arc.Point)
			}
		})
	}
}

func TestArcToCubics_UndersizedRadiiScaleUp(t *testing.T) {
	// Radii too small to span the endpoints are scaled up uniformly,
	// per the SVG arc rules; the arc must still land on the endpoint.
	from := Pt(0, 0)
	end := Pt(100, 0)
	cubics := arcToCubics(from, ArcTo{Radii: V2(10, 10), Size: ArcSizeMinor, Dir: Clockwise, Point: end})
	last := cubics[len(cubics)-1]
	if !last.Point.Approx(end, 1e-9) {
		t.Errorf("endpoint = %v, want %v", last.Point, end)
	}
}

// evalCubic evaluates a cubic Bezier starting at from at parameter t.
func evalCubic(from Point, c CubicTo, t float64) Point {
	u := 1 - t
	p := from.Mul(u * u * u)
	p = p.Add(c.Control1.Mul(3 * u * u * t))
	p = p.Add(c.Control2.Mul(3 * u * t * t))
	p = p.Add(c.Point.Mul(t * t * t))
	return p
}
