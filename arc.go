package squircle

import "math"

// Conversion of endpoint-parameterized arcs (ArcTo) to center
// parameterization and on to cubic Bezier segments, following the SVG
// arc implementation notes (F.6.5). Used by Flatten and ToVector; the
// ArcTo elements themselves stay untouched in the path.

// arcToCubics approximates the arc from the point from to a.Point with
// cubic Bezier segments, each spanning at most a quarter turn.
func arcToCubics(from Point, a ArcTo) []CubicTo {
	rx := math.Abs(a.Radii.X)
	ry := math.Abs(a.Radii.Y)
	if rx < 1e-12 || ry < 1e-12 || from.Approx(a.Point, 1e-12) {
		// Degenerate arc, drawn as a straight line.
		return []CubicTo{{
			Control1: from.Lerp(a.Point, 1.0/3.0),
			Control2: from.Lerp(a.Point, 2.0/3.0),
			Point:    a.Point,
		}}
	}

	sinPhi, cosPhi := math.Sincos(a.Rotation)
	sweep := a.Dir == Clockwise
	large := a.Size == ArcSizeMajor

	// Transform to the ellipse-aligned frame, midpoint at the origin.
	dx2 := (from.X - a.Point.X) / 2
	dy2 := (from.Y - a.Point.Y) / 2
	x1p := cosPhi*dx2 + sinPhi*dy2
	y1p := -sinPhi*dx2 + cosPhi*dy2

	// Scale up radii that cannot reach both endpoints.
	lambda := x1p*x1p/(rx*rx) + y1p*y1p/(ry*ry)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	radicand := rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p
	if radicand < 0 {
		radicand = 0
	} else {
		radicand /= rx*rx*y1p*y1p + ry*ry*x1p*x1p
	}
	coef := math.Sqrt(radicand)
	if large == sweep {
		coef = -coef
	}

	cxp := coef * rx * y1p / ry
	cyp := -coef * ry * x1p / rx

	cx := cosPhi*cxp - sinPhi*cyp + (from.X+a.Point.X)/2
	cy := sinPhi*cxp + cosPhi*cyp + (from.Y+a.Point.Y)/2

	theta1 := vectorAngle(1, 0, (x1p-cxp)/rx, (y1p-cyp)/ry)
	delta := vectorAngle((x1p-cxp)/rx, (y1p-cyp)/ry, (-x1p-cxp)/rx, (-y1p-cyp)/ry)
	if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	}
	if sweep && delta < 0 {
		delta += 2 * math.Pi
	}

	// One cubic per quarter turn. Snap the ratio so that an exact
	// quarter does not split into two segments from rounding noise.
	ratio := math.Abs(delta) / (math.Pi / 2)
	if math.Abs(1-ratio) < 1e-7 {
		ratio = 1
	}
	n := int(math.Ceil(ratio))
	if n < 1 {
		n = 1
	}
	step := delta / float64(n)
	arm := 4.0 / 3.0 * math.Tan(step/4)

	point := func(theta float64) Point {
		sin, cos := math.Sincos(theta)
		ux := rx * cos
		uy := ry * sin
		return Pt(cx+cosPhi*ux-sinPhi*uy, cy+sinPhi*ux+cosPhi*uy)
	}
	deriv := func(theta float64) Vec2 {
		sin, cos := math.Sincos(theta)
		ux := -rx * sin
		uy := ry * cos
		return V2(cosPhi*ux-sinPhi*uy, sinPhi*ux+cosPhi*uy)
	}

	cubics := make([]CubicTo, 0, n)
	p0 := point(theta1)
	for i := 0; i < n; i++ {
		ta := theta1 + float64(i)*step
		tb := ta + step
		p3 := point(tb)
		if i == n-1 {
			// Land exactly on the requested endpoint.
			p3 = a.Point
		}
		cubics = append(cubics, CubicTo{
			Control1: p0.Translate(deriv(ta).Mul(arm)),
			Control2: p3.Translate(deriv(tb).Mul(-arm)),
			Point:    p3,
		})
		p0 = p3
	}
	return cubics
}

// vectorAngle returns the signed angle from vector u to vector v.
func vectorAngle(ux, uy, vx, vy float64) float64 {
	sign := 1.0
	if ux*vy-uy*vx < 0 {
		sign = -1
	}
	dot := ux*vx + uy*vy
	mag := math.Sqrt((ux*ux + uy*uy) * (vx*vx + vy*vy))
	c := dot / mag
	if c > 1 {
		c = 1
	} else if c < -1 {
		c = -1
	}
	return sign * math.Acos(c)
}
