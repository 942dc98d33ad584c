// Package squircle constructs the outline of a smooth-corner
// ("squircle" style) rounded rectangle as a vector path.
//
// # Overview
//
// A plain rounded rectangle joins each straight edge directly to a
// circular arc, which leaves a visible jump in curvature at the join.
// A smooth rounded rectangle inserts a cubic Bezier "shoulder" between
// the edge and a shortened arc so that curvature ramps up gradually,
// the corner treatment popularized by superellipse-based icon shapes.
//
// # Quick Start
//
//	import "github.com/gogpu/squircle"
//
//	// A 200x100 rectangle with radius-20 corners, 60% smoothing.
//	path := squircle.SmoothRoundRect(0, 0, 200, 100, 0.6, 20)
//
//	for _, elem := range path.Elements() {
//		// feed MoveTo/LineTo/CubicTo/ArcTo/Close into any 2D backend
//	}
//
// The construction is a pure function: no shared state, no I/O, safe
// to call concurrently. Output is an ordered command list (Path) that
// any 2D vector backend can consume; ToVector adapts it to
// golang.org/x/image/vector for software filling.
//
// The smoothness parameter must lie in (0, 1]. Zero smoothing is a
// different (and cheaper) shape; use Path.RoundedRectangle or
// PathBuilder.RoundRect for that case.
package squircle
