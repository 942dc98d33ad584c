package squircle

import "golang.org/x/image/vector"

// ToVector replays a path into a golang.org/x/image/vector rasterizer.
// Lines and cubics map directly; arcs are converted to cubic segments
// first, since the rasterizer has no arc primitive. The path itself is
// not modified.
//
// This is a convenience for consumers that want a software fill; the
// path construction above it stays independent of any rendering
// backend.
func ToVector(p *Path, r *vector.Rasterizer) {
	var current Point
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			r.MoveTo(float32(e.Point.X), float32(e.Point.Y))
			current = e.Point
		case LineTo:
			r.LineTo(float32(e.Point.X), float32(e.Point.Y))
			current = e.Point
		case CubicTo:
			r.CubeTo(
				float32(e.Control1.X), float32(e.Control1.Y),
				float32(e.Control2.X), float32(e.Control2.Y),
				float32(e.Point.X), float32(e.Point.Y),
			)
			current = e.Point
		case ArcTo:
			cubics := arcToCubics(current, e)
			for _, c := range cubics {
				r.CubeTo(
					float32(c.Control1.X), float32(c.Control1.Y),
					float32(c.Control2.X), float32(c.Control2.Y),
					float32(c.Point.X), float32(c.Point.Y),
				)
			}
			current = e.Point
			Logger().Debug("arc converted for rasterizer", "segments", len(cubics))
		case Close:
			r.ClosePath()
		}
	}
}
