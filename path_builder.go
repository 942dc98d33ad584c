package squircle

// PathBuilder provides a fluent interface for path construction.
// All methods return the builder for chaining.
type PathBuilder struct {
	path *Path
}

// BuildPath starts a new path builder.
func BuildPath() *PathBuilder {
	return &PathBuilder{path: NewPath()}
}

// MoveTo moves to a new position.
func (b *PathBuilder) MoveTo(x, y float64) *PathBuilder {
	b.path.MoveTo(x, y)
	return b
}

// LineTo draws a line to a position.
func (b *PathBuilder) LineTo(x, y float64) *PathBuilder {
	b.path.LineTo(x, y)
	return b
}

// CubicTo draws a cubic Bezier curve.
func (b *PathBuilder) CubicTo(c1x, c1y, c2x, c2y, x, y float64) *PathBuilder {
	b.path.CubicTo(c1x, c1y, c2x, c2y, x, y)
	return b
}

// ArcTo draws an elliptical arc to a position.
func (b *PathBuilder) ArcTo(rx, ry, rotation float64, size ArcSize, dir PathDirection, x, y float64) *PathBuilder {
	b.path.ArcTo(rx, ry, rotation, size, dir, x, y)
	return b
}

// Close closes the current subpath.
func (b *PathBuilder) Close() *PathBuilder {
	b.path.Close()
	return b
}

// Rect adds a rectangle to the path.
func (b *PathBuilder) Rect(x, y, w, h float64) *PathBuilder {
	b.path.Rectangle(x, y, w, h)
	return b
}

// RoundRect adds a plainly rounded rectangle to the path. The radius
// is clamped to half the smaller dimension. This is the companion for
// corner radii without smoothing; see SmoothRoundRect for the smoothed
// variant.
func (b *PathBuilder) RoundRect(x, y, w, h, r float64) *PathBuilder {
	b.path.RoundedRectangle(x, y, w, h, r)
	return b
}

// SmoothRoundRect adds a smooth-corner rounded rectangle to the path.
// smoothness must lie in (0, 1]; use RoundRect when no smoothing is
// wanted. See Path.SmoothRoundedRectangle for the full preconditions.
func (b *PathBuilder) SmoothRoundRect(x, y, w, h, smoothness, radius float64) *PathBuilder {
	b.path.SmoothRoundedRectangle(x, y, w, h, smoothness, radius)
	return b
}

// Build returns the constructed path.
func (b *PathBuilder) Build() *Path {
	return b.path
}

// Path returns the constructed path (alias for Build).
func (b *PathBuilder) Path() *Path {
	return b.path
}
