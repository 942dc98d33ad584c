package squircle

import (
	"testing"
)

func TestPathBuilder_Basic(t *testing.T) {
	path := BuildPath().
		MoveTo(0, 0).
		LineTo(100, 0).
		LineTo(100, 100).
		Close().
		Build()

	if path == nil {
		t.Fatal("expected non-nil path")
	}

	count := len(path.Elements())
	if count != 4 { // MoveTo, LineTo, LineTo, Close
		t.Errorf("expected 4 elements, got %d", count)
	}
}

func TestPathBuilder_Shapes(t *testing.T) {
	tests := []struct {
		name    string
		builder func() *PathBuilder
		elems   int
	}{
		{"Rect", func() *PathBuilder { return BuildPath().Rect(0, 0, 100, 100) }, 5},
		{"RoundRect", func() *PathBuilder { return BuildPath().RoundRect(0, 0, 100, 100, 10) }, 10},
		{"SmoothRoundRect", func() *PathBuilder { return BuildPath().SmoothRoundRect(0, 0, 100, 100, 0.6, 10) }, 17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := tt.builder().Build()
			count := len(path.Elements())
			if count != tt.elems {
				t.Errorf("expected %d elements, got %d", tt.elems, count)
			}
		})
	}
}

func TestPathBuilder_Chaining(t *testing.T) {
	path := BuildPath().
		Rect(200, 50, 100, 100).
		SmoothRoundRect(0, 0, 100, 100, 0.8, 10).
		Build()

	if path == nil {
		t.Fatal("expected non-nil path")
	}

	// Rect: 5 (MoveTo + 3 LineTo + Close)
	// SmoothRoundRect: 17
	count := len(path.Elements())
	if count != 22 {
		t.Errorf("expected 22 elements from chained shapes, got %d", count)
	}
}

func TestPathBuilder_ArcTo(t *testing.T) {
	path := BuildPath().
		MoveTo(90, 0).
		ArcTo(10, 10, 0, ArcSizeMinor, Clockwise, 100, 10).
		Build()

	count := len(path.Elements())
	if count != 2 { // MoveTo, ArcTo
		t.Errorf("expected 2 elements, got %d", count)
	}
}

func TestPathBuilder_RoundRectRadiusClamping(t *testing.T) {
	// Radius larger than half the smaller dimension is clamped,
	// producing a pill shape rather than a broken path.
	path := BuildPath().RoundRect(0, 0, 100, 50, 100).Build()

	move, ok := path.Elements()[0].(MoveTo)
	if !ok {
		t.Fatalf("first element is %T, want MoveTo", path.Elements()[0])
	}
	if !move.Point.Approx(Pt(25, 0), 1e-12) {
		t.Errorf("first point = %v, want (25, 0)", move.Point)
	}
}

func TestPathBuilder_PathAlias(t *testing.T) {
	builder := BuildPath().MoveTo(0, 0).LineTo(100, 100)

	// Both Build() and Path() should return the same path
	pathFromBuild := builder.Build()
	pathFromPath := builder.Path()

	if pathFromBuild != pathFromPath {
		t.Error("Build() and Path() should return the same path")
	}
}

func TestPathBuilder_EmptyPath(t *testing.T) {
	path := BuildPath().Build()

	if path == nil {
		t.Fatal("expected non-nil path")
	}

	count := len(path.Elements())
	if count != 0 {
		t.Errorf("expected 0 elements for empty path, got %d", count)
	}
}
