package squircle

import "testing"

func TestVec2_Arithmetic(t *testing.T) {
	tests := []struct {
		name string
		got  Vec2
		want Vec2
	}{
		{"add", V2(1, 2).Add(V2(3, 4)), V2(4, 6)},
		{"sub", V2(5, 7).Sub(V2(2, 3)), V2(3, 4)},
		{"mul", V2(1, -2).Mul(3), V2(3, -6)},
		{"neg", V2(1, -2).Neg(), V2(-1, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Approx(tt.want, 1e-12) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestVec2_DotLength(t *testing.T) {
	if got := V2(3, 4).Length(); got != 5 {
		t.Errorf("Length = %v, want 5", got)
	}
	if got := V2(2, 3).Dot(V2(4, 5)); got != 23 {
		t.Errorf("Dot = %v, want 23", got)
	}
}
