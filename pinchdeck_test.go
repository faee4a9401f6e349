package pinchdeck

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"outside left", 5, 40, false},
		{"outside right", 115, 40, false},
		{"outside top", 50, 15, false},
		{"outside bottom", 50, 75, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Rect.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRectCenter(t *testing.T) {
	c := Rect{X: 10, Y: 20, Width: 100, Height: 50}.Center()
	if c.X != 60 || c.Y != 45 {
		t.Errorf("Center = %v, want (60,45)", c)
	}
}

func TestVec2LerpAndDist(t *testing.T) {
	a := Vec2{0, 0}
	b := Vec2{3, 4}
	if d := a.Dist(b); !approxEqual(d, 5, epsilon) {
		t.Errorf("Dist = %f, want 5", d)
	}
	m := a.Lerp(b, 0.5)
	if !approxEqual(m.X, 1.5, epsilon) || !approxEqual(m.Y, 2, epsilon) {
		t.Errorf("Lerp = %v, want (1.5,2)", m)
	}
}

func TestPhaseString(t *testing.T) {
	want := map[Phase]string{
		PhaseIdle:     "idle",
		PhaseFaceDown: "face-down",
		PhaseFaceUp:   "face-up",
		PhaseMoving:   "moving",
		Phase(99):     "unknown",
	}
	for p, s := range want {
		if p.String() != s {
			t.Errorf("Phase(%d).String() = %q, want %q", p, p.String(), s)
		}
	}
}
