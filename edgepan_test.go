package pinchdeck

import (
	"math/rand/v2"
	"testing"
	"time"
)

func TestEdgePanVelocity(t *testing.T) {
	cfg := DefaultConfig() // zone 0.14, base 220, gain 520
	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{"center", 500, 0},
		{"left zone boundary", 140, 0},
		{"right zone boundary", 860, 0},
		{"left edge", 0, -740},
		{"right edge", 1000, 740},
		{"halfway into left zone", 70, -240},
		{"halfway into right zone", 930, 240},
		{"beyond left edge", -50, -740},
		{"beyond right edge", 1100, 740},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EdgePanVelocity(tt.x, 1000, cfg); !approxEqual(got, tt.want, 1e-9) {
				t.Errorf("EdgePanVelocity(%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestEdgePanDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EdgeZone = 0
	if v := EdgePanVelocity(0, 1000, cfg); v != 0 {
		t.Errorf("velocity with zero zone = %v, want 0", v)
	}
	if v := EdgePanVelocity(0, 0, DefaultConfig()); v != 0 {
		t.Errorf("velocity with zero viewport = %v, want 0", v)
	}
}

func TestCenteredOffset(t *testing.T) {
	tests := []struct {
		n    int
		want float64
	}{
		{0, 0}, {1, 0}, {2, 0}, {3, 90}, {10, 360}, {11, 450},
	}
	for _, tt := range tests {
		if got := CenteredOffset(tt.n, 90); got != tt.want {
			t.Errorf("CenteredOffset(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestScrollStateBounds(t *testing.T) {
	var s ScrollState
	s.Center(10, 90)
	if s.Min != 0 || s.Max != 810 || s.Offset != 360 {
		t.Fatalf("Center(10) = %+v", s)
	}

	s.Offset = 800
	s.SetBounds(9, 90)
	if s.Max != 720 || s.Offset != 720 {
		t.Errorf("SetBounds(9) = %+v, want offset clamped to 720", s)
	}

	s.SetBounds(0, 90)
	if s.Max != 0 || s.Offset != 0 {
		t.Errorf("SetBounds(0) = %+v, want zero range", s)
	}
}

func TestScrollIntegrateClamps(t *testing.T) {
	var s ScrollState
	s.Center(10, 90)
	s.Integrate(740, 100*time.Millisecond)
	if !approxEqual(s.Offset, 434, 1e-9) {
		t.Errorf("Offset = %v, want 434", s.Offset)
	}
	s.Integrate(1e6, time.Second)
	if s.Offset != s.Max {
		t.Errorf("Offset = %v, want Max %v", s.Offset, s.Max)
	}
	s.Integrate(-1e6, time.Second)
	if s.Offset != s.Min {
		t.Errorf("Offset = %v, want Min %v", s.Offset, s.Min)
	}
}

func TestScrollInvariantUnderRandomInput(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	cfg := DefaultConfig()
	var s ScrollState
	s.Center(20, cfg.Layout.Gap)
	for i := 0; i < 5000; i++ {
		if i%97 == 0 {
			s.SetBounds(rng.IntN(21), cfg.Layout.Gap)
		}
		x := rng.Float64()*1400 - 200
		dt := time.Duration(rng.Int64N(int64(200 * time.Millisecond)))
		s.Integrate(EdgePanVelocity(x, 1000, cfg), min(dt, cfg.MaxFrameDelta))
		if s.Offset < s.Min || s.Offset > s.Max {
			t.Fatalf("step %d: offset %v outside [%v,%v]", i, s.Offset, s.Min, s.Max)
		}
	}
}
