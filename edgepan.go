package pinchdeck

import "time"

// ScrollState is the deck's 1-D scroll position. Min <= Offset <= Max holds
// after every method returns.
type ScrollState struct {
	Offset, Min, Max float64
}

// SetBounds recomputes the range for a pool of n visible cards spaced gap
// apart and clamps Offset into it.
func (s *ScrollState) SetBounds(n int, gap float64) {
	s.Min = 0
	s.Max = max(0, float64(n-1)*gap)
	s.Offset = clamp(s.Offset, s.Min, s.Max)
}

// Center sets bounds for n cards and moves Offset to the middle card.
func (s *ScrollState) Center(n int, gap float64) {
	s.SetBounds(n, gap)
	s.Offset = CenteredOffset(n, gap)
}

// Integrate advances Offset by velocity v (pixels per second) over dt and
// clamps the result.
func (s *ScrollState) Integrate(v float64, dt time.Duration) {
	if v == 0 {
		return
	}
	s.Offset = clamp(s.Offset+v*dt.Seconds(), s.Min, s.Max)
}

// CenteredOffset is the starting offset that puts the middle card of an
// n-card pool at the layout center.
func CenteredOffset(n int, gap float64) float64 {
	if n <= 1 {
		return 0
	}
	mid := (n - 1) / 2
	return clamp(float64(mid)*gap, 0, float64(n-1)*gap)
}

// EdgePanVelocity maps the pointer's x to a scroll velocity. Inside the left
// or right edge zone the speed grows quadratically toward the edge; outside
// both zones it is zero.
func EdgePanVelocity(x, viewportW float64, cfg Config) float64 {
	if cfg.EdgeZone <= 0 || viewportW <= 0 {
		return 0
	}
	left := viewportW * cfg.EdgeZone
	right := viewportW * (1 - cfg.EdgeZone)
	switch {
	case x < left:
		f := 1 - clamp(x/left, 0, 1)
		return -(cfg.EdgePanBase + cfg.EdgePanGain*f) * f
	case x > right:
		f := clamp((x-right)/(viewportW-right), 0, 1)
		return (cfg.EdgePanBase + cfg.EdgePanGain*f) * f
	}
	return 0
}
