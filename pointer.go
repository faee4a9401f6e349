package pinchdeck

// PointerState holds the raw target written by the active input source and
// the smoothed position consumed by layout and hover.
type PointerState struct {
	Target   Vec2
	Smoothed Vec2
}

// SmoothPointer blends prev toward target by factor. It is applied once per
// frame regardless of elapsed time, and does not clamp.
func SmoothPointer(prev, target Vec2, factor float64) Vec2 {
	return prev.Lerp(target, factor)
}

// Update advances Smoothed one frame toward Target.
func (p *PointerState) Update(factor float64) {
	p.Smoothed = SmoothPointer(p.Smoothed, p.Target, factor)
}

// Reset snaps both target and smoothed position to origin.
func (p *PointerState) Reset(origin Vec2) {
	p.Target = origin
	p.Smoothed = origin
}
