package pinchdeck

// HandFrame is one hand-tracking result. Points are normalized to [0,1] in
// camera space. Present is false when no hand was detected.
type HandFrame struct {
	Present  bool
	IndexTip Vec2
	ThumbTip Vec2
}

// PinchDistance returns the index-to-thumb distance in normalized camera
// space. Mirroring does not change it.
func PinchDistance(f HandFrame) float64 {
	return f.IndexTip.Dist(f.ThumbTip)
}

// PinchState tracks a two-threshold pinch. WasPinching holds the previous
// frame's IsPinching and is only used to find rising edges; the frame loop
// updates it through Consume.
type PinchState struct {
	IsPinching     bool
	WasPinching    bool
	Strength       float64
	StartThreshold float64
	EndThreshold   float64
}

// NewPinchState returns an open-hand state with the given thresholds.
func NewPinchState(start, end float64) PinchState {
	return PinchState{StartThreshold: start, EndThreshold: end}
}

// Update feeds one pinch distance. The state enters pinching below
// StartThreshold and leaves above EndThreshold.
func (p *PinchState) Update(d float64) {
	if !p.IsPinching && d < p.StartThreshold {
		p.IsPinching = true
	} else if p.IsPinching && d > p.EndThreshold {
		p.IsPinching = false
	}
	p.Strength = p.strength(d)
}

// strength maps d to [0,1], 1 at StartThreshold and 0 at EndThreshold. Equal
// thresholds leave no band to interpolate across, so it becomes a step.
func (p *PinchState) strength(d float64) float64 {
	band := p.EndThreshold - p.StartThreshold
	if band <= 0 {
		if d < p.EndThreshold {
			return 1
		}
		return 0
	}
	return clamp((p.EndThreshold-d)/band, 0, 1)
}

// LoseTracking forces the open state when no hand is detected.
func (p *PinchState) LoseTracking() {
	p.IsPinching = false
	p.Strength = 0
}

// Press is the pointer-device stand-in for a pinch start. It clears
// WasPinching so the press always yields a rising edge.
func (p *PinchState) Press() {
	p.WasPinching = false
	p.IsPinching = true
	p.Strength = 1
}

// Release is the pointer-device stand-in for a pinch end.
func (p *PinchState) Release() {
	p.IsPinching = false
	p.Strength = 0
}

// RisingEdge reports whether a pinch began this frame.
func (p *PinchState) RisingEdge() bool {
	return p.IsPinching && !p.WasPinching
}

// Consume records this frame's pinch state for the next edge check.
func (p *PinchState) Consume() {
	p.WasPinching = p.IsPinching
}

// Rearm drops any pending edge while keeping the current pinch. A pinch held
// across a rearm must be released before it can fire again.
func (p *PinchState) Rearm() {
	p.WasPinching = p.IsPinching
}
