package pinchdeck

// openHandSpread is the thumb offset used for injected open-hand frames; it
// sits well above any sensible pinch end threshold.
const openHandSpread = 0.15

// InjectHand queues a hand frame with the given normalized index and thumb
// tips. Injected frames are consumed one per Update, ahead of the source.
func (s *Session) InjectHand(index, thumb Vec2) {
	s.injectQueue = append(s.injectQueue, InputFrame{
		Kind: InputHand,
		Hand: HandFrame{Present: true, IndexTip: index, ThumbTip: thumb},
	})
}

// InjectOpenHand queues an open hand with the index tip at the normalized
// point (x, y).
func (s *Session) InjectOpenHand(x, y float64) {
	s.InjectHand(Vec2{X: x, Y: y}, Vec2{X: x, Y: y + openHandSpread})
}

// InjectPinch queues a closed pinch (zero tip distance) at the normalized
// point (x, y).
func (s *Session) InjectPinch(x, y float64) {
	s.InjectHand(Vec2{X: x, Y: y}, Vec2{X: x, Y: y})
}

// InjectNoHand queues a tracking-lost frame.
func (s *Session) InjectNoHand() {
	s.injectQueue = append(s.injectQueue, InputFrame{Kind: InputHand})
}

// InjectPointer queues a pointer-device frame at screen coordinates (x, y).
func (s *Session) InjectPointer(x, y float64, pressed bool) {
	s.injectQueue = append(s.injectQueue, InputFrame{
		Kind: InputPointer, X: x, Y: y, Pressed: pressed,
	})
}

// InjectClick queues a pointer press followed by a release at the same
// screen coordinates. Consumes two frames.
func (s *Session) InjectClick(x, y float64) {
	s.InjectPointer(x, y, true)
	s.InjectPointer(x, y, false)
}

// InjectSweep queues open-hand frames moving linearly from (fromX, fromY) to
// (toX, toY) in normalized space over the given number of frames (min 2).
func (s *Session) InjectSweep(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(frames-1)
		s.InjectOpenHand(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
}

// PendingInput returns the number of queued injected frames.
func (s *Session) PendingInput() int {
	return len(s.injectQueue)
}
