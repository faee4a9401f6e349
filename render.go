package pinchdeck

// Frame is everything a renderer needs for one frame. The core never touches
// presentation; a Renderer turns Frame into pixels.
type Frame struct {
	Cards []CardView

	Cursor        Vec2
	CursorVisible bool
	Pinching      bool
	Strength      float64

	Hovered  ItemID
	HasHover bool

	Revealing    bool
	Phase        Phase
	RevealItem   Item
	FlipProgress float64
	MoveProgress float64

	PickCount   int
	PickCap     int
	Picked      []ItemID
	SummaryOpen bool
	Status      string
	Mirror      bool

	Scroll ScrollState
}

// Renderer draws frames. Implementations live outside the core.
type Renderer interface {
	Render(f Frame)
}

// Frame returns a snapshot of the current output state. The Cards and Picked
// slices are copies.
func (s *Session) Frame() Frame {
	cards := make([]CardView, len(s.views))
	copy(cards, s.views)
	f := Frame{
		Cards:         cards,
		Cursor:        s.pointer.Smoothed,
		CursorVisible: s.hasHand,
		Pinching:      s.pinch.IsPinching,
		Strength:      s.pinch.Strength,
		Hovered:       s.hovered,
		HasHover:      s.hasHover,
		Revealing:     s.Revealing(),
		Phase:         s.Phase(),
		PickCount:     len(s.picked),
		PickCap:       s.cfg.PickCap,
		Picked:        s.Picked(),
		SummaryOpen:   s.summaryOpen,
		Status:        s.status,
		Mirror:        s.mirror,
		Scroll:        s.scroll,
	}
	if s.reveal != nil {
		f.RevealItem = s.reveal.item
		f.FlipProgress = s.reveal.flipProgress
		f.MoveProgress = s.reveal.moveProgress
	}
	return f
}

// Render hands the current frame to r.
func (s *Session) Render(r Renderer) {
	r.Render(s.Frame())
}
