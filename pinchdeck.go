package pinchdeck

import "math"

// Vec2 is a point in stage pixels or normalized camera space, depending on
// where it is read. Pointer targets and card centers both use it.
type Vec2 struct {
	X, Y float64
}

// Lerp returns the point a fraction t of the way from v to to.
func (v Vec2) Lerp(to Vec2, t float64) Vec2 {
	return Vec2{X: v.X + (to.X-v.X)*t, Y: v.Y + (to.Y-v.Y)*t}
}

// Dist returns the Euclidean distance between v and o.
func (v Vec2) Dist(o Vec2) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

// Rect is a card's screen-space hit box. Y grows down the screen.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether a pointer at (x, y) is over the box, edges
// included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// ItemID identifies an Item in the master list.
type ItemID int

// NoItem is the zero hover/reveal value. Real item ids may take any value,
// NoItem included, so callers always pair an ItemID with an ok flag; NoItem
// only marks unused fields.
const NoItem ItemID = -1

// Item is an immutable deck entry. The master list is fixed at session start.
type Item struct {
	ID        ItemID `json:"id" yaml:"id"`
	Title     string `json:"title" yaml:"title"`
	Subtitle  string `json:"subtitle" yaml:"subtitle"`
	Glyph     string `json:"glyph" yaml:"glyph"`
	RankLabel string `json:"rankLabel" yaml:"rank_label"`
}

// Phase names a step of the reveal sequence.
type Phase uint8

const (
	PhaseIdle     Phase = iota // no reveal in flight; picks allowed
	PhaseFaceDown              // revealed item shown face-down before the flip
	PhaseFaceUp                // item flipped face-up and held for reading
	PhaseMoving                // item travelling toward the picked stack
)

// String returns the lowercase phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseFaceDown:
		return "face-down"
	case PhaseFaceUp:
		return "face-up"
	case PhaseMoving:
		return "moving"
	default:
		return "unknown"
	}
}

// EventType identifies a kind of session event.
type EventType uint8

const (
	EventPick        EventType = iota // fires when a reveal starts for an item
	EventPhase                        // fires on every reveal phase transition
	EventCommit                       // fires when a picked item joins the chosen set
	EventHoverChange                  // fires when the hovered item changes (including to none)
	EventMissedPick                   // fires when a pinch edge is dropped
	EventComplete                     // fires when the summary opens after the last pick
	EventStatus                       // fires when the status message changes
	EventReset                        // fires after a session reset
)

// MissReason explains why a pinch edge did not start a pick.
type MissReason uint8

const (
	MissRevealing MissReason = iota // a reveal is already in flight
	MissCapReached                  // the pick cap is already reached
	MissNoTarget                    // nothing is hovered
)

// String returns a short description of the reason.
func (r MissReason) String() string {
	switch r {
	case MissRevealing:
		return "revealing"
	case MissCapReached:
		return "cap reached"
	case MissNoTarget:
		return "no target"
	default:
		return "unknown"
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
