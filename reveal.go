package pinchdeck

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// flipTweenLimit bounds how long the face-up flip animation takes; the rest
// of PhaseFaceUp is reading time.
const flipTweenLimit = 450 * time.Millisecond

// revealSequence drives one pick through its timed phases. Time is supplied
// by the caller through advance, so tests can run it on a virtual clock.
//
// Phase completion is tracked with exact durations. The gween tweens only
// shape the cosmetic progress values handed to renderers.
type revealSequence struct {
	item    Item
	phase   Phase
	elapsed time.Duration // time spent in the current phase

	flip         *gween.Tween
	move         *gween.Tween
	flipProgress float64
	moveProgress float64
	fed          time.Duration // portion of elapsed already fed to the active tween
}

func newRevealSequence(item Item) *revealSequence {
	return &revealSequence{item: item, phase: PhaseFaceDown}
}

// phaseDuration returns how long the current phase lasts.
func (r *revealSequence) phaseDuration(cfg Config) time.Duration {
	switch r.phase {
	case PhaseFaceDown:
		return cfg.FlipDelay
	case PhaseFaceUp:
		return cfg.ReadDuration
	case PhaseMoving:
		return cfg.MoveDuration
	}
	return 0
}

// advance moves the sequence forward by dt. Time left over at the end of a
// phase carries into the next, so one large dt can cross several phases.
// enter is called for every phase entered. It returns true once PhaseMoving
// has run its full duration; the caller then commits the pick.
func (r *revealSequence) advance(dt time.Duration, cfg Config, enter func(from, to Phase)) bool {
	r.elapsed += dt
	for r.elapsed >= r.phaseDuration(cfg) {
		r.elapsed -= r.phaseDuration(cfg)
		r.fed = 0
		switch r.phase {
		case PhaseFaceDown:
			r.phase = PhaseFaceUp
			r.flip = newProgressTween(min(flipTweenLimit, cfg.ReadDuration), ease.OutCubic)
			enter(PhaseFaceDown, PhaseFaceUp)
		case PhaseFaceUp:
			r.phase = PhaseMoving
			r.flipProgress = 1
			r.move = newProgressTween(cfg.MoveDuration, ease.InOutCubic)
			enter(PhaseFaceUp, PhaseMoving)
		case PhaseMoving:
			r.moveProgress = 1
			return true
		}
	}
	r.feedTweens()
	return false
}

// feedTweens pushes the unfed part of elapsed into the active tween.
func (r *revealSequence) feedTweens() {
	step := r.elapsed - r.fed
	r.fed = r.elapsed
	if step <= 0 {
		return
	}
	switch r.phase {
	case PhaseFaceUp:
		r.flipProgress = updateProgress(r.flip, step)
	case PhaseMoving:
		r.moveProgress = updateProgress(r.move, step)
	}
}

// newProgressTween returns a 0→1 tween over d, or nil when d is zero.
func newProgressTween(d time.Duration, fn ease.TweenFunc) *gween.Tween {
	if d <= 0 {
		return nil
	}
	return gween.New(0, 1, float32(d.Seconds()), fn)
}

func updateProgress(t *gween.Tween, step time.Duration) float64 {
	if t == nil {
		return 1
	}
	val, finished := t.Update(float32(step.Seconds()))
	if finished {
		return 1
	}
	return clamp(float64(val), 0, 1)
}
