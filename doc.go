// Package pinchdeck is the gesture-to-action core of a hand-tracked card
// picker.
//
// An open hand moves a cursor, holding the cursor near a viewport edge pans
// the deck, and a pinch (index fingertip touching the thumb tip) picks the
// hovered card. Each pick runs a timed reveal sequence; after the third pick
// a summary event fires with the picks in order. A mouse can stand in for the
// hand: moving it moves the cursor and pressing the left button is a pinch.
//
// # Quick start
//
// Create a [Session] over the master item list and drive it from a frame
// loop. Each frame, call [Session.Update] with the elapsed time and hand
// [Session.Frame] to a renderer:
//
//	s, err := pinchdeck.NewSession(items, pinchdeck.DefaultConfig(),
//		pinchdeck.WithSource(pinchdeck.EbitenPointer{}),
//		pinchdeck.WithLogger(logger))
//	if err != nil {
//		return err
//	}
//	s.OnComplete(func(sum pinchdeck.Summary) { showSummary(sum.Picks) })
//
//	func (g *Game) Update() error {
//		g.session.Update(pinchdeck.FrameDelta())
//		return nil
//	}
//
// # Pipeline
//
// Within one Update the stages run in a fixed order: reveal timers, input,
// pointer smoothing ([SmoothPointer]), edge panning ([EdgePanVelocity]),
// layout ([LayoutDeck] over [VisiblePool]), hover ([ResolveTarget]), and
// finally the pinch rising edge, which may start a pick.
//
// Pinch detection uses two thresholds ([PinchState]). Keep PinchStart below
// PinchEnd; equal values are accepted but reported by [Config.Warnings]
// because they leave no hysteresis band.
//
// # Reveal sequence
//
// A pick locks the session and walks through [PhaseFaceDown], [PhaseFaceUp],
// and [PhaseMoving] on the durations from [Config], then commits the item and
// unlocks. Time only advances through Update, so tests can step the sequence
// with exact durations. Pinch edges during a reveal or after the pick cap are
// dropped and reported through [Session.OnMissedPick].
//
// # Input
//
// A [Source] is polled once per frame. [HandFeed] bridges a tracking
// goroutine (see [ReadLandmarks]) to the frame loop, [EbitenPointer] reads
// the mouse, and [ChooseSource] falls back to the pointer when tracking is
// unavailable. Scripts of injected input ([LoadTestScript]) drive sessions
// headlessly.
//
// Events are also forwarded to an optional [EventSink]; the pinchdeck/ecs
// module provides a [Donburi] adapter.
//
// [Donburi]: https://github.com/yohamta/donburi
package pinchdeck
