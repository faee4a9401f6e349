package pinchdeck

import (
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"
)

const (
	statusRevealing = "Revealing…"
	statusPickMore  = "Move to pick more…"
)

// Session owns all mutable state of one picking session: deck order, chosen
// and picked items, pointer and pinch state, scroll, hover, and the reveal
// sequence. It is driven by a single frame loop calling Update and is not
// safe for concurrent use.
type Session struct {
	cfg Config
	log *zap.Logger
	rng *rand.Rand

	items   []Item
	index   itemIndex
	deck    Deck
	shuffle bool

	chosen ChosenSet
	picked []ItemID
	pool   []ItemID

	metrics Metrics
	pointer PointerState
	pinch   PinchState
	scroll  ScrollState
	hasHand bool
	mirror  bool

	hovered  ItemID
	hasHover bool

	reveal         *revealSequence
	summaryPending bool
	summaryLeft    time.Duration
	summaryOpen    bool
	summaryDone    bool
	status         string

	views   []CardView
	candBuf []HoverCandidate

	// Input
	source      Source
	injectQueue []InputFrame
	testRunner  *TestRunner

	handlers handlerRegistry
	sink     EventSink

	frameCount uint64
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(s *Session) {
		if log != nil {
			s.log = log
		}
	}
}

// WithRand sets the random source used to shuffle the deck.
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// WithShuffle controls whether the deck is shuffled at start and on
// Reset(true). It defaults to true.
func WithShuffle(enabled bool) Option {
	return func(s *Session) { s.shuffle = enabled }
}

// WithSource sets the input source polled each frame.
func WithSource(src Source) Option {
	return func(s *Session) { s.source = src }
}

// WithMetrics sets the initial layout surface.
func WithMetrics(m Metrics) Option {
	return func(s *Session) { s.metrics = m }
}

// NewSession starts a session over items. Item ids must be unique.
func NewSession(items []Item, cfg Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	index := newItemIndex(items)
	if len(index) != len(items) {
		return nil, fmt.Errorf("new session: duplicate item ids in %d items", len(items))
	}
	master := make([]Item, len(items))
	copy(master, items)

	s := &Session{
		cfg:     cfg,
		log:     zap.NewNop(),
		items:   master,
		index:   index,
		shuffle: true,
		chosen:  ChosenSet{},
		metrics: DefaultMetrics(1280, 720, cfg),
		pinch:   NewPinchState(cfg.PinchStart, cfg.PinchEnd),
		mirror:  cfg.Mirror,
		hovered: NoItem,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	for _, w := range cfg.Warnings() {
		s.log.Warn("config smell", zap.String("detail", w))
	}

	s.deck = NewDeck(master)
	if s.shuffle {
		s.deck.Shuffle(s.rng)
	}
	s.pointer.Reset(s.pointerOrigin())
	s.refreshPool()
	s.scroll.Center(len(s.pool), s.metrics.Gap)
	s.layout()
	return s, nil
}

// Config returns the session configuration.
func (s *Session) Config() Config {
	return s.cfg
}

// SetConfig swaps in a new configuration between frames. Pinch thresholds,
// layout, and scroll bounds pick it up immediately; a reveal in flight keeps
// running on the new durations. Lowering the pick cap to the number already
// picked starts the summary countdown. The mirror setting is left as the user
// last chose it.
func (s *Session) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	for _, w := range cfg.Warnings() {
		s.log.Warn("config smell", zap.String("detail", w))
	}
	s.cfg = cfg
	s.pinch.StartThreshold = cfg.PinchStart
	s.pinch.EndThreshold = cfg.PinchEnd
	s.metrics.CardW = cfg.Layout.CardW
	s.metrics.Gap = cfg.Layout.Gap
	s.refreshPool()
	s.scroll.SetBounds(len(s.pool), s.metrics.Gap)
	s.layout()
	s.log.Info("config updated")
	if s.reveal == nil && len(s.picked) > 0 && len(s.picked) >= cfg.PickCap &&
		!s.summaryPending && !s.summaryDone {
		s.startSummary()
	}
	return nil
}

// SetSource replaces the input source. A nil source leaves input to
// ApplyInput and injection.
func (s *Session) SetSource(src Source) {
	s.source = src
}

// Update runs one frame: reveal and summary timers, input, pointer
// smoothing, edge pan, layout, hover, and the pinch edge check.
func (s *Session) Update(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	s.frameCount++
	tr := s.beginFrameStats()

	s.advanceTimers(dt)

	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInput()
	tr.mark(&tr.input)

	s.pointer.Update(s.cfg.SmoothingFactor)
	s.refreshPool()
	s.scroll.SetBounds(len(s.pool), s.metrics.Gap)
	s.updateScroll(min(dt, s.cfg.MaxFrameDelta))
	s.layout()
	tr.mark(&tr.layout)

	if s.updateHover() {
		s.layout()
	}
	tr.mark(&tr.hover)

	if s.pinch.RisingEdge() {
		s.tryPick()
	}
	s.pinch.Consume()

	s.endFrameStats(tr)
}

// --- Input ---

// processInput consumes one injected frame if any is queued, otherwise polls
// the source.
func (s *Session) processInput() {
	if len(s.injectQueue) > 0 {
		f := s.injectQueue[0]
		copy(s.injectQueue, s.injectQueue[1:])
		s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]
		s.ApplyInput(f)
		return
	}
	if s.source != nil {
		s.ApplyInput(s.source.Poll())
	}
}

// ApplyInput writes one input frame into pointer and pinch state. Call it from
// the frame loop only, before Update, when pushing input instead of using a
// Source.
func (s *Session) ApplyInput(f InputFrame) {
	switch f.Kind {
	case InputHand:
		if !f.Hand.Present {
			s.hasHand = false
			s.pinch.LoseTracking()
			return
		}
		s.hasHand = true
		xn := f.Hand.IndexTip.X
		if s.mirror {
			xn = 1 - xn
		}
		st := s.metrics.Stage
		s.pointer.Target = Vec2{X: st.X + xn*st.Width, Y: st.Y + f.Hand.IndexTip.Y*st.Height}
		s.pinch.Update(PinchDistance(f.Hand))
	case InputPointer:
		s.hasHand = true
		s.pointer.Target = Vec2{X: f.X, Y: f.Y}
		if f.Pressed && !s.pinch.IsPinching {
			s.pinch.Press()
		} else if !f.Pressed && s.pinch.IsPinching {
			s.pinch.Release()
		}
	}
}

// SetMirror sets whether hand x coordinates are mirrored.
func (s *Session) SetMirror(on bool) {
	s.mirror = on
	if on {
		s.setStatus("Mirror: ON")
	} else {
		s.setStatus("Mirror: OFF")
	}
}

// ToggleMirror flips the mirror setting.
func (s *Session) ToggleMirror() {
	s.SetMirror(!s.mirror)
}

func (s *Session) pointerOrigin() Vec2 {
	st := s.metrics.Stage
	return Vec2{X: st.X + st.Width*0.5, Y: st.Y + st.Height*0.45}
}

// --- Scroll, layout, hover ---

func (s *Session) updateScroll(dt time.Duration) {
	if !s.hasHand || s.pinch.IsPinching || s.Revealing() {
		return
	}
	v := EdgePanVelocity(s.pointer.Smoothed.X, s.metrics.ViewportW, s.cfg)
	s.scroll.Integrate(v, dt)
}

// refreshPool recomputes the visible pool. Scroll bounds and layout both
// read s.pool, so callers refresh it before touching either.
func (s *Session) refreshPool() {
	s.pool = appendVisiblePool(s.pool[:0], s.deck, s.chosen)
}

func (s *Session) layout() {
	s.views = appendLayout(s.views[:0], s.pool, s.deck, s.chosen, s.scroll.Offset, s.metrics,
		s.hovered, s.hasHover, s.cfg.Layout)
}

// updateHover re-resolves the hovered card and reports whether it changed.
func (s *Session) updateHover() bool {
	if !s.hasHand || s.Revealing() {
		return s.setHovered(NoItem, false)
	}
	s.candBuf = hoverCandidates(s.views, s.candBuf)
	id, ok := ResolveTarget(s.pointer.Smoothed, s.candBuf, s.metrics.ViewportW, s.cfg)
	return s.setHovered(id, ok)
}

func (s *Session) setHovered(id ItemID, ok bool) bool {
	if ok == s.hasHover && (!ok || id == s.hovered) {
		return false
	}
	ctx := HoverContext{Prev: s.hovered, HasPrev: s.hasHover, Current: id, HasCurrent: ok}
	if ok {
		s.hovered = id
	} else {
		s.hovered = NoItem
	}
	s.hasHover = ok
	s.fireHover(ctx)
	return true
}

// --- Selection ---

func (s *Session) tryPick() {
	var reason MissReason
	switch {
	case s.Revealing():
		reason = MissRevealing
	case len(s.picked) >= s.cfg.PickCap:
		reason = MissCapReached
	case !s.hasHover || s.chosen.Has(s.hovered):
		reason = MissNoTarget
	default:
		s.startReveal(s.hovered)
		return
	}
	s.log.Debug("pinch dropped", zap.Stringer("reason", reason), zap.Int("picked", len(s.picked)))
	s.fireMiss(MissContext{Reason: reason, Hovered: s.hovered, HasHover: s.hasHover, PickCount: len(s.picked)})
}

func (s *Session) startReveal(id ItemID) {
	item := s.items[s.index[id]]
	s.reveal = newRevealSequence(item)
	s.setStatus(statusRevealing)
	s.setHovered(NoItem, false)
	s.layout()

	s.log.Info("reveal started", zap.Int("item", int(id)), zap.Int("pick", len(s.picked)+1))
	s.firePick(PickContext{Item: item, PickIndex: len(s.picked)})
	s.firePhase(PhaseContext{Item: item, From: PhaseIdle, To: PhaseFaceDown})
}

// advanceTimers runs the summary countdown, then the reveal sequence. The
// summary goes first so a countdown started by this frame's commit is not
// charged for the same dt.
func (s *Session) advanceTimers(dt time.Duration) {
	if s.summaryPending {
		s.summaryLeft -= dt
		if s.summaryLeft <= 0 {
			s.openSummary()
		}
	}
	if s.reveal == nil {
		return
	}
	item := s.reveal.item
	done := s.reveal.advance(dt, s.cfg, func(from, to Phase) {
		s.firePhase(PhaseContext{Item: item, From: from, To: to})
	})
	if done {
		s.commitReveal()
	}
}

func (s *Session) commitReveal() {
	item := s.reveal.item
	s.chosen[item.ID] = struct{}{}
	s.picked = append(s.picked, item.ID)
	s.refreshPool()
	s.scroll.SetBounds(len(s.pool), s.metrics.Gap)
	s.layout()
	s.reveal = nil

	s.log.Info("pick committed", zap.Int("item", int(item.ID)), zap.Int("picked", len(s.picked)))
	s.fireCommit(PickContext{Item: item, PickIndex: len(s.picked) - 1})
	s.firePhase(PhaseContext{Item: item, From: PhaseMoving, To: PhaseIdle})

	if len(s.picked) < s.cfg.PickCap {
		s.setStatus(statusPickMore)
		return
	}
	s.startSummary()
}

// startSummary begins the countdown to the summary once the cap is reached.
func (s *Session) startSummary() {
	s.setStatus(fmt.Sprintf("Done! %d cards selected.", len(s.picked)))
	s.summaryPending = true
	s.summaryLeft = s.cfg.SummaryDelay
	if s.summaryLeft <= 0 {
		s.openSummary()
	}
}

func (s *Session) openSummary() {
	s.summaryPending = false
	s.summaryDone = true
	s.summaryOpen = true
	sum := s.Summary()
	s.log.Info("session complete", zap.Ints("picks", itemIDsToInts(sum.IDs())))
	s.fireComplete(sum)
}

// Summary returns the picked items in pick order.
func (s *Session) Summary() Summary {
	picks := make([]Item, len(s.picked))
	for i, id := range s.picked {
		picks[i] = s.items[s.index[id]]
	}
	return Summary{Picks: picks}
}

// CloseSummary hides the summary without resetting the session.
func (s *Session) CloseSummary() {
	s.summaryOpen = false
}

// Reset abandons any reveal in flight and starts over: the summary closes,
// chosen and picked items, hover, and the reveal lock are cleared, the pointer
// returns to rest, and scroll is re-centered for the full pool. A pinch or
// button held through Reset stays down but must be released before the next
// pick. With
// reshuffle the deck is rebuilt from the master list and shuffled (when
// shuffling is enabled).
func (s *Session) Reset(reshuffle bool) {
	s.summaryOpen = false
	s.summaryPending = false
	s.summaryDone = false
	s.summaryLeft = 0
	s.reveal = nil

	s.chosen = ChosenSet{}
	s.picked = nil
	s.setHovered(NoItem, false)

	if reshuffle {
		s.deck = NewDeck(s.items)
		if s.shuffle {
			s.deck.Shuffle(s.rng)
		}
	}
	s.pinch.Rearm()
	s.pointer.Reset(s.pointerOrigin())
	s.refreshPool()
	s.scroll.Offset = 0
	s.scroll.Center(len(s.pool), s.metrics.Gap)
	s.layout()

	s.log.Info("session reset", zap.Bool("reshuffle", reshuffle))
	s.setStatus(statusPickMore)
	s.fireReset()
}

// Resize re-derives layout metrics and scroll bounds. A reveal in flight is
// left untouched.
func (s *Session) Resize(m Metrics) {
	s.metrics = m
	s.refreshPool()
	s.scroll.SetBounds(len(s.pool), m.Gap)
	s.layout()
}

func (s *Session) setStatus(msg string) {
	if msg == s.status {
		return
	}
	s.status = msg
	s.fireStatus(msg)
}

// --- Accessors ---

// Revealing reports whether a reveal is in flight (the pick lock).
func (s *Session) Revealing() bool {
	return s.reveal != nil
}

// Phase returns the current reveal phase.
func (s *Session) Phase() Phase {
	if s.reveal == nil {
		return PhaseIdle
	}
	return s.reveal.phase
}

// Hovered returns the hovered item id, if any.
func (s *Session) Hovered() (ItemID, bool) {
	return s.hovered, s.hasHover
}

// Picked returns a copy of the picked ids in pick order.
func (s *Session) Picked() []ItemID {
	out := make([]ItemID, len(s.picked))
	copy(out, s.picked)
	return out
}

// Chosen reports whether id has been picked.
func (s *Session) Chosen(id ItemID) bool {
	return s.chosen.Has(id)
}

// ChosenCount returns the size of the chosen set.
func (s *Session) ChosenCount() int {
	return len(s.chosen)
}

// Scroll returns the current scroll state.
func (s *Session) Scroll() ScrollState {
	return s.scroll
}

// Pinch returns the current pinch state.
func (s *Session) Pinch() PinchState {
	return s.pinch
}

// Pointer returns the current pointer state.
func (s *Session) Pointer() PointerState {
	return s.pointer
}

// HasHand reports whether a pointer source is live this frame.
func (s *Session) HasHand() bool {
	return s.hasHand
}

// Deck returns the current deck.
func (s *Session) Deck() Deck {
	return Deck{order: s.deck.Order()}
}

// Metrics returns the current layout surface.
func (s *Session) Metrics() Metrics {
	return s.metrics
}

// SummaryOpen reports whether the end-of-session summary is showing.
func (s *Session) SummaryOpen() bool {
	return s.summaryOpen
}

// Status returns the latest user-facing status message.
func (s *Session) Status() string {
	return s.status
}

// Item looks up an item in the master list.
func (s *Session) Item(id ItemID) (Item, bool) {
	i, ok := s.index[id]
	if !ok {
		return Item{}, false
	}
	return s.items[i], true
}

func itemIDsToInts(ids []ItemID) []int {
	out := make([]int, len(ids))
	for i, id := range ids {
		out[i] = int(id)
	}
	return out
}
