package pinchdeck

// PickContext describes an item entering or finishing the reveal sequence.
type PickContext struct {
	Item      Item
	PickIndex int // zero-based position in the picked list
}

// PhaseContext describes a reveal phase transition.
type PhaseContext struct {
	Item     Item
	From, To Phase
}

// HoverContext describes a change of the hovered card. Has* is false when the
// corresponding side is "no card".
type HoverContext struct {
	Prev, Current       ItemID
	HasPrev, HasCurrent bool
}

// MissContext describes a dropped pinch edge.
type MissContext struct {
	Reason    MissReason
	Hovered   ItemID
	HasHover  bool
	PickCount int
}

// Summary is the end-of-session payload: the picked items in pick order.
type Summary struct {
	Picks []Item
}

// IDs returns the picked ids in pick order.
func (s Summary) IDs() []ItemID {
	out := make([]ItemID, len(s.Picks))
	for i, it := range s.Picks {
		out[i] = it.ID
	}
	return out
}

// SessionEvent is the flattened form of every callback, forwarded to an
// optional EventSink.
type SessionEvent struct {
	Type      EventType
	ItemID    ItemID
	Phase     Phase
	PickCount int
	Picks     []ItemID
	Reason    MissReason
	Status    string
}

// EventSink receives every session event, after the typed callbacks.
type EventSink interface {
	EmitEvent(event SessionEvent)
}

// --- Handler registry ---

type handler[T any] struct {
	id uint32
	fn func(T)
}

type handlerRegistry struct {
	pick     []handler[PickContext]
	phase    []handler[PhaseContext]
	commit   []handler[PickContext]
	hover    []handler[HoverContext]
	miss     []handler[MissContext]
	complete []handler[Summary]
	status   []handler[string]
	reset    []handler[struct{}]
	nextID   uint32
}

// CallbackHandle allows removing a registered session callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventPick:
		h.reg.pick = removeHandler(h.reg.pick, h.id)
	case EventPhase:
		h.reg.phase = removeHandler(h.reg.phase, h.id)
	case EventCommit:
		h.reg.commit = removeHandler(h.reg.commit, h.id)
	case EventHoverChange:
		h.reg.hover = removeHandler(h.reg.hover, h.id)
	case EventMissedPick:
		h.reg.miss = removeHandler(h.reg.miss, h.id)
	case EventComplete:
		h.reg.complete = removeHandler(h.reg.complete, h.id)
	case EventStatus:
		h.reg.status = removeHandler(h.reg.status, h.id)
	case EventReset:
		h.reg.reset = removeHandler(h.reg.reset, h.id)
	}
}

func removeHandler[T any](s []handler[T], id uint32) []handler[T] {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = handler[T]{}
			return s[:len(s)-1]
		}
	}
	return s
}

func addHandler[T any](reg *handlerRegistry, list *[]handler[T], event EventType, fn func(T)) CallbackHandle {
	reg.nextID++
	id := reg.nextID
	*list = append(*list, handler[T]{id: id, fn: fn})
	return CallbackHandle{id: id, reg: reg, event: event}
}

func fire[T any](list []handler[T], v T) {
	for _, h := range list {
		h.fn(v)
	}
}

// --- Session-level registration ---

// OnPick registers a callback for the start of a reveal.
func (s *Session) OnPick(fn func(PickContext)) CallbackHandle {
	return addHandler(&s.handlers, &s.handlers.pick, EventPick, fn)
}

// OnPhase registers a callback for reveal phase transitions, including the
// final return to PhaseIdle.
func (s *Session) OnPhase(fn func(PhaseContext)) CallbackHandle {
	return addHandler(&s.handlers, &s.handlers.phase, EventPhase, fn)
}

// OnCommit registers a callback for an item joining the chosen set.
func (s *Session) OnCommit(fn func(PickContext)) CallbackHandle {
	return addHandler(&s.handlers, &s.handlers.commit, EventCommit, fn)
}

// OnHoverChange registers a callback for hovered-card changes.
func (s *Session) OnHoverChange(fn func(HoverContext)) CallbackHandle {
	return addHandler(&s.handlers, &s.handlers.hover, EventHoverChange, fn)
}

// OnMissedPick registers a callback for pinch edges that did not start a pick.
func (s *Session) OnMissedPick(fn func(MissContext)) CallbackHandle {
	return addHandler(&s.handlers, &s.handlers.miss, EventMissedPick, fn)
}

// OnComplete registers a callback for the end-of-session summary.
func (s *Session) OnComplete(fn func(Summary)) CallbackHandle {
	return addHandler(&s.handlers, &s.handlers.complete, EventComplete, fn)
}

// OnStatus registers a callback for user-facing status messages.
func (s *Session) OnStatus(fn func(string)) CallbackHandle {
	return addHandler(&s.handlers, &s.handlers.status, EventStatus, fn)
}

// OnReset registers a callback that fires after Reset.
func (s *Session) OnReset(fn func()) CallbackHandle {
	return addHandler(&s.handlers, &s.handlers.reset, EventReset, func(struct{}) { fn() })
}

// SetEventSink sets the optional event bridge.
func (s *Session) SetEventSink(sink EventSink) {
	s.sink = sink
}

// --- Dispatch ---

func (s *Session) emit(e SessionEvent) {
	if s.sink == nil {
		return
	}
	e.PickCount = len(s.picked)
	s.sink.EmitEvent(e)
}

func (s *Session) firePick(ctx PickContext) {
	fire(s.handlers.pick, ctx)
	s.emit(SessionEvent{Type: EventPick, ItemID: ctx.Item.ID, Phase: PhaseFaceDown})
}

func (s *Session) firePhase(ctx PhaseContext) {
	fire(s.handlers.phase, ctx)
	s.emit(SessionEvent{Type: EventPhase, ItemID: ctx.Item.ID, Phase: ctx.To})
}

func (s *Session) fireCommit(ctx PickContext) {
	fire(s.handlers.commit, ctx)
	s.emit(SessionEvent{Type: EventCommit, ItemID: ctx.Item.ID})
}

func (s *Session) fireHover(ctx HoverContext) {
	fire(s.handlers.hover, ctx)
	id := NoItem
	if ctx.HasCurrent {
		id = ctx.Current
	}
	s.emit(SessionEvent{Type: EventHoverChange, ItemID: id})
}

func (s *Session) fireMiss(ctx MissContext) {
	fire(s.handlers.miss, ctx)
	id := NoItem
	if ctx.HasHover {
		id = ctx.Hovered
	}
	s.emit(SessionEvent{Type: EventMissedPick, ItemID: id, Reason: ctx.Reason})
}

func (s *Session) fireComplete(sum Summary) {
	fire(s.handlers.complete, sum)
	s.emit(SessionEvent{Type: EventComplete, Picks: sum.IDs()})
}

func (s *Session) fireStatus(msg string) {
	fire(s.handlers.status, msg)
	s.emit(SessionEvent{Type: EventStatus, Status: msg})
}

func (s *Session) fireReset() {
	fire(s.handlers.reset, struct{}{})
	s.emit(SessionEvent{Type: EventReset})
}
