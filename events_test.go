package pinchdeck

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type recordingSink struct {
	events []SessionEvent
}

func (r *recordingSink) EmitEvent(e SessionEvent) {
	r.events = append(r.events, e)
}

func (r *recordingSink) types() []EventType {
	out := make([]EventType, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Type)
	}
	return out
}

func TestCallbackHandleRemove(t *testing.T) {
	s := newTestSession(t, 4)
	var a, b int
	ha := s.OnStatus(func(string) { a++ })
	s.OnStatus(func(string) { b++ })

	s.SetMirror(false)
	ha.Remove()
	s.SetMirror(true)

	if a != 1 || b != 2 {
		t.Errorf("calls a=%d b=%d, want 1 and 2", a, b)
	}
	// Removing twice is harmless.
	ha.Remove()
	CallbackHandle{}.Remove()
}

func TestStatusOnlyFiresOnChange(t *testing.T) {
	s := newTestSession(t, 4)
	var got []string
	s.OnStatus(func(msg string) { got = append(got, msg) })
	s.SetMirror(false)
	s.SetMirror(false)
	s.SetMirror(true)
	if diff := cmp.Diff([]string{"Mirror: OFF", "Mirror: ON"}, got); diff != "" {
		t.Errorf("status mismatch (-want +got):\n%s", diff)
	}
}

func TestEventSinkReceivesPickFlow(t *testing.T) {
	s := newTestSession(t, 10)
	sink := &recordingSink{}
	pickCard(t, s, 4)
	s.SetEventSink(sink)
	finishReveal(s)

	want := []EventType{EventPhase, EventPhase, EventCommit, EventPhase, EventStatus, EventHoverChange}
	if diff := cmp.Diff(want, sink.types()); diff != "" {
		t.Errorf("event types mismatch (-want +got):\n%s", diff)
	}
	commit := sink.events[2]
	if commit.ItemID != 4 || commit.PickCount != 1 {
		t.Errorf("commit event = %+v", commit)
	}
}

func TestEventSinkCompletePayload(t *testing.T) {
	s := newTestSession(t, 10)
	sink := &recordingSink{}
	s.SetEventSink(sink)
	for _, id := range []ItemID{4, 5, 6} {
		pickCard(t, s, id)
		finishReveal(s)
	}
	s.Update(s.Config().SummaryDelay)

	var complete *SessionEvent
	for i := range sink.events {
		if sink.events[i].Type == EventComplete {
			complete = &sink.events[i]
		}
	}
	if complete == nil {
		t.Fatal("no complete event")
	}
	if diff := cmp.Diff([]ItemID{4, 5, 6}, complete.Picks); diff != "" {
		t.Errorf("picks mismatch (-want +got):\n%s", diff)
	}
}
