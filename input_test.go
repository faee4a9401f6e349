package pinchdeck

import (
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"
)

type namedSource struct{ name string }

func (namedSource) Poll() InputFrame { return InputFrame{} }

func TestChooseSource(t *testing.T) {
	fallback := namedSource{"mouse"}
	tests := []struct {
		name       string
		open       func() (Source, error)
		wantSource string
		wantStatus string
	}{
		{
			name:       "tracker opens",
			open:       func() (Source, error) { return namedSource{"hand"}, nil },
			wantSource: "hand",
			wantStatus: "Tracking",
		},
		{
			name:       "camera denied",
			open:       func() (Source, error) { return nil, errors.New("permission denied") },
			wantSource: "mouse",
			wantStatus: "Camera blocked (permission denied)",
		},
		{
			name:       "nil source without error",
			open:       func() (Source, error) { return nil, nil },
			wantSource: "mouse",
			wantStatus: ErrInputUnavailable.Error(),
		},
		{
			name:       "no tracker configured",
			open:       nil,
			wantSource: "mouse",
			wantStatus: "Demo mode",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, status := ChooseSource(tt.open, fallback, zaptest.NewLogger(t))
			if got := src.(namedSource).name; got != tt.wantSource {
				t.Errorf("source = %q, want %q", got, tt.wantSource)
			}
			if !strings.Contains(status, tt.wantStatus) {
				t.Errorf("status = %q, want it to contain %q", status, tt.wantStatus)
			}
		})
	}
}

func TestInputNoneKeepsState(t *testing.T) {
	s := newTestSession(t, 10)
	s.InjectPointer(300, 200, true)
	s.Update(frameDT)
	s.ApplyInput(InputFrame{Kind: InputNone})
	if !s.HasHand() || !s.Pinch().IsPinching || s.Pointer().Target != (Vec2{300, 200}) {
		t.Errorf("InputNone changed state: hand=%v pinch=%+v pointer=%+v", s.HasHand(), s.Pinch(), s.Pointer())
	}
}
