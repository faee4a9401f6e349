package pinchdeck

import "testing"

type captureRenderer struct {
	frames []Frame
}

func (c *captureRenderer) Render(f Frame) {
	c.frames = append(c.frames, f)
}

func TestFrameIsSnapshot(t *testing.T) {
	s := newTestSession(t, 10)
	f := s.Frame()
	if len(f.Cards) != 10 || f.PickCap != 3 || f.Revealing {
		t.Fatalf("unexpected frame: cards=%d cap=%d revealing=%v", len(f.Cards), f.PickCap, f.Revealing)
	}
	f.Cards[0].X = -1e9
	if s.Frame().Cards[0].X == -1e9 {
		t.Error("Frame.Cards aliases session state")
	}
}

func TestFrameDuringReveal(t *testing.T) {
	s := newTestSession(t, 10)
	pickCard(t, s, 4)
	cfg := s.Config()
	s.Update(cfg.FlipDelay + cfg.ReadDuration + cfg.MoveDuration/2)

	r := &captureRenderer{}
	s.Render(r)
	if len(r.frames) != 1 {
		t.Fatalf("rendered %d frames, want 1", len(r.frames))
	}
	f := r.frames[0]
	if !f.Revealing || f.Phase != PhaseMoving || f.RevealItem.ID != 4 {
		t.Errorf("frame reveal state = %v/%v/%d", f.Revealing, f.Phase, f.RevealItem.ID)
	}
	if f.FlipProgress != 1 || f.MoveProgress <= 0 || f.MoveProgress >= 1 {
		t.Errorf("progress flip=%v move=%v", f.FlipProgress, f.MoveProgress)
	}
	if f.HasHover {
		t.Error("hover shown during reveal")
	}
	if f.Status != "Revealing…" {
		t.Errorf("Status = %q", f.Status)
	}
}

func TestFrameChosenCardsCarryNoTransform(t *testing.T) {
	s := newTestSession(t, 10)
	pickCard(t, s, 4)
	finishReveal(s)
	v := findView(t, s.Frame().Cards, 4)
	if !v.Chosen || v.Bounds != (Rect{}) || v.Z != 0 {
		t.Errorf("chosen view = %+v", v)
	}
	if s.Frame().PickCount != 1 {
		t.Errorf("PickCount = %d, want 1", s.Frame().PickCount)
	}
}
