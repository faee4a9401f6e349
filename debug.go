package pinchdeck

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// frameStats holds per-frame timing. Only populated when the session logger
// has debug enabled.
type frameStats struct {
	enabled bool
	start   time.Time
	last    time.Time
	input   time.Duration
	layout  time.Duration
	hover   time.Duration
}

func (s *Session) beginFrameStats() frameStats {
	if !s.log.Core().Enabled(zapcore.DebugLevel) {
		return frameStats{}
	}
	now := time.Now()
	return frameStats{enabled: true, start: now, last: now}
}

// mark charges the time since the previous mark to *into.
func (f *frameStats) mark(into *time.Duration) {
	if !f.enabled {
		return
	}
	now := time.Now()
	*into = now.Sub(f.last)
	f.last = now
}

// endFrameStats logs timing and state counters for the frame.
func (s *Session) endFrameStats(f frameStats) {
	if !f.enabled {
		return
	}
	ce := s.log.Check(zapcore.DebugLevel, "frame")
	if ce == nil {
		return
	}
	hovered := -1
	if s.hasHover {
		hovered = int(s.hovered)
	}
	ce.Write(
		zap.Uint64("frame", s.frameCount),
		zap.Duration("input", f.input),
		zap.Duration("layout", f.layout),
		zap.Duration("hover", f.hover),
		zap.Duration("total", time.Since(f.start)),
		zap.Int("visible", len(s.views)-len(s.chosen)),
		zap.Int("hovered", hovered),
		zap.Stringer("phase", s.Phase()),
		zap.Float64("scroll", s.scroll.Offset),
		zap.Bool("pinching", s.pinch.IsPinching),
	)
}
