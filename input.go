package pinchdeck

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ErrInputUnavailable reports that a tracking source could not be opened
// (camera denied, tracker missing). It is recoverable by falling back to a
// pointer device.
var ErrInputUnavailable = errors.New("input unavailable")

// InputKind selects which fields of an InputFrame are meaningful.
type InputKind uint8

const (
	InputNone    InputKind = iota // no new data this frame; state is kept
	InputHand                     // Hand holds a tracking result
	InputPointer                  // X, Y, Pressed hold pointer-device state
)

// InputFrame is one frame of input from whichever source is active.
// Pointer coordinates are screen-space; hand points are normalized.
type InputFrame struct {
	Kind    InputKind
	Hand    HandFrame
	X, Y    float64
	Pressed bool
}

// Source produces one InputFrame per animation frame. Poll is called from the
// frame loop only.
type Source interface {
	Poll() InputFrame
}

// SourceFunc adapts a function to Source.
type SourceFunc func() InputFrame

// Poll calls f.
func (f SourceFunc) Poll() InputFrame { return f() }

// ChooseSource opens the primary tracking source and falls back to the
// pointer device when it fails. The returned status describes the choice and
// is meant for the user; the error from open is logged, never returned.
func ChooseSource(open func() (Source, error), fallback Source, log *zap.Logger) (Source, string) {
	if log == nil {
		log = zap.NewNop()
	}
	if open == nil {
		return fallback, "Demo mode: move mouse, click to pick."
	}
	src, err := open()
	if err != nil || src == nil {
		if err == nil {
			err = ErrInputUnavailable
		}
		log.Warn("hand tracking unavailable, using pointer fallback", zap.Error(err))
		return fallback, fmt.Sprintf("Camera blocked (%v). Demo mode: move mouse, click to pick.", err)
	}
	return src, "Tracking… move your hand"
}
