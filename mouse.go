package pinchdeck

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// EbitenPointer is the pointer-device fallback source. It polls the mouse
// cursor and the left button; a press stands in for a pinch.
type EbitenPointer struct{}

// Poll implements Source.
func (EbitenPointer) Poll() InputFrame {
	mx, my := ebiten.CursorPosition()
	return InputFrame{
		Kind:    InputPointer,
		X:       float64(mx),
		Y:       float64(my),
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}
}

// FrameDelta returns the fixed update interval of the running ebiten game.
func FrameDelta() time.Duration {
	return time.Second / time.Duration(ebiten.TPS())
}
