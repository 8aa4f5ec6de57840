package sgl

import "github.com/veselink1/SGL/canvas"

// Key identifies a keyboard key; printable keys are their rune.
type Key = canvas.Key

// Button identifies a mouse button.
type Button = canvas.Button

// Re-exported input constants, so simple programs need only this
// package. The full set lives in package canvas.
const (
	KeyUp     = canvas.KeyUp
	KeyDown   = canvas.KeyDown
	KeyLeft   = canvas.KeyLeft
	KeyRight  = canvas.KeyRight
	KeySpace  = canvas.KeySpace
	KeyEnter  = canvas.KeyEnter
	KeyEscape = canvas.KeyEscape
	KeyShift  = canvas.KeyShift

	ButtonLeft   = canvas.ButtonLeft
	ButtonMiddle = canvas.ButtonMiddle
	ButtonRight  = canvas.ButtonRight
)

// IsKeyDown reports whether k is currently held. It never blocks and
// reflects the most recent frame's input state.
func (w *Window) IsKeyDown(k Key) bool {
	return w.loop.KeyDown(k)
}

// IsMouseButtonDown reports whether b is currently held.
func (w *Window) IsMouseButtonDown(b Button) bool {
	return w.loop.ButtonDown(b)
}
