package canvas

// Event is a decoded input event delivered by a Surface.
type Event interface {
	event()
}

// MouseMove reports the pointer at pixel (X, Y).
type MouseMove struct {
	X, Y int
}

// MousePress reports a button going down at pixel (X, Y).
type MousePress struct {
	X, Y   int
	Button Button
}

// MouseRelease reports a button going up at pixel (X, Y).
type MouseRelease struct {
	X, Y   int
	Button Button
}

// MouseWheel reports wheel motion: +1 away from the user, -1 toward.
type MouseWheel struct {
	Delta int
}

// KeyPress reports a key going down.
type KeyPress struct {
	Key Key
}

// KeyRelease reports a key going up.
type KeyRelease struct {
	Key Key
}

// FocusLost reports the window losing input focus.
type FocusLost struct{}

// Resize reports new pixel dimensions for the drawable area.
type Resize struct {
	Width, Height int
}

// CloseRequest reports the user asking to close the window.
type CloseRequest struct{}

func (MouseMove) event()    {}
func (MousePress) event()   {}
func (MouseRelease) event() {}
func (MouseWheel) event()   {}
func (KeyPress) event()     {}
func (KeyRelease) event()   {}
func (FocusLost) event()    {}
func (Resize) event()       {}
func (CloseRequest) event() {}
