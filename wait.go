package sgl

import "time"

// WaitForUpdate blocks the calling goroutine until the next frame and
// returns the time advanced since its previous call, never less than
// the target frame interval. It returns ErrCanceled once the window
// has been closed, so it works directly as an animation loop
// condition.
func (w *Window) WaitForUpdate() (time.Duration, error) {
	return w.loop.WaitForUpdate()
}

// WaitForSeconds blocks for at least the given duration, advancing in
// whole frames. It returns early with ErrCanceled if the window
// closes.
func (w *Window) WaitForSeconds(seconds float64) error {
	target := time.Duration(seconds * float64(time.Second))
	var acc time.Duration
	for acc < target {
		d, err := w.loop.WaitForUpdate()
		if err != nil {
			return err
		}
		acc += d
	}
	return nil
}
