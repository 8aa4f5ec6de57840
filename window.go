package sgl

import (
	"fmt"
	"image/color"
	"sync"
	"time"

	"github.com/veselink1/SGL/canvas"
	"github.com/veselink1/SGL/canvas/devdraw"
	"github.com/veselink1/SGL/loop"
)

// Window is a live graphics session: one on-screen canvas, one UI
// goroutine owning it, and any number of caller goroutines drawing
// into it and reading input from it.
type Window struct {
	backend canvas.Backend
	loop    *loop.Loop

	mu    sync.Mutex
	style canvas.Style
	title string

	// dialogMu serializes blocking interactive calls so at most one
	// dialog or pointer capture is live at a time.
	dialogMu sync.Mutex
}

// Open creates the window and blocks until it has been laid out and
// painted once. Without WithBackend it opens a real display window.
func Open(opts ...Option) (*Window, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	backend := cfg.backend
	if backend == nil {
		b, err := devdraw.New(cfg.title, cfg.width, cfg.height)
		if err != nil {
			return nil, fmt.Errorf("sgl: open display: %w", err)
		}
		backend = b
	}

	l, err := loop.Start(backend, loop.Config{
		Title:     cfg.title,
		Range:     cfg.rng,
		TargetFPS: cfg.fps,
		Logger:    cfg.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("sgl: %w", err)
	}

	return &Window{
		backend: backend,
		loop:    l,
		title:   cfg.title,
		style: canvas.Style{
			Stroke:    color.RGBA{A: 255},
			Thickness: 2,
			FontScale: 1,
		},
	}, nil
}

// Close requests an orderly shutdown, as if the user closed the
// window, and waits for the UI goroutine to exit. Calling it more
// than once is harmless.
func (w *Window) Close() {
	w.loop.Stop()
	w.loop.WaitForExit()
}

// Closed reports whether the window has shut down.
func (w *Window) Closed() bool {
	return w.loop.Closed()
}

// WaitForExit blocks until the window has been closed.
func (w *Window) WaitForExit() {
	w.loop.WaitForExit()
}

// currentStyle returns the style snapshot drawing calls capture.
func (w *Window) currentStyle() canvas.Style {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.style
}

// SetStrokeColor sets the outline and text color for subsequent
// drawing calls.
func (w *Window) SetStrokeColor(c color.RGBA) {
	w.mu.Lock()
	w.style.Stroke = c
	w.mu.Unlock()
}

// StrokeColor returns the current stroke color.
func (w *Window) StrokeColor() color.RGBA {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.style.Stroke
}

// SetFillColor sets the interior color for subsequent drawing calls.
// A zero-alpha color leaves shapes unfilled.
func (w *Window) SetFillColor(c color.RGBA) {
	w.mu.Lock()
	w.style.Fill = c
	w.mu.Unlock()
}

// FillColor returns the current fill color.
func (w *Window) FillColor() color.RGBA {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.style.Fill
}

// SetStrokeThickness sets the outline thickness in pixels for
// subsequent drawing calls. Non-positive values are ignored.
func (w *Window) SetStrokeThickness(t float64) {
	if t <= 0 {
		return
	}
	w.mu.Lock()
	w.style.Thickness = t
	w.mu.Unlock()
}

// StrokeThickness returns the current outline thickness.
func (w *Window) StrokeThickness() float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.style.Thickness
}

// SetFontScale sets the text scale for subsequent DrawText calls.
// Non-positive values are ignored.
func (w *Window) SetFontScale(s float64) {
	if s <= 0 {
		return
	}
	w.mu.Lock()
	w.style.FontScale = s
	w.mu.Unlock()
}

// FontScale returns the current text scale.
func (w *Window) FontScale() float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.style.FontScale
}

// SetTitle changes the window title on the next frame.
func (w *Window) SetTitle(title string) {
	w.mu.Lock()
	w.title = title
	w.mu.Unlock()
	w.loop.Post(func() { w.backend.SetTitle(title) })
}

// Title returns the window title.
func (w *Window) Title() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.title
}

// SetBackground changes the canvas background color on the next frame.
func (w *Window) SetBackground(c color.RGBA) {
	w.loop.Post(func() { w.backend.SetBackground(c) })
}

// SetRange changes the logical half-extent of the shorter window axis
// on the next frame. Shapes keep their logical coordinates and are
// redrawn at the new scale.
func (w *Window) SetRange(r float64) error {
	if r <= 0 {
		return fmt.Errorf("%w: range %g", ErrInvalidArgument, r)
	}
	w.loop.SetRange(r)
	return nil
}

// Range returns the logical half-extent of the shorter window axis.
func (w *Window) Range() float64 {
	return w.loop.Transform().Range
}

// Transform returns the current logical-to-pixel coordinate transform.
func (w *Window) Transform() canvas.Transform {
	return w.loop.Transform()
}

// SetTargetFPS sets the frame-rate target used by WaitForUpdate,
// clamped to [1, 60].
func (w *Window) SetTargetFPS(fps int) {
	w.loop.SetTargetFPS(fps)
}

// TargetFPS returns the effective frame-rate target.
func (w *Window) TargetFPS() int {
	return w.loop.TargetFPS()
}

// DeltaTime returns the interval measured by the latest WaitForUpdate.
func (w *Window) DeltaTime() time.Duration {
	return w.loop.DeltaTime()
}

// Time returns the cumulative time accumulated across WaitForUpdate
// calls. Time spent blocked in dialogs does not advance it.
func (w *Window) Time() time.Duration {
	return w.loop.Elapsed()
}
