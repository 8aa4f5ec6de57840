package sgl

import (
	"errors"
	"image/color"
	"testing"
	"time"

	"github.com/veselink1/SGL/canvas"
	"github.com/veselink1/SGL/canvas/memcanvas"
)

// openTestWindow opens a window over an in-memory canvas. 800x600
// with range 5 gives 60 pixels per logical unit, which keeps expected
// coordinates in tests round.
func openTestWindow(t *testing.T, opts ...Option) (*Window, *memcanvas.Canvas) {
	t.Helper()
	c := memcanvas.New(800, 600)
	w, err := Open(append([]Option{WithBackend(c), WithRange(5)}, opts...)...)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(w.Close)
	return w, c
}

func waitUntil(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func TestOpenPaintsAndTitles(t *testing.T) {
	w, c := openTestWindow(t, WithTitle("hello"))
	if c.Presents() < 1 {
		t.Fatal("window not painted during Open")
	}
	if c.Title() != "hello" {
		t.Fatalf("backend title = %q, want %q", c.Title(), "hello")
	}
	if w.Title() != "hello" {
		t.Fatalf("Title() = %q, want %q", w.Title(), "hello")
	}
}

func TestSetTitle(t *testing.T) {
	w, c := openTestWindow(t)
	w.SetTitle("renamed")
	waitUntil(t, "title change", func() bool { return c.Title() == "renamed" })
	if w.Title() != "renamed" {
		t.Fatalf("Title() = %q, want %q", w.Title(), "renamed")
	}
}

func TestSetBackground(t *testing.T) {
	w, c := openTestWindow(t)
	blue := color.RGBA{0, 0, 255, 255}
	w.SetBackground(blue)
	waitUntil(t, "background repaint", func() bool {
		return c.Image().RGBAAt(5, 5) == blue
	})
}

func TestSetRange(t *testing.T) {
	w, _ := openTestWindow(t)
	if err := w.SetRange(-1); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("SetRange(-1) = %v, want ErrInvalidArgument", err)
	}
	if err := w.SetRange(20); err != nil {
		t.Fatalf("SetRange(20): %v", err)
	}
	waitUntil(t, "range change", func() bool { return w.Range() == 20 })
}

func TestDeviceSnapshot(t *testing.T) {
	w, c := openTestWindow(t)
	c.Inject(canvas.KeyPress{Key: 'a'})
	c.Inject(canvas.MousePress{X: 1, Y: 1, Button: canvas.ButtonLeft})
	waitUntil(t, "key and button held", func() bool {
		return w.IsKeyDown('a') && w.IsMouseButtonDown(ButtonLeft)
	})
	c.Inject(canvas.FocusLost{})
	waitUntil(t, "snapshot reset on focus loss", func() bool {
		return !w.IsKeyDown('a') && !w.IsMouseButtonDown(ButtonLeft)
	})
}

func TestWaitForSeconds(t *testing.T) {
	w, _ := openTestWindow(t)
	start := time.Now()
	if err := w.WaitForSeconds(0.05); err != nil {
		t.Fatalf("WaitForSeconds: %v", err)
	}
	// Three 60Hz frames cover 50ms of frame time; pacing guarantees at
	// least two full intervals of real time between the first and last.
	if real := time.Since(start); real < 30*time.Millisecond {
		t.Fatalf("WaitForSeconds returned after %v, want >= 30ms", real)
	}
	if w.Time() < 50*time.Millisecond {
		t.Fatalf("Time() = %v, want >= 50ms", w.Time())
	}
	if w.DeltaTime() <= 0 {
		t.Fatal("DeltaTime not recorded")
	}
}

func TestTargetFPSClamped(t *testing.T) {
	w, _ := openTestWindow(t, WithTargetFPS(1000))
	if got := w.TargetFPS(); got != 60 {
		t.Fatalf("TargetFPS = %d, want 60", got)
	}
	w.SetTargetFPS(0)
	if got := w.TargetFPS(); got != 1 {
		t.Fatalf("TargetFPS after SetTargetFPS(0) = %d, want 1", got)
	}
}

func TestCloseUnblocksAndIsIdempotent(t *testing.T) {
	w, _ := openTestWindow(t)
	w.Close()
	w.Close()
	if !w.Closed() {
		t.Fatal("Closed() = false after Close")
	}
	if _, err := w.ReadString("?", ""); !errors.Is(err, ErrCanceled) {
		t.Fatalf("ReadString after close = %v, want ErrCanceled", err)
	}
	if _, err := w.WaitForUpdate(); !errors.Is(err, ErrCanceled) {
		t.Fatalf("WaitForUpdate after close = %v, want ErrCanceled", err)
	}
	// Fire-and-forget calls stay safe after close.
	w.DrawPoint(1, 1)
	w.Clear()
}
