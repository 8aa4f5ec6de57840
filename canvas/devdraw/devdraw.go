// Package devdraw implements the on-screen canvas backend over the
// devdraw server from Plan 9 from User Space. All rendering happens
// in the remote server; this package keeps the entry list, decodes
// raw mouse and keyboard state into canvas events, and repaints the
// window on Present.
package devdraw

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"9fans.net/go/draw"

	"github.com/veselink1/SGL/canvas"
	"github.com/veselink1/SGL/geom"
)

// Canvas is a devdraw-backed canvas.Backend. Surface and Dialogs
// methods run on the UI goroutine; the mutex serializes the display
// connection against the reader goroutines, which re-attach on
// resize.
type Canvas struct {
	mu      sync.Mutex
	display *draw.Display
	screen  *draw.Image
	font    *draw.Font
	title   string
	bg      color.RGBA
	entries []canvas.Entry
	colors  map[color.RGBA]*draw.Image
	dlg     *dialog
	closed  bool

	events chan canvas.Event
	errch  chan error
	done   chan struct{}
}

var _ canvas.Backend = (*Canvas)(nil)

// New connects to devdraw and opens a window of the given pixel size.
func New(title string, width, height int) (*Canvas, error) {
	if width <= 0 {
		width = 800
	}
	if height <= 0 {
		height = 600
	}
	errch := make(chan error, 1)
	d, err := draw.Init(errch, "", title, fmt.Sprintf("%dx%d", width, height))
	if err != nil {
		return nil, fmt.Errorf("devdraw: init: %w", err)
	}
	c := &Canvas{
		display: d,
		screen:  d.ScreenImage,
		font:    d.Font,
		title:   title,
		bg:      color.RGBA{255, 255, 255, 255},
		colors:  make(map[color.RGBA]*draw.Image),
		events:  make(chan canvas.Event, 64),
		errch:   errch,
		done:    make(chan struct{}),
	}
	go c.readMouse(d.InitMouse())
	go c.readKeyboard(d.InitKeyboard())
	go c.readErrors()
	return c, nil
}

// send delivers ev unless the backend has been closed.
func (c *Canvas) send(ev canvas.Event) {
	select {
	case c.events <- ev:
	case <-c.done:
	}
}

// origin returns the top-left of the window in devdraw's coordinate
// space. Events are translated so pixel (0, 0) is the window corner.
func (c *Canvas) origin() image.Point {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.screen.R.Min
}

// readMouse decodes the raw mouse stream into move, press, release,
// and wheel events, and re-attaches the screen when the window is
// resized. Wheel motion arrives as transient presses of buttons 8
// and 16.
func (c *Canvas) readMouse(mc *draw.Mousectl) {
	var prev draw.Mouse
	for {
		select {
		case <-c.done:
			return
		case m := <-mc.C:
			pt := m.Point.Sub(c.origin())
			if m.Buttons&8 != 0 && prev.Buttons&8 == 0 {
				c.send(canvas.MouseWheel{Delta: 1})
			}
			if m.Buttons&16 != 0 && prev.Buttons&16 == 0 {
				c.send(canvas.MouseWheel{Delta: -1})
			}
			for _, b := range []canvas.Button{canvas.ButtonLeft, canvas.ButtonMiddle, canvas.ButtonRight} {
				was := prev.Buttons&int(b) != 0
				is := m.Buttons&int(b) != 0
				if is && !was {
					c.send(canvas.MousePress{X: pt.X, Y: pt.Y, Button: b})
				}
				if was && !is {
					c.send(canvas.MouseRelease{X: pt.X, Y: pt.Y, Button: b})
				}
			}
			if m.Point != prev.Point {
				c.send(canvas.MouseMove{X: pt.X, Y: pt.Y})
			}
			prev = m
		case <-mc.Resize:
			c.reattach()
		}
	}
}

// readKeyboard forwards key runes. Devdraw reports only key-down, so
// each rune is synthesized as a press immediately followed by a
// release.
func (c *Canvas) readKeyboard(kc *draw.Keyboardctl) {
	for {
		select {
		case <-c.done:
			return
		case r := <-kc.C:
			k := mapKey(r)
			c.send(canvas.KeyPress{Key: k})
			c.send(canvas.KeyRelease{Key: k})
		}
	}
}

// readErrors turns a broken display connection, which is how devdraw
// reports the window being closed, into a close request.
func (c *Canvas) readErrors() {
	select {
	case <-c.done:
	case <-c.errch:
		c.send(canvas.CloseRequest{})
	}
}

// reattach refreshes the screen image after a window resize and
// reports the new size.
func (c *Canvas) reattach() {
	c.mu.Lock()
	if err := c.display.Attach(draw.RefNone); err != nil {
		c.mu.Unlock()
		c.send(canvas.CloseRequest{})
		return
	}
	c.screen = c.display.ScreenImage
	w, h := c.screen.R.Dx(), c.screen.R.Dy()
	c.mu.Unlock()
	c.send(canvas.Resize{Width: w, Height: h})
}

// mapKey translates devdraw key runes to canvas keys.
func mapKey(r rune) canvas.Key {
	switch r {
	case draw.KeyUp:
		return canvas.KeyUp
	case draw.KeyDown:
		return canvas.KeyDown
	case draw.KeyLeft:
		return canvas.KeyLeft
	case draw.KeyRight:
		return canvas.KeyRight
	case draw.KeyHome:
		return canvas.KeyHome
	case draw.KeyEnd:
		return canvas.KeyEnd
	case draw.KeyPageUp:
		return canvas.KeyPgup
	case draw.KeyPageDown:
		return canvas.KeyPgdown
	case draw.KeyInsert:
		return canvas.KeyInsert
	case '\r':
		return canvas.KeyEnter
	default:
		return canvas.Key(r)
	}
}

// Size implements canvas.Surface.
func (c *Canvas) Size() (int, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.screen.R.Dx(), c.screen.R.Dy()
}

// Add implements canvas.Surface.
func (c *Canvas) Add(e canvas.Entry) {
	c.mu.Lock()
	c.entries = append(c.entries, e)
	c.mu.Unlock()
}

// RemoveMatching implements canvas.Surface.
func (c *Canvas) RemoveMatching(s geom.Shape) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.entries[:0]
	removed := 0
	for _, e := range c.entries {
		if e.Shape.Equal(s) {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	c.entries = kept
	return removed
}

// Clear implements canvas.Surface.
func (c *Canvas) Clear() {
	c.mu.Lock()
	c.entries = nil
	c.mu.Unlock()
}

// SetBackground implements canvas.Surface.
func (c *Canvas) SetBackground(col color.RGBA) {
	c.mu.Lock()
	c.bg = col
	c.mu.Unlock()
}

// SetTitle implements canvas.Surface.
func (c *Canvas) SetTitle(title string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.title = title
	if !c.closed {
		c.display.SetLabel(title)
	}
}

// Present implements canvas.Surface: background, entries in insertion
// order, the open dialog if any, then one flush.
func (c *Canvas) Present(tr canvas.Transform) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.screen.Draw(c.screen.R, c.color(c.bg), nil, image.Point{})
	for _, e := range c.entries {
		c.renderEntry(tr, e)
	}
	if c.dlg != nil {
		c.renderDialog()
	}
	c.display.Flush()
}

// Events implements canvas.Surface.
func (c *Canvas) Events() <-chan canvas.Event {
	return c.events
}

// Close implements canvas.Surface. It stops the reader goroutines and
// drops the display connection; calling it more than once is
// harmless.
func (c *Canvas) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	close(c.done)
	if err := c.display.Close(); err != nil {
		return fmt.Errorf("devdraw: close: %w", err)
	}
	return nil
}

// color returns a cached 1x1 replicated image of col for use as a
// draw source.
func (c *Canvas) color(col color.RGBA) *draw.Image {
	if img, ok := c.colors[col]; ok {
		return img
	}
	v := draw.Color(uint32(col.R)<<24 | uint32(col.G)<<16 | uint32(col.B)<<8 | uint32(col.A))
	img, err := c.display.AllocImage(image.Rect(0, 0, 1, 1), c.screen.Pix, true, v)
	if err != nil {
		return c.display.Black
	}
	c.colors[col] = img
	return img
}
