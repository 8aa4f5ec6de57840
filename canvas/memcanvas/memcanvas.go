// Package memcanvas implements an in-memory canvas backend.
//
// It renders entries into an image.RGBA and needs no display, which
// makes it both the headless backend and the harness most tests run
// against: tests inject input events, script dialog answers, and
// inspect the rendered entry set directly.
package memcanvas

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/veselink1/SGL/canvas"
	"github.com/veselink1/SGL/geom"
)

const (
	dialogChoice = iota
	dialogText
	dialogNotice
)

// dialog is the state of the open modal prompt, if any.
type dialog struct {
	kind    int
	prompt  string
	options []string
	def     int
	buf     []rune

	resolveChoice func(int)
	resolveText   func(string)
	resolveNotice func()
}

// Canvas is an in-memory canvas.Backend. Surface and Dialogs methods
// are called from the UI goroutine; the mutex exists so tests can
// inspect state from their own goroutine.
type Canvas struct {
	mu      sync.Mutex
	width   int
	height  int
	entries []canvas.Entry
	bg      color.RGBA
	title   string
	img     *image.RGBA
	present int
	closed  bool

	events chan canvas.Event

	dlg     *dialog
	choices []int    // scripted answers for ShowChoice
	texts   []string // scripted answers for ShowTextEntry
}

var _ canvas.Backend = (*Canvas)(nil)

// New returns a canvas with the given pixel dimensions.
func New(width, height int) *Canvas {
	if width <= 0 {
		width = 640
	}
	if height <= 0 {
		height = 480
	}
	return &Canvas{
		width:  width,
		height: height,
		bg:     color.RGBA{255, 255, 255, 255},
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		events: make(chan canvas.Event, 64),
	}
}

// Size implements canvas.Surface.
func (c *Canvas) Size() (int, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.width, c.height
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
	c.title = title
	c.mu.Unlock()
}

// Present implements canvas.Surface: background, then every entry in
// insertion order, then the open dialog if any.
func (c *Canvas) Present(tr canvas.Transform) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fillRect(c.img, c.img.Bounds(), c.bg)
	for _, e := range c.entries {
		renderEntry(c.img, tr, e)
	}
	if c.dlg != nil {
		renderDialog(c.img, c.dlg)
	}
	c.present++
}

// Events implements canvas.Surface.
func (c *Canvas) Events() <-chan canvas.Event {
	return c.events
}

// Close implements canvas.Surface.
func (c *Canvas) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	close(c.events)
	return nil
}

// ShowChoice implements canvas.Dialogs. A scripted answer resolves
// synchronously; otherwise the dialog stays open until a click or an
// Enter keypress arrives through HandleDialogEvent.
func (c *Canvas) ShowChoice(prompt string, options []string, def int, resolve func(int)) {
	c.mu.Lock()
	if len(c.choices) > 0 {
		idx := c.choices[0]
		c.choices = c.choices[1:]
		c.mu.Unlock()
		resolve(clampIndex(idx, len(options)))
		return
	}
	c.dlg = &dialog{
		kind:          dialogChoice,
		prompt:        prompt,
		options:       options,
		def:           clampIndex(def, len(options)),
		resolveChoice: resolve,
	}
	c.mu.Unlock()
}

// ShowTextEntry implements canvas.Dialogs.
func (c *Canvas) ShowTextEntry(prompt, def string, resolve func(string)) {
	c.mu.Lock()
	if len(c.texts) > 0 {
		text := c.texts[0]
		c.texts = c.texts[1:]
		c.mu.Unlock()
		resolve(text)
		return
	}
	c.dlg = &dialog{
		kind:        dialogText,
		prompt:      prompt,
		buf:         []rune(def),
		resolveText: resolve,
	}
	c.mu.Unlock()
}

// ShowNotice implements canvas.Dialogs.
func (c *Canvas) ShowNotice(message string, resolve func()) {
	c.mu.Lock()
	c.dlg = &dialog{kind: dialogNotice, prompt: message, resolveNotice: resolve}
	c.mu.Unlock()
}

// DialogOpen implements canvas.Dialogs.
func (c *Canvas) DialogOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dlg != nil
}

// HandleDialogEvent implements canvas.Dialogs. Choice dialogs lay out
// one equal-width button per option across the full canvas width, so a
// click at pixel x lands on button x*n/width. Text entry accumulates
// runes and resolves on Enter; notices dismiss on any click or Enter.
func (c *Canvas) HandleDialogEvent(ev canvas.Event) {
	c.mu.Lock()
	d := c.dlg
	if d == nil {
		c.mu.Unlock()
		return
	}

	switch d.kind {
	case dialogChoice:
		switch e := ev.(type) {
		case canvas.MousePress:
			idx := e.X * len(d.options) / c.width
			c.dlg = nil
			c.mu.Unlock()
			d.resolveChoice(clampIndex(idx, len(d.options)))
			return
		case canvas.KeyPress:
			if e.Key == canvas.KeyEnter {
				c.dlg = nil
				c.mu.Unlock()
				d.resolveChoice(d.def)
				return
			}
		}
	case dialogText:
		if e, ok := ev.(canvas.KeyPress); ok {
			switch e.Key {
			case canvas.KeyEnter:
				text := string(d.buf)
				c.dlg = nil
				c.mu.Unlock()
				d.resolveText(text)
				return
			case canvas.KeyBackspace, canvas.KeyDelete:
				if len(d.buf) > 0 {
					d.buf = d.buf[:len(d.buf)-1]
				}
			default:
				if r := rune(e.Key); r >= ' ' && r < 0xF000 {
					d.buf = append(d.buf, r)
				}
			}
		}
	case dialogNotice:
		switch e := ev.(type) {
		case canvas.MousePress:
			c.dlg = nil
			c.mu.Unlock()
			d.resolveNotice()
			return
		case canvas.KeyPress:
			if e.Key == canvas.KeyEnter {
				c.dlg = nil
				c.mu.Unlock()
				d.resolveNotice()
				return
			}
		}
	}
	c.mu.Unlock()
}

// Inject delivers an input event as if the toolkit produced it.
// Events injected after Close are dropped; the session they were
// destined for is gone and the channel is no longer open.
func (c *Canvas) Inject(ev canvas.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.events <- ev
}

// ScriptChoice queues an answer consumed by the next ShowChoice.
func (c *Canvas) ScriptChoice(idx int) {
	c.mu.Lock()
	c.choices = append(c.choices, idx)
	c.mu.Unlock()
}

// ScriptText queues an answer consumed by the next ShowTextEntry.
func (c *Canvas) ScriptText(text string) {
	c.mu.Lock()
	c.texts = append(c.texts, text)
	c.mu.Unlock()
}

// Entries returns a copy of the current entry set.
func (c *Canvas) Entries() []canvas.Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]canvas.Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Shapes returns the shapes of the current entries, in order.
func (c *Canvas) Shapes() []geom.Shape {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]geom.Shape, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.Shape
	}
	return out
}

// Title returns the current window title text.
func (c *Canvas) Title() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.title
}

// Presents returns how many times the surface has been repainted.
func (c *Canvas) Presents() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.present
}

// Image returns the rendered frame buffer. The caller must not hold it
// across a Present.
func (c *Canvas) Image() *image.RGBA {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.img
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// String implements fmt.Stringer for debugging output in tests.
func (c *Canvas) String() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return fmt.Sprintf("memcanvas %dx%d entries=%d dialog=%v", c.width, c.height, len(c.entries), c.dlg != nil)
}
