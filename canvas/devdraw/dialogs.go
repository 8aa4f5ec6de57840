package devdraw

import (
	"image"
	"image/color"

	"github.com/veselink1/SGL/canvas"
	"github.com/veselink1/SGL/geom"
)

const (
	dialogChoice = iota
	dialogText
	dialogNotice
)

// dialog is the state of the open modal prompt, if any. At most one
// is open at a time; the loop routes input here while it is.
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

// ShowChoice implements canvas.Dialogs.
func (c *Canvas) ShowChoice(prompt string, options []string, def int, resolve func(int)) {
	c.mu.Lock()
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
// one equal-width button per option across the window, so a click at
// pixel x lands on button x*n/width. Text entry accumulates runes and
// resolves on Enter; notices dismiss on any click or Enter.
func (c *Canvas) HandleDialogEvent(ev canvas.Event) {
	c.mu.Lock()
	d := c.dlg
	if d == nil {
		c.mu.Unlock()
		return
	}
	width := c.screen.R.Dx()

	switch d.kind {
	case dialogChoice:
		switch e := ev.(type) {
		case canvas.MousePress:
			idx := e.X * len(d.options) / width
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

// renderDialog paints the modal panel: a bordered box across the
// window's middle with the prompt, plus option captions at the hit
// bucket centers or the text buffer with a cursor. Callers hold c.mu.
func (c *Canvas) renderDialog() {
	d := c.dlg
	r := c.screen.R
	mid := (r.Min.Y + r.Max.Y) / 2
	panel := image.Rect(r.Min.X+20, mid-3*c.font.Height, r.Max.X-20, mid+3*c.font.Height)

	grey := color.RGBA{230, 230, 230, 255}
	black := color.RGBA{A: 255}
	c.screen.Draw(panel, c.color(grey), nil, image.Point{})
	c.screen.Border(panel, 1, c.color(black), image.Point{})
	c.drawString(panel.Min.Add(image.Pt(8, 4)), d.prompt, black, geom.AlignLeft)

	switch d.kind {
	case dialogChoice:
		n := len(d.options)
		w := r.Dx()
		for i, opt := range d.options {
			cx := r.Min.X + i*w/n + w/(2*n)
			c.drawString(image.Pt(cx, panel.Max.Y-c.font.Height-4), opt, black, geom.AlignCenter)
		}
	case dialogText:
		c.drawString(image.Pt(panel.Min.X+8, panel.Max.Y-c.font.Height-4), string(d.buf)+"_", black, geom.AlignLeft)
	}
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
