package sgl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/veselink1/SGL/canvas"
	"github.com/veselink1/SGL/geom"
	"github.com/veselink1/SGL/loop"
)

// ReadString opens a text prompt pre-filled with def and blocks until
// the user confirms. It returns ErrCanceled if the window closes
// first.
func (w *Window) ReadString(prompt, def string) (string, error) {
	w.dialogMu.Lock()
	defer w.dialogMu.Unlock()
	return w.textDialog(prompt, def)
}

// ReadInt prompts until the reply parses as an int.
func (w *Window) ReadInt(prompt string, def int) (int, error) {
	w.dialogMu.Lock()
	defer w.dialogMu.Unlock()
	for {
		text, err := w.textDialog(prompt, strconv.Itoa(def))
		if err != nil {
			return 0, err
		}
		if v, perr := strconv.Atoi(strings.TrimSpace(text)); perr == nil {
			return v, nil
		}
	}
}

// ReadInt64 prompts until the reply parses as an int64.
func (w *Window) ReadInt64(prompt string, def int64) (int64, error) {
	w.dialogMu.Lock()
	defer w.dialogMu.Unlock()
	for {
		text, err := w.textDialog(prompt, strconv.FormatInt(def, 10))
		if err != nil {
			return 0, err
		}
		if v, perr := strconv.ParseInt(strings.TrimSpace(text), 10, 64); perr == nil {
			return v, nil
		}
	}
}

// ReadFloat32 prompts until the reply parses as a float32.
func (w *Window) ReadFloat32(prompt string, def float32) (float32, error) {
	w.dialogMu.Lock()
	defer w.dialogMu.Unlock()
	for {
		text, err := w.textDialog(prompt, strconv.FormatFloat(float64(def), 'g', -1, 32))
		if err != nil {
			return 0, err
		}
		if v, perr := strconv.ParseFloat(strings.TrimSpace(text), 32); perr == nil {
			return float32(v), nil
		}
	}
}

// ReadFloat64 prompts until the reply parses as a float64.
func (w *Window) ReadFloat64(prompt string, def float64) (float64, error) {
	w.dialogMu.Lock()
	defer w.dialogMu.Unlock()
	for {
		text, err := w.textDialog(prompt, strconv.FormatFloat(def, 'g', -1, 64))
		if err != nil {
			return 0, err
		}
		if v, perr := strconv.ParseFloat(strings.TrimSpace(text), 64); perr == nil {
			return v, nil
		}
	}
}

func (w *Window) textDialog(prompt, def string) (string, error) {
	return loop.Run(w.loop, func(ctx *loop.Ctx, resolve func(string)) {
		ctx.Backend().ShowTextEntry(prompt, def, resolve)
		ctx.MarkDirty()
	})
}

// SelectOne opens a choice dialog and blocks until the user picks an
// option, returning its index. Pressing Enter picks def.
func (w *Window) SelectOne(prompt string, options []string, def int) (int, error) {
	if len(options) == 0 {
		return 0, fmt.Errorf("%w: no options", ErrInvalidArgument)
	}
	w.dialogMu.Lock()
	defer w.dialogMu.Unlock()
	return loop.Run(w.loop, func(ctx *loop.Ctx, resolve func(int)) {
		ctx.Backend().ShowChoice(prompt, options, def, resolve)
		ctx.MarkDirty()
	})
}

// SelectItem is SelectOne returning the chosen option text.
func (w *Window) SelectItem(prompt string, options []string, def int) (string, error) {
	idx, err := w.SelectOne(prompt, options, def)
	if err != nil {
		return "", err
	}
	return options[idx], nil
}

// YesOrNo asks a yes/no question and blocks until answered.
func (w *Window) YesOrNo(prompt string, def bool) (bool, error) {
	d := 1
	if def {
		d = 0
	}
	idx, err := w.SelectOne(prompt, []string{"Yes", "No"}, d)
	if err != nil {
		return false, err
	}
	return idx == 0, nil
}

// Notify shows a message and blocks until the user dismisses it.
func (w *Window) Notify(message string) error {
	w.dialogMu.Lock()
	defer w.dialogMu.Unlock()
	_, err := loop.Run(w.loop, func(ctx *loop.Ctx, resolve func(struct{})) {
		ctx.Backend().ShowNotice(message, func() { resolve(struct{}{}) })
		ctx.MarkDirty()
	})
	return err
}

// SelectPoint blocks until the user clicks in the window and returns
// the click in logical coordinates. While it waits, the window title
// previews the logical coordinates under the pointer; the original
// title is restored on the click.
func (w *Window) SelectPoint() (geom.Point, error) {
	w.dialogMu.Lock()
	defer w.dialogMu.Unlock()
	title := w.Title()
	return loop.Run(w.loop, func(ctx *loop.Ctx, resolve func(geom.Point)) {
		ctx.ArmPointer(
			func(x, y int) {
				p := ctx.Transform().ToLogical(x, y)
				ctx.Backend().SetTitle(fmt.Sprintf("%s (%.2f, %.2f)", title, p.X, p.Y))
				ctx.MarkDirty()
			},
			func(x, y int, _ canvas.Button) bool {
				ctx.Backend().SetTitle(title)
				ctx.MarkDirty()
				resolve(ctx.Transform().ToLogical(x, y))
				return true
			},
		)
	})
}
