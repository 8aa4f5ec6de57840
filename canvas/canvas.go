// Package canvas defines the contract between an SGL window and the
// UI toolkit that hosts it.
//
// A Backend supplies two capabilities: a Surface holding tagged shape
// entries and delivering input events, and Dialogs for the modal
// prompts behind the window's blocking read operations. Every Surface
// and Dialogs method is invoked from the single UI goroutine only;
// implementations need no internal locking for those calls.
package canvas

import (
	"image/color"

	"github.com/veselink1/SGL/geom"
)

// Style is a draw-style snapshot captured at the moment a drawing call
// is issued. Later style changes by the caller never affect entries
// already queued with an earlier snapshot.
type Style struct {
	Stroke    color.RGBA
	Fill      color.RGBA
	Thickness float64 // stroke thickness in pixels
	FontScale float64 // label size multiplier, 1.0 is the base face
}

// Entry is one primitive on a surface, tagged with the shape value it
// was drawn from. Removal matches entries by shape value equality.
type Entry struct {
	Shape geom.Shape
	Style Style
}

// Surface is the drawable area of the host toolkit.
type Surface interface {
	// Size returns the pixel dimensions of the drawable area.
	Size() (width, height int)

	// Add appends an entry to the surface.
	Add(e Entry)

	// RemoveMatching removes every entry whose shape is value-equal to
	// s and returns the number removed. Removing a shape with no
	// matching entry is a no-op.
	RemoveMatching(s geom.Shape) int

	// Clear removes all entries.
	Clear()

	// SetBackground sets the color the surface is wiped with before
	// entries are painted.
	SetBackground(c color.RGBA)

	// SetTitle updates the window title text.
	SetTitle(title string)

	// Present repaints the surface: background, then every entry in
	// insertion order, mapped through tr.
	Present(tr Transform)

	// Events returns the channel of input events. The channel is
	// closed when the surface is torn down.
	Events() <-chan Event

	// Close releases the surface and its window.
	Close() error
}

// Dialogs provides the modal prompts used by blocking reads. A shown
// dialog resolves either synchronously inside the Show call or later
// from HandleDialogEvent; each resolve callback fires at most once.
type Dialogs interface {
	// ShowChoice presents prompt with one button per option and calls
	// resolve with the chosen index.
	ShowChoice(prompt string, options []string, def int, resolve func(choice int))

	// ShowTextEntry presents prompt with a line editor seeded with def
	// and calls resolve with the submitted text.
	ShowTextEntry(prompt, def string, resolve func(text string))

	// ShowNotice presents message with a single dismiss button and
	// calls resolve when dismissed.
	ShowNotice(message string, resolve func())

	// DialogOpen reports whether a dialog is awaiting interaction.
	DialogOpen() bool

	// HandleDialogEvent feeds an input event to the open dialog.
	// It is only called while DialogOpen reports true.
	HandleDialogEvent(ev Event)
}

// Backend bundles the capabilities a window needs from its toolkit.
type Backend interface {
	Surface
	Dialogs
}
