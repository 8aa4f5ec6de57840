package sgl

import (
	"github.com/veselink1/SGL/geom"
	"github.com/veselink1/SGL/loop"
)

// Sentinel errors returned by Window operations. Match them with
// errors.Is; blocking calls wrap nothing else around them.
var (
	// ErrCanceled reports a blocking call abandoned because the window
	// closed before the user responded.
	ErrCanceled = loop.ErrCanceled

	// ErrNotReady reports a call made before the window finished
	// initializing.
	ErrNotReady = loop.ErrNotReady

	// ErrUIGoroutine reports a blocking call made from the window's own
	// UI goroutine, which would deadlock it.
	ErrUIGoroutine = loop.ErrUIGoroutine

	// ErrInvalidArgument reports a rejected parameter, such as a
	// negative rectangle extent or an empty option list.
	ErrInvalidArgument = geom.ErrInvalidArgument
)
