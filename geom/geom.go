// Package geom provides the shape value types drawn onto an SGL window.
//
// Shapes are plain immutable records in the logical coordinate space:
// positive Y points up, and the origin sits at the center of the window.
// Two shapes compare equal when all of their fields compare equal; the
// window's erase operations match by this value equality, never by
// reference identity.
package geom

import "errors"

// ErrInvalidArgument reports a shape constructed with out-of-range
// arguments, such as a negative width.
var ErrInvalidArgument = errors.New("geom: invalid argument")

// Shape is the tagged union of all drawable primitives:
// Point, Line, Rectangle, Ellipse, Label, and Polyline.
type Shape interface {
	// Equal reports whether the shape is value-equal to other.
	Equal(other Shape) bool

	shape() // restricts implementations to this package
}
