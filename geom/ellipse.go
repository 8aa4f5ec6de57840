package geom

import (
	"fmt"
	"math"
)

// Ellipse is an axis-aligned ellipse centered at Center with the
// given semi-axes.
type Ellipse struct {
	Center           Point
	RadiusX, RadiusY float64
}

// NewEllipse returns the ellipse centered at (x, y) with semi-axes
// rx and ry. Negative radii are rejected.
func NewEllipse(x, y, rx, ry float64) (Ellipse, error) {
	if rx < 0 || ry < 0 {
		return Ellipse{}, fmt.Errorf("%w: ellipse radii %g, %g", ErrInvalidArgument, rx, ry)
	}
	return Ellipse{Center: Point{x, y}, RadiusX: rx, RadiusY: ry}, nil
}

// Circle returns the circle centered at (x, y) with radius r.
func Circle(x, y, r float64) (Ellipse, error) {
	return NewEllipse(x, y, r, r)
}

// Area returns pi*RadiusX*RadiusY.
func (e Ellipse) Area() float64 {
	return math.Pi * e.RadiusX * e.RadiusY
}

// Contains reports whether p lies inside or on the edge of e.
func (e Ellipse) Contains(p Point) bool {
	if e.RadiusX == 0 || e.RadiusY == 0 {
		return false
	}
	dx := (p.X - e.Center.X) / e.RadiusX
	dy := (p.Y - e.Center.Y) / e.RadiusY
	return dx*dx+dy*dy <= 1
}

// Equal implements Shape.
func (e Ellipse) Equal(other Shape) bool {
	f, ok := other.(Ellipse)
	return ok && e == f
}

func (Ellipse) shape() {}
