package geom

import "fmt"

// Rectangle is an axis-aligned rectangle anchored at its bottom-left
// corner (X, Y) in logical coordinates.
type Rectangle struct {
	X, Y          float64
	Width, Height float64
}

// NewRectangle returns the rectangle with bottom-left corner (x, y)
// and the given extents. Negative extents are rejected.
func NewRectangle(x, y, width, height float64) (Rectangle, error) {
	if width < 0 || height < 0 {
		return Rectangle{}, fmt.Errorf("%w: rectangle %gx%g", ErrInvalidArgument, width, height)
	}
	return Rectangle{X: x, Y: y, Width: width, Height: height}, nil
}

// Area returns Width*Height.
func (r Rectangle) Area() float64 {
	return r.Width * r.Height
}

// Perimeter returns 2*(Width+Height).
func (r Rectangle) Perimeter() float64 {
	return 2 * (r.Width + r.Height)
}

// Center returns the center point of the rectangle.
func (r Rectangle) Center() Point {
	return Point{r.X + r.Width/2, r.Y + r.Height/2}
}

// Contains reports whether p lies inside or on the edge of r.
func (r Rectangle) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width && p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Equal implements Shape.
func (r Rectangle) Equal(other Shape) bool {
	s, ok := other.(Rectangle)
	return ok && r == s
}

func (Rectangle) shape() {}
