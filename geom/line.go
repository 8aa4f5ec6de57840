package geom

// Line is a straight segment between two points.
type Line struct {
	A, B Point
}

// Ln is shorthand for Line{a, b}.
func Ln(a, b Point) Line {
	return Line{a, b}
}

// Length returns the length of the segment.
func (l Line) Length() float64 {
	return l.A.Distance(l.B)
}

// Midpoint returns the point halfway between the endpoints.
func (l Line) Midpoint() Point {
	return l.A.Lerp(l.B, 0.5)
}

// At returns the point a fraction t of the way from A to B.
func (l Line) At(t float64) Point {
	return l.A.Lerp(l.B, t)
}

// Equal implements Shape.
func (l Line) Equal(other Shape) bool {
	m, ok := other.(Line)
	return ok && l == m
}

func (Line) shape() {}
