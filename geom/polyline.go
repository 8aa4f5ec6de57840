package geom

// Polyline is an open chain of connected segments. Function plots are
// drawn as one or more polylines, split wherever the sampled path
// leaves the visible viewport.
type Polyline struct {
	Points []Point
}

// Polygon is not provided; close a Polyline by repeating its first point.

// Length returns the total length of the chain.
func (p Polyline) Length() float64 {
	var sum float64
	for i := 1; i < len(p.Points); i++ {
		sum += p.Points[i-1].Distance(p.Points[i])
	}
	return sum
}

// Equal implements Shape. Two polylines are equal when their point
// sequences match exactly, element for element.
func (p Polyline) Equal(other Shape) bool {
	q, ok := other.(Polyline)
	if !ok || len(p.Points) != len(q.Points) {
		return false
	}
	for i := range p.Points {
		if p.Points[i] != q.Points[i] {
			return false
		}
	}
	return true
}

func (Polyline) shape() {}
