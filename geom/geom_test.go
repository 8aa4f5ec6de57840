package geom

import (
	"errors"
	"math"
	"testing"
)

func TestPointDistance(t *testing.T) {
	tests := []struct {
		p, q Point
		want float64
	}{
		{Pt(0, 0), Pt(0, 0), 0},
		{Pt(0, 0), Pt(3, 4), 5},
		{Pt(-3, 4), Pt(0, 0), 5},
		{Pt(1, 1), Pt(1, 2), 1},
	}
	for _, tc := range tests {
		got := tc.p.Distance(tc.q)
		if got != tc.want {
			t.Errorf("Distance(%v, %v) = %g, want %g", tc.p, tc.q, got, tc.want)
		}
	}
}

func TestPointLerp(t *testing.T) {
	a, b := Pt(0, 0), Pt(10, -4)
	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(0) = %v, want %v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(1) = %v, want %v", got, b)
	}
	if got := a.Lerp(b, 0.5); got != Pt(5, -2) {
		t.Errorf("Lerp(0.5) = %v, want (5,-2)", got)
	}
}

func TestRectangleMetrics(t *testing.T) {
	r, err := NewRectangle(0, 0, 4, 2)
	if err != nil {
		t.Fatalf("NewRectangle(0,0,4,2): %v", err)
	}
	if r.Area() != 8.0 {
		t.Errorf("Area = %g, want 8", r.Area())
	}
	if r.Perimeter() != 12.0 {
		t.Errorf("Perimeter = %g, want 12", r.Perimeter())
	}
	if r.Center() != Pt(2, 1) {
		t.Errorf("Center = %v, want (2,1)", r.Center())
	}
}

func TestRectangleNegativeExtent(t *testing.T) {
	if _, err := NewRectangle(0, 0, -1, 1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("NewRectangle(-1 width) err = %v, want ErrInvalidArgument", err)
	}
	if _, err := NewRectangle(0, 0, 1, -1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("NewRectangle(-1 height) err = %v, want ErrInvalidArgument", err)
	}
}

func TestEllipseValidation(t *testing.T) {
	if _, err := NewEllipse(0, 0, -2, 1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("NewEllipse(-2 rx) err = %v, want ErrInvalidArgument", err)
	}
	e, err := Circle(0, 0, 2)
	if err != nil {
		t.Fatalf("Circle: %v", err)
	}
	if got, want := e.Area(), math.Pi*4; math.Abs(got-want) > 1e-12 {
		t.Errorf("Area = %g, want %g", got, want)
	}
	if !e.Contains(Pt(1, 1)) || e.Contains(Pt(2, 2)) {
		t.Errorf("Contains: inside/outside classification wrong")
	}
}

func TestShapeEqualityByValue(t *testing.T) {
	tests := []struct {
		a, b Shape
		want bool
	}{
		{Pt(1, 2), Pt(1, 2), true},
		{Pt(1, 2), Pt(1, 3), false},
		{Ln(Pt(0, 0), Pt(1, 1)), Ln(Pt(0, 0), Pt(1, 1)), true},
		{Ln(Pt(0, 0), Pt(1, 1)), Ln(Pt(1, 1), Pt(0, 0)), false},
		{NewLabel(0, 0, "hi"), NewLabel(0, 0, "hi"), true},
		{NewLabel(0, 0, "hi"), NewLabel(0, 0, "ho"), false},
		{Pt(0, 0), Ln(Pt(0, 0), Pt(0, 0)), false},
		{Polyline{[]Point{{0, 0}, {1, 1}}}, Polyline{[]Point{{0, 0}, {1, 1}}}, true},
		{Polyline{[]Point{{0, 0}, {1, 1}}}, Polyline{[]Point{{0, 0}}}, false},
	}
	for _, tc := range tests {
		if got := tc.a.Equal(tc.b); got != tc.want {
			t.Errorf("Equal(%#v, %#v) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestPolylineEqualDistinctBackingArrays(t *testing.T) {
	// Equality is by value, not by identity of the backing slice.
	a := Polyline{Points: []Point{{0, 0}, {1, 2}, {3, 4}}}
	b := Polyline{Points: []Point{{0, 0}, {1, 2}, {3, 4}}}
	if !a.Equal(b) {
		t.Errorf("value-equal polylines with distinct slices compared unequal")
	}
}
