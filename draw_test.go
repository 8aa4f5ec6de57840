package sgl

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"github.com/veselink1/SGL/geom"
)

func TestDrawThenErase(t *testing.T) {
	w, c := openTestWindow(t)
	w.DrawPoint(1, 2)
	w.DrawPoint(3, 4)
	waitUntil(t, "points drawn", func() bool { return len(c.Entries()) == 2 })

	// Erase by value: a fresh instance matches the drawn one.
	w.Erase(geom.Pt(1, 2))
	waitUntil(t, "point erased", func() bool { return len(c.Entries()) == 1 })
	if !c.Shapes()[0].Equal(geom.Pt(3, 4)) {
		t.Fatalf("remaining shape = %v, want (3,4)", c.Shapes()[0])
	}

	// Erasing something never drawn changes nothing.
	w.Erase(geom.Pt(9, 9))
	w.DrawLine(0, 0, 1, 1)
	waitUntil(t, "line drawn", func() bool { return len(c.Entries()) == 2 })

	w.Clear()
	waitUntil(t, "canvas cleared", func() bool { return len(c.Entries()) == 0 })
}

func TestDrawCapturesStyleAtCallTime(t *testing.T) {
	w, c := openTestWindow(t)
	red := color.RGBA{255, 0, 0, 255}
	blue := color.RGBA{0, 0, 255, 255}

	w.SetStrokeColor(red)
	w.DrawPoint(0, 0)
	w.SetStrokeColor(blue)
	w.DrawPoint(1, 1)

	waitUntil(t, "both points drawn", func() bool { return len(c.Entries()) == 2 })
	entries := c.Entries()
	if entries[0].Style.Stroke != red {
		t.Fatalf("first entry stroke = %v, want red", entries[0].Style.Stroke)
	}
	if entries[1].Style.Stroke != blue {
		t.Fatalf("second entry stroke = %v, want blue", entries[1].Style.Stroke)
	}
}

func TestShapeConstructorsValidate(t *testing.T) {
	w, c := openTestWindow(t)
	if _, err := w.DrawRectangle(0, 0, -1, 2); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("negative width accepted: %v", err)
	}
	if _, err := w.DrawEllipse(0, 0, 1, -1); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("negative radius accepted: %v", err)
	}
	if _, err := w.DrawCircle(0, 0, 2); err != nil {
		t.Fatalf("DrawCircle: %v", err)
	}
	if _, err := w.DrawRectangle(-1, -1, 2, 2); err != nil {
		t.Fatalf("DrawRectangle: %v", err)
	}
	waitUntil(t, "valid shapes drawn", func() bool { return len(c.Entries()) == 2 })
}

// With range 5 the parabola x^2 exits the viewport at |x| = sqrt(5),
// so the visible plot is a single unbroken polyline.
func TestDrawFuncParabola(t *testing.T) {
	w, c := openTestWindow(t)
	segs := w.DrawFunc(func(x float64) float64 { return x * x }, -5, 5)
	if len(segs) != 1 {
		t.Fatalf("DrawFunc produced %d polylines, want 1", len(segs))
	}
	pts := segs[0].Points
	if len(pts) < 100 {
		t.Fatalf("plot has %d samples, want at least one per visible pixel column", len(pts))
	}
	root := math.Sqrt(5)
	if first := pts[0].X; first < -root-0.1 || first > -root+0.1 {
		t.Errorf("plot starts at x=%g, want about -sqrt(5)", first)
	}
	if last := pts[len(pts)-1].X; last < root-0.1 || last > root+0.1 {
		t.Errorf("plot ends at x=%g, want about sqrt(5)", last)
	}
	for _, p := range pts {
		if p.Y != p.X*p.X {
			t.Fatalf("sample (%g, %g) off the curve", p.X, p.Y)
		}
		if p.Y > 5 {
			t.Fatalf("sample y=%g outside the viewport", p.Y)
		}
	}
	waitUntil(t, "plot drawn", func() bool { return len(c.Entries()) == 1 })
}

func TestDrawFuncBreaksAtPole(t *testing.T) {
	w, _ := openTestWindow(t)
	segs := w.DrawFunc(func(x float64) float64 { return 1 / x }, -5, 5)
	if len(segs) != 2 {
		t.Fatalf("1/x produced %d polylines, want 2 (one per branch)", len(segs))
	}
	for _, p := range segs[0].Points {
		if p.X >= 0 {
			t.Fatalf("first branch contains x=%g >= 0", p.X)
		}
	}
	for _, p := range segs[1].Points {
		if p.X <= 0 {
			t.Fatalf("second branch contains x=%g <= 0", p.X)
		}
	}
}

func TestEraseFuncRemovesMatchingPlot(t *testing.T) {
	w, c := openTestWindow(t)
	f := func(x float64) float64 { return math.Sin(x) }
	segs := w.DrawFunc(f, -5, 5)
	waitUntil(t, "plot drawn", func() bool { return len(c.Entries()) == len(segs) })

	// Same function, same bounds, unchanged transform: the resampled
	// polylines are equal by value and erase the originals.
	w.EraseFunc(f, -5, 5)
	waitUntil(t, "plot erased", func() bool { return len(c.Entries()) == 0 })
}

func TestDrawFuncOutsideViewportIsEmpty(t *testing.T) {
	w, _ := openTestWindow(t)
	if segs := w.DrawFunc(func(x float64) float64 { return x }, 50, 60); segs != nil {
		t.Fatalf("plot fully outside the viewport produced %d polylines", len(segs))
	}
}
