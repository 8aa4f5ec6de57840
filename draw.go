package sgl

import (
	"math"

	"github.com/veselink1/SGL/canvas"
	"github.com/veselink1/SGL/geom"
)

// Draw queues s for display with the window's current style. It
// returns immediately; the shape appears on the next frame. Drawing
// the same value twice displays it twice.
func (w *Window) Draw(s geom.Shape) {
	st := w.currentStyle()
	w.loop.Post(func() {
		w.backend.Add(canvas.Entry{Shape: s, Style: st})
	})
}

// Erase removes every displayed shape equal to s on the next frame.
// Equality is by value, so the argument need not be the same instance
// that was drawn. Erasing an absent shape is a no-op.
func (w *Window) Erase(s geom.Shape) {
	w.loop.Post(func() {
		w.backend.RemoveMatching(s)
	})
}

// Clear removes every displayed shape on the next frame.
func (w *Window) Clear() {
	w.loop.Post(w.backend.Clear)
}

// DrawPoint draws a point at (x, y) and returns it so it can be
// erased later.
func (w *Window) DrawPoint(x, y float64) geom.Point {
	p := geom.Pt(x, y)
	w.Draw(p)
	return p
}

// DrawLine draws a segment from (x0, y0) to (x1, y1).
func (w *Window) DrawLine(x0, y0, x1, y1 float64) geom.Line {
	l := geom.Ln(geom.Pt(x0, y0), geom.Pt(x1, y1))
	w.Draw(l)
	return l
}

// DrawRectangle draws an axis-aligned rectangle with bottom-left
// corner (x, y). Negative extents are rejected.
func (w *Window) DrawRectangle(x, y, width, height float64) (geom.Rectangle, error) {
	r, err := geom.NewRectangle(x, y, width, height)
	if err != nil {
		return geom.Rectangle{}, err
	}
	w.Draw(r)
	return r, nil
}

// DrawEllipse draws an ellipse centered at (cx, cy) with the given
// radii. Non-positive radii are rejected.
func (w *Window) DrawEllipse(cx, cy, rx, ry float64) (geom.Ellipse, error) {
	e, err := geom.NewEllipse(cx, cy, rx, ry)
	if err != nil {
		return geom.Ellipse{}, err
	}
	w.Draw(e)
	return e, nil
}

// DrawCircle draws a circle centered at (cx, cy) with radius r.
func (w *Window) DrawCircle(cx, cy, r float64) (geom.Ellipse, error) {
	e, err := geom.Circle(cx, cy, r)
	if err != nil {
		return geom.Ellipse{}, err
	}
	w.Draw(e)
	return e, nil
}

// DrawText draws text anchored at (x, y), left-aligned.
func (w *Window) DrawText(x, y float64, text string) geom.Label {
	l := geom.NewLabel(x, y, text)
	w.Draw(l)
	return l
}

// DrawFunc plots y = f(x) over [start, end] intersected with the
// visible viewport, one sample per pixel column. Where f leaves the
// viewport or is not finite the plot breaks into separate polylines.
// The polylines are returned so the plot can be erased later.
func (w *Window) DrawFunc(f func(x float64) float64, start, end float64) []geom.Polyline {
	segs := w.sampleFunc(f, start, end)
	for _, pl := range segs {
		w.Draw(pl)
	}
	return segs
}

// EraseFunc removes the polylines an earlier DrawFunc with the same
// arguments produced. It resamples f against the current transform,
// so it only matches if the window has not been resized, zoomed, or
// re-ranged in between; erasing the polylines DrawFunc returned is
// the robust alternative.
func (w *Window) EraseFunc(f func(x float64) float64, start, end float64) {
	for _, pl := range w.sampleFunc(f, start, end) {
		w.Erase(pl)
	}
}

// sampleFunc samples f across the visible part of [start, end] at one
// sample per pixel column, splitting at out-of-range and non-finite
// values. Deterministic for a fixed transform, so equal calls yield
// equal polylines.
func (w *Window) sampleFunc(f func(x float64) float64, start, end float64) []geom.Polyline {
	tr := w.loop.Transform()
	if start > end {
		start, end = end, start
	}
	lo := math.Max(start, -tr.XMax())
	hi := math.Min(end, tr.XMax())
	if !(lo < hi) {
		return nil
	}
	steps := tr.Width
	if steps < 1 {
		steps = 1
	}
	ymax := tr.YMax()

	var out []geom.Polyline
	var run []geom.Point
	flush := func() {
		if len(run) >= 2 {
			out = append(out, geom.Polyline{Points: run})
		}
		run = nil
	}
	for i := 0; i <= steps; i++ {
		x := lo + (hi-lo)*float64(i)/float64(steps)
		y := f(x)
		if math.IsNaN(y) || math.IsInf(y, 0) || y < -ymax || y > ymax {
			flush()
			continue
		}
		run = append(run, geom.Pt(x, y))
	}
	flush()
	return out
}
