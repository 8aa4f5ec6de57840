package canvas

import (
	"math"
	"testing"

	"github.com/veselink1/SGL/geom"
)

func TestTransformShortAxisMapsToRange(t *testing.T) {
	// 800x600 at range 5: the shorter (vertical) axis spans [-5, 5].
	tr := NewTransform(5, 800, 600)
	if got, want := tr.YMax(), 5.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("YMax = %g, want %g", got, want)
	}
	// The horizontal axis extends by the aspect ratio.
	if got, want := tr.XMax(), 5.0*800/600; math.Abs(got-want) > 1e-9 {
		t.Errorf("XMax = %g, want %g", got, want)
	}
}

func TestTransformRoundTrip(t *testing.T) {
	tr := NewTransform(10, 640, 480)
	pts := []geom.Point{{X: 0, Y: 0}, {X: 3, Y: 4}, {X: -7.5, Y: 2.25}, {X: 9.9, Y: -9.9}}
	for _, p := range pts {
		x, y := tr.ToPixel(p)
		q := tr.ToLogical(int(math.Round(x)), int(math.Round(y)))
		if p.Distance(q) > 2/tr.PixelsPerUnit() {
			t.Errorf("round trip %v -> (%g,%g) -> %v drifted", p, x, y, q)
		}
	}
}

func TestTransformYFlip(t *testing.T) {
	tr := NewTransform(5, 400, 400)
	_, yUp := tr.ToPixel(geom.Pt(0, 4))
	_, yDown := tr.ToPixel(geom.Pt(0, -4))
	if !(yUp < yDown) {
		t.Errorf("positive logical Y should map above negative: %g vs %g", yUp, yDown)
	}
	// Origin maps to the pixel center.
	x, y := tr.ToPixel(geom.Pt(0, 0))
	if x != 200 || y != 200 {
		t.Errorf("origin mapped to (%g,%g), want (200,200)", x, y)
	}
}

func TestTransformZoomClamp(t *testing.T) {
	tr := NewTransform(5, 400, 400)
	for i := 0; i < 100; i++ {
		tr = tr.Zoomed(1.25)
	}
	if tr.Scale != MaxScale {
		t.Errorf("Scale after repeated zoom in = %g, want %g", tr.Scale, MaxScale)
	}
	for i := 0; i < 100; i++ {
		tr = tr.Zoomed(0.8)
	}
	if tr.Scale != MinScale {
		t.Errorf("Scale after repeated zoom out = %g, want %g", tr.Scale, MinScale)
	}
}

func TestTransformZoomKeepsRange(t *testing.T) {
	tr := NewTransform(5, 400, 400).Zoomed(2)
	if tr.Range != 5 {
		t.Errorf("zoom changed the logical range: %g", tr.Range)
	}
	// Zooming in shrinks the visible viewport.
	if got := tr.YMax(); got >= 5 {
		t.Errorf("YMax after 2x zoom = %g, want < 5", got)
	}
}
