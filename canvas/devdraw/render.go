package devdraw

import (
	"image"
	"image/color"
	"math"

	"9fans.net/go/draw"

	"github.com/veselink1/SGL/canvas"
	"github.com/veselink1/SGL/geom"
)

// pixel maps a logical point to devdraw coordinates, which are offset
// by the window's position on the shared screen.
func (c *Canvas) pixel(tr canvas.Transform, p geom.Point) image.Point {
	x, y := tr.ToPixel(p)
	return image.Pt(int(math.Round(x)), int(math.Round(y))).Add(c.screen.R.Min)
}

// renderEntry paints one entry. Callers hold c.mu.
func (c *Canvas) renderEntry(tr canvas.Transform, e canvas.Entry) {
	st := e.Style
	stroke := c.color(st.Stroke)
	radius := int(st.Thickness / 2)

	switch s := e.Shape.(type) {
	case geom.Point:
		r := radius
		if r < 2 {
			r = 2
		}
		c.screen.FillEllipse(c.pixel(tr, s), r, r, stroke, image.Point{})

	case geom.Line:
		c.screen.Line(c.pixel(tr, s.A), c.pixel(tr, s.B),
			draw.EndSquare, draw.EndSquare, radius, stroke, image.Point{})

	case geom.Rectangle:
		// Logical Y grows up, so the pixel top-left comes from the
		// logical top-left (X, Y+Height).
		min := c.pixel(tr, geom.Pt(s.X, s.Y+s.Height))
		max := c.pixel(tr, geom.Pt(s.X+s.Width, s.Y))
		r := image.Rectangle{Min: min, Max: max}
		if st.Fill.A > 0 {
			c.screen.Draw(r, c.color(st.Fill), nil, image.Point{})
		}
		n := int(st.Thickness)
		if n < 1 {
			n = 1
		}
		c.screen.Border(r, n, stroke, image.Point{})

	case geom.Ellipse:
		ppu := tr.PixelsPerUnit()
		center := c.pixel(tr, s.Center)
		a := int(math.Round(s.RadiusX * ppu))
		b := int(math.Round(s.RadiusY * ppu))
		if st.Fill.A > 0 {
			c.screen.FillEllipse(center, a, b, c.color(st.Fill), image.Point{})
		}
		c.screen.Ellipse(center, a, b, radius, stroke, image.Point{})

	case geom.Label:
		c.drawString(c.pixel(tr, s.At), s.Text, st.Stroke, s.Align)

	case geom.Polyline:
		if len(s.Points) < 2 {
			return
		}
		pts := make([]image.Point, len(s.Points))
		for i, p := range s.Points {
			pts[i] = c.pixel(tr, p)
		}
		c.screen.Poly(pts, draw.EndSquare, draw.EndSquare, radius, stroke, image.Point{})
	}
}

// drawString paints s with its top-left, center, or top-right at pt
// according to align. Callers hold c.mu.
func (c *Canvas) drawString(pt image.Point, s string, col color.RGBA, align geom.Alignment) {
	switch align {
	case geom.AlignCenter:
		pt.X -= c.font.StringWidth(s) / 2
	case geom.AlignRight:
		pt.X -= c.font.StringWidth(s)
	}
	c.screen.String(pt, c.color(col), image.Point{}, c.font, s)
}
