package memcanvas

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/veselink1/SGL/canvas"
	"github.com/veselink1/SGL/geom"
)

// face is the bitmap face used for labels and dialog text. The style's
// FontScale is ignored by the fixed-size face.
var face = basicfont.Face7x13

func fillRect(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

func disc(img *image.RGBA, cx, cy, r int, c color.RGBA) {
	if r <= 0 {
		if image.Pt(cx, cy).In(img.Bounds()) {
			img.SetRGBA(cx, cy, c)
		}
		return
	}
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r && image.Pt(cx+dx, cy+dy).In(img.Bounds()) {
				img.SetRGBA(cx+dx, cy+dy, c)
			}
		}
	}
}

// strokeSegment draws the segment (x0,y0)-(x1,y1) by stamping discs at
// sub-pixel steps. Crude but dependency-light, and exact enough for a
// software preview surface.
func strokeSegment(img *image.RGBA, x0, y0, x1, y1 float64, c color.RGBA, thickness float64) {
	r := int(thickness / 2)
	length := math.Hypot(x1-x0, y1-y0)
	steps := int(length*2) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		disc(img, int(math.Round(x0+(x1-x0)*t)), int(math.Round(y0+(y1-y0)*t)), r, c)
	}
}

func drawString(img *image.RGBA, x, y int, s string, c color.RGBA, align geom.Alignment) {
	w := font.MeasureString(face, s).Ceil()
	switch align {
	case geom.AlignCenter:
		x -= w / 2
	case geom.AlignRight:
		x -= w
	}
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func renderEntry(img *image.RGBA, tr canvas.Transform, e canvas.Entry) {
	st := e.Style
	switch s := e.Shape.(type) {
	case geom.Point:
		x, y := tr.ToPixel(s)
		r := int(st.Thickness / 2)
		if r < 2 {
			r = 2
		}
		disc(img, int(math.Round(x)), int(math.Round(y)), r, st.Stroke)

	case geom.Line:
		x0, y0 := tr.ToPixel(s.A)
		x1, y1 := tr.ToPixel(s.B)
		strokeSegment(img, x0, y0, x1, y1, st.Stroke, st.Thickness)

	case geom.Rectangle:
		// Logical Y grows up, so the top-left pixel corner comes from
		// the logical top-left (X, Y+Height).
		x0, y0 := tr.ToPixel(geom.Pt(s.X, s.Y+s.Height))
		x1, y1 := tr.ToPixel(geom.Pt(s.X+s.Width, s.Y))
		if st.Fill.A > 0 {
			fillRect(img, image.Rect(int(x0), int(y0), int(x1), int(y1)), st.Fill)
		}
		strokeSegment(img, x0, y0, x1, y0, st.Stroke, st.Thickness)
		strokeSegment(img, x1, y0, x1, y1, st.Stroke, st.Thickness)
		strokeSegment(img, x1, y1, x0, y1, st.Stroke, st.Thickness)
		strokeSegment(img, x0, y1, x0, y0, st.Stroke, st.Thickness)

	case geom.Ellipse:
		if st.Fill.A > 0 {
			fillEllipse(img, tr, s, st.Fill)
		}
		const segments = 64
		px, py := tr.ToPixel(geom.Pt(s.Center.X+s.RadiusX, s.Center.Y))
		for i := 1; i <= segments; i++ {
			a := 2 * math.Pi * float64(i) / segments
			qx, qy := tr.ToPixel(geom.Pt(
				s.Center.X+s.RadiusX*math.Cos(a),
				s.Center.Y+s.RadiusY*math.Sin(a),
			))
			strokeSegment(img, px, py, qx, qy, st.Stroke, st.Thickness)
			px, py = qx, qy
		}

	case geom.Label:
		x, y := tr.ToPixel(s.At)
		drawString(img, int(math.Round(x)), int(math.Round(y)), s.Text, st.Stroke, s.Align)

	case geom.Polyline:
		for i := 1; i < len(s.Points); i++ {
			x0, y0 := tr.ToPixel(s.Points[i-1])
			x1, y1 := tr.ToPixel(s.Points[i])
			strokeSegment(img, x0, y0, x1, y1, st.Stroke, st.Thickness)
		}
	}
}

func fillEllipse(img *image.RGBA, tr canvas.Transform, e geom.Ellipse, c color.RGBA) {
	x0, y0 := tr.ToPixel(geom.Pt(e.Center.X-e.RadiusX, e.Center.Y+e.RadiusY))
	x1, y1 := tr.ToPixel(geom.Pt(e.Center.X+e.RadiusX, e.Center.Y-e.RadiusY))
	bbox := image.Rect(int(x0), int(y0), int(x1)+1, int(y1)+1).Intersect(img.Bounds())
	for y := bbox.Min.Y; y < bbox.Max.Y; y++ {
		for x := bbox.Min.X; x < bbox.Max.X; x++ {
			if e.Contains(tr.ToLogical(x, y)) {
				img.SetRGBA(x, y, c)
			}
		}
	}
}

// renderDialog paints a plain modal panel: a framed box with the
// prompt, plus option captions or the text buffer. The hit-test
// geometry lives in HandleDialogEvent, not here.
func renderDialog(img *image.RGBA, d *dialog) {
	b := img.Bounds()
	panel := image.Rect(b.Min.X+20, b.Max.Y/2-40, b.Max.X-20, b.Max.Y/2+40)
	fillRect(img, panel, color.RGBA{230, 230, 230, 255})
	border := color.RGBA{0, 0, 0, 255}
	strokeSegment(img, float64(panel.Min.X), float64(panel.Min.Y), float64(panel.Max.X), float64(panel.Min.Y), border, 1)
	strokeSegment(img, float64(panel.Max.X), float64(panel.Min.Y), float64(panel.Max.X), float64(panel.Max.Y), border, 1)
	strokeSegment(img, float64(panel.Max.X), float64(panel.Max.Y), float64(panel.Min.X), float64(panel.Max.Y), border, 1)
	strokeSegment(img, float64(panel.Min.X), float64(panel.Max.Y), float64(panel.Min.X), float64(panel.Min.Y), border, 1)

	drawString(img, panel.Min.X+8, panel.Min.Y+16, d.prompt, border, geom.AlignLeft)

	switch d.kind {
	case dialogChoice:
		n := len(d.options)
		w := b.Dx()
		for i, opt := range d.options {
			cx := i*w/n + w/(2*n)
			drawString(img, cx, panel.Max.Y-10, opt, border, geom.AlignCenter)
		}
	case dialogText:
		drawString(img, panel.Min.X+8, panel.Max.Y-10, string(d.buf)+"_", border, geom.AlignLeft)
	}
}
