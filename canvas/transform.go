package canvas

import "github.com/veselink1/SGL/geom"

// Display scale clamp for wheel zoom. The logical range is never
// altered by zooming; only the pixels-per-unit factor changes.
const (
	MinScale = 0.25
	MaxScale = 4.0
)

// Transform maps the logical coordinate space onto surface pixels.
//
// The shorter screen axis always maps exactly to [-Range, +Range] at
// Scale 1; the longer axis extends proportionally with the aspect
// ratio. Logical Y points up, pixel Y points down.
type Transform struct {
	Range         float64 // half-extent of the shorter axis, in logical units
	Width, Height int     // surface pixel dimensions
	Scale         float64 // wheel-zoom display scale, clamped to [MinScale, MaxScale]
}

// NewTransform returns the transform for a surface of the given pixel
// size showing the given logical range at scale 1.
func NewTransform(rng float64, width, height int) Transform {
	if rng <= 0 {
		rng = 10
	}
	return Transform{Range: rng, Width: width, Height: height, Scale: 1}
}

// PixelsPerUnit returns the current logical-to-pixel scale factor.
func (t Transform) PixelsPerUnit() float64 {
	short := t.Width
	if t.Height < short {
		short = t.Height
	}
	if short <= 0 || t.Range <= 0 {
		return 1
	}
	scale := t.Scale
	if scale <= 0 {
		scale = 1
	}
	return float64(short) / (2 * t.Range) * scale
}

// XMax returns the half-extent of the visible logical viewport along X.
func (t Transform) XMax() float64 {
	return float64(t.Width) / 2 / t.PixelsPerUnit()
}

// YMax returns the half-extent of the visible logical viewport along Y.
func (t Transform) YMax() float64 {
	return float64(t.Height) / 2 / t.PixelsPerUnit()
}

// ToPixel maps a logical point to pixel coordinates.
func (t Transform) ToPixel(p geom.Point) (x, y float64) {
	ppu := t.PixelsPerUnit()
	return float64(t.Width)/2 + p.X*ppu, float64(t.Height)/2 - p.Y*ppu
}

// ToLogical maps a pixel position to the logical point under it.
func (t Transform) ToLogical(x, y int) geom.Point {
	ppu := t.PixelsPerUnit()
	return geom.Point{
		X: (float64(x) - float64(t.Width)/2) / ppu,
		Y: (float64(t.Height)/2 - float64(y)) / ppu,
	}
}

// Zoomed returns a copy of t with the scale multiplied by factor and
// clamped to [MinScale, MaxScale].
func (t Transform) Zoomed(factor float64) Transform {
	s := t.Scale
	if s <= 0 {
		s = 1
	}
	s *= factor
	if s < MinScale {
		s = MinScale
	}
	if s > MaxScale {
		s = MaxScale
	}
	t.Scale = s
	return t
}

// Resized returns a copy of t with new pixel dimensions.
func (t Transform) Resized(width, height int) Transform {
	t.Width = width
	t.Height = height
	return t
}
