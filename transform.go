package linecharts

import (
	"github.com/gogpu/gg"
)

// Transform maps values of one axis side to pixels. The full matrix is
// offset * touch * valueToPx: values are first scaled to the content size,
// then zoomed and panned, then moved into the content area.
type Transform struct {
	viewport *Viewport

	valueToPx gg.Matrix
	offset    gg.Matrix
}

func NewTransform(v *Viewport) *Transform {
	t := Transform{
		viewport:  v,
		valueToPx: gg.Identity(),
	}
	t.PrepareOffset(false)
	return &t
}

// Prepare rebuilds the value matrix for the given domains. A zero delta is
// treated as 1.
func (t *Transform) Prepare(xMin, deltaX, yMin, deltaY float64) {
	if deltaX == 0 || !isFinite(deltaX) {
		deltaX = 1
	}
	if deltaY == 0 || !isFinite(deltaY) {
		deltaY = 1
	}
	var (
		sx = t.viewport.ContentWidth() / deltaX
		sy = t.viewport.ContentHeight() / deltaY
	)
	if !isFinite(xMin) {
		xMin = 0
	}
	if !isFinite(yMin) {
		yMin = 0
	}
	t.valueToPx = gg.Scale(sx, -sy).Multiply(gg.Translate(-xMin, -yMin))
}

// PrepareOffset positions the origin at the bottom left corner of the content
// area, or at the top left one when inverted.
func (t *Transform) PrepareOffset(inverted bool) {
	v := t.viewport
	if inverted {
		t.offset = gg.Translate(v.Left, v.Top).Multiply(gg.Scale(1, -1))
		return
	}
	t.offset = gg.Translate(v.Left, v.Height-v.Bottom)
}

func (t *Transform) ValueToPixel() gg.Matrix {
	return t.offset.Multiply(t.viewport.Touch.Multiply(t.valueToPx))
}

func (t *Transform) PointValueToPixel(x, y float64) gg.Point {
	return t.ValueToPixel().TransformPoint(gg.Pt(x, y))
}

// PixelToValue is the inverse of PointValueToPixel. The result is NaN when
// the matrix can not be inverted.
func (t *Transform) PixelToValue(p gg.Point) gg.Point {
	m, ok := invert(t.ValueToPixel())
	if !ok {
		return gg.Pt(nan(), nan())
	}
	return m.TransformPoint(p)
}

// invert does not reject small determinants: value matrices of temporal axes
// have tiny horizontal scales.
func invert(m gg.Matrix) (gg.Matrix, bool) {
	det := m.A*m.E - m.B*m.D
	if det == 0 || !isFinite(det) {
		return gg.Identity(), false
	}
	inv := 1 / det
	return gg.Matrix{
		A: m.E * inv,
		B: -m.B * inv,
		C: (m.B*m.F - m.C*m.E) * inv,
		D: -m.D * inv,
		E: m.A * inv,
		F: (m.C*m.D - m.A*m.F) * inv,
	}, true
}
