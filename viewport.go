package linecharts

import (
	"math"

	"github.com/gogpu/gg"
)

type Padding struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}

type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Viewport describes the drawing surface: its size, the padding around the
// content area and the zoom/pan state produced by gesture handling.
type Viewport struct {
	Width  float64
	Height float64
	Padding

	// Touch is the zoom and pan matrix applied between the value matrix and
	// the offset matrix.
	Touch gg.Matrix

	MinScaleX float64
	MaxScaleX float64
}

func NewViewport(width, height float64, pad Padding) *Viewport {
	return &Viewport{
		Width:     width,
		Height:    height,
		Padding:   pad,
		Touch:     gg.Identity(),
		MinScaleX: 1,
		MaxScaleX: math.MaxFloat64,
	}
}

func (v *Viewport) ContentRect() Rect {
	return Rect{
		X: v.Left,
		Y: v.Top,
		W: v.ContentWidth(),
		H: v.ContentHeight(),
	}
}

func (v *Viewport) ContentWidth() float64 {
	return max(v.Width-v.Padding.Horizontal(), 0)
}

func (v *Viewport) ContentHeight() float64 {
	return max(v.Height-v.Padding.Vertical(), 0)
}

func (v *Viewport) ContentLeft() float64   { return v.Left }
func (v *Viewport) ContentRight() float64  { return v.Width - v.Right }
func (v *Viewport) ContentTop() float64    { return v.Top }
func (v *Viewport) ContentBottom() float64 { return v.Height - v.Bottom }

// ScaleX is the horizontal zoom factor.
func (v *Viewport) ScaleX() float64 {
	if v.Touch.A == 0 {
		return 1
	}
	return v.Touch.A
}

func (v *Viewport) ScaleY() float64 {
	if v.Touch.E == 0 {
		return 1
	}
	return v.Touch.E
}

// The bounds checks tolerate one pixel so points lying on the border of the
// content area are kept.

func (v *Viewport) IsInBoundsLeft(x float64) bool {
	return v.ContentLeft() <= x+1
}

func (v *Viewport) IsInBoundsRight(x float64) bool {
	x = floor(x*100) / 100
	return v.ContentRight() >= x-1
}

func (v *Viewport) IsInBoundsTop(y float64) bool {
	return v.ContentTop() <= y
}

func (v *Viewport) IsInBoundsBottom(y float64) bool {
	y = floor(y*100) / 100
	return v.ContentBottom() >= y
}

func (v *Viewport) IsInBoundsX(x float64) bool {
	return v.IsInBoundsLeft(x) && v.IsInBoundsRight(x)
}

func (v *Viewport) IsInBoundsY(y float64) bool {
	return v.IsInBoundsTop(y) && v.IsInBoundsBottom(y)
}

func (v *Viewport) IsInBounds(p gg.Point) bool {
	return v.IsInBoundsX(p.X) && v.IsInBoundsY(p.Y)
}

// Zoom scales the chart by sx around the pixel x. The horizontal scale is
// kept within MinScaleX and MaxScaleX.
func (v *Viewport) Zoom(sx, x float64) {
	next := clamp(v.ScaleX()*sx, v.MinScaleX, v.MaxScaleX)
	sx = next / v.ScaleX()
	x -= v.ContentLeft()
	z := gg.Translate(x, 0).Multiply(gg.Scale(sx, 1)).Multiply(gg.Translate(-x, 0))
	v.Touch = v.limit(z.Multiply(v.Touch))
}

// Pan moves the chart by dx pixels. The content can not be dragged past its
// edges.
func (v *Viewport) Pan(dx float64) {
	v.Touch = v.limit(gg.Translate(dx, 0).Multiply(v.Touch))
}

func (v *Viewport) Reset() {
	v.Touch = gg.Identity()
}

func (v *Viewport) limit(m gg.Matrix) gg.Matrix {
	var (
		width = v.ContentWidth()
		lower = -width * (m.A - 1)
	)
	m.C = clamp(m.C, lower, 0)
	return m
}
