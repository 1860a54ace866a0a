package linecharts

import (
	"github.com/gogpu/gg"
)

type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "middle"
	case AlignRight:
		return "end"
	default:
		return "start"
	}
}

// Anchor returns the horizontal anchor of the alignment in [0, 1].
func (a Align) Anchor() float64 {
	switch a {
	case AlignCenter:
		return 0.5
	case AlignRight:
		return 1
	default:
		return 0
	}
}

type Stroke struct {
	Color     gg.RGBA
	Width     float64
	Dash      []float64
	DashPhase float64
	Cap       gg.LineCap
}

// Canvas is the drawing surface used by the renderers. Coordinates are in
// pixels with the origin in the top left corner. Text is positioned by the
// top of its line box.
type Canvas interface {
	StrokePath(*gg.Path, Stroke) error
	// StrokeSegments strokes the points pairwise: (0, 1), (2, 3)...
	StrokeSegments([]gg.Point, Stroke) error
	FillPath(*gg.Path, gg.RGBA) error
	FillCircle(gg.Point, float64, gg.RGBA) error
	DrawText(string, gg.Point, Align, gg.RGBA, float64) error
}

// LineHeight returns the height of a line of text in the given font size.
func LineHeight(size float64) float64 {
	return size * 1.2
}

// TextWidth approximates the width of str in the given font size.
func TextWidth(str string, size float64) float64 {
	return float64(len([]rune(str))) * size * 0.6
}
