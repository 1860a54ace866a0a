package linecharts

import (
	"github.com/gogpu/gg"
)

// Interpolation selects how consecutive points of a line are joined.
type Interpolation int

const (
	Linear Interpolation = iota
	Stepped
	Cubic
)

func (i Interpolation) String() string {
	switch i {
	case Linear:
		return "linear"
	case Stepped:
		return "stepped"
	case Cubic:
		return "cubic"
	default:
		return "unknown"
	}
}

const (
	DefaultLineWidth      = 1.0
	DefaultCubicIntensity = 0.2
	DefaultCircleRadius   = 4.0
	DefaultFillAlpha      = 85.0 / 255.0
	DefaultValueFontSize  = 9.0
)

// LineStyle carries the per data set drawing options. Intensity is expected in
// [0, 1]; values outside are used as given.
type LineStyle struct {
	Colors    Palette
	Width     float64
	Dash      []float64
	DashPhase float64
	Cap       gg.LineCap
	Mode      Interpolation
	Intensity float64

	Fill struct {
		Enabled   bool
		Color     gg.RGBA
		Alpha     float64
		Formatter FillFormatter
	}
	Circle struct {
		Enabled   bool
		Radius    float64
		Colors    Palette
		Hole      bool
		HoleColor gg.RGBA
	}
	Value struct {
		Enabled   bool
		Formatter Formatter
		Size      float64
		Colors    Palette
	}
	Highlight struct {
		Enabled    bool
		Color      gg.RGBA
		Width      float64
		Dash       []float64
		Vertical   bool
		Horizontal bool
	}
}

func DefaultLineStyle() LineStyle {
	var s LineStyle
	s.Colors = Palette{Category10.At(0)}
	s.Width = DefaultLineWidth
	s.Cap = gg.LineCapButt
	s.Intensity = DefaultCubicIntensity

	s.Fill.Color = Category10.At(0)
	s.Fill.Alpha = DefaultFillAlpha

	s.Circle.Enabled = true
	s.Circle.Radius = DefaultCircleRadius
	s.Circle.Colors = Palette{Category10.At(0)}
	s.Circle.Hole = true
	s.Circle.HoleColor = gg.RGB(1, 1, 1)

	s.Value.Enabled = true
	s.Value.Size = DefaultValueFontSize
	s.Value.Colors = Palette{gg.RGB(0, 0, 0)}

	s.Highlight.Enabled = true
	s.Highlight.Color = gg.RGB(1, 187.0/255, 115.0/255)
	s.Highlight.Width = 0.5
	s.Highlight.Vertical = true
	s.Highlight.Horizontal = true
	return s
}

// ColorAt returns the stroke colour of segment i.
func (s *LineStyle) ColorAt(i int) gg.RGBA {
	return s.Colors.At(i)
}

// MultiColor reports whether each segment is stroked with its own colour.
func (s *LineStyle) MultiColor() bool {
	return len(s.Colors) > 1
}

func (s *LineStyle) stroke(c gg.RGBA) Stroke {
	return Stroke{
		Color:     c,
		Width:     s.Width,
		Dash:      s.Dash,
		DashPhase: s.DashPhase,
		Cap:       s.Cap,
	}
}

func (s *LineStyle) fillColor() gg.RGBA {
	return withAlpha(s.Fill.Color, s.Fill.Alpha)
}
