package linecharts

import (
	"fmt"
	"math"
	"strings"

	"github.com/gogpu/gg"
	"github.com/midbel/slices"
)

const FontSize = 10.0

// LabelPosition tells where the labels of the x axis are drawn.
type LabelPosition int

const (
	LabelBottom LabelPosition = 1 << iota
	LabelTop
	LabelBottomInside
	LabelTopInside

	LabelBothSided = LabelBottom | LabelTop
)

func (p LabelPosition) Top() bool {
	return p&LabelTop != 0 || p&LabelTopInside != 0
}

func (p LabelPosition) Bottom() bool {
	return p&LabelBottom != 0 || p&LabelBottomInside != 0
}

func ParseLabelPosition(str string) (LabelPosition, error) {
	switch strings.ToLower(str) {
	case "", "bottom":
		return LabelBottom, nil
	case "top":
		return LabelTop, nil
	case "bottom-inside":
		return LabelBottomInside, nil
	case "top-inside":
		return LabelTopInside, nil
	case "both":
		return LabelBothSided, nil
	default:
		return LabelBottom, fmt.Errorf("%s: unknown label position", str)
	}
}

type XAxis struct {
	Enabled  bool
	Position LabelPosition

	DrawAxisLine bool
	AxisColor    gg.RGBA
	AxisWidth    float64
	AxisDash     []float64

	DrawGridLines bool
	GridColor     gg.RGBA
	GridWidth     float64
	GridDash      []float64

	DrawLabels    bool
	LabelColor    gg.RGBA
	FontSize      float64
	LabelRotation float64
	// SpaceBetweenLabels is the number of characters added to the average
	// label length when computing how many labels fit.
	SpaceBetweenLabels int
	// AvoidFirstLastClipping moves the first and last labels inside the chart.
	AvoidFirstLastClipping bool
	YOffset                float64
}

func DefaultXAxis() XAxis {
	return XAxis{
		Enabled:            true,
		Position:           LabelBottom,
		DrawAxisLine:       true,
		AxisColor:          gg.Hex("808080"),
		AxisWidth:          0.5,
		DrawGridLines:      true,
		GridColor:          gg.RGBA{R: 0.75, G: 0.75, B: 0.75, A: 0.5},
		GridWidth:          0.5,
		DrawLabels:         true,
		LabelColor:         gg.RGB(0, 0, 0),
		FontSize:           FontSize,
		SpaceBetweenLabels: 4,
		YOffset:            5,
	}
}

// XAxisRenderer computes the ticks of the x axis for the visible domain and
// draws its line, labels and grid.
type XAxisRenderer struct {
	axis      *XAxis
	viewport  *Viewport
	transform *Transform
	strategy  Strategy

	labelWidth  float64
	labelHeight float64
	visible     AxisDomain
	ticks       TickSet
}

func NewXAxisRenderer(axis *XAxis, viewport *Viewport, transform *Transform, strategy Strategy) *XAxisRenderer {
	return &XAxisRenderer{
		axis:      axis,
		viewport:  viewport,
		transform: transform,
		strategy:  strategy,
		visible:   NaNDomain(),
	}
}

func (r *XAxisRenderer) Ticks() TickSet {
	return r.ticks
}

// CalcXBounds records the visible domain of the provider and recomputes the
// ticks.
func (r *XAxisRenderer) CalcXBounds(p DataProvider) {
	r.visible = p.VisibleDomain()
	set := p.Series()
	r.ComputeAxis(r.averageLabelLength(set), longest(set))
}

// longest returns the series with the most entries. Ordinal bounds span the
// longest series, so it labels the ordinal ticks.
func longest(set []Series) Series {
	if len(set) == 0 {
		return nil
	}
	ref := slices.Fst(set)
	for _, s := range slices.Rest(set) {
		if s.Len() > ref.Len() {
			ref = s
		}
	}
	return ref
}

// ComputeAxis measures a label of the given length and rebuilds the ticks
// of the visible domain. ref labels ordinal ticks.
func (r *XAxisRenderer) ComputeAxis(avgLength float64, ref Series) {
	var (
		n     = int(math.Round(avgLength + float64(r.axis.SpaceBetweenLabels)))
		label = strings.Repeat("h", max(n, 1))
		size  = r.fontSize()
	)
	r.labelWidth, r.labelHeight = rotatedSize(TextWidth(label, size), LineHeight(size), r.axis.LabelRotation)
	r.ticks = r.strategy.Ticks(r.visible, r.viewport.ContentWidth(), r.labelWidth, ref)
	if r.ticks.Empty() {
		Logger().Debug("x axis without ticks", "mode", r.strategy.Mode(), "min", r.visible.Min, "max", r.visible.Max)
	}
}

func (r *XAxisRenderer) RenderAxisLine(c Canvas) error {
	if !r.axis.Enabled || !r.axis.DrawAxisLine {
		return nil
	}
	var (
		vp  = r.viewport
		pos = r.axis.Position
		pts []gg.Point
	)
	if pos.Top() {
		pts = append(pts, gg.Pt(vp.ContentLeft(), vp.ContentTop()), gg.Pt(vp.ContentRight(), vp.ContentTop()))
	}
	if pos.Bottom() {
		pts = append(pts, gg.Pt(vp.ContentLeft(), vp.ContentBottom()), gg.Pt(vp.ContentRight(), vp.ContentBottom()))
	}
	if len(pts) == 0 {
		return nil
	}
	st := Stroke{
		Color: r.axis.AxisColor,
		Width: r.axis.AxisWidth,
		Dash:  r.axis.AxisDash,
	}
	if err := c.StrokeSegments(pts, st); err != nil {
		return fmt.Errorf("x axis line: %w", err)
	}
	return nil
}

func (r *XAxisRenderer) RenderLabels(c Canvas) error {
	if !r.axis.Enabled || !r.axis.DrawLabels {
		return nil
	}
	var (
		vp     = r.viewport
		offset = r.axis.YOffset
		pos    = r.axis.Position
	)
	if pos&LabelTop != 0 {
		if err := r.drawLabels(c, vp.ContentTop()-offset-r.labelHeight); err != nil {
			return err
		}
	}
	if pos&LabelTopInside != 0 {
		if err := r.drawLabels(c, vp.ContentTop()+offset); err != nil {
			return err
		}
	}
	if pos&LabelBottom != 0 {
		if err := r.drawLabels(c, vp.ContentBottom()+offset); err != nil {
			return err
		}
	}
	if pos&LabelBottomInside != 0 {
		if err := r.drawLabels(c, vp.ContentBottom()-offset-r.labelHeight); err != nil {
			return err
		}
	}
	return nil
}

func (r *XAxisRenderer) drawLabels(c Canvas, y float64) error {
	var (
		m    = r.transform.ValueToPixel()
		vp   = r.viewport
		size = r.fontSize()
		n    = r.ticks.Len()
	)
	for i, v := range r.ticks.Values {
		x := m.TransformPoint(gg.Pt(v, 0)).X
		if !vp.IsInBoundsX(x) {
			continue
		}
		label := r.label(i)
		if r.axis.AvoidFirstLastClipping {
			width := TextWidth(label, size)
			if i == n-1 && n > 1 {
				if width > vp.Right*2 && x+width > vp.Width {
					x -= width / 2
				}
			} else if i == 0 {
				x += width / 2
			}
		}
		if err := c.DrawText(label, gg.Pt(x, y), AlignCenter, r.axis.LabelColor, size); err != nil {
			return fmt.Errorf("x axis label %q: %w", label, err)
		}
	}
	return nil
}

func (r *XAxisRenderer) RenderGridLines(c Canvas) error {
	if !r.axis.Enabled || !r.axis.DrawGridLines || r.ticks.Empty() {
		return nil
	}
	var (
		m   = r.transform.ValueToPixel()
		vp  = r.viewport
		pts = make([]gg.Point, 0, r.ticks.Len()*2)
	)
	for _, v := range r.ticks.Values {
		x := m.TransformPoint(gg.Pt(v, 0)).X
		if x < vp.Left || x > vp.Width {
			continue
		}
		pts = append(pts, gg.Pt(x, vp.ContentTop()), gg.Pt(x, vp.ContentBottom()))
	}
	if len(pts) == 0 {
		return nil
	}
	st := Stroke{
		Color: r.axis.GridColor,
		Width: r.axis.GridWidth,
		Dash:  r.axis.GridDash,
	}
	if err := c.StrokeSegments(pts, st); err != nil {
		return fmt.Errorf("x axis grid: %w", err)
	}
	return nil
}

func (r *XAxisRenderer) label(i int) string {
	if i < len(r.ticks.Labels) {
		return r.ticks.Labels[i]
	}
	return shortestFormatter.Format(r.ticks.Values[i])
}

func (r *XAxisRenderer) fontSize() float64 {
	if r.axis.FontSize <= 0 {
		return FontSize
	}
	return r.axis.FontSize
}

// averageLabelLength estimates the length of the labels of the axis. Ordinal
// labels come from the keys of the series; other labels from formatting the
// bounds of the visible domain.
func (r *XAxisRenderer) averageLabelLength(series []Series) float64 {
	switch r.strategy.Mode() {
	case Temporal:
		if !r.visible.Valid() {
			return float64(len(r.strategy.Date().Pattern))
		}
		return float64(len(r.strategy.Date().Format(r.visible.Max)))
	case Numeric:
		if !r.visible.Valid() {
			return 1
		}
		var (
			lo = len(shortestFormatter.Format(math.Round(r.visible.Min)))
			hi = len(shortestFormatter.Format(math.Round(r.visible.Max)))
		)
		return float64(max(lo, hi))
	default:
		var (
			total int
			count int
		)
		for _, s := range series {
			for i := 0; i < s.Len(); i++ {
				total += len(s.At(i).Key)
				count++
			}
		}
		if count == 0 {
			return 1
		}
		return float64(total) / float64(count)
	}
}

// rotatedSize returns the size of the bounding box of a w x h rectangle
// rotated by deg degrees.
func rotatedSize(w, h, deg float64) (float64, float64) {
	if deg == 0 {
		return w, h
	}
	var (
		rad      = deg * math.Pi / 180
		sin, cos = math.Abs(math.Sin(rad)), math.Abs(math.Cos(rad))
	)
	return w*cos + h*sin, w*sin + h*cos
}
