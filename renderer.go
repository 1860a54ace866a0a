package linecharts

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
)

// DataProvider gives the renderers access to the chart state.
type DataProvider interface {
	// Domain is the x domain of all the data.
	Domain() AxisDomain
	// VisibleDomain is the part of Domain visible with the current zoom.
	VisibleDomain() AxisDomain
	YDomain(AxisSide) AxisDomain
	MaxVisibleValueCount() int
	Transformer(AxisSide) *Transform
	Series() []Series
}

// Highlight designates the entry at Index of the series at DataSet.
type Highlight struct {
	DataSet int
	Index   int
}

var defaultValueFormatter = DecimalFormatter{Digits: 1}

// LineRenderer draws line series, their markers, values and highlights.
type LineRenderer struct {
	provider DataProvider
	animator Animator
	viewport *Viewport
	strategy Strategy

	builder PathBuilder
}

// NewLineRenderer panics when provider is nil. A nil animator draws
// everything.
func NewLineRenderer(provider DataProvider, animator Animator, viewport *Viewport, strategy Strategy) *LineRenderer {
	if provider == nil {
		panic("linecharts: line renderer created without data provider")
	}
	if animator == nil {
		animator = FullPhase()
	}
	if viewport == nil {
		panic("linecharts: line renderer created without viewport")
	}
	return &LineRenderer{
		provider: provider,
		animator: animator,
		viewport: viewport,
		strategy: strategy,
	}
}

func (r *LineRenderer) Strategy() Strategy {
	return r.strategy
}

// DrawData draws the fill and the line of every visible series.
func (r *LineRenderer) DrawData(c Canvas) error {
	for i, s := range r.provider.Series() {
		ls := lineSeries(s)
		if !ls.Visible() || ls.Len() == 0 {
			continue
		}
		if err := r.DrawDataSet(c, ls); err != nil {
			return fmt.Errorf("series %d: %w", i, err)
		}
	}
	return nil
}

// DrawDataSet draws one series. The filled area, if any, is drawn first so
// that the line stays on top of it.
func (r *LineRenderer) DrawDataSet(c Canvas, s LineSeries) error {
	var (
		style    = s.Line()
		trans    = r.provider.Transformer(s.Axis())
		from, to = r.VisibleRange(s, trans)
		in       = r.input(s, trans, from, to)
	)
	if to-from < 2 {
		return nil
	}
	switch {
	case style.Mode == Cubic:
		stroke := r.builder.Cubic(in)
		if err := r.drawFill(c, s, stroke, in.Matrix); err != nil {
			return err
		}
		return r.strokePath(c, stroke, style.stroke(style.ColorAt(0)))
	case style.MultiColor():
		if style.Fill.Enabled {
			stroke := r.builder.Linear(in)
			if err := r.drawFill(c, s, stroke, in.Matrix); err != nil {
				return err
			}
		}
		return r.builder.Segments(in, func(i int, pts []gg.Point) error {
			if err := c.StrokeSegments(pts, style.stroke(style.ColorAt(i))); err != nil {
				return fmt.Errorf("stroke segment %d: %w", i, err)
			}
			return nil
		})
	default:
		stroke := r.builder.Linear(in)
		if err := r.drawFill(c, s, stroke, in.Matrix); err != nil {
			return err
		}
		return r.strokePath(c, stroke, style.stroke(style.ColorAt(0)))
	}
}

func (r *LineRenderer) strokePath(c Canvas, pat *gg.Path, st Stroke) error {
	if pat == nil {
		return nil
	}
	if err := c.StrokePath(pat, st); err != nil {
		return fmt.Errorf("stroke line: %w", err)
	}
	return nil
}

func (r *LineRenderer) drawFill(c Canvas, s LineSeries, stroke *gg.Path, m gg.Matrix) error {
	style := s.Line()
	if !style.Fill.Enabled {
		return nil
	}
	formatter := style.Fill.Formatter
	if formatter == nil {
		formatter = ZeroFill
	}
	pat := r.builder.Fill(stroke, formatter.FillLinePosition(s, r.provider), m)
	if pat == nil {
		return nil
	}
	if err := c.FillPath(pat, style.fillColor()); err != nil {
		return fmt.Errorf("fill area: %w", err)
	}
	return nil
}

// DrawCircles draws the markers of the visible entries.
func (r *LineRenderer) DrawCircles(c Canvas) error {
	phase := r.animator.PhaseY()
	for i, s := range r.provider.Series() {
		ls := lineSeries(s)
		style := ls.Line()
		if !ls.Visible() || !style.Circle.Enabled || ls.Len() == 0 {
			continue
		}
		var (
			trans    = r.provider.Transformer(ls.Axis())
			from, to = r.VisibleRange(ls, trans)
			m        = trans.ValueToPixel()
			radius   = style.Circle.Radius
		)
		for j := from; j < to; j++ {
			e := ls.At(j)
			x := r.strategy.MapX(e)
			if isNaN(x) || isNaN(e.Value) {
				continue
			}
			pt := m.TransformPoint(gg.Pt(x, e.Value*phase))
			if !r.viewport.IsInBoundsRight(pt.X) {
				break
			}
			if !r.viewport.IsInBoundsLeft(pt.X) || !r.viewport.IsInBoundsY(pt.Y) {
				continue
			}
			if err := c.FillCircle(pt, radius, style.Circle.Colors.At(j)); err != nil {
				return fmt.Errorf("series %d: circle %d: %w", i, j, err)
			}
			if !style.Circle.Hole {
				continue
			}
			if err := c.FillCircle(pt, radius/2, style.Circle.HoleColor); err != nil {
				return fmt.Errorf("series %d: circle hole %d: %w", i, j, err)
			}
		}
	}
	return nil
}

// DrawValues writes the value of each visible entry above its point. Nothing
// is drawn when there are too many entries for the current zoom.
func (r *LineRenderer) DrawValues(c Canvas) error {
	var (
		series = r.provider.Series()
		count  int
	)
	for _, s := range series {
		count += s.Len()
	}
	limit := float64(r.provider.MaxVisibleValueCount()) * r.viewport.ScaleX()
	if float64(count) >= limit {
		return nil
	}
	phase := r.animator.PhaseY()
	for i, s := range series {
		ls := lineSeries(s)
		style := ls.Line()
		if !ls.Visible() || !style.Value.Enabled || ls.Len() == 0 {
			continue
		}
		var (
			trans    = r.provider.Transformer(ls.Axis())
			from, to = r.VisibleRange(ls, trans)
			m        = trans.ValueToPixel()
			format   = style.Value.Formatter
			offset   = int(style.Circle.Radius * 1.75)
		)
		if format == nil {
			format = defaultValueFormatter
		}
		if !style.Circle.Enabled {
			offset /= 2
		}
		for j := from; j < to; j++ {
			e := ls.At(j)
			x := r.strategy.MapX(e)
			if isNaN(x) || isNaN(e.Value) {
				continue
			}
			pt := m.TransformPoint(gg.Pt(x, e.Value*phase))
			if !r.viewport.IsInBoundsRight(pt.X) {
				break
			}
			if !r.viewport.IsInBoundsLeft(pt.X) || !r.viewport.IsInBoundsY(pt.Y) {
				continue
			}
			pt.Y -= float64(offset) + LineHeight(style.Value.Size)
			err := c.DrawText(format.Format(e.Value), pt, AlignCenter, style.Value.Colors.At(j), style.Value.Size)
			if err != nil {
				return fmt.Errorf("series %d: value %d: %w", i, j, err)
			}
		}
	}
	return nil
}

// DrawHighlighted draws the highlight lines crossing the given entries.
// Entries not yet revealed by the animation are ignored.
func (r *LineRenderer) DrawHighlighted(c Canvas, hs []Highlight) error {
	var (
		series = r.provider.Series()
		domain = r.provider.Domain()
		phaseX = r.animator.PhaseX()
		phaseY = r.animator.PhaseY()
	)
	for _, h := range hs {
		if h.DataSet < 0 || h.DataSet >= len(series) {
			continue
		}
		ls := lineSeries(series[h.DataSet])
		style := ls.Line()
		if !style.Highlight.Enabled || h.Index < 0 || h.Index >= ls.Len() {
			continue
		}
		e := ls.At(h.Index)
		x := r.strategy.MapX(e)
		if isNaN(x) {
			continue
		}
		if domain.Valid() && x > domain.Min+domain.Delta*phaseX {
			continue
		}
		y := e.Value * phaseY
		if isNaN(y) {
			continue
		}
		var (
			trans = r.provider.Transformer(ls.Axis())
			pt    = trans.PointValueToPixel(x, y)
			pts   []gg.Point
		)
		if style.Highlight.Vertical {
			pts = append(pts, gg.Pt(pt.X, r.viewport.ContentTop()), gg.Pt(pt.X, r.viewport.ContentBottom()))
		}
		if style.Highlight.Horizontal {
			pts = append(pts, gg.Pt(r.viewport.ContentLeft(), pt.Y), gg.Pt(r.viewport.ContentRight(), pt.Y))
		}
		if len(pts) == 0 {
			continue
		}
		st := Stroke{
			Color: style.Highlight.Color,
			Width: style.Highlight.Width,
			Dash:  style.Highlight.Dash,
		}
		if err := c.StrokeSegments(pts, st); err != nil {
			return fmt.Errorf("highlight %d/%d: %w", h.DataSet, h.Index, err)
		}
	}
	return nil
}

// VisibleRange returns the entries of s to draw: [from, to). The range starts
// at the last entry left of the content area and ends after the first entry
// right of it, so lines crossing the edges are kept even when no entry lies
// inside. Entries are expected in increasing x order. The range holds at
// least two entries when s has them, then is shortened by the x phase of the
// animator; it is empty when the revealed part has less than two entries.
func (r *LineRenderer) VisibleRange(s Series, trans *Transform) (int, int) {
	n := s.Len()
	if n == 0 {
		return 0, 0
	}
	var (
		lo   = trans.PixelToValue(gg.Pt(r.viewport.ContentLeft(), 0)).X
		hi   = trans.PixelToValue(gg.Pt(r.viewport.ContentRight(), 0)).X
		from = 0
		to   = n
	)
	if isFinite(lo) && isFinite(hi) {
		if lo > hi {
			lo, hi = hi, lo
		}
		for i := 0; i < n; i++ {
			x := r.strategy.MapX(s.At(i))
			if isNaN(x) {
				continue
			}
			if x <= lo {
				from = i
			}
			if x >= hi {
				to = i + 1
				break
			}
		}
	}
	if to-from < 2 {
		to = min(from+2, n)
		from = max(to-2, 0)
	}
	phase := clamp(r.animator.PhaseX(), 0, 1)
	to = from + int(math.Ceil(float64(to-from)*phase))
	if to-from < 2 {
		return from, from
	}
	return from, to
}

func (r *LineRenderer) input(s LineSeries, trans *Transform, from, to int) PathInput {
	style := s.Line()
	return PathInput{
		Series:    s,
		MapX:      r.strategy.MapX,
		Matrix:    trans.ValueToPixel(),
		PhaseY:    r.animator.PhaseY(),
		From:      from,
		To:        to,
		Stepped:   style.Mode == Stepped,
		Intensity: style.Intensity,
		Viewport:  r.viewport,
	}
}

func lineSeries(s Series) LineSeries {
	ls, ok := s.(LineSeries)
	if !ok {
		panic(fmt.Sprintf("linecharts: %T can not be drawn as a line", s))
	}
	return ls
}
