package linecharts

import (
	"fmt"

	"github.com/gogpu/gg"
)

const (
	DefaultMaxVisibleValueCount = 100
	DefaultSpaceTop             = 0.1
	DefaultSpaceBottom          = 0.1
)

type Options struct {
	Width   float64
	Height  float64
	Padding Padding

	Mode     ValueMode
	Strategy StrategyOptions
	XAxis    XAxis

	// StartAtZero includes 0 in the y domain.
	StartAtZero bool
	// SpaceTop and SpaceBottom widen the y domain by a fraction of its size.
	SpaceTop    float64
	SpaceBottom float64
	Inverted    bool

	MaxVisibleValueCount int
	Background           gg.RGBA
	Animator             Animator
}

func DefaultOptions(width, height float64) Options {
	return Options{
		Width:  width,
		Height: height,
		Padding: Padding{
			Top:    20,
			Right:  20,
			Bottom: 30,
			Left:   20,
		},
		Mode:                 Ordinal,
		XAxis:                DefaultXAxis(),
		SpaceTop:             DefaultSpaceTop,
		SpaceBottom:          DefaultSpaceBottom,
		MaxVisibleValueCount: DefaultMaxVisibleValueCount,
		Background:           gg.RGB(1, 1, 1),
		Animator:             FullPhase(),
	}
}

// LineChart ties series, transforms and renderers together. It is the data
// provider of its renderers. A LineChart is not safe for concurrent use.
type LineChart struct {
	opts     Options
	viewport *Viewport
	left     *Transform
	right    *Transform

	series     []Series
	highlights []Highlight

	domain AxisDomain
	yLeft  AxisDomain
	yRight AxisDomain

	strategy Strategy
	axis     *XAxisRenderer
	renderer *LineRenderer
}

func NewLineChart(opts Options) *LineChart {
	if opts.Animator == nil {
		opts.Animator = FullPhase()
	}
	if opts.MaxVisibleValueCount <= 0 {
		opts.MaxVisibleValueCount = DefaultMaxVisibleValueCount
	}
	c := LineChart{
		opts:     opts,
		viewport: NewViewport(opts.Width, opts.Height, opts.Padding),
		domain:   NaNDomain(),
		yLeft:    NaNDomain(),
		yRight:   NaNDomain(),
	}
	c.left = NewTransform(c.viewport)
	c.right = NewTransform(c.viewport)
	c.left.PrepareOffset(opts.Inverted)
	c.right.PrepareOffset(opts.Inverted)
	c.rebind(opts.Mode)
	return &c
}

// SetMode changes how x values are read. The value mapper, the bounds, the
// ticks and both renderers are replaced together before the domains are
// recomputed.
func (c *LineChart) SetMode(mode ValueMode) {
	c.rebind(mode)
	c.NotifyDataSetChanged()
}

func (c *LineChart) rebind(mode ValueMode) {
	var (
		strategy = NewStrategy(mode, c.opts.Strategy)
		axis     = NewXAxisRenderer(&c.opts.XAxis, c.viewport, c.left, strategy)
		renderer = NewLineRenderer(c, c.opts.Animator, c.viewport, strategy)
	)
	c.opts.Mode = mode
	c.strategy, c.axis, c.renderer = strategy, axis, renderer
	Logger().Debug("value mode bound", "mode", mode)
}

func (c *LineChart) Mode() ValueMode {
	return c.strategy.Mode()
}

func (c *LineChart) SetData(series ...Series) {
	c.series = series
	c.highlights = c.highlights[:0]
	c.NotifyDataSetChanged()
}

// Highlight replaces the highlighted entries.
func (c *LineChart) Highlight(hs ...Highlight) {
	c.highlights = append(c.highlights[:0], hs...)
}

// NotifyDataSetChanged recomputes the domains and the transforms. It must be
// called after the series are modified in place.
func (c *LineChart) NotifyDataSetChanged() {
	c.domain = c.strategy.Bounds(c.series...)
	c.yLeft = c.valueDomain(AxisLeft)
	c.yRight = c.valueDomain(AxisRight)
	c.prepare()
}

func (c *LineChart) prepare() {
	c.left.Prepare(c.domain.Min, c.domain.Delta, c.yLeft.Min, c.yLeft.Delta)
	c.right.Prepare(c.domain.Min, c.domain.Delta, c.yRight.Min, c.yRight.Delta)
}

func (c *LineChart) valueDomain(side AxisSide) AxisDomain {
	var (
		lo, hi float64
		found  bool
	)
	for _, s := range c.series {
		ls, ok := s.(LineSeries)
		if ok && (ls.Axis() != side || !ls.Visible()) {
			continue
		}
		if !ok && side != AxisLeft {
			continue
		}
		a, b, ok := valueRange(s)
		if !ok {
			continue
		}
		if !found {
			lo, hi, found = a, b, true
			continue
		}
		lo = min(lo, a)
		hi = max(hi, b)
	}
	if !found {
		return NaNDomain()
	}
	if c.opts.StartAtZero {
		lo = min(lo, 0)
		hi = max(hi, 0)
	}
	if lo == hi {
		lo--
		hi++
	}
	delta := hi - lo
	hi += delta * c.opts.SpaceTop
	if !c.opts.StartAtZero || lo < 0 {
		lo -= delta * c.opts.SpaceBottom
	}
	return NewDomain(lo, hi)
}

// Draw renders the whole chart. The grid is drawn below the data and the
// axis, markers, values and highlights above it.
func (c *LineChart) Draw(canvas Canvas) error {
	c.axis.CalcXBounds(c)
	steps := []struct {
		name string
		draw func(Canvas) error
	}{
		{name: "background", draw: c.drawBackground},
		{name: "grid", draw: c.axis.RenderGridLines},
		{name: "data", draw: c.renderer.DrawData},
		{name: "axis", draw: c.axis.RenderAxisLine},
		{name: "labels", draw: c.axis.RenderLabels},
		{name: "circles", draw: c.renderer.DrawCircles},
		{name: "values", draw: c.renderer.DrawValues},
		{name: "highlights", draw: func(cv Canvas) error {
			return c.renderer.DrawHighlighted(cv, c.highlights)
		}},
	}
	for _, s := range steps {
		if err := s.draw(canvas); err != nil {
			return fmt.Errorf("draw %s: %w", s.name, err)
		}
	}
	return nil
}

func (c *LineChart) drawBackground(canvas Canvas) error {
	if c.opts.Background.A == 0 {
		return nil
	}
	pat := gg.NewPath()
	pat.Rectangle(0, 0, c.viewport.Width, c.viewport.Height)
	return canvas.FillPath(pat, c.opts.Background)
}

func (c *LineChart) Viewport() *Viewport {
	return c.viewport
}

func (c *LineChart) Options() Options {
	return c.opts
}

func (c *LineChart) XAxis() *XAxisRenderer {
	return c.axis
}

func (c *LineChart) Renderer() *LineRenderer {
	return c.renderer
}

// Zoom and Pan update the viewport. The domains are left untouched: only the
// visible part changes.

func (c *LineChart) Zoom(scale, x float64) {
	c.viewport.Zoom(scale, x)
}

func (c *LineChart) Pan(dx float64) {
	c.viewport.Pan(dx)
}

func (c *LineChart) Domain() AxisDomain {
	return c.domain
}

func (c *LineChart) VisibleDomain() AxisDomain {
	if !c.domain.Valid() {
		return NaNDomain()
	}
	var (
		lo = c.left.PixelToValue(gg.Pt(c.viewport.ContentLeft(), 0)).X
		hi = c.left.PixelToValue(gg.Pt(c.viewport.ContentRight(), 0)).X
	)
	if !isFinite(lo) || !isFinite(hi) {
		return c.domain
	}
	lo = max(lo, c.domain.Min)
	hi = min(hi, c.domain.Max)
	if hi < lo {
		return NaNDomain()
	}
	return NewDomain(lo, hi)
}

func (c *LineChart) YDomain(side AxisSide) AxisDomain {
	if side == AxisRight {
		return c.yRight
	}
	return c.yLeft
}

func (c *LineChart) MaxVisibleValueCount() int {
	return c.opts.MaxVisibleValueCount
}

func (c *LineChart) Transformer(side AxisSide) *Transform {
	if side == AxisRight {
		return c.right
	}
	return c.left
}

func (c *LineChart) Series() []Series {
	return c.series
}
