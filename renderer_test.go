package linecharts

import (
	"errors"
	"testing"

	"github.com/gogpu/gg"
	"github.com/google/go-cmp/cmp"
)

type recorder struct {
	ops      []string
	paths    []*gg.Path
	strokes  []Stroke
	segments [][]gg.Point
	circles  []circle
	texts    []string
	err      error
}

type circle struct {
	Center gg.Point
	Radius float64
	Color  gg.RGBA
}

func (r *recorder) StrokePath(p *gg.Path, st Stroke) error {
	r.ops = append(r.ops, "stroke")
	r.paths = append(r.paths, p)
	r.strokes = append(r.strokes, st)
	return r.err
}

func (r *recorder) StrokeSegments(pts []gg.Point, st Stroke) error {
	r.ops = append(r.ops, "segments")
	r.segments = append(r.segments, append([]gg.Point(nil), pts...))
	r.strokes = append(r.strokes, st)
	return r.err
}

func (r *recorder) FillPath(p *gg.Path, _ gg.RGBA) error {
	r.ops = append(r.ops, "fill")
	r.paths = append(r.paths, p)
	return r.err
}

func (r *recorder) FillCircle(at gg.Point, radius float64, col gg.RGBA) error {
	r.ops = append(r.ops, "circle")
	r.circles = append(r.circles, circle{Center: at, Radius: radius, Color: col})
	return r.err
}

func (r *recorder) DrawText(str string, _ gg.Point, _ Align, _ gg.RGBA, _ float64) error {
	r.ops = append(r.ops, "text")
	r.texts = append(r.texts, str)
	return r.err
}

type plainSeries []Entry

func (p plainSeries) Len() int       { return len(p) }
func (p plainSeries) At(i int) Entry { return p[i] }

func sequence(n int) []float64 {
	vs := make([]float64, n)
	for i := range vs {
		vs[i] = float64(i)
	}
	return vs
}

// newTestChart returns a chart whose content area is a 100x100 square.
func newTestChart(mode ValueMode, series ...Series) *LineChart {
	opts := DefaultOptions(120, 120)
	opts.Padding = Padding{Top: 10, Right: 10, Bottom: 10, Left: 10}
	opts.Mode = mode
	c := NewLineChart(opts)
	c.SetData(series...)
	return c
}

func expectPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic")
		}
	}()
	fn()
}

func TestNewLineRendererPanics(t *testing.T) {
	vp := testViewport()
	expectPanic(t, func() {
		NewLineRenderer(nil, nil, vp, NewStrategy(Ordinal, StrategyOptions{}))
	})
	expectPanic(t, func() {
		NewLineRenderer(newTestChart(Ordinal), nil, nil, NewStrategy(Ordinal, StrategyOptions{}))
	})
}

func TestDrawDataRejectsPlainSeries(t *testing.T) {
	c := newTestChart(Ordinal, plainSeries(FromValues(1, 2, 3)))
	expectPanic(t, func() {
		c.Renderer().DrawData(new(recorder))
	})
}

func TestDrawDataLinear(t *testing.T) {
	ds := NewDataSet("", FromValues(sequence(11)...))
	c := newTestChart(Ordinal, ds)

	var rec recorder
	if err := c.Renderer().DrawData(&rec); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"stroke"}, rec.ops); diff != "" {
		t.Fatalf("operations mismatched (-want +got):\n%s", diff)
	}
	pts := pathPoints(rec.paths[0])
	if len(pts) != 11 {
		t.Fatalf("want 11 points, got %d", len(pts))
	}
	// y domain is [-1, 11] once the spaces are added.
	if diff := cmp.Diff(gg.Pt(10, 110-100.0/12), pts[0], approx); diff != "" {
		t.Errorf("first point mismatched (-want +got):\n%s", diff)
	}
	if rec.strokes[0].Color != ds.Style.ColorAt(0) || rec.strokes[0].Width != ds.Style.Width {
		t.Errorf("unexpected stroke: %+v", rec.strokes[0])
	}
}

func TestDrawDataFillBelowLine(t *testing.T) {
	ds := NewDataSet("", FromValues(sequence(11)...))
	ds.Style.Fill.Enabled = true
	c := newTestChart(Ordinal, ds)

	var rec recorder
	if err := c.Renderer().DrawData(&rec); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"fill", "stroke"}, rec.ops); diff != "" {
		t.Errorf("operations mismatched (-want +got):\n%s", diff)
	}
	if n := countElements[gg.Close](rec.paths[0]); n != 1 {
		t.Errorf("fill should be closed")
	}
}

func TestDrawDataMultiColor(t *testing.T) {
	ds := NewDataSet("", FromValues(sequence(11)...))
	ds.Style.Colors = Palette{gg.RGB(1, 0, 0), gg.RGB(0, 0, 1)}
	c := newTestChart(Ordinal, ds)

	var rec recorder
	if err := c.Renderer().DrawData(&rec); err != nil {
		t.Fatal(err)
	}
	if len(rec.segments) != 10 {
		t.Fatalf("want 10 segments, got %d", len(rec.segments))
	}
	for i, st := range rec.strokes {
		if st.Color != ds.Style.Colors.At(i) {
			t.Errorf("segment %d: unexpected color %v", i, st.Color)
		}
	}
}

func TestDrawDataCubic(t *testing.T) {
	ds := NewDataSet("", FromValues(sequence(11)...))
	ds.Style.Mode = Cubic
	c := newTestChart(Ordinal, ds)

	var rec recorder
	if err := c.Renderer().DrawData(&rec); err != nil {
		t.Fatal(err)
	}
	if len(rec.paths) != 1 {
		t.Fatalf("want 1 path, got %d", len(rec.paths))
	}
	if n := countElements[gg.CubicTo](rec.paths[0]); n != 10 {
		t.Errorf("want 10 curves, got %d", n)
	}
}

func TestDrawDataSkipsHidden(t *testing.T) {
	var (
		hidden = NewDataSet("", FromValues(1, 2, 3))
		short  = NewDataSet("", FromValues(1))
		empty  = NewDataSet("", nil)
	)
	hidden.Hidden = true
	c := newTestChart(Ordinal, hidden, short, empty)

	var rec recorder
	if err := c.Renderer().DrawData(&rec); err != nil {
		t.Fatal(err)
	}
	if len(rec.ops) != 0 {
		t.Errorf("nothing should be drawn: %v", rec.ops)
	}
}

func TestDrawDataError(t *testing.T) {
	var (
		boom = errTest("boom")
		rec  = recorder{err: boom}
		c    = newTestChart(Ordinal, NewDataSet("", FromValues(1, 2, 3)))
	)
	err := c.Renderer().DrawData(&rec)
	if !errors.Is(err, boom) {
		t.Fatalf("want %v, got %v", boom, err)
	}
	if got := err.Error(); got != "series 0: stroke line: boom" {
		t.Errorf("unexpected message: %s", got)
	}
}

func TestDrawCircles(t *testing.T) {
	ds := NewDataSet("", FromValues(sequence(11)...))
	c := newTestChart(Ordinal, ds)

	var rec recorder
	if err := c.Renderer().DrawCircles(&rec); err != nil {
		t.Fatal(err)
	}
	if len(rec.circles) != 22 {
		t.Fatalf("want 22 circles, got %d", len(rec.circles))
	}
	outer, hole := rec.circles[0], rec.circles[1]
	if outer.Radius != ds.Style.Circle.Radius || hole.Radius != ds.Style.Circle.Radius/2 {
		t.Errorf("unexpected radius: %f, %f", outer.Radius, hole.Radius)
	}
	if hole.Color != ds.Style.Circle.HoleColor || outer.Center != hole.Center {
		t.Errorf("unexpected hole: %+v", hole)
	}

	ds.Style.Circle.Hole = false
	rec = recorder{}
	if err := c.Renderer().DrawCircles(&rec); err != nil {
		t.Fatal(err)
	}
	if len(rec.circles) != 11 {
		t.Errorf("want 11 circles without holes, got %d", len(rec.circles))
	}
}

func TestDrawValues(t *testing.T) {
	ds := NewDataSet("", FromValues(sequence(11)...))
	c := newTestChart(Ordinal, ds)

	var rec recorder
	if err := c.Renderer().DrawValues(&rec); err != nil {
		t.Fatal(err)
	}
	if len(rec.texts) != 11 {
		t.Fatalf("want 11 values, got %d", len(rec.texts))
	}
	if rec.texts[0] != "0.0" || rec.texts[10] != "10.0" {
		t.Errorf("unexpected values: %v", rec.texts)
	}

	ds.Style.Value.Formatter = DecimalFormatter{Digits: 0}
	rec = recorder{}
	if err := c.Renderer().DrawValues(&rec); err != nil {
		t.Fatal(err)
	}
	if rec.texts[3] != "3" {
		t.Errorf("formatter not used: %s", rec.texts[3])
	}
}

func TestDrawValuesTooMany(t *testing.T) {
	opts := DefaultOptions(120, 120)
	opts.MaxVisibleValueCount = 5
	c := NewLineChart(opts)
	c.SetData(NewDataSet("", FromValues(sequence(11)...)))

	var rec recorder
	if err := c.Renderer().DrawValues(&rec); err != nil {
		t.Fatal(err)
	}
	if len(rec.texts) != 0 {
		t.Fatalf("values drawn above the limit: %d", len(rec.texts))
	}

	// zooming raises the limit.
	c.Zoom(3, c.Viewport().ContentLeft())
	if err := c.Renderer().DrawValues(&rec); err != nil {
		t.Fatal(err)
	}
	if len(rec.texts) == 0 {
		t.Errorf("values should be drawn once zoomed")
	}
}

func TestDrawHighlighted(t *testing.T) {
	ds := NewDataSet("", FromValues(sequence(11)...))
	c := newTestChart(Ordinal, ds)

	var rec recorder
	hs := []Highlight{
		{DataSet: 0, Index: 5},
		{DataSet: 0, Index: 42},
		{DataSet: 3, Index: 1},
	}
	if err := c.Renderer().DrawHighlighted(&rec, hs); err != nil {
		t.Fatal(err)
	}
	if len(rec.segments) != 1 {
		t.Fatalf("want 1 highlight, got %d", len(rec.segments))
	}
	want := []gg.Point{
		gg.Pt(60, 10), gg.Pt(60, 110),
		gg.Pt(10, 60), gg.Pt(110, 60),
	}
	if diff := cmp.Diff(want, rec.segments[0], approx); diff != "" {
		t.Errorf("highlight mismatched (-want +got):\n%s", diff)
	}

	ds.Style.Highlight.Horizontal = false
	rec = recorder{}
	if err := c.Renderer().DrawHighlighted(&rec, hs[:1]); err != nil {
		t.Fatal(err)
	}
	if len(rec.segments) != 1 || len(rec.segments[0]) != 2 {
		t.Errorf("want vertical line only, got %v", rec.segments)
	}
}

func TestDrawHighlightedAnimated(t *testing.T) {
	opts := DefaultOptions(120, 120)
	opts.Animator = Phase{X: 0.2, Y: 1}
	c := NewLineChart(opts)
	c.SetData(NewDataSet("", FromValues(sequence(11)...)))

	var rec recorder
	hs := []Highlight{{DataSet: 0, Index: 2}, {DataSet: 0, Index: 5}}
	if err := c.Renderer().DrawHighlighted(&rec, hs); err != nil {
		t.Fatal(err)
	}
	if len(rec.segments) != 1 {
		t.Errorf("entries not yet revealed should not be highlighted: %d", len(rec.segments))
	}
}

func TestVisibleRange(t *testing.T) {
	ds := NewDataSet("", FromValues(sequence(11)...))
	c := newTestChart(Ordinal, ds)
	r := c.Renderer()

	tests := []struct {
		Name  string
		Setup func()
		From  int
		To    int
	}{
		{Name: "all", Setup: func() {}, From: 0, To: 11},
		{Name: "zoomed", Setup: func() { c.Zoom(2, 10); c.Pan(-10) }, From: 0, To: 7},
		{Name: "panned", Setup: func() { c.Pan(-40) }, From: 2, To: 9},
	}
	for _, tt := range tests {
		tt.Setup()
		from, to := r.VisibleRange(ds, c.Transformer(AxisLeft))
		if from != tt.From || to != tt.To {
			t.Errorf("%s: want [%d, %d), got [%d, %d)", tt.Name, tt.From, tt.To, from, to)
		}
	}
}

func TestVisibleRangeAnimated(t *testing.T) {
	opts := DefaultOptions(120, 120)
	opts.Animator = Phase{X: 0.5, Y: 1}
	c := NewLineChart(opts)
	ds := NewDataSet("", FromValues(sequence(11)...))
	c.SetData(ds)

	from, to := c.Renderer().VisibleRange(ds, c.Transformer(AxisLeft))
	if from != 0 || to != 6 {
		t.Errorf("want [0, 6), got [%d, %d)", from, to)
	}

	opts.Animator = Phase{X: 0.1, Y: 1}
	c = NewLineChart(opts)
	c.SetData(ds)
	from, to = c.Renderer().VisibleRange(ds, c.Transformer(AxisLeft))
	if from != 0 || to != 2 {
		t.Errorf("want [0, 2), got [%d, %d)", from, to)
	}

	opts.Animator = Phase{X: 0, Y: 1}
	c = NewLineChart(opts)
	c.SetData(ds)
	from, to = c.Renderer().VisibleRange(ds, c.Transformer(AxisLeft))
	if from != to {
		t.Errorf("nothing should be revealed, got [%d, %d)", from, to)
	}
	var rec recorder
	if err := c.Draw(&rec); err != nil {
		t.Fatal(err)
	}
	for _, op := range rec.ops {
		if op == "stroke" || op == "circle" {
			t.Errorf("unrevealed series drawn: %v", rec.ops)
			break
		}
	}
}

func TestVisibleRangeBetweenEntries(t *testing.T) {
	ds := NewDataSet("", FromValues(0, 10, 20))
	ds.Style.Circle.Enabled = false
	ds.Style.Value.Enabled = false
	c := newTestChart(Ordinal, ds)
	// the content area shows x in [0.4, 0.8]: no entry lies inside.
	c.Zoom(5, c.Viewport().ContentLeft()+25)

	from, to := c.Renderer().VisibleRange(ds, c.Transformer(AxisLeft))
	if from != 0 || to != 2 {
		t.Fatalf("want [0, 2), got [%d, %d)", from, to)
	}
	var rec recorder
	if err := c.Renderer().DrawData(&rec); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"stroke"}, rec.ops); diff != "" {
		t.Fatalf("unexpected operations (-want +got):\n%s", diff)
	}
	pts := pathPoints(rec.paths[0])
	if len(pts) != 2 || pts[0].X > 10 || pts[1].X < 110 {
		t.Errorf("segment should cross the content area: %v", pts)
	}
}
