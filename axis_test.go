package linecharts

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
	"github.com/google/go-cmp/cmp"
)

func TestParseLabelPosition(t *testing.T) {
	tests := []struct {
		Input string
		Want  LabelPosition
		Err   bool
	}{
		{Input: "", Want: LabelBottom},
		{Input: "top", Want: LabelTop},
		{Input: "Top-Inside", Want: LabelTopInside},
		{Input: "bottom-inside", Want: LabelBottomInside},
		{Input: "both", Want: LabelBothSided},
		{Input: "left", Err: true},
	}
	for _, tt := range tests {
		got, err := ParseLabelPosition(tt.Input)
		if tt.Err {
			if err == nil {
				t.Errorf("%q: expected error", tt.Input)
			}
			continue
		}
		if err != nil || got != tt.Want {
			t.Errorf("%q: want %d, got %d (%v)", tt.Input, tt.Want, got, err)
		}
	}
	if !LabelBothSided.Top() || !LabelBothSided.Bottom() {
		t.Errorf("both sided labels should be on top and bottom")
	}
	if LabelTopInside.Bottom() || !LabelTopInside.Top() {
		t.Errorf("top inside labels should only be on top")
	}
}

func TestXAxisOrdinalTicks(t *testing.T) {
	c := newTestChart(Ordinal, NewDataSet("", FromValues(sequence(11)...)))
	axis := c.XAxis()
	axis.CalcXBounds(c)

	// labels of 4 characters: 4 labels fit in the content, one every 2 entries.
	want := TickSet{
		Values:   []float64{0, 2, 4, 6, 8, 10},
		Labels:   []string{"0", "2", "4", "6", "8", "10"},
		Interval: 2,
	}
	if diff := cmp.Diff(want, axis.Ticks()); diff != "" {
		t.Errorf("ticks mismatched (-want +got):\n%s", diff)
	}
}

func TestXAxisOrdinalTicksLongestSeries(t *testing.T) {
	var (
		short = NewDataSet("short", FromValues(1, 2, 3))
		long  = NewDataSet("long", FromValues(sequence(11)...))
	)
	c := newTestChart(Ordinal, short, long)
	axis := c.XAxis()
	axis.CalcXBounds(c)

	want := []float64{0, 2, 4, 6, 8, 10}
	if diff := cmp.Diff(want, axis.Ticks().Values); diff != "" {
		t.Errorf("ticks mismatched (-want +got):\n%s", diff)
	}
}

func TestXAxisNumericTicks(t *testing.T) {
	ds := NewDataSet("", FromPairs([]string{"1", "5", "10"}, []float64{10, 20, 5}))
	c := newTestChart(Numeric, ds)
	axis := c.XAxis()
	axis.CalcXBounds(c)

	ts := axis.Ticks()
	if ts.Empty() {
		t.Fatal("no ticks computed")
	}
	dom := c.Domain()
	for _, v := range ts.Values {
		if !dom.Contains(v) {
			t.Errorf("tick %f outside of %+v", v, dom)
		}
	}
}

func TestXAxisEmpty(t *testing.T) {
	c := newTestChart(Ordinal)
	c.XAxis().CalcXBounds(c)

	var rec recorder
	if err := c.XAxis().RenderGridLines(&rec); err != nil {
		t.Fatal(err)
	}
	if err := c.XAxis().RenderLabels(&rec); err != nil {
		t.Fatal(err)
	}
	if len(rec.ops) != 0 {
		t.Errorf("nothing should be drawn without data: %v", rec.ops)
	}
}

func TestXAxisRender(t *testing.T) {
	c := newTestChart(Ordinal, NewDataSet("", FromValues(sequence(11)...)))
	axis := c.XAxis()
	axis.CalcXBounds(c)

	var rec recorder
	if err := axis.RenderGridLines(&rec); err != nil {
		t.Fatal(err)
	}
	if len(rec.segments) != 1 || len(rec.segments[0]) != 12 {
		t.Fatalf("want 6 grid lines, got %v", rec.segments)
	}
	if diff := cmp.Diff([]gg.Point{gg.Pt(10, 10), gg.Pt(10, 110)}, rec.segments[0][:2], approx); diff != "" {
		t.Errorf("first grid line mismatched (-want +got):\n%s", diff)
	}

	rec = recorder{}
	if err := axis.RenderLabels(&rec); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(axis.Ticks().Labels, rec.texts); diff != "" {
		t.Errorf("labels mismatched (-want +got):\n%s", diff)
	}

	rec = recorder{}
	if err := axis.RenderAxisLine(&rec); err != nil {
		t.Fatal(err)
	}
	want := []gg.Point{gg.Pt(10, 110), gg.Pt(110, 110)}
	if len(rec.segments) != 1 {
		t.Fatalf("want one axis line, got %d", len(rec.segments))
	}
	if diff := cmp.Diff(want, rec.segments[0]); diff != "" {
		t.Errorf("axis line mismatched (-want +got):\n%s", diff)
	}
}

func TestXAxisPositions(t *testing.T) {
	opts := DefaultOptions(120, 120)
	opts.XAxis.Position = LabelBothSided
	c := NewLineChart(opts)
	c.SetData(NewDataSet("", FromValues(sequence(11)...)))
	c.XAxis().CalcXBounds(c)

	var rec recorder
	if err := c.XAxis().RenderAxisLine(&rec); err != nil {
		t.Fatal(err)
	}
	if len(rec.segments) != 1 || len(rec.segments[0]) != 4 {
		t.Errorf("want top and bottom axis lines, got %v", rec.segments)
	}
	rec = recorder{}
	if err := c.XAxis().RenderLabels(&rec); err != nil {
		t.Fatal(err)
	}
	if len(rec.texts) != 2*c.XAxis().Ticks().Len() {
		t.Errorf("labels should be drawn twice: %d for %d ticks", len(rec.texts), c.XAxis().Ticks().Len())
	}
}

func TestXAxisDisabled(t *testing.T) {
	opts := DefaultOptions(120, 120)
	opts.XAxis.Enabled = false
	c := NewLineChart(opts)
	c.SetData(NewDataSet("", FromValues(sequence(11)...)))
	c.XAxis().CalcXBounds(c)

	var rec recorder
	for _, fn := range []func(Canvas) error{c.XAxis().RenderAxisLine, c.XAxis().RenderGridLines, c.XAxis().RenderLabels} {
		if err := fn(&rec); err != nil {
			t.Fatal(err)
		}
	}
	if len(rec.ops) != 0 {
		t.Errorf("disabled axis should not be drawn: %v", rec.ops)
	}
}

func TestRotatedSize(t *testing.T) {
	w, h := rotatedSize(10, 2, 0)
	if w != 10 || h != 2 {
		t.Errorf("no rotation: got %f x %f", w, h)
	}
	w, h = rotatedSize(10, 2, 90)
	if math.Abs(w-2) > 1e-9 || math.Abs(h-10) > 1e-9 {
		t.Errorf("quarter turn: got %f x %f", w, h)
	}
}
