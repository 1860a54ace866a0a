package linecharts

import (
	"testing"

	"github.com/gogpu/gg"
)

func TestDecimalFormatter(t *testing.T) {
	tests := []struct {
		Digits int
		Value  float64
		Want   string
	}{
		{Digits: 1, Value: 1.25, Want: "1.2"},
		{Digits: 0, Value: 3, Want: "3"},
		{Digits: 2, Value: -0.0001, Want: "-0.00"},
		{Digits: -1, Value: 0.125, Want: "0.125"},
	}
	for _, tt := range tests {
		f := DecimalFormatter{Digits: tt.Digits}
		if got := f.Format(tt.Value); got != tt.Want {
			t.Errorf("format(%f, %d): want %s, got %s", tt.Value, tt.Digits, tt.Want, got)
		}
	}
	var negZero float64
	negZero = -negZero
	if got := (DecimalFormatter{Digits: 1}).Format(negZero); got != "0.0" {
		t.Errorf("negative zero: want 0.0, got %s", got)
	}
}

func TestFillFormatters(t *testing.T) {
	ds := NewDataSet("", FromValues(5, 10))
	c := newTestChart(Ordinal, ds)

	if v := ZeroFill.FillLinePosition(ds, c); v != 0 {
		t.Errorf("zero fill: want 0, got %f", v)
	}
	if v := MinFill.FillLinePosition(ds, c); !almostEqual(v, 4.5) {
		t.Errorf("min fill: want 4.5, got %f", v)
	}
}

func TestPalette(t *testing.T) {
	if len(Category10) != 10 || len(Tableau10) != 10 {
		t.Fatalf("unexpected palette sizes: %d, %d", len(Category10), len(Tableau10))
	}
	if Category10.At(12) != Category10.At(2) || Category10.At(-1) != Category10.At(1) {
		t.Errorf("palette should cycle")
	}
	var empty Palette
	if empty.At(3) != gg.RGB(0, 0, 0) {
		t.Errorf("empty palette should give black")
	}
	if c := withAlpha(gg.RGBA{A: 0.5}, 0.5); c.A != 0.25 {
		t.Errorf("alpha: want 0.25, got %f", c.A)
	}
}
