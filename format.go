package linecharts

import (
	"strconv"
)

type Formatter interface {
	Format(float64) string
}

type FormatterFunc func(float64) string

func (f FormatterFunc) Format(v float64) string {
	return f(v)
}

// DecimalFormatter prints values with a fixed number of fraction digits. A
// negative Digits prints the shortest representation.
type DecimalFormatter struct {
	Digits int
}

func (d DecimalFormatter) Format(v float64) string {
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', d.Digits, 64)
}

var shortestFormatter = DecimalFormatter{Digits: -1}

// FillFormatter gives the y value, in data units, that closes the filled area
// of a line.
type FillFormatter interface {
	FillLinePosition(LineSeries, DataProvider) float64
}

type FillFormatterFunc func(LineSeries, DataProvider) float64

func (f FillFormatterFunc) FillLinePosition(s LineSeries, p DataProvider) float64 {
	return f(s, p)
}

// ZeroFill closes the area on the zero line.
var ZeroFill FillFormatter = FillFormatterFunc(func(LineSeries, DataProvider) float64 {
	return 0
})

// MinFill closes the area on the bottom of the y domain.
var MinFill FillFormatter = FillFormatterFunc(func(s LineSeries, p DataProvider) float64 {
	d := p.YDomain(s.Axis())
	if !d.Valid() {
		return 0
	}
	return d.Min
})

// Animator exposes the progress of an entrance animation. Both phases are in
// [0, 1]; 1 draws everything.
type Animator interface {
	PhaseX() float64
	PhaseY() float64
}

type Phase struct {
	X float64
	Y float64
}

func FullPhase() Phase {
	return Phase{X: 1, Y: 1}
}

func (p Phase) PhaseX() float64 {
	return p.X
}

func (p Phase) PhaseY() float64 {
	return p.Y
}
