package linecharts

import (
	"math"
)

// AxisDomain is the value range covered by an axis. A NaN domain means no
// valid range could be computed.
type AxisDomain struct {
	Min   float64
	Max   float64
	Delta float64
}

func NaNDomain() AxisDomain {
	return AxisDomain{
		Min:   math.NaN(),
		Max:   math.NaN(),
		Delta: math.NaN(),
	}
}

func NewDomain(lo, hi float64) AxisDomain {
	return AxisDomain{
		Min:   lo,
		Max:   hi,
		Delta: math.Abs(hi - lo),
	}
}

func (d AxisDomain) Valid() bool {
	return isFinite(d.Min) && isFinite(d.Max) && isFinite(d.Delta)
}

func (d AxisDomain) Contains(v float64) bool {
	return d.Valid() && v >= d.Min && v <= d.Max
}

const numericPadding = 0.01

// OrdinalBounds returns [0, n-1]. Delta is never smaller than 1 so a single
// entry still gets a usable scale. With center set, categories are centred in
// slots of width 1: [-0.5, n-0.5].
func OrdinalBounds(n int, center bool) AxisDomain {
	if n <= 0 {
		return NaNDomain()
	}
	if center {
		return NewDomain(-0.5, float64(n)-0.5)
	}
	d := NewDomain(0, float64(n-1))
	d.Delta = max(d.Delta, 1)
	return d
}

// NumericBounds returns the range of the parsable x values of all series,
// widened by 1% on both sides.
func NumericBounds(mapper func(Entry) float64, series ...Series) AxisDomain {
	lo, hi, ok := xRange(mapper, series)
	if !ok {
		return NaNDomain()
	}
	pad := (hi - lo) * numericPadding
	return NewDomain(lo-pad, hi+pad)
}

// TemporalBounds returns the range of the parsable dates of all series without
// padding.
func TemporalBounds(mapper func(Entry) float64, series ...Series) AxisDomain {
	lo, hi, ok := xRange(mapper, series)
	if !ok {
		return NaNDomain()
	}
	return NewDomain(lo, hi)
}

func xRange(mapper func(Entry) float64, series []Series) (float64, float64, bool) {
	var (
		lo      = math.Inf(1)
		hi      = math.Inf(-1)
		skipped int
		found   bool
	)
	for _, s := range series {
		for i := 0; i < s.Len(); i++ {
			x := mapper(s.At(i))
			if !isFinite(x) {
				skipped++
				continue
			}
			found = true
			lo = min(lo, x)
			hi = max(hi, x)
		}
	}
	if skipped > 0 {
		Logger().Debug("unparsable entries skipped", "count", skipped)
	}
	return lo, hi, found
}

// maxLen returns the number of entries of the longest series.
func maxLen(series []Series) int {
	var n int
	for _, s := range series {
		n = max(n, s.Len())
	}
	return n
}
