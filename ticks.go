package linecharts

import (
	"math"
	"strconv"
)

// TickSet holds the positions and labels of the ticks of an axis. Values are
// strictly increasing. A TickSet is rebuilt when the visible range changes and
// never updated in place.
type TickSet struct {
	Values   []float64
	Labels   []string
	Interval float64
}

func (t TickSet) Len() int {
	return len(t.Values)
}

func (t TickSet) Empty() bool {
	return len(t.Values) == 0
}

// Thin returns a new TickSet keeping one tick every stride ticks.
func (t TickSet) Thin(stride int) TickSet {
	if stride <= 1 || t.Empty() {
		return t
	}
	var ts TickSet
	ts.Interval = t.Interval * float64(stride)
	for i := 0; i < len(t.Values); i += stride {
		ts.Values = append(ts.Values, t.Values[i])
		if i < len(t.Labels) {
			ts.Labels = append(ts.Labels, t.Labels[i])
		}
	}
	return ts
}

// MaxTicks bounds the number of ticks of an axis whatever the label width.
const MaxTicks = 1000

// ComputeTicks picks nicely rounded tick positions in [lo, hi] so that no more
// than floor(width/labelWidth) labels, and never more than MaxTicks, are
// needed. An empty set is returned when no tick fits.
func ComputeTicks(lo, hi, width, labelWidth float64, format Formatter) TickSet {
	var empty TickSet
	if !isFinite(lo) || !isFinite(hi) || hi <= lo {
		Logger().Debug("no ticks for degenerate range", "min", lo, "max", hi)
		return empty
	}
	capacity := floor(width / labelWidth)
	if !isFinite(capacity) || capacity <= 0 {
		Logger().Debug("no room for tick labels", "width", width, "label", labelWidth)
		return empty
	}
	capacity = min(capacity, MaxTicks)
	limit := int(capacity)
	interval := niceInterval((hi - lo) / capacity)
	if interval <= 0 {
		return empty
	}
	var (
		first = ceil(lo/interval) * interval
		last  = math.Nextafter(floor(hi/interval)*interval, math.Inf(1))
		count = countTicks(first, last, interval, limit)
	)
	for count > limit {
		interval *= 2
		first = ceil(lo/interval) * interval
		last = math.Nextafter(floor(hi/interval)*interval, math.Inf(1))
		count = countTicks(first, last, interval, limit)
	}
	if count <= 0 {
		return empty
	}
	if format == nil {
		format = DecimalFormatter{Digits: decimals(interval)}
	}
	ts := TickSet{
		Values:   make([]float64, 0, count),
		Labels:   make([]string, 0, count),
		Interval: interval,
	}
	f := first
	for i := 0; i < count; i++ {
		if f == 0 {
			f = 0
		}
		ts.Values = append(ts.Values, f)
		ts.Labels = append(ts.Labels, format.Format(f))
		f += interval
	}
	return ts
}

// niceInterval rounds raw to one significant digit and moves intervals whose
// digit is above 5 to the next order of magnitude.
func niceInterval(raw float64) float64 {
	interval := roundToNextSignificant(raw)
	if !isFinite(interval) || interval <= 0 {
		return 0
	}
	magnitude := math.Pow(10, math.Round(math.Log10(interval)))
	if interval/magnitude > 5 {
		interval = floor(10 * magnitude)
	}
	return interval
}

// countTicks stops counting once limit is exceeded.
func countTicks(first, last, interval float64, limit int) int {
	if first+interval == first {
		return 0
	}
	var n int
	for f := first; f <= last && n <= limit; f += interval {
		n++
	}
	return n
}

// LabelModulus returns the stride to apply to labels so that at most target
// labels are visible. It is never lower than 1.
func LabelModulus(visibleRange float64, target int) int {
	if target <= 0 || !isFinite(visibleRange) {
		return 1
	}
	return max(1, int(floor(visibleRange/float64(target))))
}

// OrdinalTicks returns one tick per index in [from, to], keeping indices that
// are multiples of modulus. Labels are taken from the keys of s, or the index
// itself when the key is empty.
func OrdinalTicks(s Series, from, to, modulus int) TickSet {
	var ts TickSet
	if s == nil || s.Len() == 0 || to < from {
		return ts
	}
	modulus = max(modulus, 1)
	from = clamp(from, 0, s.Len()-1)
	to = clamp(to, 0, s.Len()-1)
	ts.Interval = float64(modulus)
	for i := from; i <= to; i++ {
		if i%modulus != 0 {
			continue
		}
		e := s.At(i)
		label := e.Key
		if label == "" {
			label = strconv.Itoa(e.Index)
		}
		ts.Values = append(ts.Values, float64(e.Index))
		ts.Labels = append(ts.Labels, label)
	}
	return ts
}
