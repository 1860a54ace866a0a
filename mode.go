package linecharts

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ValueMode tells how the x value of an entry is obtained.
type ValueMode int

const (
	Ordinal ValueMode = iota
	Numeric
	Temporal
)

func (m ValueMode) String() string {
	switch m {
	case Ordinal:
		return "ordinal"
	case Numeric:
		return "numeric"
	case Temporal:
		return "temporal"
	default:
		return "unknown"
	}
}

func ParseMode(str string) (ValueMode, error) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "", "ordinal", "index":
		return Ordinal, nil
	case "numeric", "number":
		return Numeric, nil
	case "temporal", "time", "date":
		return Temporal, nil
	default:
		return Ordinal, fmt.Errorf("%s: unknown value mode", str)
	}
}

// StrategyOptions configures a Strategy.
type StrategyOptions struct {
	Date DateFormat
	// CenterCategories places ordinal entries in the middle of slots of width
	// 1 instead of on the axis bounds.
	CenterCategories bool
	// Modulus forces the label stride when greater than zero.
	Modulus int
	// TargetLabels is the number of labels the modulus aims for.
	TargetLabels int
}

const DefaultTargetLabels = 10

const indexEpsilon = 1e-6

// Strategy groups the value mapper, the bounds calculator and the tick
// policy of a ValueMode. The three always agree on units.
type Strategy struct {
	mode ValueMode
	opts StrategyOptions
}

func NewStrategy(mode ValueMode, opts StrategyOptions) Strategy {
	if opts.Date.layout == "" {
		opts.Date = DefaultDate()
	}
	if opts.TargetLabels <= 0 {
		opts.TargetLabels = DefaultTargetLabels
	}
	return Strategy{
		mode: mode,
		opts: opts,
	}
}

func (s Strategy) Mode() ValueMode {
	return s.mode
}

func (s Strategy) Date() DateFormat {
	return s.opts.Date
}

// MapX returns the x value of e. NaN means the entry must be skipped.
func (s Strategy) MapX(e Entry) float64 {
	switch s.mode {
	case Numeric:
		v, err := strconv.ParseFloat(strings.TrimSpace(e.Key), 64)
		if err != nil {
			return math.NaN()
		}
		return v
	case Temporal:
		v, err := s.opts.Date.Parse(e.Key)
		if err != nil {
			return math.NaN()
		}
		return v
	default:
		return float64(e.Index)
	}
}

// Bounds returns the x domain covered by all the given series.
func (s Strategy) Bounds(series ...Series) AxisDomain {
	switch s.mode {
	case Numeric:
		return NumericBounds(s.MapX, series...)
	case Temporal:
		return TemporalBounds(s.MapX, series...)
	default:
		return OrdinalBounds(maxLen(series), s.opts.CenterCategories)
	}
}

// Ticks returns the ticks of the visible domain. ref is the series used to
// label ordinal ticks.
func (s Strategy) Ticks(visible AxisDomain, width, labelWidth float64, ref Series) TickSet {
	if !visible.Valid() {
		return TickSet{}
	}
	switch s.mode {
	case Numeric:
		ts := ComputeTicks(visible.Min, visible.Max, width, labelWidth, nil)
		return ts.Thin(s.modulus(float64(ts.Len()), s.opts.TargetLabels))
	case Temporal:
		return ComputeTicks(visible.Min, visible.Max, width, labelWidth, s.opts.Date)
	default:
		// the visible domain comes from inverted pixels: absorb rounding
		// errors before picking the first and last indices.
		from := int(ceil(visible.Min - indexEpsilon))
		to := int(floor(visible.Max + indexEpsilon))
		target := s.opts.TargetLabels
		if c := floor(width / labelWidth); isFinite(c) && c > 0 {
			target = min(target, int(c))
		}
		return OrdinalTicks(ref, from, to, s.modulus(visible.Delta, target))
	}
}

func (s Strategy) modulus(visibleRange float64, target int) int {
	if s.opts.Modulus > 0 {
		return s.opts.Modulus
	}
	return LabelModulus(visibleRange, target)
}
