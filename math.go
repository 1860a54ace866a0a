package linecharts

import (
	"math"

	"golang.org/x/exp/constraints"
)

type number interface {
	constraints.Integer | constraints.Float
}

func ceil[T number](a T) T {
	return T(math.Ceil(float64(a)))
}

func floor[T number](a T) T {
	return T(math.Floor(float64(a)))
}

func clamp[T number](v, lo, hi T) T {
	return max(lo, min(v, hi))
}

func isNaN(v float64) bool {
	return math.IsNaN(v)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// roundToNextSignificant rounds n to its first significant digit.
func roundToNextSignificant(n float64) float64 {
	if !isFinite(n) || n == 0 {
		return 0
	}
	var (
		d  = ceil(math.Log10(math.Abs(n)))
		pw = 1 - int(d)
		mg = math.Pow(10, float64(pw))
	)
	return math.Round(n*mg) / mg
}

// decimals returns the number of fraction digits needed to print multiples
// of the interval n.
func decimals(n float64) int {
	if !isFinite(n) || n == 0 {
		return 0
	}
	d := int(ceil(-math.Log10(math.Abs(n)) - 1e-9))
	return max(d, 0)
}

func nan() float64 {
	return math.NaN()
}
