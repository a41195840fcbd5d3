// Package numeric holds the rounding and clamping rules shared by the scorers
package numeric

import "math"

// Round rounds x half away from zero to the given number of decimal places.
// Values too large to scale are returned unchanged
func Round(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	y := x * p
	if math.IsInf(y, 0) || math.IsNaN(y) {
		return x
	}
	return math.Round(y) / p
}

// Clamp bounds x to [lo, hi]; NaN clamps to lo
func Clamp(x, lo, hi float64) float64 {
	if math.IsNaN(x) {
		return lo
	}
	return math.Max(lo, math.Min(hi, x))
}

// Finite returns x, or 0 when x is NaN or infinite
func Finite(x float64) float64 {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return 0
	}
	return x
}

// Score clamps x to [0,100] and rounds it to two places
func Score(x float64) float64 {
	return Round(Clamp(x, 0, 100), 2)
}

// Density returns count per 100 words, 0 when words is 0
func Density(count, words int) float64 {
	if words <= 0 {
		return 0
	}
	return float64(count) / float64(words) * 100
}
