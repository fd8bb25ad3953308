package charts

import (
	"math"
)

// Easing maps a linear progress in [0,1] to an eased progress.
type Easing func(float64) float64

func EaseOutCubic(x float64) float64 {
	return 1 - math.Pow(1-x, 3)
}

func Linear(x float64) float64 {
	return x
}

func clamp(v, lo, hi float64) float64 {
	switch {
	case math.IsNaN(v) || v < lo:
		return lo
	case v > hi:
		return hi
	default:
		return v
	}
}
