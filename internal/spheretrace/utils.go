package spheretrace

import (
	"math"
)

func isFinite(x Real) bool { return !math.IsInf(float64(x), 0) && !math.IsNaN(float64(x)) }

func clamp01(x Real) Real {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
