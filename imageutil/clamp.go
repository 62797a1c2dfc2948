package imageutil

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Clamp limits v to the closed range [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampUint8 truncates v toward zero and limits it to [0, 255]. NaN maps
// to 0.
func ClampUint8(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	return uint8(Clamp(math.Trunc(v), 0, 255))
}
