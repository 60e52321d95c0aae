package measure

import "math"

// IsPositive reports whether value is a strictly positive finite number.
// NaN and infinities are rejected so a corrupted payload field can never
// produce an unbounded package.
func IsPositive(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0) && value > 0
}
