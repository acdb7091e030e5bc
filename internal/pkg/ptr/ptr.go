package ptr

import "math"

func Of[T any](v T) *T {
	return &v
}

// IfOK returns &v when ok is true and nil otherwise, for the (value, ok)
// getters of the domain types.
func IfOK[T any](v T, ok bool) *T {
	if !ok {
		return nil
	}
	return &v
}

// Finite drops infinities and NaN, which JSON cannot carry.
func Finite(v float64) *float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return &v
}
