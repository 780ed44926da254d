package domain

import (
	"errors"
	"math"
)

// ErrInvalidArgument is wrapped by every construction and factory failure
var ErrInvalidArgument = errors.New("invalid argument")

// rightAngleTolerance is the relative tolerance for the Pythagorean check
const rightAngleTolerance = 1e-9

// Shape is the capability set shared by all shape variants
type Shape interface {
	// Area returns the area of the shape
	Area() float64
	// IsRightAngled reports whether the shape contains a right angle
	IsRightAngled() bool
}

// CalculateArea returns the area of any shape without knowing its variant
func CalculateArea(s Shape) float64 {
	return s.Area()
}

// IsClose reports whether a and b are equal within the relative tolerance rel,
// scaled by the larger magnitude of the two: |a-b| <= rel*max(|a|,|b|).
// Infinities are only close to themselves.
func IsClose(a, b, rel float64) bool {
	if a == b {
		return true
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}
	diff := math.Abs(a - b)
	return diff <= rel*math.Abs(b) || diff <= rel*math.Abs(a)
}

// isPositive reports whether v is a finite positive number
func isPositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
