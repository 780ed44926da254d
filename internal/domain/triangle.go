package domain

import (
	"fmt"
	"math"
	"sort"
	"strconv"
)

// Triangle is a shape defined by three side lengths
type Triangle struct {
	a, b, c float64
}

// NewTriangle creates a triangle. All sides must be positive and every pair
// of sides must sum to strictly more than the third.
func NewTriangle(a, b, c float64) (Triangle, error) {
	if !isPositive(a) || !isPositive(b) || !isPositive(c) {
		return Triangle{}, fmt.Errorf("%w: all sides must be positive", ErrInvalidArgument)
	}
	if !(a+b > c && a+c > b && b+c > a) {
		return Triangle{}, fmt.Errorf("%w: invalid triangle sides", ErrInvalidArgument)
	}
	return Triangle{a: a, b: b, c: c}, nil
}

// Sides returns the side lengths in construction order
func (t Triangle) Sides() (a, b, c float64) {
	return t.a, t.b, t.c
}

// scaled returns the sides in ascending order divided by a power of two
// near the longest side, together with that exponent. Scaling by a power of
// two is exact, so products of the scaled sides neither overflow nor
// underflow while matching the unscaled arithmetic bit for bit.
func (t Triangle) scaled() ([3]float64, int) {
	s := [3]float64{t.a, t.b, t.c}
	sort.Float64s(s[:])

	_, exp := math.Frexp(s[2])
	for i := range s {
		s[i] = math.Ldexp(s[i], -exp)
	}
	return s, exp
}

// Area uses Heron's formula in Kahan's ordering, which stays accurate for
// needle-shaped triangles. A radicand that rounds below zero is clamped.
// The result is +Inf only when the true area exceeds the float64 range.
func (t Triangle) Area() float64 {
	s, exp := t.scaled()
	z, y, x := s[0], s[1], s[2] // x >= y >= z

	radicand := (x + (y + z)) * (z - (x - y)) * (z + (x - y)) * (x + (y - z))
	if radicand < 0 {
		radicand = 0
	}
	return math.Ldexp(math.Sqrt(radicand)/4, 2*exp)
}

// IsRightAngled applies the Pythagorean theorem to the sorted sides
func (t Triangle) IsRightAngled() bool {
	s, _ := t.scaled()
	return IsClose(s[0]*s[0]+s[1]*s[1], s[2]*s[2], rightAngleTolerance)
}

func (t Triangle) String() string {
	return fmt.Sprintf("triangle(a=%s, b=%s, c=%s)",
		strconv.FormatFloat(t.a, 'g', -1, 64),
		strconv.FormatFloat(t.b, 'g', -1, 64),
		strconv.FormatFloat(t.c, 'g', -1, 64))
}
