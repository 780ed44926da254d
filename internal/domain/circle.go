package domain

import (
	"fmt"
	"math"
	"strconv"
)

// Circle is a shape defined by its radius
type Circle struct {
	radius float64
}

// NewCircle creates a circle, rejecting non-positive radii
func NewCircle(radius float64) (Circle, error) {
	if !isPositive(radius) {
		return Circle{}, fmt.Errorf("%w: radius must be positive", ErrInvalidArgument)
	}
	return Circle{radius: radius}, nil
}

// Radius returns the circle radius
func (c Circle) Radius() float64 {
	return c.radius
}

// Area returns π·r²
func (c Circle) Area() float64 {
	return math.Pi * c.radius * c.radius
}

// IsRightAngled is always false; circles have no angles
func (c Circle) IsRightAngled() bool {
	return false
}

func (c Circle) String() string {
	return "circle(r=" + strconv.FormatFloat(c.radius, 'g', -1, 64) + ")"
}
