package numeric

import "math"

// FloatEquals reports whether a and b are within epsilon of each other.
func FloatEquals(a, b, epsilon float64) bool {
	return math.Abs(a-b) <= epsilon
}

// FloatGreaterThan reports whether a is greater than b by more than epsilon.
func FloatGreaterThan(a, b, epsilon float64) bool {
	return a > b && !FloatEquals(a, b, epsilon)
}

// FloatLessThan reports whether a is less than b by more than epsilon.
func FloatLessThan(a, b, epsilon float64) bool {
	return a < b && !FloatEquals(a, b, epsilon)
}
