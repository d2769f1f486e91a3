// Package fmath provides generic floating-point helpers shared by the
// shape types.
//
// All functions are parameterized over [Float] and are instantiated per
// backing type, so float32 shapes compute in float32 and float64 shapes in
// float64. Only the square root is evaluated in float64 and rounded back;
// float64 carries more than twice the float32 precision, so the rounded
// result is the correctly rounded float32 square root.
package fmath

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Float is the numeric trait shapes are generic over.
type Float interface {
	constraints.Float
}

// IsNaN reports whether x is NaN.
func IsNaN[T Float](x T) bool {
	return math.IsNaN(float64(x))
}

// IsInf reports whether x is positive or negative infinity.
func IsInf[T Float](x T) bool {
	return math.IsInf(float64(x), 0)
}

// IsFinite reports whether x is neither NaN nor infinite.
func IsFinite[T Float](x T) bool {
	return !IsNaN(x) && !IsInf(x)
}

// Negative reports whether x is strictly less than zero.
// Negative zero is not negative.
func Negative[T Float](x T) bool {
	return x < 0
}

// Abs returns the absolute value of x.
func Abs[T Float](x T) T {
	return T(math.Abs(float64(x)))
}

// Sqrt returns the square root of x rounded to T.
func Sqrt[T Float](x T) T {
	return T(math.Sqrt(float64(x)))
}

// Hypot returns sqrt(x*x + y*y) rounded to T, without overflow or
// underflow in the intermediate squares.
func Hypot[T Float](x, y T) T {
	return T(math.Hypot(float64(x), float64(y)))
}

// Pi returns π rounded to T.
func Pi[T Float]() T {
	return T(math.Pi)
}

// FromDecimal converts a decimal constant to T.
func FromDecimal[T Float](v float64) T {
	return T(v)
}

// SortDesc3 returns a, b, c reordered so that the first is the largest
// and the last is the smallest.
func SortDesc3[T Float](a, b, c T) (T, T, T) {
	if a < b {
		a, b = b, a
	}
	if a < c {
		a, c = c, a
	}
	if b < c {
		b, c = c, b
	}
	return a, b, c
}

// DiskArea returns π·r² evaluated as pi*r*r, left to right.
func DiskArea[T Float](r T) T {
	return Pi[T]() * r * r
}

// KahanArea returns the area of a triangle with sides a, b, c using
// Kahan's rearrangement of Heron's formula.
//
// The sides are sorted so that a >= b >= c and the radicand is evaluated as
//
//	(a+(b+c)) * (c-(a-b)) * (c+(a-b)) * (a+(b-c))
//
// The parentheses must not be rearranged: this grouping keeps the radicand
// non-negative for every valid triangle, where the textbook
// sqrt(s(s-a)(s-b)(s-c)) can go slightly negative and yield NaN.
//
// See https://people.eecs.berkeley.edu/~wkahan/Triangle.pdf
func KahanArea[T Float](a, b, c T) T {
	a, b, c = SortDesc3(a, b, c)
	p := (a + (b + c)) * (c - (a - b)) * (c + (a - b)) * (a + (b - c))
	return FromDecimal[T](0.25) * Sqrt(p)
}

// RightAngled reports whether a, b, c satisfy the Pythagorean relation on
// any permutation, within an absolute tolerance on squared lengths.
func RightAngled[T Float](a, b, c, tolerance T) bool {
	return Abs(a*a-(b*b+c*c)) < tolerance ||
		Abs(b*b-(a*a+c*c)) < tolerance ||
		Abs(c*c-(a*a+b*b)) < tolerance
}
