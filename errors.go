package shapes

import (
	"errors"
	"fmt"
)

// Sentinel errors for shape construction.
var (
	// ErrInvalidArgument is returned when a measurement is NaN or negative.
	ErrInvalidArgument = errors.New("shapes: invalid argument")

	// ErrImpossibleShape is returned when measurements are individually
	// valid but cannot form the requested shape.
	ErrImpossibleShape = errors.New("shapes: impossible shape")
)

// ArgumentError reports which constructor argument was rejected.
// It matches ErrInvalidArgument with errors.Is.
type ArgumentError struct {
	Arg    string  // Parameter name: "radius", "a", "b" or "c".
	Value  float64 // Rejected value, widened to float64.
	Reason string
}

func (e *ArgumentError) Error() string {
	return "shapes: invalid " + e.Arg + ": " + e.Reason
}

// Unwrap returns ErrInvalidArgument.
func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// ImpossibleShapeError is returned when three sides violate the triangle
// inequality. It matches ErrImpossibleShape with errors.Is.
type ImpossibleShapeError struct {
	A, B, C float64
}

func (e *ImpossibleShapeError) Error() string {
	return fmt.Sprintf("shapes: triangle %g, %g, %g cannot exist: no side may exceed the sum of the other two",
		e.A, e.B, e.C)
}

// Unwrap returns ErrImpossibleShape.
func (e *ImpossibleShapeError) Unwrap() error {
	return ErrImpossibleShape
}
