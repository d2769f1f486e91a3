package shapes

import (
	"fmt"

	"github.com/DarKotE/shapes/internal/fmath"
)

// Area is the computed area of a shape.
//
// Areas obtained from [Shape.TryGetArea] are always finite.
type Area[T fmath.Float] struct {
	value T
}

// NewArea wraps v. It never fails.
func NewArea[T fmath.Float](v T) Area[T] {
	return Area[T]{value: v}
}

// Value returns the raw area.
func (a Area[T]) Value() T {
	return a.value
}

// Equal reports whether a and b hold numerically equal values.
// Standard float comparison applies: a NaN area is not equal to itself.
func (a Area[T]) Equal(b Area[T]) bool {
	return a.value == b.value
}

func (a Area[T]) String() string {
	return fmt.Sprintf("%g", a.value)
}
