package shapes

import (
	"fmt"

	"github.com/DarKotE/shapes/internal/fmath"
)

// RightTolerance is the absolute tolerance, in squared length units, used
// to classify a triangle as right-angled.
//
// It does not scale with the triangle: very large right triangles may be
// classified as general and very small general triangles as right.
const RightTolerance = 0.0001

// Edges holds the three sides of a triangle in the order they were given.
type Edges[T fmath.Float] struct {
	A, B, C T
}

// Triangle is a triangle defined by its three side lengths.
//
// A right triangle is a Triangle whose Kind is [KindRightTriangle]; the
// classification is made once by [NewTriangle] and never changes.
type Triangle[T fmath.Float] struct {
	shapeBase[T]
	edges Edges[T]
}

var (
	_ Shape[float32] = (*Triangle[float32])(nil)
	_ Shape[float64] = (*Triangle[float64])(nil)
)

// NewTriangle returns a triangle with sides a, b and c.
//
// Each side must be a number and must not be negative; the first offending
// side, checked in order a, b, c, is reported as an [*ArgumentError]
// matching [ErrInvalidArgument]. Sides of +Inf are accepted.
//
// If any side exceeds the sum of the other two, the error is an
// [*ImpossibleShapeError] matching [ErrImpossibleShape]. Degenerate
// triangles whose longest side equals the sum of the others are allowed
// and have zero area.
//
// When a²+b²=c² holds for some ordering of the sides within
// [RightTolerance], the triangle is classified as [KindRightTriangle].
func NewTriangle[T fmath.Float](a, b, c T) (*Triangle[T], error) {
	if err := checkMeasurement("a", a); err != nil {
		return nil, reject(KindTriangle, err)
	}
	if err := checkMeasurement("b", b); err != nil {
		return nil, reject(KindTriangle, err)
	}
	if err := checkMeasurement("c", c); err != nil {
		return nil, reject(KindTriangle, err)
	}

	if a > b+c || b > a+c || c > a+b {
		return nil, reject(KindTriangle, &ImpossibleShapeError{
			A: float64(a),
			B: float64(b),
			C: float64(c),
		})
	}

	kind := KindTriangle
	if fmath.RightAngled(a, b, c, fmath.FromDecimal[T](RightTolerance)) {
		kind = KindRightTriangle
	}

	return &Triangle[T]{
		shapeBase: newShapeBase(kind, func() T { return fmath.KahanArea(a, b, c) }),
		edges:     Edges[T]{A: a, B: b, C: c},
	}, nil
}

// Edges returns the sides exactly as passed to [NewTriangle].
func (t *Triangle[T]) Edges() Edges[T] {
	return t.edges
}

// IsRight reports whether the triangle was classified as right-angled.
func (t *Triangle[T]) IsRight() bool {
	return t.kind == KindRightTriangle
}

func (t *Triangle[T]) String() string {
	return fmt.Sprintf("%s(%g, %g, %g)", t.kind, t.edges.A, t.edges.B, t.edges.C)
}
