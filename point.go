package shapes

import "github.com/DarKotE/shapes/internal/fmath"

// Point is a 2D point.
type Point[T fmath.Float] struct {
	X, Y T
}

// Pt is a convenience function to create a Point.
func Pt[T fmath.Float](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point[T]) Sub(q Point[T]) Point[T] {
	return Point[T]{X: p.X - q.X, Y: p.Y - q.Y}
}

// Length returns the length of the vector. Squares are not formed in T,
// so any length representable in T is returned finite.
func (p Point[T]) Length() T {
	return fmath.Hypot(p.X, p.Y)
}

// Distance returns the distance between two points.
func (p Point[T]) Distance(q Point[T]) T {
	return p.Sub(q).Length()
}

// IsFinite reports whether both coordinates are finite.
func (p Point[T]) IsFinite() bool {
	return fmath.IsFinite(p.X) && fmath.IsFinite(p.Y)
}

// NewTriangleFromVertices returns the triangle with vertices p, q and r.
//
// Side a is opposite p, b opposite q and c opposite r. Every coordinate
// must be finite: the first vertex with a NaN or infinite coordinate is
// reported as an [*ArgumentError] named "p", "q" or "r". The sides are
// then validated as by [NewTriangle]; a side whose length exceeds the
// range of T is +Inf and is accepted.
func NewTriangleFromVertices[T fmath.Float](p, q, r Point[T]) (*Triangle[T], error) {
	for _, v := range [...]struct {
		name string
		pt   Point[T]
	}{{"p", p}, {"q", q}, {"r", r}} {
		if v.pt.IsFinite() {
			continue
		}
		bad := v.pt.X
		if fmath.IsFinite(bad) {
			bad = v.pt.Y
		}
		return nil, reject(KindTriangle, &ArgumentError{
			Arg:    v.name,
			Value:  float64(bad),
			Reason: "coordinates must be finite",
		})
	}
	return NewTriangle(q.Distance(r), p.Distance(r), p.Distance(q))
}
