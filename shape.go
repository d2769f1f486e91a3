package shapes

import (
	"errors"
	"sync"

	"github.com/DarKotE/shapes/internal/fmath"
)

// Shape is implemented by every shape type.
type Shape[T fmath.Float] interface {
	// Kind returns the variant of the shape.
	Kind() Kind

	// TryGetArea returns the area of the shape and true, or the zero Area
	// and false when the area is not representable in T (it overflowed to
	// infinity or degenerated to NaN).
	//
	// The area is computed on the first call and reused afterwards.
	TryGetArea() (Area[T], bool)
}

// shapeBase holds the memoized area shared by all shapes.
type shapeBase[T fmath.Float] struct {
	kind Kind
	area func() T
}

// newShapeBase returns a shapeBase whose area is computed by compute at
// most once, on first use. Safe for concurrent first access.
func newShapeBase[T fmath.Float](kind Kind, compute func() T) shapeBase[T] {
	return shapeBase[T]{
		kind: kind,
		area: sync.OnceValue(compute),
	}
}

// Kind returns the variant of the shape.
func (s *shapeBase[T]) Kind() Kind {
	return s.kind
}

// TryGetArea implements [Shape].
func (s *shapeBase[T]) TryGetArea() (Area[T], bool) {
	if s.area == nil {
		// Zero value, not built by a constructor.
		return Area[T]{}, false
	}

	v := s.area()
	if !fmath.IsFinite(v) {
		Logger().Debug("area not representable",
			"kind", s.kind.String(),
			"value", float64(v))
		return Area[T]{}, false
	}
	return NewArea(v), true
}

// checkMeasurement validates a single length: it must be a number and
// must not be negative. +Inf is allowed.
func checkMeasurement[T fmath.Float](arg string, v T) error {
	if fmath.IsNaN(v) {
		return &ArgumentError{Arg: arg, Value: float64(v), Reason: "must be a number"}
	}
	if fmath.Negative(v) {
		return &ArgumentError{Arg: arg, Value: float64(v), Reason: "must be >= 0"}
	}
	return nil
}

// reject logs a construction failure and returns err unchanged.
func reject(kind Kind, err error) error {
	log := Logger()
	var argErr *ArgumentError
	if errors.As(err, &argErr) {
		log.Debug("shape rejected",
			"kind", kind.String(),
			"arg", argErr.Arg,
			"value", argErr.Value,
			"reason", argErr.Reason)
		return err
	}
	log.Debug("shape rejected", "kind", kind.String(), "err", err)
	return err
}
