package shapes

import (
	"fmt"

	"github.com/DarKotE/shapes/internal/fmath"
)

// Disk is a filled circle defined by its radius.
//
// A Disk is immutable. Create one with [NewDisk].
type Disk[T fmath.Float] struct {
	shapeBase[T]
	radius T
}

var (
	_ Shape[float32] = (*Disk[float32])(nil)
	_ Shape[float64] = (*Disk[float64])(nil)
)

// NewDisk returns a disk with the given radius.
//
// The radius must be a number and must not be negative; otherwise the
// returned error is an [*ArgumentError] matching [ErrInvalidArgument].
// A radius of +Inf is accepted, its area is reported as not representable.
//
// The area π·r² is not computed until [Disk.TryGetArea] is called.
func NewDisk[T fmath.Float](radius T) (*Disk[T], error) {
	if err := checkMeasurement("radius", radius); err != nil {
		return nil, reject(KindDisk, err)
	}

	return &Disk[T]{
		shapeBase: newShapeBase(KindDisk, func() T { return fmath.DiskArea(radius) }),
		radius:    radius,
	}, nil
}

// Radius returns the radius exactly as passed to [NewDisk].
func (d *Disk[T]) Radius() T {
	return d.radius
}

func (d *Disk[T]) String() string {
	return fmt.Sprintf("disk(r=%g)", d.radius)
}
