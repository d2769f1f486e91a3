package main

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/DarKotE/shapes"
	"github.com/DarKotE/shapes/internal/fmath"
)

// report is the printable result of building a shape.
type report struct {
	Kind      string   `json:"kind"`
	Precision int      `json:"precision"`
	Radius    *number  `json:"radius,omitempty"`
	Sides     []number `json:"sides,omitempty"`
	Area      *number  `json:"area"` // nil when not representable
}

// number is a measurement or area remembered at the precision it was
// computed in, so float32 values print without widening noise.
type number struct {
	value float64
	bits  int
}

func newNumber[T fmath.Float](v T, bits int) number {
	return number{value: float64(v), bits: bits}
}

func (n number) String() string {
	return strconv.FormatFloat(n.value, 'g', -1, n.bits)
}

// MarshalJSON writes finite values as JSON numbers and infinities as the
// strings "+Inf" and "-Inf".
func (n number) MarshalJSON() ([]byte, error) {
	if math.IsInf(n.value, 0) || math.IsNaN(n.value) {
		return []byte(strconv.Quote(n.String())), nil
	}
	return []byte(n.String()), nil
}

// parseMeasurement parses s at the given precision. Values beyond the
// range of the type parse as ±Inf and are left to the shape constructor
// to accept or reject.
func parseMeasurement[T fmath.Float](name, s string, bits int) (T, error) {
	v, err := strconv.ParseFloat(s, bits)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("parse %s %q: %w", name, s, err)
	}
	return T(v), nil
}

func withArea[T fmath.Float](rep report, s shapes.Shape[T], bits int) report {
	if area, ok := s.TryGetArea(); ok {
		n := newNumber(area.Value(), bits)
		rep.Area = &n
	}
	return rep
}
