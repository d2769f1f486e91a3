// Package shapes provides immutable geometric shapes with lazily computed
// areas.
//
// # Overview
//
// Shapes are value objects: constructors validate their measurements
// eagerly and reject invalid input with an error, the measurements never
// change afterwards, and the area is computed on first request and cached
// for the lifetime of the shape.
//
// All shapes are generic over the floating-point type they compute in, so
// the same shape can be evaluated in float32 or float64.
//
// # Quick Start
//
//	import "github.com/DarKotE/shapes"
//
//	d, err := shapes.NewDisk(2.0)
//	if err != nil {
//	    return err
//	}
//	if area, ok := d.TryGetArea(); ok {
//	    fmt.Println(area) // 12.566370614359172
//	}
//
//	t, err := shapes.NewTriangle(3.0, 4.0, 5.0)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(t.IsRight()) // true
//
// # Shapes
//
//   - [Disk]: defined by a radius, area π·r².
//   - [Triangle]: defined by three sides, area by Kahan's stable form of
//     Heron's formula. Triangles satisfying the Pythagorean relation are
//     classified as [KindRightTriangle] at construction.
//
// # Errors
//
// Construction fails with an [*ArgumentError] (matching [ErrInvalidArgument])
// for NaN or negative measurements, and with an [*ImpossibleShapeError]
// (matching [ErrImpossibleShape]) for sides that violate the triangle
// inequality. +Inf measurements are accepted.
//
// A successfully constructed shape may still have an area that T cannot
// represent, for example a disk of radius math.MaxFloat64. This is not an
// error: [Shape.TryGetArea] returns false, and the caller may retry with a
// wider type.
//
// # Concurrency
//
// Shapes are safe for concurrent use. The area is computed at most once
// even when several goroutines request it at the same time.
//
// # Logging
//
// The package is silent by default. See [SetLogger].
package shapes
