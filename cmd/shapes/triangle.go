package main

import (
	"github.com/spf13/cobra"

	"github.com/DarKotE/shapes"
	"github.com/DarKotE/shapes/internal/fmath"
)

func newTriangleCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "triangle A B C",
		Short: "Build a triangle and print its kind and area",
		Long:  "Builds a triangle from three side lengths, reports whether it is a right triangle, and computes its area with Kahan's formula.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				rep report
				err error
			)
			switch opts.precision {
			case 32:
				rep, err = triangleReport[float32](args, 32)
			default:
				rep, err = triangleReport[float64](args, 64)
			}
			if err != nil {
				return err
			}
			return writeReport(cmd.OutOrStdout(), rep, opts)
		},
	}
}

func triangleReport[T fmath.Float](args []string, bits int) (report, error) {
	var sides [3]T
	for i, name := range [...]string{"a", "b", "c"} {
		v, err := parseMeasurement[T](name, args[i], bits)
		if err != nil {
			return report{}, err
		}
		sides[i] = v
	}

	t, err := shapes.NewTriangle(sides[0], sides[1], sides[2])
	if err != nil {
		return report{}, err
	}

	e := t.Edges()
	rep := report{
		Kind:      t.Kind().String(),
		Precision: bits,
		Sides:     []number{newNumber(e.A, bits), newNumber(e.B, bits), newNumber(e.C, bits)},
	}
	return withArea[T](rep, t, bits), nil
}
