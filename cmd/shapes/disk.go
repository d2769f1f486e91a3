package main

import (
	"github.com/spf13/cobra"

	"github.com/DarKotE/shapes"
	"github.com/DarKotE/shapes/internal/fmath"
)

func newDiskCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "disk RADIUS",
		Short: "Build a disk and print its area",
		Long:  "Builds a disk of the given radius. NaN and negative radii are rejected; +Inf is accepted but has no representable area.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				rep report
				err error
			)
			switch opts.precision {
			case 32:
				rep, err = diskReport[float32](args[0], 32)
			default:
				rep, err = diskReport[float64](args[0], 64)
			}
			if err != nil {
				return err
			}
			return writeReport(cmd.OutOrStdout(), rep, opts)
		},
	}
}

func diskReport[T fmath.Float](arg string, bits int) (report, error) {
	radius, err := parseMeasurement[T]("radius", arg, bits)
	if err != nil {
		return report{}, err
	}

	d, err := shapes.NewDisk(radius)
	if err != nil {
		return report{}, err
	}

	r := newNumber(d.Radius(), bits)
	rep := report{
		Kind:      d.Kind().String(),
		Precision: bits,
		Radius:    &r,
	}
	return withArea[T](rep, d, bits), nil
}
