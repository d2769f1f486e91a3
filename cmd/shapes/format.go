package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

func writeReport(w io.Writer, rep report, opts *options) error {
	if opts.format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}
	return writeReportText(w, rep, opts)
}

// writeReportText prints the report as aligned key/value lines. The area
// is formatted for the --lang locale; measurements are echoed as given.
func writeReportText(w io.Writer, rep report, opts *options) error {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	fmt.Fprintf(tw, "kind:\t%s\n", rep.Kind)
	fmt.Fprintf(tw, "precision:\t%d-bit\n", rep.Precision)
	if rep.Radius != nil {
		fmt.Fprintf(tw, "radius:\t%s\n", rep.Radius)
	}
	if len(rep.Sides) > 0 {
		sides := make([]string, len(rep.Sides))
		for i, s := range rep.Sides {
			sides[i] = s.String()
		}
		fmt.Fprintf(tw, "sides:\t%s\n", strings.Join(sides, ", "))
	}
	if rep.Area != nil {
		verb := fmt.Sprintf("%%.%df", opts.digits)
		fmt.Fprintf(tw, "area:\t%s\n", opts.printer.Sprintf(verb, rep.Area.value))
	} else {
		fmt.Fprintf(tw, "area:\tnot representable in %d-bit floating point\n", rep.Precision)
	}
	return tw.Flush()
}
