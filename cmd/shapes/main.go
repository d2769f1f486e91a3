// Command shapes builds a shape from command-line measurements and prints
// its classification and area.
//
// Usage:
//
//	shapes disk 2.5
//	shapes triangle 3 4 5 --format json
//	shapes --precision 32 disk 1e20
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/DarKotE/shapes"
)

// options holds the persistent flags shared by all subcommands.
type options struct {
	precision int
	format    string
	lang      string
	digits    int
	verbose   bool

	printer *message.Printer
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "shapes",
		Short:         "Classify shapes and compute their area",
		Long:          "Builds a disk or triangle from its measurements, validates it, and reports its kind and area in 32- or 64-bit floating point.",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.prepare(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.IntVar(&opts.precision, "precision", 64, "floating-point precision in bits: 32|64")
	flags.StringVar(&opts.format, "format", "text", "output format: text|json")
	flags.StringVar(&opts.lang, "lang", "en", "BCP 47 language tag for number formatting in text output")
	flags.IntVar(&opts.digits, "digits", 6, "fraction digits in text output")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug diagnostics to stderr")

	root.AddCommand(newDiskCmd(opts))
	root.AddCommand(newTriangleCmd(opts))
	return root
}

// prepare validates the persistent flags and installs the logger.
func (o *options) prepare(cmd *cobra.Command) error {
	if o.precision != 32 && o.precision != 64 {
		return fmt.Errorf("invalid --precision %d: must be 32 or 64", o.precision)
	}
	if o.format != "text" && o.format != "json" {
		return fmt.Errorf("invalid --format %q: must be text or json", o.format)
	}
	if o.digits < 0 {
		return fmt.Errorf("invalid --digits %d: must be >= 0", o.digits)
	}

	tag, err := language.Parse(o.lang)
	if err != nil {
		return fmt.Errorf("invalid --lang %q: %w", o.lang, err)
	}
	o.printer = message.NewPrinter(tag)

	if o.verbose {
		shapes.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	} else {
		shapes.SetLogger(nil)
	}
	return nil
}
