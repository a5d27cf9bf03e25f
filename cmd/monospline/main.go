// Command monospline interpolates query points through a set of (x, y)
// samples with a monotone cubic spline.
//
// xy-input.txt holds comma separated (x, y) pairs. x-input.txt holds the x
// values to interpolate. The output file receives the samples and the
// interpolated pairs, sorted by x.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	monospline "github.com/Maxime2/monotone-spline"
)

const outputFormat = "%.0f,%.2f\n"

type options struct {
	xyPath   string
	xPath    string
	outPath  string
	psPath   string
	dumpPath string
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("monospline: ")

	if err := newRootCmd().Execute(); err != nil {
		if errors.Is(err, monospline.ErrInvalidInput) {
			log.Printf("cannot build spline: %v", err)
		} else {
			log.Print(err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "monospline",
		Short:         "Monotone cubic interpolation of tabulated data",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInterpolate(opts)
		},
	}
	f := cmd.PersistentFlags()
	f.StringVar(&opts.xyPath, "xy", "xy-input.txt", "file of comma separated (x, y) samples")
	f.StringVar(&opts.xPath, "x", "x-input.txt", "file of x values to interpolate")
	cmd.Flags().StringVar(&opts.outPath, "out", "xy-output.txt", "output file for merged (x, y) pairs")
	cmd.Flags().StringVar(&opts.psPath, "plot", "", "write a PostScript plot to this file")
	cmd.Flags().StringVar(&opts.dumpPath, "dump", "", "write the spline samples as JSON to this file")

	cmd.AddCommand(newEvalCmd(opts, "derivative", "Print the first derivative at each query point",
		(*monospline.Spline).EvaluateDerivatives))
	cmd.AddCommand(newEvalCmd(opts, "forward", "Print the forward combination at each query point",
		(*monospline.Spline).EvaluateForward))
	return cmd
}

func newEvalCmd(opts *options, use, short string, eval func(*monospline.Spline, []float64) []float64) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, xi, err := load(opts)
			if err != nil {
				return err
			}
			return writePairs(cmd.OutOrStdout(), zip(xi, eval(s, xi)), "%g,%g\n")
		},
	}
}

func load(opts *options) (*monospline.Spline, []float64, error) {
	samples, err := readFile(opts.xyPath, readPairs)
	if err != nil {
		return nil, nil, err
	}
	s, err := monospline.New(split(samples))
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opts.xyPath, err)
	}
	xi, err := readFile(opts.xPath, readValues)
	if err != nil {
		return nil, nil, err
	}
	return s, xi, nil
}

func runInterpolate(opts *options) error {
	s, xi, err := load(opts)
	if err != nil {
		return err
	}
	yi := s.Evaluate(xi)
	x, y := s.Knots()

	out, err := os.Create(opts.outPath)
	if err != nil {
		return err
	}
	if err := writePairs(out, mergeSorted(zip(x, y), xi, yi), outputFormat); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	log.Printf("wrote %d samples and %d interpolated points to %s", len(x), len(xi), opts.outPath)

	if opts.psPath != "" {
		if err := s.DrawPSFile(opts.psPath, xi); err != nil {
			return err
		}
		log.Printf("plot written to %s", opts.psPath)
	}
	if opts.dumpPath != "" {
		if err := writeDump(opts.dumpPath, s); err != nil {
			return err
		}
	}
	return nil
}

func writeDump(path string, s *monospline.Spline) error {
	b, err := s.MarshalJSON()
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(b, '\n'), 0o644)
}
