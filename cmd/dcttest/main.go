// Command dcttest checks DCT and IDCT kernels against a floating-point
// reference and optionally measures their throughput.
package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/pflag"

	algodct "github.com/cwbudde/algo-dct"
	"github.com/cwbudde/algo-dct/internal/report"
)

const progName = "dcttest"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses args, executes the test and returns the exit code. Help and
// malformed flags print usage and succeed without testing anything.
func run(args []string, stdout, stderr io.Writer) int {
	cfg := algodct.DefaultConfig()

	var inverse, idct248, generic, help bool

	fs := pflag.NewFlagSet(progName, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.BoolVarP(&inverse, "inverse", "i", false, "test IDCT implementations")
	fs.BoolVarP(&idct248, "idct248", "4", false, "test IDCT248 implementations")
	fs.BoolVarP(&cfg.Speed, "speed", "t", false, "speed test")
	fs.BoolVarP(&help, "help", "h", false, "print usage")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", false, "list skipped algorithms")
	fs.IntVar(&cfg.Trials, "trials", cfg.Trials, "correctness trials per algorithm")
	fs.IntVar(&cfg.SpeedBatch, "batch", cfg.SpeedBatch, "transforms between clock reads")
	fs.DurationVar(&cfg.SpeedThreshold, "threshold", cfg.SpeedThreshold, "minimum measured time per speed test")
	fs.Uint32Var(&cfg.Seed, "seed", cfg.Seed, "generator seed")
	fs.StringVar(&cfg.Filter, "only", "", "test only algorithms whose name contains this")
	fs.BoolVar(&generic, "generic", false, "skip algorithms that need CPU extensions")

	if err := fs.Parse(args); err != nil || help {
		rw := report.New(stdout)
		rw.Usage(progName)

		if rw.Err() != nil {
			return 1
		}

		return 0
	}

	if generic {
		cfg.Features = &algodct.Features{ForceGeneric: true, Architecture: runtime.GOARCH}
	}

	switch {
	case idct248:
		cfg.Mode = algodct.IDCT248
	case inverse:
		cfg.Mode = algodct.Inverse
	}

	if fs.NArg() > 0 {
		p, err := algodct.ParsePolicy(fs.Arg(0))
		if err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", progName, err)
			return 1
		}

		cfg.Policy = p
	}

	if err := algodct.Run(cfg, stdout, stderr); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", progName, err)
		return 1
	}

	return 0
}
