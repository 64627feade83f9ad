// Package algodct is a differential test harness for 8x8 DCT and IDCT
// kernels.
//
// Each registered candidate is run on reproducible pseudo-random blocks and
// compared against a floating-point reference. Run prints per-position bias,
// accuracy statistics and, optionally, throughput.
package algodct

import (
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"

	"github.com/cwbudde/algo-dct/internal/block"
	"github.com/cwbudde/algo-dct/internal/cpu"
	"github.com/cwbudde/algo-dct/internal/harness"
	"github.com/cwbudde/algo-dct/internal/kernels"
	"github.com/cwbudde/algo-dct/internal/report"
	"github.com/cwbudde/algo-dct/internal/vector"
)

// Run executes cfg, writing the report to out and diagnostics to diag.
// diag may be nil.
func Run(cfg Config, out, diag io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	if diag == nil {
		diag = io.Discard
	}

	rw := report.New(out)

	if cfg.Mode == IDCT248 {
		if err := select248(cfg); err != nil {
			return err
		}

		rw.Banner()
		runIDCT248(cfg, rw)

		return rw.Err()
	}

	kind := kernels.Forward
	if cfg.Mode == Inverse {
		kind = kernels.Inverse
	}

	entries, err := selectAlgorithms(cfg, kind, report.New(diag))
	if err != nil {
		return err
	}

	rw.Banner()

	ws := harness.NewWorkspace()
	for _, d := range entries {
		runAlgorithm(cfg, ws, d, rw)
	}

	return rw.Err()
}

// Algorithms lists the names Run would test for cfg, in report order.
func Algorithms(cfg Config) ([]string, error) {
	if cfg.Mode == IDCT248 {
		if err := select248(cfg); err != nil {
			return nil, err
		}

		return []string{kernels.IDCT248Name}, nil
	}

	kind := kernels.Forward
	if cfg.Mode == Inverse {
		kind = kernels.Inverse
	}

	entries, err := selectAlgorithms(cfg, kind, report.New(io.Discard))
	if err != nil {
		return nil, err
	}

	return kernels.Names(entries), nil
}

func available(cfg Config) cpu.Mask {
	if cfg.Features != nil {
		return cfg.Features.Mask()
	}

	return cpu.Available()
}

// select248 applies the name filter to the single 2-4-8 kernel, which has
// no CPU requirement.
func select248(cfg Config) error {
	if !matchName(kernels.IDCT248Name, cfg.Filter) {
		return fmt.Errorf("%w: idct248 filter %q", ErrNoAlgorithms, cfg.Filter)
	}

	return nil
}

func matchName(name, filter string) bool {
	return filter == "" || strings.Contains(name, filter)
}

func selectAlgorithms(cfg Config, kind kernels.Kind, diag *report.Writer) ([]kernels.Descriptor, error) {
	entries := lo.Filter(kernels.Table(kind), func(d kernels.Descriptor, _ int) bool {
		return matchName(d.Name, cfg.Filter)
	})

	avail := available(cfg)

	if cfg.Verbose {
		for _, d := range kernels.Rejected(entries, avail) {
			diag.Skipped(kind.String(), d.Name, avail.Missing(d.Requires))
		}
	}

	entries = kernels.Filter(entries, avail)
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: %s filter %q", ErrNoAlgorithms, kind, cfg.Filter)
	}

	return entries, nil
}

func runAlgorithm(cfg Config, ws *harness.Workspace, d kernels.Descriptor, rw *report.Writer) {
	gen := vector.NewGenerator(cfg.Seed, cfg.Policy, d.Kind == kernels.Inverse)

	sum := harness.Differential(ws, d, gen, cfg.Trials)
	rw.Summary(d.Kind.String(), d.Name, sum)

	if !cfg.Speed {
		return
	}

	var pristine block.Block

	gen.Speed(&pristine)
	rw.Speed(d.Kind.String(), d.Name, harness.Speed(ws, d.NewCandidate(), d.Layout, &pristine, cfg.speed()))
}

func runIDCT248(cfg Config, rw *report.Writer) {
	cand, ref := kernels.IDCT248()
	gen := vector.NewGenerator(cfg.Seed, cfg.Policy, true)
	ws := harness.NewWorkspace()

	rw.Dct248(kernels.IDCT248Name, harness.Dct248(ws, cand, ref, gen, cfg.Trials))

	if !cfg.Speed {
		return
	}

	pristine := ws.Original
	rw.Speed248(kernels.IDCT248Name, harness.SpeedPut(ws, cand, &pristine, cfg.speed()))
}
