package algodct

import (
	"fmt"
	"strconv"
	"time"

	"github.com/cwbudde/algo-dct/internal/harness"
	"github.com/cwbudde/algo-dct/internal/vector"
)

// Mode selects which registry a run exercises.
type Mode int

const (
	// Forward tests the forward DCT kernels.
	Forward Mode = iota
	// Inverse tests the inverse DCT kernels.
	Inverse
	// IDCT248 tests the 2-4-8 interlaced inverse DCT.
	IDCT248
)

func (m Mode) String() string {
	switch m {
	case Forward:
		return "forward"
	case Inverse:
		return "inverse"
	case IDCT248:
		return "idct248"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Config controls one test run.
type Config struct {
	Mode   Mode
	Policy Policy

	// Speed adds a throughput measurement after each accuracy session.
	Speed bool

	// Trials is the number of correctness trials per algorithm.
	Trials int
	// SpeedBatch is the number of transforms between clock reads.
	SpeedBatch int
	// SpeedThreshold is the minimum measured time per speed test.
	SpeedThreshold time.Duration

	// Seed seeds the generator. Each algorithm restarts from it.
	Seed uint32

	// Features overrides CPU detection when non-nil.
	Features *Features

	// Filter keeps only algorithms whose name contains it.
	Filter string

	// Verbose lists skipped algorithms on the diagnostic writer.
	Verbose bool
}

// DefaultConfig returns the regression settings: forward mode, sparse
// policy, 20000 trials and a one-second speed threshold.
func DefaultConfig() Config {
	return Config{
		Mode:           Forward,
		Policy:         PolicySparse,
		Trials:         harness.DefaultTrials,
		SpeedBatch:     harness.DefaultSpeed.Batch,
		SpeedThreshold: harness.DefaultSpeed.Threshold,
		Seed:           vector.DefaultSeed,
	}
}

// Validate checks that every field is in range.
func (c Config) Validate() error {
	switch {
	case c.Mode < Forward || c.Mode > IDCT248:
		return fmt.Errorf("%w: mode %v", ErrInvalidConfig, c.Mode)
	case !c.Policy.Valid():
		return fmt.Errorf("%w: %d", ErrInvalidPolicy, int(c.Policy))
	case c.Trials <= 0:
		return fmt.Errorf("%w: trials must be positive, got %d", ErrInvalidConfig, c.Trials)
	case c.SpeedBatch <= 0:
		return fmt.Errorf("%w: speed batch must be positive, got %d", ErrInvalidConfig, c.SpeedBatch)
	case c.SpeedThreshold < 0:
		return fmt.Errorf("%w: negative speed threshold %v", ErrInvalidConfig, c.SpeedThreshold)
	}

	return nil
}

func (c Config) speed() harness.SpeedConfig {
	return harness.SpeedConfig{Batch: c.SpeedBatch, Threshold: c.SpeedThreshold}
}

// ParsePolicy parses a command-line test-number.
func ParsePolicy(s string) (Policy, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPolicy, s)
	}

	p := Policy(n)
	if !p.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidPolicy, n)
	}

	return p, nil
}
