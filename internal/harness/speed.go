package harness

import (
	"time"

	"github.com/cwbudde/algo-dct/internal/block"
	"github.com/cwbudde/algo-dct/internal/kernels"
	"github.com/cwbudde/algo-dct/internal/layout"
)

// SpeedConfig controls the throughput loop.
type SpeedConfig struct {
	// Batch is the number of transforms between clock reads.
	Batch int
	// Threshold is the minimum total measured time.
	Threshold time.Duration
}

// DefaultSpeed is the regression speed setting.
var DefaultSpeed = SpeedConfig{
	Batch:     50000,
	Threshold: time.Second,
}

// SpeedSample is the outcome of one throughput measurement.
type SpeedSample struct {
	Iterations int64
	Elapsed    time.Duration
}

// KDCTPerSecond returns throughput in thousands of transforms per second.
// It is zero when nothing was measured.
func (s SpeedSample) KDCTPerSecond() float64 {
	if s.Iterations <= 0 || s.Elapsed <= 0 {
		return 0
	}

	return float64(s.Iterations) / s.Elapsed.Seconds() / 1000
}

// measure runs batches until the elapsed time reaches the threshold.
// At least one batch always runs.
func measure(cfg SpeedConfig, batch func(n int)) SpeedSample {
	var s SpeedSample

	start := time.Now()

	for {
		batch(cfg.Batch)

		s.Iterations += int64(cfg.Batch)
		s.Elapsed = time.Since(start)

		if s.Elapsed >= cfg.Threshold {
			return s
		}
	}
}

// Speed times k on pristine, given in canonical order. Every iteration
// copies the pristine block into scratch first, so the kernel always sees
// the same input.
func Speed(ws *Workspace, k kernels.Kernel, tag layout.Tag, pristine *block.Block, cfg SpeedConfig) SpeedSample {
	var src block.Block

	layout.ToNative(tag, &src, pristine)

	return measure(cfg, func(n int) {
		release := acquire(k)
		defer release()

		for range n {
			ws.Work = src
			k.Transform(&ws.Work)
		}
	})
}

// SpeedPut times a pixel-reconstructing kernel on pristine.
func SpeedPut(ws *Workspace, put kernels.Putter, pristine *block.Block, cfg SpeedConfig) SpeedSample {
	src := *pristine

	return measure(cfg, func(n int) {
		release := acquire(put)
		defer release()

		for range n {
			ws.Work = src
			put.Put(&ws.Pixels, &ws.Work)
		}
	})
}
