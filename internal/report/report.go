// Package report formats harness results as the fixed-layout text report.
package report

import (
	"fmt"
	"io"

	"github.com/cwbudde/algo-dct/internal/block"
	"github.com/cwbudde/algo-dct/internal/cpu"
	"github.com/cwbudde/algo-dct/internal/harness"
)

// Banner is the first line of every report.
const Banner = "algo-dct DCT/IDCT test"

// Writer prints report sections to an io.Writer. The first write error
// sticks: later calls do nothing and Err returns it.
type Writer struct {
	w   io.Writer
	err error
}

// New returns a Writer on w.
func New(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Err returns the first write error, if any.
func (r *Writer) Err() error {
	return r.err
}

func (r *Writer) printf(format string, args ...any) {
	if r.err != nil {
		return
	}

	_, r.err = fmt.Fprintf(r.w, format, args...)
}

// Banner writes the report header line.
func (r *Writer) Banner() {
	r.printf("%s\n", Banner)
}

// Bias writes the per-position signed error sums as an 8x8 grid.
func (r *Writer) Bias(bias *[block.Size]int64) {
	for i, v := range bias {
		if i%8 == 0 {
			r.printf("\n")
		}

		r.printf("%7d ", v)
	}

	r.printf("\n")
}

// Summary writes the bias grid followed by the accuracy line for one
// algorithm. kind is "DCT" or "IDCT".
func (r *Writer) Summary(kind, name string, s harness.Summary) {
	r.Bias(&s.Bias)
	r.printf("%s %s: err_inf=%d err2=%0.8f syserr=%0.8f maxout=%d blockSumErr=%d\n",
		kind, name, s.ErrInf, s.Err2, s.SysErr, s.MaxOut, s.BlockSumErr)
}

// Speed writes a throughput line.
func (r *Writer) Speed(kind, name string, s harness.SpeedSample) {
	r.printf("%s %s: %0.1f kdct/s\n", kind, name, s.KDCTPerSecond())
}

// Dct248 writes the overflow lines in the order found, then the 2-4-8
// accuracy line.
func (r *Writer) Dct248(name string, res harness.Dct248Result) {
	for _, o := range res.Overflows {
		r.Overflow(o)
	}

	r.printf("IDCT248 %s: err_inf=%d", name, res.ErrInf)

	if res.Saturated > 0 {
		r.printf(" saturated=%d", res.Saturated)
	}

	r.printf("\n")
}

// Overflow writes one full-range mismatch as "<candidate> <reference>".
func (r *Writer) Overflow(o harness.Overflow) {
	r.printf("%d %d\n", o.Candidate, o.Reference)
}

// Speed248 writes the 2-4-8 throughput line.
func (r *Writer) Speed248(name string, s harness.SpeedSample) {
	r.printf("IDCT248 %s: %0.1f kdct/s\n", name, s.KDCTPerSecond())
}

// Skipped notes an algorithm left out because the CPU lacks missing.
func (r *Writer) Skipped(kind, name string, missing cpu.Mask) {
	r.printf("skip %s %s: missing %s\n", kind, name, missing)
}

// Usage writes the command help.
func (r *Writer) Usage(prog string) {
	r.printf(`%s
usage: %s [-i] [-4] [-t] [<test-number>]
test-number 0 -> test with random matrixes
            1 -> test with random sparse matrixes
            2 -> do 3. test from mpeg4 std
-i          test IDCT implementations
-4          test IDCT248 implementations
-t          speed test
-v          list algorithms skipped for missing CPU features
--trials N     correctness trials per algorithm
--batch N      transforms between clock reads in the speed test
--threshold D  minimum measured time per speed test
--seed N       generator seed
--only NAME    test only algorithms whose name contains NAME
--generic      skip algorithms that need CPU extensions
`, Banner, prog)
}
