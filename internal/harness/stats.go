package harness

import "github.com/cwbudde/algo-dct/internal/block"

// Stats accumulates differential error over a session.
type Stats struct {
	trials         int
	errInf         int
	err2           int64
	sysErr         [block.Size]int64
	maxOut         int
	blockSumErrMax int
}

// Reset zeroes the accumulators.
func (s *Stats) Reset() {
	*s = Stats{}
}

// Add records one trial: got is the candidate output and want the
// reference output, both canonical.
func (s *Stats) Add(got, want *block.Block) {
	blockSum := 0

	for i := range got {
		diff := int(got[i]) - int(want[i])
		v := block.Abs(diff)

		s.errInf = max(s.errInf, v)
		s.err2 += int64(v * v)
		s.sysErr[i] += int64(diff)
		blockSum += v
		s.maxOut = max(s.maxOut, block.Abs(int(got[i])))
	}

	s.blockSumErrMax = max(s.blockSumErrMax, blockSum)
	s.trials++
}

// Summary is the finalized view of a session.
type Summary struct {
	Trials int
	// ErrInf is the largest absolute error of any coefficient.
	ErrInf int
	// Err2 is the mean squared error per coefficient.
	Err2 float64
	// SysErr is the largest per-position bias, as a mean per trial.
	SysErr float64
	// MaxOut is the largest candidate output magnitude.
	MaxOut int
	// BlockSumErr is the largest summed absolute error of one block.
	BlockSumErr int
	// Bias holds the signed error sum per position.
	Bias [block.Size]int64
}

// Summary finalizes the accumulators. A session with no trials reports
// zeros.
func (s *Stats) Summary() Summary {
	sum := Summary{
		Trials:      s.trials,
		ErrInf:      s.errInf,
		MaxOut:      s.maxOut,
		BlockSumErr: s.blockSumErrMax,
		Bias:        s.sysErr,
	}

	if s.trials == 0 {
		return sum
	}

	var sysMax int64
	for _, v := range s.sysErr {
		sysMax = max(sysMax, v, -v)
	}

	sum.Err2 = float64(s.err2) / float64(s.trials) / block.Size
	sum.SysErr = float64(sysMax) / float64(s.trials)

	return sum
}
