package harness

import (
	"github.com/cwbudde/algo-dct/internal/block"
	"github.com/cwbudde/algo-dct/internal/kernels"
	"github.com/cwbudde/algo-dct/internal/vector"
)

// Overflow records a pixel whose candidate and reference values differ by
// the full 8-bit range, which points at an arithmetic overflow rather than
// rounding.
type Overflow struct {
	Trial     int
	Index     int
	Candidate uint8
	Reference uint8
}

// Dct248Result summarizes a 2-4-8 session.
type Dct248Result struct {
	Trials int
	// ErrInf is the largest absolute pixel error.
	ErrInf int
	// Overflows lists every full-range mismatch in the order found.
	Overflows []Overflow
	// Saturated counts candidate pixels that landed exactly on 255.
	Saturated int
}

// Dct248 compares cand against ref on trials blocks drawn from gen. On
// return ws.Original holds the last input, which the speed test reuses.
func Dct248(ws *Workspace, cand, ref kernels.Putter, gen *vector.Generator, trials int) Dct248Result {
	res := Dct248Result{Trials: trials}

	for it := range trials {
		trial248(ws, cand, ref, gen, it, &res)
	}

	return res
}

func trial248(ws *Workspace, cand, ref kernels.Putter, gen *vector.Generator, it int, res *Dct248Result) {
	gen.Dct248(&ws.Original)

	release := acquire(cand)
	defer release()

	ws.Work = ws.Original
	ref.Put(&ws.RefPixels, &ws.Work)

	ws.Work = ws.Original
	cand.Put(&ws.Pixels, &ws.Work)

	for i := range ws.Pixels {
		got, want := ws.Pixels[i], ws.RefPixels[i]

		v := block.Abs(int(got) - int(want))
		if v == 255 {
			res.Overflows = append(res.Overflows, Overflow{
				Trial:     it,
				Index:     i,
				Candidate: got,
				Reference: want,
			})
		}

		if got == 255 {
			res.Saturated++
		}

		res.ErrInf = max(res.ErrInf, v)
	}
}
