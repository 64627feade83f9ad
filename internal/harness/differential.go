package harness

import (
	"github.com/cwbudde/algo-dct/internal/kernels"
	"github.com/cwbudde/algo-dct/internal/layout"
	"github.com/cwbudde/algo-dct/internal/vector"
)

// DefaultTrials is the number of correctness trials per algorithm.
const DefaultTrials = 20000

// Differential runs trials blocks from gen through d's candidate and
// reference and returns the error summary. The candidate is built once
// for the session and is not shared with other callers.
func Differential(ws *Workspace, d kernels.Descriptor, gen *vector.Generator, trials int) Summary {
	var st Stats

	k := d.NewCandidate()

	for range trials {
		trial(ws, k, d, gen, &st)
	}

	return st.Summary()
}

func trial(ws *Workspace, k kernels.Kernel, d kernels.Descriptor, gen *vector.Generator, st *Stats) {
	gen.Next(&ws.Original)

	release := acquire(k)
	defer release()

	layout.ToNative(d.Layout, &ws.Work, &ws.Original)
	k.Transform(&ws.Work)

	if d.Layout.Rescales() {
		layout.Rescale(&ws.Work)
	}

	ws.Ref = ws.Original
	d.Reference.Transform(&ws.Ref)

	layout.ToCanonical(d.Layout, &ws.Canonical, &ws.Work)
	st.Add(&ws.Canonical, &ws.Ref)
}
