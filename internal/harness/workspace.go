// Package harness runs candidate kernels against their references and
// times them.
//
// All runners are single-threaded. Scratch blocks live in a Workspace that
// each trial fully overwrites before reading, so a Workspace must not be
// shared between goroutines.
package harness

import (
	"github.com/cwbudde/algo-dct/internal/block"
	"github.com/cwbudde/algo-dct/internal/kernels"
)

// Workspace holds the scratch storage reused across trials.
type Workspace struct {
	// Original is the untouched generated input, canonical order.
	Original block.Block
	// Work is the candidate's block, native order.
	Work block.Block
	// Canonical is the candidate output mapped back to canonical order.
	Canonical block.Block
	// Ref is the reference output.
	Ref block.Block

	Pixels    block.Pixels
	RefPixels block.Pixels
}

// NewWorkspace returns a zeroed workspace.
func NewWorkspace() *Workspace {
	return &Workspace{}
}

// acquire enters a kernel's accelerated context and returns the release
// func that clears any state the kernel leaves behind. Callers defer the
// release so it runs on every exit path. k is a kernels.Kernel or a
// kernels.Putter.
func acquire(k any) (release func()) {
	if r, ok := k.(kernels.Resetter); ok {
		return r.Reset
	}

	return func() {}
}
