// Package kernels provides the candidate DCT/IDCT kernels and the registry
// of algorithms the harness iterates over.
//
// Each registered Descriptor pairs a candidate with the floating-point
// reference for its direction, the coefficient layout the candidate
// consumes, and the CPU capabilities it needs. Architecture-specific entries
// are added by build-tagged register_*.go files.
package kernels

import "github.com/cwbudde/algo-dct/internal/block"

// Kind is the transform direction.
type Kind uint8

const (
	Forward Kind = iota
	Inverse
)

// String returns the report label for the direction.
func (k Kind) String() string {
	if k == Inverse {
		return "IDCT"
	}

	return "DCT"
}

// Kernel transforms a block in place, in the kernel's native layout.
type Kernel interface {
	Transform(b *block.Block)
}

// Func adapts a plain function to Kernel.
type Func func(b *block.Block)

// Transform calls f(b).
func (f Func) Transform(b *block.Block) { f(b) }

// Resetter is implemented by kernels that keep working state between
// calls. The harness calls Reset after every use so leftover state cannot
// leak into the next kernel.
type Resetter interface {
	Reset()
}

// Putter reconstructs 8-bit pixels from a coefficient block. src may be
// used as scratch. Like a Kernel, a Putter may also be a Resetter.
type Putter interface {
	Put(dst *block.Pixels, src *block.Block)
}

// PutFunc adapts a plain function to Putter.
type PutFunc func(dst *block.Pixels, src *block.Block)

// Put calls f(dst, src).
func (f PutFunc) Put(dst *block.Pixels, src *block.Block) { f(dst, src) }
