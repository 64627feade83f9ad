//go:build amd64

package kernels

import (
	"github.com/cwbudde/algo-dct/internal/cpu"
	"github.com/cwbudde/algo-dct/internal/layout"
)

// registerArch adds the inverse kernels whose input layouts follow the SSE2
// register shuffles.
func registerArch() {
	register(Descriptor{
		Name:      "SIMPLE-PERM",
		Kind:      Inverse,
		NewKernel: nativeFactory(layout.SimplePermutation, SimpleIDCT),
		Layout:    layout.SimplePermutation,
		Requires:  cpu.SSE2,
	})
	register(Descriptor{
		Name:      "SIMPLE-ROWIL",
		Kind:      Inverse,
		NewKernel: nativeFactory(layout.RowInterleave, SimpleIDCT),
		Layout:    layout.RowInterleave,
		Requires:  cpu.SSE2,
	})
}
