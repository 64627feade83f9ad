//go:build arm64

package kernels

import (
	"github.com/cwbudde/algo-dct/internal/cpu"
	"github.com/cwbudde/algo-dct/internal/layout"
)

// registerArch adds the NEON-layout inverse kernel, which reads each 4x4
// quadrant transposed.
func registerArch() {
	register(Descriptor{
		Name:      "SIMPLE-PARTTRANS",
		Kind:      Inverse,
		NewKernel: nativeFactory(layout.PartialTranspose, SimpleIDCT),
		Layout:    layout.PartialTranspose,
		Requires:  cpu.NEON,
	})
}
