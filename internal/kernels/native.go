package kernels

import (
	"github.com/cwbudde/algo-dct/internal/block"
	"github.com/cwbudde/algo-dct/internal/layout"
)

// nativeKernel runs a canonical-order kernel on coefficients stored in a
// reordered layout, the way SIMD kernels consume their input. It keeps the
// gathered block as working state until Reset.
type nativeKernel struct {
	tag   layout.Tag
	inner Func
	work  block.Block
	dirty bool
}

func newNative(tag layout.Tag, inner Func) *nativeKernel {
	return &nativeKernel{tag: tag, inner: inner}
}

// nativeFactory returns a constructor for native-order wrappers of inner.
func nativeFactory(tag layout.Tag, inner Func) func() Kernel {
	return func() Kernel {
		return newNative(tag, inner)
	}
}

func (k *nativeKernel) Transform(b *block.Block) {
	layout.ToCanonical(k.tag, &k.work, b)
	k.inner(&k.work)
	layout.ToNative(k.tag, b, &k.work)
	k.dirty = true
}

// Reset clears the working block.
func (k *nativeKernel) Reset() {
	k.work.Clear()
	k.dirty = false
}

// Dirty reports whether state is left over from the last Transform.
func (k *nativeKernel) Dirty() bool {
	return k.dirty
}
