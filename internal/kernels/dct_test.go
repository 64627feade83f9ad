package kernels

import (
	"testing"

	"github.com/cwbudde/algo-dct/internal/block"
	"github.com/cwbudde/algo-dct/internal/layout"
	"github.com/cwbudde/algo-dct/internal/prng"
	"github.com/cwbudde/algo-dct/internal/reference"
)

func randomBlock(g *prng.LFG, lo int, n uint32) block.Block {
	var b block.Block
	for i := range b {
		b[i] = g.Range(lo, n)
	}

	return b
}

func maxAbsDiff(a, b *block.Block) int {
	m := 0
	for i := range a {
		m = max(m, block.Abs(int(a[i])-int(b[i])))
	}

	return m
}

func TestForwardKernelsAccuracy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		kernel Func
		scaled bool
		tol    int
	}{
		{"LLM", LLMFDCT, false, 2},
		{"FloatAAN", FloatAANFDCT, true, 8},
		{"FastAAN", FastAANFDCT, true, 48},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			g := prng.New(1)

			for trial := range 300 {
				src := randomBlock(g, -256, 512)

				got := src
				tt.kernel(&got)

				if tt.scaled {
					layout.Rescale(&got)
				}

				want := src
				reference.FDCT(&want)

				if d := maxAbsDiff(&got, &want); d > tt.tol {
					t.Fatalf("trial %d: max error %d > %d", trial, d, tt.tol)
				}
			}
		})
	}
}

func TestInverseKernelsAccuracy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		kernel Func
	}{
		{"Simple", SimpleIDCT},
		{"LLM", LLMIDCT},
		{"FloatAAN", FloatAANIDCT},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			g := prng.New(1)

			for trial := range 300 {
				src := randomBlock(g, -256, 512)
				reference.FDCT(&src)

				for i := range src {
					src[i] >>= 3
				}

				got := src
				tt.kernel(&got)

				want := src
				reference.IDCT(&want)

				if d := maxAbsDiff(&got, &want); d > 2 {
					t.Fatalf("trial %d: max error %d", trial, d)
				}
			}
		})
	}
}

func TestKernelsZeroBlock(t *testing.T) {
	t.Parallel()

	kernels := map[string]Func{
		"FloatAANFDCT": FloatAANFDCT,
		"FastAANFDCT":  FastAANFDCT,
		"LLMFDCT":      LLMFDCT,
		"SimpleIDCT":   SimpleIDCT,
		"LLMIDCT":      LLMIDCT,
		"FloatAANIDCT": FloatAANIDCT,
	}

	for name, k := range kernels {
		var b block.Block

		k(&b)

		if b != (block.Block{}) {
			t.Errorf("%s(0) = %v", name, b)
		}
	}
}

func TestSimpleIDCTDCOnly(t *testing.T) {
	t.Parallel()

	var b block.Block
	b[0] = 800

	SimpleIDCT(&b)

	for i, v := range b {
		if v != 100 {
			t.Fatalf("sample %d = %d, want 100", i, v)
		}
	}
}

// TestInverseKernelsFullRangeImpulse feeds every shaped boundary block:
// a spatial impulse of up to 2048 at the origin, which drives the column
// pass to the edge of 32-bit range.
func TestInverseKernelsFullRangeImpulse(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name   string
		kernel Func
	}{
		{"Simple", SimpleIDCT},
		{"LLM", LLMIDCT},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			for v := -2048; v < 2048; v++ {
				var src block.Block
				src[0] = int16(v)
				src[63] = int16(v&1) ^ 1

				reference.FDCT(&src)

				for i := range src {
					src[i] >>= 3
				}

				got := src
				tt.kernel(&got)

				want := src
				reference.IDCT(&want)

				if d := maxAbsDiff(&got, &want); d > 1 {
					t.Fatalf("dc %d: max error %d (got[0]=%d want[0]=%d)", v, d, got[0], want[0])
				}
			}
		})
	}
}

func TestSimpleIDCT248Put(t *testing.T) {
	t.Parallel()

	g := prng.New(1)

	for trial := range 500 {
		src := randomBlock(g, -128, 256)
		src[0] += 1024

		var got, want block.Pixels

		in := src
		SimpleIDCT248Put(&got, &in)
		reference.IDCT248(&want, &src)

		for i := range got {
			if d := block.Abs(int(got[i]) - int(want[i])); d > 1 {
				t.Fatalf("trial %d pixel %d: got %d want %d", trial, i, got[i], want[i])
			}
		}
	}
}

func TestNativeKernelLayout(t *testing.T) {
	t.Parallel()

	for _, tag := range []layout.Tag{layout.BitReversedPair, layout.SimplePermutation, layout.RowInterleave, layout.PartialTranspose} {
		t.Run(tag.String(), func(t *testing.T) {
			t.Parallel()

			k := newNative(tag, SimpleIDCT)
			src := randomBlock(prng.New(11), -64, 128)

			var native, back block.Block

			layout.ToNative(tag, &native, &src)
			k.Transform(&native)
			layout.ToCanonical(tag, &back, &native)

			want := src
			SimpleIDCT(&want)

			if back != want {
				t.Errorf("native kernel output differs from canonical kernel")
			}

			if !k.Dirty() {
				t.Error("kernel not dirty after Transform")
			}

			k.Reset()

			if k.Dirty() || k.work != (block.Block{}) {
				t.Error("Reset left state behind")
			}
		})
	}
}

func BenchmarkSimpleIDCT(b *testing.B) {
	src := randomBlock(prng.New(1), -256, 512)

	for b.Loop() {
		blk := src
		SimpleIDCT(&blk)
	}
}

func BenchmarkLLMFDCT(b *testing.B) {
	src := randomBlock(prng.New(1), -256, 512)

	for b.Loop() {
		blk := src
		LLMFDCT(&blk)
	}
}
