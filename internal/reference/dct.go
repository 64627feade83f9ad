// Package reference holds the floating-point transforms every candidate
// kernel is measured against.
//
// The 8x8 DCT is computed as a pair of dense matrix products with the
// orthonormal DCT-II basis C: forward Y = 8*C*X*C^T, inverse Y = C^T*X*C.
// The factor 8 matches the output scale of integer JPEG-style forward
// transforms.
package reference

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-dct/internal/block"
)

const n = 8

// basis is the orthonormal 8-point DCT-II matrix, C[u][x].
var basis = newBasis()

func newBasis() *mat.Dense {
	c := mat.NewDense(n, n, nil)

	for x := range n {
		c.Set(0, x, math.Sqrt(0.125))

		for u := 1; u < n; u++ {
			c.Set(u, x, 0.5*math.Cos(float64(u)*(float64(x)+0.5)*math.Pi/n))
		}
	}

	return c
}

// Basis returns a copy of the DCT-II basis matrix.
func Basis() *mat.Dense {
	return mat.DenseCopyOf(basis)
}

func load(b *block.Block) *mat.Dense {
	data := make([]float64, block.Size)
	for i, v := range b {
		data[i] = float64(v)
	}

	return mat.NewDense(n, n, data)
}

// FDCT is the reference forward transform, in place, canonical order.
// Results are rounded half up with a small bias below one half.
func FDCT(b *block.Block) {
	var tmp, out mat.Dense

	tmp.Mul(basis, load(b))
	tmp.Scale(8, &tmp)
	out.Mul(&tmp, basis.T())

	for i := range b {
		b[i] = int16(math.Floor(out.At(i/n, i%n) + 0.499999999999))
	}
}

// IDCT is the reference inverse transform, in place, canonical order.
func IDCT(b *block.Block) {
	var tmp, out mat.Dense

	tmp.Mul(basis.T(), load(b))
	out.Mul(&tmp, basis)

	for i := range b {
		b[i] = int16(math.Floor(out.At(i/n, i%n) + 0.5))
	}
}
