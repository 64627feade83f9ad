package reference

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-dct/internal/block"
)

// basis4 is the orthonormal 4-point DCT-II matrix.
var basis4 = newBasis4()

func newBasis4() *mat.Dense {
	c := mat.NewDense(4, 4, nil)

	for x := range 4 {
		c.Set(0, x, 0.5)

		for u := 1; u < 4; u++ {
			c.Set(u, x, math.Sqrt(0.5)*math.Cos(float64(u)*(float64(x)+0.5)*math.Pi/4))
		}
	}

	return c
}

// IDCT248 is the reference 2-4-8 inverse transform. Rows 2i and 2i+1 of the
// input hold the sum and difference of a field pair: they are recombined by
// a butterfly, each row gets an 8-point IDCT, and the even and odd rows each
// get a 4-point IDCT down the columns. The result is clamped and rounded
// half to even into dst.
func IDCT248(dst *block.Pixels, src *block.Block) {
	s := 0.5 * math.Sqrt2

	bf := mat.NewDense(n, n, nil)
	for i := range 4 {
		for j := range n {
			a := float64(src[8*(2*i)+j])
			b := float64(src[8*(2*i+1)+j])
			bf.Set(2*i, j, (a+b)*s)
			bf.Set(2*i+1, j, (a-b)*s)
		}
	}

	// Rows: R = BF * C8.
	var rows mat.Dense
	rows.Mul(bf, basis)

	// Columns: top field rows 0,2,4,6 and bottom field rows 1,3,5,7.
	top := mat.NewDense(4, n, nil)
	bottom := mat.NewDense(4, n, nil)

	for k := range 4 {
		top.SetRow(k, mat.Row(nil, 2*k, &rows))
		bottom.SetRow(k, mat.Row(nil, 2*k+1, &rows))
	}

	var topOut, bottomOut mat.Dense
	topOut.Mul(basis4.T(), top)
	bottomOut.Mul(basis4.T(), bottom)

	for j := range 4 {
		for i := range n {
			dst[8*(2*j)+i] = roundPixel(topOut.At(j, i))
			dst[8*(2*j+1)+i] = roundPixel(bottomOut.At(j, i))
		}
	}
}

func roundPixel(v float64) uint8 {
	switch {
	case v < 0:
		v = 0
	case v > 255:
		v = 255
	}

	return uint8(math.RoundToEven(v))
}
