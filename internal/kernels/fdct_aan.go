package kernels

import (
	"math"

	"github.com/cwbudde/algo-dct/internal/block"
)

// AAN forward DCT. Both variants leave the per-coefficient AAN scale in
// their output; the caller applies layout.Rescale to compare against the
// reference.

// FloatAANFDCT is the floating-point AAN forward DCT.
func FloatAANFDCT(b *block.Block) {
	var d [block.Size]float64
	for i, v := range b {
		d[i] = float64(v)
	}

	for r := 0; r < block.Size; r += 8 {
		aanForwardFloat(d[r:r+8], 1)
	}

	for c := range 8 {
		aanForwardFloat(d[c:], 8)
	}

	for i, v := range d {
		b[i] = int16(math.RoundToEven(v))
	}
}

func aanForwardFloat(d []float64, s int) {
	tmp0 := d[0*s] + d[7*s]
	tmp7 := d[0*s] - d[7*s]
	tmp1 := d[1*s] + d[6*s]
	tmp6 := d[1*s] - d[6*s]
	tmp2 := d[2*s] + d[5*s]
	tmp5 := d[2*s] - d[5*s]
	tmp3 := d[3*s] + d[4*s]
	tmp4 := d[3*s] - d[4*s]

	// Even part.
	tmp10 := tmp0 + tmp3
	tmp13 := tmp0 - tmp3
	tmp11 := tmp1 + tmp2
	tmp12 := tmp1 - tmp2

	d[0*s] = tmp10 + tmp11
	d[4*s] = tmp10 - tmp11

	z1 := (tmp12 + tmp13) * 0.707106781
	d[2*s] = tmp13 + z1
	d[6*s] = tmp13 - z1

	// Odd part.
	tmp10 = tmp4 + tmp5
	tmp11 = tmp5 + tmp6
	tmp12 = tmp6 + tmp7

	z5 := (tmp10 - tmp12) * 0.382683433
	z2 := 0.541196100*tmp10 + z5
	z4 := 1.306562965*tmp12 + z5
	z3 := tmp11 * 0.707106781

	z11 := tmp7 + z3
	z13 := tmp7 - z3

	d[5*s] = z13 + z2
	d[3*s] = z13 - z2
	d[1*s] = z11 + z4
	d[7*s] = z11 - z4
}

// 8-bit fixed-point rotation constants.
const (
	fastFix0_382683433 = 98
	fastFix0_541196100 = 139
	fastFix0_707106781 = 181
	fastFix1_306562965 = 334
)

// FastAANFDCT is the AAN forward DCT with 8-bit fixed-point constants and
// truncating multiplies. It trades accuracy for speed.
func FastAANFDCT(b *block.Block) {
	var d [block.Size]int32
	for i, v := range b {
		d[i] = int32(v)
	}

	for r := 0; r < block.Size; r += 8 {
		aanForwardFixed(d[r:r+8], 1)
	}

	for c := range 8 {
		aanForwardFixed(d[c:], 8)
	}

	for i, v := range d {
		b[i] = int16(v)
	}
}

func mul8(v, c int32) int32 {
	return (v * c) >> 8
}

func aanForwardFixed(d []int32, s int) {
	tmp0 := d[0*s] + d[7*s]
	tmp7 := d[0*s] - d[7*s]
	tmp1 := d[1*s] + d[6*s]
	tmp6 := d[1*s] - d[6*s]
	tmp2 := d[2*s] + d[5*s]
	tmp5 := d[2*s] - d[5*s]
	tmp3 := d[3*s] + d[4*s]
	tmp4 := d[3*s] - d[4*s]

	tmp10 := tmp0 + tmp3
	tmp13 := tmp0 - tmp3
	tmp11 := tmp1 + tmp2
	tmp12 := tmp1 - tmp2

	d[0*s] = tmp10 + tmp11
	d[4*s] = tmp10 - tmp11

	z1 := mul8(tmp12+tmp13, fastFix0_707106781)
	d[2*s] = tmp13 + z1
	d[6*s] = tmp13 - z1

	tmp10 = tmp4 + tmp5
	tmp11 = tmp5 + tmp6
	tmp12 = tmp6 + tmp7

	z5 := mul8(tmp10-tmp12, fastFix0_382683433)
	z2 := mul8(tmp10, fastFix0_541196100) + z5
	z4 := mul8(tmp12, fastFix1_306562965) + z5
	z3 := mul8(tmp11, fastFix0_707106781)

	z11 := tmp7 + z3
	z13 := tmp7 - z3

	d[5*s] = z13 + z2
	d[3*s] = z13 - z2
	d[1*s] = z11 + z4
	d[7*s] = z11 - z4
}
