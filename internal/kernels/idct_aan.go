package kernels

import (
	"math"

	"github.com/cwbudde/algo-dct/internal/block"
)

// aanPrescale[i] = s(u) * s(v) / 8, the factor folded into the input of
// the AAN inverse so its output needs no post-scale.
var aanPrescale = func() (p [block.Size]float64) {
	var s [8]float64

	s[0] = 1
	for k := 1; k < 8; k++ {
		s[k] = math.Sqrt2 * math.Cos(float64(k)*math.Pi/16)
	}

	for i := range p {
		p[i] = s[i>>3] * s[i&7] / 8
	}

	return p
}()

// FloatAANIDCT is the floating-point AAN inverse DCT.
func FloatAANIDCT(b *block.Block) {
	var d [block.Size]float64
	for i, v := range b {
		d[i] = float64(v) * aanPrescale[i]
	}

	for r := 0; r < block.Size; r += 8 {
		aanInverseFloat(d[r:r+8], 1)
	}

	for c := range 8 {
		aanInverseFloat(d[c:], 8)
	}

	for i, v := range d {
		b[i] = int16(math.Floor(v + 0.5))
	}
}

func aanInverseFloat(d []float64, s int) {
	// Even part.
	tmp0, tmp1, tmp2, tmp3 := d[0*s], d[2*s], d[4*s], d[6*s]

	tmp10 := tmp0 + tmp2
	tmp11 := tmp0 - tmp2
	tmp13 := tmp1 + tmp3
	tmp12 := (tmp1-tmp3)*1.414213562 - tmp13

	tmp0 = tmp10 + tmp13
	tmp3 = tmp10 - tmp13
	tmp1 = tmp11 + tmp12
	tmp2 = tmp11 - tmp12

	// Odd part.
	tmp4, tmp5, tmp6, tmp7 := d[1*s], d[3*s], d[5*s], d[7*s]

	z13 := tmp6 + tmp5
	z10 := tmp6 - tmp5
	z11 := tmp4 + tmp7
	z12 := tmp4 - tmp7

	tmp7 = z11 + z13
	tmp11 = (z11 - z13) * 1.414213562

	z5 := (z10 + z12) * 1.847759065
	tmp10 = 1.082392200*z12 - z5
	tmp12 = -2.613125930*z10 + z5

	tmp6 = tmp12 - tmp7
	tmp5 = tmp11 - tmp6
	tmp4 = tmp10 + tmp5

	d[0*s] = tmp0 + tmp7
	d[7*s] = tmp0 - tmp7
	d[1*s] = tmp1 + tmp6
	d[6*s] = tmp1 - tmp6
	d[2*s] = tmp2 + tmp5
	d[5*s] = tmp2 - tmp5
	d[4*s] = tmp3 + tmp4
	d[3*s] = tmp3 - tmp4
}
