package kernels

import "github.com/cwbudde/algo-dct/internal/block"

// Loeffler-Ligtenberg-Moschytz integer transforms with 13-bit constants.
// The row pass keeps two extra fraction bits for the column pass.

const (
	llmConstBits = 13
	llmPass1Bits = 2

	fix0_298631336 = 2446
	fix0_390180644 = 3196
	fix0_541196100 = 4433
	fix0_765366865 = 6270
	fix0_899976223 = 7373
	fix1_175875602 = 9633
	fix1_501321110 = 12299
	fix1_847759065 = 15137
	fix1_961570560 = 16069
	fix2_053119869 = 16819
	fix2_562915447 = 20995
	fix3_072711026 = 25172
)

func descale(x int32, n uint) int32 {
	return (x + 1<<(n-1)) >> n
}

// LLMFDCT is the accurate integer forward DCT. Its output carries the same
// factor-of-8 scale as reference.FDCT.
func LLMFDCT(b *block.Block) {
	for r := 0; r < block.Size; r += 8 {
		llmForward(b[r:r+8], 1, true)
	}

	for c := range 8 {
		llmForward(b[c:], 8, false)
	}
}

func llmForward(d []int16, s int, rows bool) {
	tmp0 := int32(d[0*s]) + int32(d[7*s])
	tmp7 := int32(d[0*s]) - int32(d[7*s])
	tmp1 := int32(d[1*s]) + int32(d[6*s])
	tmp6 := int32(d[1*s]) - int32(d[6*s])
	tmp2 := int32(d[2*s]) + int32(d[5*s])
	tmp5 := int32(d[2*s]) - int32(d[5*s])
	tmp3 := int32(d[3*s]) + int32(d[4*s])
	tmp4 := int32(d[3*s]) - int32(d[4*s])

	tmp10 := tmp0 + tmp3
	tmp13 := tmp0 - tmp3
	tmp11 := tmp1 + tmp2
	tmp12 := tmp1 - tmp2

	shift := uint(llmConstBits + llmPass1Bits)
	if rows {
		shift = llmConstBits - llmPass1Bits
		d[0*s] = int16((tmp10 + tmp11) << llmPass1Bits)
		d[4*s] = int16((tmp10 - tmp11) << llmPass1Bits)
	} else {
		d[0*s] = int16(descale(tmp10+tmp11, llmPass1Bits))
		d[4*s] = int16(descale(tmp10-tmp11, llmPass1Bits))
	}

	z1 := (tmp12 + tmp13) * fix0_541196100
	d[2*s] = int16(descale(z1+tmp13*fix0_765366865, shift))
	d[6*s] = int16(descale(z1-tmp12*fix1_847759065, shift))

	z1 = tmp4 + tmp7
	z2 := tmp5 + tmp6
	z3 := tmp4 + tmp6
	z4 := tmp5 + tmp7
	z5 := (z3 + z4) * fix1_175875602

	tmp4 *= fix0_298631336
	tmp5 *= fix2_053119869
	tmp6 *= fix3_072711026
	tmp7 *= fix1_501321110
	z1 *= -fix0_899976223
	z2 *= -fix2_562915447
	z3 *= -fix1_961570560
	z4 *= -fix0_390180644

	z3 += z5
	z4 += z5

	d[7*s] = int16(descale(tmp4+z1+z3, shift))
	d[5*s] = int16(descale(tmp5+z2+z4, shift))
	d[3*s] = int16(descale(tmp6+z2+z3, shift))
	d[1*s] = int16(descale(tmp7+z1+z4, shift))
}

// LLMIDCT is the accurate integer inverse DCT.
func LLMIDCT(b *block.Block) {
	for r := 0; r < block.Size; r += 8 {
		row := b[r : r+8]
		if row[1]|row[2]|row[3]|row[4]|row[5]|row[6]|row[7] == 0 {
			dc := int16(int32(row[0]) << llmPass1Bits)
			for i := range row {
				row[i] = dc
			}

			continue
		}

		llmInverse(row, 1, llmConstBits-llmPass1Bits)
	}

	// The extra 3 bits divide by 8 for the 2-D normalization.
	for c := range 8 {
		llmInverse(b[c:], 8, llmConstBits+llmPass1Bits+3)
	}
}

func llmInverse(d []int16, s int, shift uint) {
	d0, d1, d2, d3 := int32(d[0*s]), int32(d[1*s]), int32(d[2*s]), int32(d[3*s])
	d4, d5, d6, d7 := int32(d[4*s]), int32(d[5*s]), int32(d[6*s]), int32(d[7*s])

	// Even part.
	z1 := (d2 + d6) * fix0_541196100
	tmp2 := z1 - d6*fix1_847759065
	tmp3 := z1 + d2*fix0_765366865

	tmp0 := (d0 + d4) << llmConstBits
	tmp1 := (d0 - d4) << llmConstBits

	tmp10 := tmp0 + tmp3
	tmp13 := tmp0 - tmp3
	tmp11 := tmp1 + tmp2
	tmp12 := tmp1 - tmp2

	// Odd part.
	tmp0, tmp1, tmp2, tmp3 = d7, d5, d3, d1

	z1 = tmp0 + tmp3
	z2 := tmp1 + tmp2
	z3 := tmp0 + tmp2
	z4 := tmp1 + tmp3
	z5 := (z3 + z4) * fix1_175875602

	tmp0 *= fix0_298631336
	tmp1 *= fix2_053119869
	tmp2 *= fix3_072711026
	tmp3 *= fix1_501321110
	z1 *= -fix0_899976223
	z2 *= -fix2_562915447
	z3 *= -fix1_961570560
	z4 *= -fix0_390180644

	z3 += z5
	z4 += z5

	tmp0 += z1 + z3
	tmp1 += z2 + z4
	tmp2 += z2 + z3
	tmp3 += z1 + z4

	d[0*s] = int16(descale(tmp10+tmp3, shift))
	d[7*s] = int16(descale(tmp10-tmp3, shift))
	d[1*s] = int16(descale(tmp11+tmp2, shift))
	d[6*s] = int16(descale(tmp11-tmp2, shift))
	d[2*s] = int16(descale(tmp12+tmp1, shift))
	d[5*s] = int16(descale(tmp12-tmp1, shift))
	d[3*s] = int16(descale(tmp13+tmp0, shift))
	d[4*s] = int16(descale(tmp13-tmp0, shift))
}
