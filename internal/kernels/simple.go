package kernels

import "github.com/cwbudde/algo-dct/internal/block"

// Simple IDCT: a row/column integer inverse DCT with 16-bit cosine weights
// Wk = round(cos(k*pi/16) * sqrt(2) * 2^14), W4 reduced by one so the DC
// path cannot overflow.
const (
	w1 = 22725
	w2 = 21407
	w3 = 19266
	w4 = 16383
	w5 = 12873
	w6 = 8867
	w7 = 4520

	rowShift = 11
	colShift = 20
	dcShift  = 3
)

// SimpleIDCT is the simple integer inverse DCT, canonical order.
func SimpleIDCT(b *block.Block) {
	for r := 0; r < block.Size; r += 8 {
		simpleRow(b[r : r+8])
	}

	for c := range 8 {
		simpleCol(b[c:])
	}
}

// simpleRow transforms one row in place. Rows with only a DC term are
// filled directly.
func simpleRow(row []int16) {
	if row[1]|row[2]|row[3]|row[4]|row[5]|row[6]|row[7] == 0 {
		dc := int16(int32(row[0]) << dcShift)
		for i := range row {
			row[i] = dc
		}

		return
	}

	r0, r1, r2, r3 := int32(row[0]), int32(row[1]), int32(row[2]), int32(row[3])
	r4, r5, r6, r7 := int32(row[4]), int32(row[5]), int32(row[6]), int32(row[7])

	a0 := w4*r0 + 1<<(rowShift-1)
	a1, a2, a3 := a0, a0, a0

	a0 += w2 * r2
	a1 += w6 * r2
	a2 -= w6 * r2
	a3 -= w2 * r2

	b0 := w1*r1 + w3*r3
	b1 := w3*r1 - w7*r3
	b2 := w5*r1 - w1*r3
	b3 := w7*r1 - w5*r3

	if r4|r5|r6|r7 != 0 {
		a0 += w4*r4 + w6*r6
		a1 += -w4*r4 - w2*r6
		a2 += -w4*r4 + w2*r6
		a3 += w4*r4 - w6*r6

		b0 += w5*r5 + w7*r7
		b1 += -w1*r5 - w5*r7
		b2 += w7*r5 + w3*r7
		b3 += w3*r5 - w1*r7
	}

	row[0] = int16((a0 + b0) >> rowShift)
	row[7] = int16((a0 - b0) >> rowShift)
	row[1] = int16((a1 + b1) >> rowShift)
	row[6] = int16((a1 - b1) >> rowShift)
	row[2] = int16((a2 + b2) >> rowShift)
	row[5] = int16((a2 - b2) >> rowShift)
	row[3] = int16((a3 + b3) >> rowShift)
	row[4] = int16((a3 - b3) >> rowShift)
}

// simpleCol accumulates in 64 bits: a 2048-magnitude output needs about
// 2^31 before the final shift.
func simpleCol(col []int16) {
	c0, c1, c2, c3 := int64(col[0]), int64(col[8]), int64(col[16]), int64(col[24])
	c4, c5, c6, c7 := int64(col[32]), int64(col[40]), int64(col[48]), int64(col[56])

	a0 := w4 * (c0 + (1<<(colShift-1))/w4)
	a1, a2, a3 := a0, a0, a0

	a0 += w2*c2 + w4*c4 + w6*c6
	a1 += w6*c2 - w4*c4 - w2*c6
	a2 += -w6*c2 - w4*c4 + w2*c6
	a3 += -w2*c2 + w4*c4 - w6*c6

	b0 := w1*c1 + w3*c3 + w5*c5 + w7*c7
	b1 := w3*c1 - w7*c3 - w1*c5 - w5*c7
	b2 := w5*c1 - w1*c3 + w7*c5 + w3*c7
	b3 := w7*c1 - w5*c3 + w3*c5 - w1*c7

	col[0] = int16((a0 + b0) >> colShift)
	col[8] = int16((a1 + b1) >> colShift)
	col[16] = int16((a2 + b2) >> colShift)
	col[24] = int16((a3 + b3) >> colShift)
	col[32] = int16((a3 - b3) >> colShift)
	col[40] = int16((a2 - b2) >> colShift)
	col[48] = int16((a1 - b1) >> colShift)
	col[56] = int16((a0 - b0) >> colShift)
}

// 4-point column constants for the 2-4-8 transform, Q12.
const (
	cnShift = 12
	c4a     = 2676 // round(0.6532814824 * 2^12)
	c4b     = 1108 // round(0.2705980501 * 2^12)
	c4Shift = 4 + 1 + 12
)

// SimpleIDCT248Put reconstructs pixels from a 2-4-8 coefficient block.
// Row pairs (2i, 2i+1) hold field sums and differences; the block is
// butterflied back, each row gets the 8-point simple IDCT, and each field
// gets a 4-point IDCT down the columns with saturating stores. src is
// overwritten.
func SimpleIDCT248Put(dst *block.Pixels, src *block.Block) {
	for i := 0; i < block.Size; i += 16 {
		for k := range 8 {
			a0, a1 := src[i+k], src[i+8+k]
			src[i+k] = a0 + a1
			src[i+8+k] = a0 - a1
		}
	}

	for r := 0; r < block.Size; r += 8 {
		simpleRow(src[r : r+8])
	}

	for i := range 8 {
		idct4ColPut(dst[i:], src[i:])
		idct4ColPut(dst[8+i:], src[8+i:])
	}
}

// idct4ColPut runs a 4-point IDCT over col[0], col[16], col[32], col[48]
// and stores to dest rows 0, 2, 4 and 6 (stride 16).
func idct4ColPut(dest []uint8, col []int16) {
	a0, a1, a2, a3 := int32(col[0]), int32(col[16]), int32(col[32]), int32(col[48])

	e0 := (a0+a2)<<(cnShift-1) + 1<<(c4Shift-1)
	e2 := (a0-a2)<<(cnShift-1) + 1<<(c4Shift-1)
	o1 := a1*c4a + a3*c4b
	o3 := a1*c4b - a3*c4a

	dest[0] = block.ClampUint8((e0 + o1) >> c4Shift)
	dest[16] = block.ClampUint8((e2 + o3) >> c4Shift)
	dest[32] = block.ClampUint8((e2 - o3) >> c4Shift)
	dest[48] = block.ClampUint8((e0 - o1) >> c4Shift)
}
