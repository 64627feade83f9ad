// Package block defines the 8x8 coefficient and pixel blocks shared by the
// kernels and the test harness.
package block

// Size is the number of coefficients in a block.
const Size = 64

// Block is an 8x8 block of signed 16-bit coefficients in row-major order.
type Block [Size]int16

// Pixels is an 8x8 block of reconstructed 8-bit samples.
type Pixels [Size]uint8

// Clear zeroes every coefficient.
func (b *Block) Clear() {
	*b = Block{}
}

// ClampUint8 saturates v to [0, 255].
func ClampUint8(v int32) uint8 {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	default:
		return uint8(v)
	}
}

// Abs returns |v| for a coefficient difference.
func Abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// AANScales holds the AAN post-scale factors in Q14:
// 16384 * s(u) * s(v) with s(0) = 1 and s(k) = sqrt(2) * cos(k*pi/16).
var AANScales = [Size]int32{
	16384, 22725, 21407, 19266, 16384, 12873, 8867, 4520,
	22725, 31521, 29692, 26722, 22725, 17855, 12299, 6270,
	21407, 29692, 27969, 25172, 21407, 16819, 11585, 5906,
	19266, 26722, 25172, 22654, 19266, 15137, 10426, 5315,
	16384, 22725, 21407, 19266, 16384, 12873, 8867, 4520,
	12873, 17855, 16819, 15137, 12873, 10114, 6967, 3552,
	8867, 12299, 11585, 10426, 8867, 6967, 4799, 2446,
	4520, 6270, 5906, 5315, 4520, 3552, 2446, 1247,
}
