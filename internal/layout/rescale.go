package layout

import "github.com/cwbudde/algo-dct/internal/block"

// ScaleBits is the fixed-point precision of the deferred AAN rescale.
const ScaleBits = 12

// scales[i] = 8 * 2^(ScaleBits+11) / AANScales[i].
var scales [block.Size]int64

func init() {
	for i, s := range block.AANScales {
		scales[i] = 8 * (1 << (ScaleBits + 11)) / int64(s)
	}
}

// Scale returns the integer rescale factor applied at position i.
func Scale(i int) int64 {
	return scales[i]
}

// Rescale renormalizes the output of a kernel that defers its AAN
// post-scale to the caller: v = (v * scale[i]) >> ScaleBits.
func Rescale(b *block.Block) {
	for i, v := range b {
		b[i] = int16((int64(v) * scales[i]) >> ScaleBits)
	}
}
