// Package vector generates the reproducible test blocks fed to the kernels.
package vector

import (
	"fmt"

	"github.com/cwbudde/algo-dct/internal/block"
	"github.com/cwbudde/algo-dct/internal/prng"
	"github.com/cwbudde/algo-dct/internal/reference"
)

// DefaultSeed seeds every session so runs are comparable across machines.
const DefaultSeed = 1

// Policy selects the shape of generated blocks.
type Policy int

const (
	// Dense draws every coefficient uniformly from [-256, 256).
	Dense Policy = iota
	// Sparse sets one to ten random positions to values in [-256, 256).
	Sparse
	// Boundary sets block[0] in [-2048, 2048) and block[63] to the inverted
	// parity of block[0]. This is the mismatch-control edge case.
	Boundary
)

func (p Policy) String() string {
	switch p {
	case Dense:
		return "dense"
	case Sparse:
		return "sparse"
	case Boundary:
		return "boundary"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// Valid reports whether p is a defined policy.
func (p Policy) Valid() bool {
	return p >= Dense && p <= Boundary
}

// Generator produces blocks for one test session.
//
// The same generator feeds the correctness trials and then the speed
// vector, so the speed input depends on how many trials ran first.
type Generator struct {
	rng     *prng.LFG
	policy  Policy
	inverse bool
}

// NewGenerator returns a generator for policy. When inverse is set, Next
// shapes Dense and Boundary blocks into plausible coefficient input.
func NewGenerator(seed uint32, policy Policy, inverse bool) *Generator {
	return &Generator{
		rng:     prng.New(seed),
		policy:  policy,
		inverse: inverse,
	}
}

// Raw overwrites dst with a block drawn under the policy, without shaping.
func (g *Generator) Raw(dst *block.Block) {
	dst.Clear()

	switch g.policy {
	case Dense:
		for i := range dst {
			dst[i] = g.rng.Range(-256, 512)
		}
	case Sparse:
		k := int(g.rng.Uint32()%10) + 1
		for range k {
			pos := g.rng.Uint32() % block.Size
			dst[pos] = g.rng.Range(-256, 512)
		}
	case Boundary:
		dst[0] = g.rng.Range(-2048, 4096)
		dst[63] = (dst[0] & 1) ^ 1
	}
}

// Next overwrites dst with the next correctness-test block.
func (g *Generator) Next(dst *block.Block) {
	g.Raw(dst)

	if g.inverse && g.policy != Sparse {
		shape(dst)
	}
}

// shape turns noise into coefficients with realistic statistics: the
// reference forward transform followed by a 3-bit arithmetic shift.
func shape(b *block.Block) {
	reference.FDCT(b)

	for i := range b {
		b[i] >>= 3
	}
}

// Speed overwrites dst with the block timed by the speed benchmark. Dense
// mirrors the correctness input; the other policies use four leading
// values in [-256, 256) and zeros elsewhere.
func (g *Generator) Speed(dst *block.Block) {
	dst.Clear()

	switch g.policy {
	case Dense:
		for i := range dst {
			dst[i] = g.rng.Range(-256, 512)
		}

		if g.inverse {
			shape(dst)
		}
	default:
		for i := range 4 {
			dst[i] = g.rng.Range(-256, 512)
		}
	}
}

// Dct248 overwrites dst with a 2-4-8 test block: values in [-128, 128)
// with the DC lifted by 1024 to land mid-range after reconstruction.
func (g *Generator) Dct248(dst *block.Block) {
	for i := range dst {
		dst[i] = g.rng.Range(-128, 256)
	}

	dst[0] += 1024
}
