// Package layout maps coefficients between canonical row-major order and
// the native order a kernel consumes.
//
// Every tag defines a permutation sigma over 0..63: canonical index i is
// stored at native index sigma(i). Tables for both directions are built at
// init and checked to be bijections.
package layout

import (
	"fmt"

	"github.com/cwbudde/algo-dct/internal/block"
)

// Tag identifies the coefficient order a kernel expects.
type Tag uint8

const (
	// Identity is canonical row-major order.
	Identity Tag = iota
	// BitReversedPair rotates the low three column bits: bit 0 moves to
	// bit 2 and bits 1-2 move down by one.
	BitReversedPair
	// SimplePermutation is a fixed table interleaving even and odd rows and
	// columns.
	SimplePermutation
	// RowInterleave reorders each row as 0,4,1,5,2,6,3,7. It lands on the
	// same positions as BitReversedPair but is defined per row.
	RowInterleave
	// PartialTranspose transposes each 4x4 quadrant.
	PartialTranspose
	// Scaled is canonical order whose output needs the AAN post-scale.
	Scaled

	numTags
)

var tagNames = [numTags]string{
	Identity:          "identity",
	BitReversedPair:   "bitrev-pair",
	SimplePermutation: "simple-perm",
	RowInterleave:     "row-interleave",
	PartialTranspose:  "partial-transpose",
	Scaled:            "scaled",
}

func (t Tag) String() string {
	if t < numTags {
		return tagNames[t]
	}

	return fmt.Sprintf("Tag(%d)", uint8(t))
}

// Tags returns every defined tag.
func Tags() []Tag {
	tags := make([]Tag, numTags)
	for i := range tags {
		tags[i] = Tag(i)
	}

	return tags
}

// Rescales reports whether output in this layout needs Rescale.
func (t Tag) Rescales() bool {
	return t == Scaled
}

// Reorders reports whether the tag permutes positions.
func (t Tag) Reorders() bool {
	return t != Identity && t != Scaled
}

var simplePermTable = [block.Size]uint8{
	0x00, 0x08, 0x04, 0x09, 0x01, 0x0C, 0x05, 0x0D,
	0x10, 0x18, 0x14, 0x19, 0x11, 0x1C, 0x15, 0x1D,
	0x20, 0x28, 0x24, 0x29, 0x21, 0x2C, 0x25, 0x2D,
	0x12, 0x1A, 0x16, 0x1B, 0x13, 0x1E, 0x17, 0x1F,
	0x02, 0x0A, 0x06, 0x0B, 0x03, 0x0E, 0x07, 0x0F,
	0x30, 0x38, 0x34, 0x39, 0x31, 0x3C, 0x35, 0x3D,
	0x22, 0x2A, 0x26, 0x2B, 0x23, 0x2E, 0x27, 0x2F,
	0x32, 0x3A, 0x36, 0x3B, 0x33, 0x3E, 0x37, 0x3F,
}

var rowInterleave = [8]int{0, 4, 1, 5, 2, 6, 3, 7}

// sigma returns the native index of canonical index i.
func sigma(t Tag, i int) int {
	switch t {
	case BitReversedPair:
		return (i & 0x38) | ((i & 6) >> 1) | ((i & 1) << 2)
	case SimplePermutation:
		return int(simplePermTable[i])
	case RowInterleave:
		return (i & 0x38) | rowInterleave[i&7]
	case PartialTranspose:
		return (i & 0x24) | ((i & 3) << 3) | ((i >> 3) & 3)
	default:
		return i
	}
}

var (
	forward [numTags][block.Size]uint8
	inverse [numTags][block.Size]uint8
)

func init() {
	for t := range numTags {
		var seen [block.Size]bool

		for i := range block.Size {
			j := sigma(t, i)
			if j < 0 || j >= block.Size || seen[j] {
				panic(fmt.Sprintf("layout: %v is not a permutation (index %d -> %d)", t, i, j))
			}

			seen[j] = true
			forward[t][i] = uint8(j)
			inverse[t][j] = uint8(i)
		}
	}
}

// Index returns the native position of canonical index i.
func (t Tag) Index(i int) int {
	return int(forward[t][i])
}

// CanonicalIndex returns the canonical position of native index j.
func (t Tag) CanonicalIndex(j int) int {
	return int(inverse[t][j])
}

// ToNative scatters canonical src into dst in native order.
// dst and src must not alias.
func ToNative(t Tag, dst, src *block.Block) {
	if !t.Reorders() {
		*dst = *src
		return
	}

	p := &forward[t]
	for i, v := range src {
		dst[p[i]] = v
	}
}

// ToCanonical gathers native src back into canonical dst.
// dst and src must not alias.
func ToCanonical(t Tag, dst, src *block.Block) {
	if !t.Reorders() {
		*dst = *src
		return
	}

	p := &forward[t]
	for i := range dst {
		dst[i] = src[p[i]]
	}
}
