package algodct

import (
	"github.com/cwbudde/algo-dct/internal/block"
	"github.com/cwbudde/algo-dct/internal/cpu"
	"github.com/cwbudde/algo-dct/internal/vector"
)

// Block is an 8x8 coefficient block in row-major order.
// The canonical definition is in internal/block.
type Block = block.Block

// Policy selects how test blocks are generated.
// The canonical definition is in internal/vector.
type Policy = vector.Policy

// Test policies, numbered as on the command line.
const (
	PolicyDense    = vector.Dense
	PolicySparse   = vector.Sparse
	PolicyBoundary = vector.Boundary
)

// Features describes the CPU capabilities used to select kernels.
// The canonical definition is in internal/cpu.
type Features = cpu.Features
