package kernels

import (
	"slices"

	"github.com/samber/lo"

	"github.com/cwbudde/algo-dct/internal/cpu"
	"github.com/cwbudde/algo-dct/internal/layout"
	"github.com/cwbudde/algo-dct/internal/reference"
)

// Descriptor describes one algorithm under test. Descriptors are built
// once at init and never modified.
type Descriptor struct {
	// Name is the label printed in reports, e.g. "SIMPLE-C".
	Name string

	Kind Kind

	// Candidate is the kernel under test. It consumes Layout order and
	// must be stateless; use NewKernel for kernels that keep state.
	Candidate Kernel

	// NewKernel, when set, builds a private Candidate for one session.
	NewKernel func() Kernel

	// Reference is the ground truth. It always runs in canonical order.
	Reference Kernel

	Layout layout.Tag

	// Requires lists the CPU capabilities Candidate needs. Zero means none.
	Requires cpu.Mask
}

// NewCandidate returns the kernel one session should run. Stateful
// kernels are built fresh on every call, so concurrent sessions never
// share state.
func (d Descriptor) NewCandidate() Kernel {
	if d.NewKernel != nil {
		return d.NewKernel()
	}

	return d.Candidate
}

// Supported reports whether the descriptor can run on a CPU with avail.
func (d Descriptor) Supported(avail cpu.Mask) bool {
	return avail.Satisfies(d.Requires)
}

var (
	forwardTable []Descriptor
	inverseTable []Descriptor
)

func init() {
	registerGeneric()
	registerArch()
}

func register(d Descriptor) {
	if d.Reference == nil {
		d.Reference = referenceFor(d.Kind)
	}

	if d.Kind == Inverse {
		inverseTable = append(inverseTable, d)
	} else {
		forwardTable = append(forwardTable, d)
	}
}

func referenceFor(kind Kind) Kernel {
	if kind == Inverse {
		return Func(reference.IDCT)
	}

	return Func(reference.FDCT)
}

func registerGeneric() {
	register(Descriptor{Name: "REF-DBL", Kind: Forward, Candidate: Func(reference.FDCT)})
	register(Descriptor{Name: "FAAN", Kind: Forward, Candidate: Func(FloatAANFDCT), Layout: layout.Scaled})
	register(Descriptor{Name: "IJG-AAN-INT", Kind: Forward, Candidate: Func(FastAANFDCT), Layout: layout.Scaled})
	register(Descriptor{Name: "IJG-LLM-INT", Kind: Forward, Candidate: Func(LLMFDCT)})

	register(Descriptor{Name: "FAANI", Kind: Inverse, Candidate: Func(FloatAANIDCT)})
	register(Descriptor{Name: "REF-DBL", Kind: Inverse, Candidate: Func(reference.IDCT)})
	register(Descriptor{
		Name:      "INT",
		Kind:      Inverse,
		NewKernel: nativeFactory(layout.BitReversedPair, LLMIDCT),
		Layout:    layout.BitReversedPair,
	})
	register(Descriptor{Name: "SIMPLE-C", Kind: Inverse, Candidate: Func(SimpleIDCT)})
}

// Table returns the registered descriptors for kind in registration order.
func Table(kind Kind) []Descriptor {
	if kind == Inverse {
		return slices.Clone(inverseTable)
	}

	return slices.Clone(forwardTable)
}

// Filter keeps the descriptors whose requirements avail satisfies.
func Filter(entries []Descriptor, avail cpu.Mask) []Descriptor {
	return lo.Filter(entries, func(d Descriptor, _ int) bool {
		return d.Supported(avail)
	})
}

// Rejected returns the descriptors Filter would drop.
func Rejected(entries []Descriptor, avail cpu.Mask) []Descriptor {
	return lo.Reject(entries, func(d Descriptor, _ int) bool {
		return d.Supported(avail)
	})
}

// Names lists descriptor names in order.
func Names(entries []Descriptor) []string {
	return lo.Map(entries, func(d Descriptor, _ int) string {
		return d.Name
	})
}

// Lookup finds a descriptor by kind and name.
func Lookup(kind Kind, name string) (Descriptor, bool) {
	return lo.Find(Table(kind), func(d Descriptor) bool {
		return d.Name == name
	})
}

// IDCT248Name is the 2-4-8 kernel under test.
const IDCT248Name = "SIMPLE-C"

// IDCT248 returns the 2-4-8 candidate and its reference.
func IDCT248() (candidate, ref Putter) {
	return PutFunc(SimpleIDCT248Put), PutFunc(reference.IDCT248)
}
