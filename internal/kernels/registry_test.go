package kernels

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-dct/internal/cpu"
	"github.com/cwbudde/algo-dct/internal/layout"
)

func TestTableOrder(t *testing.T) {
	t.Parallel()

	fwd := Names(Table(Forward))
	require.Equal(t, []string{"REF-DBL", "FAAN", "IJG-AAN-INT", "IJG-LLM-INT"}, fwd)

	inv := Names(Table(Inverse))
	require.GreaterOrEqual(t, len(inv), 4)
	require.Equal(t, []string{"FAANI", "REF-DBL", "INT", "SIMPLE-C"}, inv[:4])
}

func TestTableComplete(t *testing.T) {
	t.Parallel()

	for _, kind := range []Kind{Forward, Inverse} {
		for _, d := range Table(kind) {
			require.Equal(t, kind, d.Kind, d.Name)
			require.NotNil(t, d.NewCandidate(), d.Name)
			require.NotNil(t, d.Reference, d.Name)
		}
	}
}

func TestTableIsCopy(t *testing.T) {
	t.Parallel()

	a := Table(Forward)
	a[0].Name = "changed"

	require.Equal(t, "REF-DBL", Table(Forward)[0].Name)
}

func TestNewCandidateFresh(t *testing.T) {
	t.Parallel()

	d, ok := Lookup(Inverse, "INT")
	require.True(t, ok)
	require.Nil(t, d.Candidate)

	a, b := d.NewCandidate(), d.NewCandidate()
	require.NotSame(t, a, b)

	// Stateless entries hand out the shared kernel.
	plain, ok := Lookup(Inverse, "SIMPLE-C")
	require.True(t, ok)
	require.NotNil(t, plain.NewCandidate())
	require.Nil(t, plain.NewKernel)
}

func TestArchEntries(t *testing.T) {
	t.Parallel()

	switch runtime.GOARCH {
	case "amd64":
		d, ok := Lookup(Inverse, "SIMPLE-ROWIL")
		require.True(t, ok)
		require.Equal(t, cpu.SSE2, d.Requires)
		require.Equal(t, layout.RowInterleave, d.Layout)
	case "arm64":
		d, ok := Lookup(Inverse, "SIMPLE-PARTTRANS")
		require.True(t, ok)
		require.Equal(t, cpu.NEON, d.Requires)
	}
}

func TestFilter(t *testing.T) {
	t.Parallel()

	entries := []Descriptor{
		{Name: "plain"},
		{Name: "sse2", Requires: cpu.SSE2},
		{Name: "avx2", Requires: cpu.SSE2 | cpu.AVX2},
		{Name: "neon", Requires: cpu.NEON},
	}

	tests := []struct {
		name     string
		avail    cpu.Mask
		kept     []string
		rejected []string
	}{
		{"generic", 0, []string{"plain"}, []string{"sse2", "avx2", "neon"}},
		{"sse2", cpu.SSE2, []string{"plain", "sse2"}, []string{"avx2", "neon"}},
		{"avx2 only", cpu.AVX2, []string{"plain"}, []string{"sse2", "avx2", "neon"}},
		{"x86", cpu.SSE2 | cpu.SSE3 | cpu.AVX2, []string{"plain", "sse2", "avx2"}, []string{"neon"}},
		{"arm", cpu.NEON, []string{"plain", "neon"}, []string{"sse2", "avx2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.kept, Names(Filter(entries, tt.avail)))
			require.Equal(t, tt.rejected, Names(Rejected(entries, tt.avail)))
		})
	}
}

func TestFilterPure(t *testing.T) {
	t.Parallel()

	entries := Table(Inverse)
	before := Names(entries)

	_ = Filter(entries, 0)
	_ = Filter(entries, 0)

	require.Equal(t, before, Names(entries))
	require.Equal(t, Names(Filter(entries, cpu.SSE2)), Names(Filter(entries, cpu.SSE2)))
}

func TestKindString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "DCT", Forward.String())
	require.Equal(t, "IDCT", Inverse.String())
}

func TestIDCT248Pair(t *testing.T) {
	t.Parallel()

	cand, ref := IDCT248()
	require.NotNil(t, cand)
	require.NotNil(t, ref)
	require.Equal(t, "SIMPLE-C", IDCT248Name)
}
