package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-dct/internal/block"
	"github.com/cwbudde/algo-dct/internal/cpu"
	"github.com/cwbudde/algo-dct/internal/harness"
)

func TestBanner(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	New(&buf).Banner()
	require.Equal(t, "algo-dct DCT/IDCT test\n", buf.String())
}

func TestBiasGrid(t *testing.T) {
	t.Parallel()

	var bias [block.Size]int64
	for i := range bias {
		bias[i] = int64(i) - 3
	}

	var buf bytes.Buffer

	New(&buf).Bias(&bias)

	lines := strings.Split(buf.String(), "\n")
	// Leading blank line, eight rows, trailing newline.
	require.Len(t, lines, 10)
	require.Empty(t, lines[0])
	require.Empty(t, lines[9])
	require.Equal(t, "     -3      -2      -1       0       1       2       3       4 ", lines[1])
	require.Equal(t, "     53      54      55      56 ", lines[8][:32])

	for _, row := range lines[1:9] {
		require.Len(t, row, 8*8)
	}
}

func TestSummaryLine(t *testing.T) {
	t.Parallel()

	s := harness.Summary{
		Trials:      20000,
		ErrInf:      1,
		Err2:        0.0123,
		SysErr:      0.00005,
		MaxOut:      2040,
		BlockSumErr: 17,
	}

	var buf bytes.Buffer

	New(&buf).Summary("IDCT", "SIMPLE-C", s)

	out := buf.String()
	require.True(t, strings.HasSuffix(out,
		"\nIDCT SIMPLE-C: err_inf=1 err2=0.01230000 syserr=0.00005000 maxout=2040 blockSumErr=17\n"), out)
	require.Equal(t, 10, strings.Count(out, "\n"))
}

func TestSpeedLine(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	New(&buf).Speed("DCT", "FAAN", harness.SpeedSample{Iterations: 123460, Elapsed: time.Second})
	require.Equal(t, "DCT FAAN: 123.5 kdct/s\n", buf.String())
}

func TestDct248(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   harness.Dct248Result
		want string
	}{
		{
			name: "clean",
			in:   harness.Dct248Result{Trials: 10, ErrInf: 1},
			want: "IDCT248 SIMPLE-C: err_inf=1\n",
		},
		{
			name: "overflow",
			in: harness.Dct248Result{
				Trials: 10,
				ErrInf: 255,
				Overflows: []harness.Overflow{
					{Trial: 0, Index: 3, Candidate: 255, Reference: 0},
					{Trial: 4, Index: 9, Candidate: 0, Reference: 255},
				},
				Saturated: 1,
			},
			want: "255 0\n0 255\nIDCT248 SIMPLE-C: err_inf=255 saturated=1\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			New(&buf).Dct248("SIMPLE-C", tt.in)
			require.Equal(t, tt.want, buf.String())
		})
	}
}

func TestSpeed248(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	New(&buf).Speed248("SIMPLE-C", harness.SpeedSample{})
	require.Equal(t, "IDCT248 SIMPLE-C: 0.0 kdct/s\n", buf.String())
}

func TestSkipped(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	New(&buf).Skipped("IDCT", "SIMPLE-PERM", cpu.SSE2)
	require.Equal(t, "skip IDCT SIMPLE-PERM: missing sse2\n", buf.String())
}

func TestUsage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	New(&buf).Usage("dcttest")

	out := buf.String()
	require.True(t, strings.HasPrefix(out, Banner+"\nusage: dcttest "), out)
	require.Contains(t, out, "-4          test IDCT248 implementations\n")
	require.Contains(t, out, "--only NAME")
}

type failWriter struct{ n int }

var errWrite = errors.New("write failed")

func (f *failWriter) Write(p []byte) (int, error) {
	f.n++
	return 0, errWrite
}

func TestStickyError(t *testing.T) {
	t.Parallel()

	fw := &failWriter{}
	r := New(fw)

	r.Banner()
	r.Speed("DCT", "FAAN", harness.SpeedSample{})
	r.Summary("DCT", "FAAN", harness.Summary{})

	require.ErrorIs(t, r.Err(), errWrite)
	require.Equal(t, 1, fw.n)
}
