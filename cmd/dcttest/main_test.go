package main

import (
	"bytes"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunUsage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{name: "short-help", args: []string{"-h"}},
		{name: "long-help", args: []string{"--help"}},
		{name: "unknown-flag", args: []string{"-x"}},
		{name: "unknown-long", args: []string{"--bogus"}},
		{name: "bad-value", args: []string{"--trials", "many"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var stdout, stderr bytes.Buffer

			code := run(tt.args, &stdout, &stderr)
			require.Equal(t, 0, code)
			require.Contains(t, stdout.String(), "usage: dcttest")
			require.NotContains(t, stdout.String(), "err_inf")
			require.Empty(t, stderr.String())
		})
	}
}

func TestRunForward(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer

	code := run([]string{"--trials", "20", "--only", "LLM", "0"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	out := stdout.String()
	require.True(t, strings.HasPrefix(out, "algo-dct DCT/IDCT test\n"), out)
	require.Contains(t, out, "DCT IJG-LLM-INT: err_inf=")
	require.NotContains(t, out, "kdct/s")
}

func TestRunIDCT248Speed(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer

	code := run([]string{"-4t", "--trials", "10", "--batch", "10", "--threshold", "1ms"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	require.Contains(t, stdout.String(), "IDCT248 SIMPLE-C: err_inf=")
	require.Contains(t, stdout.String(), "IDCT248 SIMPLE-C: ")
	require.Contains(t, stdout.String(), " kdct/s\n")
}

func TestRunBadPolicy(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer

	code := run([]string{"7"}, &stdout, &stderr)
	require.Equal(t, 1, code)
	require.Contains(t, stderr.String(), "invalid test policy")
}

func TestRunNoMatch(t *testing.T) {
	t.Parallel()

	for _, args := range [][]string{
		{"--only", "NOPE"},
		{"-i", "--only", "NOPE"},
		{"-4", "--only", "NOPE"},
	} {
		var stdout, stderr bytes.Buffer

		code := run(args, &stdout, &stderr)
		require.Equal(t, 1, code, args)
		require.Contains(t, stderr.String(), "no algorithms", args)
		require.Empty(t, stdout.String(), args)
	}
}

func TestRunGeneric(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer

	code := run([]string{"-i", "-v", "--generic", "--trials", "5", "--only", "SIMPLE"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	require.Contains(t, stdout.String(), "IDCT SIMPLE-C: err_inf=")

	switch runtime.GOARCH {
	case "amd64":
		require.Contains(t, stderr.String(), "skip IDCT SIMPLE-PERM: missing sse2\n")
		require.NotContains(t, stdout.String(), "SIMPLE-PERM")
	case "arm64":
		require.Contains(t, stderr.String(), "skip IDCT SIMPLE-PARTTRANS: missing neon\n")
	}
}
