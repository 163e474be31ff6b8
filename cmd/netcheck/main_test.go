package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/db47h/hwnet"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"sigs.k8s.io/yaml"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestResolve_text(t *testing.T) {
	out, err := run(t, "resolve", "testdata/cpu.yaml")
	require.NoError(t, err)
	var got []string
	for _, l := range strings.Split(strings.TrimSpace(out), "\n") {
		f := strings.SplitN(l, " ", 2)
		require.Len(t, f[0], 16)
		got = append(got, f[1])
	}
	require.Equal(t, []string{
		"cpu.alu.flags.zero -> cpu.regs.zero",
		"cpu.alu.out -> cpu.regs.in, cpu.regs.r0.in",
		"cpu.regs.__const0 -> cpu.regs.r0.sel",
	}, got)
}

func TestResolve_yaml(t *testing.T) {
	out, err := run(t, "resolve", "-o", "yaml", "testdata/cpu.yaml")
	require.NoError(t, err)
	var r struct {
		Nets []netOut `json:"nets"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	require.Len(t, r.Nets, 3)
	require.Equal(t, "cpu.alu.out", r.Nets[1].Writer)
	require.Equal(t, []string{"cpu.regs.in", "cpu.regs.r0.in"}, r.Nets[1].Readers)

	_, err = run(t, "resolve", "-o", "json", "testdata/cpu.yaml")
	require.EqualError(t, err, `invalid output format "json"`)
}

func TestResolve_errors(t *testing.T) {
	_, err := run(t, "resolve", "testdata/conflict.yaml")
	var mw *hwnet.MultiWriterError
	require.True(t, errors.As(err, &mw), "unexpected error %v", err)
	require.Equal(t, "top.a.out", mw.First.Signal)
	require.Equal(t, "top.b.out", mw.Second.Signal)

	_, err = run(t, "resolve")
	require.Error(t, err)

	_, err = run(t, "--debug", "resolve", "testdata/missing.yaml")
	require.Error(t, err)
}

func TestTree(t *testing.T) {
	out, err := run(t, "tree", "testdata/cpu.yaml")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "cpu\n"), out)
	for _, s := range []string{
		"alu",
		"[OutPort]  out Bits8",
		"[OutPort]  flags Flags",
		"[update]  upblk -> cpu.alu.out, cpu.alu.flags",
		"regs",
		"[InPort]  sel Bits2",
		"[Const]  __const0 Bits2 = 1",
	} {
		require.Contains(t, out, s)
	}
}
