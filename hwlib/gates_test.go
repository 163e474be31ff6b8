package hwlib_test

import (
	"testing"

	hw "github.com/db47h/hwnet"
	hl "github.com/db47h/hwnet/hwlib"
	"github.com/db47h/hwnet/hwtest"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestXor(t *testing.T) {
	d := hw.NewDesign("top")
	a := hl.Source(d, d.Top(), "a", hw.Bits(1))
	b := hl.Source(d, d.Top(), "b", hw.Bits(1))
	x := hl.Xor(d, d.Top(), "xor", hw.Bits(1))
	probe := hl.Sink(d, d.Top(), "probe", hw.Bits(1))
	require.NoError(t, d.ConnectPairs(
		a.Out(), x.Port("a"),
		b.Out(), x.Port("b"),
		x.Out(), probe.In(),
	))

	exp := []hwtest.Net{
		{Writer: "top.a.out", Readers: []string{"top.xor.a", "top.xor.and1.a", "top.xor.nota.in"}},
		{Writer: "top.b.out", Readers: []string{"top.xor.and2.a", "top.xor.b", "top.xor.notb.in"}},
		{Writer: "top.xor.or.out", Readers: []string{"top.probe.in", "top.xor.out"}},
		{Writer: "top.xor.notb.out", Readers: []string{"top.xor.and1.b"}},
		{Writer: "top.xor.and1.out", Readers: []string{"top.xor.or.a"}},
		{Writer: "top.xor.nota.out", Readers: []string{"top.xor.and2.b"}},
		{Writer: "top.xor.and2.out", Readers: []string{"top.xor.or.b"}},
	}
	if diff := cmp.Diff(exp, hwtest.Nets(elaborate(t, d))); diff != "" {
		t.Errorf("nets mismatch (-want +got):\n%s", diff)
	}
}

func TestXor_unconnected(t *testing.T) {
	d := hw.NewDesign("top")
	hl.Xor(d, d.Top(), "xor", b8)
	_, err := d.Elaborate()
	require.Error(t, err)
	var nw *hw.NoWriterError
	require.ErrorAs(t, err, &nw)
	require.Equal(t, [][]string{
		{"top.xor.a", "top.xor.and1.a", "top.xor.nota.in"},
		{"top.xor.and2.a", "top.xor.b", "top.xor.notb.in"},
	}, nw.Nets)
}
