package hwlib_test

import (
	"testing"

	hw "github.com/db47h/hwnet"
	hl "github.com/db47h/hwnet/hwlib"
	"github.com/stretchr/testify/require"
)

func TestAdderN(t *testing.T) {
	d := hw.NewDesign("top")
	a := hl.Source(d, d.Top(), "a", hw.Bits(4))
	b := hl.Source(d, d.Top(), "b", hw.Bits(4))
	add := hl.AdderN(d, d.Top(), "add", 4)
	sum := hl.Sink(d, d.Top(), "sum", hw.Bits(4))
	carry := hl.Sink(d, d.Top(), "carry", hw.Bits(1))
	require.NoError(t, d.ConnectPairs(
		a.Out(), add.Port("a"),
		b.Out(), add.Port("b"),
		add.Out(), sum.In(),
		add.Port("c"), carry.In(),
	))

	l := elaborate(t, d)
	require.Len(t, d.Children(add.Comp), 4)
	for i, fa := range d.Children(add.Comp) {
		n := d.CompName(fa)
		bit := "[" + string(rune('0'+i)) + ":" + string(rune('1'+i)) + "]"
		in, _ := d.Signal(fa, "a")
		require.Equal(t, "top.add.a"+bit, writer(t, l, in))
		cin, _ := d.Signal(fa, "cin")
		if i == 0 {
			require.Equal(t, "top.add.__const0", writer(t, l, cin))
		} else {
			require.Equal(t, d.CompName(d.Children(add.Comp)[i-1])+".cout", writer(t, l, cin))
		}
		require.Equal(t, n+".s", writer(t, l, d.Slice(add.Out(), i, i+1)))
	}
	// the whole output is driven once all of its bits are
	require.Equal(t, "top.add.out", writer(t, l, sum.In()))
	require.Equal(t, "top.add.c", writer(t, l, carry.In()))
	require.Equal(t, "top.a.out", writer(t, l, add.Port("a")))
}
