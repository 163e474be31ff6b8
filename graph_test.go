package hwnet_test

import (
	"testing"

	hw "github.com/db47h/hwnet"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestGraph_Connect(t *testing.T) {
	h := hw.NewHierarchy("top")
	a := h.Wire(h.Top(), "a", hw.Bits(8))
	b := h.Wire(h.Top(), "b", hw.Bits(8))
	c := h.Wire(h.Top(), "c", hw.Bits(4))
	p := h.Wire(h.Top(), "p", point)

	td := []struct {
		name  string
		a, b  hw.Sig
		fault hw.EdgeFault
		err   string
	}{
		{"self_loop", a, a, hw.SelfLoop, "invalid connection top.a:top.a: signal connected to itself"},
		{"type_mismatch", a, c, hw.TypeMismatch, "invalid connection top.a:top.c: type mismatch (Bits8 vs. Bits4)"},
		{"struct_mismatch", p, h.Wire(h.Top(), "q", hw.Bits(16)), hw.TypeMismatch, "invalid connection top.p:top.q: type mismatch (Point vs. Bits16)"},
		{"unknown", a, 100, hw.UnknownSignal, "invalid connection top.a:#100: unknown signal"},
		{"field", h.Field(p, "x"), b, 0, ""},
		{"slice", h.Slice(a, 4, 8), c, 0, ""},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			g := hw.NewGraph(h)
			err := g.Connect(d.a, d.b)
			if d.err == "" {
				require.NoError(t, err)
				require.Equal(t, []hw.Edge{{A: d.a, B: d.b}}, g.Edges())
				return
			}
			var me *hw.MalformedEdgeError
			require.True(t, errors.As(err, &me), "unexpected error type %T", err)
			require.Equal(t, d.fault, me.Fault)
			require.EqualError(t, err, d.err)
			require.Empty(t, g.Edges())
		})
	}
}

func TestGraph_dedup(t *testing.T) {
	h := hw.NewHierarchy("top")
	a := h.Wire(h.Top(), "a", hw.Bits(8))
	b := h.Wire(h.Top(), "b", hw.Bits(8))
	g := hw.NewGraph(h)
	for _, e := range []hw.Edge{{A: a, B: b}, {A: b, B: a}, {A: a, B: b}} {
		if err := g.Connect(e.A, e.B); err != nil {
			t.Fatal(err)
		}
	}
	if n := len(g.Edges()); n != 1 {
		t.Fatalf("got %d edges, expected 1", n)
	}
}

func TestGraph_ConnectPairs(t *testing.T) {
	h := hw.NewHierarchy("top")
	a := h.Wire(h.Top(), "a", hw.Bits(8))
	b := h.Wire(h.Top(), "b", hw.Bits(8))
	c := h.Wire(h.Top(), "c", hw.Bits(8))
	d := h.Wire(h.Top(), "d", hw.Bits(1))

	g := hw.NewGraph(h)
	require.EqualError(t, g.ConnectPairs(a, b, c), "odd number (3) of signals to connect")

	err := g.ConnectPairs(a, b, c, d)
	require.EqualError(t, err, "connect pair, arguments 3 and 4: invalid connection top.c:top.d: type mismatch (Bits8 vs. Bits1)")
	var me *hw.MalformedEdgeError
	require.True(t, errors.As(err, &me))
	require.Equal(t, "top.d", me.B)
	// pairs before the failing one are kept
	require.Equal(t, []hw.Edge{{A: a, B: b}}, g.Edges())
}

func TestGraph_ConnectConst(t *testing.T) {
	h := hw.NewHierarchy("top")
	sub := h.Component(h.Top(), "sub")
	sel := h.InPort(sub, "sel", hw.Bits(2))
	g := hw.NewGraph(h)

	c, err := g.ConnectConst(h.Top(), sel, 3)
	require.NoError(t, err)
	require.Equal(t, hw.Const, h.Kind(c))
	require.Equal(t, "top.__const0", h.Name(c))
	require.Equal(t, "Bits2", h.Type(c).String())
	v, ok := h.Value(c)
	require.True(t, ok)
	require.Equal(t, uint64(3), v)
	require.Equal(t, []hw.Edge{{A: sel, B: c}}, g.Edges())

	c2, err := g.ConnectConst(sub, h.Slice(sel, 0, 1), 0)
	require.NoError(t, err)
	require.Equal(t, "top.sub.__const1", h.Name(c2))
	require.Equal(t, []hw.Sig{sel, c2}, h.Signals(sub))

	_, err = g.ConnectConst(h.Top(), 99, 0)
	var me *hw.MalformedEdgeError
	require.True(t, errors.As(err, &me))
	require.Equal(t, hw.UnknownSignal, me.Fault)

	_, ok = h.Value(sel)
	require.False(t, ok)
}
