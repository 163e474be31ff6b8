package hwnet_test

import (
	"testing"

	hw "github.com/db47h/hwnet"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

var point = hw.Struct("Point", hw.F("x", hw.Bits(8)), hw.F("y", hw.Bits(8)))

func TestHierarchy_names(t *testing.T) {
	h := hw.NewHierarchy("top")
	alu := h.Component(h.Top(), "alu")
	in := h.InPort(alu, "in", point)
	out := h.OutPort(alu, "out", hw.Bits(16))
	x := h.Field(in, "x")
	lo := h.Slice(out, 0, 4)
	xs := h.Slice(x, 2, 6)

	td := []struct {
		s    hw.Sig
		name string
		kind hw.Kind
		view hw.View
		typ  string
	}{
		{in, "top.alu.in", hw.InPort, hw.NoView, "Point"},
		{out, "top.alu.out", hw.OutPort, hw.NoView, "Bits16"},
		{x, "top.alu.in.x", hw.InPort, hw.FieldView, "Bits8"},
		{lo, "top.alu.out[0:4]", hw.OutPort, hw.SliceView, "Bits4"},
		{xs, "top.alu.in.x[2:6]", hw.InPort, hw.SliceView, "Bits4"},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			r := require.New(t)
			r.Equal(d.name, h.Name(d.s))
			r.Equal(d.kind, h.Kind(d.s))
			r.Equal(d.view, h.View(d.s))
			r.Equal(d.typ, h.Type(d.s).String())
			r.Equal(alu, h.Host(d.s))
		})
	}

	if n := h.Name(hw.NoSig); n != "#-1" {
		t.Errorf("got name %q for NoSig", n)
	}
	if n := h.CompName(alu); n != "top.alu" {
		t.Errorf("got component name %q", n)
	}
	if n := h.LocalName(lo); n != "[0:4]" {
		t.Errorf("got local name %q", n)
	}
}

func TestHierarchy_views(t *testing.T) {
	h := hw.NewHierarchy("top")
	w := h.Wire(h.Top(), "w", point)
	x := h.Field(w, "x")
	if x2 := h.Field(w, "x"); x2 != x {
		t.Errorf("field x declared twice: %d, %d", x, x2)
	}
	s := h.Slice(x, 0, 4)
	if s2 := h.Slice(x, 0, 4); s2 != s {
		t.Errorf("slice [0:4] declared twice: %d, %d", s, s2)
	}
	if diff := cmp.Diff([]hw.Sig{x, w}, h.Ancestors(s)); diff != "" {
		t.Errorf("ancestors mismatch (-want +got):\n%s", diff)
	}
	if b := h.Base(s); b != x {
		t.Errorf("got base %d, expected %d", b, x)
	}
	if b := h.Base(w); b != hw.NoSig {
		t.Errorf("got base %d for root signal", b)
	}
	if lo, hi := h.Range(s); lo != 0 || hi != 4 {
		t.Errorf("got range [%d:%d]", lo, hi)
	}
	if lo, hi := h.Range(w); lo != 0 || hi != 16 {
		t.Errorf("got range [%d:%d] for root signal", lo, hi)
	}
	y := h.Field(w, "y")
	if diff := cmp.Diff([]hw.Sig{x, y}, h.Views(w)); diff != "" {
		t.Errorf("views mismatch (-want +got):\n%s", diff)
	}
}

func TestHierarchy_Overlaps(t *testing.T) {
	h := hw.NewHierarchy("top")
	v := h.Wire(h.Top(), "v", hw.Bits(16))
	u := h.Wire(h.Top(), "u", hw.Bits(16))
	a := h.Slice(v, 0, 10)
	b := h.Slice(v, 5, 15)
	c := h.Slice(v, 10, 16)
	d := h.Slice(u, 0, 10)

	td := []struct {
		name string
		a, b hw.Sig
		exp  bool
	}{
		{"intersecting", a, b, true},
		{"intersecting_reverse", b, a, true},
		{"adjacent", a, c, false},
		{"tail", b, c, true},
		{"different_base", a, d, false},
		{"not_slices", v, a, false},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			if got := h.Overlaps(d.a, d.b); got != d.exp {
				t.Errorf("Overlaps(%s, %s) = %v", h.Name(d.a), h.Name(d.b), got)
			}
		})
	}
}

func TestHierarchy_Relate(t *testing.T) {
	h := hw.NewHierarchy("top")
	a := h.Component(h.Top(), "a")
	b := h.Component(h.Top(), "b")
	c := h.Component(b, "c")

	td := []struct {
		a, b hw.Comp
		exp  hw.Relation
	}{
		{a, a, hw.Identical},
		{c, b, hw.Parent},
		{b, c, hw.Child},
		{a, b, hw.Sibling},
		{a, c, hw.Unrelated},
		{c, h.Top(), hw.Unrelated},
		{h.Top(), h.Top(), hw.Identical},
	}
	for _, d := range td {
		if got := h.Relate(d.a, d.b); got != d.exp {
			t.Errorf("Relate(%s, %s) = %v, expected %v", h.CompName(d.a), h.CompName(d.b), got, d.exp)
		}
	}
}

func TestHierarchy_lookup(t *testing.T) {
	h := hw.NewHierarchy("top")
	a := h.Component(h.Top(), "a")
	in := h.InPort(a, "in", hw.Bits(1))
	r := require.New(t)

	c, ok := h.Child(h.Top(), "a")
	r.True(ok)
	r.Equal(a, c)
	_, ok = h.Child(h.Top(), "b")
	r.False(ok)

	s, ok := h.Signal(a, "in")
	r.True(ok)
	r.Equal(in, s)
	_, ok = h.Signal(a, "out")
	r.False(ok)

	r.Equal([]hw.Comp{a}, h.Children(h.Top()))
	r.Equal(h.Top(), h.Parent(a))
	r.Equal(hw.NoComp, h.Parent(h.Top()))
	r.Equal(2, h.ComponentCount())
	r.Equal(1, h.SignalCount())
}

func TestHierarchy_panics(t *testing.T) {
	td := []struct {
		name string
		f    func(h *hw.Hierarchy)
	}{
		{"duplicate_name", func(h *hw.Hierarchy) {
			h.Wire(h.Top(), "a", hw.Bits(1))
			h.Component(h.Top(), "a")
		}},
		{"invalid_name", func(h *hw.Hierarchy) { h.Wire(h.Top(), "a.b", hw.Bits(1)) }},
		{"reserved_name", func(h *hw.Hierarchy) { h.Wire(h.Top(), "__const0", hw.Bits(1)) }},
		{"zero_width", func(h *hw.Hierarchy) { h.Wire(h.Top(), "a", hw.Bits(0)) }},
		{"unknown_owner", func(h *hw.Hierarchy) { h.Wire(42, "a", hw.Bits(1)) }},
		{"unknown_field", func(h *hw.Hierarchy) { h.Field(h.Wire(h.Top(), "a", point), "z") }},
		{"field_of_bits", func(h *hw.Hierarchy) { h.Field(h.Wire(h.Top(), "a", hw.Bits(4)), "x") }},
		{"empty_slice", func(h *hw.Hierarchy) { h.Slice(h.Wire(h.Top(), "a", hw.Bits(4)), 2, 2) }},
		{"slice_out_of_range", func(h *hw.Hierarchy) { h.Slice(h.Wire(h.Top(), "a", hw.Bits(4)), 0, 5) }},
		{"slice_of_slice", func(h *hw.Hierarchy) { h.Slice(h.Slice(h.Wire(h.Top(), "a", hw.Bits(4)), 0, 3), 0, 1) }},
		{"unknown_signal", func(h *hw.Hierarchy) { h.Kind(7) }},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			h := hw.NewHierarchy("top")
			require.Panics(t, func() { d.f(h) })
		})
	}
}
