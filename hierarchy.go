// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwnet

import (
	"sort"
	"strconv"
	"strings"

	"github.com/db47h/hwnet/internal/hdl"
	"github.com/pkg/errors"
)

// Comp is a handle to a component in a Hierarchy.
//
type Comp int

// NoComp is the invalid component handle. It is the parent of the top
// component.
//
const NoComp Comp = -1

type component struct {
	name     string
	path     string
	parent   Comp
	children []Comp
	signals  []Sig
	names    map[string]struct{}
}

// A Hierarchy is an arena of components and signals. Components and signals
// are identified by integer handles allocated in declaration order.
//
// Declaration methods panic on invalid declarations (unknown owner, duplicate
// or invalid name, unknown field, invalid slice). These are design bugs that
// must be fixed in the design code, much like an invalid connection string in
// a part declaration.
//
type Hierarchy struct {
	comps  []component
	sigs   []signal
	consts int
}

// NewHierarchy returns a new hierarchy with a single top component.
//
func NewHierarchy(top string) *Hierarchy {
	if !hdl.IsIdent(top) {
		panic(errors.Errorf("invalid top component name %q", top))
	}
	return &Hierarchy{
		comps: []component{{
			name:   top,
			path:   top,
			parent: NoComp,
			names:  make(map[string]struct{}),
		}},
	}
}

// Top returns the top component.
//
func (h *Hierarchy) Top() Comp { return 0 }

func (h *Hierarchy) validComp(c Comp) bool { return c >= 0 && int(c) < len(h.comps) }

func (h *Hierarchy) validSig(s Sig) bool { return s >= 0 && int(s) < len(h.sigs) }

func (h *Hierarchy) mustComp(c Comp) *component {
	if !h.validComp(c) {
		panic(errors.Errorf("invalid component handle %d", c))
	}
	return &h.comps[c]
}

func (h *Hierarchy) mustSig(s Sig) *signal {
	if !h.validSig(s) {
		panic(errors.Errorf("invalid signal handle %d", s))
	}
	return &h.sigs[s]
}

func (h *Hierarchy) claimName(c Comp, name string) {
	p := h.mustComp(c)
	if !hdl.IsIdent(name) || strings.HasPrefix(name, "__") {
		panic(errors.Errorf("invalid name %q in %s", name, p.path))
	}
	if _, ok := p.names[name]; ok {
		panic(errors.Errorf("duplicate name %q in %s", name, p.path))
	}
	p.names[name] = struct{}{}
}

// Component declares a new component named name in parent.
//
func (h *Hierarchy) Component(parent Comp, name string) Comp {
	h.claimName(parent, name)
	c := Comp(len(h.comps))
	h.comps = append(h.comps, component{
		name:   name,
		path:   h.comps[parent].path + "." + name,
		parent: parent,
		names:  make(map[string]struct{}),
	})
	h.comps[parent].children = append(h.comps[parent].children, c)
	return c
}

// InPort declares an input port of type t in component c.
//
func (h *Hierarchy) InPort(c Comp, name string, t Type) Sig { return h.declare(c, name, InPort, t) }

// OutPort declares an output port of type t in component c.
//
func (h *Hierarchy) OutPort(c Comp, name string, t Type) Sig { return h.declare(c, name, OutPort, t) }

// Wire declares a wire of type t in component c.
//
func (h *Hierarchy) Wire(c Comp, name string, t Type) Sig { return h.declare(c, name, Wire, t) }

func (h *Hierarchy) declare(c Comp, name string, k Kind, t Type) Sig {
	h.claimName(c, name)
	if t.Width <= 0 {
		panic(errors.Errorf("invalid width %d for %s.%s", t.Width, h.comps[c].path, name))
	}
	s := h.alloc(signal{
		name: name,
		path: h.comps[c].path + "." + name,
		kind: k,
		typ:  t,
		comp: c,
		base: NoSig,
		hi:   t.Width,
		host: c,
	})
	h.comps[c].signals = append(h.comps[c].signals, s)
	return s
}

// constant declares an anonymous constant owned by component c.
//
func (h *Hierarchy) constant(c Comp, t Type, v uint64) Sig {
	p := h.mustComp(c)
	name := "__const" + strconv.Itoa(h.consts)
	h.consts++
	s := h.alloc(signal{
		name: name,
		path: p.path + "." + name,
		kind: Const,
		typ:  t,
		comp: c,
		base: NoSig,
		hi:   t.Width,
		val:  v,
		host: c,
	})
	p.signals = append(p.signals, s)
	return s
}

func (h *Hierarchy) alloc(s signal) Sig {
	n := Sig(len(h.sigs))
	h.sigs = append(h.sigs, s)
	return n
}

// Field returns the view of field name in struct signal s. Views are
// interned: requesting the same field twice returns the same handle.
//
func (h *Hierarchy) Field(s Sig, name string) Sig {
	b := h.mustSig(s)
	if f, ok := b.fields[name]; ok {
		return f
	}
	ft, ok := b.typ.Field(name)
	if !ok {
		panic(errors.Errorf("type %s of %s has no field %q", b.typ, b.path, name))
	}
	f := h.derive(s, signal{
		name: name,
		path: b.path + "." + name,
		view: FieldView,
		typ:  ft,
		hi:   ft.Width,
	})
	b = &h.sigs[s]
	if b.fields == nil {
		b.fields = make(map[string]Sig)
	}
	b.fields[name] = f
	return f
}

// Slice returns the view of bits [lo:hi) of signal s. Views are interned:
// requesting the same range twice returns the same handle. Slices of slices
// are not supported.
//
func (h *Hierarchy) Slice(s Sig, lo, hi int) Sig {
	b := h.mustSig(s)
	if b.view == SliceView {
		panic(errors.Errorf("cannot slice slice %s", b.path))
	}
	if lo < 0 || lo >= hi || hi > b.typ.Width {
		panic(errors.Errorf("invalid slice [%d:%d] of %s (width %d)", lo, hi, b.path, b.typ.Width))
	}
	for _, o := range b.slices {
		if os := &h.sigs[o]; os.lo == lo && os.hi == hi {
			return o
		}
	}
	rng := "[" + strconv.Itoa(lo) + ":" + strconv.Itoa(hi) + "]"
	v := h.derive(s, signal{
		name: rng,
		path: b.path + rng,
		view: SliceView,
		typ:  Bits(hi - lo),
		lo:   lo,
		hi:   hi,
	})
	b = &h.sigs[s]
	b.slices = append(b.slices, v)
	h.sortSigs(b.slices)
	return v
}

func (h *Hierarchy) derive(base Sig, v signal) Sig {
	b := &h.sigs[base]
	v.kind = b.kind
	v.comp = NoComp
	v.base = base
	v.host = b.host
	v.ancestors = make([]Sig, 0, len(b.ancestors)+1)
	v.ancestors = append(v.ancestors, base)
	v.ancestors = append(v.ancestors, b.ancestors...)
	return h.alloc(v)
}

// SignalCount returns the number of declared signals. Valid signal handles
// are in the range [0, SignalCount()).
//
func (h *Hierarchy) SignalCount() int { return len(h.sigs) }

// ComponentCount returns the number of declared components.
//
func (h *Hierarchy) ComponentCount() int { return len(h.comps) }

// Name returns the full path name of signal s, like "top.alu.in.x" or
// "top.alu.out[0:4]".
//
func (h *Hierarchy) Name(s Sig) string {
	if !h.validSig(s) {
		return "#" + strconv.Itoa(int(s))
	}
	return h.sigs[s].path
}

// LocalName returns the name of signal s in its owner.
//
func (h *Hierarchy) LocalName(s Sig) string { return h.mustSig(s).name }

// Kind returns the direction kind of signal s. Views have the kind of their
// root signal.
//
func (h *Hierarchy) Kind(s Sig) Kind { return h.mustSig(s).kind }

// View returns the view of signal s.
//
func (h *Hierarchy) View(s Sig) View { return h.mustSig(s).view }

// Type returns the value type of signal s.
//
func (h *Hierarchy) Type(s Sig) Type { return h.mustSig(s).typ }

// Host returns the component hosting signal s: the nearest component in its
// ownership chain.
//
func (h *Hierarchy) Host(s Sig) Comp { return h.mustSig(s).host }

// Base returns the signal a view is derived from, or NoSig for root signals.
//
func (h *Hierarchy) Base(s Sig) Sig { return h.mustSig(s).base }

// Range returns the bit range [lo:hi) covered by signal s within its base
// signal. For signals other than slices, the range covers the whole signal.
//
func (h *Hierarchy) Range(s Sig) (lo, hi int) {
	p := h.mustSig(s)
	return p.lo, p.hi
}

// Value returns the value of a constant signal.
//
func (h *Hierarchy) Value(s Sig) (uint64, bool) {
	p := h.mustSig(s)
	return p.val, p.kind == Const
}

// Ancestors returns the signals s is derived from, nearest first.
//
func (h *Hierarchy) Ancestors(s Sig) []Sig {
	a := h.mustSig(s).ancestors
	return append([]Sig(nil), a...)
}

// Overlaps reports whether a and b are slices of the same base signal with
// intersecting ranges.
//
func (h *Hierarchy) Overlaps(a, b Sig) bool {
	sa, sb := h.mustSig(a), h.mustSig(b)
	return sa.view == SliceView && sb.view == SliceView && sa.base == sb.base && sa.overlaps(sb)
}

// siblingSlices returns the slices of the base of slice s, sorted by path.
//
func (h *Hierarchy) siblingSlices(s Sig) []Sig {
	p := &h.sigs[s]
	if p.view != SliceView {
		return nil
	}
	return h.sigs[p.base].slices
}

// CompName returns the full path name of component c.
//
func (h *Hierarchy) CompName(c Comp) string {
	if !h.validComp(c) {
		return "#" + strconv.Itoa(int(c))
	}
	return h.comps[c].path
}

// CompLocalName returns the name of component c in its parent.
//
func (h *Hierarchy) CompLocalName(c Comp) string { return h.mustComp(c).name }

// Parent returns the parent of component c or NoComp for the top component.
//
func (h *Hierarchy) Parent(c Comp) Comp { return h.mustComp(c).parent }

// Children returns the sub-components of c in declaration order.
//
func (h *Hierarchy) Children(c Comp) []Comp {
	return append([]Comp(nil), h.mustComp(c).children...)
}

// Signals returns the root signals and constants owned by c in declaration
// order.
//
func (h *Hierarchy) Signals(c Comp) []Sig {
	return append([]Sig(nil), h.mustComp(c).signals...)
}

// Views returns the fields then slices derived directly from s. Slices are
// sorted by path.
//
func (h *Hierarchy) Views(s Sig) []Sig {
	p := h.mustSig(s)
	var vs []Sig
	for _, f := range p.fields {
		vs = append(vs, f)
	}
	sort.Slice(vs, func(i, j int) bool { return vs[i] < vs[j] })
	return append(vs, p.slices...)
}

// Child returns the sub-component of c with the given name.
//
func (h *Hierarchy) Child(c Comp, name string) (Comp, bool) {
	for _, ch := range h.mustComp(c).children {
		if h.comps[ch].name == name {
			return ch, true
		}
	}
	return NoComp, false
}

// Signal returns the root signal of c with the given name.
//
func (h *Hierarchy) Signal(c Comp, name string) (Sig, bool) {
	for _, s := range h.mustComp(c).signals {
		if h.sigs[s].name == name {
			return s, true
		}
	}
	return NoSig, false
}

// sortSigs sorts signals by path name.
//
func (h *Hierarchy) sortSigs(ss []Sig) {
	sort.Slice(ss, func(i, j int) bool {
		pi, pj := h.sigs[ss[i]].path, h.sigs[ss[j]].path
		if pi != pj {
			return pi < pj
		}
		return ss[i] < ss[j]
	})
}

func (h *Hierarchy) names(ss []Sig) []string {
	r := make([]string, len(ss))
	for i, s := range ss {
		r[i] = h.Name(s)
	}
	return r
}
