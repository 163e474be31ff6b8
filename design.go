// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwnet

import (
	"github.com/pkg/errors"
)

// A Design bundles a component hierarchy with its connections and update
// blocks.
//
//	d := hwnet.NewDesign("top")
//	a := d.Component(d.Top(), "a")
//	b := d.Component(d.Top(), "b")
//	out := d.OutPort(a, "out", hwnet.Bits(8))
//	in := d.InPort(b, "in", hwnet.Bits(8))
//	d.Update("upblk", a, out)
//	if err := d.Connect(out, in); err != nil {
//		// ...
//	}
//	nets, err := d.Elaborate()
//
type Design struct {
	*Hierarchy
	g      *Graph
	blocks []UpdateBlock
	nets   *NetList
}

// NewDesign returns a new empty design.
//
func NewDesign(top string) *Design {
	h := NewHierarchy(top)
	return &Design{Hierarchy: h, g: NewGraph(h)}
}

// Connect connects signals a and b. See Graph.Connect.
//
func (d *Design) Connect(a, b Sig) error {
	d.nets = nil
	return d.g.Connect(a, b)
}

// ConnectConst connects s to a new constant owned by owner. See
// Graph.ConnectConst.
//
func (d *Design) ConnectConst(owner Comp, s Sig, v uint64) (Sig, error) {
	d.nets = nil
	return d.g.ConnectConst(owner, s, v)
}

// ConnectPairs connects signals pairwise. See Graph.ConnectPairs.
//
func (d *Design) ConnectPairs(sigs ...Sig) error {
	d.nets = nil
	return d.g.ConnectPairs(sigs...)
}

// Update declares an update block of component host writing the given
// signals.
//
func (d *Design) Update(name string, host Comp, writes ...Sig) {
	d.mustComp(host)
	d.nets = nil
	d.blocks = append(d.blocks, UpdateBlock{Name: name, Host: host, Writes: writes})
}

// Edges returns the declared connections.
//
func (d *Design) Edges() []Edge { return d.g.Edges() }

// Blocks returns the declared update blocks.
//
func (d *Design) Blocks() []UpdateBlock {
	return append([]UpdateBlock(nil), d.blocks...)
}

// Elaborate resolves the nets of the design. On success, the result is also
// available from Nets until the next connection or update block is declared.
//
func (d *Design) Elaborate(opts ...Option) (*NetList, error) {
	l, err := Resolve(d.Hierarchy, d.g.edges, d.blocks, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "elaborate "+d.CompName(d.Top()))
	}
	d.nets = l
	return l, nil
}

// Nets returns the nets of the last successful elaboration. It returns
// ErrNotElaborated if the design has changed since.
//
// Declaring new signals does not invalidate nets since signals without
// connections do not belong to any net.
//
func (d *Design) Nets() (*NetList, error) {
	if d.nets == nil {
		return nil, ErrNotElaborated
	}
	return d.nets, nil
}
