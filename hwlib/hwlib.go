// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwlib provides a library of reusable components for hwnet designs.
//
// Each builder declares a new component in a design and returns it as a
// Part. Behavioral parts declare an update block writing all their outputs.
// Structural parts are built from other parts of this package.
//
package hwlib

import (
	"github.com/db47h/hwnet"
	"github.com/pkg/errors"
)

// common port names
const (
	pA    = "a"
	pB    = "b"
	pIn   = "in"
	pSel  = "sel"
	pOut  = "out"
	pCin  = "cin"
	pCout = "cout"
	pSum  = "s"
	pC    = "c"
)

// A Part is a component placed in a design.
//
type Part struct {
	Comp  hwnet.Comp
	ports map[string]hwnet.Sig
}

// Port returns the named port of the part. It panics if there is no such
// port.
//
func (p *Part) Port(name string) hwnet.Sig {
	s, ok := p.ports[name]
	if !ok {
		panic(errors.Errorf("part %d has no port %q", p.Comp, name))
	}
	return s
}

// Out returns the "out" port of the part.
//
func (p *Part) Out() hwnet.Sig { return p.Port(pOut) }

// In returns the "in" port of the part.
//
func (p *Part) In() hwnet.Sig { return p.Port(pIn) }

// port is a port declaration. A nil typ uses the type the part is placed
// with.
//
type port struct {
	name string
	typ  *hwnet.Type
}

func ports(names ...string) []port {
	ps := make([]port, len(names))
	for i, n := range names {
		ps[i] = port{name: n}
	}
	return ps
}

var bit = hwnet.Bits(1)

type partSpec struct {
	// name of the update block declared by behavior
	name    string
	inputs  []port
	outputs []port
	// mount declares the internals of a placed part. Defaults to behavior.
	mount func(d *hwnet.Design, p *Part)
}

// place declares a new component named name in parent with the ports of s.
//
func (s *partSpec) place(d *hwnet.Design, parent hwnet.Comp, name string, t hwnet.Type) *Part {
	p := &Part{
		Comp:  d.Component(parent, name),
		ports: make(map[string]hwnet.Sig, len(s.inputs)+len(s.outputs)),
	}
	typ := func(pt port) hwnet.Type {
		if pt.typ != nil {
			return *pt.typ
		}
		return t
	}
	for _, in := range s.inputs {
		p.ports[in.name] = d.InPort(p.Comp, in.name, typ(in))
	}
	for _, out := range s.outputs {
		p.ports[out.name] = d.OutPort(p.Comp, out.name, typ(out))
	}
	m := s.mount
	if m == nil {
		m = s.behavior
	}
	m(d, p)
	return p
}

// behavior declares an update block named after s writing all outputs of p.
//
func (s *partSpec) behavior(d *hwnet.Design, p *Part) {
	outs := make([]hwnet.Sig, len(s.outputs))
	for i, o := range s.outputs {
		outs[i] = p.ports[o.name]
	}
	d.Update(s.name, p.Comp, outs...)
}

// connect panics on connection errors. Connections between parts of this
// library have matching types by construction.
//
func connect(d *hwnet.Design, sigs ...hwnet.Sig) {
	if err := d.ConnectPairs(sigs...); err != nil {
		panic(err)
	}
}
