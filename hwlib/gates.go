// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"github.com/db47h/hwnet"
)

var notGate = partSpec{name: "not", inputs: ports(pIn), outputs: ports(pOut)}

// Not returns a NOT gate.
//
//	Inputs: in
//	Outputs: out
//	Function: out = ^in
//
func Not(d *hwnet.Design, parent hwnet.Comp, name string, t hwnet.Type) *Part {
	return notGate.place(d, parent, name, t)
}

func gate(name string) partSpec {
	return partSpec{name: name, inputs: ports(pA, pB), outputs: ports(pOut)}
}

var (
	andGate  = gate("and")
	nandGate = gate("nand")
	orGate   = gate("or")
	norGate  = gate("nor")
)

// And returns a AND gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a & b
//
func And(d *hwnet.Design, parent hwnet.Comp, name string, t hwnet.Type) *Part {
	return andGate.place(d, parent, name, t)
}

// Nand returns a NAND gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = ^(a & b)
//
func Nand(d *hwnet.Design, parent hwnet.Comp, name string, t hwnet.Type) *Part {
	return nandGate.place(d, parent, name, t)
}

// Or returns a OR gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a | b
//
func Or(d *hwnet.Design, parent hwnet.Comp, name string, t hwnet.Type) *Part {
	return orGate.place(d, parent, name, t)
}

// Nor returns a NOR gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = ^(a | b)
//
func Nor(d *hwnet.Design, parent hwnet.Comp, name string, t hwnet.Type) *Part {
	return norGate.place(d, parent, name, t)
}

// Xor returns a XOR gate built from NOT, AND and OR gates.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = (a & ^b) | (^a & b)
//
func Xor(d *hwnet.Design, parent hwnet.Comp, name string, t hwnet.Type) *Part {
	return xorGate.place(d, parent, name, t)
}

var xorGate = partSpec{
	inputs:  ports(pA, pB),
	outputs: ports(pOut),
	mount: func(d *hwnet.Design, p *Part) {
		t := d.Type(p.Port(pA))
		nota := Not(d, p.Comp, "nota", t)
		notb := Not(d, p.Comp, "notb", t)
		w1 := And(d, p.Comp, "and1", t)
		w2 := And(d, p.Comp, "and2", t)
		or := Or(d, p.Comp, "or", t)
		connect(d,
			p.Port(pA), nota.In(),
			p.Port(pB), notb.In(),
			p.Port(pA), w1.Port(pA),
			notb.Out(), w1.Port(pB),
			p.Port(pB), w2.Port(pA),
			nota.Out(), w2.Port(pB),
			w1.Out(), or.Port(pA),
			w2.Out(), or.Port(pB),
			or.Out(), p.Out(),
		)
	},
}

// OrNWay returns a N-Way OR gate.
//
//	Inputs: in[ways]
//	Outputs: out[1]
//	Function: out = in[0] | in[1] | ... | in[ways-1]
//
func OrNWay(d *hwnet.Design, parent hwnet.Comp, name string, ways int) *Part {
	return orNWay.place(d, parent, name, hwnet.Bits(ways))
}

// AndNWay returns a N-Way AND gate.
//
//	Inputs: in[ways]
//	Outputs: out[1]
//	Function: out = in[0] & in[1] & ... & in[ways-1]
//
func AndNWay(d *hwnet.Design, parent hwnet.Comp, name string, ways int) *Part {
	return andNWay.place(d, parent, name, hwnet.Bits(ways))
}

var (
	orNWay  = partSpec{name: "orNWay", inputs: ports(pIn), outputs: []port{{pOut, &bit}}}
	andNWay = partSpec{name: "andNWay", inputs: ports(pIn), outputs: []port{{pOut, &bit}}}
)
