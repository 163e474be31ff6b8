// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"strconv"

	"github.com/db47h/hwnet"
)

var hAdder = partSpec{
	name:    "halfAdder",
	inputs:  ports(pA, pB),
	outputs: ports(pSum, pC),
}

// HalfAdder returns a half adder.
//
//	Inputs: a[1], b[1]
//	Outputs: s[1], c[1]
//	Function: s = lsb(a + b)
//	          c = msb(a + b)
//
func HalfAdder(d *hwnet.Design, parent hwnet.Comp, name string) *Part {
	return hAdder.place(d, parent, name, bit)
}

var adder = partSpec{
	name:    "fullAdder",
	inputs:  ports(pA, pB, pCin),
	outputs: ports(pSum, pCout),
}

// FullAdder returns a 3 bit adder.
//
//	Inputs: a[1], b[1], cin[1]
//	Outputs: s[1], cout[1]
//	Function: s = lsb(a + b + cin)
//	          cout = msb(a + b + cin)
//
func FullAdder(d *hwnet.Design, parent hwnet.Comp, name string) *Part {
	return adder.place(d, parent, name, bit)
}

// AdderN returns a N-bits ripple carry adder built from full adders.
//
//	Inputs: a[bits], b[bits]
//	Outputs: out[bits], c[1]
//
func AdderN(d *hwnet.Design, parent hwnet.Comp, name string, bits int) *Part {
	s := partSpec{
		inputs:  ports(pA, pB),
		outputs: []port{{name: pOut}, {pC, &bit}},
		mount: func(d *hwnet.Design, p *Part) {
			a, b, out := p.Port(pA), p.Port(pB), p.Out()
			var carry hwnet.Sig
			for i := 0; i < bits; i++ {
				fa := FullAdder(d, p.Comp, "fa"+strconv.Itoa(i))
				connect(d,
					d.Slice(a, i, i+1), fa.Port(pA),
					d.Slice(b, i, i+1), fa.Port(pB),
					fa.Port(pSum), d.Slice(out, i, i+1),
				)
				if i == 0 {
					if _, err := d.ConnectConst(p.Comp, fa.Port(pCin), 0); err != nil {
						panic(err)
					}
				} else {
					connect(d, carry, fa.Port(pCin))
				}
				carry = fa.Port(pCout)
			}
			connect(d, carry, p.Port(pC))
		},
	}
	return s.place(d, parent, name, hwnet.Bits(bits))
}
