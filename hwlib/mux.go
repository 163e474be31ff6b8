// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"github.com/db47h/hwnet"
)

var mux = partSpec{
	name:    "mux",
	inputs:  []port{{name: pA}, {name: pB}, {pSel, &bit}},
	outputs: ports(pOut),
}

// Mux returns a multiplexer.
//
//	Inputs: a, b, sel[1]
//	Outputs: out
//	Function: if sel == 0 { out = a } else { out = b }
//
func Mux(d *hwnet.Design, parent hwnet.Comp, name string, t hwnet.Type) *Part {
	return mux.place(d, parent, name, t)
}

var dmux = partSpec{
	name:    "dmux",
	inputs:  []port{{name: pIn}, {pSel, &bit}},
	outputs: ports(pA, pB),
}

// DMux returns a demultiplexer.
//
//	Inputs: in, sel[1]
//	Outputs: a, b
//	Function: if sel == 0 { a = in; b = 0 } else { a = 0; b = in }
//
func DMux(d *hwnet.Design, parent hwnet.Comp, name string, t hwnet.Type) *Part {
	return dmux.place(d, parent, name, t)
}
