// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import "github.com/db47h/hwnet"

var (
	register = partSpec{name: "register", inputs: ports(pIn), outputs: ports(pOut)}
	dff      = partSpec{name: "dff", inputs: ports(pIn), outputs: ports(pOut)}
)

// Register returns a clocked register.
//
//	Inputs: in
//	Outputs: out
//	Function: out(t) = in(t-1) // where t is the current clock cycle.
//
func Register(d *hwnet.Design, parent hwnet.Comp, name string, t hwnet.Type) *Part {
	return register.place(d, parent, name, t)
}

// DFF returns a clocked data flip flop: a 1 bit Register.
//
func DFF(d *hwnet.Design, parent hwnet.Comp, name string) *Part {
	return dff.place(d, parent, name, bit)
}
