// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"github.com/db47h/hwnet"
)

var source = partSpec{name: "source", outputs: ports(pOut)}

// Source returns a stimulus generator.
//
//	Outputs: out
//	Function: out = f() // f is provided by the simulator
//
func Source(d *hwnet.Design, parent hwnet.Comp, name string, t hwnet.Type) *Part {
	return source.place(d, parent, name, t)
}

var sink = partSpec{
	inputs: ports(pIn),
	mount:  func(*hwnet.Design, *Part) {},
}

// Sink returns an output or probe.
//
//	Inputs: in
//	Function: f(in) // f is provided by the simulator
//
func Sink(d *hwnet.Design, parent hwnet.Comp, name string, t hwnet.Type) *Part {
	return sink.place(d, parent, name, t)
}

// ConstSource returns a component driving its output with a constant.
//
//	Outputs: out
//	Function: out = v
//
func ConstSource(d *hwnet.Design, parent hwnet.Comp, name string, t hwnet.Type, v uint64) *Part {
	s := partSpec{
		outputs: ports(pOut),
		mount: func(d *hwnet.Design, p *Part) {
			if _, err := d.ConnectConst(p.Comp, p.Out(), v); err != nil {
				panic(err)
			}
		},
	}
	return s.place(d, parent, name, t)
}
