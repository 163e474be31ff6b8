// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwnet

import (
	"strconv"
)

// Kind is the direction kind of a signal.
//
type Kind int

// Signal kinds.
//
const (
	InPort Kind = iota
	OutPort
	Wire
	Const
)

var kindNames = [...]string{
	InPort:  "InPort",
	OutPort: "OutPort",
	Wire:    "Wire",
	Const:   "Const",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// View tells whether a signal is a root signal or a view derived from another
// signal.
//
type View int

// Signal views.
//
const (
	NoView    View = iota // root signal owned by a component
	FieldView             // struct field projection of its base signal
	SliceView             // bit slice of its base signal
)

// A Type is the value type of a signal: either a bit vector or a struct of
// named fields.
//
type Type struct {
	Name   string
	Width  int
	Fields []FieldType
}

// A FieldType is a named field in a struct Type.
//
type FieldType struct {
	Name string
	Type Type
}

// Bits returns the type of a bit vector of the given width.
//
func Bits(width int) Type {
	return Type{Name: "Bits" + strconv.Itoa(width), Width: width}
}

// Struct returns a struct type with the given fields. Its width is the sum
// of the widths of its fields.
//
//	point := hwnet.Struct("Point", hwnet.F("x", hwnet.Bits(8)), hwnet.F("y", hwnet.Bits(8)))
//
func Struct(name string, fields ...FieldType) Type {
	w := 0
	for _, f := range fields {
		w += f.Type.Width
	}
	return Type{Name: name, Width: w, Fields: fields}
}

// F is a shorthand for FieldType{name, t}.
//
func F(name string, t Type) FieldType {
	return FieldType{Name: name, Type: t}
}

// Field returns the type of the named field.
//
func (t Type) Field(name string) (Type, bool) {
	for _, f := range t.Fields {
		if f.Name == name {
			return f.Type, true
		}
	}
	return Type{}, false
}

// IsStruct returns true if t has fields.
//
func (t Type) IsStruct() bool { return len(t.Fields) > 0 }

// Equal reports whether two types can be connected together.
//
func (t Type) Equal(o Type) bool {
	if t.Name != o.Name || t.Width != o.Width || len(t.Fields) != len(o.Fields) {
		return false
	}
	for i := range t.Fields {
		if t.Fields[i].Name != o.Fields[i].Name || !t.Fields[i].Type.Equal(o.Fields[i].Type) {
			return false
		}
	}
	return true
}

func (t Type) String() string { return t.Name }

// Sig is a handle to a signal in a Hierarchy.
//
type Sig int

// NoSig is the invalid signal handle.
//
const NoSig Sig = -1

type signal struct {
	name string
	path string
	kind Kind
	view View
	typ  Type
	comp Comp // owner of root signals and constants
	base Sig  // owner of views
	lo   int  // slice range [lo:hi)
	hi   int
	val  uint64

	// precomputed at construction time
	host      Comp
	ancestors []Sig // nearest first
	fields    map[string]Sig
	slices    []Sig
}

func (s *signal) overlaps(o *signal) bool {
	return s.lo < o.hi && o.lo < s.hi
}
