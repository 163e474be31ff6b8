// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package design loads hwnet designs from YAML description files.
//
// A design file declares the components, signals, connections and update
// blocks of a design:
//
//	top: cpu
//	types:
//	  Point:
//	    fields:
//	      - {name: lo, type: Bits8}
//	      - {name: hi, type: Bits8}
//	components: [alu, regs, regs.r0]
//	signals:
//	  - {path: alu.out, kind: out, type: Bits8}
//	  - {path: regs.in, kind: in, type: Bits8}
//	  - {path: regs.r0.in, kind: in, type: Bits8}
//	  - {path: regs.r0.sel, kind: in, type: Bits2}
//	connections:
//	  - {a: alu.out, b: regs.in}
//	  - {a: regs.in, b: regs.r0.in}
//	  - {a: regs.r0.sel, const: 1, in: regs}
//	updates:
//	  - {name: upblk, host: alu, writes: [alu.out]}
//
// Paths are relative to the top component. Signal references may select
// struct fields and bit slices: "alu.in.x" or "alu.out[0:4]". Types are
// either BitsN for a N bits vector or the name of a struct type declared in
// the types section.
//
package design

import (
	"bytes"
	"io"
	"os"

	"github.com/db47h/hwnet"
	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"
)

// File is the structure of a design file.
//
type File struct {
	Top         string              `json:"top"`
	Types       map[string]TypeDecl `json:"types,omitempty"`
	Components  []string            `json:"components,omitempty"`
	Signals     []SignalDecl        `json:"signals,omitempty"`
	Connections []ConnDecl          `json:"connections,omitempty"`
	Updates     []UpdateDecl        `json:"updates,omitempty"`
}

// TypeDecl declares a struct type.
//
type TypeDecl struct {
	Fields []FieldDecl `json:"fields"`
}

// FieldDecl declares a struct field.
//
type FieldDecl struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Signal kinds in design files.
//
const (
	KindIn   = "in"
	KindOut  = "out"
	KindWire = "wire"
)

// SignalDecl declares a port or wire. Path is the component path followed by
// the signal name.
//
type SignalDecl struct {
	Path string `json:"path"`
	Kind string `json:"kind"`
	Type string `json:"type"`
}

// ConnDecl declares a connection between signals A and B, or between A and a
// constant. Constants belong to component In, or to the top component if In
// is empty.
//
type ConnDecl struct {
	A     string  `json:"a"`
	B     string  `json:"b,omitempty"`
	Const *uint64 `json:"const,omitempty"`
	In    string  `json:"in,omitempty"`
}

// UpdateDecl declares an update block of component Host.
//
type UpdateDecl struct {
	Name   string   `json:"name"`
	Host   string   `json:"host"`
	Writes []string `json:"writes"`
}

// Parse parses a design file. Unknown keys are rejected.
//
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.UnmarshalStrict(data, &f); err != nil {
		return nil, errors.Wrap(err, "parse design")
	}
	return &f, nil
}

// Load reads a design file from r and builds it.
//
func Load(r io.Reader) (*hwnet.Design, error) {
	var b bytes.Buffer
	if _, err := b.ReadFrom(r); err != nil {
		return nil, errors.Wrap(err, "read design")
	}
	f, err := Parse(b.Bytes())
	if err != nil {
		return nil, err
	}
	return f.Build()
}

// LoadFile loads the named design file.
//
func LoadFile(name string) (*hwnet.Design, error) {
	r, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	d, err := Load(r)
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	return d, nil
}
