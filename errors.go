// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwnet

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrNotElaborated is returned by Design.Nets when the design has not been
// successfully elaborated since its last change.
//
var ErrNotElaborated = errors.New("design not elaborated")

// EdgeFault is the reason a connection was rejected.
//
type EdgeFault int

// Edge faults.
//
const (
	SelfLoop EdgeFault = iota
	TypeMismatch
	UnknownSignal
)

var edgeFaultNames = [...]string{
	SelfLoop:      "signal connected to itself",
	TypeMismatch:  "type mismatch",
	UnknownSignal: "unknown signal",
}

func (f EdgeFault) String() string {
	if f < 0 || int(f) >= len(edgeFaultNames) {
		return "EdgeFault(" + strconv.Itoa(int(f)) + ")"
	}
	return edgeFaultNames[f]
}

// A MalformedEdgeError is returned when connecting two signals that cannot be
// connected.
//
type MalformedEdgeError struct {
	Fault EdgeFault
	A, B  string // signal names
	TA    Type
	TB    Type
}

func (e *MalformedEdgeError) Error() string {
	var b strings.Builder
	b.WriteString("invalid connection ")
	b.WriteString(e.A)
	b.WriteString(":")
	b.WriteString(e.B)
	b.WriteString(": ")
	b.WriteString(e.Fault.String())
	if e.Fault == TypeMismatch {
		b.WriteString(" (")
		b.WriteString(e.TA.String())
		b.WriteString(" vs. ")
		b.WriteString(e.TB.String())
		b.WriteString(")")
	}
	return b.String()
}

// A Claim is a net member's claim to be the writer of its net.
//
type Claim struct {
	Signal string
	// Through is the written signal the claim originates from. It is either
	// Signal itself, an ancestor of Signal or a slice overlapping Signal.
	Through string
	// Blocks lists the update blocks writing Signal when the conflict is
	// between update blocks.
	Blocks []string
}

func (c Claim) String() string {
	var b strings.Builder
	b.WriteString(strconv.Quote(c.Signal))
	if c.Through != "" && c.Through != c.Signal {
		b.WriteString(" (as ")
		b.WriteString(strconv.Quote(c.Through))
		b.WriteString(" is written elsewhere)")
	}
	if len(c.Blocks) > 0 {
		b.WriteString(" written by update blocks ")
		b.WriteString(strings.Join(c.Blocks, ", "))
	}
	return b.String()
}

// A MultiWriterError is returned when a net has more than one writer. When a
// single signal is written by several update blocks, Second is empty and
// First.Blocks lists the blocks.
//
type MultiWriterError struct {
	First, Second Claim
	Net           []string // all members of the net, if any
}

func (e *MultiWriterError) Error() string {
	var b strings.Builder
	if e.Second.Signal == "" {
		b.WriteString("multiple writers for ")
		b.WriteString(e.First.String())
	} else {
		b.WriteString("two-writer conflict ")
		b.WriteString(e.First.String())
		b.WriteString(", ")
		b.WriteString(e.Second.String())
	}
	if len(e.Net) > 0 {
		b.WriteString(" in net:")
		writeList(&b, e.Net)
	}
	return b.String()
}

// A NoWriterError is returned when one or more nets have no writer. Nets
// lists the members of each net.
//
type NoWriterError struct {
	Nets [][]string
}

func (e *NoWriterError) Error() string {
	var b strings.Builder
	b.WriteString("no writer for ")
	b.WriteString(strconv.Itoa(len(e.Nets)))
	b.WriteString(" net(s):")
	for _, n := range e.Nets {
		b.WriteString("\n - ")
		b.WriteString(strings.Join(n, ", "))
	}
	return b.String()
}

// A PortDirectionError is returned when the kinds of a writer and a reader
// directly connected together are incompatible with the relative position of
// their host components in the hierarchy.
//
type PortDirectionError struct {
	Writer, Reader         string
	WriterKind, ReaderKind Kind
	WriterHost, ReaderHost string
	Category               Relation
}

var directionRules = [...]string{
	Identical: "a signal can only drive an OutPort or Wire of its own component",
	Parent:    "a writer nested deeper than its reader must be an OutPort driving an OutPort or Wire",
	Child:     "a writer in the parent component can only drive an InPort",
	Sibling:   "an OutPort of a sibling component can only drive an InPort",
	Unrelated: "host components are too far apart in the hierarchy to be connected",
}

// Rule returns the description of the violated rule.
//
func (e *PortDirectionError) Rule() string {
	if e.Category < 0 || int(e.Category) >= len(directionRules) {
		return e.Category.String()
	}
	return directionRules[e.Category]
}

func (e *PortDirectionError) Error() string {
	return e.ReaderKind.String() + " " + strconv.Quote(e.Reader) + " of " + e.ReaderHost +
		" cannot be driven by " + e.WriterKind.String() + " " + strconv.Quote(e.Writer) + " of " + e.WriterHost +
		" (" + e.Category.String() + "): " + e.Rule()
}

func writeList(b *strings.Builder, l []string) {
	for _, s := range l {
		b.WriteString("\n - ")
		b.WriteString(s)
	}
}
