// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwnet

import (
	"strconv"

	"github.com/pkg/errors"
)

// An Edge is an undirected connection between two signals.
//
type Edge struct {
	A, B Sig
}

// key returns a canonical form of e used to detect duplicates.
func (e Edge) key() Edge {
	if e.A > e.B {
		return Edge{e.B, e.A}
	}
	return e
}

// A Graph records connections between signals of a Hierarchy.
//
// Connecting the same two signals more than once, in any order, records a
// single edge.
//
type Graph struct {
	h     *Hierarchy
	edges []Edge
	seen  map[Edge]struct{}
}

// NewGraph returns an empty connection graph over the signals of h.
//
func NewGraph(h *Hierarchy) *Graph {
	return &Graph{h: h, seen: make(map[Edge]struct{})}
}

// Connect connects signals a and b. It returns a *MalformedEdgeError if a or b
// is not a valid signal, if a == b or if their types differ.
//
func (g *Graph) Connect(a, b Sig) error {
	if err := checkEdge(g.h, a, b); err != nil {
		return err
	}
	k := Edge{a, b}.key()
	if _, ok := g.seen[k]; ok {
		return nil
	}
	g.seen[k] = struct{}{}
	g.edges = append(g.edges, Edge{a, b})
	return nil
}

// ConnectConst connects signal s to a new constant of value v. The constant
// is owned by component owner, which should be the component declaring the
// connection. It returns the new constant.
//
func (g *Graph) ConnectConst(owner Comp, s Sig, v uint64) (Sig, error) {
	if !g.h.validSig(s) {
		return NoSig, &MalformedEdgeError{Fault: UnknownSignal, A: g.h.Name(s), B: strconv.FormatUint(v, 10)}
	}
	if !g.h.validComp(owner) {
		return NoSig, errors.Errorf("invalid owner component handle %d for constant %d", owner, v)
	}
	c := g.h.constant(owner, g.h.Type(s), v)
	return c, g.Connect(s, c)
}

// ConnectPairs connects signals pairwise:
//
//	g.ConnectPairs(a, b, c, d) // same as g.Connect(a, b); g.Connect(c, d)
//
func (g *Graph) ConnectPairs(sigs ...Sig) error {
	if len(sigs)&1 != 0 {
		return errors.Errorf("odd number (%d) of signals to connect", len(sigs))
	}
	for i := 0; i < len(sigs); i += 2 {
		if err := g.Connect(sigs[i], sigs[i+1]); err != nil {
			return errors.Wrapf(err, "connect pair, arguments %d and %d", i+1, i+2)
		}
	}
	return nil
}

// Edges returns the edges in declaration order.
//
func (g *Graph) Edges() []Edge {
	return append([]Edge(nil), g.edges...)
}

func checkEdge(h *Hierarchy, a, b Sig) error {
	switch {
	case !h.validSig(a) || !h.validSig(b):
		return &MalformedEdgeError{Fault: UnknownSignal, A: h.Name(a), B: h.Name(b)}
	case a == b:
		return &MalformedEdgeError{Fault: SelfLoop, A: h.Name(a), B: h.Name(b)}
	}
	ta, tb := h.sigs[a].typ, h.sigs[b].typ
	if !ta.Equal(tb) {
		return &MalformedEdgeError{Fault: TypeMismatch, A: h.Name(a), B: h.Name(b), TA: ta, TB: tb}
	}
	return nil
}

// adjacency maps each connected signal to its neighbours, sorted by name.
//
type adjacency map[Sig][]Sig

func buildAdjacency(h *Hierarchy, edges []Edge) (adjacency, error) {
	adj := make(adjacency)
	seen := make(map[Edge]struct{}, len(edges))
	for _, e := range edges {
		if err := checkEdge(h, e.A, e.B); err != nil {
			return nil, err
		}
		k := e.key()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		adj[e.A] = append(adj[e.A], e.B)
		adj[e.B] = append(adj[e.B], e.A)
	}
	for _, l := range adj {
		h.sortSigs(l)
	}
	return adj, nil
}
