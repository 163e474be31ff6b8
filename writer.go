// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwnet

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// An UpdateBlock is a behavioral block of component Host. Writes lists the
// signals it assigns, as written in the block: a write to a struct field or a
// slice must list the field or slice, not the whole signal.
//
type UpdateBlock struct {
	Name   string
	Host   Comp
	Writes []Sig
}

// writers is the writer propagation record. A signal present in the record
// is a potential writer. A true value means that the whole value of the
// signal is known, so that its fields and slices can use it as their writer.
// A false value is recorded for ancestors of partially written signals.
//
// Entries are never removed and true values are never downgraded.
//
type writers map[Sig]bool

func (w writers) addAncestors(h *Hierarchy, s Sig) {
	for _, a := range h.sigs[s].ancestors {
		if _, ok := w[a]; !ok {
			w[a] = false
		}
	}
}

// seedWriters builds the initial record from update block writes, constants
// and the input ports of the top component.
//
func seedWriters(h *Hierarchy, blocks []UpdateBlock, netOf map[Sig][]Sig) (writers, error) {
	w := make(writers)
	by := make(map[Sig][]string)
	for i := range blocks {
		b := &blocks[i]
		name := h.CompName(b.Host) + "." + b.Name
		for _, s := range b.Writes {
			if !h.validSig(s) {
				return nil, errors.Errorf("update block %s writes invalid signal handle %d", name, s)
			}
			by[s] = append(by[s], name)
		}
	}

	var multi []Sig
	for s, bs := range by {
		w[s] = true
		sort.Strings(bs)
		k := 0
		for _, b := range bs {
			if k == 0 || b != bs[k-1] {
				bs[k] = b
				k++
			}
		}
		by[s] = bs[:k]
		if k > 1 {
			multi = append(multi, s)
		}
	}
	if len(multi) > 0 {
		h.sortSigs(multi)
		s := multi[0]
		return nil, &MultiWriterError{
			First: Claim{Signal: h.Name(s), Through: h.Name(s), Blocks: by[s]},
			Net:   h.names(netOf[s]),
		}
	}
	for s := range by {
		w.addAncestors(h, s)
	}

	top := h.Top()
	for i := range h.sigs {
		p := &h.sigs[i]
		if p.kind == Const || p.kind == InPort && p.view == NoView && p.comp == top {
			w[Sig(i)] = true
		}
	}
	return w, nil
}

type claim struct {
	member  Sig
	through Sig
}

// claims returns the writer claims of net members, in member order.
//
func (w writers) claims(h *Hierarchy, net []Sig) []claim {
	var cs []claim
	for _, m := range net {
		if _, ok := w[m]; ok {
			cs = append(cs, claim{m, m})
		}
		for _, a := range h.sigs[m].ancestors {
			if w[a] {
				cs = append(cs, claim{m, a})
				break
			}
		}
		for _, o := range h.siblingSlices(m) {
			if o != m && w[o] && h.sigs[m].overlaps(&h.sigs[o]) {
				cs = append(cs, claim{m, o})
			}
		}
	}
	return cs
}

func multiWriter(h *Hierarchy, net []Sig, cs []claim) error {
	return &MultiWriterError{
		First:  Claim{Signal: h.Name(cs[0].member), Through: h.Name(cs[0].through)},
		Second: Claim{Signal: h.Name(cs[1].member), Through: h.Name(cs[1].through)},
		Net:    h.names(net),
	}
}

// recheck checks resolved nets against the final record. A net resolved in
// an early pass may have gained a claim afterwards, when a later pass marked
// one of its members' ancestors or overlapping slices as true. Claims through
// the readers of the net itself are ignored.
//
func (w writers) recheck(h *Hierarchy, nets [][]Sig, ws []Sig) error {
	for n, net := range nets {
		var cs []claim
		for _, c := range w.claims(h, net) {
			if c.through == ws[n] || !contains(net, c.through) {
				cs = append(cs, c)
			}
		}
		if len(cs) > 1 {
			return multiWriter(h, net, cs)
		}
	}
	return nil
}

// contains reports whether net contains s.
//
func contains(net []Sig, s Sig) bool {
	for _, m := range net {
		if m == s {
			return true
		}
	}
	return false
}

// resolveWriters runs the writer fixed point over nets and returns the writer
// of each net.
//
// Each pass evaluates all pending nets against the record as it stood at the
// beginning of the pass, then records the readers of newly resolved nets as
// writers for the next pass. Once all nets are resolved, they are checked
// again against the final record.
//
func resolveWriters(h *Hierarchy, nets [][]Sig, w writers, log logrus.FieldLogger) ([]Sig, error) {
	ws := make([]Sig, len(nets))
	pending := make([]int, len(nets))
	for i := range nets {
		ws[i] = NoSig
		pending[i] = i
	}

	for pass := 1; len(pending) > 0; pass++ {
		var next, done []int
		for _, n := range pending {
			cs := w.claims(h, nets[n])
			switch len(cs) {
			case 0:
				next = append(next, n)
			case 1:
				ws[n] = cs[0].member
				done = append(done, n)
			default:
				return nil, multiWriter(h, nets[n], cs)
			}
		}

		log.WithFields(logrus.Fields{
			"pass":     pass,
			"resolved": len(done),
			"pending":  len(next),
		}).Debug("writer resolution pass")

		if len(done) == 0 {
			e := &NoWriterError{Nets: make([][]string, len(next))}
			for i, n := range next {
				e.Nets[i] = h.names(nets[n])
			}
			return nil, e
		}

		for _, n := range done {
			for _, m := range nets[n] {
				if m != ws[n] {
					w[m] = true
				}
			}
		}
		for _, n := range done {
			for _, m := range nets[n] {
				if m != ws[n] {
					w.addAncestors(h, m)
				}
			}
		}
		pending = next
	}
	if err := w.recheck(h, nets, ws); err != nil {
		return nil, err
	}
	return ws, nil
}
