// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwnet

import (
	"fmt"
	"strings"

	"github.com/mitchellh/hashstructure"
	"github.com/pkg/errors"
)

// A Net is a set of connected signals with a single writer. Readers are sorted
// by name.
//
type Net struct {
	ID      string
	Writer  Sig
	Readers []Sig
}

// A NetList is the result of net resolution. Nets are sorted by the name of
// their first member.
//
type NetList struct {
	h     *Hierarchy
	nets  []Net
	byID  map[string]int
	bySig map[Sig]int
}

// netID returns a stable identifier for a net, derived from the sorted names
// of its members.
//
func netID(members []string) (string, error) {
	v, err := hashstructure.Hash(members, nil)
	if err != nil {
		return "", errors.Wrap(err, "hash net members")
	}
	return fmt.Sprintf("%016x", v), nil
}

func newNetList(h *Hierarchy, nets [][]Sig, ws []Sig) (*NetList, error) {
	l := &NetList{
		h:     h,
		nets:  make([]Net, len(nets)),
		byID:  make(map[string]int, len(nets)),
		bySig: make(map[Sig]int),
	}
	for i, members := range nets {
		id, err := netID(h.names(members))
		if err != nil {
			return nil, err
		}
		if j, ok := l.byID[id]; ok {
			return nil, errors.Errorf("net id collision between %s and %s", h.Name(members[0]), h.Name(l.nets[j].Writer))
		}
		n := Net{ID: id, Writer: ws[i], Readers: make([]Sig, 0, len(members)-1)}
		for _, m := range members {
			if m != n.Writer {
				n.Readers = append(n.Readers, m)
			}
			l.bySig[m] = i
		}
		l.nets[i] = n
		l.byID[id] = i
	}
	return l, nil
}

// Hierarchy returns the hierarchy the nets belong to.
//
func (l *NetList) Hierarchy() *Hierarchy { return l.h }

// Len returns the number of nets.
//
func (l *NetList) Len() int { return len(l.nets) }

// Nets returns all nets. The returned slice must not be modified.
//
func (l *NetList) Nets() []Net { return l.nets }

// Lookup returns the net with the given ID.
//
func (l *NetList) Lookup(id string) (Net, bool) {
	i, ok := l.byID[id]
	if !ok {
		return Net{}, false
	}
	return l.nets[i], true
}

// NetOf returns the net signal s belongs to. Signals without connections do
// not belong to any net.
//
func (l *NetList) NetOf(s Sig) (Net, bool) {
	i, ok := l.bySig[s]
	if !ok {
		return Net{}, false
	}
	return l.nets[i], true
}

// String returns a text dump of the net list, one net per line:
//
//	<id> <writer> -> <reader>, <reader>...
//
func (l *NetList) String() string {
	var b strings.Builder
	for _, n := range l.nets {
		b.WriteString(n.ID)
		b.WriteByte(' ')
		b.WriteString(l.h.Name(n.Writer))
		b.WriteString(" -> ")
		b.WriteString(strings.Join(l.h.names(n.Readers), ", "))
		b.WriteByte('\n')
	}
	return b.String()
}
