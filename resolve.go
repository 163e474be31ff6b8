// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwnet

import (
	"github.com/sirupsen/logrus"
)

// An Option configures Resolve.
//
type Option func(*options)

type options struct {
	log logrus.FieldLogger
}

// WithLogger sets the logger used to trace resolution. Defaults to
// logrus.StandardLogger().
//
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) { o.log = l }
}

// Resolve groups the signals of h connected by edges into nets, finds the
// writer of each net and checks that every connection obeys the port
// direction rules of the hierarchy.
//
// The writer of a net is found among its members:
//
//	- signals written by an update block,
//	- constants and input ports of the top component,
//	- fields and slices of signals whose whole value is written, either
//	  directly or as readers of another net,
//	- slices overlapping a slice whose whole value is written.
//
// Resolution fails with a *MultiWriterError if a net has more than one
// writer, a *NoWriterError if some nets have no writer, a *MalformedEdgeError
// for invalid edges, or one or more *PortDirectionError for the first net
// containing invalid connections (use errors.As to retrieve them).
//
// The result does not depend on the order of edges and blocks.
//
func Resolve(h *Hierarchy, edges []Edge, blocks []UpdateBlock, opts ...Option) (*NetList, error) {
	o := options{log: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(&o)
	}
	log := o.log.WithField("top", h.CompName(h.Top()))

	adj, err := buildAdjacency(h, edges)
	if err != nil {
		return nil, err
	}
	nets := discoverNets(h, adj)
	netOf := make(map[Sig][]Sig)
	for _, n := range nets {
		for _, s := range n {
			netOf[s] = n
		}
	}
	log.WithFields(logrus.Fields{"signals": len(adj), "nets": len(nets)}).Debug("nets discovered")

	w, err := seedWriters(h, blocks, netOf)
	if err != nil {
		return nil, err
	}
	ws, err := resolveWriters(h, nets, w, log)
	if err != nil {
		return nil, err
	}
	l, err := newNetList(h, nets, ws)
	if err != nil {
		return nil, err
	}
	if err = checkNets(h, adj, l.nets); err != nil {
		return nil, err
	}
	log.WithField("nets", l.Len()).Debug("nets resolved")
	return l, nil
}
