// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwtest provides utility functions for testing designs.
//
package hwtest

import (
	"io"
	"math/rand"
	"testing"
	"time"

	"github.com/db47h/hwnet"
	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
)

// Net is a net summary using signal names.
//
type Net struct {
	Writer  string
	Readers []string
}

// Nets returns a summary of all nets in l.
//
func Nets(l *hwnet.NetList) []Net {
	h := l.Hierarchy()
	r := make([]Net, 0, l.Len())
	for _, n := range l.Nets() {
		s := Net{Writer: h.Name(n.Writer), Readers: make([]string, len(n.Readers))}
		for i, rd := range n.Readers {
			s.Readers[i] = h.Name(rd)
		}
		r = append(r, s)
	}
	return r
}

// Shuffle returns copies of edges and blocks in random order. The endpoints
// of each edge and the writes of each block are shuffled as well.
//
func Shuffle(r *rand.Rand, edges []hwnet.Edge, blocks []hwnet.UpdateBlock) ([]hwnet.Edge, []hwnet.UpdateBlock) {
	es := make([]hwnet.Edge, len(edges))
	for i, e := range edges {
		if r.Intn(2) == 0 {
			e.A, e.B = e.B, e.A
		}
		es[i] = e
	}
	r.Shuffle(len(es), func(i, j int) { es[i], es[j] = es[j], es[i] })

	bs := make([]hwnet.UpdateBlock, len(blocks))
	for i, b := range blocks {
		b.Writes = append([]hwnet.Sig(nil), b.Writes...)
		r.Shuffle(len(b.Writes), func(i, j int) { b.Writes[i], b.Writes[j] = b.Writes[j], b.Writes[i] })
		bs[i] = b
	}
	r.Shuffle(len(bs), func(i, j int) { bs[i], bs[j] = bs[j], bs[i] })
	return es, bs
}

func outcome(h *hwnet.Hierarchy, edges []hwnet.Edge, blocks []hwnet.UpdateBlock) string {
	log := logrus.New()
	log.SetOutput(io.Discard)
	l, err := hwnet.Resolve(h, edges, blocks, hwnet.WithLogger(log))
	if err != nil {
		return "error: " + err.Error()
	}
	return l.String()
}

// CompareOrders resolves the nets of d with edges and update blocks in
// declaration order, then runs the resolution again n times with shuffled
// edges and blocks (see Shuffle). It fails t if any run yields a different
// net list or error.
//
func CompareOrders(t testing.TB, d *hwnet.Design, n int) {
	t.Helper()

	seed := time.Now().UnixNano()
	r := rand.New(rand.NewSource(seed))

	edges, blocks := d.Edges(), d.Blocks()
	want := outcome(d.Hierarchy, edges, blocks)
	for i := 0; i < n; i++ {
		es, bs := Shuffle(r, edges, blocks)
		got := outcome(d.Hierarchy, es, bs)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("seed %d, run %d: outcome depends on declaration order (-want +got):\n%s", seed, i, diff)
		}
	}
}
