package hwnet

import (
	multierror "github.com/hashicorp/go-multierror"
)

// checkNets checks port directions net by net and stops at the first net with
// invalid connections.
//
func checkNets(h *Hierarchy, adj adjacency, nets []Net) error {
	for i := range nets {
		if err := checkNet(h, adj, &nets[i]); err != nil {
			return err
		}
	}
	return nil
}

// checkNet walks the net depth first from its writer. Each signal reached
// from u is driven by u. All invalid connections are reported.
//
func checkNet(h *Hierarchy, adj adjacency, n *Net) error {
	var errs *multierror.Error
	stack := []Sig{n.Writer}
	visited := map[Sig]bool{n.Writer: true}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, v := range adj[u] {
			if visited[v] {
				continue
			}
			visited[v] = true
			stack = append(stack, v)
			if err := checkDirection(h, u, v); err != nil {
				errs = multierror.Append(errs, err)
			}
		}
	}
	return errs.ErrorOrNil()
}

// checkDirection checks that writer w can drive reader r.
//
// Data flows from a deeper writer to upper readers through output ports,
// across the same level through wires and down through input ports.
//
func checkDirection(h *Hierarchy, w, r Sig) error {
	ws, rs := &h.sigs[w], &h.sigs[r]
	rel := h.Relate(ws.host, rs.host)
	var ok bool
	switch rel {
	case Identical:
		ok = rs.kind == OutPort || rs.kind == Wire
	case Parent:
		ok = ws.kind == OutPort && (rs.kind == OutPort || rs.kind == Wire)
	case Child:
		ok = rs.kind == InPort
	case Sibling:
		ok = ws.kind == OutPort && rs.kind == InPort
	}
	if ok {
		return nil
	}
	return &PortDirectionError{
		Writer:     ws.path,
		Reader:     rs.path,
		WriterKind: ws.kind,
		ReaderKind: rs.kind,
		WriterHost: h.CompName(ws.host),
		ReaderHost: h.CompName(rs.host),
		Category:   rel,
	}
}
