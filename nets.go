package hwnet

// discoverNets partitions connected signals into nets. Members of a net are
// sorted by name and nets are sorted by their first member.
//
func discoverNets(h *Hierarchy, adj adjacency) [][]Sig {
	roots := make([]Sig, 0, len(adj))
	for s := range adj {
		roots = append(roots, s)
	}
	h.sortSigs(roots)

	var nets [][]Sig
	visited := make(map[Sig]bool, len(adj))
	for _, s := range roots {
		if visited[s] {
			continue
		}
		visited[s] = true
		var net []Sig
		q := []Sig{s}
		for len(q) > 0 {
			u := q[0]
			q = q[1:]
			net = append(net, u)
			for _, v := range adj[u] {
				if !visited[v] {
					visited[v] = true
					q = append(q, v)
				}
			}
		}
		h.sortSigs(net)
		nets = append(nets, net)
	}
	return nets
}
