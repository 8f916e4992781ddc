package graph

// ShortestPath returns the shortest relationship path between two nodes as
// an ordered ID sequence including both endpoints, or false if either node
// is absent or no path exists. All edge types participate, not just
// suspicious ones.
//
// The search always runs from the lexicographically smaller endpoint and
// reverses the result if needed, so (a,b) and (b,a) yield mirrored paths
// even when several shortest paths tie.
func ShortestPath(g *Graph, from, to string) ([]string, bool) {
	if !g.HasNode(from) || !g.HasNode(to) {
		return nil, false
	}
	if from == to {
		return []string{from}, true
	}

	flipped := from > to
	if flipped {
		from, to = to, from
	}

	parent := map[string]string{from: ""}
	queue := []string{from}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range g.Neighbors(u) {
			if _, seen := parent[v]; seen {
				continue
			}
			parent[v] = u
			if v == to {
				return assemblePath(parent, from, to, flipped), true
			}
			queue = append(queue, v)
		}
	}

	return nil, false
}

func assemblePath(parent map[string]string, from, to string, flipped bool) []string {
	var path []string
	for node := to; node != ""; node = parent[node] {
		path = append(path, node)
	}
	if !flipped {
		// path is to->from; reverse into from->to
		for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
			path[i], path[j] = path[j], path[i]
		}
	}
	return path
}
