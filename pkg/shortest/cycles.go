package shortest

// distances is a Distance Table. A missing entry reads as [Infinity].
type distances map[string]int64

func (d distances) of(id string) int64 {
	if v, ok := d[id]; ok {
		return v
	}
	return Infinity
}

// HasNegativeCycle reports whether a cycle with negative total weight is
// reachable from source.
//
// It runs Bellman-Ford: len(g)-1 relaxation passes over every edge, then one
// more pass in which any strict improvement proves a negative cycle. Cycles
// that cannot be reached from source are never relaxed and are not reported.
// If source is not a node of g nothing is reachable and the result is false.
func HasNegativeCycle(g Graph, source string) bool {
	if !g.Has(source) {
		return false
	}

	dist := distances{source: 0}
	for i := 0; i < len(g)-1; i++ {
		if !relaxAll(g, dist) {
			// A quiet pass means the table is final.
			return false
		}
	}
	return relaxAll(g, dist)
}

// relaxAll makes one pass over every edge and reports whether any distance
// improved.
func relaxAll(g Graph, dist distances) bool {
	changed := false
	for u, out := range g {
		for v, w := range out {
			if cand := addSat(dist.of(u), w); cand < dist.of(v) {
				dist[v] = cand
				changed = true
			}
		}
	}
	return changed
}
