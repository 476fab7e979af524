package shortest

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"
)

// Infinity is the distance of a node that has not been reached.
const Infinity int64 = math.MaxInt64

// ErrDanglingEdge is returned by [Graph.Validate] when an edge points at a
// node that is not itself a key of the graph.
var ErrDanglingEdge = errors.New("edge target is not a graph node")

// Graph is a directed weighted adjacency map: g[u][v] is the weight of the
// edge u → v. Every edge target must also be a key, possibly with an empty
// (or nil) neighbor map.
//
// A Graph is treated as read-only by every function in this package.
type Graph map[string]map[string]int64

// Has reports whether id is a node of g.
func (g Graph) Has(id string) bool {
	_, ok := g[id]
	return ok
}

// Nodes returns the node IDs in sorted order.
func (g Graph) Nodes() []string {
	return slices.Sorted(maps.Keys(g))
}

// EdgeCount returns the number of directed edges.
func (g Graph) EdgeCount() int {
	n := 0
	for _, out := range g {
		n += len(out)
	}
	return n
}

// Weight returns the weight of the edge from → to and whether it exists.
func (g Graph) Weight(from, to string) (int64, bool) {
	w, ok := g[from][to]
	return w, ok
}

// PathCost sums the edge weights along path. It returns false if two
// consecutive nodes are not joined by an edge. A path with fewer than two
// nodes costs zero.
func (g Graph) PathCost(path []string) (int64, bool) {
	var total int64
	for i := 1; i < len(path); i++ {
		w, ok := g.Weight(path[i-1], path[i])
		if !ok {
			return 0, false
		}
		total = addSat(total, w)
	}
	return total, true
}

// Validate checks the closure invariant: every edge target is a key of g.
func (g Graph) Validate() error {
	for _, u := range g.Nodes() {
		for _, v := range slices.Sorted(maps.Keys(g[u])) {
			if !g.Has(v) {
				return fmt.Errorf("%w: %s -> %s", ErrDanglingEdge, u, v)
			}
		}
	}
	return nil
}

// addSat adds a finite or infinite distance and an edge weight without
// overflowing. Infinity absorbs any weight, so an edge leaving an unreached
// node can never relax its target.
func addSat(d, w int64) int64 {
	if d == Infinity {
		return Infinity
	}
	if w > 0 && d > math.MaxInt64-w {
		return Infinity - 1
	}
	if w < 0 && d < math.MinInt64-w {
		return math.MinInt64
	}
	return d + w
}
