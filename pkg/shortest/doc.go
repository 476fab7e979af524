// Package shortest computes minimum-weight paths over small in-memory graphs.
//
// A [Graph] is a directed adjacency map from node ID to neighbor ID to an
// integer edge weight. Weights may be negative. Before searching, [Find]
// runs [HasNegativeCycle] from the source; a reachable cycle with negative
// total weight makes "shortest" undefined and the search is skipped.
//
// # Algorithm
//
// The search is a priority-ordered relaxation from the source:
//
//  1. dist[source] = 0, every other node is at [Infinity]
//  2. pop the closest (dist, node) entry from a min-heap; skip it if a
//     better distance was recorded after it was pushed
//  3. relax every outgoing edge, recording the predecessor and pushing
//     the improved entry
//
// Stale heap entries are tolerated instead of decreased in place. Because a
// node may be re-opened when a negative edge improves it later, the search
// stays correct for negative weights as long as no negative cycle is
// reachable, which the cycle check guarantees.
//
// Path reconstruction walks predecessors back from the target. The result is
// tagged with a [Status] so callers can tell an unknown node, a disconnected
// target and a negative cycle apart; the path is empty for all three.
//
// # Concurrency
//
// All working state is allocated per call. Concurrent calls are safe as long
// as the [Graph] is not mutated while they run.
//
// # Example
//
//	g := shortest.Graph{
//	    "A": {"B": 2, "C": 4},
//	    "B": {"A": 2, "C": 1, "D": 5},
//	    "C": {"A": 4, "B": 1, "D": 3},
//	    "D": {"B": 5, "C": 3},
//	}
//	res := shortest.Find(g, "A", "D")
//	fmt.Println(res.Path, res.Cost) // [A B C D] 6
package shortest
