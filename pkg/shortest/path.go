package shortest

import (
	"fmt"
	"slices"
)

// Status tags the outcome of a [Find] call.
type Status int

const (
	// StatusFound means Path holds a minimum-weight path.
	StatusFound Status = iota
	// StatusUnknownNode means the source or the target is not a node of the graph.
	StatusUnknownNode
	// StatusUnreachable means no path leads from source to target.
	StatusUnreachable
	// StatusNegativeCycle means a negative cycle is reachable from the source.
	StatusNegativeCycle
)

var statusNames = [...]string{
	StatusFound:         "found",
	StatusUnknownNode:   "unknown_node",
	StatusUnreachable:   "unreachable",
	StatusNegativeCycle: "negative_cycle",
}

// String returns the snake_case name used in JSON responses and logs.
func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return fmt.Sprintf("status(%d)", int(s))
	}
	return statusNames[s]
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(b []byte) error {
	if i := slices.Index(statusNames[:], string(b)); i >= 0 {
		*s = Status(i)
		return nil
	}
	return fmt.Errorf("unknown status %q", b)
}

// Result is the outcome of a shortest-path query.
type Result struct {
	// Path lists the nodes from source to target inclusive. It is empty
	// unless Status is StatusFound.
	Path []string
	// Cost is the total weight of Path. It is zero when Path is empty.
	Cost int64
	// Status tells why Path is empty, if it is.
	Status Status
}

// Found reports whether a path was found.
func (r Result) Found() bool { return r.Status == StatusFound }

// Hooks observe a search as it runs. Nil fields are ignored.
type Hooks struct {
	// OnSettle is called when a node is popped with its current best distance.
	OnSettle func(node string, dist int64)
	// OnRelax is called when the edge from → to improves to's distance.
	OnRelax func(from, to string, dist int64)
	// OnNegativeCycle is called when the search is skipped because a
	// negative cycle is reachable from source.
	OnNegativeCycle func(source string)
}

type options struct {
	hooks Hooks
}

// Option configures [Find].
type Option func(*options)

// WithHooks installs search observers.
func WithHooks(h Hooks) Option {
	return func(o *options) { o.hooks = h }
}

// Path returns the minimum-weight path from source to target, or an empty
// slice if there is none. Use [Find] to learn why a path is missing.
func Path(g Graph, source, target string) []string {
	return Find(g, source, target).Path
}

// Find computes a minimum-weight path from source to target.
//
// Both endpoints must be nodes of g; otherwise no search is performed and
// the result is StatusUnknownNode. If a negative cycle is reachable from
// source the result is StatusNegativeCycle. A target that cannot be reached
// yields StatusUnreachable. When source equals target the path is the single
// node with cost zero.
//
// Among several paths of equal cost, which one is returned is unspecified.
func Find(g Graph, source, target string, opts ...Option) Result {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if !g.Has(source) || !g.Has(target) {
		return Result{Path: []string{}, Status: StatusUnknownNode}
	}
	if HasNegativeCycle(g, source) {
		if o.hooks.OnNegativeCycle != nil {
			o.hooks.OnNegativeCycle(source)
		}
		return Result{Path: []string{}, Status: StatusNegativeCycle}
	}

	s := &search{
		g:     g,
		hooks: o.hooks,
		dist:  distances{source: 0},
		prev:  make(map[string]string, len(g)),
	}
	s.run(source)

	path := s.reconstruct(source, target)
	if len(path) == 0 {
		return Result{Path: []string{}, Status: StatusUnreachable}
	}
	return Result{Path: path, Cost: s.dist.of(target), Status: StatusFound}
}

// search holds the per-call Distance and Predecessor tables.
type search struct {
	g     Graph
	hooks Hooks
	dist  distances
	prev  map[string]string
}

func (s *search) run(source string) {
	f := &frontier{}
	f.push(source, 0)

	for f.Len() > 0 {
		cur := f.pop()
		if cur.dist > s.dist.of(cur.node) {
			continue
		}
		if s.hooks.OnSettle != nil {
			s.hooks.OnSettle(cur.node, cur.dist)
		}

		for next, w := range s.g[cur.node] {
			cand := addSat(cur.dist, w)
			if cand >= s.dist.of(next) {
				continue
			}
			s.dist[next] = cand
			s.prev[next] = cur.node
			if s.hooks.OnRelax != nil {
				s.hooks.OnRelax(cur.node, next, cand)
			}
			f.push(next, cand)
		}
	}
}

// reconstruct walks predecessors back from target. It returns nil unless the
// walk ends at source.
func (s *search) reconstruct(source, target string) []string {
	var rev []string
	for node, ok := target, true; ok; node, ok = s.prev[node] {
		rev = append(rev, node)
		if len(rev) > len(s.g) {
			// The predecessor chain is acyclic without negative cycles;
			// this only trips on a graph mutated mid-search.
			return nil
		}
	}
	if rev[len(rev)-1] != source {
		return nil
	}
	slices.Reverse(rev)
	return rev
}
