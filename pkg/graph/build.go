package graph

import (
	"maps"
	"slices"

	"github.com/matzehuels/pathfinder/pkg/errors"
	"github.com/matzehuels/pathfinder/pkg/shortest"
)

// Limits bounds the size of an accepted graph. Zero disables a limit.
type Limits struct {
	MaxNodes int
	MaxEdges int
}

// Validate checks the query endpoints. It does not check that they exist
// in the graph.
func (r *Request) Validate() error {
	if err := errors.ValidateNodeID(r.Start); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "start")
	}
	if err := errors.ValidateNodeID(r.End); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "end")
	}
	return nil
}

// Build converts the payload into a directed adjacency map in which every
// referenced node is a key.
//
// Undirected payloads get both directions of each edge with the same weight.
// Build fails with MALFORMED_GRAPH when a listed edge has no weight, and
// with GRAPH_TOO_LARGE when lim is exceeded.
func (p Payload) Build(lim Limits) (shortest.Graph, error) {
	g := make(shortest.Graph, len(p.Nodes)+len(p.Edges))

	addNode := func(id string) error {
		if err := errors.ValidateNodeID(id); err != nil {
			return err
		}
		if _, ok := g[id]; !ok {
			g[id] = map[string]int64{}
		}
		return nil
	}

	for _, id := range slices.Sorted(maps.Keys(p.Nodes)) {
		if err := addNode(id); err != nil {
			return nil, err
		}
	}

	edges := 0
	for _, from := range slices.Sorted(maps.Keys(p.Edges)) {
		if err := addNode(from); err != nil {
			return nil, err
		}
		for _, to := range p.Edges[from] {
			if err := addNode(to); err != nil {
				return nil, err
			}

			key := EdgeKey(from, to)
			if p.Directed {
				key = DirectedKey(from, to)
			}
			w, ok := p.Weights[key]
			if !ok {
				return nil, errors.New(errors.ErrCodeMalformedGraph, "missing weight for edge %s", key)
			}

			g[from][to] = int64(w)
			if !p.Directed {
				g[to][from] = int64(w)
			}
			edges++
		}
		if err := errors.ValidateLimit("nodes", len(g), lim.MaxNodes); err != nil {
			return nil, err
		}
		if err := errors.ValidateLimit("edges", edges, lim.MaxEdges); err != nil {
			return nil, err
		}
	}

	if err := errors.ValidateLimit("nodes", len(g), lim.MaxNodes); err != nil {
		return nil, err
	}
	return g, nil
}
