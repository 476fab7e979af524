// Package graph defines the wire format for shortest-path requests and turns
// it into the adjacency map consumed by pkg/shortest.
//
// # Request Format
//
// Requests use the shape sent by the browser editor: edges as adjacency
// lists and weights keyed by the unordered endpoint pair.
//
//	{
//	  "start": "A",
//	  "end": "D",
//	  "graph": {
//	    "nodes":   {"A": {"x": 40, "y": 80}, "B": {"x": 120, "y": 80}},
//	    "edges":   {"A": ["B", "C"], "B": ["D"]},
//	    "weights": {"A,B": "2", "A,C": 4, "B,D": 5}
//	  }
//	}
//
// Weight keys are produced by [EdgeKey], which orders the two endpoint IDs so
// "A,B" and "B,A" name the same edge. Weights may be JSON numbers or numeric
// strings. Node positions are optional and only used for rendering.
//
// By default every listed edge is undirected: [Payload.Build] inserts both
// directions with the same weight. Setting "directed": true keeps edges
// one-way and keys weights by [DirectedKey] ("from,to") instead.
//
// The same structure can be written as TOML for the CLI:
//
//	start = "A"
//	end   = "D"
//
//	[graph.edges]
//	A = ["B", "C"]
//
//	[graph.weights]
//	"A,B" = 2
//	"A,C" = "4"
//
// # Validation
//
// [Payload.Build] rejects empty or comma-containing node IDs, missing or
// non-numeric weights, and graphs over the configured [Limits]. Unknown
// start or end nodes are not an error here: the solver reports them as a
// query outcome.
package graph
