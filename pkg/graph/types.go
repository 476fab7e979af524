package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Request is a single shortest-path query.
type Request struct {
	Start string  `json:"start" toml:"start"`
	End   string  `json:"end" toml:"end"`
	Graph Payload `json:"graph" toml:"graph"`
}

// Payload is the graph part of a [Request].
type Payload struct {
	// Nodes lists nodes by ID with optional canvas positions. Nodes without
	// edges only exist if they appear here.
	Nodes map[string]Position `json:"nodes,omitempty" toml:"nodes"`
	// Edges maps a node to the nodes it is connected to.
	Edges map[string][]string `json:"edges" toml:"edges"`
	// Weights maps an edge key to the edge weight.
	Weights map[string]Weight `json:"weights" toml:"weights"`
	// Directed disables symmetrizing.
	Directed bool `json:"directed,omitempty" toml:"directed"`
}

// Position is a node location on the editor canvas.
type Position struct {
	X float64 `json:"x" toml:"x"`
	Y float64 `json:"y" toml:"y"`
}

// Weight is an integer edge weight that decodes from a number or a numeric
// string.
type Weight int64

// UnmarshalJSON accepts 5, "5" and " -5 ".
func (w *Weight) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		return w.parse(s)
	}
	return w.parse(string(b))
}

// UnmarshalTOML implements toml.Unmarshaler.
func (w *Weight) UnmarshalTOML(v any) error {
	switch v := v.(type) {
	case int64:
		*w = Weight(v)
		return nil
	case float64:
		return w.parse(strconv.FormatFloat(v, 'f', -1, 64))
	case string:
		return w.parse(v)
	default:
		return fmt.Errorf("weight must be an integer or string, got %T", v)
	}
}

func (w *Weight) parse(s string) error {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		*w = Weight(n)
		return nil
	}
	// Accept integral floats such as 4.0 from clients that do not
	// distinguish number types.
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > 1<<53 {
		return fmt.Errorf("invalid weight %q: must be an integer", s)
	}
	*w = Weight(f)
	return nil
}

// Response is the JSON body returned for a query.
type Response struct {
	// Path is never null; an empty array means no path.
	Path      []string `json:"path"`
	Cost      int64    `json:"cost"`
	Status    string   `json:"status"`
	GraphHash string   `json:"graph_hash,omitempty"`
	Cached    bool     `json:"cached,omitempty"`
	RequestID string   `json:"request_id,omitempty"`
}

// EdgeKey returns the canonical key for the undirected edge between a and b:
// the smaller ID first, separated by a comma.
func EdgeKey(a, b string) string {
	if a < b {
		return a + "," + b
	}
	return b + "," + a
}

// DirectedKey returns the weight key for the directed edge from → to.
func DirectedKey(from, to string) string {
	return from + "," + to
}
