package graph

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/pathfinder/pkg/errors"
	"github.com/matzehuels/pathfinder/pkg/shortest"
)

func TestEdgeKey(t *testing.T) {
	tests := []struct {
		a, b, want string
	}{
		{"A", "B", "A,B"},
		{"B", "A", "A,B"},
		{"A", "A", "A,A"},
		{"node10", "node2", "node10,node2"},
	}
	for _, tt := range tests {
		if got := EdgeKey(tt.a, tt.b); got != tt.want {
			t.Errorf("EdgeKey(%q, %q) = %q, want %q", tt.a, tt.b, got, tt.want)
		}
	}
	if got := DirectedKey("B", "A"); got != "B,A" {
		t.Errorf("DirectedKey(B, A) = %q, want B,A", got)
	}
}

func TestWeightUnmarshalJSON(t *testing.T) {
	tests := []struct {
		in      string
		want    Weight
		wantErr bool
	}{
		{`5`, 5, false},
		{`-3`, -3, false},
		{`"7"`, 7, false},
		{`" -2 "`, -2, false},
		{`4.0`, 4, false},
		{`"4.5"`, 0, true},
		{`"abc"`, 0, true},
		{`""`, 0, true},
		{`null`, 0, true},
		{`true`, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var w Weight
			err := json.Unmarshal([]byte(tt.in), &w)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal(%s) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && w != tt.want {
				t.Errorf("Unmarshal(%s) = %d, want %d", tt.in, w, tt.want)
			}
		})
	}
}

func TestWeightUnmarshalTOML(t *testing.T) {
	tests := []struct {
		in      any
		want    Weight
		wantErr bool
	}{
		{int64(9), 9, false},
		{"12", 12, false},
		{float64(3), 3, false},
		{float64(3.5), 0, true},
		{true, 0, true},
	}
	for _, tt := range tests {
		var w Weight
		err := w.UnmarshalTOML(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("UnmarshalTOML(%v) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && w != tt.want {
			t.Errorf("UnmarshalTOML(%v) = %d, want %d", tt.in, w, tt.want)
		}
	}
}

func TestBuild_Symmetrizes(t *testing.T) {
	p := Payload{
		Edges: map[string][]string{
			"A": {"B", "C"},
			"B": {"C", "D"},
			"C": {"D"},
		},
		Weights: map[string]Weight{
			"A,B": 2, "A,C": 4, "B,C": 1, "B,D": 5, "C,D": 3,
		},
	}

	g, err := p.Build(Limits{})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	want := shortest.Graph{
		"A": {"B": 2, "C": 4},
		"B": {"A": 2, "C": 1, "D": 5},
		"C": {"A": 4, "B": 1, "D": 3},
		"D": {"B": 5, "C": 3},
	}
	if !reflect.DeepEqual(g, want) {
		t.Errorf("Build() = %v, want %v", g, want)
	}
	if err := g.Validate(); err != nil {
		t.Errorf("built graph violates closure: %v", err)
	}
}

func TestBuild_Directed(t *testing.T) {
	p := Payload{
		Edges:    map[string][]string{"A": {"B"}, "B": {"C"}},
		Weights:  map[string]Weight{"A,B": 1, "B,C": -2},
		Directed: true,
	}

	g, err := p.Build(Limits{})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	want := shortest.Graph{"A": {"B": 1}, "B": {"C": -2}, "C": {}}
	if !reflect.DeepEqual(g, want) {
		t.Errorf("Build() = %v, want %v", g, want)
	}
}

func TestBuild_DirectedKeyIsOrdered(t *testing.T) {
	p := Payload{
		Edges:    map[string][]string{"B": {"A"}},
		Weights:  map[string]Weight{"A,B": 1},
		Directed: true,
	}
	if _, err := p.Build(Limits{}); !errors.Is(err, errors.ErrCodeMalformedGraph) {
		t.Errorf("Build() error = %v, want MALFORMED_GRAPH", err)
	}
}

func TestBuild_IsolatedNodes(t *testing.T) {
	p := Payload{
		Nodes: map[string]Position{"A": {X: 1, Y: 2}, "Z": {}},
		Edges: map[string][]string{"A": {"B"}},
		Weights: map[string]Weight{
			"A,B": 3,
		},
	}
	g, err := p.Build(Limits{})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if !g.Has("Z") || len(g["Z"]) != 0 {
		t.Errorf("isolated node Z missing or has edges: %v", g)
	}
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name string
		p    Payload
		lim  Limits
		code errors.Code
	}{
		{
			name: "missing weight",
			p:    Payload{Edges: map[string][]string{"A": {"B"}}},
			code: errors.ErrCodeMalformedGraph,
		},
		{
			name: "empty node id",
			p:    Payload{Edges: map[string][]string{"A": {""}}, Weights: map[string]Weight{",A": 1}},
			code: errors.ErrCodeInvalidInput,
		},
		{
			name: "comma in node id",
			p:    Payload{Nodes: map[string]Position{"A,B": {}}},
			code: errors.ErrCodeInvalidInput,
		},
		{
			name: "too many nodes",
			p:    Payload{Nodes: map[string]Position{"A": {}, "B": {}, "C": {}}},
			lim:  Limits{MaxNodes: 2},
			code: errors.ErrCodeGraphTooLarge,
		},
		{
			name: "too many edges",
			p: Payload{
				Edges:   map[string][]string{"A": {"B", "C"}},
				Weights: map[string]Weight{"A,B": 1, "A,C": 1},
			},
			lim:  Limits{MaxEdges: 1},
			code: errors.ErrCodeGraphTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.p.Build(tt.lim)
			if !errors.Is(err, tt.code) {
				t.Errorf("Build() error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestRequestValidate(t *testing.T) {
	if err := (&Request{Start: "A", End: "B"}).Validate(); err != nil {
		t.Errorf("Validate() error: %v", err)
	}
	if err := (&Request{Start: "", End: "B"}).Validate(); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Validate() empty start error = %v", err)
	}
	if err := (&Request{Start: "A", End: "x,y"}).Validate(); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Validate() comma end error = %v", err)
	}
}

const browserPayload = `{
  "start": "A",
  "end": "D",
  "graph": {
    "nodes": {"A": {"x": 10, "y": 20}, "B": {"x": 30, "y": 20}, "C": {"x": 10, "y": 60}, "D": {"x": 30, "y": 60}},
    "edges": {"A": ["B", "C"], "B": ["C", "D"], "C": ["D"]},
    "weights": {"A,B": "2", "A,C": "4", "B,C": "1", "B,D": "5", "C,D": "3"}
  }
}`

func TestReadRequest_JSON(t *testing.T) {
	req, err := ReadRequest(strings.NewReader(browserPayload), FormatJSON)
	if err != nil {
		t.Fatalf("ReadRequest() error: %v", err)
	}
	if req.Start != "A" || req.End != "D" {
		t.Errorf("endpoints = %q, %q", req.Start, req.End)
	}
	if req.Graph.Nodes["B"].X != 30 {
		t.Errorf("node B position = %+v", req.Graph.Nodes["B"])
	}

	g, err := req.Graph.Build(Limits{})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	res := shortest.Find(g, req.Start, req.End)
	if res.Cost != 6 {
		t.Errorf("cost = %d, want 6", res.Cost)
	}
}

const tomlPayload = `
start = "A"
end = "C"

[graph]
directed = true

[graph.edges]
A = ["B"]
B = ["C"]

[graph.weights]
"A,B" = 1
"B,C" = "2"
`

func TestReadRequest_TOML(t *testing.T) {
	req, err := ReadRequest(strings.NewReader(tomlPayload), FormatTOML)
	if err != nil {
		t.Fatalf("ReadRequest() error: %v", err)
	}
	if !req.Graph.Directed {
		t.Error("directed flag not decoded")
	}
	if req.Graph.Weights["B,C"] != 2 {
		t.Errorf("weight B,C = %d, want 2", req.Graph.Weights["B,C"])
	}
}

func TestReadRequest_Errors(t *testing.T) {
	if _, err := ReadRequest(strings.NewReader("{"), FormatJSON); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("bad JSON error = %v", err)
	}
	if _, err := ReadRequest(strings.NewReader("x = ["), FormatTOML); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("bad TOML error = %v", err)
	}
	if _, err := ReadRequest(strings.NewReader("{}"), "yaml"); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("bad format error = %v", err)
	}
}

func TestReadRequestFile(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "square.json")
	if err := os.WriteFile(jsonPath, []byte(browserPayload), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadRequestFile(jsonPath); err != nil {
		t.Errorf("ReadRequestFile(json) error: %v", err)
	}

	tomlPath := filepath.Join(dir, "chain.TOML")
	if err := os.WriteFile(tomlPath, []byte(tomlPayload), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadRequestFile(tomlPath); err != nil {
		t.Errorf("ReadRequestFile(toml) error: %v", err)
	}

	if _, err := ReadRequestFile(filepath.Join(dir, "graph.yaml")); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("ReadRequestFile(yaml) error = %v", err)
	}
	if _, err := ReadRequestFile(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("ReadRequestFile(missing) should fail")
	}
}

func TestExampleRequests(t *testing.T) {
	dir := filepath.Join("..", "..", "examples", "requests")
	for _, name := range []string{"diamond.json", "negative_edges.toml", "negative_cycle.toml"} {
		t.Run(name, func(t *testing.T) {
			req, err := ReadRequestFile(filepath.Join(dir, name))
			if err != nil {
				t.Fatalf("ReadRequestFile: %v", err)
			}
			if _, err := req.Graph.Build(Limits{}); err != nil {
				t.Errorf("Build: %v", err)
			}
		})
	}
}
