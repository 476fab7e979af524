package nodelink

import (
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/pathfinder/pkg/graph"
	"github.com/matzehuels/pathfinder/pkg/shortest"
)

func undirected() shortest.Graph {
	return shortest.Graph{
		"A": {"B": 1, "C": 5},
		"B": {"A": 1, "C": 2},
		"C": {"A": 5, "B": 2},
		"D": {},
	}
}

func TestToDOTUndirected(t *testing.T) {
	dot := ToDOT(undirected(), Options{Weights: true})

	if !strings.HasPrefix(dot, "graph G {") {
		t.Errorf("undirected graph should use 'graph':\n%s", dot)
	}
	for _, want := range []string{
		`"A" -- "B" [label="1"];`,
		`"A" -- "C" [label="5"];`,
		`"B" -- "C" [label="2"];`,
		`"D" [label="D"];`,
		"rankdir=LR;",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
	if strings.Contains(dot, `"B" -- "A"`) || strings.Contains(dot, `"C" -- "A"`) {
		t.Errorf("undirected edges should be drawn once:\n%s", dot)
	}
}

func TestToDOTDirected(t *testing.T) {
	g := shortest.Graph{
		"A": {"B": 1},
		"B": {"A": 4},
	}
	dot := ToDOT(g, Options{Directed: true})

	if !strings.HasPrefix(dot, "digraph G {") {
		t.Errorf("directed graph should use 'digraph':\n%s", dot)
	}
	if !strings.Contains(dot, `"A" -> "B";`) || !strings.Contains(dot, `"B" -> "A";`) {
		t.Errorf("both directions should be drawn:\n%s", dot)
	}
}

func TestToDOTHighlightsPath(t *testing.T) {
	dot := ToDOT(undirected(), Options{Path: []string{"C", "B", "A"}})

	for _, want := range []string{
		`"A" [label="A", fillcolor="` + HighlightColor + `", fontcolor=white];`,
		`"C" [label="C", fillcolor="` + HighlightColor + `", fontcolor=white];`,
		`"A" -- "B" [color="` + HighlightColor + `", penwidth=3];`,
		`"B" -- "C" [color="` + HighlightColor + `", penwidth=3];`,
		`"A" -- "C";`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
	if strings.Contains(dot, `"D" [label="D", fillcolor`) {
		t.Error("D is not on the path")
	}
}

func TestToDOTDirectedPathKeepsOrientation(t *testing.T) {
	g := shortest.Graph{
		"A": {"B": 1},
		"B": {"A": 1},
	}
	dot := ToDOT(g, Options{Directed: true, Path: []string{"A", "B"}})

	if !strings.Contains(dot, `"A" -> "B" [color=`) {
		t.Errorf("A->B should be highlighted:\n%s", dot)
	}
	if strings.Contains(dot, `"B" -> "A" [color=`) {
		t.Errorf("B->A is not on the path:\n%s", dot)
	}
}

func TestToDOTPositions(t *testing.T) {
	dot := ToDOT(undirected(), Options{
		Positions: map[string]graph.Position{"A": {X: 10, Y: 20.5}},
	})

	if !strings.Contains(dot, "layout=neato;") {
		t.Errorf("positions should select neato:\n%s", dot)
	}
	if !strings.Contains(dot, `"A" [label="A", pos="10,-20.5!"];`) {
		t.Errorf("A should be pinned:\n%s", dot)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="62pt" height="44pt" viewBox="0.00 0.00 62.00 44.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := string(normalizeViewBox(in))

	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 62.00 44.00" width="62" height="44">`
	if !strings.HasPrefix(out, want) {
		t.Errorf("got %s", out)
	}

	plain := []byte(`<svg><g/></svg>`)
	if string(normalizeViewBox(plain)) != string(plain) {
		t.Error("svg without viewBox should be unchanged")
	}
}

func TestRenderSVG(t *testing.T) {
	svg, err := RenderSVG(context.Background(), ToDOT(undirected(), Options{Path: []string{"A", "B"}}))
	if err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Errorf("output is not SVG: %.200s", svg)
	}
}
