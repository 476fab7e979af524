package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/pathfinder/pkg/graph"
	"github.com/matzehuels/pathfinder/pkg/shortest"
)

// HighlightColor is used for nodes and edges on the path.
const HighlightColor = "#d62728"

// Options configures diagram generation.
type Options struct {
	// Path is highlighted when non-empty.
	Path []string

	// Positions pins nodes to client coordinates (pixels, y down).
	// Nodes without a position are placed by the layout engine.
	Positions map[string]graph.Position

	// Directed draws arrows and every stored edge.
	Directed bool

	// Weights labels edges with their weights.
	Weights bool
}

// ToDOT converts g to Graphviz DOT source.
func ToDOT(g shortest.Graph, opts Options) string {
	onPath := pathNodes(opts.Path)
	pathEdges := pathEdgeSet(opts.Path, opts.Directed)

	kind, arrow := "graph", "--"
	if opts.Directed {
		kind, arrow = "digraph", "->"
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s G {\n", kind)
	buf.WriteString("  bgcolor=\"transparent\";\n")
	if len(opts.Positions) > 0 {
		buf.WriteString("  layout=neato;\n")
	} else {
		buf.WriteString("  rankdir=LR;\n")
	}
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=14];\n")
	buf.WriteString("  edge [fontsize=11, color=\"#888888\"];\n")
	buf.WriteString("\n")

	for _, id := range g.Nodes() {
		attrs := fmtNodeAttrs(id, onPath[id], opts.Positions)
		fmt.Fprintf(&buf, "  %q [%s];\n", id, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, from := range g.Nodes() {
		for _, to := range sortedTargets(g[from]) {
			if !opts.Directed && drawnFromOtherSide(g, from, to) {
				continue
			}
			key := edgeID(from, to, opts.Directed)
			attrs := fmtEdgeAttrs(g[from][to], pathEdges[key], opts.Weights)
			if len(attrs) == 0 {
				fmt.Fprintf(&buf, "  %q %s %q;\n", from, arrow, to)
			} else {
				fmt.Fprintf(&buf, "  %q %s %q [%s];\n", from, arrow, to, strings.Join(attrs, ", "))
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtNodeAttrs(id string, highlighted bool, positions map[string]graph.Position) []string {
	attrs := []string{fmt.Sprintf("label=%q", id)}
	if highlighted {
		attrs = append(attrs, fmt.Sprintf("fillcolor=%q", HighlightColor), "fontcolor=white")
	}
	if p, ok := positions[id]; ok {
		// Graphviz points grow upwards; client pixels grow downwards.
		attrs = append(attrs, fmt.Sprintf("pos=\"%s,%s!\"", fmtFloat(p.X), fmtFloat(-p.Y)))
	}
	return attrs
}

func fmtEdgeAttrs(w int64, highlighted, weights bool) []string {
	var attrs []string
	if weights {
		attrs = append(attrs, fmt.Sprintf("label=%q", strconv.FormatInt(w, 10)))
	}
	if highlighted {
		attrs = append(attrs, fmt.Sprintf("color=%q", HighlightColor), "penwidth=3")
	}
	return attrs
}

func fmtFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// drawnFromOtherSide reports whether the undirected edge from-to is drawn
// when visiting to. A pair is drawn from its smaller endpoint; one-way edges
// are always drawn.
func drawnFromOtherSide(g shortest.Graph, from, to string) bool {
	if _, back := g[to][from]; !back {
		return false
	}
	return to < from
}

func edgeID(from, to string, directed bool) string {
	if directed {
		return graph.DirectedKey(from, to)
	}
	return graph.EdgeKey(from, to)
}

func pathNodes(path []string) map[string]bool {
	m := make(map[string]bool, len(path))
	for _, id := range path {
		m[id] = true
	}
	return m
}

func pathEdgeSet(path []string, directed bool) map[string]bool {
	m := make(map[string]bool)
	for i := 0; i+1 < len(path); i++ {
		m[edgeID(path[i], path[i+1], directed)] = true
	}
	return m
}

func sortedTargets(out map[string]int64) []string {
	return slices.Sorted(maps.Keys(out))
}

// RenderSVG renders DOT source to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([-0-9.]+)\s+([-0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces the fixed-size svg tag Graphviz emits with one
// that scales to its container.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
