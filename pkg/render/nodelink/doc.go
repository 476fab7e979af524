// Package nodelink renders weighted graphs as node-link diagrams.
//
// # Usage
//
// Convert a graph to DOT, then render to SVG:
//
//	dot := nodelink.ToDOT(g, nodelink.Options{Path: path, Weights: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # Options
//
//   - Path: nodes and edges along it are drawn in the highlight color
//   - Positions: pins nodes to the coordinates the client drew them at
//   - Directed: draws arrows and keeps both directions of an edge
//   - Weights: labels edges with their weights
//
// Undirected graphs are stored with both directions of every edge; [ToDOT]
// draws each such pair once.
//
// When positions are given the DOT asks for the neato engine with pinned
// coordinates; otherwise dot lays the graph out left to right.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering, so no Graphviz installation is needed.
package nodelink
