// Package render draws graphs and their shortest paths.
//
// The [nodelink] subpackage produces Graphviz DOT source with the path
// highlighted and renders it to SVG in-process:
//
//	dot := nodelink.ToDOT(g, nodelink.Options{Path: res.Path})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// [nodelink]: github.com/matzehuels/pathfinder/pkg/render/nodelink
package render
