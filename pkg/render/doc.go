// Package render drives external renderers for mutation graph diagrams.
//
// # Overview
//
// The [nodelink] subpackage turns a graph into Graphviz DOT and renders it
// in process. This package covers the steps that need other programs:
//
//   - [DotCommand] runs "dot -T<format> -o <file>" with the DOT text on stdin
//   - [ToPDF] converts SVG to PDF with rsvg-convert (from librsvg)
//   - [OutputPath] names an output file after its input
//
// A typical plot writes one file per format next to the input:
//
//	dot, _ := nodelink.ToDOT(g, opts)
//	for _, format := range []string{"svg", "png"} {
//	    err := render.DotCommand(ctx, dot, format, render.OutputPath(input, format))
//	}
//
// [nodelink]: github.com/K-atc/seed-tree-analyzer/pkg/render/nodelink
package render
