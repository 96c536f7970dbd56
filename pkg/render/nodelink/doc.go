// Package nodelink renders mutation graphs as node-link diagrams.
//
// # Overview
//
// Every seed becomes a box and every mutation an arrow from parent to
// child, labeled with the mutation operator. Crash inputs are outlined in
// red.
//
// # Usage
//
// Fold plot directives into [Options], convert the graph to DOT, then
// render it:
//
//	opts, err := nodelink.BuildOptions([]nodelink.Directive{
//	    nodelink.HighlightEdgesFromRootTo{Node: "crash-000002"},
//	    nodelink.HighlightCrashInput{},
//	})
//	dot, err := nodelink.ToDOT(g, opts)
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # Directives
//
//   - [HighlightEdgesFromRootTo]: orange, thick edges along one lineage.
//     At most one distinct target is supported.
//   - [HighlightEdgeWithBlue], [HighlightEdgeWithRed], [HighlightEdgeWithGreen]:
//     color individual edges.
//   - [HighlightCrashInput]: fill crash inputs with pink.
//   - [NotateTo]: append text lines to a node label.
//
// # DOT Format
//
// The [ToDOT] output is deterministic: nodes sorted by name, edges in the
// order the parser recorded them. It can be rendered in process via
// [RenderSVG] and [RenderPNG], or handed to an external Graphviz with
// [render.DotCommand].
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process
// rendering. PDF conversion requires librsvg (rsvg-convert).
package nodelink
