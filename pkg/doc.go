// Package pkg provides the libraries behind the seedtree command.
//
// # Overview
//
// A fuzzer derives new test cases (seeds) by mutating existing ones. The
// resulting lineage forms a forest: every seed has at most one parent, and
// the roots are the initial corpus. seedtree rebuilds that forest, answers
// ancestry queries on it and renders it with Graphviz.
//
// # Architecture
//
//	AFL output directory          libFuzzer -mutation_graph_file
//	         ↓                                ↓
//	   [parse/afl]                     [parse/libfuzzer]
//	         ↘                              ↙
//	              [seedtree] (graph + queries)
//	         ↙           ↓             ↘
//	   [render/nodelink]  [chain] + [diff]   [io]
//	     DOT/SVG/PNG/PDF   lineage byte diff   JSON
//
// # Main Packages
//
// [seedtree] - The graph: nodes keyed by name, parent-to-child edges labelled
// with the mutation operator, and the queries (roots, leaves, predecessors,
// sub-graph filter).
//
// [parse/afl] - Rebuilds the graph from AFL, AFL++ and aurora output
// directories, where each file name records its parent id and operator.
//
// [parse/libfuzzer] - Reads the mutation graph file written by libFuzzer.
//
// [render/nodelink] - Plot options (highlighted paths and edges, notes) and
// DOT generation; in-process rendering through go-graphviz.
//
// [render] - Helpers around external tools: the dot executable and
// rsvg-convert for PDF output.
//
// [chain] - Lineage restricted to seeds present in a corpus directory, and
// the byte diff between consecutive members.
//
// [diff] - Byte-level edit script between two streams.
//
// [io] - JSON import and export of graphs.
//
// [config] - Optional TOML defaults for command flags.
//
// [errors] - Coded errors shared by all packages.
//
// # Common Workflows
//
// Parse an AFL++ output directory and list crash lineages:
//
//	g, _ := afl.ParseDirectories([]string{"out/default"}, afl.Extensions{})
//	for _, name := range g.Leaves().Sorted() {
//	    chain, _ := g.SelfAndItsPredecessorsOf(name)
//	    fmt.Println(chain)
//	}
//
// Render a libFuzzer mutation graph with the path to one seed highlighted:
//
//	g, _ := libfuzzer.ParseFile("graph.dot")
//	opts, _ := nodelink.BuildOptions([]nodelink.Directive{
//	    nodelink.HighlightEdgesFromRootTo{Node: sha1},
//	})
//	dot, _ := nodelink.ToDOT(g, opts)
//	svg, _ := nodelink.RenderSVG(ctx, dot)
//
// [seedtree]: https://pkg.go.dev/github.com/K-atc/seed-tree-analyzer/pkg/seedtree
// [parse/afl]: https://pkg.go.dev/github.com/K-atc/seed-tree-analyzer/pkg/parse/afl
// [parse/libfuzzer]: https://pkg.go.dev/github.com/K-atc/seed-tree-analyzer/pkg/parse/libfuzzer
// [render/nodelink]: https://pkg.go.dev/github.com/K-atc/seed-tree-analyzer/pkg/render/nodelink
// [render]: https://pkg.go.dev/github.com/K-atc/seed-tree-analyzer/pkg/render
// [chain]: https://pkg.go.dev/github.com/K-atc/seed-tree-analyzer/pkg/chain
// [diff]: https://pkg.go.dev/github.com/K-atc/seed-tree-analyzer/pkg/diff
// [io]: https://pkg.go.dev/github.com/K-atc/seed-tree-analyzer/pkg/io
// [config]: https://pkg.go.dev/github.com/K-atc/seed-tree-analyzer/pkg/config
// [errors]: https://pkg.go.dev/github.com/K-atc/seed-tree-analyzer/pkg/errors
package pkg
