package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/K-atc/seed-tree-analyzer/pkg/render"
	"github.com/K-atc/seed-tree-analyzer/pkg/seedtree"
)

const (
	crashColor    = "red"
	crashFill     = "pink"
	rootPathColor = "orange"
)

// ToDOT converts a mutation graph to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG], [RenderPNG],
// [RenderPDF] or an external dot process via [render.DotCommand].
//
// Nodes are emitted sorted by name and edges in insertion order, so the
// same graph and options always produce the same text.
//
// Returns a [seedtree.NodeNotExistsError] if opts.HighlightEdgesFromRootTo
// or one of its ancestors is missing from g.
func ToDOT(g *seedtree.Graph, opts Options) (string, error) {
	path := map[[2]seedtree.NodeName]bool{}
	if target := opts.HighlightEdgesFromRootTo; target != "" {
		chain, err := g.SelfAndItsPredecessorsOf(target)
		if err != nil {
			return "", fmt.Errorf("highlight path to %s: %w", target, err)
		}
		for i := 0; i+1 < len(chain); i++ {
			path[[2]seedtree.NodeName{chain[i+1], chain[i]}] = true
		}
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontname=\"monospace\"];\n")
	buf.WriteString("  edge [fontname=\"monospace\", fontsize=10];\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes() {
		fmt.Fprintf(&buf, "  %q [%s];\n", n.Name, strings.Join(nodeAttrs(n, opts), ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		onPath := path[[2]seedtree.NodeName{e.Parent, e.Child}]
		fmt.Fprintf(&buf, "  %q -> %q [%s];\n", e.Parent, e.Child, strings.Join(edgeAttrs(e, onPath, opts), ", "))
	}

	buf.WriteString("}\n")
	return buf.String(), nil
}

func fmtLabel(n seedtree.Node, opts Options) string {
	if note, ok := opts.Notate[n.Name]; ok {
		return n.Name + "\n" + note
	}
	return n.Name
}

func nodeAttrs(n seedtree.Node, opts Options) []string {
	attrs := []string{fmt.Sprintf("label=%q", fmtLabel(n, opts))}
	style := []string{"rounded", "filled"}
	if n.Crashed {
		attrs = append(attrs, "color="+crashColor)
		if opts.HighlightCrashInput {
			attrs = append(attrs, "fillcolor="+crashFill)
		}
	}
	if opts.HighlightEdgesFromRootTo != "" && n.Name == opts.HighlightEdgesFromRootTo {
		style = append(style, "bold")
	}
	if len(style) > 2 || (n.Crashed && opts.HighlightCrashInput) {
		attrs = append(attrs, fmt.Sprintf("style=%q", strings.Join(style, ",")))
	}
	return attrs
}

func edgeAttrs(e seedtree.Edge, onPath bool, opts Options) []string {
	attrs := []string{fmt.Sprintf("label=%q", e.Label)}
	color := ""
	if onPath {
		color = rootPathColor
		attrs = append(attrs, "penwidth=2")
	}
	switch {
	case opts.HighlightEdgeWithBlue.Has(e):
		color = "blue"
	case opts.HighlightEdgeWithRed.Has(e):
		color = "red"
	case opts.HighlightEdgeWithGreen.Has(e):
		color = "green"
	}
	if color != "" {
		attrs = append(attrs, "color="+color)
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF].
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	out, err := renderGraphviz(ctx, dot, graphviz.SVG)
	if err != nil {
		return nil, err
	}
	return normalizeViewBox(out), nil
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return renderGraphviz(ctx, dot, graphviz.PNG)
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [render.ToPDF].
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}

func renderGraphviz(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
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
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

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

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
