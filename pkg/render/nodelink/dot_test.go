package nodelink

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/K-atc/seed-tree-analyzer/pkg/seedtree"
)

// lineage builds seed -> 000001 -> crash-000002, plus a sibling 000003.
func lineage() *seedtree.Graph {
	g := seedtree.New()
	g.AddNode(seedtree.Node{Name: "seed"})
	g.AddNode(seedtree.Node{Name: "000001"})
	g.AddNode(seedtree.Node{Name: "crash-000002", Crashed: true})
	g.AddNode(seedtree.Node{Name: "000003"})
	g.AddEdge(seedtree.Edge{Parent: "seed", Child: "000001", Label: "havoc"})
	g.AddEdge(seedtree.Edge{Parent: "000001", Child: "crash-000002", Label: "colorization"})
	g.AddEdge(seedtree.Edge{Parent: "seed", Child: "000003", Label: "flip1"})
	return g
}

func mustDOT(t *testing.T, g *seedtree.Graph, opts Options) string {
	t.Helper()
	dot, err := ToDOT(g, opts)
	if err != nil {
		t.Fatalf("ToDOT() error: %v", err)
	}
	return dot
}

func TestToDOT_Basic(t *testing.T) {
	dot := mustDOT(t, lineage(), Options{})

	for _, want := range []string{
		"digraph G",
		`"seed" [label="seed"]`,
		`"seed" -> "000001" [label="havoc"]`,
		`"000001" -> "crash-000002" [label="colorization"]`,
		`"crash-000002" [label="crash-000002", color=red]`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() output missing %s\n%s", want, dot)
		}
	}
	if strings.Contains(dot, "pink") {
		t.Error("crashed nodes are only filled with HighlightCrashInput")
	}
}

func TestToDOT_Deterministic(t *testing.T) {
	g := lineage()
	first := mustDOT(t, g, Options{})
	for range 10 {
		if got := mustDOT(t, g, Options{}); got != first {
			t.Fatal("ToDOT() output differs between runs")
		}
	}

	// Nodes are sorted by name.
	if strings.Index(first, `"000001" [`) > strings.Index(first, `"seed" [`) {
		t.Error("nodes are not emitted in name order")
	}
}

func TestToDOT_HighlightCrashInput(t *testing.T) {
	opts, err := BuildOptions([]Directive{HighlightCrashInput{}})
	if err != nil {
		t.Fatal(err)
	}
	dot := mustDOT(t, lineage(), opts)

	if !strings.Contains(dot, `"crash-000002" [label="crash-000002", color=red, fillcolor=pink, style="rounded,filled"]`) {
		t.Errorf("crash node not highlighted:\n%s", dot)
	}
	if !strings.Contains(dot, `"000001" [label="000001"];`) {
		t.Errorf("regular node should stay plain:\n%s", dot)
	}
}

func TestToDOT_HighlightEdgesFromRootTo(t *testing.T) {
	opts, err := BuildOptions([]Directive{HighlightEdgesFromRootTo{Node: "crash-000002"}})
	if err != nil {
		t.Fatal(err)
	}
	dot := mustDOT(t, lineage(), opts)

	for _, want := range []string{
		`"seed" -> "000001" [label="havoc", penwidth=2, color=orange]`,
		`"000001" -> "crash-000002" [label="colorization", penwidth=2, color=orange]`,
		`"seed" -> "000003" [label="flip1"];`,
		`style="rounded,filled,bold"`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() output missing %s\n%s", want, dot)
		}
	}
}

func TestToDOT_HighlightMissingTarget(t *testing.T) {
	_, err := ToDOT(lineage(), Options{HighlightEdgesFromRootTo: "missing"})
	if !errors.Is(err, seedtree.ErrNodeNotExists) {
		t.Errorf("ToDOT() error = %v, want ErrNodeNotExists", err)
	}
}

func TestToDOT_ColoredEdges(t *testing.T) {
	opts, err := BuildOptions([]Directive{
		HighlightEdgeWithBlue{Edge: seedtree.Edge{Parent: "seed", Child: "000001", Label: "havoc"}},
		HighlightEdgeWithGreen{Edge: seedtree.Edge{Parent: "seed", Child: "000003", Label: "flip1"}},
		// Label mismatch: not the same edge.
		HighlightEdgeWithRed{Edge: seedtree.Edge{Parent: "000001", Child: "crash-000002", Label: "havoc"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	dot := mustDOT(t, lineage(), opts)

	for _, want := range []string{
		`"seed" -> "000001" [label="havoc", color=blue]`,
		`"seed" -> "000003" [label="flip1", color=green]`,
		`"000001" -> "crash-000002" [label="colorization"];`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() output missing %s\n%s", want, dot)
		}
	}
}

func TestToDOT_Notate(t *testing.T) {
	opts, err := BuildOptions([]Directive{
		NotateTo{Node: "000001", Text: "first"},
		NotateTo{Node: "000001", Text: "second"},
	})
	if err != nil {
		t.Fatal(err)
	}
	dot := mustDOT(t, lineage(), opts)

	if !strings.Contains(dot, `"000001" [label="000001\nfirst\nsecond"]`) {
		t.Errorf("notes not appended:\n%s", dot)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	tests := []struct {
		name string
		svg  string
		want string
	}{
		{
			name: "with viewBox",
			svg:  `<svg viewBox="10 20 800 600" xmlns="http://www.w3.org/2000/svg">content</svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 800.00 600.00" width="800" height="600">content</svg>`,
		},
		{
			name: "no viewBox",
			svg:  `<svg xmlns="http://www.w3.org/2000/svg">content</svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg">content</svg>`,
		},
		{
			name: "zero dimensions",
			svg:  `<svg viewBox="0 0 0 0">content</svg>`,
			want: `<svg viewBox="0 0 0 0">content</svg>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeViewBox([]byte(tt.svg))
			if string(got) != tt.want {
				t.Errorf("normalizeViewBox() = %q, want %q", string(got), tt.want)
			}
		})
	}
}

func TestRenderSVG(t *testing.T) {
	dot := mustDOT(t, lineage(), Options{})
	svg, err := RenderSVG(context.Background(), dot)
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}

	if !strings.Contains(string(svg), "<svg") {
		t.Error("RenderSVG() output missing <svg> tag")
	}
	if !strings.Contains(string(svg), "crash-000002") {
		t.Error("RenderSVG() output missing node text")
	}
}

func TestRenderPNG(t *testing.T) {
	png, err := RenderPNG(context.Background(), `digraph G { a -> b; }`)
	if err != nil {
		t.Fatalf("RenderPNG() error: %v", err)
	}
	if !strings.HasPrefix(string(png), "\x89PNG") {
		t.Error("RenderPNG() output is not a PNG")
	}
}

func TestRenderSVG_InvalidDOT(t *testing.T) {
	_, err := RenderSVG(context.Background(), `not valid DOT {{{`)
	if err == nil {
		t.Error("RenderSVG() should return error for invalid DOT")
	}
}
