package libfuzzer

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/K-atc/seed-tree-analyzer/pkg/errors"
	"github.com/K-atc/seed-tree-analyzer/pkg/seedtree"
)

const sample = `"aaaa"
"bbbb"
"aaaa" -> "bbbb" [label="CMP-ShuffleBytes-"];
"cccc"
"bbbb" -> "cccc" [label="EraseBytes-"];

"aaaa" -> "dddd";
`

func TestParse(t *testing.T) {
	g, err := Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if g.NodeCount() != 3 {
		t.Errorf("NodeCount() = %d, want 3", g.NodeCount())
	}
	n, ok := g.Node("bbbb")
	if !ok {
		t.Fatal("node bbbb missing")
	}
	if n.Hash != "bbbb" || n.File != "" || n.Crashed {
		t.Errorf("node = %+v", n)
	}

	want := []seedtree.Edge{
		{Parent: "aaaa", Child: "bbbb", Label: "CMP-ShuffleBytes-"},
		{Parent: "bbbb", Child: "cccc", Label: "EraseBytes-"},
		{Parent: "aaaa", Child: "dddd", Label: seedtree.OriginLabel},
	}
	if got := g.Edges(); !slices.Equal(got, want) {
		t.Errorf("Edges() = %v, want %v", got, want)
	}

	chain, err := g.SelfAndItsPredecessorsOf("cccc")
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(chain, []string{"cccc", "bbbb", "aaaa"}) {
		t.Errorf("chain = %v", chain)
	}
}

func TestParseDigraphWrapper(t *testing.T) {
	input := "digraph G {\n  \"a\"\n  \"b\"\n  \"a\" -> \"b\" [color=red, label=\"havoc\"]\n}\n"
	g, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if got := g.Edges(); len(got) != 1 || got[0].Label != "havoc" {
		t.Errorf("Edges() = %v", got)
	}
}

func TestParseEscapedQuote(t *testing.T) {
	g, err := Parse(strings.NewReader(`"a" -> "b" [label="x\"y"]`))
	if err != nil {
		t.Fatal(err)
	}
	if got := g.Edges()[0].Label; got != `x"y` {
		t.Errorf("label = %q", got)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  string
	}{
		{"unquoted", "aaaa\n", "line 1"},
		{"missing arrow", "\"a\"\n\"a\" => \"b\"\n", "line 2"},
		{"unterminated", "\"a\n", "line 1"},
		{"bad attributes", "\"a\" -> \"b\" label=\"x\"\n", "line 1"},
		{"empty name", "\"\"\n", "line 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			if !errors.Is(err, errors.ErrCodeSyntax) {
				t.Fatalf("Parse() error = %v, want syntax error", err)
			}
			if !strings.Contains(err.Error(), tt.line) {
				t.Errorf("error %q should name %s", err, tt.line)
			}
		})
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mutation_graph.dot")
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatal(err)
	}

	g, err := ParseFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if g.EdgeCount() != 3 {
		t.Errorf("EdgeCount() = %d, want 3", g.EdgeCount())
	}

	if _, err := ParseFile(filepath.Join(t.TempDir(), "missing")); !errors.Is(err, errors.ErrCodeIO) {
		t.Errorf("ParseFile(missing) error = %v, want IO error", err)
	}
}
