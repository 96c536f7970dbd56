package seedtree

import (
	"errors"
	"maps"
	"testing"
)

func nodeNames(g *Graph) NameSet {
	s := NameSet{}
	for _, n := range g.Nodes() {
		s.Add(n.Name)
	}
	return s
}

// filterGraph builds:
//
//	seed -> a -> b -> target -> t1 (leaf)
//	          -> a1 (leaf, one hop from ancestor a)
//	     -> c -> c1 (leaf, two hops from ancestor seed)
//	     -> s1 (leaf, one hop from ancestor seed)
func filterGraph() *Graph {
	g := New()
	for _, name := range []string{"seed", "a", "b", "target", "t1", "a1", "c", "c1", "s1"} {
		g.AddNode(Node{Name: name})
	}
	g.AddEdge(Edge{Parent: "seed", Child: "a", Label: "havoc"})
	g.AddEdge(Edge{Parent: "a", Child: "b", Label: "havoc"})
	g.AddEdge(Edge{Parent: "b", Child: "target", Label: "flip1"})
	g.AddEdge(Edge{Parent: "target", Child: "t1", Label: "arith8"})
	g.AddEdge(Edge{Parent: "a", Child: "a1", Label: "splice"})
	g.AddEdge(Edge{Parent: "seed", Child: "c", Label: "havoc"})
	g.AddEdge(Edge{Parent: "c", Child: "c1", Label: "havoc"})
	g.AddEdge(Edge{Parent: "seed", Child: "s1", Label: OriginLabel})
	return g
}

func TestFilterNoTarget(t *testing.T) {
	sub, err := Filter(filterGraph(), "", true)
	if err != nil {
		t.Fatalf("Filter() error: %v", err)
	}
	if sub.NodeCount() != 0 || sub.EdgeCount() != 0 {
		t.Errorf("Filter() without target = %d nodes, %d edges; want empty", sub.NodeCount(), sub.EdgeCount())
	}
}

func TestFilterAncestorsOnly(t *testing.T) {
	g := filterGraph()
	sub, err := Filter(g, "target", false)
	if err != nil {
		t.Fatalf("Filter() error: %v", err)
	}

	if want := NewNameSet("target", "b", "a", "seed"); !maps.Equal(nodeNames(sub), want) {
		t.Errorf("Filter() nodes = %v, want %v", nodeNames(sub).Sorted(), want.Sorted())
	}
	if sub.EdgeCount() != 3 {
		t.Errorf("Filter() edges = %v, want the 3 chain edges", sub.Edges())
	}
	for _, e := range sub.Edges() {
		if !nodeNames(sub).Has(e.Parent) || !nodeNames(sub).Has(e.Child) {
			t.Errorf("edge %v leaves the filtered set", e)
		}
	}
}

func TestFilterExtendToLeavesOneHopOnly(t *testing.T) {
	g := filterGraph()
	sub, err := Filter(g, "target", true)
	if err != nil {
		t.Fatalf("Filter() error: %v", err)
	}

	// t1, a1 and s1 are leaves directly below the ancestor chain. c1 is a
	// leaf as well, but two hops away (via the non-leaf c), so it is left out.
	want := NewNameSet("target", "b", "a", "seed", "t1", "a1", "s1")
	if got := nodeNames(sub); !maps.Equal(got, want) {
		t.Errorf("Filter() nodes = %v, want %v", got.Sorted(), want.Sorted())
	}
	if nodeNames(sub).Has("c1") || nodeNames(sub).Has("c") {
		t.Error("Filter() must not include leaves further than one hop")
	}
	if sub.EdgeCount() != 6 {
		t.Errorf("Filter() edges = %d, want 6: %v", sub.EdgeCount(), sub.Edges())
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	g := filterGraph()
	nodes, edges := g.NodeCount(), g.EdgeCount()

	if _, err := Filter(g, "target", true); err != nil {
		t.Fatal(err)
	}
	if g.NodeCount() != nodes || g.EdgeCount() != edges {
		t.Error("Filter() modified its input graph")
	}
}

func TestFilterMissingTarget(t *testing.T) {
	_, err := Filter(filterGraph(), "missing", false)
	if !errors.Is(err, ErrNodeNotExists) {
		t.Errorf("Filter(missing) error = %v, want ErrNodeNotExists", err)
	}
}

func TestFilterDanglingAncestor(t *testing.T) {
	g := New()
	g.AddNode(Node{Name: "child"})
	g.AddEdge(Edge{Parent: "ghost", Child: "child", Label: "havoc"})

	_, err := Filter(g, "child", false)
	var nne *NodeNotExistsError
	if !errors.As(err, &nne) || nne.Name != "ghost" {
		t.Errorf("Filter() error = %v, want NodeNotExistsError{ghost}", err)
	}
}

func TestFilterKeepsNodeRecords(t *testing.T) {
	g := New()
	g.AddNode(Node{Name: "seed", File: "queue/seed", Hash: "h0"})
	g.AddNode(Node{Name: "crash-000001", Crashed: true, File: "crashes/x", Hash: "h1"})
	g.AddEdge(Edge{Parent: "seed", Child: "crash-000001", Label: "havoc"})

	sub, err := Filter(g, "crash-000001", false)
	if err != nil {
		t.Fatal(err)
	}
	n, ok := sub.Node("crash-000001")
	if !ok || !n.Crashed || n.Hash != "h1" || n.File != "crashes/x" {
		t.Errorf("filtered node = %+v, %v", n, ok)
	}
}
