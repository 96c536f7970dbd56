package seedtree_test

import (
	"fmt"

	"github.com/K-atc/seed-tree-analyzer/pkg/seedtree"
)

func ExampleGraph_SelfAndItsPredecessorsOf() {
	// seed -> 000001 -> 000002
	g := seedtree.New()
	g.AddNode(seedtree.Node{Name: "seed"})
	g.AddNode(seedtree.Node{Name: "000001"})
	g.AddNode(seedtree.Node{Name: "000002"})
	g.AddEdge(seedtree.Edge{Parent: "seed", Child: "000001", Label: "havoc"})
	g.AddEdge(seedtree.Edge{Parent: "000001", Child: "000002", Label: "flip1"})

	chain, _ := g.SelfAndItsPredecessorsOf("000002")
	fmt.Println(chain)
	// Output:
	// [000002 000001 seed]
}

func ExampleGraph_Leaves() {
	g := seedtree.New()
	g.AddNode(seedtree.Node{Name: "seed"})
	g.AddNode(seedtree.Node{Name: "b"})
	g.AddNode(seedtree.Node{Name: "a"})
	g.AddEdge(seedtree.Edge{Parent: "seed", Child: "a", Label: seedtree.OriginLabel})
	g.AddEdge(seedtree.Edge{Parent: "seed", Child: "b", Label: seedtree.OriginLabel})

	fmt.Println("Leaves:", g.Leaves().Sorted())
	fmt.Println("Roots:", g.Roots().Sorted())
	// Output:
	// Leaves: [a b]
	// Roots: [seed]
}

func ExampleFilter() {
	// seed -> a -> b, seed -> c
	g := seedtree.New()
	for _, name := range []string{"seed", "a", "b", "c"} {
		g.AddNode(seedtree.Node{Name: name})
	}
	g.AddEdge(seedtree.Edge{Parent: "seed", Child: "a", Label: "havoc"})
	g.AddEdge(seedtree.Edge{Parent: "a", Child: "b", Label: "havoc"})
	g.AddEdge(seedtree.Edge{Parent: "seed", Child: "c", Label: "splice"})

	sub, _ := seedtree.Filter(g, "a", true)
	for _, n := range sub.Nodes() {
		fmt.Println(n.Name)
	}
	// Output:
	// a
	// b
	// c
	// seed
}
