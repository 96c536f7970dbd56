package seedtree

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// OriginLabel is the edge label used when a seed file name records no
// mutation operator.
const OriginLabel = "origin"

var (
	// ErrNodeNotExists is the sentinel matched by every [NodeNotExistsError].
	// Use errors.Is(err, ErrNodeNotExists) to detect a query that referenced
	// a node missing from the node table.
	ErrNodeNotExists = errors.New("node does not exist")

	// ErrCyclicLineage is returned by [Graph.SelfAndItsPredecessorsOf] when
	// following parent edges revisits a node. Parsers never produce such a
	// graph, but a hand-written mutation graph file can.
	ErrCyclicLineage = errors.New("parent chain contains a cycle")
)

// NodeNotExistsError reports the name of a node that a query needed but
// that is absent from the node table.
type NodeNotExistsError struct {
	Name NodeName
}

// Error implements the error interface.
func (e *NodeNotExistsError) Error() string {
	return fmt.Sprintf("node %q does not exist", e.Name)
}

// Is makes errors.Is(err, ErrNodeNotExists) true for every NodeNotExistsError.
func (e *NodeNotExistsError) Is(target error) bool { return target == ErrNodeNotExists }

// NodeName identifies a node. Depending on the parser it is a numeric AFL id
// ("000001"), a prefixed id ("crash-000002", "nc-143"), a raw file name or a
// SHA-1 digest (libFuzzer).
type NodeName = string

// FileHash is the lowercase hex SHA-1 digest computed by [HashFile].
type FileHash = string

// Node is a single seed (test case) of the mutation graph.
type Node struct {
	Name    NodeName // Unique identifier within a graph
	Crashed bool     // Seed was found in the crash-input location
	File    string   // Path of the seed file ("" when the source has no files)
	Hash    FileHash // Content hash of the seed
}

// Edge records that Child was derived from Parent by the mutation operator
// named by Label. Edge is comparable and can be used as a map key.
type Edge struct {
	Parent NodeName
	Child  NodeName
	Label  string
}

// String formats the edge as "parent -> child (label)".
func (e Edge) String() string {
	return fmt.Sprintf("%s -> %s (%s)", e.Parent, e.Child, e.Label)
}

// NameSet is an unordered set of node names.
type NameSet map[NodeName]struct{}

// NewNameSet creates a set holding the given names.
func NewNameSet(names ...NodeName) NameSet {
	s := make(NameSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Has reports whether name is a member of the set.
func (s NameSet) Has(name NodeName) bool {
	_, ok := s[name]
	return ok
}

// Add inserts name into the set.
func (s NameSet) Add(name NodeName) { s[name] = struct{}{} }

// Sorted returns the members in ascending lexicographic order. Use it at
// presentation boundaries; map iteration order is never relied upon.
func (s NameSet) Sorted() []NodeName {
	return slices.Sorted(maps.Keys(s))
}

// Graph is a mutation graph: a node table keyed by [NodeName] plus an
// edge list in insertion order.
//
// Edges may reference names that are not in the node table. Such dangling
// references are tolerated at construction time and surface as
// [NodeNotExistsError] only when a query needs the missing endpoint.
//
// A Graph is built once by a parser and then treated as read-only. Queries
// do not mutate it, so concurrent readers are safe once construction ends.
// The zero value is not usable - use [New].
type Graph struct {
	nodes map[NodeName]*Node
	edges []Edge
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{nodes: make(map[NodeName]*Node)}
}

// AddNode inserts n, replacing any node already registered under n.Name
// (last write wins).
func (g *Graph) AddNode(n Node) {
	g.nodes[n.Name] = &n
}

// AddEdge appends e unconditionally. Endpoints are not validated.
func (g *Graph) AddEdge(e Edge) {
	g.edges = append(g.edges, e)
}

// Node returns a copy of the node registered under name.
func (g *Graph) Node(name NodeName) (Node, bool) {
	n, ok := g.nodes[name]
	if !ok {
		return Node{}, false
	}
	return *n, true
}

// Nodes returns copies of all nodes sorted by name.
func (g *Graph) Nodes() []Node {
	nodes := make([]Node, 0, len(g.nodes))
	for _, name := range slices.Sorted(maps.Keys(g.nodes)) {
		nodes = append(nodes, *g.nodes[name])
	}
	return nodes
}

// Edges returns a copy of all edges in insertion order.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// NodeCount returns the number of nodes in the node table.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of recorded edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// PredecessorsOf returns the direct parents of name. By construction a
// node has at most one parent, so the set holds zero or one element.
// A root yields an empty set, not an error.
//
// Returns a [NodeNotExistsError] if name is not in the node table.
func (g *Graph) PredecessorsOf(name NodeName) (NameSet, error) {
	if _, ok := g.nodes[name]; !ok {
		return nil, &NodeNotExistsError{Name: name}
	}
	parents := NameSet{}
	for _, e := range g.edges {
		if e.Child == name {
			parents.Add(e.Parent)
		}
	}
	return parents, nil
}

// SelfAndItsPredecessorsOf walks parent edges starting at name and returns
// the chain ordered child to root: name first, its most distant ancestor
// last. When a node has several recorded parent edges the first one wins.
//
// Returns a [NodeNotExistsError] if name or any ancestor reached through an
// edge is missing from the node table, or [ErrCyclicLineage] if the walk
// revisits a node.
func (g *Graph) SelfAndItsPredecessorsOf(name NodeName) ([]NodeName, error) {
	if _, ok := g.nodes[name]; !ok {
		return nil, &NodeNotExistsError{Name: name}
	}

	parentOf := g.parentIndex()
	chain := []NodeName{name}
	seen := NewNameSet(name)
	for cur := name; ; {
		parent, ok := parentOf[cur]
		if !ok {
			return chain, nil
		}
		if _, ok := g.nodes[parent]; !ok {
			return nil, &NodeNotExistsError{Name: parent}
		}
		if seen.Has(parent) {
			return nil, fmt.Errorf("%w: %s", ErrCyclicLineage, parent)
		}
		seen.Add(parent)
		chain = append(chain, parent)
		cur = parent
	}
}

// parentIndex maps each child to the parent of its first recorded edge.
func (g *Graph) parentIndex() map[NodeName]NodeName {
	idx := make(map[NodeName]NodeName, len(g.edges))
	for _, e := range g.edges {
		if _, ok := idx[e.Child]; !ok {
			idx[e.Child] = e.Parent
		}
	}
	return idx
}

// ChildrenOf returns the direct children of name. The second result is
// false when name is not in the node table; this is not an error.
func (g *Graph) ChildrenOf(name NodeName) (NameSet, bool) {
	if _, ok := g.nodes[name]; !ok {
		return nil, false
	}
	children := NameSet{}
	for _, e := range g.edges {
		if e.Parent == name {
			children.Add(e.Child)
		}
	}
	return children, true
}

// Roots returns the nodes without an incoming edge. A graph is a forest,
// so there may be many. Runs in O(N+E).
func (g *Graph) Roots() NameSet {
	hasParent := NameSet{}
	for _, e := range g.edges {
		hasParent.Add(e.Child)
	}
	roots := NameSet{}
	for name := range g.nodes {
		if !hasParent.Has(name) {
			roots.Add(name)
		}
	}
	return roots
}

// Leaves returns the nodes without an outgoing edge. Runs in O(N+E).
func (g *Graph) Leaves() NameSet {
	hasChild := NameSet{}
	for _, e := range g.edges {
		hasChild.Add(e.Parent)
	}
	leaves := NameSet{}
	for name := range g.nodes {
		if !hasChild.Has(name) {
			leaves.Add(name)
		}
	}
	return leaves
}
