package seedtree

// Filter derives the sub-graph induced by target and its ancestors.
//
// With an empty target the filtered node set is empty and an empty graph
// is returned. Otherwise the node set is [Graph.SelfAndItsPredecessorsOf]
// target; any error from that query fails the whole operation.
//
// When extendToLeaves is set, every direct child of a node in the set that
// is itself a leaf of g is added as well. Only direct children are
// inspected: a leaf two hops away from the ancestor chain is not included.
//
// The result holds exactly the filtered nodes and every edge of g whose
// endpoints both lie in the set. g is never modified.
func Filter(g *Graph, target NodeName, extendToLeaves bool) (*Graph, error) {
	base := NameSet{}
	if target != "" {
		chain, err := g.SelfAndItsPredecessorsOf(target)
		if err != nil {
			return nil, err
		}
		base = NewNameSet(chain...)
	}

	filtered := base
	if extendToLeaves {
		filtered = NameSet{}
		leaves := g.Leaves()
		for name := range base {
			filtered.Add(name)
			children, ok := g.ChildrenOf(name)
			if !ok {
				continue
			}
			for child := range children {
				if leaves.Has(child) {
					filtered.Add(child)
				}
			}
		}
	}

	out := New()
	for name := range filtered {
		n, ok := g.Node(name)
		if !ok {
			return nil, &NodeNotExistsError{Name: name}
		}
		out.AddNode(n)
	}
	for _, e := range g.edges {
		if filtered.Has(e.Parent) && filtered.Has(e.Child) {
			out.AddEdge(e)
		}
	}
	return out, nil
}
