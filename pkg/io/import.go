package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/K-atc/seed-tree-analyzer/pkg/seedtree"
)

// ReadJSON decodes a JSON mutation graph from r.
//
// The input must be a JSON object with "nodes" and "edges" arrays:
//
//	{
//	  "nodes": [{"name": "000000", "hash": "da39..."}, {"name": "crash-000001", "crashed": true}],
//	  "edges": [{"parent": "000000", "child": "crash-000001", "label": "havoc"}]
//	}
//
// Graph semantics are the same as for parsed graphs: a repeated node name
// replaces the earlier entry and edges may reference unknown names.
//
// ReadJSON returns an error if the JSON is malformed or a node or edge
// endpoint has an empty name. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*seedtree.Graph, error) {
	var data graph
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	g := seedtree.New()
	for i, n := range data.Nodes {
		if n.Name == "" {
			return nil, fmt.Errorf("node %d: empty name", i)
		}
		g.AddNode(seedtree.Node{Name: n.Name, Crashed: n.Crashed, File: n.File, Hash: n.Hash})
	}
	for _, e := range data.Edges {
		if e.Parent == "" || e.Child == "" {
			return nil, fmt.Errorf("edge %s->%s: empty endpoint", e.Parent, e.Child)
		}
		g.AddEdge(seedtree.Edge{Parent: e.Parent, Child: e.Child, Label: e.Label})
	}

	return g, nil
}

// ImportJSON reads a JSON file at path and returns the decoded graph.
func ImportJSON(path string) (*seedtree.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
