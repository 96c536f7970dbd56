package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/K-atc/seed-tree-analyzer/pkg/seedtree"
)

type graph struct {
	Nodes []node `json:"nodes"`
	Edges []edge `json:"edges"`
}

type node struct {
	Name    string `json:"name"`
	Crashed bool   `json:"crashed,omitempty"`
	File    string `json:"file,omitempty"`
	Hash    string `json:"hash,omitempty"`
}

type edge struct {
	Parent string `json:"parent"`
	Child  string `json:"child"`
	Label  string `json:"label"`
}

// WriteJSON encodes a mutation graph as JSON and writes it to w.
// Nodes are sorted by name and edges keep their recorded order, so the
// output is stable. It can be re-imported with [ReadJSON].
func WriteJSON(g *seedtree.Graph, w io.Writer) error {
	nodes := g.Nodes()
	edges := g.Edges()
	out := graph{
		Nodes: make([]node, len(nodes)),
		Edges: make([]edge, len(edges)),
	}

	for i, n := range nodes {
		out.Nodes[i] = node{Name: n.Name, Crashed: n.Crashed, File: n.File, Hash: n.Hash}
	}
	for i, e := range edges {
		out.Edges[i] = edge{Parent: e.Parent, Child: e.Child, Label: e.Label}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a mutation graph to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(g *seedtree.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(g, f)
}
