// Package io provides JSON import and export for mutation graphs.
//
// # JSON Format
//
// The format has two top-level arrays:
//
//	{
//	  "nodes": [
//	    {"name": "000000", "file": "out/queue/id:000000,orig:seed", "hash": "da39a3ee..."},
//	    {"name": "crash-000001", "crashed": true, "file": "out/crashes/id:000001,...", "hash": "..."}
//	  ],
//	  "edges": [
//	    {"parent": "000000", "child": "crash-000001", "label": "havoc"}
//	  ]
//	}
//
// Nodes are written sorted by name; edges keep the order in which the
// parser recorded them. The "crashed", "file" and "hash" fields are
// omitted when empty.
//
// # Usage
//
// Use [WriteJSON] or [ExportJSON] to dump a parsed graph, and [ReadJSON]
// or [ImportJSON] to load one back for querying or rendering:
//
//	err := io.ExportJSON(g, "graph.json")
//	g, err := io.ImportJSON("graph.json")
package io
