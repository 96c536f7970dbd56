// Package seedtree provides the mutation graph ("seed tree") that
// coverage-guided fuzzers implicitly build while deriving new test cases.
//
// # Overview
//
// Every seed a fuzzer keeps is derived from zero or one parent seed by a
// named mutation operator. Some seeds trigger crashes. This package stores
// those seeds as [Node] values and the parent/child relations as [Edge]
// values, and answers ancestry queries over them.
//
// # Basic Usage
//
// Graphs are normally produced by a parser (see the afl and libfuzzer
// packages), but can be built by hand:
//
//	g := seedtree.New()
//	g.AddNode(seedtree.Node{Name: "000000"})
//	g.AddNode(seedtree.Node{Name: "000001"})
//	g.AddEdge(seedtree.Edge{Parent: "000000", Child: "000001", Label: "havoc"})
//
// Query the structure with [Graph.PredecessorsOf], [Graph.SelfAndItsPredecessorsOf],
// [Graph.ChildrenOf], [Graph.Roots] and [Graph.Leaves]. Derive a sub-graph
// with [Filter].
//
// # Identity
//
// A node is identified by its [NodeName]. Adding a node under an existing
// name replaces the previous record. Edges are appended without checking
// that their endpoints exist; queries that need a missing endpoint report a
// [NodeNotExistsError].
//
// # Shape
//
// Parsers record at most one parent edge per child, even when a seed name
// lists several sources (a splice). The ancestor relation is therefore a
// simple chain from any node to exactly one root, and a graph is a forest
// of such chains. Roots and leaves are returned as unordered [NameSet]
// values; use [NameSet.Sorted] for display.
//
// # Hashing
//
// [HashFile] digests only the first buffered read of a file
// ([HashBufferSize] bytes). Larger files hash to the digest of that prefix.
//
// # Concurrency
//
// A Graph is built once and then only read. Concurrent queries on a fully
// built graph are safe; construction itself is not synchronized.
package seedtree
