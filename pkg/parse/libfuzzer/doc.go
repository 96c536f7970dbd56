// Package libfuzzer parses the mutation graph file that libFuzzer writes
// when run with -mutation_graph_file.
//
// The file is a sequence of Graphviz statements, one per line:
//
//	"0a4d55a8d778e5022fab701977c5d840bbc486d0"
//	"0a4d55a8d778e5022fab701977c5d840bbc486d0" -> "1c3ca4d5a3bd5d1a7e4a8d4a6d0a2d4f0e1b2c3d" [label="CMP-ShuffleBytes-"];
//
// A bare quoted name declares a vertex. An arrow statement declares an
// edge from parent to child, labeled with the mutation sequence that
// produced the child. A missing label becomes [seedtree.OriginLabel].
// Blank lines and an enclosing "digraph { ... }" are tolerated.
//
// Node names are SHA-1 digests of the unit contents, which is also how
// libFuzzer names corpus files. Nodes therefore carry their name as Hash
// and have no File.
package libfuzzer
