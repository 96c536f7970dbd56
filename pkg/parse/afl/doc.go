// Package afl reconstructs a mutation graph from an AFL-style output
// directory, where every seed's lineage is encoded in its file name.
//
// # File Name Grammars
//
// Two grammars are supported, selected by [Extensions.Aurora]:
//
//	plain:  id:000002,sig:06,src:000000,time:8024,execs:2409,op:colorization,pos:0
//	aurora: id:000348,src:000012,op:havoc_143
//
// The id becomes the node name. Plain crash inputs are named
// "crash-<id>". An aurora name with a "_<non-crash-id>" suffix on its
// operator is named "nc-<non-crash-id>" instead, regardless of where the
// file lives.
//
// The src field may list several sources joined by '+' (a splice). Only
// the first one is recorded as parent.
//
// # Crash Inputs
//
// A file is a crash input when its directory equals
// [Extensions.CrashInputsDir], or, when that is unset, when its directory
// is named "crashes".
//
// # Usage
//
//	g, err := afl.ParseDirectories([]string{"out/default"}, afl.Extensions{}, afl.WithLogger(logger))
package afl
