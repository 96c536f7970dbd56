// Package config loads optional defaults for the seedtree command from a
// TOML file.
//
//	[afl]
//	aurora = false
//	crash_inputs_dir = "out/default/crashes"
//
//	[plot]
//	highlight_crash_input = true
//	formats = ["svg", "png"]
//	renderer = "graphviz"   # or "dot"
//
//	[[plot.notate]]
//	node = "000002"
//	text = "root cause"
//
// Command-line flags always take precedence over the file.
package config
