// Package chain inspects the files along one seed's lineage.
//
// libFuzzer names corpus files after the SHA-1 of their contents, the
// same names its mutation graph uses. Given a corpus directory, [Existing]
// lists which ancestors of a seed are still on disk and [Diff] shows the
// byte changes between each consecutive pair, child first.
package chain
