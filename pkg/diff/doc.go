// Package diff compares two byte streams and describes the difference as
// a sequence of [Chunk] values: unchanged runs, deletions, insertions and
// replacements, each anchored at an offset into the first stream.
//
// The edit script comes from [github.com/pmezard/go-difflib] run over
// single-byte tokens.
//
//	res, err := diff.Compare(oldFile, newFile)
//	for c := range res.Changes() {
//	    fmt.Println(c)
//	}
package diff
