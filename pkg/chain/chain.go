package chain

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/K-atc/seed-tree-analyzer/pkg/diff"
	"github.com/K-atc/seed-tree-analyzer/pkg/errors"
	"github.com/K-atc/seed-tree-analyzer/pkg/seedtree"
)

// ErrTooFewSeeds is returned by [Diff] when fewer than two members of the
// lineage have a file in the seeds directory.
var ErrTooFewSeeds = stderrors.New("fewer than two predecessors exist in seeds directory")

// Existing returns the lineage of target (target first, root last) keeping
// only the names that have a file dir/<name>. Order is preserved.
func Existing(g *seedtree.Graph, target seedtree.NodeName, dir string) ([]seedtree.NodeName, error) {
	lineage, err := g.SelfAndItsPredecessorsOf(target)
	if err != nil {
		return nil, err
	}

	var seeds []seedtree.NodeName
	for _, name := range lineage {
		_, err := os.Stat(filepath.Join(dir, name))
		switch {
		case err == nil:
			seeds = append(seeds, name)
		case os.IsNotExist(err):
		default:
			return nil, errors.Wrap(errors.ErrCodeIO, err, "stat seed %s", name)
		}
	}
	return seeds, nil
}

// Diff writes, for each consecutive pair of existing lineage members, a
// "name1 -> name2" header, one tab-indented line per changed chunk, and a
// blank line.
func Diff(g *seedtree.Graph, target seedtree.NodeName, dir string, w io.Writer) error {
	seeds, err := Existing(g, target, dir)
	if err != nil {
		return err
	}
	if len(seeds) < 2 {
		return fmt.Errorf("%w: node=%s, dir=%s", ErrTooFewSeeds, target, dir)
	}

	for i := 0; i+1 < len(seeds); i++ {
		if err := diffPair(w, dir, seeds[i], seeds[i+1]); err != nil {
			return err
		}
	}
	return nil
}

func diffPair(w io.Writer, dir string, a, b seedtree.NodeName) error {
	fa, err := os.Open(filepath.Join(dir, a))
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "open seed %s", a)
	}
	defer fa.Close()
	fb, err := os.Open(filepath.Join(dir, b))
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "open seed %s", b)
	}
	defer fb.Close()

	res, err := diff.Compare(fa, fb)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "compare %s and %s", a, b)
	}

	if _, err := fmt.Fprintf(w, "%s -> %s\n", a, b); err != nil {
		return err
	}
	for c := range res.Changes() {
		if _, err := fmt.Fprintf(w, "\t%s\n", c); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(w)
	return err
}
