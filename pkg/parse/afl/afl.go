package afl

import (
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/K-atc/seed-tree-analyzer/pkg/errors"
	"github.com/K-atc/seed-tree-analyzer/pkg/seedtree"
)

const (
	// stateDir is fuzzer bookkeeping, never seeds.
	stateDir = ".state"

	// crashesDir is the default crash-input directory name.
	crashesDir = "crashes"

	readmeFile = "README.txt"
)

// Extensions selects the file name grammar and crash classification.
type Extensions struct {
	// Aurora selects the aurora grammar instead of the plain AFL one.
	Aurora bool

	// CrashInputsDir, when set, is the only directory whose files are
	// classified as crash inputs. When empty, any directory named
	// "crashes" is.
	CrashInputsDir string
}

// Option configures a parse.
type Option func(*parser)

// WithLogger routes parse diagnostics (skipped directories, malformed
// names) to l. Without it diagnostics are discarded.
func WithLogger(l *log.Logger) Option {
	return func(p *parser) {
		if l != nil {
			p.logger = l
		}
	}
}

type parser struct {
	ext    Extensions
	graph  *seedtree.Graph
	logger *log.Logger
}

func newParser(g *seedtree.Graph, ext Extensions, opts []Option) *parser {
	p := &parser{ext: ext, graph: g, logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseDirectories builds a mutation graph from every seed file found
// below dirs. Duplicate directories are parsed once.
//
// Any failure aborts the whole parse and no graph is returned.
func ParseDirectories(dirs []string, ext Extensions, opts ...Option) (*seedtree.Graph, error) {
	g := seedtree.New()
	seen := make(map[string]bool, len(dirs))
	for _, dir := range dirs {
		if seen[dir] {
			continue
		}
		seen[dir] = true
		if err := ParseDirectory(dir, g, ext, opts...); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// ParseDirectory adds the seeds found below dir to g.
//
// Directories are visited iteratively in lexical order; a directory named
// ".state" is skipped with a warning. Each regular file is classified by
// the grammar selected in ext:
//
//   - A matching name registers a node and one edge from the first src
//     entry to the node. Splice sources after the first '+' are dropped.
//   - A non-matching name starting with "id:" is skipped with a warning.
//   - "README.txt" is skipped.
//   - Any other file becomes an isolated node named after the file.
//
// On error g may hold the nodes added before the failure.
func ParseDirectory(dir string, g *seedtree.Graph, ext Extensions, opts ...Option) error {
	info, err := os.Stat(dir)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "stat %s", dir)
	}
	if !info.IsDir() {
		return errors.New(errors.ErrCodeUnexpectedFilePath, "not a directory: %s", dir)
	}
	return newParser(g, ext, opts).walk(dir)
}

func (p *parser) walk(root string) error {
	stack := []string{root}
	for len(stack) > 0 {
		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		p.logger.Debug("scanning directory", "path", dir)
		entries, err := os.ReadDir(dir)
		if err != nil {
			return errors.Wrap(errors.ErrCodeIO, err, "read directory %s", dir)
		}

		var subdirs []string
		for _, entry := range entries {
			path := filepath.Join(dir, entry.Name())
			info, err := os.Stat(path)
			if err != nil {
				return errors.Wrap(errors.ErrCodeIO, err, "stat %s", path)
			}
			if info.IsDir() {
				if entry.Name() == stateDir {
					p.logger.Warn("skipped directory", "path", path)
					continue
				}
				subdirs = append(subdirs, path)
				continue
			}
			if err := p.visitFile(dir, path); err != nil {
				return err
			}
		}

		slices.Reverse(subdirs)
		stack = append(stack, subdirs...)
	}
	return nil
}

func (p *parser) visitFile(dir, path string) error {
	name := filepath.Base(path)
	if !utf8.ValidString(name) {
		return errors.New(errors.ErrCodeStringEncoding, "file name is not valid UTF-8: %q", path)
	}

	crashed := p.isCrashDir(dir)

	var (
		seed    seedName
		matched bool
	)
	if p.ext.Aurora {
		seed, matched = parseAurora(name)
	} else {
		seed, matched = parsePlain(name)
	}

	if !matched {
		switch {
		case strings.HasPrefix(name, "id:"):
			p.logger.Warn("file does not have AFL's input file name format", "file", name)
			return nil
		case name == readmeFile:
			p.logger.Info("README file found, skipped", "file", name)
			return nil
		}
		return p.addNode(name, crashed, path)
	}

	if seed.ID == "" {
		return errors.New(errors.ErrCodeSyntax, "'id' does not exist: %s", name)
	}
	nodeName := p.nodeName(seed, crashed)
	if err := p.addNode(nodeName, crashed, path); err != nil {
		return err
	}

	if seed.Src == "" {
		return errors.New(errors.ErrCodeSyntax, "'src' does not exist: %s", name)
	}
	parent, _, _ := strings.Cut(seed.Src, "+")
	label := seed.Op
	if label == "" {
		label = seedtree.OriginLabel
	}
	p.graph.AddEdge(seedtree.Edge{Parent: parent, Child: nodeName, Label: label})
	return nil
}

// nodeName derives the node identity. In aurora mode a non-crash suffix
// overrides the id; in plain mode crash inputs get a "crash-" prefix.
func (p *parser) nodeName(seed seedName, crashed bool) seedtree.NodeName {
	if p.ext.Aurora {
		if seed.NonCrashID != "" {
			return "nc-" + seed.NonCrashID
		}
		return seed.ID
	}
	if crashed {
		return "crash-" + seed.ID
	}
	return seed.ID
}

func (p *parser) addNode(name seedtree.NodeName, crashed bool, path string) error {
	hash, err := seedtree.HashFile(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "hash %s", path)
	}
	p.graph.AddNode(seedtree.Node{Name: name, Crashed: crashed, File: path, Hash: hash})
	return nil
}

func (p *parser) isCrashDir(dir string) bool {
	if p.ext.CrashInputsDir != "" {
		return filepath.Clean(dir) == filepath.Clean(p.ext.CrashInputsDir)
	}
	return filepath.Base(filepath.Clean(dir)) == crashesDir
}
