package libfuzzer

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/K-atc/seed-tree-analyzer/pkg/errors"
	"github.com/K-atc/seed-tree-analyzer/pkg/seedtree"
)

// maxLineSize bounds a single statement. Labels are mutation sequences
// and stay far below this.
const maxLineSize = 1 << 20

// Option configures a parse.
type Option func(*parser)

// WithLogger routes parse diagnostics to l. Without it diagnostics are
// discarded.
func WithLogger(l *log.Logger) Option {
	return func(p *parser) {
		if l != nil {
			p.logger = l
		}
	}
}

type parser struct {
	logger *log.Logger
}

// ParseFile reads the mutation graph file written by libFuzzer's
// -mutation_graph_file flag.
func ParseFile(path string, opts ...Option) (*seedtree.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "open %s", path)
	}
	defer f.Close()

	return Parse(f, opts...)
}

// Parse builds a mutation graph from r. See the package documentation for
// the accepted statements.
//
// Vertices are registered with Hash set to their name. Edges whose
// endpoints have no vertex statement are kept and stay dangling.
func Parse(r io.Reader, opts ...Option) (*seedtree.Graph, error) {
	p := &parser{logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(p)
	}

	g := seedtree.New()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		stmt := strings.TrimSpace(sc.Text())
		stmt = strings.TrimSpace(strings.TrimSuffix(stmt, ";"))
		if stmt == "" || stmt == "}" || strings.HasSuffix(stmt, "{") {
			continue
		}
		if err := p.statement(g, stmt); err != nil {
			return nil, errors.New(errors.ErrCodeSyntax, "line %d: %s", lineNo, errors.UserMessage(err))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "read mutation graph")
	}

	p.logger.Debug("parsed mutation graph", "nodes", g.NodeCount(), "edges", g.EdgeCount())
	return g, nil
}

func (p *parser) statement(g *seedtree.Graph, stmt string) error {
	first, rest, err := quoted(stmt)
	if err != nil {
		return err
	}
	rest = strings.TrimSpace(rest)

	if rest == "" {
		g.AddNode(seedtree.Node{Name: first, Hash: first})
		return nil
	}

	after, ok := strings.CutPrefix(rest, "->")
	if !ok {
		return errors.New(errors.ErrCodeSyntax, "expected '->' after %q, got %q", first, rest)
	}
	child, rest, err := quoted(strings.TrimSpace(after))
	if err != nil {
		return err
	}

	label, err := edgeLabel(strings.TrimSpace(rest))
	if err != nil {
		return err
	}
	if label == "" {
		label = seedtree.OriginLabel
	}
	g.AddEdge(seedtree.Edge{Parent: first, Child: child, Label: label})
	return nil
}

// quoted consumes a double-quoted string from the start of s and returns
// its unescaped value along with the remainder.
func quoted(s string) (string, string, error) {
	if !strings.HasPrefix(s, `"`) {
		return "", "", errors.New(errors.ErrCodeSyntax, "expected quoted name, got %q", s)
	}
	var b strings.Builder
	for i := 1; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\':
			if i+1 < len(s) {
				i++
				b.WriteByte(s[i])
			}
		case '"':
			if b.Len() == 0 {
				return "", "", errors.New(errors.ErrCodeSyntax, "empty name")
			}
			return b.String(), s[i+1:], nil
		default:
			b.WriteByte(c)
		}
	}
	return "", "", errors.New(errors.ErrCodeSyntax, "unterminated quoted string %q", s)
}

// edgeLabel extracts label="..." from an optional attribute list such as
// [label="CMP-ShuffleBytes-"]. Other attributes are ignored.
func edgeLabel(attrs string) (string, error) {
	if attrs == "" {
		return "", nil
	}
	body, ok := strings.CutPrefix(attrs, "[")
	if !ok {
		return "", errors.New(errors.ErrCodeSyntax, "unexpected trailing text %q", attrs)
	}
	body, ok = strings.CutSuffix(strings.TrimSpace(body), "]")
	if !ok {
		return "", errors.New(errors.ErrCodeSyntax, "unterminated attribute list %q", attrs)
	}

	label := ""
	for body = strings.TrimSpace(body); body != ""; {
		key, value, found := strings.Cut(body, "=")
		if !found {
			return "", errors.New(errors.ErrCodeSyntax, "malformed attribute %q", body)
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		var v string
		if strings.HasPrefix(value, `"`) {
			var err error
			if v, body, err = quotedValue(value); err != nil {
				return "", err
			}
		} else {
			v, body, _ = strings.Cut(value, ",")
			v = strings.TrimSpace(v)
		}
		if key == "label" {
			label = v
		}
		body = strings.TrimLeft(strings.TrimSpace(body), ",")
		body = strings.TrimSpace(body)
	}
	return label, nil
}

// quotedValue is quoted without the non-empty requirement; labels may be "".
func quotedValue(s string) (string, string, error) {
	if strings.HasPrefix(s, `""`) {
		return "", s[2:], nil
	}
	return quoted(s)
}
