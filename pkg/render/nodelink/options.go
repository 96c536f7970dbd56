package nodelink

import (
	stderrors "errors"
	"fmt"
	"slices"
	"strings"

	"github.com/K-atc/seed-tree-analyzer/pkg/errors"
	"github.com/K-atc/seed-tree-analyzer/pkg/seedtree"
)

// ErrConflictingHighlight is matched by every [ConflictingHighlightError].
var ErrConflictingHighlight = stderrors.New("multiple highlight targets are not supported")

// ConflictingHighlightError reports that more than one distinct node was
// requested for root-path highlighting. Targets lists all of them, sorted.
type ConflictingHighlightError struct {
	Targets []seedtree.NodeName
}

func (e *ConflictingHighlightError) Error() string {
	return fmt.Sprintf("%v: %s", ErrConflictingHighlight, strings.Join(e.Targets, ", "))
}

func (e *ConflictingHighlightError) Is(target error) bool { return target == ErrConflictingHighlight }

// EdgeSet is an unordered set of edges. Membership compares parent,
// child and label.
type EdgeSet map[seedtree.Edge]struct{}

// Has reports whether e is in the set.
func (s EdgeSet) Has(e seedtree.Edge) bool {
	_, ok := s[e]
	return ok
}

// Directive is a single plot request. The concrete types are
// [HighlightEdgesFromRootTo], [HighlightEdgeWithBlue],
// [HighlightEdgeWithRed], [HighlightEdgeWithGreen],
// [HighlightCrashInput] and [NotateTo].
type Directive interface {
	apply(*Options, seedtree.NameSet)
}

// HighlightEdgesFromRootTo highlights every edge on the path from the
// root of Node's lineage down to Node.
type HighlightEdgesFromRootTo struct{ Node seedtree.NodeName }

// HighlightEdgeWithBlue colors one edge blue.
type HighlightEdgeWithBlue struct{ Edge seedtree.Edge }

// HighlightEdgeWithRed colors one edge red.
type HighlightEdgeWithRed struct{ Edge seedtree.Edge }

// HighlightEdgeWithGreen colors one edge green.
type HighlightEdgeWithGreen struct{ Edge seedtree.Edge }

// HighlightCrashInput fills crash-input nodes.
type HighlightCrashInput struct{}

// NotateTo appends Text to the label of Node. Several notes for the same
// node are joined by newlines in directive order.
type NotateTo struct {
	Node seedtree.NodeName
	Text string
}

func (d HighlightEdgesFromRootTo) apply(_ *Options, targets seedtree.NameSet) { targets.Add(d.Node) }
func (d HighlightEdgeWithBlue) apply(o *Options, _ seedtree.NameSet) { o.HighlightEdgeWithBlue[d.Edge] = struct{}{} }
func (d HighlightEdgeWithRed) apply(o *Options, _ seedtree.NameSet) { o.HighlightEdgeWithRed[d.Edge] = struct{}{} }
func (d HighlightEdgeWithGreen) apply(o *Options, _ seedtree.NameSet) { o.HighlightEdgeWithGreen[d.Edge] = struct{}{} }
func (HighlightCrashInput) apply(o *Options, _ seedtree.NameSet) { o.HighlightCrashInput = true }

func (d NotateTo) apply(o *Options, _ seedtree.NameSet) {
	if old, ok := o.Notate[d.Node]; ok {
		o.Notate[d.Node] = old + "\n" + d.Text
		return
	}
	o.Notate[d.Node] = d.Text
}

// Options configures DOT generation. Build it with [BuildOptions]; the
// zero value renders a plain graph.
type Options struct {
	// HighlightEdgesFromRootTo, when non-empty, names the node whose
	// ancestor path is highlighted.
	HighlightEdgesFromRootTo seedtree.NodeName

	HighlightEdgeWithBlue  EdgeSet
	HighlightEdgeWithRed   EdgeSet
	HighlightEdgeWithGreen EdgeSet

	// HighlightCrashInput fills crashed nodes in addition to their red outline.
	HighlightCrashInput bool

	// Notate maps node names to extra label lines.
	Notate map[seedtree.NodeName]string
}

// BuildOptions folds directives into Options. Repeating the same
// root-path target is allowed; two distinct targets yield a
// [ConflictingHighlightError].
func BuildOptions(directives []Directive) (Options, error) {
	opts := Options{
		HighlightEdgeWithBlue:  EdgeSet{},
		HighlightEdgeWithRed:   EdgeSet{},
		HighlightEdgeWithGreen: EdgeSet{},
		Notate:                 map[seedtree.NodeName]string{},
	}
	targets := seedtree.NameSet{}
	for _, d := range directives {
		d.apply(&opts, targets)
	}

	switch len(targets) {
	case 0:
	case 1:
		opts.HighlightEdgesFromRootTo = targets.Sorted()[0]
	default:
		return Options{}, &ConflictingHighlightError{Targets: targets.Sorted()}
	}
	return opts, nil
}

// ParseEdge parses an edge written as PARENT:CHILD:LABEL. The label may
// itself contain ':'.
func ParseEdge(s string) (seedtree.Edge, error) {
	parts := strings.SplitN(s, ":", 3)
	if len(parts) != 3 || slices.Contains(parts[:2], "") {
		return seedtree.Edge{}, errors.New(errors.ErrCodeInvalidInput, "edge must be PARENT:CHILD:LABEL, got %q", s)
	}
	return seedtree.Edge{Parent: parts[0], Child: parts[1], Label: parts[2]}, nil
}

// ParseNote parses a note written as NODE=TEXT.
func ParseNote(s string) (NotateTo, error) {
	node, text, ok := strings.Cut(s, "=")
	if !ok || node == "" {
		return NotateTo{}, errors.New(errors.ErrCodeInvalidInput, "note must be NODE=TEXT, got %q", s)
	}
	return NotateTo{Node: node, Text: text}, nil
}
