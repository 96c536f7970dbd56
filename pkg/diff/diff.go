package diff

import (
	"fmt"
	"io"
	"iter"

	"github.com/pmezard/go-difflib/difflib"
)

// Kind classifies a [Chunk].
type Kind int

const (
	Same Kind = iota
	Delete
	Insert
	Replace
)

func (k Kind) String() string {
	switch k {
	case Same:
		return "Same"
	case Delete:
		return "Delete"
	case Insert:
		return "Insert"
	case Replace:
		return "Replace"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Chunk is one step of the edit script turning the old stream into the
// new one. Offset always points into the old stream.
type Chunk struct {
	Kind   Kind
	Offset int
	Length int    // bytes of the old stream covered (Same, Delete, Replace)
	Old    []byte // removed bytes (Delete, Replace)
	New    []byte // added bytes (Insert, Replace)
}

func (c Chunk) String() string {
	switch c.Kind {
	case Same:
		return fmt.Sprintf("Same(offset=0x%x, length=%d)", c.Offset, c.Length)
	case Delete:
		return fmt.Sprintf("Delete(offset=0x%x, length=%d)", c.Offset, c.Length)
	case Insert:
		return fmt.Sprintf("Insert(offset=0x%x, bytes=%x)", c.Offset, c.New)
	case Replace:
		return fmt.Sprintf("Replace(offset=0x%x, old=%x, new=%x)", c.Offset, c.Old, c.New)
	}
	return c.Kind.String()
}

// Result holds the comparison of two byte streams.
type Result struct {
	old, new []byte
	ops      []difflib.OpCode
	consumed bool
}

// Compare reads both streams to the end and computes their byte-level
// edit script.
func Compare(oldR, newR io.Reader) (*Result, error) {
	oldBytes, err := io.ReadAll(oldR)
	if err != nil {
		return nil, fmt.Errorf("read old: %w", err)
	}
	newBytes, err := io.ReadAll(newR)
	if err != nil {
		return nil, fmt.Errorf("read new: %w", err)
	}

	// Byte values repeat heavily, so the popularity heuristic would junk
	// most of them on inputs of a few hundred bytes.
	m := difflib.NewMatcherWithJunk(tokens(oldBytes), tokens(newBytes), false, nil)
	return &Result{old: oldBytes, new: newBytes, ops: m.GetOpCodes()}, nil
}

func tokens(b []byte) []string {
	out := make([]string, len(b))
	for i := range b {
		out[i] = string(b[i : i+1])
	}
	return out
}

// Chunks yields the edit script in stream order. The sequence is finite
// and can be ranged over once; later iterations yield nothing.
func (r *Result) Chunks() iter.Seq[Chunk] {
	return func(yield func(Chunk) bool) {
		if r.consumed {
			return
		}
		r.consumed = true
		for _, op := range r.ops {
			c := Chunk{Offset: op.I1, Length: op.I2 - op.I1}
			switch op.Tag {
			case 'e':
				c.Kind = Same
			case 'd':
				c.Kind = Delete
				c.Old = r.old[op.I1:op.I2]
			case 'i':
				c.Kind = Insert
				c.New = r.new[op.J1:op.J2]
			case 'r':
				c.Kind = Replace
				c.Old = r.old[op.I1:op.I2]
				c.New = r.new[op.J1:op.J2]
			}
			if !yield(c) {
				return
			}
		}
	}
}

// Changes yields only the chunks that are not [Same].
func (r *Result) Changes() iter.Seq[Chunk] {
	return func(yield func(Chunk) bool) {
		for c := range r.Chunks() {
			if c.Kind == Same {
				continue
			}
			if !yield(c) {
				return
			}
		}
	}
}
