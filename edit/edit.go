// Package edit mutates a document in place.
//
// Every operation takes the root container, a List whose values are the
// document's top level nodes, and a path into it as maintained by package
// cursor.  Paths are validated before anything changes, so an operation
// that returns an error leaves the tree as it was.
package edit

import (
	"errors"
	"fmt"
	"slices"

	"github.com/signadot/sexp-edit/debug"
	"github.com/signadot/sexp-edit/ir"
	"github.com/signadot/sexp-edit/ir/ipath"
	"github.com/signadot/sexp-edit/token"
)

var (
	ErrInvalidPath  = errors.New("invalid path")
	ErrTypeMismatch = errors.New("type mismatch")
)

// container returns the node p addresses, requiring every step to index
// an existing list child.
func container(root *ir.Node, p ipath.Path) (*ir.Node, error) {
	y := root
	for i, v := range p {
		if y.Type != ir.ListType {
			return nil, fmt.Errorf("%w: %s: step %d is inside a %s", ErrInvalidPath, p, i, y.Type)
		}
		if v < 0 || v >= len(y.Values) {
			return nil, fmt.Errorf("%w: %s: index %d out of range (len %d)", ErrInvalidPath, p, v, len(y.Values))
		}
		y = y.Values[v]
	}
	return y, nil
}

// InsertNode inserts y at index p.Last() of the container at p.Parent(),
// appending when the index is at or past its end.  An atom container is
// replaced in place by a list of the atom and y.
func InsertNode(root *ir.Node, p ipath.Path, y *ir.Node) error {
	if len(p) == 0 {
		return fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	c, err := container(root, p.Parent())
	if err != nil {
		return err
	}
	if debug.Edit() {
		debug.Logf("insert %v at %s into %v\n", y, p, c)
	}
	switch c.Type {
	case ir.ListType:
		i := min(max(p.Last(), 0), len(c.Values))
		c.Values = slices.Insert(c.Values, i, y)
	case ir.IdentType, ir.NumberType, ir.StringType:
		old := c.Clone()
		*c = *ir.List(old, y)
	default:
		return fmt.Errorf("%w: %s", ErrTypeMismatch, c.Type)
	}
	return nil
}

// InsertChar inserts ch into the atom at p.Parent() at character index
// p.Last(), appending when the index is at or past the end.  In a string
// atom ch is stored escaped, so the atom may grow by more than one
// character, and ch is never placed inside a backslash sequence.
func InsertChar(root *ir.Node, p ipath.Path, ch rune) error {
	if len(p) == 0 {
		return fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	c, err := container(root, p.Parent())
	if err != nil {
		return err
	}
	if c.Type == ir.ListType {
		return fmt.Errorf("%w: insert char %q into %s at %s", ErrTypeMismatch, ch, c.Type, p)
	}
	s := string(ch)
	rs := []rune(c.Text)
	i := min(max(p.Last(), 0), len(rs))
	if c.Type == ir.StringType {
		s = token.Escape(s)
		if i < len(rs) {
			i, _ = escapeSpan(rs, i)
		}
	}
	c.Text = string(rs[:i]) + s + string(rs[i:])
	if debug.Edit() {
		debug.Logf("insert char %q at %s: %v\n", ch, p, c)
	}
	return nil
}

// Delete removes the child or character at p.Last() of the node at
// p.Parent().  Deleting from an empty node, at an append slot, or with an
// empty path does nothing.  In a string atom a backslash sequence is
// deleted as a whole.
func Delete(root *ir.Node, p ipath.Path) error {
	if len(p) == 0 {
		return nil
	}
	c, err := container(root, p.Parent())
	if err != nil {
		return err
	}
	i := p.Last()
	if debug.Edit() {
		debug.Logf("delete %s in %v\n", p, c)
	}
	switch c.Type {
	case ir.ListType:
		if i < 0 || i >= len(c.Values) {
			return nil
		}
		c.Values = slices.Delete(c.Values, i, i+1)
	case ir.IdentType, ir.NumberType:
		rs := []rune(c.Text)
		if i < 0 || i >= len(rs) {
			return nil
		}
		c.Text = string(slices.Delete(rs, i, i+1))
	case ir.StringType:
		rs := []rune(c.Text)
		if i < 0 || i >= len(rs) {
			return nil
		}
		lo, hi := escapeSpan(rs, i)
		c.Text = string(slices.Delete(rs, lo, hi))
	default:
		return fmt.Errorf("%w: %s", ErrTypeMismatch, c.Type)
	}
	return nil
}

// Span returns the range of character indices of atom y that make up the
// character at i: a backslash sequence in a string atom counts as one.
func Span(y *ir.Node, i int) (int, int) {
	if y.Type != ir.StringType {
		return i, i + 1
	}
	return escapeSpan([]rune(y.Text), i)
}

func escapeSpan(rs []rune, i int) (int, int) {
	for j := 0; j < len(rs) && j <= i; j++ {
		if rs[j] != '\\' || j+1 >= len(rs) {
			continue
		}
		if i == j || i == j+1 {
			return j, j + 2
		}
		j++
	}
	return i, i + 1
}
