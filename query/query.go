// Package query selects nodes of a forest with expr predicates.
//
// A predicate is evaluated once per node with these variables:
//
//	kind   "List", "Ident", "Number" or "String"
//	text   atom text, with string escapes resolved ("" for lists)
//	len    number of children or characters
//	depth  nesting depth, 0 at the top level
//	index  position among the node's siblings
//	path   the node's path, as in "[0][2]"
//
// and these functions:
//
//	head()      text of the first child of a list, "" if there is none
//	whereami()  same as path
//
// For example `kind == "List" && head() == "define"` selects definitions.
package query

import (
	"errors"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/signadot/sexp-edit/ir"
	"github.com/signadot/sexp-edit/ir/ipath"
)

var (
	ErrBadQuery = errors.New("bad query")
	ErrNotBool  = fmt.Errorf("%w: result is not a boolean", ErrBadQuery)
)

type Query struct {
	src string
	prg *vm.Program
}

func env(y *ir.Node, p ipath.Path, depth int) map[string]any {
	text := ""
	if y != nil && y.Type.IsLeaf() {
		text = y.Unescaped()
	}
	kind, n := "", 0
	if y != nil {
		kind, n = y.Type.String(), y.Len()
	}
	return map[string]any{
		"kind":  kind,
		"text":  text,
		"len":   n,
		"depth": depth,
		"index": max(p.Last(), 0),
		"path":  p.String(),
		"head": func() string {
			if y == nil || y.Type != ir.ListType || len(y.Values) == 0 {
				return ""
			}
			return y.Values[0].Unescaped()
		},
		"whereami": func() string {
			return p.String()
		},
	}
}

// Compile compiles a predicate.
func Compile(src string) (*Query, error) {
	prg, err := expr.Compile(src, expr.Env(env(nil, nil, 0)), expr.AsBool())
	if err == nil {
		return &Query{src: src, prg: prg}, nil
	}
	if _, err2 := expr.Compile(src, expr.Env(env(nil, nil, 0))); err2 == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotBool, src)
	}
	return nil, fmt.Errorf("%w: %w", ErrBadQuery, err)
}

func (q *Query) String() string { return q.src }

// Match evaluates the predicate on y, found at path p and nesting depth
// depth.
func (q *Query) Match(y *ir.Node, p ipath.Path, depth int) (bool, error) {
	res, err := expr.Run(q.prg, env(y, p, depth))
	if err != nil {
		return false, fmt.Errorf("%s at %s: %w", q.src, p, err)
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %s gave %T", ErrNotBool, q.src, res)
	}
	return b, nil
}

// Find returns the paths of the matching nodes in document order.
func (q *Query) Find(forest []*ir.Node) ([]ipath.Path, error) {
	var (
		res []ipath.Path
		err error
	)
	ir.Walk(forest, func(y *ir.Node, p ipath.Path, depth int) bool {
		if err != nil {
			return false
		}
		var ok bool
		ok, err = q.Match(y, p, depth)
		if ok {
			res = append(res, p)
		}
		return err == nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Next returns the first match after the node at p in document order,
// wrapping around to the start.  p itself is returned only if it is the
// sole match.
func (q *Query) Next(forest []*ir.Node, p ipath.Path) (ipath.Path, bool, error) {
	ps, err := q.Find(forest)
	if err != nil || len(ps) == 0 {
		return nil, false, err
	}
	for _, m := range ps {
		if m.Compare(p) > 0 {
			return m, true, nil
		}
	}
	return ps[0], true, nil
}
