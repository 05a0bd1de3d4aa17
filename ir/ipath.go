package ir

import (
	"fmt"

	"github.com/signadot/sexp-edit/ir/ipath"
)

// GetPath navigates a forest with an index path, returning the node the
// whole path selects.  Append slots select nothing and yield ErrNotFound.
//
// Example:
//
//	GetPath(forest, ipath.Path{0, 2}) returns forest[0].Values[2]
func GetPath(forest []*Node, p ipath.Path) (*Node, error) {
	if len(p) == 0 {
		return nil, fmt.Errorf("%w: empty path", ErrNotFound)
	}
	if p[0] < 0 || p[0] >= len(forest) {
		return nil, fmt.Errorf("%w: index out of bounds %d (len %d)", ErrNotFound, p[0], len(forest))
	}
	res := forest[p[0]]
	for _, i := range p[1:] {
		if res.Type != ListType {
			return nil, fmt.Errorf("%w: expected list at %s, got %s", ErrNotFound, p, res.Type)
		}
		if i < 0 || i >= len(res.Values) {
			return nil, fmt.Errorf("%w: index out of bounds %d (len %d)", ErrNotFound, i, len(res.Values))
		}
		res = res.Values[i]
	}
	return res, nil
}

// Walk calls f for every node of the forest in document order with the
// node's path and nesting depth.  Returning false from f skips the node's
// children.
func Walk(forest []*Node, f func(y *Node, p ipath.Path, depth int) bool) {
	for i, y := range forest {
		walk(y, ipath.Path{i}, 0, f)
	}
}

func walk(y *Node, p ipath.Path, depth int, f func(*Node, ipath.Path, int) bool) {
	if !f(y, p, depth) {
		return
	}
	for i, yy := range y.Values {
		walk(yy, p.Append(i), depth+1, f)
	}
}
