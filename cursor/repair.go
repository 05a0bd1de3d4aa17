package cursor

import (
	"errors"
	"fmt"

	"github.com/signadot/sexp-edit/debug"
	"github.com/signadot/sexp-edit/ir"
	"github.com/signadot/sexp-edit/ir/ipath"
)

// ErrNoConvergence is returned when Repair cannot make a path valid.  It
// indicates a bug in the caller.
var ErrNoConvergence = errors.New("path repair did not converge")

const maxTries = 4

// Repair makes *p a valid path into forest and returns the mode of the
// cursor there.
//
// An empty forest gives [0] in Structural(0).  An empty path is taken as
// [0] and negative indices as 0.  A top level index past the last node is
// clamped to the last node.  Deeper paths are shortened until they
// classify as Valid or InAtom.
func Repair(p *ipath.Path, forest []*ir.Node) (Mode, error) {
	if debug.Repair() {
		debug.Logf("repair %s in %v\n", *p, forest)
	}
	if len(forest) == 0 {
		*p = ipath.Path{0}
		return Mode{Kind: Structural}, nil
	}
	path := *p
	if len(path) == 0 {
		path = ipath.Path{0}
	}
	for i, v := range path {
		if v < 0 {
			path[i] = 0
		}
	}
	if path[0] >= len(forest) {
		path = path[:1]
		path[0] = len(forest) - 1
	}
	*p = path
	if len(path) == 1 {
		return Mode{Kind: Structural, Bound: len(forest)}, nil
	}
	for try := 0; try < maxTries; try++ {
		c := Classify(forest[path[0]], path[1:])
		if debug.Repair() {
			debug.Logf("repair try %d: %s -> %s\n", try, path, c)
		}
		switch c.Reason {
		case Valid:
			*p = path
			return Mode{Kind: Structural, Bound: c.N}, nil
		case InAtom:
			*p = path
			return Mode{Kind: Edit, Bound: c.N}, nil
		case OutOfRange:
			path[len(path)-1] -= c.N
		case DoesNotExist:
			path = path[:len(path)-c.N]
		}
	}
	*p = path
	return Mode{}, fmt.Errorf("%w: %s after %d tries", ErrNoConvergence, path, maxTries)
}

// Resolve returns the mode Repair would give p without changing p.
func Resolve(p ipath.Path, forest []*ir.Node) (Mode, error) {
	q := p.Clone()
	return Repair(&q, forest)
}
