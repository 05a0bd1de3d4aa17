package cursor

import (
	"fmt"

	"github.com/signadot/sexp-edit/ir"
	"github.com/signadot/sexp-edit/ir/ipath"
)

type Reason int

const (
	// Valid: the path reaches a list slot or a whole node.
	Valid Reason = iota
	// InAtom: the path ends at a character slot of an atom.
	InAtom
	// OutOfRange: the last index is N past the end.
	OutOfRange
	// DoesNotExist: the last N indices cannot be reached.
	DoesNotExist
)

func (r Reason) String() string {
	switch r {
	case Valid:
		return "Valid"
	case InAtom:
		return "InAtom"
	case OutOfRange:
		return "OutOfRange"
	case DoesNotExist:
		return "DoesNotExist"
	}
	return "<unknown reason>"
}

// Check is the result of classifying a path.  For Valid and InAtom, N is
// the bound at the path's level.
type Check struct {
	Reason Reason
	N      int
}

func (c Check) String() string {
	return fmt.Sprintf("%s(%d)", c.Reason, c.N)
}

// Classify classifies the remaining path p against y.
func Classify(y *ir.Node, p ipath.Path) Check {
	for {
		if len(p) == 0 {
			return Check{Reason: Valid, N: y.Len()}
		}
		switch y.Type {
		case ir.ListType:
			m := len(y.Values)
			if len(p) == 1 {
				if p[0] <= m {
					return Check{Reason: Valid, N: m}
				}
				return Check{Reason: OutOfRange, N: p[0] - m}
			}
			if p[0] >= m {
				return Check{Reason: DoesNotExist, N: len(p) - 1}
			}
			y = y.Values[p[0]]
			p = p[1:]
		case ir.IdentType, ir.NumberType, ir.StringType:
			if len(p) > 1 {
				return Check{Reason: DoesNotExist, N: len(p) - 1}
			}
			m := y.Len()
			if p[0] <= m {
				return Check{Reason: InAtom, N: m}
			}
			return Check{Reason: OutOfRange, N: p[0] - m}
		default:
			return Check{Reason: DoesNotExist, N: len(p)}
		}
	}
}
