package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if a.Type != b.Type {
		return cmp.Compare(rank(a.Type), rank(b.Type))
	}
	switch a.Type {
	case ListType:
		return CompareForests(a.Values, b.Values)
	default:
		return strings.Compare(a.Text, b.Text)
	}
}

// rank returns the sorting rank of a type.
// Order: Number < Ident < String < List
func rank(t Type) int {
	switch t {
	case NumberType:
		return 0
	case IdentType:
		return 1
	case StringType:
		return 2
	case ListType:
		return 3
	}
	return 100
}

// CompareForests compares element by element; a proper prefix sorts first.
func CompareForests(a, b []*Node) int {
	n := min(len(a), len(b))
	for i := range n {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

// Equal reports whether a and b have the same kinds and text throughout.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

func EqualForests(a, b []*Node) bool {
	return CompareForests(a, b) == 0
}
