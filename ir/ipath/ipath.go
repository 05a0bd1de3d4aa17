package ipath

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

var ErrBadPath = errors.New("bad path")

// Path is an index path.  The zero value (nil) is the empty path.
type Path []int

// String returns the text form of p.
// Example:
//
//	Path{0, 2, 1} → "[0][2][1]"
//	Path{} → ""
func (p Path) String() string {
	buf := bytes.NewBuffer(nil)
	for _, i := range p {
		fmt.Fprintf(buf, "[%d]", i)
	}
	return buf.String()
}

// Parse parses the text form of an index path.
//
// Syntax:
//   - "[0][2]" → Path{0, 2}
//   - "0.2" → Path{0, 2} (dotted shorthand)
//   - "" → nil
//
// Indices must be non-negative decimal integers.
func Parse(s string) (Path, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if s[0] != '[' {
		return parseDotted(s)
	}
	var res Path
	i := 0
	for i < len(s) {
		if s[i] != '[' {
			return nil, fmt.Errorf("%w: expected '[' at offset %d in %q", ErrBadPath, i, s)
		}
		j := strings.IndexByte(s[i:], ']')
		if j == -1 {
			return nil, fmt.Errorf("%w: unterminated index at offset %d in %q", ErrBadPath, i, s)
		}
		n, err := parseIndex(s[i+1 : i+j])
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrBadPath, s, err)
		}
		res = append(res, n)
		i += j + 1
	}
	return res, nil
}

func parseDotted(s string) (Path, error) {
	parts := strings.Split(s, ".")
	res := make(Path, len(parts))
	for i, part := range parts {
		n, err := parseIndex(part)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrBadPath, s, err)
		}
		res[i] = n
	}
	return res, nil
}

func parseIndex(v string) (int, error) {
	if v == "" {
		return 0, errors.New("empty index")
	}
	if v[0] == '+' || v[0] == '-' {
		return 0, fmt.Errorf("signed index %q", v)
	}
	return strconv.Atoi(v)
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Path {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	return slices.Clone(p)
}

// Parent returns p without its last index.  The parent of a path of
// length one or less is the empty path.
func (p Path) Parent() Path {
	if len(p) <= 1 {
		return Path{}
	}
	return slices.Clone(p[:len(p)-1])
}

// Append returns a new path with i added at the end.
func (p Path) Append(i int) Path {
	res := make(Path, len(p), len(p)+1)
	copy(res, p)
	return append(res, i)
}

// Last returns the last index, or -1 for the empty path.
func (p Path) Last() int {
	if len(p) == 0 {
		return -1
	}
	return p[len(p)-1]
}

// WithLast returns a copy of p with its last index replaced by i.
func (p Path) WithLast(i int) Path {
	if len(p) == 0 {
		return Path{i}
	}
	res := slices.Clone(p)
	res[len(res)-1] = i
	return res
}

// Depth is the number of indices in p.
func (p Path) Depth() int { return len(p) }

// Compare orders paths in document order: element by element, with a
// proper prefix sorting first.
func (p Path) Compare(other Path) int {
	n := min(len(p), len(other))
	for i := range n {
		if c := cmp.Compare(p[i], other[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(p), len(other))
}

func (p Path) Equal(other Path) bool {
	return p.Compare(other) == 0
}

// HasPrefix reports whether prefix is an ancestor of, or equal to, p.
func (p Path) HasPrefix(prefix Path) bool {
	if len(prefix) > len(p) {
		return false
	}
	return Path(p[:len(prefix)]).Equal(prefix)
}
