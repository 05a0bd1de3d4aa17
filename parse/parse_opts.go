package parse

import (
	"github.com/signadot/sexp-edit/format"
	"github.com/signadot/sexp-edit/ir"
	"github.com/signadot/sexp-edit/token"
)

type parseOpts struct {
	format    format.Format
	positions map[*ir.Node]*token.Pos
}

type ParseOption func(*parseOpts)

func ParseSExp() ParseOption {
	return ParseFormat(format.SExpFormat)
}
func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}
func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}

// ParsePositions records the position of the first token of each parsed
// node in m.  Only s-expression input records positions.
func ParsePositions(m map[*ir.Node]*token.Pos) ParseOption {
	return func(o *parseOpts) {
		o.positions = m
	}
}
