package parse

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/signadot/sexp-edit/format"
	"github.com/signadot/sexp-edit/ir"
	"github.com/signadot/sexp-edit/token"
)

// Parse parses d into a forest.  An empty document (or one with only
// comments) gives an empty, non-nil forest.
func Parse(d []byte, opts ...ParseOption) ([]*ir.Node, error) {
	pOpts := &parseOpts{format: format.SExpFormat}
	for _, f := range opts {
		f(pOpts)
	}
	switch pOpts.format {
	case format.JSONFormat:
		return parseIR(d)
	case format.YAMLFormat:
		j, err := yaml.YAMLToJSON(d)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		return parseIR(j)
	}
	return parseSExp(d, pOpts)
}

// ParseString is Parse on a string.
func ParseString(s string, opts ...ParseOption) ([]*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

func parseSExp(d []byte, opts *parseOpts) ([]*ir.Node, error) {
	toks, err := token.Tokenize(nil, d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	toks = dropComments(toks)
	if err := token.Balance(toks); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	res := []*ir.Node{}
	i := 0
	for i < len(toks) {
		y, err := parseNode(toks, &i, opts)
		if err != nil {
			return nil, err
		}
		res = append(res, y)
	}
	return res, nil
}

func dropComments(toks []token.Token) []token.Token {
	j := 0
	for i := range toks {
		if toks[i].Type == token.TComment {
			continue
		}
		toks[j] = toks[i]
		j++
	}
	return toks[:j]
}

// parseNode parses the node starting at toks[*pi].  toks is balanced.
func parseNode(toks []token.Token, pi *int, opts *parseOpts) (*ir.Node, error) {
	tok := &toks[*pi]
	*pi++
	var res *ir.Node
	switch tok.Type {
	case token.TLParen:
		res = ir.List()
		for toks[*pi].Type != token.TRParen {
			child, err := parseNode(toks, pi, opts)
			if err != nil {
				return nil, err
			}
			res.Values = append(res.Values, child)
		}
		*pi++
	case token.TIdent:
		res = ir.FromIdent(tok.String())
	case token.TNumber:
		res = ir.FromNumber(tok.String())
	case token.TString:
		v, err := token.Unescape(tok.String())
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, token.NewTokenizeErr(err, tok.Pos))
		}
		res = ir.FromString(v)
	default:
		return nil, fmt.Errorf("%w: %w", ErrParse, token.UnexpectedErr(string(tok.Bytes), tok.Pos))
	}
	if opts.positions != nil {
		opts.positions[res] = tok.Pos
	}
	return res, nil
}

func parseIR(d []byte) ([]*ir.Node, error) {
	d = bytes.TrimSpace(d)
	if len(d) == 0 || bytes.Equal(d, []byte("null")) {
		return []*ir.Node{}, nil
	}
	if d[0] == '{' {
		y := &ir.Node{}
		if err := json.Unmarshal(d, y); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrIRForm, err)
		}
		return []*ir.Node{y}, nil
	}
	res := []*ir.Node{}
	if err := json.Unmarshal(d, &res); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIRForm, err)
	}
	for i, y := range res {
		if y == nil {
			return nil, fmt.Errorf("%w: null node at index %d", ErrIRForm, i)
		}
	}
	return res, nil
}
