package token

import (
	"unicode"
	"unicode/utf8"
)

// Tokenize appends the tokens of src to dst.
//
// Lists are delimited by '(' and ')'.  Strings are double quoted with
// backslash escapes.  A ';' starts a comment running to the end of the
// line.  Any other run of non-space, non-delimiter characters is an atom,
// typed TNumber if it reads as a number and TIdent otherwise.
func Tokenize(dst []Token, src []byte) ([]Token, error) {
	posDoc := NewPosDoc(src)
	n := len(src)
	i := 0
	for i < n {
		c := src[i]
		switch {
		case c == '(':
			dst = append(dst, Token{Type: TLParen, Pos: posDoc.Pos(i), Bytes: src[i : i+1]})
			i++
		case c == ')':
			dst = append(dst, Token{Type: TRParen, Pos: posDoc.Pos(i), Bytes: src[i : i+1]})
			i++
		case c == ';':
			j := i
			for j < n && src[j] != '\n' {
				j++
			}
			dst = append(dst, Token{Type: TComment, Pos: posDoc.Pos(i), Bytes: src[i:j]})
			i = j
		case c == '"':
			j, err := quotedEnd(src, i)
			if err != nil {
				return nil, NewTokenizeErr(err, posDoc.Pos(i))
			}
			dst = append(dst, Token{Type: TString, Pos: posDoc.Pos(i), Bytes: src[i:j]})
			i = j
		case c < utf8.RuneSelf && isSpace(c):
			i++
		default:
			j, err := atomEnd(src, i)
			if err != nil {
				return nil, NewTokenizeErr(err, posDoc.Pos(j))
			}
			tt := TIdent
			if IsNumber(string(src[i:j])) {
				tt = TNumber
			}
			dst = append(dst, Token{Type: tt, Pos: posDoc.Pos(i), Bytes: src[i:j]})
			i = j
		}
	}
	return dst, nil
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

func isDelim(c byte) bool {
	switch c {
	case '(', ')', '"', ';':
		return true
	}
	return isSpace(c)
}

// IsAtomRune reports whether r can be part of an identifier or number
// atom, that is whether it neither ends an atom nor starts another token.
func IsAtomRune(r rune) bool {
	switch r {
	case '(', ')', '"', ';':
		return false
	}
	return !unicode.IsSpace(r)
}

// atomEnd returns the offset just past the atom starting at i.
func atomEnd(src []byte, i int) (int, error) {
	for i < len(src) {
		c := src[i]
		if c < utf8.RuneSelf {
			if isDelim(c) {
				return i, nil
			}
			i++
			continue
		}
		r, sz := utf8.DecodeRune(src[i:])
		if r == utf8.RuneError && sz <= 1 {
			return i, ErrBadUTF8
		}
		if unicode.IsSpace(r) {
			return i, nil
		}
		i += sz
	}
	return i, nil
}

// quotedEnd returns the offset just past the closing quote of the string
// starting at i.
func quotedEnd(src []byte, i int) (int, error) {
	j := i + 1
	for j < len(src) {
		c := src[j]
		switch {
		case c == '\\':
			if j+1 >= len(src) {
				return 0, ErrUnterminated
			}
			j += 2
		case c == '"':
			return j + 1, nil
		case c < utf8.RuneSelf:
			j++
		default:
			r, sz := utf8.DecodeRune(src[j:])
			if r == utf8.RuneError && sz <= 1 {
				return 0, ErrBadUTF8
			}
			j += sz
		}
	}
	return 0, ErrUnterminated
}

// Balance checks that every TLParen in toks is closed by a TRParen.
func Balance(toks []Token) error {
	var stack []*Token
	for i := range toks {
		t := &toks[i]
		switch t.Type {
		case TLParen:
			stack = append(stack, t)
		case TRParen:
			if len(stack) == 0 {
				return &ErrImbalancedStructure{Close: t}
			}
			stack = stack[:len(stack)-1]
		}
	}
	if len(stack) != 0 {
		return &ErrImbalancedStructure{Open: stack[len(stack)-1]}
	}
	return nil
}
