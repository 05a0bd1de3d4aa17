package ir

import (
	"unicode/utf8"

	"github.com/signadot/sexp-edit/token"
)

// Node is one value of a document: a list of children or a text atom.
//
// For ListType, Values holds the children and Text is empty.  For the
// atom types Text holds the raw text and Values is nil.  A StringType
// node's Text is already escaped; see FromString.
type Node struct {
	Type   Type
	Values []*Node
	Text   string
}

func FromIdent(v string) *Node {
	return &Node{Type: IdentType, Text: v}
}

func FromNumber(v string) *Node {
	return &Node{Type: NumberType, Text: v}
}

// FromString creates a string atom from unescaped text, escaping control
// characters, backslashes and double quotes.
func FromString(v string) *Node {
	return FromEscapedString(token.Escape(v))
}

// FromEscapedString creates a string atom whose text is already escaped.
func FromEscapedString(v string) *Node {
	return &Node{Type: StringType, Text: v}
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type:   ListType,
		Values: make([]*Node, 0, len(ySlice)),
	}
	res.Values = append(res.Values, ySlice...)
	return res
}

// List is FromSlice for literal children.
func List(vs ...*Node) *Node {
	return FromSlice(vs)
}

// Len is the number of children of a list and the number of characters
// of an atom.
func (y *Node) Len() int {
	if y.Type == ListType {
		return len(y.Values)
	}
	return utf8.RuneCountInString(y.Text)
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.Text = y.Text
	dst.Values = nil
	if y.Type == ListType {
		dst.Values = make([]*Node, len(y.Values))
		for i, yv := range y.Values {
			dst.Values[i] = yv.Clone()
		}
	}
	return dst
}

// CloneForest deep copies a sequence of nodes.
func CloneForest(forest []*Node) []*Node {
	res := make([]*Node, len(forest))
	for i, y := range forest {
		res[i] = y.Clone()
	}
	return res
}

// Unescaped returns the text of a string atom with escapes resolved.  For
// other atoms it returns the raw text.
func (y *Node) Unescaped() string {
	if y.Type != StringType {
		return y.Text
	}
	s, err := token.Unescape(y.Text)
	if err != nil {
		return y.Text
	}
	return s
}
