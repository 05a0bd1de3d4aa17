package render

import (
	"github.com/signadot/sexp-edit/ir"
	"github.com/signadot/sexp-edit/ir/ipath"
	"github.com/signadot/sexp-edit/theme"
)

// IndentWidth is the number of columns per indentation level.
const IndentWidth = 4

const (
	identPlaceholder  = "(I)"
	numberPlaceholder = "(N)"
)

// Paint lays out forest and paints it into a new grid, one top level node
// after the other.  If highlight is non-empty the position it addresses is
// painted as the cursor.  The forest is not modified.
func Paint(forest []*ir.Node, p *theme.Palette, highlight ipath.Path) *Grid {
	pt := &painter{g: NewGrid(), p: p}
	for i, y := range forest {
		rest, on := follow(highlight, len(highlight) > 0, i)
		pt.node(y, 0, 0, rest, on)
		pt.line++
	}
	if len(highlight) == 1 && highlight[0] == len(forest) {
		pt.blank(0)
	}
	return pt.g
}

type painter struct {
	g    *Grid
	p    *theme.Palette
	line int
}

// follow returns the highlight for child i of a node whose remaining
// highlight is rest.
func follow(rest ipath.Path, on bool, i int) (ipath.Path, bool) {
	if !on || len(rest) == 0 || rest[0] != i {
		return nil, false
	}
	return rest[1:], true
}

func (pt *painter) normal(c theme.Color) Style {
	return Style{Fg: c, Bg: theme.Default}
}

func (pt *painter) inverted(c theme.Color) Style {
	return Style{Fg: pt.p.Cursor, Bg: c, Cursor: true}
}

// blank paints an inverted blank cell at col and returns the next column.
func (pt *painter) blank(col int) int {
	return pt.g.SetString(col, pt.line, " ", pt.inverted(pt.p.Ident))
}

// node paints y starting at column col of the current line.  indent is
// the indentation level continuation lines are relative to; it also picks
// the colour of list delimiters, so a list painted inline shares the level
// of the line it starts on.  rest is the remaining highlight path,
// meaningful only if on is set.  It returns the column just after the last
// cell painted.
func (pt *painter) node(y *ir.Node, col, indent int, rest ipath.Path, on bool) int {
	switch y.Type {
	case ir.ListType:
		return pt.list(y, col, indent, rest, on)
	case ir.IdentType:
		return pt.atom(y, col, pt.p.Ident, "", identPlaceholder, rest, on)
	case ir.NumberType:
		return pt.atom(y, col, pt.p.Number, "", numberPlaceholder, rest, on)
	case ir.StringType:
		return pt.atom(y, col, pt.p.String, `"`, "", rest, on)
	}
	return col
}

func (pt *painter) atom(y *ir.Node, col int, c theme.Color, quote, placeholder string, rest ipath.Path, on bool) int {
	normal, inv := pt.normal(c), pt.inverted(c)
	text := y.Text
	if text == "" && placeholder != "" {
		text = placeholder
	}
	whole := func(st Style) int {
		col = pt.g.SetString(col, pt.line, quote, st)
		col = pt.g.SetString(col, pt.line, text, st)
		return pt.g.SetString(col, pt.line, quote, st)
	}
	if !on {
		return whole(normal)
	}
	if len(rest) != 1 {
		// whole atom selected, or a path that still points below an atom
		return whole(inv)
	}
	runes := []rune(y.Text)
	i := rest[0]
	switch {
	case i == len(runes):
		return pt.blank(whole(normal))
	case i < 0 || i > len(runes):
		return whole(inv)
	}
	col = pt.g.SetString(col, pt.line, quote, normal)
	col = pt.g.SetString(col, pt.line, string(runes[:i]), normal)
	col = pt.g.SetString(col, pt.line, string(runes[i]), inv)
	col = pt.g.SetString(col, pt.line, string(runes[i+1:]), normal)
	return pt.g.SetString(col, pt.line, quote, normal)
}

func (pt *painter) list(y *ir.Node, col, indent int, rest ipath.Path, on bool) int {
	color := pt.p.Level(indent)
	paren := pt.normal(color)
	if on && len(rest) == 0 {
		paren = pt.inverted(color)
	}
	vs := y.Values
	appendSlot := on && len(rest) == 1 && rest[0] == len(vs)
	if len(vs) == 0 {
		col = pt.g.SetString(col, pt.line, "(", paren)
		if appendSlot {
			col = pt.blank(col)
		}
		return pt.g.SetString(col, pt.line, ")", paren)
	}
	col = pt.g.SetString(col, pt.line, "(", paren)
	r, o := follow(rest, on, 0)
	col = pt.node(vs[0], col, indent, r, o)
	if OneLine(y) {
		r, o = follow(rest, on, 1)
		col = pt.node(vs[1], col+1, indent, r, o)
	} else {
		for i := 1; i < len(vs); i++ {
			pt.line++
			r, o = follow(rest, on, i)
			col = pt.node(vs[i], (indent+1)*IndentWidth, indent+1, r, o)
		}
	}
	if appendSlot {
		col = pt.blank(col + 1)
	}
	return pt.g.SetString(col, pt.line, ")", paren)
}

// OneLine reports whether the list y is laid out on a single line: it
// has exactly two children and the second is an atom.
func OneLine(y *ir.Node) bool {
	return y.Type == ir.ListType && len(y.Values) == 2 && y.Values[1].Type != ir.ListType
}
