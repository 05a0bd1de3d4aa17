package render

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/sexp-edit/ir"
	"github.com/signadot/sexp-edit/ir/ipath"
	"github.com/signadot/sexp-edit/theme"
)

type xy struct{ X, Y int }

func cursorCells(g *Grid) []xy {
	var res []xy
	for y := 0; y < g.Height(); y++ {
		for x, c := range g.Row(y) {
			if c.Style.Cursor {
				res = append(res, xy{x, y})
			}
		}
	}
	return res
}

func id(s string) *ir.Node { return ir.FromIdent(s) }

func TestPaintLayout(t *testing.T) {
	tests := []struct {
		name   string
		forest []*ir.Node
		want   string
	}{
		{
			name:   "empty list",
			forest: []*ir.Node{ir.List()},
			want:   "()",
		},
		{
			name:   "one child",
			forest: []*ir.Node{ir.List(id("a"))},
			want:   "(a)",
		},
		{
			name:   "pair",
			forest: []*ir.Node{ir.List(id("a"), id("b"))},
			want:   "(a b)",
		},
		{
			name:   "pair with list",
			forest: []*ir.Node{ir.List(id("a"), ir.List(id("b"), id("c")))},
			want:   "(a\n    (b c))",
		},
		{
			name:   "three children",
			forest: []*ir.Node{ir.List(id("a"), id("b"), ir.FromNumber("1"))},
			want:   "(a\n    b\n    1)",
		},
		{
			name: "nested",
			forest: []*ir.Node{
				ir.List(id("define"), ir.List(id("f"), id("x")), ir.List(id("g"), id("x"), id("y"))),
			},
			want: "(define\n    (f x)\n    (g\n        x\n        y))",
		},
		{
			name:   "strings",
			forest: []*ir.Node{ir.List(id("p"), ir.FromString("hi there"))},
			want:   `(p "hi there")`,
		},
		{
			name:   "placeholders",
			forest: []*ir.Node{ir.List(id(""), ir.FromNumber(""))},
			want:   "((I) (N))",
		},
		{
			name:   "several top level",
			forest: []*ir.Node{id("a"), ir.List(id("b"), id("c")), ir.FromNumber("3")},
			want:   "a\n(b c)\n3",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Paint(tt.forest, theme.DefaultPalette(), nil)
			if diff := cmp.Diff(tt.want, g.String()); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
			if _, _, ok := g.Cursor(); ok {
				t.Errorf("no highlight but got a cursor")
			}
		})
	}
}

func TestPaintHighlight(t *testing.T) {
	tests := []struct {
		name   string
		forest []*ir.Node
		path   string
		want   string
		cursor []xy
	}{
		{
			name:   "empty list slot",
			forest: []*ir.Node{ir.List()},
			path:   "[0][0]",
			want:   "( )",
			cursor: []xy{{1, 0}},
		},
		{
			name:   "atom char",
			forest: []*ir.Node{id("ab")},
			path:   "[0][1]",
			want:   "ab",
			cursor: []xy{{1, 0}},
		},
		{
			name:   "atom end",
			forest: []*ir.Node{id("ab")},
			path:   "[0][2]",
			want:   "ab",
			cursor: []xy{{2, 0}},
		},
		{
			name:   "append slot",
			forest: []*ir.Node{ir.List(id("a"), id("b"))},
			path:   "[0][2]",
			want:   "(a b  )",
			cursor: []xy{{5, 0}},
		},
		{
			name:   "whole list",
			forest: []*ir.Node{ir.List(id("a"), id("b"))},
			path:   "[0]",
			want:   "(a b)",
			cursor: []xy{{0, 0}, {4, 0}},
		},
		{
			name:   "whole atom",
			forest: []*ir.Node{ir.List(id("a"), id("bc"))},
			path:   "[0][1]",
			want:   "(a bc)",
			cursor: []xy{{3, 0}, {4, 0}},
		},
		{
			name:   "string char skips quote",
			forest: []*ir.Node{ir.FromString("hi")},
			path:   "[0][0]",
			want:   `"hi"`,
			cursor: []xy{{1, 0}},
		},
		{
			name:   "empty ident placeholder",
			forest: []*ir.Node{id("")},
			path:   "[0][0]",
			want:   "(I)",
			cursor: []xy{{3, 0}},
		},
		{
			name:   "empty number in list",
			forest: []*ir.Node{ir.List(id("f"), ir.FromNumber(""))},
			path:   "[0][1][0]",
			want:   "(f (N) )",
			cursor: []xy{{6, 0}},
		},
		{
			name:   "deep child",
			forest: []*ir.Node{ir.List(id("a"), ir.List(id("b"), id("c")))},
			path:   "[0][1][1]",
			want:   "(a\n    (b c))",
			cursor: []xy{{7, 1}},
		},
		{
			name:   "unrepaired path",
			forest: []*ir.Node{ir.List(id("ab"))},
			path:   "[0][0][1][2]",
			want:   "(ab)",
			cursor: []xy{{1, 0}, {2, 0}},
		},
		{
			name:   "top level append",
			forest: []*ir.Node{id("a"), id("b")},
			path:   "[2]",
			want:   "a\nb\n",
			cursor: []xy{{0, 2}},
		},
		{
			name:   "other nodes untouched",
			forest: []*ir.Node{id("a"), id("b")},
			path:   "[1][0]",
			want:   "a\nb",
			cursor: []xy{{0, 1}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Paint(tt.forest, theme.DefaultPalette(), ipath.MustParse(tt.path))
			if diff := cmp.Diff(tt.want, g.String()); diff != "" {
				t.Errorf("text (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.cursor, cursorCells(g)); diff != "" {
				t.Errorf("cursor (-want +got):\n%s", diff)
			}
			x, y, ok := g.Cursor()
			if !ok || x != tt.cursor[0].X || y != tt.cursor[0].Y {
				t.Errorf("Cursor() = %d, %d, %t", x, y, ok)
			}
		})
	}
}

func TestPaintColors(t *testing.T) {
	p := theme.DefaultPalette()
	g := Paint([]*ir.Node{ir.List(id("a"), ir.List(ir.FromNumber("1")))}, p, ipath.Path{0, 0})
	// "(a" then "    (1))"
	tests := []struct {
		name string
		x, y int
		want Style
	}{
		{"outer paren", 0, 0, Style{Fg: p.Level(0), Bg: theme.Default}},
		{"selected ident", 1, 0, Style{Fg: p.Cursor, Bg: p.Ident, Cursor: true}},
		{"inner paren", 4, 1, Style{Fg: p.Level(1), Bg: theme.Default}},
		{"number", 5, 1, Style{Fg: p.Number, Bg: theme.Default}},
		{"inner close", 6, 1, Style{Fg: p.Level(1), Bg: theme.Default}},
		{"outer close", 7, 1, Style{Fg: p.Level(0), Bg: theme.Default}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, g.At(tt.x, tt.y).Style); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestPaintInlineListColors(t *testing.T) {
	p := theme.DefaultPalette()
	// "((g x)" then "    y" then "    (z w))"
	g := Paint([]*ir.Node{ir.List(ir.List(id("g"), id("x")), id("y"), ir.List(id("z"), id("w")))}, p, nil)
	if diff := cmp.Diff("((g x)\n    y\n    (z w))", g.String()); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	tests := []struct {
		name string
		x, y int
		want theme.Color
	}{
		{"outer open", 0, 0, p.Level(0)},
		{"inline first child open", 1, 0, p.Level(0)},
		{"inline first child close", 5, 0, p.Level(0)},
		{"indented child open", 4, 2, p.Level(1)},
		{"indented child close", 8, 2, p.Level(1)},
		{"outer close", 9, 2, p.Level(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.At(tt.x, tt.y).Style.Fg; got != tt.want {
				t.Errorf("got %s want %s", got, tt.want)
			}
		})
	}
}

func TestGrid(t *testing.T) {
	g := NewGrid()
	if n := g.SetString(2, 1, "héllo", DefaultStyle); n != 7 {
		t.Errorf("SetString returned %d", n)
	}
	if g.Height() != 2 || g.Width() != 7 {
		t.Errorf("size %dx%d", g.Width(), g.Height())
	}
	if c := g.At(3, 1); c.Rune != 'é' {
		t.Errorf("At(3, 1) = %q", c.Rune)
	}
	if c := g.At(40, 40); c.Rune != ' ' {
		t.Errorf("out of range cell %q", c.Rune)
	}
	g.Set(-1, 0, 'x', DefaultStyle)
	if diff := cmp.Diff("\n  héllo", g.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
