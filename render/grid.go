package render

import (
	"strings"

	"github.com/signadot/sexp-edit/theme"
)

type Style struct {
	Fg, Bg theme.Color
	// Cursor marks cells painted as (part of) the cursor.
	Cursor bool
}

// DefaultStyle uses the terminal's colours.
var DefaultStyle = Style{Fg: theme.Default, Bg: theme.Default}

type Cell struct {
	Rune  rune
	Style Style
}

var blankCell = Cell{Rune: ' ', Style: DefaultStyle}

// Grid is a growable two dimensional array of cells.  Cells that were
// never written read as blanks in the default style.
type Grid struct {
	rows [][]Cell

	cursorSet        bool
	cursorX, cursorY int
}

func NewGrid() *Grid {
	return &Grid{}
}

func (g *Grid) grow(x, y int) {
	for len(g.rows) <= y {
		g.rows = append(g.rows, nil)
	}
	row := g.rows[y]
	for len(row) <= x {
		row = append(row, blankCell)
	}
	g.rows[y] = row
}

// Set writes one cell.
func (g *Grid) Set(x, y int, r rune, st Style) {
	if x < 0 || y < 0 {
		return
	}
	g.grow(x, y)
	g.rows[y][x] = Cell{Rune: r, Style: st}
	if st.Cursor && !g.cursorSet {
		g.cursorSet = true
		g.cursorX, g.cursorY = x, y
	}
}

// SetString writes s rune by rune starting at column x of row y and
// returns the column just after the last cell written.
func (g *Grid) SetString(x, y int, s string, st Style) int {
	for _, r := range s {
		g.Set(x, y, r, st)
		x++
	}
	return x
}

func (g *Grid) At(x, y int) Cell {
	if y < 0 || y >= len(g.rows) {
		return blankCell
	}
	row := g.rows[y]
	if x < 0 || x >= len(row) {
		return blankCell
	}
	return row[x]
}

// Row returns the cells of row y.  The result must not be modified.
func (g *Grid) Row(y int) []Cell {
	if y < 0 || y >= len(g.rows) {
		return nil
	}
	return g.rows[y]
}

func (g *Grid) Height() int { return len(g.rows) }

// Width is the length of the longest row.
func (g *Grid) Width() int {
	w := 0
	for _, row := range g.rows {
		w = max(w, len(row))
	}
	return w
}

// Cursor returns the position of the first cursor cell, if any.
func (g *Grid) Cursor() (x, y int, ok bool) {
	return g.cursorX, g.cursorY, g.cursorSet
}

// Line returns the text of row y with trailing blanks removed.
func (g *Grid) Line(y int) string {
	row := g.Row(y)
	rs := make([]rune, len(row))
	for i, c := range row {
		rs[i] = c.Rune
	}
	return strings.TrimRight(string(rs), " ")
}

// String returns the plain text of the grid, one line per row.
func (g *Grid) String() string {
	lines := make([]string, len(g.rows))
	for y := range g.rows {
		lines[y] = g.Line(y)
	}
	return strings.Join(lines, "\n")
}
