package term

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/signadot/sexp-edit/debug"
	"github.com/signadot/sexp-edit/editor"
	"github.com/signadot/sexp-edit/render"
)

// View is the scroll position of the document on the screen.
type View struct {
	Top, Left int
}

// Scroll moves the view so that the grid's cursor is inside a w by h
// window.
func (v *View) Scroll(g *render.Grid, w, h int) {
	x, y, ok := g.Cursor()
	if !ok {
		return
	}
	v.Top = scrollTo(v.Top, h, y)
	v.Left = scrollTo(v.Left, w, x)
}

// scrollTo returns the start of a window of size n, starting at from if
// possible, that contains pos.
func scrollTo(from, n, pos int) int {
	if n <= 0 {
		return pos
	}
	if pos < from {
		return pos
	}
	if pos >= from+n {
		return pos - n + 1
	}
	return from
}

// Draw paints the session: the document above and the status line on the
// last row.
func (v *View) Draw(screen tcell.Screen, s *editor.Session) {
	w, h := screen.Size()
	if w <= 0 || h <= 0 {
		return
	}
	screen.Clear()
	g := s.Paint()
	viewH := h - 1
	v.Scroll(g, w, viewH)
	for y := 0; y < viewH; y++ {
		row := g.Row(v.Top + y)
		for x := 0; x < w && v.Left+x < len(row); x++ {
			c := row[v.Left+x]
			screen.SetContent(x, y, c.Rune, nil, Style(c.Style))
		}
	}
	v.status(screen, s, w, h-1)
	screen.Show()
	if debug.Paint() {
		debug.Logf("draw %dx%d top %d left %d\n", w, h, v.Top, v.Left)
	}
}

func (v *View) status(screen tcell.Screen, s *editor.Session, w, y int) {
	p := s.Palette()
	st := tcell.StyleDefault.Foreground(color(p.Ident)).Background(color(p.StatusLine))
	for x := 0; x < w; x++ {
		screen.SetContent(x, y, ' ', nil, st)
	}
	text := s.Status()
	x := 0
	for _, r := range text {
		if x >= w {
			break
		}
		screen.SetContent(x, y, r, nil, st)
		x += max(runewidth.RuneWidth(r), 1)
	}
	if _, ok := s.CommandLine(); ok {
		screen.ShowCursor(min(x, w-1), y)
		return
	}
	screen.HideCursor()
}
