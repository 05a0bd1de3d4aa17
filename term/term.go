// Package term runs an editor session on a terminal.
package term

import (
	"github.com/gdamore/tcell/v2"
	"github.com/signadot/sexp-edit/editor"
	"github.com/signadot/sexp-edit/render"
	"github.com/signadot/sexp-edit/theme"
)

// Main runs s on the terminal, restoring the terminal when the session
// ends.
func Main(s *editor.Session) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	return Run(screen, s)
}

// Run draws s on an initialised screen and feeds it key events until the
// session quits, the screen is closed or the session fails.
func Run(screen tcell.Screen, s *editor.Session) error {
	v := &View{}
	for !s.Quit() {
		v.Draw(screen, s)
		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			k, ok := MapKey(ev)
			if !ok {
				continue
			}
			if err := s.Handle(k); err != nil {
				return err
			}
		}
	}
	return nil
}

// MapKey translates a terminal key event.  Ctrl-C acts as Esc.
func MapKey(ev *tcell.EventKey) (editor.Key, bool) {
	switch ev.Key() {
	case tcell.KeyRune:
		return editor.Rune(ev.Rune()), true
	case tcell.KeyEnter:
		return editor.Key{Code: editor.KeyEnter}, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return editor.Key{Code: editor.KeyEsc}, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return editor.Key{Code: editor.KeyBackspace}, true
	case tcell.KeyDelete:
		return editor.Key{Code: editor.KeyDelete}, true
	case tcell.KeyLeft:
		return editor.Key{Code: editor.KeyLeft}, true
	case tcell.KeyRight:
		return editor.Key{Code: editor.KeyRight}, true
	case tcell.KeyUp:
		return editor.Key{Code: editor.KeyUp}, true
	case tcell.KeyDown:
		return editor.Key{Code: editor.KeyDown}, true
	}
	return editor.Key{}, false
}

// Style converts a cell style.  A cursor cell without colours is shown in
// reverse video.
func Style(st render.Style) tcell.Style {
	res := tcell.StyleDefault
	if !st.Fg.IsDefault() {
		res = res.Foreground(color(st.Fg))
	}
	if !st.Bg.IsDefault() {
		res = res.Background(color(st.Bg))
	}
	if st.Cursor && st.Fg.IsDefault() && st.Bg.IsDefault() {
		res = res.Reverse(true)
	}
	return res
}

func color(c theme.Color) tcell.Color {
	if c.IsDefault() {
		return tcell.ColorDefault
	}
	r, g, b := c.RGB()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
