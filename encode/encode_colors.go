package encode

import (
	"github.com/fatih/color"
	"github.com/signadot/sexp-edit/render"
	"github.com/signadot/sexp-edit/theme"
)

// Colors turns painted cell styles into ANSI escapes.  Colours are always
// written: whether to use them is decided by the caller.
type Colors struct {
	Default func(string) string
	cache   map[render.Style]*color.Color
}

func NewColors() *Colors {
	return &Colors{
		Default: colorDefault,
		cache:   map[render.Style]*color.Color{},
	}
}

func colorDefault(v string) string { return v }

func (c *Colors) Color(st render.Style, s string) string {
	if st == render.DefaultStyle {
		return c.Default(s)
	}
	return c.Get(st).Sprint(s)
}

func (c *Colors) Get(st render.Style) *color.Color {
	if col, ok := c.cache[st]; ok {
		return col
	}
	col := color.New()
	if !st.Fg.IsDefault() {
		col.AddRGB(rgb(st.Fg))
	}
	if !st.Bg.IsDefault() {
		col.AddBgRGB(rgb(st.Bg))
	}
	if st.Cursor && st.Fg.IsDefault() && st.Bg.IsDefault() {
		col.Add(color.ReverseVideo)
	}
	col.EnableColor()
	c.cache[st] = col
	return col
}

func rgb(c theme.Color) (int, int, int) {
	r, g, b := c.RGB()
	return int(r), int(g), int(b)
}

var reverse = func() *color.Color {
	c := color.New(color.ReverseVideo)
	c.EnableColor()
	return c
}()

// highlightOnly writes cursor cells in reverse video and everything else
// plain.
func highlightOnly(st render.Style, s string) string {
	if st.Cursor {
		return reverse.Sprint(s)
	}
	return s
}
