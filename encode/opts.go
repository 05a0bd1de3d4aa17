package encode

import (
	"github.com/signadot/sexp-edit/format"
	"github.com/signadot/sexp-edit/ir/ipath"
	"github.com/signadot/sexp-edit/theme"
)

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.colors = c }
}

// EncodeHighlight marks the position p as the cursor.  Without colours the
// cursor is written in reverse video.  Only s-expression output has a
// cursor.
func EncodeHighlight(p ipath.Path) EncodeOption {
	return func(es *EncState) { es.highlight = p }
}

// EncodeTheme sets the palette used with EncodeColors.
func EncodeTheme(p *theme.Palette) EncodeOption {
	return func(es *EncState) { es.palette = p }
}
