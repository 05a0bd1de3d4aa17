package encode

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/signadot/sexp-edit/format"
	"github.com/signadot/sexp-edit/ir"
	"github.com/signadot/sexp-edit/ir/ipath"
	"github.com/signadot/sexp-edit/render"
	"github.com/signadot/sexp-edit/theme"
)

type EncState struct {
	format    format.Format
	colors    *Colors
	highlight ipath.Path
	palette   *theme.Palette
}

// Encode writes forest to w.  Each row of s-expression output ends in a
// newline; an empty forest writes nothing.
func Encode(forest []*ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	if es.palette == nil {
		es.palette = theme.DefaultPalette()
	}
	switch es.format {
	case format.JSONFormat:
		return encodeJSON(forest, w)
	case format.YAMLFormat:
		return encodeYAML(forest, w)
	}
	return encodeSExp(forest, w, es)
}

func encodeJSON(forest []*ir.Node, w io.Writer) error {
	if forest == nil {
		forest = []*ir.Node{}
	}
	d, err := json.MarshalIndent(forest, "", "  ")
	if err != nil {
		return err
	}
	return writeString(w, string(d)+"\n")
}

func encodeYAML(forest []*ir.Node, w io.Writer) error {
	if forest == nil {
		forest = []*ir.Node{}
	}
	d, err := json.Marshal(forest)
	if err != nil {
		return err
	}
	y, err := yaml.JSONToYAML(d)
	if err != nil {
		return fmt.Errorf("error converting to yaml: %w", err)
	}
	return writeString(w, string(y))
}

func encodeSExp(forest []*ir.Node, w io.Writer, es *EncState) error {
	if es.highlight == nil {
		forest = Printable(forest)
	}
	g := render.Paint(forest, es.palette, es.highlight)
	var color func(render.Style, string) string
	switch {
	case es.colors != nil:
		color = es.colors.Color
	case es.highlight != nil:
		color = highlightOnly
	}
	for y := 0; y < g.Height(); y++ {
		var line string
		if color == nil {
			line = g.Line(y)
		} else {
			line = styledLine(g.Row(y), color)
		}
		if err := writeString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// styledLine writes a row as runs of equally styled cells.  Trailing
// blanks that are not part of the cursor are dropped.
func styledLine(row []render.Cell, color func(render.Style, string) string) string {
	n := len(row)
	for n > 0 && row[n-1].Rune == ' ' && !row[n-1].Style.Cursor {
		n--
	}
	buf := &strings.Builder{}
	run := []rune{}
	var st render.Style
	for i := 0; i < n; i++ {
		c := row[i]
		if i > 0 && c.Style != st {
			buf.WriteString(color(st, string(run)))
			run = run[:0]
		}
		st = c.Style
		run = append(run, c.Rune)
	}
	if len(run) != 0 {
		buf.WriteString(color(st, string(run)))
	}
	return buf.String()
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
