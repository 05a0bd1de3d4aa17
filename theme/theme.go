// Package theme holds the colours used to paint documents.
package theme

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
)

var ErrBadColor = errors.New("bad color")

// Color is a 24 bit RGB colour.  Default selects the terminal's own
// foreground or background.
type Color int32

const Default Color = -1

func RGB(r, g, b uint8) Color {
	return Color(int32(r)<<16 | int32(g)<<8 | int32(b))
}

func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

func (c Color) IsDefault() bool { return c < 0 }

func (c Color) String() string {
	if c.IsDefault() {
		return "default"
	}
	return fmt.Sprintf("#%06X", int32(c))
}

// ParseColor parses "#RRGGBB", "RRGGBB" or "default".
func ParseColor(v string) (Color, error) {
	v = strings.TrimSpace(v)
	if v == "default" {
		return Default, nil
	}
	h := strings.TrimPrefix(v, "#")
	if len(h) != 6 {
		return 0, fmt.Errorf("%w: %q", ErrBadColor, v)
	}
	n, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadColor, v)
	}
	return Color(n), nil
}

// Palette assigns colours to nesting levels and atom kinds.
type Palette struct {
	Rainbow    []Color
	Ident      Color
	Number     Color
	String     Color
	StatusLine Color
	// Cursor is the foreground used on inverted cells.
	Cursor Color
}

func DefaultPalette() *Palette {
	var (
		red    = RGB(0xFB, 0x46, 0x7B)
		cyan   = RGB(0x80, 0xA0, 0xFF)
		purple = RGB(0x97, 0x5E, 0xEC)
		yellow = RGB(0xFF, 0xCC, 0x00)
		aqua   = RGB(0x00, 0xD5, 0xA7)
		orange = RGB(0xFF, 0x8D, 0x03)
		green  = RGB(0xB8, 0xEE, 0x92)
		white  = RGB(0xCE, 0xD5, 0xE5)
		grey   = RGB(0x49, 0x46, 0x46)
	)
	return &Palette{
		Rainbow: []Color{
			red,
			cyan,
			purple,
			yellow,
			aqua,
			orange,
			green,
		},
		Ident:      white,
		Number:     red,
		String:     green,
		StatusLine: grey,
		Cursor:     RGB(0, 0, 0),
	}
}

// Level returns the list delimiter colour for nesting depth i.
func (p *Palette) Level(i int) Color {
	if len(p.Rainbow) == 0 {
		return Default
	}
	if i < 0 {
		i = -i
	}
	return p.Rainbow[i%len(p.Rainbow)]
}

type paletteFile struct {
	Rainbow    []string `yaml:"rainbow"`
	Ident      string   `yaml:"ident"`
	Number     string   `yaml:"number"`
	String     string   `yaml:"string"`
	StatusLine string   `yaml:"statusline"`
	Cursor     string   `yaml:"cursor"`
}

// Load reads a YAML theme.  Keys that are absent keep the default palette
// colours.
//
//	rainbow: ["#FB467B", "#80A0FF"]
//	ident: "#CED5E5"
//	number: "#FB467B"
//	string: "#B8EE92"
//	statusline: "#494646"
func Load(r io.Reader) (*Palette, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	pf := &paletteFile{}
	if err := yaml.Unmarshal(d, pf); err != nil {
		return nil, fmt.Errorf("error decoding theme: %w", err)
	}
	p := DefaultPalette()
	if len(pf.Rainbow) != 0 {
		p.Rainbow = make([]Color, len(pf.Rainbow))
		for i, v := range pf.Rainbow {
			c, err := ParseColor(v)
			if err != nil {
				return nil, fmt.Errorf("rainbow[%d]: %w", i, err)
			}
			p.Rainbow[i] = c
		}
	}
	for _, f := range []struct {
		name string
		v    string
		dst  *Color
	}{
		{"ident", pf.Ident, &p.Ident},
		{"number", pf.Number, &p.Number},
		{"string", pf.String, &p.String},
		{"statusline", pf.StatusLine, &p.StatusLine},
		{"cursor", pf.Cursor, &p.Cursor},
	} {
		if f.v == "" {
			continue
		}
		c, err := ParseColor(f.v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.name, err)
		}
		*f.dst = c
	}
	return p, nil
}
