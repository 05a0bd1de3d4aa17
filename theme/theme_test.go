package theme

import (
	"errors"
	"strings"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
		err  bool
	}{
		{"#FB467B", RGB(0xFB, 0x46, 0x7B), false},
		{"00d5a7", RGB(0x00, 0xD5, 0xA7), false},
		{"default", Default, false},
		{"#FFF", 0, true},
		{"#GGGGGG", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if tt.err {
			if !errors.Is(err, ErrBadColor) {
				t.Errorf("%q: got %v", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("%q: got %s want %s", tt.in, got, tt.want)
		}
	}
}

func TestColorRGB(t *testing.T) {
	r, g, b := RGB(1, 2, 3).RGB()
	if r != 1 || g != 2 || b != 3 {
		t.Errorf("got %d %d %d", r, g, b)
	}
	if RGB(0, 0, 0).IsDefault() || !Default.IsDefault() {
		t.Errorf("IsDefault wrong")
	}
	if s := RGB(0xCE, 0xD5, 0xE5).String(); s != "#CED5E5" {
		t.Errorf("String() = %s", s)
	}
}

func TestLevelCycles(t *testing.T) {
	p := DefaultPalette()
	n := len(p.Rainbow)
	for i := range 3 * n {
		if p.Level(i) != p.Rainbow[i%n] {
			t.Fatalf("level %d", i)
		}
	}
	empty := &Palette{}
	if !empty.Level(3).IsDefault() {
		t.Errorf("empty rainbow should give default")
	}
}

func TestLoad(t *testing.T) {
	in := `
rainbow: ["#010203", "#040506"]
string: "#0A0B0C"
`
	p, err := Load(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Rainbow) != 2 || p.Level(3) != RGB(4, 5, 6) {
		t.Errorf("rainbow = %v", p.Rainbow)
	}
	if p.String != RGB(10, 11, 12) {
		t.Errorf("string = %s", p.String)
	}
	if p.Ident != DefaultPalette().Ident {
		t.Errorf("ident should keep default, got %s", p.Ident)
	}
}

func TestLoadErrors(t *testing.T) {
	for _, in := range []string{
		"rainbow: [\"nope\"]\n",
		"number: \"#12\"\n",
	} {
		if _, err := Load(strings.NewReader(in)); !errors.Is(err, ErrBadColor) {
			t.Errorf("%q: got %v", in, err)
		}
	}
	if _, err := Load(strings.NewReader("rainbow: [unclosed\n")); err == nil {
		t.Errorf("expected yaml error")
	}
}
