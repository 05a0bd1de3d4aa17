package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
		err  bool
	}{
		{"s", SExpFormat, false},
		{"sexp", SExpFormat, false},
		{"j", JSONFormat, false},
		{"yaml", YAMLFormat, false},
		{"toml", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.err {
				if !errors.Is(err, ErrBadFormat) {
					t.Fatalf("expected ErrBadFormat, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %s want %s", got, tt.want)
			}
		})
	}
}

func TestFromSuffix(t *testing.T) {
	tests := []struct {
		name string
		want Format
	}{
		{"a/b.yaml", YAMLFormat},
		{"x.json", JSONFormat},
		{"page.lisp", SExpFormat},
		{"doc.sexp", SExpFormat},
		{".json", SExpFormat},
		{"json", SExpFormat},
		{"-", SExpFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromSuffix(tt.name); got != tt.want {
				t.Errorf("got %s want %s", got, tt.want)
			}
		})
	}
}

func TestNames(t *testing.T) {
	for _, f := range AllFormats() {
		g, err := ParseFormat(f.String())
		if err != nil {
			t.Fatal(err)
		}
		if g != f {
			t.Errorf("got %s want %s", g, f)
		}
		if got := FromSuffix("doc" + f.Suffix()); got != f {
			t.Errorf("suffix %s gave %s", f.Suffix(), got)
		}
	}
	if s := Format(7).String(); s != "<err: 7 is not a format>" {
		t.Errorf("bad format printed as %q", s)
	}
	if s := Format(7).Suffix(); s != "" {
		t.Errorf("bad format suffix %q", s)
	}
}
