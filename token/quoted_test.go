package token

import (
	"errors"
	"testing"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		raw, escaped string
	}{
		{"plain", "plain"},
		{"a\nb", `a\nb`},
		{"tab\there", `tab\there`},
		{`say "hi"`, `say \"hi\"`},
		{`back\slash`, `back\\slash`},
		{"nul\x00", `nul\0`},
		{"cr\r", `cr\r`},
	}
	for _, tt := range tests {
		if got := Escape(tt.raw); got != tt.escaped {
			t.Errorf("Escape(%q) = %q, want %q", tt.raw, got, tt.escaped)
		}
		got, err := Unescape(tt.escaped)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.raw {
			t.Errorf("Unescape(%q) = %q, want %q", tt.escaped, got, tt.raw)
		}
	}
}

func TestUnescapeExtras(t *testing.T) {
	got, err := Unescape(`\u00e9\'`)
	if err != nil {
		t.Fatal(err)
	}
	if got != "é'" {
		t.Errorf("got %q", got)
	}
	if _, err := Unescape(`\q`); !errors.Is(err, ErrBadEscape) {
		t.Errorf("got %v", err)
	}
	if _, err := Unescape(`\u12`); !errors.Is(err, ErrBadUnicode) {
		t.Errorf("got %v", err)
	}
	if _, err := Unescape(`abc\`); !errors.Is(err, ErrBadEscape) {
		t.Errorf("got %v", err)
	}
}
