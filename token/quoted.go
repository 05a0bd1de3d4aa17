package token

import (
	"encoding/hex"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Escape returns v with backslash, double quote and the control
// characters newline, carriage return, tab and NUL written as backslash
// sequences.  This is the form string atoms store.
func Escape(v string) string {
	if !strings.ContainsAny(v, "\\\"\n\r\t\x00") {
		return v
	}
	var b strings.Builder
	b.Grow(len(v) + 2)
	for _, r := range v {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case 0:
			b.WriteString(`\0`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Unescape resolves the backslash sequences of an escaped string.  Besides
// the sequences Escape produces it accepts \' and \uXXXX.
func Unescape(v string) (string, error) {
	if strings.IndexByte(v, '\\') == -1 {
		return v, nil
	}
	var b strings.Builder
	b.Grow(len(v))
	for i := 0; i < len(v); i++ {
		c := v[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		if i+1 >= len(v) {
			return "", fmt.Errorf("%w: trailing backslash", ErrBadEscape)
		}
		i++
		switch v[i] {
		case '\\':
			b.WriteByte('\\')
		case '"':
			b.WriteByte('"')
		case '\'':
			b.WriteByte('\'')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case '0':
			b.WriteByte(0)
		case 'u':
			if i+5 > len(v) {
				return "", fmt.Errorf("%w: short \\u escape", ErrBadUnicode)
			}
			d, err := hex.DecodeString(v[i+1 : i+5])
			if err != nil {
				return "", fmt.Errorf("%w: %w", ErrBadUnicode, err)
			}
			r := rune(d[0])<<8 | rune(d[1])
			if !utf8.ValidRune(r) {
				return "", fmt.Errorf("%w: invalid rune %U", ErrBadUnicode, r)
			}
			b.WriteRune(r)
			i += 4
		default:
			return "", fmt.Errorf("%w: \\%c", ErrBadEscape, v[i])
		}
	}
	return b.String(), nil
}

// CheckEscapes validates the escapes of the already escaped string v.
func CheckEscapes(v string) error {
	_, err := Unescape(v)
	return err
}
