package format

import (
	"errors"
	"fmt"
	"path/filepath"
)

// Format is a textual form of a forest: s-expression source, or the IR
// node tree as JSON or YAML.
type Format int

const (
	SExpFormat Format = iota
	JSONFormat
	YAMLFormat
)

var ErrBadFormat = errors.New("bad format")

// names holds the long name, short name and file suffix of each format,
// indexed by Format.
var names = [...]struct{ long, short, suffix string }{
	SExpFormat: {"sexp", "s", ".sexp"},
	JSONFormat: {"json", "j", ".json"},
	YAMLFormat: {"yaml", "y", ".yaml"},
}

func (f Format) valid() bool { return f >= 0 && int(f) < len(names) }

// ParseFormat accepts the long or one letter name of a format.
func ParseFormat(v string) (Format, error) {
	for i, n := range names {
		if v == n.long || v == n.short {
			return Format(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	if !f.valid() {
		return fmt.Sprintf("<err: %d is not a format>", int(f))
	}
	return names[f].long
}

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	if !f.valid() {
		return ""
	}
	return names[f].suffix
}

// FromSuffix guesses a format from a file name extension, defaulting to
// SExpFormat.  "-" (stdin) is s-expressions too.
func FromSuffix(name string) Format {
	ext := filepath.Ext(name)
	for i, n := range names {
		if ext == n.suffix && len(name) > len(ext) {
			return Format(i)
		}
	}
	return SExpFormat
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{SExpFormat, JSONFormat, YAMLFormat}
}
