// Package encode writes forests of IR nodes as text.
//
// # Usage
//
//	// s-expression text, laid out like the editor shows it
//	err := encode.Encode(forest, os.Stdout)
//
//	// with terminal colours and a cursor
//	err := encode.Encode(forest, os.Stdout,
//	    encode.EncodeColors(encode.NewColors()),
//	    encode.EncodeHighlight(ipath.Path{0, 1}))
//
//	// the IR form, readable by parse.ParseFormat(format.YAMLFormat)
//	err := encode.Encode(forest, w, encode.EncodeFormat(format.YAMLFormat))
//
// The s-expression layout is the one of package render: encoding paints
// the forest into a grid and writes out its rows.
//
// # Related Packages
//
//   - github.com/signadot/sexp-edit/render - layout
//   - github.com/signadot/sexp-edit/parse - Parse text to IR
package encode
