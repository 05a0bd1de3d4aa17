// Package format names the textual forms a document can be read from and
// written to.
//
// # Usage
//
//	f, err := format.ParseFormat("yaml")
//	if err != nil {
//	    return err
//	}
//	name := "doc" + f.Suffix()
//
// # Related Packages
//
//   - github.com/signadot/sexp-edit/parse - Parse text to IR
//   - github.com/signadot/sexp-edit/encode - Encode IR to text
package format
