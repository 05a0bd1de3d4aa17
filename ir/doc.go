// Package ir provides the intermediate representation (IR) for documents
// edited by sxe.
//
// # Overview
//
// A document is a forest: an ordered sequence of *Node values with no
// parent.  Each Node is a recursive tagged union.  The Type field selects
// which fields are meaningful:
//
//   - ListType: Values holds the ordered children
//   - IdentType: Text holds an identifier
//   - NumberType: Text holds the number as written
//   - StringType: Text holds the string content, already escaped
//
// The tree is strict.  A node is owned by exactly one list (or by the
// forest) and there are no cycles, so nodes carry no parent pointers.
// Positions are addressed from outside with index paths, see package
// github.com/signadot/sexp-edit/ir/ipath.
//
// # Creating Nodes
//
//	doc := []*ir.Node{
//	    ir.List(ir.FromIdent("title"), ir.FromString("My website")),
//	    ir.FromNumber("42"),
//	}
//
// # Length
//
// Node.Len is the unit the cursor counts in: children for a list and
// characters (runes, not bytes) for an atom.  A position equal to Len is
// the append slot.
//
// # JSON
//
// Nodes marshal to a lossless JSON form:
//
//	{"type": "List", "values": [{"type": "Ident", "text": "a"}]}
//
// # Related Packages
//
//   - github.com/signadot/sexp-edit/parse - Parse text to IR
//   - github.com/signadot/sexp-edit/encode - Encode IR to text
//   - github.com/signadot/sexp-edit/cursor - Path repair and modes
package ir
