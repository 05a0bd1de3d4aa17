// Package ipath provides index paths: the cursor addresses of sxe.
//
// An index path is a sequence of non-negative integers.  The first index
// selects a top level node of a document, each following index selects a
// child of the list reached so far, and a final index may instead select a
// character of a text atom.  An index equal to the length of its container
// is the append slot just past the last element.
//
// # Usage
//
//	// Parse an index path
//	p, err := ipath.Parse("[0][2][1]")
//
//	// Navigate
//	parent := p.Parent()          // [0][2]
//	child := p.Append(4)          // [0][2][1][4]
//	next := p.WithLast(p.Last()+1) // [0][2][2]
//
//	// Compare paths
//	cmp := p.Compare(next) // -1, 0, or 1
//
// # Related Packages
//
//   - github.com/signadot/sexp-edit/ir - IR representation
//   - github.com/signadot/sexp-edit/cursor - Path repair
package ipath
