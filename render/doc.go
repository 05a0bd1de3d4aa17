// Package render lays out a document and paints it into a styled
// character grid, embedding the cursor as inverted cells.
//
// # Layout
//
// Atoms are written as their text; strings get their double quotes back
// and empty identifiers and numbers are shown as the placeholders (I) and
// (N).  A list with exactly two children whose second child is an atom is
// written on one line:
//
//	(title "My website")
//
// Every other non-empty list puts its first child right after the opening
// parenthesis and each further child on its own line, indented one level
// (four columns) deeper than the line the list started on:
//
//	(html
//	    (head
//	        (title "My website"))
//	    (body))
//
// # Cursor
//
// Paint takes the cursor as an index path.  The path is followed down the
// tree and only the node it ends on is highlighted: a whole node, a single
// character of an atom, or an append slot drawn as an inverted blank cell.
//
// # Related Packages
//
//   - github.com/signadot/sexp-edit/theme - Colours
//   - github.com/signadot/sexp-edit/encode - Text output built on this layout
package render
