// Package libdiff computes line diffs of documents.
//
// # Usage
//
//	// the lines of each text tagged equal, deleted or inserted
//	lines := libdiff.Lines(before, after)
//
//	// unified diff with 3 lines of context, "" when equal
//	out := libdiff.Unified("a.sexp", "a.sexp (formatted)", before, after)
//
// Lines are compared whole: each distinct line is mapped to a rune and the
// rune sequences are diffed with diffmatchpatch.
package libdiff
