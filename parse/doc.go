// Package parse reads documents into forests of IR nodes.
//
// The default input is s-expression text:
//
//	forest, err := parse.Parse([]byte(`(define (f x) (g "x\n" 2))`))
//
// Comments, from ';' to the end of the line, are dropped.  String atoms are
// stored in canonical escaped form, so `"\'"` parses to the same node as
// `"'"`.
//
// With ParseFormat(format.JSONFormat) or ParseFormat(format.YAMLFormat)
// the input is the IR form produced by encode: a sequence of node objects
// such as
//
//	[{"type": "List", "values": [{"type": "Ident", "text": "a"}]}]
//
// A single node object is read as a forest of one.
package parse
