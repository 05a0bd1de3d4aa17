package debug

import (
	"fmt"
	"strings"

	"github.com/signadot/sexp-edit/encode"
	"github.com/signadot/sexp-edit/ir"
)

// Logf writes a formatted message to the debug output.  *ir.Node and
// []*ir.Node arguments, formatted with %v, are written as s-expression
// text.
func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case *ir.Node:
			if x == nil {
				args[i] = "<nil>"
				continue
			}
			args[i] = encode.Serialize([]*ir.Node{x})
		case []*ir.Node:
			args[i] = strings.ReplaceAll(encode.Serialize(x), "\n", " ")
		default:
		}
	}
	outMu.Lock()
	defer outMu.Unlock()
	fmt.Fprintf(out, msg, args...)
}
