package parse

import (
	"fmt"

	"github.com/signadot/sexp-edit/ir"
)

var (
	ErrParse = ir.ErrParse
	// ErrIRForm is returned for JSON or YAML input that is not a forest
	// of IR nodes.
	ErrIRForm = fmt.Errorf("%w: bad ir form", ErrParse)
)
