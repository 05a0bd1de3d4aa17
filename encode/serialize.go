package encode

import (
	"github.com/signadot/sexp-edit/ir"
	"github.com/signadot/sexp-edit/render"
	"github.com/signadot/sexp-edit/theme"
)

// Serialize returns the s-expression text of forest without a trailing
// newline.  It is the plain text of render.Paint for the same forest.
func Serialize(forest []*ir.Node) string {
	return render.Paint(Printable(forest), theme.DefaultPalette(), nil).String()
}

// Printable returns forest without the empty identifier and number atoms,
// which have no textual form.  Lists holding such atoms are copied; forest
// itself is not modified.
func Printable(forest []*ir.Node) []*ir.Node {
	if !hasEmptyAtom(forest) {
		return forest
	}
	res := make([]*ir.Node, 0, len(forest))
	for _, y := range forest {
		if isEmptyAtom(y) {
			continue
		}
		if y.Type == ir.ListType && hasEmptyAtom(y.Values) {
			y = ir.FromSlice(Printable(y.Values))
		}
		res = append(res, y)
	}
	return res
}

func isEmptyAtom(y *ir.Node) bool {
	return (y.Type == ir.IdentType || y.Type == ir.NumberType) && y.Text == ""
}

func hasEmptyAtom(forest []*ir.Node) bool {
	for _, y := range forest {
		if isEmptyAtom(y) {
			return true
		}
		if y.Type == ir.ListType && hasEmptyAtom(y.Values) {
			return true
		}
	}
	return false
}
