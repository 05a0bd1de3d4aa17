package query

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/sexp-edit/ir"
	"github.com/signadot/sexp-edit/ir/ipath"
)

func forest() []*ir.Node {
	return []*ir.Node{
		ir.List(ir.FromIdent("define"), ir.List(ir.FromIdent("f"), ir.FromIdent("x")), ir.FromString("a\tb")),
		ir.List(ir.FromIdent("define"), ir.FromIdent("y"), ir.FromNumber("42")),
		ir.FromIdent("x"),
	}
}

func TestFind(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []ipath.Path
	}{
		{
			name: "definitions",
			src:  `kind == "List" && head() == "define"`,
			want: []ipath.Path{{0}, {1}},
		},
		{
			name: "text",
			src:  `text == "x"`,
			want: []ipath.Path{{0, 1, 1}, {2}},
		},
		{
			name: "unescaped string",
			src:  `kind == "String" && text == "a\tb"`,
			want: []ipath.Path{{0, 2}},
		},
		{
			name: "depth and index",
			src:  `depth == 1 && index == 2`,
			want: []ipath.Path{{0, 2}, {1, 2}},
		},
		{
			name: "len",
			src:  `kind == "Number" && len == 2`,
			want: []ipath.Path{{1, 2}},
		},
		{
			name: "path",
			src:  `path == "[0][1]" || whereami() == "[2]"`,
			want: []ipath.Path{{0, 1}, {2}},
		},
		{
			name: "none",
			src:  `false`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := Compile(tt.src)
			if err != nil {
				t.Fatal(err)
			}
			got, err := q.Find(forest())
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestNext(t *testing.T) {
	q, err := Compile(`kind == "Ident"`)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		from ipath.Path
		want ipath.Path
	}{
		{"from start", ipath.Path{0}, ipath.Path{0, 0}},
		{"from match", ipath.Path{0, 0}, ipath.Path{0, 1, 0}},
		{"skip subtree order", ipath.Path{0, 1, 1}, ipath.Path{1, 0}},
		{"wrap", ipath.Path{2}, ipath.Path{0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := q.Next(forest(), tt.from)
			if err != nil || !ok {
				t.Fatalf("ok %t err %v", ok, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"not bool", `text`, ErrNotBool},
		{"syntax", `kind ==`, ErrBadQuery},
		{"unknown variable", `colour == "red"`, ErrBadQuery},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.src)
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v want %v", err, tt.want)
			}
		})
	}
}
