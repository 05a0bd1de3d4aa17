package ir

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/sexp-edit/ir/ipath"
)

func sample() []*Node {
	return []*Node{
		List(FromIdent("!!DOCTYPE"), FromIdent("html")),
		List(
			FromIdent("html"),
			List(FromIdent("head"), List(FromIdent("title"), FromString("My website"))),
			List(FromIdent("body"), FromNumber("42")),
		),
	}
}

func TestLen(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		want int
	}{
		{"empty list", List(), 0},
		{"list", List(FromIdent("a"), FromIdent("b")), 2},
		{"ident", FromIdent("abc"), 3},
		{"multibyte", FromIdent("größe"), 5},
		{"escaped string counts escapes", FromString("a\nb"), 4},
		{"empty number", FromNumber(""), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.Len(); got != tt.want {
				t.Errorf("Len() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFromString(t *testing.T) {
	y := FromString("say \"hi\"\n")
	if y.Text != `say \"hi\"\n` {
		t.Errorf("got %q", y.Text)
	}
	if got := y.Unescaped(); got != "say \"hi\"\n" {
		t.Errorf("Unescaped() = %q", got)
	}
}

func TestClone(t *testing.T) {
	forest := sample()
	c := CloneForest(forest)
	if !EqualForests(forest, c) {
		t.Fatalf("clone differs")
	}
	c[1].Values[1].Values[0].Text = "changed"
	c[0].Values = append(c[0].Values, FromIdent("extra"))
	if forest[1].Values[1].Values[0].Text != "head" {
		t.Errorf("clone shares atoms")
	}
	if len(forest[0].Values) != 2 {
		t.Errorf("clone shares lists")
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b *Node
		want bool
	}{
		{"same ident", FromIdent("a"), FromIdent("a"), true},
		{"kind matters", FromIdent("1"), FromNumber("1"), false},
		{"text matters", FromString("a"), FromString("b"), false},
		{"nil vs empty values", &Node{Type: ListType}, List(), true},
		{"length matters", List(FromIdent("a")), List(FromIdent("a"), FromIdent("b")), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCompareOrder(t *testing.T) {
	if Compare(FromNumber("9"), FromIdent("a")) != -1 {
		t.Errorf("number should sort before ident")
	}
	if Compare(FromString("a"), List()) != -1 {
		t.Errorf("string should sort before list")
	}
	if Compare(List(FromIdent("a")), List(FromIdent("b"))) != -1 {
		t.Errorf("element comparison")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	forest := sample()
	forest = append(forest, List(), FromIdent(""))
	d, err := json.Marshal(forest)
	if err != nil {
		t.Fatal(err)
	}
	var back []*Node
	if err := json.Unmarshal(d, &back); err != nil {
		t.Fatal(err)
	}
	if !EqualForests(forest, back) {
		t.Errorf("round trip differs: %s", d)
	}
	n := len(sample())
	if back[n].Type != ListType || back[n].Values == nil {
		t.Errorf("empty list decoded as %#v", back[n])
	}
	if back[n+1].Type != IdentType || back[n+1].Text != "" {
		t.Errorf("empty ident decoded as %#v", back[n+1])
	}
}

func TestJSONForm(t *testing.T) {
	d, err := json.Marshal(List(FromIdent("a"), List()))
	if err != nil {
		t.Fatal(err)
	}
	want := `{"type":"List","values":[{"type":"Ident","text":"a"},{"type":"List","values":[]}]}`
	if string(d) != want {
		t.Errorf("got %s", d)
	}
}

func TestJSONErrors(t *testing.T) {
	for _, in := range []string{
		`{"type":"List","text":"x"}`,
		`{"type":"Ident","values":[{"type":"Ident","text":"a"}]}`,
		`{"type":"Bogus"}`,
		`{"type":"List","values":[null]}`,
	} {
		var y Node
		if err := json.Unmarshal([]byte(in), &y); err == nil {
			t.Errorf("%s: expected error", in)
		}
	}
}

func TestGetPath(t *testing.T) {
	forest := sample()
	y, err := GetPath(forest, ipath.Path{1, 1, 1, 1})
	if err != nil {
		t.Fatal(err)
	}
	if y.Type != StringType || y.Unescaped() != "My website" {
		t.Errorf("got %#v", y)
	}
	for _, p := range []ipath.Path{nil, {2}, {0, 2}, {0, 0, 0}} {
		if _, err := GetPath(forest, p); !errors.Is(err, ErrNotFound) {
			t.Errorf("%s: got %v", p, err)
		}
	}
}

func TestWalk(t *testing.T) {
	var got []string
	Walk(sample(), func(y *Node, p ipath.Path, depth int) bool {
		if y.Type == IdentType && depth > 0 {
			got = append(got, p.String()+" "+y.Text)
		}
		return y.Type != ListType || len(y.Values) == 0 || y.Values[0].Text != "head"
	})
	want := []string{
		"[0][0] !!DOCTYPE",
		"[0][1] html",
		"[1][0] html",
		"[1][2][0] body",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}
