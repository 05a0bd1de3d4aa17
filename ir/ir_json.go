package ir

import (
	"encoding/json"
	"fmt"

	"github.com/signadot/sexp-edit/token"
)

type irBase struct {
	Type   Type    `json:"type"`
	Values []*Node `json:"values,omitempty"`
	Text   *string `json:"text,omitempty"`
}

func (y *Node) MarshalJSON() ([]byte, error) {
	if y.Type == ListType {
		type C struct {
			Type   Type    `json:"type"`
			Values []*Node `json:"values"`
		}
		vs := y.Values
		if vs == nil {
			vs = []*Node{}
		}
		return json.Marshal(C{Type: y.Type, Values: vs})
	}
	text := y.Text
	return json.Marshal(&irBase{Type: y.Type, Text: &text})
}

func (y *Node) UnmarshalJSON(d []byte) error {
	tmp := &irBase{}
	if err := json.Unmarshal(d, tmp); err != nil {
		return err
	}
	switch tmp.Type {
	case ListType:
		if tmp.Text != nil {
			return fmt.Errorf("%w: list with text", ErrParse)
		}
		for i, v := range tmp.Values {
			if v == nil {
				return fmt.Errorf("%w: null list value at %d", ErrParse, i)
			}
		}
		y.Type = ListType
		y.Values = tmp.Values
		if y.Values == nil {
			y.Values = []*Node{}
		}
		y.Text = ""
	case IdentType, NumberType, StringType:
		if len(tmp.Values) != 0 {
			return fmt.Errorf("%w: %s with values", ErrParse, tmp.Type)
		}
		y.Type = tmp.Type
		y.Values = nil
		y.Text = ""
		if tmp.Text != nil {
			y.Text = *tmp.Text
		}
		if y.Type == StringType {
			if err := token.CheckEscapes(y.Text); err != nil {
				return fmt.Errorf("%w: %w", ErrParse, err)
			}
		}
	default:
		return fmt.Errorf("%w: unknown node type %d", ErrParse, tmp.Type)
	}
	return nil
}
