package ir

import "fmt"

type Type int

const (
	ListType Type = iota
	IdentType
	NumberType
	StringType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		ListType:   "List",
		IdentType:  "Ident",
		NumberType: "Number",
		StringType: "String",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"List":   ListType,
		"Ident":  IdentType,
		"Number": NumberType,
		"String": StringType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

// IsLeaf reports whether nodes of type t carry text instead of children.
func (t Type) IsLeaf() bool {
	return t != ListType
}
