package cursor

import "fmt"

type Kind int

const (
	Structural Kind = iota
	Edit
	Command
)

func (k Kind) String() string {
	switch k {
	case Structural:
		return "Structural"
	case Edit:
		return "Edit"
	case Command:
		return "Command"
	}
	return "<unknown kind>"
}

// Mode is the cursor's mode together with its bound: the number of
// children (Structural) or characters (Edit) at the cursor's level.
type Mode struct {
	Kind  Kind
	Bound int
}

func (m Mode) String() string {
	return fmt.Sprintf("%s(%d)", m.Kind, m.Bound)
}
