package editor

import (
	"fmt"
	"unicode"

	"github.com/signadot/sexp-edit/cursor"
	"github.com/signadot/sexp-edit/edit"
	"github.com/signadot/sexp-edit/ir"
	"github.com/signadot/sexp-edit/ir/ipath"
	"github.com/signadot/sexp-edit/token"
)

// structural handles a key with the cursor among the children of a list.
func (s *Session) structural(k Key) error {
	m, err := s.Mode()
	if err != nil {
		return err
	}
	last := s.path.Last()
	r := k.Rune
	if k.Code != KeyRune {
		r = 0
	}
	switch {
	case r == 'h' || k.Code == KeyLeft:
		if last > 0 {
			s.path = s.path.WithLast(last - 1)
		}
	case r == 'l' || k.Code == KeyRight:
		if last < m.Bound {
			s.path = s.path.WithLast(last + 1)
		}
	case r == 'j' || k.Code == KeyDown:
		if s.atNode() {
			s.path = s.path.Append(0)
		}
	case r == 'k' || k.Code == KeyUp:
		if len(s.path) > 1 {
			s.path = s.path.Parent()
		}
	case r == 'i':
		return s.insertAtom(ir.FromIdent(""))
	case r == 'n':
		return s.insertAtom(ir.FromNumber(""))
	case r == 's':
		return s.insertAtom(ir.FromString(""))
	case r == '(':
		if err := s.insert(s.path, ir.List()); err != nil {
			return err
		}
		s.path = s.path.Append(0)
	case r == 'a':
		return s.addChild()
	case r == 'x' || k.Code == KeyDelete:
		if !s.atNode() {
			return nil
		}
		if err := edit.Delete(s.root, s.path); err != nil {
			return err
		}
		s.dirty = true
	case r == ':':
		s.openCommand("")
	case r == '/':
		s.openCommand("find ")
	}
	return nil
}

// atNode reports whether the path addresses an existing node rather than
// an append slot.
func (s *Session) atNode() bool {
	_, err := ir.GetPath(s.Forest(), s.path)
	return err == nil
}

func (s *Session) insert(p ipath.Path, y *ir.Node) error {
	if err := edit.InsertNode(s.root, p, y); err != nil {
		return err
	}
	s.dirty = true
	return nil
}

// insertAtom inserts y at the cursor and moves into it.
func (s *Session) insertAtom(y *ir.Node) error {
	if err := s.insert(s.path, y); err != nil {
		return err
	}
	s.path = s.path.Append(0)
	return nil
}

// addChild adds an empty identifier after the last child of the node at
// the cursor and moves into it.  An atom is first wrapped in a list.
func (s *Session) addChild() error {
	y, err := ir.GetPath(s.Forest(), s.path)
	if err != nil {
		return nil
	}
	i := len(y.Values)
	if y.Type != ir.ListType {
		i = 1
	}
	p := s.path.Append(i)
	if err := s.insert(p, ir.FromIdent("")); err != nil {
		return err
	}
	s.path = p.Append(0)
	return nil
}

func (s *Session) atom() *ir.Node {
	y, err := ir.GetPath(s.Forest(), s.path.Parent())
	if err != nil {
		return nil
	}
	return y
}

// editing handles a key with the cursor among the characters of an atom.
// Movement and deletion treat a backslash sequence of a string atom as one
// character.  ':' opens the command line except in a string atom, where
// it is text.
func (s *Session) editing(k Key) error {
	y := s.atom()
	if y == nil {
		return nil
	}
	last := s.path.Last()
	n := y.Len()
	switch k.Code {
	case KeyRune:
		if k.Rune == ':' && y.Type != ir.StringType {
			s.openCommand("")
			return nil
		}
		if !unicode.IsPrint(k.Rune) {
			return nil
		}
		if y.Type != ir.StringType && !token.IsAtomRune(k.Rune) {
			s.msg = fmt.Sprintf("%q cannot be part of an atom", k.Rune)
			return nil
		}
		if last < n {
			last, _ = edit.Span(y, last)
		}
		if err := edit.InsertChar(s.root, s.path, k.Rune); err != nil {
			return err
		}
		rekind(y)
		s.dirty = true
		s.path = s.path.WithLast(last + y.Len() - n)
	case KeyBackspace:
		if last == 0 {
			return nil
		}
		lo, _ := edit.Span(y, last-1)
		if err := edit.Delete(s.root, s.path.WithLast(lo)); err != nil {
			return err
		}
		rekind(y)
		s.dirty = true
		s.path = s.path.WithLast(lo)
	case KeyDelete:
		if last >= n {
			return nil
		}
		lo, _ := edit.Span(y, last)
		if err := edit.Delete(s.root, s.path.WithLast(lo)); err != nil {
			return err
		}
		rekind(y)
		s.dirty = true
		s.path = s.path.WithLast(lo)
	case KeyLeft:
		if last > 0 {
			lo, _ := edit.Span(y, last-1)
			s.path = s.path.WithLast(lo)
		}
	case KeyRight:
		if last < n {
			_, hi := edit.Span(y, last)
			s.path = s.path.WithLast(hi)
		}
	case KeyEsc, KeyEnter, KeyUp:
		s.path = s.path.Parent()
	}
	return nil
}

// rekind makes a non-empty identifier or number atom take the kind its
// text is read back as.
func rekind(y *ir.Node) {
	if y.Type == ir.StringType || y.Text == "" {
		return
	}
	if token.IsNumber(y.Text) {
		y.Type = ir.NumberType
	} else {
		y.Type = ir.IdentType
	}
}

func (s *Session) openCommand(init string) {
	s.kind = cursor.Command
	s.cmdLine = []rune(init)
	s.msg = ""
}
