package editor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/signadot/sexp-edit/query"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrNoFileName     = errors.New("no file name")
	ErrUnsaved        = errors.New("unsaved changes (add ! to override)")
	ErrFileExists     = errors.New("file exists (add ! to overwrite)")
	ErrNoQuery        = errors.New("no previous find")
)

// command handles a key while the command line is open.
func (s *Session) command(k Key) error {
	switch k.Code {
	case KeyRune:
		s.cmdLine = append(s.cmdLine, k.Rune)
		return nil
	case KeyBackspace:
		if len(s.cmdLine) > 0 {
			s.cmdLine = s.cmdLine[:len(s.cmdLine)-1]
		}
		return nil
	case KeyEsc:
		return s.closeCommand()
	case KeyEnter:
		line := string(s.cmdLine)
		if err := s.closeCommand(); err != nil {
			return err
		}
		if err := s.Exec(line); err != nil {
			s.msg = err.Error()
		}
		return s.repair()
	}
	return nil
}

// closeCommand leaves Command mode for the mode of the saved path.
func (s *Session) closeCommand() error {
	s.cmdLine = nil
	return s.repair()
}

// Exec runs a command line:
//
//	w [file]   write the document
//	q          quit
//	wq [file]  write and quit
//	find expr  move to the next node matching expr
//	n          move to the next match of the last find
//
// w, q and wq take a '!' suffix to force overwriting another file or
// quitting with unsaved changes.
func (s *Session) Exec(line string) error {
	line = strings.TrimSpace(line)
	name, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)
	force := strings.HasSuffix(name, "!")
	name = strings.TrimSuffix(name, "!")
	s.log.Info("command", "name", name, "arg", arg, "force", force)
	switch name {
	case "":
		return nil
	case "w":
		return s.write(arg, force)
	case "q":
		if s.dirty && !force {
			return ErrUnsaved
		}
		s.quit = true
		return nil
	case "wq", "x":
		if err := s.write(arg, force); err != nil {
			return err
		}
		s.quit = true
		return nil
	case "find":
		q, err := query.Compile(arg)
		if err != nil {
			return err
		}
		s.query = q
		return s.next()
	case "n":
		return s.next()
	}
	return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
}

func (s *Session) next() error {
	if s.query == nil {
		return ErrNoQuery
	}
	p, ok, err := s.query.Next(s.Forest(), s.path)
	if err != nil {
		return err
	}
	if !ok {
		s.msg = "no match: " + s.query.String()
		return nil
	}
	s.path = p
	s.msg = "found " + p.String()
	return nil
}
