// Package editor implements an editing session on a document: the cursor
// and its mode, key bindings, and the command line.
//
// A Session is driven by Handle with one key at a time and shown with
// Paint and Status.  It is not safe for concurrent use.
package editor

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/signadot/sexp-edit/cursor"
	"github.com/signadot/sexp-edit/debug"
	"github.com/signadot/sexp-edit/ir"
	"github.com/signadot/sexp-edit/ir/ipath"
	"github.com/signadot/sexp-edit/query"
	"github.com/signadot/sexp-edit/render"
	"github.com/signadot/sexp-edit/theme"
)

type Session struct {
	// root holds the document's top level nodes as its values.
	root *ir.Node
	path ipath.Path
	// kind is the mode kind; the bound is always derived from path.
	kind cursor.Kind

	cmdLine []rune

	file  string
	dirty bool
	msg   string
	quit  bool
	query *query.Query

	log     *slog.Logger
	palette *theme.Palette
}

type Option func(*Session)

// WithFile names the file the session saves to.
func WithFile(name string) Option {
	return func(s *Session) { s.file = name }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.log = l }
}

func WithPalette(p *theme.Palette) Option {
	return func(s *Session) { s.palette = p }
}

// New starts a session on forest, which the session takes over, with the
// cursor at [0].
func New(forest []*ir.Node, opts ...Option) (*Session, error) {
	s := &Session{
		root: ir.FromSlice(forest),
		path: ipath.Path{0},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = slog.New(slog.DiscardHandler)
	}
	if s.palette == nil {
		s.palette = theme.DefaultPalette()
	}
	if err := s.repair(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) Forest() []*ir.Node { return s.root.Values }

func (s *Session) Path() ipath.Path { return s.path.Clone() }

func (s *Session) File() string { return s.file }

func (s *Session) Palette() *theme.Palette { return s.palette }

// Dirty reports whether there are unsaved changes.
func (s *Session) Dirty() bool { return s.dirty }

// Quit reports whether the session has been asked to end.
func (s *Session) Quit() bool { return s.quit }

// Message is the result of the last command, if any.
func (s *Session) Message() string { return s.msg }

// CommandLine returns the text typed after ':' in Command mode.
func (s *Session) CommandLine() (string, bool) {
	return string(s.cmdLine), s.kind == cursor.Command
}

// Mode returns the current mode.  The bound is computed from the live
// path and forest; in Command mode it is the bound of the mode the
// command line was opened from.
func (s *Session) Mode() (cursor.Mode, error) {
	m, err := cursor.Resolve(s.path, s.Forest())
	if err != nil {
		return m, err
	}
	if s.kind == cursor.Command {
		m.Kind = cursor.Command
	}
	return m, nil
}

// repair corrects the path after a change and takes the mode kind it
// implies.
func (s *Session) repair() error {
	m, err := cursor.Repair(&s.path, s.Forest())
	if err != nil {
		s.log.Error("repair", "path", s.path.String(), "error", err)
		return err
	}
	s.kind = m.Kind
	return nil
}

// Paint lays out the document with the cursor highlighted.
func (s *Session) Paint() *render.Grid {
	if debug.Paint() {
		debug.Logf("paint %v at %s\n", s.Forest(), s.path)
	}
	return render.Paint(s.Forest(), s.palette, s.path)
}

// Status is the text of the status line.
func (s *Session) Status() string {
	if s.kind == cursor.Command {
		return ":" + string(s.cmdLine)
	}
	m, err := s.Mode()
	if err != nil {
		return err.Error()
	}
	name := s.file
	if name == "" {
		name = "[new]"
	}
	if s.dirty {
		name += " +"
	}
	parts := []string{m.String(), s.path.String(), name}
	if s.msg != "" {
		parts = append(parts, s.msg)
	}
	return strings.Join(parts, "  ")
}

// Handle applies one key press.  Mistakes such as unknown commands are
// reported in the message; an error is returned only when the document
// and cursor can no longer be kept consistent.
func (s *Session) Handle(k Key) error {
	if debug.Keys() {
		debug.Logf("key %s in %s at %s\n", k, s.kind, s.path)
	}
	var err error
	switch s.kind {
	case cursor.Structural:
		err = s.structural(k)
	case cursor.Edit:
		err = s.editing(k)
	case cursor.Command:
		err = s.command(k)
	default:
		err = fmt.Errorf("unknown mode %s", s.kind)
	}
	if err != nil {
		s.log.Error("key", "key", k.String(), "path", s.path.String(), "error", err)
		return err
	}
	if s.kind == cursor.Command {
		return nil
	}
	return s.repair()
}
