package editor

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/signadot/sexp-edit/encode"
	"github.com/signadot/sexp-edit/format"
	"github.com/signadot/sexp-edit/ir"
	"github.com/signadot/sexp-edit/parse"
)

// Open starts a session on the named file, or on an empty document if the
// file does not exist yet.  The format follows the file's suffix.
func Open(name string, opts ...Option) (*Session, error) {
	var forest []*ir.Node
	d, err := os.ReadFile(name)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		forest = []*ir.Node{}
	case err != nil:
		return nil, err
	default:
		forest, err = parse.Parse(d, parse.ParseFormat(format.FromSuffix(name)))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	}
	s, err := New(forest, append([]Option{WithFile(name)}, opts...)...)
	if err != nil {
		return nil, err
	}
	s.log.Info("open", "file", name, "nodes", len(forest), "new", d == nil)
	return s, nil
}

// write saves the document to name, or to the session's file if name is
// empty.
func (s *Session) write(name string, force bool) error {
	target := name
	if target == "" {
		target = s.file
	}
	if target == "" {
		return ErrNoFileName
	}
	if target != s.file && !force {
		if _, err := os.Stat(target); err == nil {
			return fmt.Errorf("%w: %s", ErrFileExists, target)
		}
	}
	f := format.FromSuffix(target)
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(s.Forest(), buf, encode.EncodeFormat(f)); err != nil {
		return err
	}
	if err := os.WriteFile(target, buf.Bytes(), 0644); err != nil {
		return err
	}
	if s.file == "" {
		s.file = target
	}
	if target == s.file {
		s.dirty = false
	}
	s.msg = fmt.Sprintf("wrote %s (%d bytes)", target, buf.Len())
	s.log.Info("save", "file", target, "bytes", buf.Len())
	return nil
}
