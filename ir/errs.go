package ir

import (
	"errors"

	"github.com/signadot/sexp-edit/format"
)

var (
	ErrParse     = errors.New("parse error")
	ErrBadFormat = format.ErrBadFormat
	ErrNotFound  = errors.New("no such node")
)
