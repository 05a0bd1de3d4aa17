package token

import (
	"errors"
	"fmt"
)

var (
	ErrBadUTF8      = errors.New("bad utf8")
	ErrUnterminated = errors.New("unterminated")
	ErrDocBalance   = errors.New("imbalanced document")
	ErrBadEscape    = errors.New("bad escape")
	ErrBadUnicode   = errors.New("bad unicode")
)

type TokenizeErr struct {
	Err error
	Pos *Pos
}

func NewTokenizeErr(e error, pos *Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: pos}
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func (e *TokenizeErr) Unwrap() error {
	return e.Err
}

func UnexpectedErr(what string, pos *Pos) error {
	return fmt.Errorf("unexpected %q at %s", what, pos.String())
}

type ErrImbalancedStructure struct {
	Open, Close *Token
}

func (i *ErrImbalancedStructure) Unwrap() error {
	return ErrDocBalance
}

func (i *ErrImbalancedStructure) Error() string {
	if i.Open == nil {
		return ErrDocBalance.Error() + ": " + UnexpectedErr(string(i.Close.Bytes), i.Close.Pos).Error()
	}
	return ErrDocBalance.Error() + ": " + fmt.Sprintf("unmatched %s at %s",
		string(i.Open.Bytes), i.Open.Pos.String())
}
