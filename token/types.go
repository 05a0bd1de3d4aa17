package token

import "fmt"

type TokenType int

const (
	TLParen TokenType = iota
	TRParen
	TIdent
	TNumber
	TString
	TComment
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TLParen:  "TLParen",
		TRParen:  "TRParen",
		TIdent:   "TIdent",
		TNumber:  "TNumber",
		TString:  "TString",
		TComment: "TComment",
	}[t]
}

type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

// String returns the token text.  For TString the surrounding quotes are
// removed but escapes are kept as written.
func (t *Token) String() string {
	if t.Type == TString && len(t.Bytes) >= 2 {
		return string(t.Bytes[1 : len(t.Bytes)-1])
	}
	return string(t.Bytes)
}
