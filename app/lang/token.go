package lang

import "fmt"

// TokenType represents the lexical class of a token.
type TokenType int

const (
	TOKEN_INTEGER TokenType = iota
	TOKEN_FLOAT
	TOKEN_OPERATOR
	TOKEN_WORD
	TOKEN_ILLEGAL
	TOKEN_EOF
)

// Token represents a single lexer token.
type Token struct {
	Type    TokenType
	Literal string
	Pos     int // byte offset in the input
}

func (t Token) String() string {
	return fmt.Sprintf("Token(%d, %q, %d)", t.Type, t.Literal, t.Pos)
}
