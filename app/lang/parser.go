package lang

import (
	"fmt"
	"strconv"
)

// ParseError reports a token that is neither an operator nor a number.
type ParseError struct {
	Token string
	Pos   int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse token: %s", e.Token)
}

// Parse converts tokens into operations. It stops at the first bad token.
func Parse(tokens []Token) ([]Operation, error) {
	ops := make([]Operation, 0, len(tokens))
	for _, t := range tokens {
		if t.Type == TOKEN_EOF {
			break
		}
		op, err := parseToken(t)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// ParseLine lexes and parses a single line. A blank line yields no operations.
func ParseLine(line string) ([]Operation, error) {
	return Parse(Lex(line))
}

func parseToken(t Token) (Operation, error) {
	bad := &ParseError{Token: t.Literal, Pos: t.Pos}
	switch t.Type {
	case TOKEN_OPERATOR:
		return Op(operators[t.Literal]), nil
	case TOKEN_WORD:
		return words[t.Literal], nil
	case TOKEN_INTEGER:
		n, err := strconv.ParseInt(t.Literal, 10, 64)
		if err != nil {
			return Operation{}, bad
		}
		return Push(Integer(n)), nil
	case TOKEN_FLOAT:
		f, err := strconv.ParseFloat(t.Literal, 64)
		if err != nil {
			return Operation{}, bad
		}
		return Push(Float(f)), nil
	default:
		return Operation{}, bad
	}
}
