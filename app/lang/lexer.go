package lang

// Lex splits a line into whitespace-separated tokens and classifies each.
// The result always ends with a TOKEN_EOF token.
func Lex(input string) []Token {
	var tokens []Token
	i := 0
	for i < len(input) {
		if isSpace(input[i]) {
			i++
			continue
		}
		start := i
		for i < len(input) && !isSpace(input[i]) {
			i++
		}
		lit := input[start:i]
		tokens = append(tokens, Token{Type: classify(lit), Literal: lit, Pos: start})
	}
	tokens = append(tokens, Token{Type: TOKEN_EOF, Literal: "", Pos: i})
	return tokens
}

var operators = map[string]OpKind{
	"+":  OpAdd,
	"-":  OpSubtract,
	"*":  OpMultiply,
	"/":  OpDivide,
	"&":  OpBitAnd,
	"|":  OpBitOr,
	"^":  OpBitXor,
	"~":  OpBitNot,
	"<<": OpLeftShift,
	">>": OpRightShift,
}

var words = map[string]Operation{
	"swap": Op(OpSwap),
	"dec":  SetRadix(Dec),
	"hex":  SetRadix(Hex),
	"bin":  SetRadix(Bin),
}

func classify(lit string) TokenType {
	if _, ok := operators[lit]; ok {
		return TOKEN_OPERATOR
	}
	if _, ok := words[lit]; ok {
		return TOKEN_WORD
	}
	// [0-9]+ or [0-9]+\.[0-9]+
	i := scanDigits(lit, 0)
	switch {
	case i == 0:
		return TOKEN_ILLEGAL
	case i == len(lit):
		return TOKEN_INTEGER
	case lit[i] == '.':
		j := scanDigits(lit, i+1)
		if j > i+1 && j == len(lit) {
			return TOKEN_FLOAT
		}
	}
	return TOKEN_ILLEGAL
}

// scanDigits returns the offset of the first non-digit at or after start.
func scanDigits(s string, start int) int {
	i := start
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return i
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' || ch == '\v' || ch == '\f'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
