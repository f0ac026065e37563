package lang

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLex(t *testing.T) {
	tokens := Lex("  12 3.5\t<< swap x.1 ")
	require.Equal(t, []Token{
		{Type: TOKEN_INTEGER, Literal: "12", Pos: 2},
		{Type: TOKEN_FLOAT, Literal: "3.5", Pos: 5},
		{Type: TOKEN_OPERATOR, Literal: "<<", Pos: 9},
		{Type: TOKEN_WORD, Literal: "swap", Pos: 12},
		{Type: TOKEN_ILLEGAL, Literal: "x.1", Pos: 17},
		{Type: TOKEN_EOF, Literal: "", Pos: 21},
	}, tokens)

	require.Equal(t, []Token{{Type: TOKEN_EOF}}, Lex(""))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		lit  string
		want TokenType
	}{
		{"0", TOKEN_INTEGER},
		{"007", TOKEN_INTEGER},
		{"16.0", TOKEN_FLOAT},
		{"0.25", TOKEN_FLOAT},
		{"16.", TOKEN_ILLEGAL},
		{".5", TOKEN_ILLEGAL},
		{"1.2.3", TOKEN_ILLEGAL},
		{"-1", TOKEN_ILLEGAL},
		{"0xff", TOKEN_ILLEGAL},
		{"1e3", TOKEN_ILLEGAL},
		{"13x213!", TOKEN_ILLEGAL},
		{"<", TOKEN_ILLEGAL},
		{">>", TOKEN_OPERATOR},
		{"~", TOKEN_OPERATOR},
		{"hex", TOKEN_WORD},
		{"HEX", TOKEN_ILLEGAL},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, classify(tt.lit), tt.lit)
	}
}

func TestParseSingle(t *testing.T) {
	tests := []struct {
		input string
		want  Operation
	}{
		{"+", Op(OpAdd)},
		{"-", Op(OpSubtract)},
		{"*", Op(OpMultiply)},
		{"/", Op(OpDivide)},
		{"&", Op(OpBitAnd)},
		{"|", Op(OpBitOr)},
		{"^", Op(OpBitXor)},
		{"~", Op(OpBitNot)},
		{"<<", Op(OpLeftShift)},
		{">>", Op(OpRightShift)},
		{"swap", Op(OpSwap)},
		{"dec", SetRadix(Dec)},
		{"hex", SetRadix(Hex)},
		{"bin", SetRadix(Bin)},
		{"16", Push(Integer(16))},
		{"16.0", Push(Float(16))},
		{"9223372036854775807", Push(Integer(9223372036854775807))},
	}
	for _, tt := range tests {
		ops, err := ParseLine(tt.input)
		require.NoError(t, err, tt.input)
		require.Equal(t, []Operation{tt.want}, ops, tt.input)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		token string
		pos   int
	}{
		{"13x213!", "13x213!", 0},
		{"1 2 xxzz! 3", "xxzz!", 4},
		{"9223372036854775808", "9223372036854775808", 0},
		{"1 2 + =", "=", 6},
		{strings.Repeat("9", 400) + ".0", strings.Repeat("9", 400) + ".0", 0},
	}
	for _, tt := range tests {
		ops, err := ParseLine(tt.input)
		require.Nil(t, ops)
		var perr *ParseError
		require.ErrorAs(t, err, &perr, tt.input)
		require.Equal(t, tt.token, perr.Token)
		require.Equal(t, tt.pos, perr.Pos)
		require.Equal(t, "failed to parse token: "+tt.token, err.Error())
	}
}

func TestParseMultiple(t *testing.T) {
	ops, err := ParseLine("")
	require.NoError(t, err)
	require.Empty(t, ops)

	ops, err = ParseLine("1 2 +")
	require.NoError(t, err)
	require.Equal(t, []Operation{Push(Integer(1)), Push(Integer(2)), Op(OpAdd)}, ops)

	ops, err = ParseLine("255 hex 1.5 swap")
	require.NoError(t, err)
	require.Equal(t, []Operation{Push(Integer(255)), SetRadix(Hex), Push(Float(1.5)), Op(OpSwap)}, ops)
}
