package lang

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestSessionBasic(t *testing.T) {
	s := NewSession(WithLogger(zaptest.NewLogger(t)))
	require.Equal(t, Transactional, s.Mode())
	require.Equal(t, " | ", s.Prompt())

	res := s.EvalLine("1 2 +")
	require.Equal(t, EvalResult{Text: "3"}, res)
	require.Equal(t, "3 | ", s.Prompt())

	res = s.EvalLine("4.5")
	require.Equal(t, EvalResult{Text: "3 4.5"}, res)
}

func TestSessionTransactional(t *testing.T) {
	s := NewSession(WithLogger(zaptest.NewLogger(t)))
	s.EvalLine("10 20")

	res := s.EvalLine("+ 5 0 /")
	require.True(t, res.IsErr)
	require.Equal(t, "/: invalid operation (overflow, divide by zero, ...)", res.Text)
	require.Equal(t, []Value{Integer(10), Integer(20)}, s.Calculator().Stack())

	res = s.EvalLine("+ +")
	require.True(t, res.IsErr)
	require.Equal(t, "+: stack underflow", res.Text)
	require.Equal(t, []Value{Integer(10), Integer(20)}, s.Calculator().Stack())
}

func TestSessionInPlace(t *testing.T) {
	s := NewSession(WithMode(InPlace), WithLogger(zaptest.NewLogger(t)))
	require.Equal(t, InPlace, s.Mode())
	s.EvalLine("10 20")

	res := s.EvalLine("+ 5 0 /")
	require.True(t, res.IsErr)
	require.Equal(t, []Value{Integer(30)}, s.Calculator().Stack())

	res = s.EvalLine("+")
	require.True(t, res.IsErr)
	require.Empty(t, s.Calculator().Stack())
}

func TestSessionModesAgreeOnSuccess(t *testing.T) {
	lines := []string{"1 2", "+ 3.5 *", "hex 255", "swap", "7 3 & 1 <<"}
	a := NewSession()
	b := NewSession(WithMode(InPlace))
	for _, line := range lines {
		ra, rb := a.EvalLine(line), b.EvalLine(line)
		require.False(t, ra.IsErr, line)
		require.Equal(t, ra, rb, line)
	}
	require.Equal(t, a.Calculator().Stack(), b.Calculator().Stack())
}

func TestSessionParseErrorKeepsState(t *testing.T) {
	for _, mode := range []Mode{Transactional, InPlace} {
		s := NewSession(WithMode(mode))
		s.EvalLine("1 2")
		res := s.EvalLine("+ oops")
		require.Equal(t, EvalResult{Text: "failed to parse token: oops", IsErr: true}, res, mode.String())
		require.Equal(t, []Value{Integer(1), Integer(2)}, s.Calculator().Stack(), mode.String())
	}
}

func TestSessionCommentsAndBlanks(t *testing.T) {
	s := NewSession()
	s.EvalLine("5")
	require.Equal(t, EvalResult{Text: "5"}, s.EvalLine(""))
	require.Equal(t, EvalResult{Text: "5"}, s.EvalLine("   "))
	require.Equal(t, EvalResult{Text: "5"}, s.EvalLine("# 1 2 +"))
	require.Equal(t, []Value{Integer(5)}, s.Calculator().Stack())
}

func TestSessionRadix(t *testing.T) {
	s := NewSession(WithRadix(Hex))
	require.Equal(t, EvalResult{Text: "0xff"}, s.EvalLine("255"))
	require.Equal(t, EvalResult{Text: "255"}, s.EvalLine("dec"))
	require.Equal(t, EvalResult{Text: "0b11111111"}, s.EvalLine("bin"))
}

func TestSessionReset(t *testing.T) {
	s := NewSession(WithRadix(Bin))
	s.EvalLine("1 2 3")
	s.Reset()
	require.Zero(t, s.Calculator().Len())
	require.Equal(t, Bin, s.Calculator().Radix())
}

func TestSessionSnapshotIsIsolated(t *testing.T) {
	s := NewSession()
	s.EvalLine("1")
	snap := s.Calculator()
	snap.Push(Integer(2))
	require.Equal(t, "1", s.EvalLine("").Text)
}

func TestSessionIDs(t *testing.T) {
	require.NotEqual(t, NewSession().ID(), NewSession().ID())
}

func TestSessionEvalLines(t *testing.T) {
	s := NewSession()
	results := s.EvalLines([]string{"6 2", "/", "0 /", "swap"})
	require.Equal(t, []EvalResult{
		{Text: "6 2"},
		{Text: "3"},
		{Text: "/: invalid operation (overflow, divide by zero, ...)", IsErr: true},
		{Text: "swap: stack underflow", IsErr: true},
	}, results)
	require.Equal(t, "3", s.Calculator().String())
}
