package lang

import (
	"errors"
	"math"
)

var (
	// ErrStackUnderflow means an operation needed more operands than the
	// stack held.
	ErrStackUnderflow = errors.New("stack underflow")
	// ErrInvalidOperation means a computation had no valid result.
	ErrInvalidOperation = errors.New("invalid operation (overflow, divide by zero, ...)")
)

// EvalError reports the operation that failed.
type EvalError struct {
	Op  Operation
	Err error
}

func (e *EvalError) Error() string {
	return e.Op.String() + ": " + e.Err.Error()
}

func (e *EvalError) Unwrap() error {
	return e.Err
}

// binaryOp computes the result of a two-operand operation. a is the left
// operand (pushed first), b the right one.
type binaryOp func(a, b Value) (Value, error)

// binaryFunc returns the computation behind a two-operand kind, or nil.
func binaryFunc(k OpKind) binaryOp {
	switch k {
	case OpAdd:
		return arithmetic(checkedAdd, func(a, b float64) float64 { return a + b })
	case OpSubtract:
		return arithmetic(checkedSub, func(a, b float64) float64 { return a - b })
	case OpMultiply:
		return arithmetic(checkedMul, func(a, b float64) float64 { return a * b })
	case OpDivide:
		return arithmetic(checkedDiv, func(a, b float64) float64 { return a / b })
	case OpBitAnd:
		return integral(func(a, b int64) (int64, bool) { return a & b, true })
	case OpBitOr:
		return integral(func(a, b int64) (int64, bool) { return a | b, true })
	case OpBitXor:
		return integral(func(a, b int64) (int64, bool) { return a ^ b, true })
	case OpLeftShift:
		return integral(checkedShl)
	case OpRightShift:
		return integral(checkedShr)
	default:
		return nil
	}
}

// arithmetic applies the promotion rule: float if either side is a float,
// checked integer arithmetic otherwise.
func arithmetic(intOp func(a, b int64) (int64, bool), floatOp func(a, b float64) float64) binaryOp {
	return func(a, b Value) (Value, error) {
		if promote(a, b) {
			return Float(floatOp(a.Float64(), b.Float64())), nil
		}
		r, ok := intOp(a.Int64(), b.Int64())
		if !ok {
			return Value{}, ErrInvalidOperation
		}
		return Integer(r), nil
	}
}

// integral forces both operands into the integer domain.
func integral(intOp func(a, b int64) (int64, bool)) binaryOp {
	return func(a, b Value) (Value, error) {
		r, ok := intOp(a.Int64(), b.Int64())
		if !ok {
			return Value{}, ErrInvalidOperation
		}
		return Integer(r), nil
	}
}

func checkedAdd(a, b int64) (int64, bool) {
	s := a + b
	return s, (a^s)&(b^s) >= 0
}

func checkedSub(a, b int64) (int64, bool) {
	d := a - b
	return d, (a^b)&(a^d) >= 0
}

func checkedMul(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	p := a * b
	return p, p/b == a
}

func checkedDiv(a, b int64) (int64, bool) {
	if b == 0 || (a == math.MinInt64 && b == -1) {
		return 0, false
	}
	return a / b, true
}

func checkedShl(a, b int64) (int64, bool) {
	if b < 0 || b > 63 {
		return 0, false
	}
	return a << uint(b), true
}

func checkedShr(a, b int64) (int64, bool) {
	if b < 0 || b > 63 {
		return 0, false
	}
	return a >> uint(b), true
}
