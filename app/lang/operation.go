package lang

import "fmt"

// OpKind identifies one calculator action.
type OpKind uint8

const (
	OpPush OpKind = iota
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
	OpBitAnd
	OpBitOr
	OpBitXor
	OpBitNot
	OpLeftShift
	OpRightShift
	OpSwap
	OpSetRadix
)

// String returns the token that produces the operation.
func (k OpKind) String() string {
	switch k {
	case OpPush:
		return "push"
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "*"
	case OpDivide:
		return "/"
	case OpBitAnd:
		return "&"
	case OpBitOr:
		return "|"
	case OpBitXor:
		return "^"
	case OpBitNot:
		return "~"
	case OpLeftShift:
		return "<<"
	case OpRightShift:
		return ">>"
	case OpSwap:
		return "swap"
	case OpSetRadix:
		return "radix"
	default:
		return fmt.Sprintf("OpKind(%d)", uint8(k))
	}
}

// Operation is pure data describing one action. Value is only meaningful
// for OpPush and Radix only for OpSetRadix.
type Operation struct {
	Kind  OpKind
	Value Value
	Radix Radix
}

// Push returns an operation that pushes v.
func Push(v Value) Operation {
	return Operation{Kind: OpPush, Value: v}
}

// SetRadix returns an operation that selects the display radix.
func SetRadix(r Radix) Operation {
	return Operation{Kind: OpSetRadix, Radix: r}
}

// Op returns a parameterless operation of the given kind.
func Op(k OpKind) Operation {
	return Operation{Kind: k}
}

func (op Operation) String() string {
	switch op.Kind {
	case OpPush:
		return op.Value.String()
	case OpSetRadix:
		return op.Radix.String()
	default:
		return op.Kind.String()
	}
}
