package lang

import "strings"

// Calculator is an RPN engine: a value stack plus the display radix.
// The zero value is an empty calculator in decimal mode. A Calculator is
// not safe for concurrent use.
type Calculator struct {
	stack []Value
	radix Radix
}

// New returns an empty calculator.
func New() *Calculator {
	return &Calculator{}
}

// Pop removes and returns the top of the stack.
func (c *Calculator) Pop() (Value, error) {
	if len(c.stack) == 0 {
		return Value{}, ErrStackUnderflow
	}
	v := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	return v, nil
}

// Push appends v to the top of the stack.
func (c *Calculator) Push(v Value) {
	c.stack = append(c.stack, v)
}

// Apply executes op against the stack in place. A failing operation keeps
// whatever operands it already popped off the stack; nothing is pushed back.
func (c *Calculator) Apply(op Operation) error {
	switch op.Kind {
	case OpPush:
		c.Push(op.Value)
	case OpSetRadix:
		c.SetRadix(op.Radix)
	case OpAdd, OpSubtract, OpMultiply, OpDivide,
		OpBitAnd, OpBitOr, OpBitXor, OpLeftShift, OpRightShift:
		b, err := c.Pop()
		if err != nil {
			return &EvalError{Op: op, Err: err}
		}
		a, err := c.Pop()
		if err != nil {
			return &EvalError{Op: op, Err: err}
		}
		r, err := binaryFunc(op.Kind)(a, b)
		if err != nil {
			return &EvalError{Op: op, Err: err}
		}
		c.Push(r)
	case OpBitNot:
		a, err := c.Pop()
		if err != nil {
			return &EvalError{Op: op, Err: err}
		}
		c.Push(Integer(^a.Int64()))
	case OpSwap:
		b, err := c.Pop()
		if err != nil {
			return &EvalError{Op: op, Err: err}
		}
		a, err := c.Pop()
		if err != nil {
			return &EvalError{Op: op, Err: err}
		}
		c.Push(b)
		c.Push(a)
	default:
		return &EvalError{Op: op, Err: ErrInvalidOperation}
	}
	return nil
}

// ApplyAll applies ops left to right and stops at the first failure.
// Progress made before the failure stays on the stack.
func (c *Calculator) ApplyAll(ops []Operation) error {
	for _, op := range ops {
		if err := c.Apply(op); err != nil {
			return err
		}
	}
	return nil
}

// Eval applies ops to a copy of c and returns the copy. On failure it
// returns nil and c is left untouched.
func (c *Calculator) Eval(ops ...Operation) (*Calculator, error) {
	next := c.Clone()
	if err := next.ApplyAll(ops); err != nil {
		return nil, err
	}
	return next, nil
}

// Clone returns an independent copy of c.
func (c *Calculator) Clone() *Calculator {
	return &Calculator{
		stack: append([]Value(nil), c.stack...),
		radix: c.radix,
	}
}

// SetRadix changes how integers are displayed.
func (c *Calculator) SetRadix(r Radix) {
	c.radix = r
}

func (c *Calculator) Radix() Radix {
	return c.radix
}

// Stack returns a copy of the stack, bottom first.
func (c *Calculator) Stack() []Value {
	return append([]Value{}, c.stack...)
}

func (c *Calculator) Len() int {
	return len(c.stack)
}

// String renders the stack bottom to top using the active radix.
func (c *Calculator) String() string {
	parts := make([]string, len(c.stack))
	for i, v := range c.stack {
		parts[i] = v.Format(c.radix)
	}
	return strings.Join(parts, " ")
}
