package lang

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Radix selects how integers are rendered. It never affects computation.
type Radix int

const (
	Dec Radix = iota
	Hex
	Bin
)

func (r Radix) String() string {
	switch r {
	case Dec:
		return "dec"
	case Hex:
		return "hex"
	case Bin:
		return "bin"
	default:
		return fmt.Sprintf("Radix(%d)", int(r))
	}
}

// ParseRadix accepts "dec", "hex" or "bin" (case-insensitive).
func ParseRadix(s string) (Radix, error) {
	switch strings.ToLower(s) {
	case "dec":
		return Dec, nil
	case "hex":
		return Hex, nil
	case "bin":
		return Bin, nil
	}
	return Dec, fmt.Errorf("unknown radix %q (want dec, hex or bin)", s)
}

type valueKind uint8

const (
	kindInteger valueKind = iota
	kindFloat
)

// Value is a calculator operand: either an exact 64-bit integer or a
// 64-bit float. The zero Value is Integer(0).
type Value struct {
	kind valueKind
	i    int64
	f    float64
}

// Integer returns an integer Value.
func Integer(n int64) Value {
	return Value{kind: kindInteger, i: n}
}

// Float returns a floating-point Value.
func Float(f float64) Value {
	return Value{kind: kindFloat, f: f}
}

func (v Value) IsFloat() bool   { return v.kind == kindFloat }
func (v Value) IsInteger() bool { return v.kind == kindInteger }

// Int64 converts v to an integer. Floats truncate toward zero, NaN becomes
// 0 and values outside the int64 range saturate.
func (v Value) Int64() int64 {
	if v.kind == kindInteger {
		return v.i
	}
	switch {
	case math.IsNaN(v.f):
		return 0
	case v.f >= math.MaxInt64:
		return math.MaxInt64
	case v.f <= math.MinInt64:
		return math.MinInt64
	}
	return int64(v.f)
}

// Float64 converts v to a float. Integers beyond 2^53 lose precision.
func (v Value) Float64() float64 {
	if v.kind == kindFloat {
		return v.f
	}
	return float64(v.i)
}

// promote reports whether a two-operand operation on a and b runs in the
// float domain.
func promote(a, b Value) bool {
	return a.IsFloat() || b.IsFloat()
}

// Format renders v. Integers follow the radix; floats always render in
// plain decimal notation.
func (v Value) Format(r Radix) string {
	if v.kind == kindFloat {
		return formatFloat(v.f)
	}
	switch r {
	case Hex:
		return formatIntBase(v.i, 16)
	case Bin:
		return formatIntBase(v.i, 2)
	default:
		return strconv.FormatInt(v.i, 10)
	}
}

// String formats the value in decimal.
func (v Value) String() string {
	return v.Format(Dec)
}

// GoString makes test failures readable.
func (v Value) GoString() string {
	if v.kind == kindFloat {
		return "Float(" + formatFloat(v.f) + ")"
	}
	return "Integer(" + strconv.FormatInt(v.i, 10) + ")"
}

func formatIntBase(n int64, base int) string {
	neg := n < 0
	abs := uint64(n)
	if neg {
		abs = uint64(-n)
	}
	var prefix string
	switch base {
	case 16:
		prefix = "0x"
	case 2:
		prefix = "0b"
	}
	s := prefix + strconv.FormatUint(abs, base)
	if neg {
		s = "-" + s
	}
	return s
}

// formatFloat uses the shortest digits that round-trip, without an exponent.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case f == 0 && math.Signbit(f):
		return "-0"
	}
	return decimal.NewFromFloat(f).String()
}
