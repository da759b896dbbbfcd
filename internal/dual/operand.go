package dual

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Scalar is the set of plain numeric types accepted as operands.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Lift converts a plain scalar into a constant dual number.
func Lift[T Scalar](v T) Number {
	return Number{Real: float64(v)}
}

// Op identifies an arithmetic operation for dynamic dispatch.
type Op int

// Supported operations.
const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpPow
	OpCompare
)

// String returns the operator symbol.
func (op Op) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpPow:
		return "**"
	case OpCompare:
		return "compare"
	default:
		return "unknown"
	}
}

// operandKind tags the three accepted operand variants.
type operandKind int

const (
	kindInvalid operandKind = iota
	kindDual
	kindInt
	kindFloat
)

// operand classifies v and converts it to a Number.
func operand(v any) (Number, operandKind) {
	switch v := v.(type) {
	case Number:
		return v, kindDual
	case int:
		return Lift(v), kindInt
	case int8:
		return Lift(v), kindInt
	case int16:
		return Lift(v), kindInt
	case int32:
		return Lift(v), kindInt
	case int64:
		return Lift(v), kindInt
	case uint:
		return Lift(v), kindInt
	case uint8:
		return Lift(v), kindInt
	case uint16:
		return Lift(v), kindInt
	case uint32:
		return Lift(v), kindInt
	case uint64:
		return Lift(v), kindInt
	case float32:
		return Lift(v), kindFloat
	case float64:
		return Lift(v), kindFloat
	}
	return Number{}, kindInvalid
}

// Apply evaluates lhs op rhs where each side is a Number, an integer or a float.
//
// Either side may hold the Number, so reflected forms such as 2 - x and
// 2 / x are computed directly rather than by swapping operands. Any other
// operand type yields an *OperandError.
func Apply(op Op, lhs, rhs any) (Number, error) {
	x, xk := operand(lhs)
	if xk == kindInvalid {
		return Number{}, &OperandError{Op: op, Operand: lhs, Left: true}
	}
	y, yk := operand(rhs)
	if yk == kindInvalid {
		return Number{}, &OperandError{Op: op, Operand: rhs}
	}

	switch op {
	case OpAdd:
		switch {
		case yk != kindDual:
			return x.AddReal(y.Real), nil
		case xk != kindDual:
			return y.AddReal(x.Real), nil
		}
		return x.Add(y), nil
	case OpSub:
		switch {
		case yk != kindDual:
			return x.SubReal(y.Real), nil
		case xk != kindDual:
			return y.RSub(x.Real), nil
		}
		return x.Sub(y), nil
	case OpMul:
		switch {
		case yk != kindDual:
			return x.MulReal(y.Real), nil
		case xk != kindDual:
			return y.MulReal(x.Real), nil
		}
		return x.Mul(y), nil
	case OpDiv:
		switch {
		case yk != kindDual:
			return x.DivReal(y.Real), nil
		case xk != kindDual:
			return y.RDiv(x.Real), nil
		}
		return x.Div(y), nil
	case OpPow:
		return pow(x, y, yk == kindDual)
	}
	return Number{}, fmt.Errorf("dual: unknown operation %d", int(op))
}

// pow raises x to y. A dual exponent goes through exp(y·log x) and requires
// a positive base; a constant exponent uses the power rule.
func pow(x, y Number, dualExponent bool) (Number, error) {
	if !dualExponent {
		return x.PowReal(y.Real), nil
	}
	if x.Real <= 0 {
		return Number{}, &DomainError{Func: "pow", Input: x.Real, Domain: "base > 0"}
	}
	return x.Pow(y), nil
}

// Add returns lhs + rhs. See Apply.
func Add(lhs, rhs any) (Number, error) { return Apply(OpAdd, lhs, rhs) }

// Sub returns lhs - rhs. See Apply.
func Sub(lhs, rhs any) (Number, error) { return Apply(OpSub, lhs, rhs) }

// Mul returns lhs * rhs. See Apply.
func Mul(lhs, rhs any) (Number, error) { return Apply(OpMul, lhs, rhs) }

// Div returns lhs / rhs. See Apply.
func Div(lhs, rhs any) (Number, error) { return Apply(OpDiv, lhs, rhs) }

// Pow returns lhs ** rhs. See Apply.
//
// A Number exponent requires a base whose real part is positive; otherwise
// a *DomainError is returned.
func Pow(lhs, rhs any) (Number, error) { return Apply(OpPow, lhs, rhs) }

// Compare compares the real parts of lhs and rhs, where plain scalars are
// treated as real parts. It returns -1, 0 or +1 as Number.Cmp does.
func Compare(lhs, rhs any) (int, error) {
	x, xk := operand(lhs)
	if xk == kindInvalid {
		return 0, &OperandError{Op: OpCompare, Operand: lhs, Left: true}
	}
	y, yk := operand(rhs)
	if yk == kindInvalid {
		return 0, &OperandError{Op: OpCompare, Operand: rhs}
	}
	return x.Cmp(y), nil
}
