// Package dual implements dual numbers for forward-mode automatic differentiation.
//
// A dual number a + bϵ (with ϵ² = 0) carries a function value in its real part
// and a directional derivative in its dual part. Evaluating a function on
// x + 1ϵ yields f(x) + f'(x)ϵ, so derivatives fall out of ordinary arithmetic.
//
// Architecture:
//   - Number: immutable value type with a typed algebra (methods)
//   - Operand dispatch: Add/Sub/Mul/Div/Pow accepting Number, integer and float operands
//   - Elementary functions: Exp, Log, Sin, ... defined through the chain rule
//
// Example:
//
//	x := dual.Var(3)          // 3 + 1ϵ
//	y := x.Mul(x).AddReal(1) // x² + 1
//	fmt.Println(y)            // (10+6ϵ)
package dual

import (
	"cmp"
	"fmt"
	"math"
)

// Number is a dual number Real + Dualϵ.
//
// Real is the function value, Dual is the derivative accumulated so far.
// Ordering and equality consider only Real.
type Number struct {
	Real float64
	Dual float64
}

// New creates a dual number real + dualϵ.
func New(real, dual float64) Number {
	return Number{Real: real, Dual: dual}
}

// Const lifts a constant into a dual number with zero derivative.
func Const(v float64) Number {
	return Number{Real: v}
}

// Var seeds an independent variable: v + 1ϵ.
func Var(v float64) Number {
	return Number{Real: v, Dual: 1}
}

// Add returns x + y.
func (x Number) Add(y Number) Number {
	return Number{Real: x.Real + y.Real, Dual: x.Dual + y.Dual}
}

// Sub returns x - y.
func (x Number) Sub(y Number) Number {
	return Number{Real: x.Real - y.Real, Dual: x.Dual - y.Dual}
}

// Mul returns x * y using the product rule.
//
//	(a + bϵ)(c + dϵ) = ac + (ad + bc)ϵ
func (x Number) Mul(y Number) Number {
	return Number{
		Real: x.Real * y.Real,
		Dual: x.Real*y.Dual + x.Dual*y.Real,
	}
}

// Div returns x / y using the quotient rule.
//
//	(a + bϵ)/(c + dϵ) = a/c + ((bc - ad)/c²)ϵ
func (x Number) Div(y Number) Number {
	return Number{
		Real: x.Real / y.Real,
		Dual: (x.Dual*y.Real - x.Real*y.Dual) / (y.Real * y.Real),
	}
}

// Pow returns x**y for a dual exponent, computed as exp(y·log x).
//
//	real: a**c
//	dual: a**c · (d·ln(a) + c·b/a)
//
// A dual term whose coefficient (d or b) is zero is dropped, so a constant
// exponent never evaluates ln(a) and an unseeded base never divides by a.
// Pow is otherwise unchecked: a base with Real ≤ 0 propagates NaN. Use the
// package-level Pow for a checked variant.
func (x Number) Pow(y Number) Number {
	r := math.Pow(x.Real, y.Real)
	var d float64
	if y.Dual != 0 {
		d += y.Dual * math.Log(x.Real)
	}
	if x.Dual != 0 {
		d += y.Real * x.Dual / x.Real
	}
	return Number{Real: r, Dual: r * d}
}

// AddReal returns x + s.
func (x Number) AddReal(s float64) Number {
	return Number{Real: x.Real + s, Dual: x.Dual}
}

// SubReal returns x - s.
func (x Number) SubReal(s float64) Number {
	return Number{Real: x.Real - s, Dual: x.Dual}
}

// RSub returns s - x.
func (x Number) RSub(s float64) Number {
	return Number{Real: s - x.Real, Dual: -x.Dual}
}

// MulReal returns x * s.
func (x Number) MulReal(s float64) Number {
	return Number{Real: x.Real * s, Dual: x.Dual * s}
}

// DivReal returns x / s.
func (x Number) DivReal(s float64) Number {
	return Number{Real: x.Real / s, Dual: x.Dual / s}
}

// RDiv returns s / x.
//
//	s/(a + bϵ) = s/a + (-s·b/a²)ϵ
func (x Number) RDiv(s float64) Number {
	return Number{
		Real: s / x.Real,
		Dual: -s * x.Dual / (x.Real * x.Real),
	}
}

// PowReal returns x**p using the power rule d/dx[xⁿ] = n·xⁿ⁻¹.
//
// PowReal(x, 0) is 1 + 0ϵ for any x, including zero. A constant base stays
// constant, even where xᵖ⁻¹ is infinite.
func (x Number) PowReal(p float64) Number {
	switch p {
	case 0:
		return Number{Real: 1}
	case 1:
		return x
	}
	if x.Dual == 0 {
		return Number{Real: math.Pow(x.Real, p)}
	}
	return Number{
		Real: math.Pow(x.Real, p),
		Dual: p * math.Pow(x.Real, p-1) * x.Dual,
	}
}

// Neg returns -x.
func (x Number) Neg() Number {
	return Number{Real: -x.Real, Dual: -x.Dual}
}

// Inv returns 1/x.
func (x Number) Inv() Number {
	return x.RDiv(1)
}

// Cmp compares the real parts of x and y.
// It returns -1 if x < y, 0 if x == y and +1 if x > y.
func (x Number) Cmp(y Number) int {
	return cmp.Compare(x.Real, y.Real)
}

// Equal reports whether x and y have equal real parts.
func (x Number) Equal(y Number) bool { return x.Real == y.Real }

// Less reports whether x < y.
func (x Number) Less(y Number) bool { return x.Real < y.Real }

// LessEq reports whether x <= y.
func (x Number) LessEq(y Number) bool { return x.Real <= y.Real }

// Greater reports whether x > y.
func (x Number) Greater(y Number) bool { return x.Real > y.Real }

// GreaterEq reports whether x >= y.
func (x Number) GreaterEq(y Number) bool { return x.Real >= y.Real }

// String renders x as (a+bϵ).
func (x Number) String() string {
	return fmt.Sprintf("(%g%+gϵ)", x.Real, x.Dual)
}

// Reals returns the real parts of xs.
func Reals(xs []Number) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = x.Real
	}
	return out
}

// Duals returns the dual parts of xs.
func Duals(xs []Number) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = x.Dual
	}
	return out
}
