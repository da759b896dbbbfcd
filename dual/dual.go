// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package dual

import (
	"github.com/born-ml/dualgrad/internal/dual"
)

// Number is a dual number Real + Dual·ϵ.
type Number = dual.Number

// Scalar is the set of plain Go numeric types accepted as operands.
type Scalar = dual.Scalar

// Op identifies a binary operation for Apply.
type Op = dual.Op

// Binary operations.
const (
	OpAdd     = dual.OpAdd
	OpSub     = dual.OpSub
	OpMul     = dual.OpMul
	OpDiv     = dual.OpDiv
	OpPow     = dual.OpPow
	OpCompare = dual.OpCompare
)

// Errors.
var (
	ErrUnsupportedOperand = dual.ErrUnsupportedOperand
	ErrDomain             = dual.ErrDomain
)

// OperandError reports an operand that is neither a Number nor a plain number.
type OperandError = dual.OperandError

// DomainError reports an input outside an elementary function's domain.
type DomainError = dual.DomainError

// New returns real + dual·ϵ.
func New(real, d float64) Number { return dual.New(real, d) }

// Const returns a constant (zero dual part).
func Const(v float64) Number { return dual.Const(v) }

// Var returns an independent variable seeded with dual part 1.
func Var(v float64) Number { return dual.Var(v) }

// Lift converts a plain number to a constant dual number.
func Lift[T Scalar](v T) Number { return dual.Lift(v) }

// Reals returns the real parts of xs.
func Reals(xs []Number) []float64 { return dual.Reals(xs) }

// Duals returns the dual parts of xs.
func Duals(xs []Number) []float64 { return dual.Duals(xs) }

// Dynamic operations

// Apply performs op on two operands of any supported kind.
func Apply(op Op, lhs, rhs any) (Number, error) { return dual.Apply(op, lhs, rhs) }

// Add returns lhs + rhs.
func Add(lhs, rhs any) (Number, error) { return dual.Add(lhs, rhs) }

// Sub returns lhs - rhs.
func Sub(lhs, rhs any) (Number, error) { return dual.Sub(lhs, rhs) }

// Mul returns lhs * rhs.
func Mul(lhs, rhs any) (Number, error) { return dual.Mul(lhs, rhs) }

// Div returns lhs / rhs.
func Div(lhs, rhs any) (Number, error) { return dual.Div(lhs, rhs) }

// Pow returns lhs ** rhs. A dual exponent requires a positive base.
func Pow(lhs, rhs any) (Number, error) { return dual.Pow(lhs, rhs) }

// Compare compares the real parts of lhs and rhs.
func Compare(lhs, rhs any) (int, error) { return dual.Compare(lhs, rhs) }

// Elementary functions

// Exp returns e**x.
func Exp(x Number) Number { return dual.Exp(x) }

// Log returns the logarithm of x in the given base.
func Log(x Number, base float64) (Number, error) { return dual.Log(x, base) }

// Ln returns the natural logarithm of x.
func Ln(x Number) (Number, error) { return dual.Ln(x) }

// Sqrt returns the square root of x.
func Sqrt(x Number) (Number, error) { return dual.Sqrt(x) }

// Sin returns the sine of x.
func Sin(x Number) Number { return dual.Sin(x) }

// Cos returns the cosine of x.
func Cos(x Number) Number { return dual.Cos(x) }

// Tan returns the tangent of x.
func Tan(x Number) Number { return dual.Tan(x) }

// Asin returns the arcsine of x.
func Asin(x Number) (Number, error) { return dual.Asin(x) }

// Acos returns the arccosine of x.
func Acos(x Number) (Number, error) { return dual.Acos(x) }

// Atan returns the arctangent of x.
func Atan(x Number) Number { return dual.Atan(x) }

// Logistic returns 1 / (1 + e**-x).
func Logistic(x Number) Number { return dual.Logistic(x) }

// Sinh returns the hyperbolic sine of x.
func Sinh(x Number) Number { return dual.Sinh(x) }

// Cosh returns the hyperbolic cosine of x.
func Cosh(x Number) Number { return dual.Cosh(x) }

// Tanh returns the hyperbolic tangent of x.
func Tanh(x Number) Number { return dual.Tanh(x) }

// Abs returns |x|.
func Abs(x Number) (Number, error) { return dual.Abs(x) }
