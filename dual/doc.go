// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dual provides dual numbers for forward-mode automatic differentiation.
//
// # Overview
//
// A dual number a + bϵ (with ϵ² = 0) carries a value a together with a
// derivative b. Arithmetic on dual numbers propagates derivatives exactly:
//
//	(a + bϵ)(c + dϵ) = ac + (ad + bc)ϵ
//
// Seeding an input with dual part 1 and evaluating a function therefore yields
// f(x) in the real part and f'(x) in the dual part.
//
// # Basic Usage
//
//	import "github.com/born-ml/dualgrad/dual"
//
//	func main() {
//	    x := dual.Var(2)                 // 2 + 1ϵ
//	    y := x.Mul(x).Add(dual.Sin(x))   // x² + sin x
//	    fmt.Println(y.Real, y.Dual)      // 4.909..., 3.583...
//	}
//
// # Mixed Operands
//
// The typed methods (Add, Mul, PowReal, ...) cover the common cases. When
// operands come in as arbitrary values, the dynamic helpers accept any
// combination of Number and Go integer or float types and reject everything
// else with an *OperandError:
//
//	y, err := dual.Mul(3, dual.Var(2))   // 6 + 3ϵ
//	_, err = dual.Add("1", dual.Var(2))  // errors.Is(err, dual.ErrUnsupportedOperand)
//
// # Elementary Functions
//
// Exp, Sin, Cos, Tan, Atan, Logistic, Sinh, Cosh and Tanh accept any input.
// Log, Ln, Sqrt, Asin, Acos and Abs validate their domain first and return a
// *DomainError (matching ErrDomain) for inputs outside it.
package dual
