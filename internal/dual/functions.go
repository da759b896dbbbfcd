package dual

import "math"

// Each function maps a + bϵ to f(a) + f'(a)·bϵ. Functions with a restricted
// domain check the real part first and return a *DomainError without
// computing a derivative.

// Exp returns e**x.
//
//	d/dx e^x = e^x
func Exp(x Number) Number {
	e := math.Exp(x.Real)
	return Number{Real: e, Dual: x.Dual * e}
}

// Log returns the base-b logarithm of x.
//
//	d/dx log_b(x) = 1/(x·ln b)
//
// x must have a positive real part; base must be positive and not 1.
func Log(x Number, base float64) (Number, error) {
	if x.Real <= 0 {
		return Number{}, &DomainError{Func: "log", Input: x.Real, Domain: "x > 0"}
	}
	if base <= 0 || base == 1 {
		return Number{}, &DomainError{Func: "log", Input: base, Domain: "base > 0, base != 1"}
	}
	lnb := math.Log(base)
	return Number{
		Real: math.Log(x.Real) / lnb,
		Dual: x.Dual / (x.Real * lnb),
	}, nil
}

// Ln returns the natural logarithm of x.
func Ln(x Number) (Number, error) {
	if x.Real <= 0 {
		return Number{}, &DomainError{Func: "ln", Input: x.Real, Domain: "x > 0"}
	}
	return Number{Real: math.Log(x.Real), Dual: x.Dual / x.Real}, nil
}

// Sqrt returns the square root of x.
//
//	d/dx √x = 1/(2√x)
//
// Sqrt(0 + bϵ) has an infinite dual part when b != 0 and a zero one otherwise.
func Sqrt(x Number) (Number, error) {
	if x.Real < 0 {
		return Number{}, &DomainError{Func: "sqrt", Input: x.Real, Domain: "x >= 0"}
	}
	s := math.Sqrt(x.Real)
	if x.Dual == 0 {
		return Number{Real: s}, nil
	}
	return Number{Real: s, Dual: x.Dual / (2 * s)}, nil
}

// Sin returns the sine of x.
func Sin(x Number) Number {
	return Number{Real: math.Sin(x.Real), Dual: x.Dual * math.Cos(x.Real)}
}

// Cos returns the cosine of x.
func Cos(x Number) Number {
	return Number{Real: math.Cos(x.Real), Dual: -x.Dual * math.Sin(x.Real)}
}

// Tan returns the tangent of x.
//
//	d/dx tan x = 1 + tan²x
func Tan(x Number) Number {
	t := math.Tan(x.Real)
	return Number{Real: t, Dual: x.Dual * (1 + t*t)}
}

// Asin returns the arcsine of x. |x| must be below 1.
//
//	d/dx asin x = 1/√(1-x²)
func Asin(x Number) (Number, error) {
	if math.Abs(x.Real) >= 1 {
		return Number{}, &DomainError{Func: "asin", Input: x.Real, Domain: "|x| < 1"}
	}
	return Number{
		Real: math.Asin(x.Real),
		Dual: x.Dual / math.Sqrt(1-x.Real*x.Real),
	}, nil
}

// Acos returns the arccosine of x. |x| must be below 1.
//
//	d/dx acos x = -1/√(1-x²)
func Acos(x Number) (Number, error) {
	if math.Abs(x.Real) >= 1 {
		return Number{}, &DomainError{Func: "acos", Input: x.Real, Domain: "|x| < 1"}
	}
	return Number{
		Real: math.Acos(x.Real),
		Dual: -x.Dual / math.Sqrt(1-x.Real*x.Real),
	}, nil
}

// Atan returns the arctangent of x.
//
//	d/dx atan x = 1/(1+x²)
func Atan(x Number) Number {
	return Number{
		Real: math.Atan(x.Real),
		Dual: x.Dual / (1 + x.Real*x.Real),
	}
}

// Logistic returns the logistic sigmoid σ(x) = 1/(1+e^-x).
//
//	d/dx σ(x) = σ(x)(1-σ(x))
func Logistic(x Number) Number {
	s := 1 / (1 + math.Exp(-x.Real))
	return Number{Real: s, Dual: x.Dual * s * (1 - s)}
}

// Sinh returns the hyperbolic sine of x.
func Sinh(x Number) Number {
	return Number{Real: math.Sinh(x.Real), Dual: x.Dual * math.Cosh(x.Real)}
}

// Cosh returns the hyperbolic cosine of x.
func Cosh(x Number) Number {
	return Number{Real: math.Cosh(x.Real), Dual: x.Dual * math.Sinh(x.Real)}
}

// Tanh returns the hyperbolic tangent of x.
//
//	d/dx tanh x = 1/cosh²x
func Tanh(x Number) Number {
	c := math.Cosh(x.Real)
	return Number{Real: math.Tanh(x.Real), Dual: x.Dual / (c * c)}
}

// Abs returns |x|. The derivative is undefined at zero, which is reported
// as a *DomainError.
func Abs(x Number) (Number, error) {
	switch {
	case x.Real > 0:
		return x, nil
	case x.Real < 0:
		return x.Neg(), nil
	}
	return Number{}, &DomainError{Func: "abs", Input: x.Real, Domain: "x != 0"}
}
