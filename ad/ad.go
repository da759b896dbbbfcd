// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ad turns functions written over dual numbers into differentiable
// functions.
//
// A Function evaluates the wrapped code once per input coordinate, seeding
// that coordinate's dual part with 1, and assembles the partial derivatives
// into a Jacobian. Scalar objectives expose Func and Grad, which is all the
// optim package needs, and ValueGrad, which returns both from the same
// seeded passes.
//
// Example:
//
//	import (
//	    "github.com/born-ml/dualgrad/ad"
//	    "github.com/born-ml/dualgrad/dual"
//	)
//
//	func main() {
//	    f := ad.New(ad.Multivariate(func(x []dual.Number) (dual.Number, error) {
//	        return x[0].Mul(x[1]).Add(dual.Sin(x[0])), nil
//	    }))
//
//	    g, _ := f.Grad([]float64{1, 2})   // [2 + cos 1, 1]
//	    fmt.Println(g)
//	}
package ad

import (
	"github.com/sirupsen/logrus"

	"github.com/born-ml/dualgrad/internal/ad"
	"github.com/born-ml/dualgrad/internal/dual"
	"github.com/born-ml/dualgrad/internal/parallel"
)

// Func is a vector function R^n -> R^m over dual numbers.
type Func = ad.Func

// Function is a differentiable wrapper around a Func.
type Function = ad.Function

// Option configures a Function.
type Option = ad.Option

// ParallelConfig controls fan-out of the seeded evaluation passes.
type ParallelConfig = parallel.Config

// Errors.
var (
	ErrShape     = ad.ErrShape
	ErrNotScalar = ad.ErrNotScalar
)

// New wraps fn.
func New(fn Func, opts ...Option) *Function {
	return ad.New(fn, opts...)
}

// Scalar adapts a function R^1 -> R^1.
func Scalar(fn func(x dual.Number) (dual.Number, error)) Func {
	return ad.Scalar(fn)
}

// Univariate adapts a function R^1 -> R^m.
func Univariate(fn func(x dual.Number) ([]dual.Number, error)) Func {
	return ad.Univariate(fn)
}

// Multivariate adapts a function R^n -> R^1.
func Multivariate(fn func(x []dual.Number) (dual.Number, error)) Func {
	return ad.Multivariate(fn)
}

// WithParallel evaluates seeded passes concurrently according to cfg.
//
// Example:
//
//	f := ad.New(fn, ad.WithParallel(ad.DefaultParallelConfig()))
func WithParallel(cfg ParallelConfig) Option {
	return ad.WithParallel(cfg)
}

// DefaultParallelConfig returns a parallel configuration sized to the machine.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// WithLogger sets the logger used for evaluation diagnostics.
func WithLogger(l logrus.FieldLogger) Option {
	return ad.WithLogger(l)
}
