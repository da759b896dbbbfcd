// Package ad wraps plain functions of dual numbers into differentiable functions.
//
// A Function evaluates its Func in one of two modes:
//   - Value mode: every input has a zero dual part, outputs are unwrapped to float64
//   - Seeded mode: input j carries dual part 1 (standard basis seeding), so the
//     dual parts of the outputs form column j of the Jacobian
//
// An n-dimensional input therefore costs n seeded evaluations. They are
// independent and can be fanned out with WithParallel.
//
// Example:
//
//	f := ad.New(ad.Multivariate(func(x []dual.Number) (dual.Number, error) {
//	    return x[0].Mul(x[1]), nil
//	}))
//	g, _ := f.Grad([]float64{2, 3}) // [3 2]
package ad

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/dualgrad/internal/dual"
	"github.com/born-ml/dualgrad/internal/logging"
	"github.com/born-ml/dualgrad/internal/parallel"
)

// Func is a function R^n -> R^m over dual numbers.
//
// Implementations must not retain or modify x.
type Func func(x []dual.Number) ([]dual.Number, error)

// Scalar adapts a function R^1 -> R^1.
func Scalar(fn func(x dual.Number) (dual.Number, error)) Func {
	return func(x []dual.Number) ([]dual.Number, error) {
		if len(x) != 1 {
			return nil, fmt.Errorf("%w: scalar function called with %d inputs", ErrShape, len(x))
		}
		y, err := fn(x[0])
		if err != nil {
			return nil, err
		}
		return []dual.Number{y}, nil
	}
}

// Univariate adapts a function R^1 -> R^m.
func Univariate(fn func(x dual.Number) ([]dual.Number, error)) Func {
	return func(x []dual.Number) ([]dual.Number, error) {
		if len(x) != 1 {
			return nil, fmt.Errorf("%w: univariate function called with %d inputs", ErrShape, len(x))
		}
		return fn(x[0])
	}
}

// Multivariate adapts a scalar-valued function R^n -> R^1.
func Multivariate(fn func(x []dual.Number) (dual.Number, error)) Func {
	return func(x []dual.Number) ([]dual.Number, error) {
		y, err := fn(x)
		if err != nil {
			return nil, err
		}
		return []dual.Number{y}, nil
	}
}

// Function is a differentiable function built from a Func.
type Function struct {
	fn       Func
	parallel parallel.Config
	logger   logrus.FieldLogger
}

// Option configures a Function.
type Option func(*Function)

// WithParallel evaluates seeded passes concurrently according to cfg.
func WithParallel(cfg parallel.Config) Option {
	return func(f *Function) {
		f.parallel = cfg
	}
}

// WithLogger sets the logger used for debug tracing.
func WithLogger(l logrus.FieldLogger) Option {
	return func(f *Function) {
		f.logger = l
	}
}

// New creates a differentiable Function from fn.
// Seeded passes run sequentially unless WithParallel is given.
func New(fn Func, opts ...Option) *Function {
	f := &Function{fn: fn}
	for _, opt := range opts {
		opt(f)
	}
	f.logger = logging.OrDiscard(f.logger)
	return f
}

// Value evaluates the function at x and returns plain outputs.
func (f *Function) Value(x []float64) ([]float64, error) {
	out, err := f.eval(x, -1)
	if err != nil {
		return nil, err
	}
	return dual.Reals(out), nil
}

// Func evaluates a scalar-valued function at x.
func (f *Function) Func(x []float64) (float64, error) {
	out, err := f.Value(x)
	if err != nil {
		return 0, err
	}
	if len(out) != 1 {
		return 0, fmt.Errorf("%w: function has %d outputs", ErrNotScalar, len(out))
	}
	return out[0], nil
}

// Jacobian returns the m×n matrix of partial derivatives ∂f_i/∂x_j at x.
// Row i is the gradient of output i.
func (f *Function) Jacobian(x []float64) (*mat.Dense, error) {
	jac, _, err := f.jacobian(x)
	return jac, err
}

// Grad returns the gradient of a scalar-valued function at x, in input order.
func (f *Function) Grad(x []float64) ([]float64, error) {
	_, g, err := f.ValueGrad(x)
	return g, err
}

// ValueGrad returns the value and gradient of a scalar-valued function at x.
// The value is read off the first seeded pass, so no extra evaluation is
// needed.
func (f *Function) ValueGrad(x []float64) (float64, []float64, error) {
	jac, value, err := f.jacobian(x)
	if err != nil {
		return 0, nil, err
	}
	if len(value) != 1 {
		return 0, nil, fmt.Errorf("%w: function has %d outputs", ErrNotScalar, len(value))
	}
	return value[0], mat.Row(nil, 0, jac), nil
}

// jacobian runs the n seeded passes and returns the Jacobian together with
// the function value at x.
func (f *Function) jacobian(x []float64) (*mat.Dense, []float64, error) {
	n := len(x)
	if n == 0 {
		return nil, nil, fmt.Errorf("%w: empty input", ErrShape)
	}

	cols := make([][]dual.Number, n)
	err := parallel.For(n, func(j int) error {
		out, err := f.eval(x, j)
		if err != nil {
			return fmt.Errorf("ad: seeded pass %d: %w", j, err)
		}
		cols[j] = out
		return nil
	}, f.parallel)
	if err != nil {
		return nil, nil, err
	}

	m := len(cols[0])
	jac := mat.NewDense(m, n, nil)
	for j, out := range cols {
		if len(out) != m {
			return nil, nil, fmt.Errorf("%w: seeded pass %d returned %d outputs, want %d", ErrShape, j, len(out), m)
		}
		for i, y := range out {
			jac.Set(i, j, y.Dual)
		}
	}

	f.logger.WithFields(logrus.Fields{
		"inputs":  n,
		"outputs": m,
	}).Debug("jacobian evaluated")
	return jac, dual.Reals(cols[0]), nil
}

// Derivative returns the derivative of every output with respect to a
// scalar input x. A function R^1 -> R^1 yields a single value.
func (f *Function) Derivative(x float64) ([]float64, error) {
	jac, err := f.Jacobian([]float64{x})
	if err != nil {
		return nil, err
	}
	return mat.Col(nil, 0, jac), nil
}

// eval runs fn on a private copy of x. When seed >= 0 that coordinate gets
// dual part 1.
func (f *Function) eval(x []float64, seed int) ([]dual.Number, error) {
	if len(x) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrShape)
	}
	in := make([]dual.Number, len(x))
	for i, v := range x {
		in[i] = dual.Const(v)
	}
	if seed >= 0 {
		in[seed].Dual = 1
	}

	out, err := f.fn(in)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: function returned no outputs", ErrShape)
	}
	return out, nil
}
