// Package optim implements gradient-based minimization of differentiable objectives.
//
// This package provides:
//   - Optimizer interface: Base interface for all update rules
//   - GD: Gradient descent with optional momentum
//   - Adam: Adaptive Moment Estimation
//   - Minimize: The iteration driver shared by all optimizers
//
// The driver only sees derivatives through Objective.Grad, or ValueGrad when
// the objective provides it. *ad.Function implements both with forward-mode
// dual numbers.
//
// Example usage:
//
//	f := ad.New(ad.Multivariate(func(x []dual.Number) (dual.Number, error) {
//	    return x[0].Mul(x[0]).Add(x[1].Mul(x[1])), nil
//	}))
//
//	res, err := optim.MinimizeAdam(f, []float64{-10, 10}, optim.AdamConfig{LR: 0.1}, optim.Settings{})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.X, res.Status)
package optim

import "github.com/sirupsen/logrus"

// Objective is a scalar-valued differentiable function.
type Objective interface {
	// Func evaluates the objective at x.
	Func(x []float64) (float64, error)

	// Grad returns the gradient at x, one entry per coordinate.
	Grad(x []float64) ([]float64, error)
}

// ValueGrader is an Objective that can return its value and gradient from
// one evaluation. Minimize prefers it over separate Func and Grad calls.
type ValueGrader interface {
	Objective

	// ValueGrad returns f(x) and ∇f(x).
	ValueGrad(x []float64) (float64, []float64, error)
}

// Optimizer is the base interface for all update rules.
//
// All optimizers must implement:
//   - Step: Apply one update to x in place
//   - Reset: Clear internal state before a new run
//   - GetLR/SetLR: Learning rate access (for monitoring/scheduling)
type Optimizer interface {
	// Step updates x in place using the gradient at x.
	Step(x, grad []float64)

	// Reset clears accumulated state and sizes it for n coordinates.
	Reset(n int)

	// GetLR returns the current learning rate.
	GetLR() float64

	// SetLR updates the learning rate.
	SetLR(lr float64)

	// Name identifies the optimizer in logs and results.
	Name() string
}

// Settings controls the iteration driver.
type Settings struct {
	MaxIter  int                // Maximum number of updates (default: 10000)
	Tol      float64            // Convergence threshold on ‖grad‖₂ (default: 1e-6)
	Logger   logrus.FieldLogger // Progress logging (default: discard)

	// Patience is the number of consecutive iterations with an unchanged
	// nonzero gradient and a growing ‖x‖ after which Minimize gives up with
	// ErrDegenerate (default: 5).
	//
	// Requiring ‖x‖ to grow keeps locally linear objectives that do have a
	// minimum, such as |x| or a Huber loss started on a linear arm, from being
	// rejected. The cost is that an affine objective is only flagged once the
	// iterate moves away from the origin: a start far out on the descent side
	// walks toward the origin first, and with a small learning rate may hit
	// MaxIter before it is recognized.
	Patience int
}

// Default settings.
const (
	DefaultMaxIter  = 10000
	DefaultTol      = 1e-6
	DefaultPatience = 5
)

func (s Settings) withDefaults() Settings {
	if s.MaxIter == 0 {
		s.MaxIter = DefaultMaxIter
	}
	if s.Tol == 0 {
		s.Tol = DefaultTol
	}
	if s.Patience == 0 {
		s.Patience = DefaultPatience
	}
	return s
}

// Status describes how a run terminated.
type Status int

// Termination statuses.
const (
	Converged      Status = iota + 1 // ‖grad‖ fell below Tol
	IterationLimit                   // MaxIter updates without convergence
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case Converged:
		return "converged"
	case IterationLimit:
		return "iteration limit"
	default:
		return "unknown"
	}
}

// Result is the outcome of a minimization run.
type Result struct {
	X          []float64 // Returned point (same length as the start)
	F          float64   // Objective value at X
	Grad       []float64 // Gradient at X
	GradNorm   float64   // ‖Grad‖₂
	Iterations int       // Number of updates applied
	Status     Status
}
