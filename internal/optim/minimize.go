package optim

import (
	"math"
	"slices"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/dualgrad/internal/logging"
)

// gradEqualTol is the absolute/relative tolerance under which two successive
// gradients count as identical.
const gradEqualTol = 1e-12

// Minimize runs opt on obj starting from x0.
//
// Each iteration evaluates the objective and its gradient, stops with status
// Converged once ‖grad‖₂ < Tol, and otherwise applies opt.Step. After MaxIter
// updates it returns the lowest-valued iterate seen with status
// IterationLimit and a nil error.
//
// If the gradient is nonzero and identical for Patience consecutive
// iterations while ‖x‖ grows at every one of them, the iterate is running
// off along an affine objective with no minimum; Minimize then fails with a
// *DegenerateError. A constant gradient that moves x toward the origin, as
// on the linear arms of |x| or a Huber loss, does not count.
//
// Objectives that also implement ValueGrader get one combined evaluation
// per iteration instead of Func followed by Grad.
//
// x0 is never modified.
func Minimize(obj Objective, x0 []float64, opt Optimizer, s Settings) (*Result, error) {
	if len(x0) == 0 {
		return nil, errors.WithStack(ErrEmptyStart)
	}
	s = s.withDefaults()
	log := logging.OrDiscard(s.Logger).WithField("optimizer", opt.Name())

	x := slices.Clone(x0)
	opt.Reset(len(x))

	var (
		best     *Result
		prev     []float64
		prevNorm float64
		repeats  int
	)
	for iter := 0; ; iter++ {
		f, g, err := evaluate(obj, x, iter)
		if err != nil {
			return nil, errors.WithMessagef(err, "optim: %s", opt.Name())
		}
		if len(g) != len(x) {
			return nil, errors.Wrapf(ErrShape, "got %d, want %d", len(g), len(x))
		}

		norm := floats.Norm(g, 2)
		if math.IsNaN(f) || math.IsInf(f, 0) || math.IsNaN(norm) || math.IsInf(norm, 0) {
			return nil, errors.Wrapf(ErrDiverged, "%s at iteration %d: f=%g, |grad|=%g", opt.Name(), iter, f, norm)
		}

		current := &Result{
			X:          slices.Clone(x),
			F:          f,
			Grad:       g,
			GradNorm:   norm,
			Iterations: iter,
		}
		if best == nil || f < best.F {
			best = current
		}

		log.WithFields(logrus.Fields{
			"iter": iter,
			"f":    f,
			"norm": norm,
		}).Debug("iterate")

		if norm < s.Tol {
			current.Status = Converged
			log.WithFields(logrus.Fields{"iter": iter, "f": f}).Info("converged")
			return current, nil
		}
		if iter >= s.MaxIter {
			best.Status = IterationLimit
			best.Iterations = iter
			log.WithFields(logrus.Fields{"iter": iter, "best_f": best.F}).Info("iteration limit reached")
			return best, nil
		}

		xNorm := floats.Norm(x, 2)
		if prev != nil && xNorm > prevNorm && floats.EqualApprox(g, prev, gradEqualTol) {
			repeats++
		} else {
			repeats = 0
		}
		if repeats >= s.Patience {
			log.WithField("iter", iter).Warn("constant gradient, objective has no minimum along the path")
			return nil, errors.WithStack(&DegenerateError{
				Iteration: iter,
				X:         slices.Clone(x),
				Grad:      g,
			})
		}
		prev, prevNorm = g, xNorm

		opt.Step(x, g)
	}
}

// evaluate returns the objective value and gradient at x, in a single pass
// when obj is a ValueGrader.
func evaluate(obj Objective, x []float64, iter int) (float64, []float64, error) {
	if vg, ok := obj.(ValueGrader); ok {
		f, g, err := vg.ValueGrad(x)
		if err != nil {
			return 0, nil, errors.Wrapf(err, "objective at iteration %d", iter)
		}
		return f, g, nil
	}

	f, err := obj.Func(x)
	if err != nil {
		return 0, nil, errors.Wrapf(err, "objective at iteration %d", iter)
	}
	g, err := obj.Grad(x)
	if err != nil {
		return 0, nil, errors.Wrapf(err, "gradient at iteration %d", iter)
	}
	return f, g, nil
}

// MinimizeGD runs gradient descent from x0.
func MinimizeGD(obj Objective, x0 []float64, cfg GDConfig, s Settings) (*Result, error) {
	return Minimize(obj, x0, NewGD(cfg), s)
}

// MinimizeAdam runs Adam from x0.
func MinimizeAdam(obj Objective, x0 []float64, cfg AdamConfig, s Settings) (*Result, error) {
	return Minimize(obj, x0, NewAdam(cfg), s)
}
