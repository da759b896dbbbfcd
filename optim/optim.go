// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/born-ml/dualgrad/internal/optim"
)

// Objective is a scalar-valued differentiable function. *ad.Function
// implements it.
type Objective = optim.Objective

// ValueGrader is an Objective that returns its value and gradient from one
// evaluation. *ad.Function implements it.
type ValueGrader = optim.ValueGrader

// Optimizer interface defines the common interface for all optimizers.
type Optimizer = optim.Optimizer

// Settings controls the iteration driver.
type Settings = optim.Settings

// Result is the outcome of a minimization run.
type Result = optim.Result

// Status describes how a run terminated.
type Status = optim.Status

// Termination statuses.
const (
	Converged      = optim.Converged
	IterationLimit = optim.IterationLimit
)

// Default settings.
const (
	DefaultMaxIter  = optim.DefaultMaxIter
	DefaultTol      = optim.DefaultTol
	DefaultPatience = optim.DefaultPatience
)

// Errors.
var (
	ErrDegenerate = optim.ErrDegenerate
	ErrDiverged   = optim.ErrDiverged
	ErrEmptyStart = optim.ErrEmptyStart
	ErrShape      = optim.ErrShape
)

// DegenerateError reports an objective with a constant nonzero gradient
// along which the iterate runs away from the origin.
type DegenerateError = optim.DegenerateError

// GD (Gradient Descent)

// GD represents gradient descent with optional momentum.
type GD = optim.GD

// GDConfig contains configuration for gradient descent.
type GDConfig = optim.GDConfig

// NewGD creates a new gradient descent optimizer.
//
// Example:
//
//	optimizer := optim.NewGD(optim.GDConfig{
//	    LR:       0.01,
//	    Momentum: 0.9,
//	})
func NewGD(config GDConfig) *GD {
	return optim.NewGD(config)
}

// Adam (Adaptive Moment Estimation)

// Adam represents the Adam optimizer.
type Adam = optim.Adam

// AdamConfig contains configuration for Adam optimizer.
type AdamConfig = optim.AdamConfig

// NewAdam creates a new Adam optimizer with bias correction.
//
// Example:
//
//	optimizer := optim.NewAdam(optim.AdamConfig{
//	    LR:    0.1,
//	    Betas: [2]float64{0.9, 0.999},
//	    Eps:   1e-8,
//	})
func NewAdam(config AdamConfig) *Adam {
	return optim.NewAdam(config)
}

// Minimize runs opt on obj starting from x0.
func Minimize(obj Objective, x0 []float64, opt Optimizer, s Settings) (*Result, error) {
	return optim.Minimize(obj, x0, opt, s)
}

// MinimizeGD runs gradient descent from x0.
func MinimizeGD(obj Objective, x0 []float64, config GDConfig, s Settings) (*Result, error) {
	return optim.MinimizeGD(obj, x0, config, s)
}

// MinimizeAdam runs Adam from x0.
func MinimizeAdam(obj Objective, x0 []float64, config AdamConfig, s Settings) (*Result, error) {
	return optim.MinimizeAdam(obj, x0, config, s)
}
