// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides gradient-based minimization of differentiable functions.
//
// # Overview
//
// This package contains:
//   - GD: Gradient descent with optional momentum
//   - Adam: Adaptive Moment Estimation with bias correction
//   - Minimize: The iteration driver shared by all optimizers
//   - Optimizer interface for custom update rules
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/dualgrad/ad"
//	    "github.com/born-ml/dualgrad/dual"
//	    "github.com/born-ml/dualgrad/optim"
//	)
//
//	func main() {
//	    f := ad.New(ad.Multivariate(func(x []dual.Number) (dual.Number, error) {
//	        return x[0].PowReal(2).Add(x[1].PowReal(2)), nil
//	    }))
//
//	    res, err := optim.MinimizeAdam(f, []float64{-10, 10}, optim.AdamConfig{}, optim.Settings{})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(res.X, res.Status) // ≈ [0 0] converged
//	}
//
// # Termination
//
// Minimize stops when:
//   - ‖grad‖₂ falls below Settings.Tol (Status Converged)
//   - Settings.MaxIter updates were applied (Status IterationLimit, best iterate returned)
//   - The gradient stays constant and nonzero for Settings.Patience iterations
//     (ErrDegenerate: the objective is affine and has no minimum)
//
// Failures of the objective itself, such as a dual.DomainError, are returned
// wrapped with the iteration at which they occurred.
//
// # Optimizers
//
// Gradient descent:
//
//	optimizer := optim.NewGD(optim.GDConfig{
//	    LR:       0.1,
//	    Momentum: 0.9,
//	})
//
// Adam:
//
//	optimizer := optim.NewAdam(optim.AdamConfig{
//	    LR:    0.1,
//	    Betas: [2]float64{0.9, 0.999},
//	    Eps:   1e-8,
//	})
//
//	res, err := optim.Minimize(f, x0, optimizer, optim.Settings{MaxIter: 500})
package optim
