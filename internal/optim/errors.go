package optim

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrDegenerate = errors.New("optim: objective has no stationary point reachable by descent")
	ErrDiverged   = errors.New("optim: iterate diverged")
	ErrEmptyStart = errors.New("optim: empty starting point")
	ErrShape      = errors.New("optim: gradient length does not match point")
)

// DegenerateError reports an objective whose gradient stayed constant and
// nonzero while the iterate moved away from the origin, as happens for
// affine functions.
type DegenerateError struct {
	Iteration int       // Iteration at which the run was abandoned
	X         []float64 // Iterate at that point
	Grad      []float64 // The constant gradient
}

// Error implements the error interface.
func (e *DegenerateError) Error() string {
	return fmt.Sprintf("%v: gradient %v unchanged through iteration %d", ErrDegenerate, e.Grad, e.Iteration)
}

// Unwrap returns ErrDegenerate.
func (e *DegenerateError) Unwrap() error {
	return ErrDegenerate
}
