package dual

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrUnsupportedOperand = errors.New("dual: unsupported operand type")
	ErrDomain             = errors.New("dual: argument outside function domain")
)

// OperandError reports an arithmetic operand that is neither a Number nor a
// built-in integer or float.
type OperandError struct {
	Op      Op  // Operation that rejected the operand
	Operand any // The offending value
	Left    bool
}

// Error implements the error interface.
func (e *OperandError) Error() string {
	side := "right"
	if e.Left {
		side = "left"
	}
	return fmt.Sprintf("dual: unsupported %s operand %#v (%T) for %s", side, e.Operand, e.Operand, e.Op)
}

// Unwrap returns ErrUnsupportedOperand.
func (e *OperandError) Unwrap() error {
	return ErrUnsupportedOperand
}

// DomainError reports an input outside the mathematical domain of a function.
type DomainError struct {
	Func   string  // Function name (e.g., "log", "sqrt")
	Input  float64 // Offending real part
	Domain string  // Human-readable domain (e.g., "x > 0")
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	return fmt.Sprintf("dual: %s: input %g outside domain %s", e.Func, e.Input, e.Domain)
}

// Unwrap returns ErrDomain.
func (e *DomainError) Unwrap() error {
	return ErrDomain
}
