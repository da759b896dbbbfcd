package ad

import "errors"

// Common errors.
var (
	ErrShape     = errors.New("ad: shape mismatch")
	ErrNotScalar = errors.New("ad: function is not scalar-valued")
)
