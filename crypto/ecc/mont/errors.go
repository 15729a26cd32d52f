package mont

import (
	"errors"
	"fmt"
)

var (
	// ErrScalarOutOfRange is returned when a scalar is negative or not
	// below the subgroup order. Scalars must be pre-reduced by the caller.
	ErrScalarOutOfRange = errors.New("scalar out of range [0, order)")

	// ErrInvalidPoint is returned when coordinates do not satisfy the curve
	// equation B*y^2 = x^3 + A*x^2 + x.
	ErrInvalidPoint = errors.New("point is not on the curve")

	// ErrDivisionByZero is returned when an affine conversion is attempted
	// on the point at infinity. Callers must check for infinity first.
	ErrDivisionByZero = errors.New("division by zero: the point at infinity has no affine form")
)

// ErrPointAtInfinity marks operations undefined on the identity element. It
// wraps ErrDivisionByZero, the mechanism by which the affine conversion
// fails, so errors.Is matches either sentinel.
var ErrPointAtInfinity = fmt.Errorf("point at infinity: %w", ErrDivisionByZero)
