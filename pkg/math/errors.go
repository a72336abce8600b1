package math

import "errors"

var (
	// ErrDivideByZero is returned when dividing a vector by zero or when
	// projecting a direction (w == 0) to Cartesian space.
	ErrDivideByZero = errors.New("division by zero")

	// ErrIndexOutOfRange is returned by component accessors.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrSingularMatrix is returned by Mat4.InverseChecked.
	ErrSingularMatrix = errors.New("singular matrix")
)
