package cplx

import "errors"

var (
	// ErrDivisionByZero is returned when the divisor is the scalar zero
	// or a Complex satisfying the zero-equality rule (Real+Imag == 0).
	ErrDivisionByZero = errors.New("division by zero")

	// ErrInvalidExponent is returned when the complex zero is raised to
	// a negative power.
	ErrInvalidExponent = errors.New("cannot raise zero to a negative power")
)
