package vec

import (
	"errors"
	"fmt"
)

// ErrDivisionByZero is returned when the divisor is the scalar zero,
// the zero vector, or — for reverse division — when the scalar
// numerator is zero.
var ErrDivisionByZero = errors.New("division by zero")

// ErrDimensionMismatch indicates a binary operation over vectors of
// differing dimension.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}
