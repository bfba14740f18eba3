// Package vec provides a fixed-dimension real vector value type with
// explicit operator methods.
//
// A Vector is an ordered sequence of float64 coordinates whose
// dimension is fixed at construction. Binary vector-vector operations
// require equal dimension and report a mismatch as
// *ErrDimensionMismatch. Every operator has a same-type form and a
// scalar form, plus an in-place variant that replaces the receiver's
// coordinates and returns the receiver:
//
//	v := vec.New(1, 2, 3)
//	w := vec.FromSlice([]float64{4, 5, 6})
//	dot, err := v.Dot(w)              // 32
//	sum, err := v.Add(w)              // (5, 7, 9)
//	v.MulScalarInPlace(2)             // v is now (2, 4, 6)
//
// The `*` operator is a reduction in both forms: Dot is the usual dot
// product, and MulScalar returns the sum of the scaled components
// rather than a scaled vector. Scaling as a vector is available
// through MulScalarInPlace.
package vec
