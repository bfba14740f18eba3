// Package cplx provides a complex number value type with explicit
// operator methods.
//
// Complex is a plain value struct over two float64 components. Every
// operator has a same-type form and a scalar form, plus an in-place
// variant that mutates the receiver and returns it:
//
//	z := cplx.New(3, 4)
//	w := z.Add(cplx.New(1, 1))        // (4 + 5i)
//	q, err := z.Div(cplx.New(1, 2))   // (2.2 - 0.4i)
//	z.MulScalarInPlace(2)             // z is now (6 + 8i)
//
// Division and power report failures as errors; everything else is
// total. Note that Complex carries two behaviors inherited from the
// system it models and kept on purpose: equality against the scalar
// zero holds whenever Real+Imag == 0 (not only when both components
// are zero), and the string form of a pure negative-imaginary value
// is "(- i)" rather than "(-i)". Both are exercised in the tests.
package cplx
