package cplx

import (
	"math"
	"strconv"
	"strings"
)

// angleEps is the tolerance used by Pow to detect results lying on the
// real or imaginary axis.
const angleEps = 1e-10

// Complex represents a complex number as a real/imaginary float64 pair.
// The zero value is the complex zero. Components are stored as given;
// no normalization is applied (e.g. -0.0 is preserved).
type Complex struct {
	Real float64
	Imag float64
}

// New creates a Complex from real and imaginary parts.
func New(real, imag float64) Complex {
	return Complex{Real: real, Imag: imag}
}

// FromComplex converts a builtin complex128 to a Complex.
func FromComplex(c complex128) Complex {
	return Complex{Real: real(c), Imag: imag(c)}
}

// ToComplex converts z to a builtin complex128.
func (z Complex) ToComplex() complex128 {
	return complex(z.Real, z.Imag)
}

// Norm returns the magnitude sqrt(Real² + Imag²). Always >= 0.
func (z Complex) Norm() float64 {
	return math.Sqrt(z.Real*z.Real + z.Imag*z.Imag)
}

// Abs returns the magnitude of z. Alias for Norm.
func (z Complex) Abs() float64 {
	return z.Norm()
}

// Conjugate returns z with the imaginary sign flipped.
func (z Complex) Conjugate() Complex {
	return Complex{Real: z.Real, Imag: -z.Imag}
}

// Reciprocal returns 1/z via conj(z)/|z|².
// Undefined when both components are zero; the caller must guard.
func (z Complex) Reciprocal() Complex {
	den := z.Real*z.Real + z.Imag*z.Imag
	return Complex{Real: z.Real / den, Imag: -z.Imag / den}
}

// Trig returns the polar form of z: magnitude and angle in radians.
// The angle is atan2(Imag, Real), in (-π, π].
func (z Complex) Trig() (r, theta float64) {
	return z.Norm(), math.Atan2(z.Imag, z.Real)
}

// Add returns z + w.
func (z Complex) Add(w Complex) Complex {
	return Complex{Real: z.Real + w.Real, Imag: z.Imag + w.Imag}
}

// AddScalar returns z + s. The scalar is added to the real part only.
func (z Complex) AddScalar(s float64) Complex {
	return Complex{Real: z.Real + s, Imag: z.Imag}
}

// Sub returns z - w.
func (z Complex) Sub(w Complex) Complex {
	return Complex{Real: z.Real - w.Real, Imag: z.Imag - w.Imag}
}

// SubScalar returns z - s. The scalar is subtracted from the real part only.
func (z Complex) SubScalar(s float64) Complex {
	return Complex{Real: z.Real - s, Imag: z.Imag}
}

// ScalarSub returns s - z.
func (z Complex) ScalarSub(s float64) Complex {
	return Complex{Real: s - z.Real, Imag: -z.Imag}
}

// Mul returns the complex product z·w = (ac−bd) + (ad+bc)i.
func (z Complex) Mul(w Complex) Complex {
	return Complex{
		Real: z.Real*w.Real - z.Imag*w.Imag,
		Imag: z.Real*w.Imag + z.Imag*w.Real,
	}
}

// MulScalar returns z scaled by s on both components.
func (z Complex) MulScalar(s float64) Complex {
	return Complex{Real: s * z.Real, Imag: s * z.Imag}
}

// Neg returns z with both components negated.
func (z Complex) Neg() Complex {
	return Complex{Real: -z.Real, Imag: -z.Imag}
}

// Div returns z / w.
//
// It fails with ErrDivisionByZero when w satisfies the zero-equality
// rule, i.e. w.EqualScalar(0). That rule holds for any pair whose
// components sum to zero, so (3, -3) is rejected as a divisor as well.
func (z Complex) Div(w Complex) (Complex, error) {
	if w.EqualScalar(0) {
		return Complex{}, ErrDivisionByZero
	}

	den := w.Real*w.Real + w.Imag*w.Imag

	return Complex{
		Real: (z.Real*w.Real + z.Imag*w.Imag) / den,
		Imag: (z.Imag*w.Real - w.Imag*z.Real) / den,
	}, nil
}

// DivScalar returns z / s. Fails with ErrDivisionByZero when s is zero.
func (z Complex) DivScalar(s float64) (Complex, error) {
	if s == 0 {
		return Complex{}, ErrDivisionByZero
	}

	return Complex{Real: z.Real / s, Imag: z.Imag / s}, nil
}

// ScalarDiv returns s / z. Fails with ErrDivisionByZero when both
// components of z are zero.
//
// The imaginary sign is flipped only when z.Imag is positive; for a
// negative imaginary part the result keeps the unconjugated sign, so
// it differs from Reciprocal().MulScalar(s) there. The tests pin this
// behavior down.
func (z Complex) ScalarDiv(s float64) (Complex, error) {
	if z.Real == 0 && z.Imag == 0 {
		return Complex{}, ErrDivisionByZero
	}

	den := z.Real*z.Real + z.Imag*z.Imag

	re := (s * z.Real) / den
	im := (s * z.Imag) / den
	if z.Conjugate().Imag < 0 {
		im = -im
	}

	return Complex{Real: re, Imag: im}, nil
}

// Equal reports whether both components of z and w match exactly.
func (z Complex) Equal(w Complex) bool {
	return z.Real == w.Real && z.Imag == w.Imag
}

// EqualScalar reports whether z equals the scalar s. Any nonzero s is
// unequal. For s == 0 the rule is Real+Imag == 0 — satisfied by any
// pair summing to zero, not only the complex zero. This is the
// zero-equality rule Div relies on; see the package documentation.
func (z Complex) EqualScalar(s float64) bool {
	if s == 0 {
		return z.Real+z.Imag == s
	}

	return false
}

// Pow raises z to the given real exponent via polar form.
//
// A zero exponent yields (1, 0) for any z, including the complex zero.
// The complex zero raised to a positive exponent yields itself; raised
// to a negative exponent it fails with ErrInvalidExponent.
//
// When the resulting angle lands within 1e-10 of 0, π or ±π/2 the
// off-axis component is forced to exactly zero and the other is
// rounded to 10 decimal places.
func (z Complex) Pow(exponent float64) (Complex, error) {
	if exponent == 0 {
		return Complex{Real: 1}, nil
	}

	if z.Real == 0 && z.Imag == 0 {
		if exponent > 0 {
			return Complex{}, nil
		}

		return Complex{}, ErrInvalidExponent
	}

	r, theta := z.Trig()
	newR := math.Pow(r, exponent)
	newTheta := theta * exponent

	switch {
	case math.Abs(newTheta) < angleEps || math.Abs(math.Abs(newTheta)-math.Pi) < angleEps:
		return Complex{Real: round10(newR * math.Cos(newTheta))}, nil
	case math.Abs(math.Abs(newTheta)-math.Pi/2) < angleEps:
		return Complex{Imag: round10(newR * math.Sin(newTheta))}, nil
	}

	return Complex{
		Real: newR * math.Cos(newTheta),
		Imag: newR * math.Sin(newTheta),
	}, nil
}

// AddInPlace adds w to z, mutating z, and returns z.
func (z *Complex) AddInPlace(w Complex) *Complex {
	z.Real += w.Real
	z.Imag += w.Imag

	return z
}

// AddScalarInPlace adds s to the real part of z, mutating z, and returns z.
func (z *Complex) AddScalarInPlace(s float64) *Complex {
	z.Real += s

	return z
}

// SubInPlace subtracts w from z, mutating z, and returns z.
func (z *Complex) SubInPlace(w Complex) *Complex {
	z.Real -= w.Real
	z.Imag -= w.Imag

	return z
}

// SubScalarInPlace subtracts s from the real part of z, mutating z, and returns z.
func (z *Complex) SubScalarInPlace(s float64) *Complex {
	z.Real -= s

	return z
}

// MulInPlace multiplies z by w, mutating z, and returns z.
// Both components are computed from the prior state of z.
func (z *Complex) MulInPlace(w Complex) *Complex {
	*z = z.Mul(w)

	return z
}

// MulScalarInPlace scales both components of z by s, mutating z, and returns z.
func (z *Complex) MulScalarInPlace(s float64) *Complex {
	z.Real *= s
	z.Imag *= s

	return z
}

// DivInPlace divides z by w, mutating z, and returns z. The failure
// conditions match Div; on error z is left unchanged.
func (z *Complex) DivInPlace(w Complex) (*Complex, error) {
	q, err := z.Div(w)
	if err != nil {
		return nil, err
	}

	*z = q

	return z, nil
}

// DivScalarInPlace divides z by s, mutating z, and returns z. The
// failure conditions match DivScalar; on error z is left unchanged.
func (z *Complex) DivScalarInPlace(s float64) (*Complex, error) {
	q, err := z.DivScalar(s)
	if err != nil {
		return nil, err
	}

	*z = q

	return z, nil
}

// Int returns the real part truncated to an int when the imaginary
// part is zero, otherwise the truncated magnitude.
func (z Complex) Int() int {
	if z.Imag == 0 {
		return int(z.Real)
	}

	return int(z.Norm())
}

// Float returns the real part when the imaginary part is zero,
// otherwise the magnitude.
func (z Complex) Float() float64 {
	if z.Imag == 0 {
		return z.Real
	}

	return z.Norm()
}

// String returns the canonical text form of z.
//
// Examples: "(3 + 4i)", "(2)", "(i)", "0". A magnitude-one imaginary
// part collapses to a bare "i". A pure negative-imaginary value
// renders as "(- i)" — the sign is emitted unconditionally for
// negative imaginary parts, separator space included, even though the
// real part is empty. Do not normalize to "(-i)".
func (z Complex) String() string {
	var realPart, sign, imagPart string

	if z.Real != 0 {
		realPart = formatFloat(z.Real)
	}

	if z.Imag > 0 {
		if z.Real != 0 {
			sign = "+"
		}
	} else if z.Imag < 0 {
		sign = "-"
	}

	absImag := math.Abs(z.Imag)
	if absImag == 1 {
		imagPart = "i"
	} else if absImag != 0 {
		imagPart = formatFloat(absImag) + "i"
	}

	if realPart == "" && imagPart == "" {
		return "0"
	}

	var b strings.Builder

	b.WriteString("(")
	b.WriteString(realPart)

	if realPart != "" && sign != "" {
		b.WriteString(" ")
	}

	b.WriteString(sign)

	if sign != "" {
		b.WriteString(" ")
	}

	b.WriteString(imagPart)
	b.WriteString(")")

	return b.String()
}

// formatFloat renders f in its shortest round-trip decimal form.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// round10 rounds v to 10 decimal places.
func round10(v float64) float64 {
	return math.Round(v*1e10) / 1e10
}
