package vec

import (
	"math"
	"slices"
	"strconv"
	"strings"
)

// Vector is an ordered, fixed-dimension sequence of float64
// coordinates. The dimension never changes after construction; in-place
// operators replace the coordinates but preserve the dimension.
type Vector struct {
	coords []float64
}

// New creates a Vector from the given coordinates, in order. No
// arguments yield a zero-dimensional vector.
func New(coords ...float64) *Vector {
	return &Vector{coords: slices.Clone(coords)}
}

// FromSlice creates a Vector from an existing coordinate slice.
// The slice is copied; the Vector does not alias it.
func FromSlice(coords []float64) *Vector {
	return &Vector{coords: slices.Clone(coords)}
}

// Dim returns the number of coordinates.
func (v *Vector) Dim() int {
	return len(v.coords)
}

// At returns the i-th coordinate.
func (v *Vector) At(i int) float64 {
	return v.coords[i]
}

// Coords returns a copy of the coordinates.
func (v *Vector) Coords() []float64 {
	return slices.Clone(v.coords)
}

// Norm returns the Euclidean magnitude sqrt(Σ cᵢ²).
// It is recomputed from the current coordinates on every call.
func (v *Vector) Norm() float64 {
	var sum float64
	for _, c := range v.coords {
		sum += c * c
	}

	return math.Sqrt(sum)
}

// Abs returns the magnitude of v. Alias for Norm.
func (v *Vector) Abs() float64 {
	return v.Norm()
}

// Add returns v + w component-wise. Fails with *ErrDimensionMismatch
// when the dimensions differ.
func (v *Vector) Add(w *Vector) (*Vector, error) {
	if len(v.coords) != len(w.coords) {
		return nil, &ErrDimensionMismatch{Expected: len(v.coords), Actual: len(w.coords)}
	}

	out := make([]float64, len(v.coords))
	for i, c := range v.coords {
		out[i] = c + w.coords[i]
	}

	return &Vector{coords: out}, nil
}

// AddScalar returns v with s added to every component.
func (v *Vector) AddScalar(s float64) *Vector {
	out := make([]float64, len(v.coords))
	for i, c := range v.coords {
		out[i] = c + s
	}

	return &Vector{coords: out}
}

// Sub returns v - w component-wise. Fails with *ErrDimensionMismatch
// when the dimensions differ.
func (v *Vector) Sub(w *Vector) (*Vector, error) {
	if len(v.coords) != len(w.coords) {
		return nil, &ErrDimensionMismatch{Expected: len(v.coords), Actual: len(w.coords)}
	}

	out := make([]float64, len(v.coords))
	for i, c := range v.coords {
		out[i] = c - w.coords[i]
	}

	return &Vector{coords: out}, nil
}

// SubScalar returns v with s subtracted from every component.
func (v *Vector) SubScalar(s float64) *Vector {
	out := make([]float64, len(v.coords))
	for i, c := range v.coords {
		out[i] = c - s
	}

	return &Vector{coords: out}
}

// ScalarSub returns s - v component-wise.
func (v *Vector) ScalarSub(s float64) *Vector {
	out := make([]float64, len(v.coords))
	for i, c := range v.coords {
		out[i] = s - c
	}

	return &Vector{coords: out}
}

// Dot returns the dot product Σ vᵢ·wᵢ. Fails with
// *ErrDimensionMismatch when the dimensions differ.
func (v *Vector) Dot(w *Vector) (float64, error) {
	if len(v.coords) != len(w.coords) {
		return 0, &ErrDimensionMismatch{Expected: len(v.coords), Actual: len(w.coords)}
	}

	var sum float64
	for i, c := range v.coords {
		sum += c * w.coords[i]
	}

	return sum, nil
}

// MulScalar returns the sum of the components of v scaled by s, i.e.
// s·Σ vᵢ — a scalar total, not a scaled vector, mirroring the
// dot-style reduction Dot applies to the vector-vector form. Use
// MulScalarInPlace to scale v as a vector.
func (v *Vector) MulScalar(s float64) float64 {
	var sum float64
	for _, c := range v.coords {
		sum += c * s
	}

	return sum
}

// Div returns v / w component-wise.
//
// The zero-divisor check runs before the dimension check: a zero
// vector w fails with ErrDivisionByZero regardless of its dimension.
// Otherwise differing dimensions fail with *ErrDimensionMismatch.
func (v *Vector) Div(w *Vector) (*Vector, error) {
	if w.IsZero() {
		return nil, ErrDivisionByZero
	}

	if len(v.coords) != len(w.coords) {
		return nil, &ErrDimensionMismatch{Expected: len(v.coords), Actual: len(w.coords)}
	}

	out := make([]float64, len(v.coords))
	for i, c := range v.coords {
		out[i] = c / w.coords[i]
	}

	return &Vector{coords: out}, nil
}

// DivScalar returns v with every component divided by s. Fails with
// ErrDivisionByZero when s is zero.
func (v *Vector) DivScalar(s float64) (*Vector, error) {
	if s == 0 {
		return nil, ErrDivisionByZero
	}

	out := make([]float64, len(v.coords))
	for i, c := range v.coords {
		out[i] = c / s
	}

	return &Vector{coords: out}, nil
}

// ScalarDiv returns s divided by every component of v. Fails with
// ErrDivisionByZero when s is zero — the guard is on the numerator —
// or when v is the zero vector. Zero components in an otherwise
// nonzero v follow IEEE-754 semantics (±Inf).
func (v *Vector) ScalarDiv(s float64) (*Vector, error) {
	if s == 0 {
		return nil, ErrDivisionByZero
	}

	if v.IsZero() {
		return nil, ErrDivisionByZero
	}

	out := make([]float64, len(v.coords))
	for i, c := range v.coords {
		out[i] = s / c
	}

	return &Vector{coords: out}, nil
}

// Neg returns v with every component negated.
func (v *Vector) Neg() *Vector {
	out := make([]float64, len(v.coords))
	for i, c := range v.coords {
		out[i] = -c
	}

	return &Vector{coords: out}
}

// Equal reports whether v and w have the same dimension and exactly
// equal components. Unequal dimension is simply unequal, not an error.
func (v *Vector) Equal(w *Vector) bool {
	return slices.Equal(v.coords, w.coords)
}

// EqualScalar reports whether v equals the scalar s. Any nonzero s is
// unequal; s == 0 holds iff every component is exactly zero.
func (v *Vector) EqualScalar(s float64) bool {
	if s == 0 {
		return v.IsZero()
	}

	return false
}

// IsZero reports whether every component of v is exactly zero.
// Vacuously true for a zero-dimensional vector.
func (v *Vector) IsZero() bool {
	for _, c := range v.coords {
		if c != 0 {
			return false
		}
	}

	return true
}

// AddInPlace adds w to v, replacing v's coordinates, and returns v.
// The failure conditions match Add; on error v is left unchanged.
func (v *Vector) AddInPlace(w *Vector) (*Vector, error) {
	out, err := v.Add(w)
	if err != nil {
		return nil, err
	}

	v.coords = out.coords

	return v, nil
}

// AddScalarInPlace adds s to every component of v and returns v.
func (v *Vector) AddScalarInPlace(s float64) *Vector {
	v.coords = v.AddScalar(s).coords

	return v
}

// SubInPlace subtracts w from v, replacing v's coordinates, and
// returns v. The failure conditions match Sub; on error v is left
// unchanged.
func (v *Vector) SubInPlace(w *Vector) (*Vector, error) {
	out, err := v.Sub(w)
	if err != nil {
		return nil, err
	}

	v.coords = out.coords

	return v, nil
}

// SubScalarInPlace subtracts s from every component of v and returns v.
func (v *Vector) SubScalarInPlace(s float64) *Vector {
	v.coords = v.SubScalar(s).coords

	return v
}

// MulInPlace replaces v's coordinates with the component-wise product
// v·w and returns v — the coordinate-replacing form of `*`, unlike the
// reducing Dot. Fails with *ErrDimensionMismatch when the dimensions
// differ; on error v is left unchanged.
func (v *Vector) MulInPlace(w *Vector) (*Vector, error) {
	if len(v.coords) != len(w.coords) {
		return nil, &ErrDimensionMismatch{Expected: len(v.coords), Actual: len(w.coords)}
	}

	out := make([]float64, len(v.coords))
	for i, c := range v.coords {
		out[i] = c * w.coords[i]
	}

	v.coords = out

	return v, nil
}

// MulScalarInPlace scales every component of v by s and returns v.
func (v *Vector) MulScalarInPlace(s float64) *Vector {
	out := make([]float64, len(v.coords))
	for i, c := range v.coords {
		out[i] = c * s
	}

	v.coords = out

	return v
}

// DivInPlace divides v by w component-wise, replacing v's coordinates,
// and returns v. The failure conditions match Div; on error v is left
// unchanged.
func (v *Vector) DivInPlace(w *Vector) (*Vector, error) {
	out, err := v.Div(w)
	if err != nil {
		return nil, err
	}

	v.coords = out.coords

	return v, nil
}

// DivScalarInPlace divides every component of v by s and returns v.
// The failure conditions match DivScalar; on error v is left unchanged.
func (v *Vector) DivScalarInPlace(s float64) (*Vector, error) {
	out, err := v.DivScalar(s)
	if err != nil {
		return nil, err
	}

	v.coords = out.coords

	return v, nil
}

// String returns the coordinates joined by ", " inside parentheses,
// each in its shortest round-trip decimal form, e.g. "(1, 2, 3)".
// A zero-dimensional vector renders as "()".
func (v *Vector) String() string {
	parts := make([]string, len(v.coords))
	for i, c := range v.coords {
		parts[i] = strconv.FormatFloat(c, 'g', -1, 64)
	}

	return "(" + strings.Join(parts, ", ") + ")"
}
