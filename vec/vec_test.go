package vec

import (
	"math"
	"testing"

	"github.com/hupe1980/numkit/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestNew(t *testing.T) {
	v := New(1, 2, 3)
	assert.Equal(t, 3, v.Dim())
	assert.Equal(t, "(1, 2, 3)", v.String())

	// Empty case: a zero-dimensional vector.
	empty := New()
	assert.Equal(t, 0, empty.Dim())
	assert.Equal(t, "()", empty.String())
	assert.Equal(t, 0.0, empty.Norm())
	assert.True(t, empty.IsZero())
}

func TestFromSlice(t *testing.T) {
	coords := []float64{4, 5, 6}
	v := FromSlice(coords)
	assert.Equal(t, "(4, 5, 6)", v.String())

	// The vector does not alias the input slice.
	coords[0] = 99
	assert.Equal(t, 4.0, v.At(0))
}

func TestCoords(t *testing.T) {
	v := New(1, 2)

	c := v.Coords()
	c[0] = 99
	assert.Equal(t, 1.0, v.At(0))
}

func TestNorm(t *testing.T) {
	tests := []struct {
		name     string
		v        *Vector
		expected float64
	}{
		{"Pythagorean", New(3, 4), 5},
		{"ThreeDim", New(1, 2, 2), 3},
		{"Zero", New(0, 0, 0), 0},
		{"Single", New(-7), 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, tt.v.Norm(), 1e-12)
			assert.InDelta(t, tt.expected, tt.v.Abs(), 1e-12)
		})
	}

	t.Run("Oracle", func(t *testing.T) {
		// Cross-check against gonum over random coordinates.
		rng := testutil.NewRNG(4711)
		for _, coords := range rng.GenerateRandomCoords(50, 8) {
			v := FromSlice(coords)
			assert.InDelta(t, floats.Norm(coords, 2), v.Norm(), 1e-12)
		}
	})
}

func TestAdd(t *testing.T) {
	v, err := New(1, 2, 3).Add(New(4, 5, 6))
	require.NoError(t, err)
	assert.Equal(t, "(5, 7, 9)", v.String())

	v = New(1, 2, 3).AddScalar(5)
	assert.Equal(t, "(6, 7, 8)", v.String())

	t.Run("DimensionMismatch", func(t *testing.T) {
		_, err := New(1, 2, 3).Add(New(1, 2))
		var dm *ErrDimensionMismatch
		require.ErrorAs(t, err, &dm)
		assert.Equal(t, 3, dm.Expected)
		assert.Equal(t, 2, dm.Actual)
	})
}

func TestSub(t *testing.T) {
	v, err := New(5, 7, 9).Sub(New(4, 5, 6))
	require.NoError(t, err)
	assert.Equal(t, "(1, 2, 3)", v.String())

	v = New(5, 7, 9).SubScalar(3)
	assert.Equal(t, "(2, 4, 6)", v.String())

	// s - v negates the component-wise result.
	v = New(5, 7, 9).ScalarSub(10)
	assert.Equal(t, "(5, 3, 1)", v.String())

	t.Run("DimensionMismatch", func(t *testing.T) {
		_, err := New(5, 7, 9).Sub(New(1, 2))
		var dm *ErrDimensionMismatch
		assert.ErrorAs(t, err, &dm)
	})

	t.Run("RoundTrip", func(t *testing.T) {
		// (v + w) - w == v component-wise.
		rng := testutil.NewRNG(4711)

		coords := rng.GenerateRandomCoords(100, 6)
		for i := 0; i < len(coords); i += 2 {
			v := FromSlice(coords[i])
			w := FromSlice(coords[i+1])

			sum, err := v.Add(w)
			require.NoError(t, err)

			back, err := sum.Sub(w)
			require.NoError(t, err)

			for j := 0; j < v.Dim(); j++ {
				assert.InDelta(t, v.At(j), back.At(j), 1e-9)
			}
		}
	})
}

func TestNeg(t *testing.T) {
	assert.Equal(t, "(-1, 2, -3)", New(1, -2, 3).Neg().String())
	assert.Equal(t, 3, New(1, -2, 3).Neg().Dim())
}

func TestDot(t *testing.T) {
	dot, err := New(1, 2, 3).Dot(New(4, 5, 6))
	require.NoError(t, err)
	assert.Equal(t, 32.0, dot)

	t.Run("DimensionMismatch", func(t *testing.T) {
		_, err := New(1, 2, 3).Dot(New(1, 2))
		var dm *ErrDimensionMismatch
		assert.ErrorAs(t, err, &dm)
	})

	t.Run("Oracle", func(t *testing.T) {
		rng := testutil.NewRNG(4711)

		coords := rng.GenerateRandomCoords(100, 8)
		for i := 0; i < len(coords); i += 2 {
			got, err := FromSlice(coords[i]).Dot(FromSlice(coords[i+1]))
			require.NoError(t, err)
			assert.InDelta(t, floats.Dot(coords[i], coords[i+1]), got, 1e-12)
		}
	})
}

func TestMulScalar(t *testing.T) {
	// `*` reduces in the scalar form as well: the result is the sum of
	// the scaled components, not a scaled vector.
	assert.Equal(t, 12.0, New(1, 2, 3).MulScalar(2))
	assert.Equal(t, 18.0, New(1, 2, 3).MulScalar(3))
	assert.Equal(t, 0.0, New().MulScalar(2))
}

func TestDiv(t *testing.T) {
	t.Run("Vector", func(t *testing.T) {
		v, err := New(10, 20, 30).Div(New(2, 4, 5))
		require.NoError(t, err)
		assert.Equal(t, "(5, 5, 6)", v.String())
	})

	t.Run("Scalar", func(t *testing.T) {
		v, err := New(10, 20, 30).DivScalar(2)
		require.NoError(t, err)
		assert.Equal(t, "(5, 10, 15)", v.String())
	})

	t.Run("ScalarZero", func(t *testing.T) {
		_, err := New(10, 20, 30).DivScalar(0)
		assert.ErrorIs(t, err, ErrDivisionByZero)
	})

	t.Run("ZeroVector", func(t *testing.T) {
		_, err := New(10, 20, 30).Div(New(0, 0, 0))
		assert.ErrorIs(t, err, ErrDivisionByZero)
	})

	t.Run("ZeroCheckBeforeDimensionCheck", func(t *testing.T) {
		// A zero divisor wins even when the dimensions differ too.
		_, err := New(10, 20, 30).Div(New(0, 0))
		assert.ErrorIs(t, err, ErrDivisionByZero)
	})

	t.Run("DimensionMismatch", func(t *testing.T) {
		_, err := New(10, 20, 30).Div(New(1, 2))
		var dm *ErrDimensionMismatch
		assert.ErrorAs(t, err, &dm)
	})

	t.Run("PartiallyZeroDivisor", func(t *testing.T) {
		// Only the all-zero divisor is rejected; individual zero
		// components follow IEEE-754.
		v, err := New(10, 20).Div(New(1, 0))
		require.NoError(t, err)
		assert.Equal(t, 10.0, v.At(0))
		assert.True(t, math.IsInf(v.At(1), 1))
	})
}

func TestScalarDiv(t *testing.T) {
	v, err := New(10, 20, 30).ScalarDiv(60)
	require.NoError(t, err)
	assert.Equal(t, "(6, 3, 2)", v.String())

	// The guard is on the numerator: 0 / v is rejected.
	_, err = New(10, 20, 30).ScalarDiv(0)
	assert.ErrorIs(t, err, ErrDivisionByZero)

	// The zero vector is rejected as a divisor, never yielding Inf.
	_, err = New(0, 0).ScalarDiv(5)
	assert.ErrorIs(t, err, ErrDivisionByZero)

	// Zero components in an otherwise nonzero vector follow IEEE-754.
	v, err = New(2, 0).ScalarDiv(4)
	require.NoError(t, err)
	assert.Equal(t, 2.0, v.At(0))
	assert.True(t, math.IsInf(v.At(1), 1))
}

func TestEqual(t *testing.T) {
	assert.True(t, New(1, 2, 3).Equal(New(1, 2, 3)))
	assert.False(t, New(1, 2, 3).Equal(New(0, 0, 0)))

	// Unequal dimension is unequal, not an error.
	assert.False(t, New(1, 2, 3).Equal(New(1, 2)))

	// Zero-dimensional vectors are equal to each other.
	assert.True(t, New().Equal(New()))
}

func TestEqualScalar(t *testing.T) {
	// Unlike the complex zero rule, this one requires every component
	// to be exactly zero.
	assert.True(t, New(0, 0, 0).EqualScalar(0))
	assert.False(t, New(3, -3).EqualScalar(0))
	assert.False(t, New(1, 2, 3).EqualScalar(0))
	assert.False(t, New(0, 0, 0).EqualScalar(5))

	assert.True(t, New(0, 0, 0).IsZero())
	assert.False(t, New(3, -3).IsZero())
}

func TestInPlace(t *testing.T) {
	v := New(1, 2, 3)

	got, err := v.AddInPlace(New(1, 1, 1))
	require.NoError(t, err)
	assert.Same(t, v, got)
	assert.Equal(t, "(2, 3, 4)", v.String())

	got, err = v.SubInPlace(New(1, 1, 1))
	require.NoError(t, err)
	assert.Same(t, v, got)
	assert.Equal(t, "(1, 2, 3)", v.String())

	assert.Same(t, v, v.MulScalarInPlace(2))
	assert.Equal(t, "(2, 4, 6)", v.String())

	got, err = v.DivScalarInPlace(2)
	require.NoError(t, err)
	assert.Same(t, v, got)
	assert.Equal(t, "(1, 2, 3)", v.String())
}

func TestInPlaceScalar(t *testing.T) {
	v := New(1, 2, 3)

	assert.Same(t, v, v.AddScalarInPlace(5))
	assert.Equal(t, "(6, 7, 8)", v.String())

	assert.Same(t, v, v.SubScalarInPlace(5))
	assert.Equal(t, "(1, 2, 3)", v.String())
}

func TestMulInPlace(t *testing.T) {
	// The coordinate-replacing form of `*`: component-wise product.
	v := New(1, 2, 3)

	got, err := v.MulInPlace(New(4, 5, 6))
	require.NoError(t, err)
	assert.Same(t, v, got)
	assert.Equal(t, "(4, 10, 18)", v.String())

	_, err = v.MulInPlace(New(1, 2))
	var dm *ErrDimensionMismatch
	assert.ErrorAs(t, err, &dm)
}

func TestDivInPlace(t *testing.T) {
	v := New(10, 20, 30)

	got, err := v.DivInPlace(New(2, 4, 5))
	require.NoError(t, err)
	assert.Same(t, v, got)
	assert.Equal(t, "(5, 5, 6)", v.String())
}

func TestInPlaceErrorsLeaveReceiverUnchanged(t *testing.T) {
	v := New(1, 2, 3)

	got, err := v.AddInPlace(New(1, 2))
	var dm *ErrDimensionMismatch
	assert.ErrorAs(t, err, &dm)
	assert.Nil(t, got)
	assert.Equal(t, "(1, 2, 3)", v.String())

	got, err = v.DivInPlace(New(0, 0, 0))
	assert.ErrorIs(t, err, ErrDivisionByZero)
	assert.Nil(t, got)
	assert.Equal(t, "(1, 2, 3)", v.String())

	got, err = v.DivScalarInPlace(0)
	assert.ErrorIs(t, err, ErrDivisionByZero)
	assert.Nil(t, got)
	assert.Equal(t, "(1, 2, 3)", v.String())
}

func TestDimensionImmutable(t *testing.T) {
	v := New(1, 2, 3)

	_, err := v.AddInPlace(New(1, 1, 1))
	require.NoError(t, err)
	assert.Equal(t, 3, v.Dim())

	v.MulScalarInPlace(0)
	assert.Equal(t, 3, v.Dim())
	assert.True(t, v.IsZero())
}

func TestErrDimensionMismatchMessage(t *testing.T) {
	err := &ErrDimensionMismatch{Expected: 3, Actual: 2}
	assert.Equal(t, "dimension mismatch: expected 3, got 2", err.Error())
}
