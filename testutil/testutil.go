package testutil

import "math/rand"

// RNG struct encapsulates the random number generator and seed.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// GenerateRandomCoords generates num coordinate slices of the given
// dimension, each component uniform in [-1, 1).
func (r *RNG) GenerateRandomCoords(num, dim int) [][]float64 {
	coords := make([][]float64, num)
	for i := range coords {
		coords[i] = make([]float64, dim)
		for j := range coords[i] {
			coords[i][j] = 2*r.rand.Float64() - 1
		}
	}

	return coords
}

// GenerateRandomComplexParts generates num (real, imag) pairs, each
// component uniform in [-1, 1).
func (r *RNG) GenerateRandomComplexParts(num int) [][2]float64 {
	pairs := make([][2]float64, num)
	for i := range pairs {
		pairs[i] = [2]float64{2*r.rand.Float64() - 1, 2*r.rand.Float64() - 1}
	}

	return pairs
}
