// Package testutil provides testing utilities for numkit.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded RNG for generating random vector coordinates
// and random complex component pairs:
//
//	rng := testutil.NewRNG(seed)
//	coords := rng.GenerateRandomCoords(100, 8)   // 100 vectors, 8-dim
//	pairs := rng.GenerateRandomComplexParts(100) // 100 (real, imag) pairs
package testutil
