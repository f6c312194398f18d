// Package util provides helpers for tests and benchmarks.
package util

import (
	"math/rand"

	"github.com/hupe1980/kdgo/index"
)

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

// GenerateRandomPoints generates random points in [0, 1) using the given RNG.
func (r *RNG) GenerateRandomPoints(num int, dimensions int) []index.Point {
	points := make([]index.Point, num)
	for i := range points {
		points[i] = make(index.Point, dimensions)
		for j := range points[i] {
			points[i][j] = r.rand.Float64()
		}
	}

	return points
}
