// Package index provides the shared data model and interfaces for kdgo's
// spatial indexes.
package index

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrEmptyDataset is returned when an index is built from zero points.
	ErrEmptyDataset = errors.New("empty dataset")

	// ErrNotBuilt is returned when a query is issued against an index that
	// has no root. The query result carries the sentinel index -1.
	ErrNotBuilt = errors.New("index not built")
)

// ErrDimensionMismatch is a named error type for dimension mismatch.
type ErrDimensionMismatch struct {
	Expected int // Expected dimensions
	Actual   int // Actual dimensions
}

// Error returns the error message for dimension mismatch.
func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// Point is an ordered sequence of coordinates. The dimension of a dataset is
// fixed by its first point; every other point must have the same length.
type Point []float64

// Clone returns an independent copy of the point.
func (p Point) Clone() Point {
	return slices.Clone(p)
}

// IndexedPoint pairs a point with its 0-based position in the input sequence
// the index was built from. The position is assigned at build time and never
// recomputed.
type IndexedPoint struct {
	// Index is the position in the original dataset, or -1 for the
	// not-built sentinel.
	Index int

	// Point holds the coordinates.
	Point Point
}

// Sentinel returns the IndexedPoint reported when no result exists.
func Sentinel() IndexedPoint {
	return IndexedPoint{Index: -1}
}

// Index is a read-only nearest-neighbor index over a fixed-dimension dataset.
type Index interface {
	// Dimension returns the coordinate count shared by all indexed points.
	Dimension() int

	// Len returns the number of entries stored in the index.
	Len() int

	// NearestNeighbor returns the indexed point with minimal Euclidean
	// distance to q. Ties are resolved by traversal order.
	NearestNeighbor(q Point) (IndexedPoint, error)
}

// ValidateDataset checks that points is non-empty and uniform in dimension,
// returning the dataset dimension.
func ValidateDataset(points []Point) (int, error) {
	if len(points) == 0 {
		return 0, ErrEmptyDataset
	}

	dim := len(points[0])
	if dim == 0 {
		return 0, &ErrDimensionMismatch{Expected: 1, Actual: 0}
	}

	for _, p := range points {
		if len(p) != dim {
			return 0, &ErrDimensionMismatch{Expected: dim, Actual: len(p)}
		}
	}

	return dim, nil
}
