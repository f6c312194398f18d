// Package flat provides a brute-force exact nearest-neighbor index.
//
// It scans every stored point per query and exists as the ground truth the
// KD-tree is validated against. Use it directly only for small datasets.
package flat

import (
	"math"

	"github.com/hupe1980/kdgo/index"
	"github.com/hupe1980/kdgo/metric"
)

// Compile-time check to ensure Flat satisfies the index interface.
var _ index.Index = (*Flat)(nil)

// Flat is a brute-force index over fixed-dimension points.
type Flat struct {
	dimension int
	points    []index.Point
}

// New creates a new flat index for points of the given dimension.
func New(dimension int) (*Flat, error) {
	if dimension < 1 {
		return nil, &index.ErrDimensionMismatch{Expected: 1, Actual: dimension}
	}

	return &Flat{dimension: dimension}, nil
}

// FromPoints creates a flat index holding all given points, validating that
// they share one dimension.
func FromPoints(points []index.Point) (*Flat, error) {
	dim, err := index.ValidateDataset(points)
	if err != nil {
		return nil, err
	}

	f := &Flat{dimension: dim, points: make([]index.Point, len(points))}
	for i, p := range points {
		f.points[i] = p.Clone()
	}

	return f, nil
}

// Insert adds a point to the index and returns its position.
func (f *Flat) Insert(p index.Point) (int, error) {
	if len(p) != f.dimension {
		return -1, &index.ErrDimensionMismatch{Expected: f.dimension, Actual: len(p)}
	}

	f.points = append(f.points, p.Clone())

	return len(f.points) - 1, nil
}

// Dimension returns the coordinate count shared by all indexed points.
func (f *Flat) Dimension() int {
	return f.dimension
}

// Len returns the number of stored points.
func (f *Flat) Len() int {
	return len(f.points)
}

// NearestNeighbor scans all stored points and returns the one with minimal
// Euclidean distance to q. Ties are won by the lowest position.
func (f *Flat) NearestNeighbor(q index.Point) (index.IndexedPoint, error) {
	if len(f.points) == 0 {
		return index.Sentinel(), index.ErrNotBuilt
	}

	if len(q) != f.dimension {
		return index.Sentinel(), &index.ErrDimensionMismatch{Expected: f.dimension, Actual: len(q)}
	}

	best := index.Sentinel()
	bestSqr := math.MaxFloat64

	for i, p := range f.points {
		if dist := metric.SquaredL2(p, q); dist < bestSqr {
			bestSqr = dist
			best = index.IndexedPoint{Index: i, Point: p}
		}
	}

	// Hand back a copy so callers cannot mutate the stored dataset.
	best.Point = best.Point.Clone()

	return best, nil
}
