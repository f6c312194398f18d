// Package kdtree provides a balanced KD-tree index for exact
// nearest-neighbor search over fixed-dimension points.
//
// The tree is built once from an immutable snapshot of the input via
// median splitting on round-robin axes, is read-only afterwards, and can be
// serialized to a portable pre-order text form that round-trips exactly.
package kdtree

import (
	"math"

	"github.com/hupe1980/kdgo/index"
)

// Compile-time check to ensure Tree satisfies the index interface.
var _ index.Index = (*Tree)(nil)

// Tree is a balanced KD-tree over a fixed-dimension point set.
//
// A Tree is safe for concurrent readers once built: no operation mutates it.
// A "changed" tree is a new Tree from a fresh Build.
type Tree struct {
	dimension int
	root      *node
	size      int
	opts      Options
}

// Build constructs a balanced KD-tree from points.
//
// The input is copied and tagged with its original positions (0-based);
// points is never mutated. Build fails with index.ErrEmptyDataset on an
// empty input and *index.ErrDimensionMismatch when the points do not share
// the dimension of the first point. On failure no tree is returned; a
// partially-built tree never escapes.
func Build(points []index.Point, optFns ...func(o *Options)) (*Tree, error) {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	dim, err := index.ValidateDataset(points)
	if err != nil {
		return nil, err
	}

	data := make([]index.IndexedPoint, len(points))
	for i, p := range points {
		data[i] = index.IndexedPoint{Index: i, Point: p.Clone()}
	}

	root := buildNode(data, -1, dim, opts.KeepMedianDuplicates)

	return &Tree{
		dimension: dim,
		root:      root,
		size:      root.count(),
		opts:      opts,
	}, nil
}

// Dimension returns the coordinate count shared by all indexed points.
// It is zero for an empty tree.
func (t *Tree) Dimension() int {
	return t.dimension
}

// Len returns the number of nodes in the tree. With median duplication
// enabled this can exceed the number of distinct input points.
func (t *Tree) Len() int {
	return t.size
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *Tree) Height() int {
	return t.root.height()
}

// NearestNeighbor returns the indexed point with minimal Euclidean distance
// to q. Ties (multiple points at equal minimal distance) are resolved by
// traversal order and are not a total-order guarantee.
//
// It returns the sentinel IndexedPoint (index -1) together with
// index.ErrNotBuilt when the tree has no root, and rejects queries whose
// dimension differs from the tree's with *index.ErrDimensionMismatch.
func (t *Tree) NearestNeighbor(q index.Point) (index.IndexedPoint, error) {
	if t.root == nil {
		return index.Sentinel(), index.ErrNotBuilt
	}

	if len(q) != t.dimension {
		return index.Sentinel(), &index.ErrDimensionMismatch{Expected: t.dimension, Actual: len(q)}
	}

	best := index.Sentinel()
	bestSqr := math.MaxFloat64

	t.root.nearest(q, &best, &bestSqr)

	// Hand back a copy so callers cannot mutate the tree's points.
	best.Point = best.Point.Clone()

	return best, nil
}
