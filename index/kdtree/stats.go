package kdtree

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// Stats describes the shape of a built (or decoded) tree.
type Stats struct {
	// Dimension is the coordinate count shared by all nodes.
	Dimension int

	// Size is the number of nodes.
	Size int

	// Height is the number of nodes on the longest root-to-leaf path.
	Height int

	// DistinctPoints is the number of distinct original dataset indices
	// reachable in the tree.
	DistinctPoints uint64

	// DuplicatedNodes is the number of nodes beyond the first occurrence
	// of their original index. Non-zero only for trees built with
	// KeepMedianDuplicates (or decoded from files that carried it).
	DuplicatedNodes uint64
}

// String returns a human-readable summary of the stats.
func (s Stats) String() string {
	return fmt.Sprintf("dimension=%d size=%d height=%d distinct=%d duplicated=%d",
		s.Dimension, s.Size, s.Height, s.DistinctPoints, s.DuplicatedNodes)
}

// Stats walks the tree and reports its shape. Original indices are tracked
// in a 64-bit roaring bitmap so duplicated medians are counted exactly,
// including indices from decoded trees that exceed the 32-bit range.
func (t *Tree) Stats() Stats {
	seen := roaring64.New()

	var walk func(n *node)
	walk = func(n *node) {
		if n == nil {
			return
		}
		if n.location.Index >= 0 {
			seen.Add(uint64(n.location.Index))
		}
		walk(n.left)
		walk(n.right)
	}
	walk(t.root)

	distinct := seen.GetCardinality()

	return Stats{
		Dimension:       t.dimension,
		Size:            t.size,
		Height:          t.Height(),
		DistinctPoints:  distinct,
		DuplicatedNodes: uint64(t.size) - distinct,
	}
}

// Validate checks the structural invariants of the tree: axes cycle
// round-robin by depth, every node's point has the tree dimension, and the
// partition guarantee holds (left subtree <= node <= right subtree on the
// node's axis). It is intended for decoded trees, whose contents arrive
// from outside the build path.
func (t *Tree) Validate() error {
	if t.root == nil {
		return nil
	}

	return t.validateNode(t.root, -1)
}

func (t *Tree) validateNode(n *node, parentAxis int) error {
	wantAxis := (parentAxis + 1) % t.dimension
	if n.axis != wantAxis {
		return fmt.Errorf("kdtree: node %d: axis %d, want %d", n.location.Index, n.axis, wantAxis)
	}

	if len(n.location.Point) != t.dimension {
		return fmt.Errorf("kdtree: node %d: %d coordinates, want %d",
			n.location.Index, len(n.location.Point), t.dimension)
	}

	pivot := n.location.Point[n.axis]

	if err := checkBound(n.left, n.axis, pivot, false); err != nil {
		return err
	}
	if err := checkBound(n.right, n.axis, pivot, true); err != nil {
		return err
	}

	if n.left != nil {
		if err := t.validateNode(n.left, n.axis); err != nil {
			return err
		}
	}
	if n.right != nil {
		if err := t.validateNode(n.right, n.axis); err != nil {
			return err
		}
	}

	return nil
}

// checkBound verifies every point in the subtree respects the partition
// bound of an ancestor on the given axis.
func checkBound(n *node, axis int, pivot float64, lower bool) error {
	if n == nil {
		return nil
	}

	if len(n.location.Point) <= axis {
		return fmt.Errorf("kdtree: node %d: missing coordinate %d", n.location.Index, axis)
	}

	c := n.location.Point[axis]
	if lower && c < pivot {
		return fmt.Errorf("kdtree: node %d: coordinate %g on axis %d below partition bound %g",
			n.location.Index, c, axis, pivot)
	}
	if !lower && c > pivot {
		return fmt.Errorf("kdtree: node %d: coordinate %g on axis %d above partition bound %g",
			n.location.Index, c, axis, pivot)
	}

	if err := checkBound(n.left, axis, pivot, lower); err != nil {
		return err
	}

	return checkBound(n.right, axis, pivot, lower)
}
