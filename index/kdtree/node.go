package kdtree

import (
	"github.com/hupe1980/kdgo/index"
	"github.com/hupe1980/kdgo/metric"
)

// node is a tree node owning its point and up to two children. Ownership is
// strictly hierarchical: there are no back-references and no sharing.
type node struct {
	axis     int // separating axis of this node
	location index.IndexedPoint
	left     *node
	right    *node
}

// buildNode recursively partitions data into a balanced subtree. parentAxis
// is the axis used by the caller's node (-1 for the root); the node's own
// axis cycles round-robin by depth, independent of the data distribution.
// data must be non-empty; the caller validates the dataset before recursing.
func buildNode(data []index.IndexedPoint, parentAxis, dim int, keepMedianDuplicates bool) *node {
	n := &node{axis: (parentAxis + 1) % dim}

	if len(data) < 2 {
		n.location = data[0]
		return n
	}

	mid := len(data) / 2
	selectMedian(data, mid, n.axis)
	n.location = data[mid]

	if left := data[:mid]; len(left) > 0 {
		n.left = buildNode(left, n.axis, dim, keepMedianDuplicates)
	}

	if keepMedianDuplicates {
		// Historical behavior: the median stays in the right sub-range
		// and is stored again beneath this node.
		n.right = buildNode(data[mid:], n.axis, dim, keepMedianDuplicates)
	} else if right := data[mid+1:]; len(right) > 0 {
		n.right = buildNode(right, n.axis, dim, keepMedianDuplicates)
	}

	return n
}

// nearest descends the subtree rooted at n, updating best/bestSqr with any
// closer point found. The near child is chosen by comparing the query to the
// node's coordinate on the splitting axis; when the near child is absent the
// other child is visited instead, so every reachable leaf is examined. After
// the near-side visit, the far side is searched only when the splitting
// hyperplane lies within the current best hypersphere.
func (n *node) nearest(q index.Point, best *index.IndexedPoint, bestSqr *float64) {
	if dist := metric.SquaredL2(n.location.Point, q); dist < *bestSqr {
		*bestSqr = dist
		*best = n.location
	}

	planeDist := q[n.axis] - n.location.Point[n.axis]

	near, far := n.left, n.right
	if planeDist > 0 {
		near, far = far, near
	}

	if near != nil {
		near.nearest(q, best, bestSqr)
	} else if far != nil {
		far.nearest(q, best, bestSqr)
	}

	if planeDist*planeDist <= *bestSqr {
		if far != nil {
			far.nearest(q, best, bestSqr)
		} else if near != nil {
			near.nearest(q, best, bestSqr)
		}
	}
}

// height returns the number of nodes on the longest root-to-leaf path.
func (n *node) height() int {
	if n == nil {
		return 0
	}

	lh, rh := n.left.height(), n.right.height()
	if rh > lh {
		lh = rh
	}

	return lh + 1
}

// count returns the number of nodes in the subtree.
func (n *node) count() int {
	if n == nil {
		return 0
	}

	return 1 + n.left.count() + n.right.count()
}
