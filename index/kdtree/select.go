package kdtree

import "github.com/hupe1980/kdgo/index"

// selectMedian rearranges data so that data[k] holds the element that would
// occupy position k if data were sorted by the given axis: everything before
// k compares <= data[k], everything after compares >= data[k]. This is a
// selection (nth-element), not a full sort.
func selectMedian(data []index.IndexedPoint, k, axis int) {
	lo, hi := 0, len(data)-1
	for lo < hi {
		p := partition(data, lo, hi, axis)
		switch {
		case p == k:
			return
		case p < k:
			lo = p + 1
		default:
			hi = p - 1
		}
	}
}

// partition performs a Lomuto partition of data[lo:hi+1] around a
// median-of-three pivot and returns the pivot's final position.
func partition(data []index.IndexedPoint, lo, hi, axis int) int {
	mid := lo + (hi-lo)/2

	// Median-of-three pivot selection guards against already-ordered
	// ranges degrading to quadratic behavior.
	if data[mid].Point[axis] < data[lo].Point[axis] {
		data[mid], data[lo] = data[lo], data[mid]
	}
	if data[hi].Point[axis] < data[lo].Point[axis] {
		data[hi], data[lo] = data[lo], data[hi]
	}
	if data[hi].Point[axis] < data[mid].Point[axis] {
		data[hi], data[mid] = data[mid], data[hi]
	}
	data[mid], data[hi] = data[hi], data[mid]

	pivot := data[hi].Point[axis]
	i := lo
	for j := lo; j < hi; j++ {
		if data[j].Point[axis] < pivot {
			data[i], data[j] = data[j], data[i]
			i++
		}
	}
	data[i], data[hi] = data[hi], data[i]

	return i
}
