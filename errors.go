package kdgo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/kdgo/index"
)

var (
	// ErrNotBuilt is returned when a query is issued before a tree exists.
	ErrNotBuilt = index.ErrNotBuilt

	// ErrEmptyDataset is returned when a tree is built from zero points.
	ErrEmptyDataset = index.ErrEmptyDataset

	// ErrNoDataset is returned by VerifiedNearestNeighbor when no
	// reference dataset is configured for brute-force validation.
	ErrNoDataset = errors.New("no reference dataset configured")
)

// ErrValidationMismatch indicates that the tree and the brute-force
// reference disagreed about a query's nearest neighbor.
type ErrValidationMismatch struct {
	Query       index.Point
	TreeResult  index.IndexedPoint
	BruteResult index.IndexedPoint

	// L1 is the coordinate drift between the tree's result point and the
	// original dataset row it claims to be, non-zero when a deserialized
	// tree carries corrupted coordinates.
	L1 float64
}

// Error returns the error message for the validation mismatch.
func (e *ErrValidationMismatch) Error() string {
	if e.TreeResult.Index != e.BruteResult.Index {
		return fmt.Sprintf("validation mismatch: tree index %d, brute-force index %d",
			e.TreeResult.Index, e.BruteResult.Index)
	}

	return fmt.Sprintf("validation mismatch: index %d agrees but coordinates drift with L1 error %g",
		e.TreeResult.Index, e.L1)
}
