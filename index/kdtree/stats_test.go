package kdtree

import (
	"strings"
	"testing"

	"github.com/hupe1980/kdgo/index"
	"github.com/hupe1980/kdgo/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStats(t *testing.T) {
	t.Run("DefaultPolicy", func(t *testing.T) {
		rng := util.NewRNG(11)
		points := rng.GenerateRandomPoints(100, 2)

		tree, err := Build(points)
		require.NoError(t, err)

		stats := tree.Stats()
		assert.Equal(t, 2, stats.Dimension)
		assert.Equal(t, 100, stats.Size)
		assert.Equal(t, uint64(100), stats.DistinctPoints)
		assert.Equal(t, uint64(0), stats.DuplicatedNodes)
	})

	t.Run("MedianDuplicates", func(t *testing.T) {
		points := []index.Point{
			{0.0, 0.0},
			{1.0, 1.0},
			{2.0, 2.0},
			{3.0, 3.0},
		}

		tree, err := Build(points, func(o *Options) {
			o.KeepMedianDuplicates = true
		})
		require.NoError(t, err)

		stats := tree.Stats()
		assert.Equal(t, uint64(4), stats.DistinctPoints)
		assert.Greater(t, stats.DuplicatedNodes, uint64(0))
		assert.Equal(t, stats.Size, int(stats.DistinctPoints+stats.DuplicatedNodes))
	})

	t.Run("LargeOriginalIndices", func(t *testing.T) {
		// Indices above 2^32, as a decoded tree can carry, must not
		// alias smaller ones in the distinct count.
		tree, err := Decode(strings.NewReader("0\n4294967297\n7\n0\n1\n3\n-1\n-1\n-1\n"))
		require.NoError(t, err)

		stats := tree.Stats()
		assert.Equal(t, uint64(2), stats.DistinctPoints)
		assert.Equal(t, uint64(0), stats.DuplicatedNodes)
	})

	t.Run("String", func(t *testing.T) {
		tree, err := Build([]index.Point{{1.0}})
		require.NoError(t, err)

		assert.Contains(t, tree.Stats().String(), "size=1")
	})
}

func TestValidate(t *testing.T) {
	t.Run("EmptyTree", func(t *testing.T) {
		var tree Tree
		assert.NoError(t, tree.Validate())
	})

	t.Run("BrokenAxisCycle", func(t *testing.T) {
		// Root axis must be 0 for a decoded tree of dimension 2.
		tree, err := Decode(strings.NewReader("1\n0\n1 2\n-1\n-1\n"))
		require.NoError(t, err)

		assert.Error(t, tree.Validate())
	})

	t.Run("BrokenPartition", func(t *testing.T) {
		// Left child lies above the root's split coordinate.
		tree, err := Decode(strings.NewReader("0\n0\n1 1\n1\n1\n5 5\n-1\n-1\n-1\n"))
		require.NoError(t, err)

		assert.Error(t, tree.Validate())
	})
}
