package kdgo

import (
	"context"
	"strings"
	"testing"

	"github.com/hupe1980/kdgo/blobstore"
	"github.com/hupe1980/kdgo/index"
	"github.com/hupe1980/kdgo/metric"
	"github.com/hupe1980/kdgo/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	t.Run("ConcreteScenario", func(t *testing.T) {
		db, err := Build([]Point{
			{0.0, 0.0},
			{1.0, 1.0},
			{2.0, 2.0},
			{3.0, 3.0},
		})
		require.NoError(t, err)

		query := Point{2.1, 2.1}

		best, err := db.NearestNeighbor(query)
		require.NoError(t, err)
		assert.Equal(t, 2, best.Index)
		assert.InDelta(t, 0.02, metric.SquaredL2(best.Point, query), 1e-12)
	})

	t.Run("EmptyDataset", func(t *testing.T) {
		_, err := Build(nil)
		assert.ErrorIs(t, err, ErrEmptyDataset)
	})

	t.Run("KeepMedianDuplicates", func(t *testing.T) {
		points := []Point{{0.0}, {1.0}, {2.0}, {3.0}}

		db, err := Build(points, WithKeepMedianDuplicates())
		require.NoError(t, err)
		assert.Greater(t, db.Len(), len(points))

		stats := db.Tree().Stats()
		assert.Equal(t, uint64(len(points)), stats.DistinctPoints)
	})
}

func TestVerifiedNearestNeighbor(t *testing.T) {
	t.Run("Agrees", func(t *testing.T) {
		rng := util.NewRNG(555)
		points := rng.GenerateRandomPoints(200, 3)
		queries := rng.GenerateRandomPoints(50, 3)

		db, err := Build(points, WithValidation(true))
		require.NoError(t, err)

		for _, q := range queries {
			best, err := db.VerifiedNearestNeighbor(q)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, best.Index, 0)
		}
	})

	t.Run("NoDataset", func(t *testing.T) {
		db, err := Build([]Point{{1.0}})
		require.NoError(t, err)

		_, err = db.VerifiedNearestNeighbor(Point{1.0})
		assert.ErrorIs(t, err, ErrNoDataset)
	})

	t.Run("IndexMismatch", func(t *testing.T) {
		ctx := context.Background()
		store := blobstore.NewMemoryStore()

		db, err := Build([]Point{{0.0, 0.0}, {10.0, 10.0}})
		require.NoError(t, err)
		require.NoError(t, db.Save(ctx, store, "t.kdtree"))

		// Validate against a dataset the tree was NOT built from.
		loaded, err := Load(ctx, store, "t.kdtree", WithDataset([]Point{
			{100.0, 100.0},
			{0.5, 0.5},
		}))
		require.NoError(t, err)

		_, err = loaded.VerifiedNearestNeighbor(Point{0.0, 0.0})

		var vm *ErrValidationMismatch
		require.ErrorAs(t, err, &vm)
		assert.Equal(t, 0, vm.TreeResult.Index)
		assert.NotEqual(t, vm.TreeResult.Index, vm.BruteResult.Index)
		assert.Contains(t, vm.Error(), "brute-force index")
	})

	t.Run("CoordinateDrift", func(t *testing.T) {
		ctx := context.Background()
		store := blobstore.NewMemoryStore()

		db, err := Build([]Point{{0.0, 0.0}, {10.0, 10.0}})
		require.NoError(t, err)
		require.NoError(t, db.Save(ctx, store, "t.kdtree"))

		// Same nearest index, but the dataset row differs from the
		// coordinates stored in the tree.
		loaded, err := Load(ctx, store, "t.kdtree", WithDataset([]Point{
			{0.0, 0.0},
			{9.0, 9.0},
		}))
		require.NoError(t, err)

		_, err = loaded.VerifiedNearestNeighbor(Point{10.0, 10.0})

		var vm *ErrValidationMismatch
		require.ErrorAs(t, err, &vm)
		assert.Equal(t, vm.TreeResult.Index, vm.BruteResult.Index)
		assert.Greater(t, vm.L1, 0.0)
		assert.Contains(t, vm.Error(), "drift")
	})
}

func TestSaveLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("RoundTrip", func(t *testing.T) {
		rng := util.NewRNG(777)
		points := rng.GenerateRandomPoints(300, 2)
		queries := rng.GenerateRandomPoints(100, 2)

		db, err := Build(points)
		require.NoError(t, err)

		store := blobstore.NewMemoryStore()
		require.NoError(t, db.Save(ctx, store, "points.kdtree"))

		loaded, err := Load(ctx, store, "points.kdtree", WithDataset(points))
		require.NoError(t, err)

		assert.Equal(t, db.Len(), loaded.Len())
		assert.Equal(t, db.Dimension(), loaded.Dimension())

		for _, q := range queries {
			want, err := db.NearestNeighbor(q)
			require.NoError(t, err)

			got, err := loaded.VerifiedNearestNeighbor(q)
			require.NoError(t, err)
			assert.Equal(t, want.Index, got.Index)
		}
	})

	t.Run("Compressed", func(t *testing.T) {
		db, err := Build([]Point{{0.0}, {1.0}, {2.0}})
		require.NoError(t, err)

		store := blobstore.NewMemoryStore()
		require.NoError(t, db.Save(ctx, store, "points.kdtree.gz"))

		loaded, err := Load(ctx, store, "points.kdtree.gz")
		require.NoError(t, err)
		assert.Equal(t, db.Len(), loaded.Len())
	})

	t.Run("LoadMissing", func(t *testing.T) {
		_, err := Load(ctx, blobstore.NewMemoryStore(), "missing")
		assert.ErrorIs(t, err, blobstore.ErrNotFound)
	})
}

func TestErrValidationMismatch(t *testing.T) {
	err := &ErrValidationMismatch{
		TreeResult:  index.IndexedPoint{Index: 1},
		BruteResult: index.IndexedPoint{Index: 2},
	}
	assert.True(t, strings.Contains(err.Error(), "tree index 1"))
}
