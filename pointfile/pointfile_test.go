package pointfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hupe1980/kdgo/index"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPoints(t *testing.T) {
	t.Run("CommaSeparated", func(t *testing.T) {
		points, err := ReadPoints(strings.NewReader("1.0,2.0\n3.0,4.0\n"))
		require.NoError(t, err)
		assert.Equal(t, []index.Point{{1.0, 2.0}, {3.0, 4.0}}, points)
	})

	t.Run("WhitespaceSeparated", func(t *testing.T) {
		points, err := ReadPoints(strings.NewReader("1 2 3\n4 5 6\n"))
		require.NoError(t, err)
		assert.Equal(t, []index.Point{{1, 2, 3}, {4, 5, 6}}, points)
	})

	t.Run("MixedSeparators", func(t *testing.T) {
		points, err := ReadPoints(strings.NewReader("1, 2,\t3\n4 ,5, 6\n"))
		require.NoError(t, err)
		assert.Equal(t, []index.Point{{1, 2, 3}, {4, 5, 6}}, points)
	})

	t.Run("BlankLinesSkipped", func(t *testing.T) {
		points, err := ReadPoints(strings.NewReader("1 2\n\n3 4\n\n"))
		require.NoError(t, err)
		assert.Len(t, points, 2)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := ReadPoints(strings.NewReader(""))
		assert.ErrorIs(t, err, index.ErrEmptyDataset)
	})

	t.Run("InconsistentDimensions", func(t *testing.T) {
		_, err := ReadPoints(strings.NewReader("1 2\n3 4 5\n"))

		var dm *index.ErrDimensionMismatch
		require.ErrorAs(t, err, &dm)
		assert.Equal(t, 2, dm.Expected)
		assert.Equal(t, 3, dm.Actual)
	})

	t.Run("InvalidCoordinate", func(t *testing.T) {
		_, err := ReadPoints(strings.NewReader("1 two\n"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "line 1")
	})
}

func TestWriteResults(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, WriteResults(&sb, []int{2, 0, 1}))
	assert.Equal(t, "2\n0\n1\n", sb.String())
}

func TestWriteResultsFile(t *testing.T) {
	t.Run("WritesAtomically", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "queries.results")

		require.NoError(t, WriteResultsFile(path, []int{5, 3}))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "5\n3\n", string(data))

		// No temp files left behind.
		entries, err := os.ReadDir(filepath.Dir(path))
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})
}
