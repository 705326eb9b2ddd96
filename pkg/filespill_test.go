package pkg

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type spilledTour struct {
	Index    uint64
	Xs, Ys   []float64
	Distance float64
}

func newTestSpill[T any](t *testing.T, options ...Option) FileSpill[T] {
	t.Helper()

	spill, err := NewFileSpill[T](append([]Option{WithDir(t.TempDir())}, options...)...)
	require.NoError(t, err)

	t.Cleanup(func() { _ = spill.Close() })

	return spill
}

func TestFileSpill(t *testing.T) {
	t.Run("NewFileSpill defaults to the system temp directory", func(t *testing.T) {
		spill, err := NewFileSpill[int]()
		require.NoError(t, err)
		defer spill.Close()

		require.Equal(t, filepath.Join(os.TempDir(), "tourbrute-spill"), filepath.Dir(spill.Path()))
	})

	t.Run("WithDir places the file in the given directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "spill")

		spill, err := NewFileSpill[int](WithDir(dir))
		require.NoError(t, err)
		defer spill.Close()

		require.Equal(t, dir, filepath.Dir(spill.Path()))
		require.FileExists(t, spill.Path())
	})

	t.Run("WithDir ignores an empty directory", func(t *testing.T) {
		spill, err := NewFileSpill[int](WithDir(""))
		require.NoError(t, err)
		defer spill.Close()

		require.Equal(t, filepath.Join(os.TempDir(), "tourbrute-spill"), filepath.Dir(spill.Path()))
	})

	t.Run("Append and Get", func(t *testing.T) {
		spill := newTestSpill[string](t)

		require.NoError(t, spill.Append("first"))
		require.NoError(t, spill.Append("second"))

		val, err := spill.Get(0)
		require.NoError(t, err)
		require.Equal(t, "first", val)

		val, err = spill.Get(1)
		require.NoError(t, err)
		require.Equal(t, "second", val)

		val, err = spill.Get(3)
		require.Error(t, err)
		require.Equal(t, "", val)
	})

	t.Run("Len returns correct count", func(t *testing.T) {
		spill := newTestSpill[int](t)

		require.Equal(t, uint64(0), spill.Len())

		require.NoError(t, spill.Append(1))
		require.Equal(t, uint64(1), spill.Len())

		require.NoError(t, spill.AppendBatch([]int{2, 3}))
		require.Equal(t, uint64(3), spill.Len())
	})

	t.Run("Range iterates all items in order", func(t *testing.T) {
		spill := newTestSpill[int](t)

		expected := []int{100, 200, 300}
		require.NoError(t, spill.AppendBatch(expected))

		var (
			collected []int
			indices   []uint64
		)

		err := spill.Range(func(index uint64, item int) error {
			indices = append(indices, index)
			collected = append(collected, item)

			return nil
		})

		require.NoError(t, err)
		require.Equal(t, expected, collected)
		require.Equal(t, []uint64{0, 1, 2}, indices)
	})

	t.Run("Range callback error stops iteration", func(t *testing.T) {
		spill := newTestSpill[int](t)
		require.NoError(t, spill.AppendBatch([]int{1, 2, 3}))

		stop := errors.New("stop at index 1")
		count := 0

		err := spill.Range(func(index uint64, _ int) error {
			count++
			if index == 1 {
				return stop
			}

			return nil
		})

		require.ErrorIs(t, err, stop)
		require.Equal(t, 2, count)
	})

	t.Run("Range can be repeated", func(t *testing.T) {
		spill := newTestSpill[int](t)
		require.NoError(t, spill.AppendBatch([]int{7, 8}))

		for range 2 {
			sum := 0
			require.NoError(t, spill.Range(func(_ uint64, item int) error {
				sum += item
				return nil
			}))
			require.Equal(t, 15, sum)
		}
	})

	t.Run("Tour records with non-finite distances", func(t *testing.T) {
		spill := newTestSpill[spilledTour](t)

		solved := spilledTour{Index: 0, Xs: []float64{-1, -1, 1, 1}, Ys: []float64{1, -1, -1, 1}, Distance: 8}
		unsolved := spilledTour{Index: 1, Xs: []float64{math.NaN()}, Ys: []float64{0}, Distance: math.Inf(1)}

		require.NoError(t, spill.Append(solved))
		require.NoError(t, spill.Append(unsolved))

		got, err := spill.Get(0)
		require.NoError(t, err)
		require.Equal(t, solved, got)

		got, err = spill.Get(1)
		require.NoError(t, err)
		assert.True(t, math.IsInf(got.Distance, 1))
		assert.True(t, math.IsNaN(got.Xs[0]))
	})

	t.Run("Close removes the file and rejects further use", func(t *testing.T) {
		spill, err := NewFileSpill[int](WithDir(t.TempDir()))
		require.NoError(t, err)
		require.NoError(t, spill.Append(1))

		require.NoError(t, spill.Close())
		require.NoFileExists(t, spill.Path())

		require.ErrorIs(t, spill.Append(2), ErrClosed)
		require.ErrorIs(t, spill.Range(func(uint64, int) error { return nil }), ErrClosed)

		_, err = spill.Get(0)
		require.ErrorIs(t, err, ErrClosed)

		require.NoError(t, spill.Close(), "second close is a no-op")
	})

	t.Run("WithKeep leaves the file after Close", func(t *testing.T) {
		spill, err := NewFileSpill[int](WithDir(t.TempDir()), WithKeep())
		require.NoError(t, err)
		require.NoError(t, spill.Append(1))

		require.NoError(t, spill.Close())
		require.FileExists(t, spill.Path())
	})

	t.Run("unwritable directory", func(t *testing.T) {
		blocker := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(blocker, nil, 0o600))

		_, err := NewFileSpill[int](WithDir(filepath.Join(blocker, "spill")))
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to create spill directory")
	})
}

func TestEdgeCases(t *testing.T) {
	t.Run("empty filespill range returns no items", func(t *testing.T) {
		spill := newTestSpill[int](t)

		count := 0
		err := spill.Range(func(uint64, int) error {
			count++
			return nil
		})

		require.NoError(t, err)
		require.Equal(t, 0, count)
	})

	t.Run("get on empty filespill returns error", func(t *testing.T) {
		spill := newTestSpill[int](t)

		_, err := spill.Get(0)
		require.Error(t, err)
	})

	t.Run("append float special values", func(t *testing.T) {
		spill := newTestSpill[float64](t)

		require.NoError(t, spill.AppendBatch([]float64{0.0, math.MaxFloat64, math.SmallestNonzeroFloat64}))

		v0, err := spill.Get(0)
		require.NoError(t, err)
		require.Equal(t, 0.0, v0)

		v2, err := spill.Get(2)
		require.NoError(t, err)
		require.Equal(t, math.SmallestNonzeroFloat64, v2)
	})

	t.Run("append empty slice", func(t *testing.T) {
		spill := newTestSpill[[]float64](t)

		require.NoError(t, spill.Append([]float64{}))

		val, err := spill.Get(0)
		require.NoError(t, err)
		require.Empty(t, val)
	})
}

// BenchmarkAppend measures the performance of appending items.
func BenchmarkAppend(b *testing.B) {
	spill, err := NewFileSpill[spilledTour](WithDir(b.TempDir()))
	if err != nil {
		b.Fatalf("failed to create filespill: %v", err)
	}
	defer spill.Close()

	item := spilledTour{Xs: []float64{-1, -1, 1, 1}, Ys: []float64{1, -1, -1, 1}, Distance: 8}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		item.Index = uint64(i)
		_ = spill.Append(item)
	}
}

// BenchmarkRange measures the performance of iterating all items.
func BenchmarkRange(b *testing.B) {
	spill, err := NewFileSpill[int](WithDir(b.TempDir()))
	if err != nil {
		b.Fatalf("failed to create filespill: %v", err)
	}
	defer spill.Close()

	for i := 0; i < 1000; i++ {
		_ = spill.Append(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = spill.Range(func(uint64, int) error {
			return nil
		})
	}
}

func TestFileSpill_ItemsAreIndependent(t *testing.T) {
	spill := newTestSpill[spilledTour](t)

	require.NoError(t, spill.Append(spilledTour{Index: 0, Xs: []float64{1, 2}, Ys: []float64{3, 4}, Distance: 8}))
	require.NoError(t, spill.Append(spilledTour{Index: 1, Xs: []float64{5, 6}, Ys: []float64{7, 8}}))

	var items []spilledTour

	require.NoError(t, spill.Range(func(_ uint64, item spilledTour) error {
		items = append(items, item)
		return nil
	}))

	require.Len(t, items, 2)
	assert.Equal(t, []float64{1, 2}, items[0].Xs)
	assert.Equal(t, 8.0, items[0].Distance)
	assert.Equal(t, 0.0, items[1].Distance, "zero fields must not carry over")

	second, err := spill.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, second.Distance)
	assert.Equal(t, []float64{5, 6}, second.Xs)
}
