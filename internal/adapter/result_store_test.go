package adapter

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "tourbrute.dev/pkg/tourbrute/internal/model"
)

type sliceResults []m.GridResult

func (s sliceResults) Range(f func(index uint64, item m.GridResult) error) error {
	for i, result := range s {
		if err := f(uint64(i), result); err != nil {
			return err
		}
	}

	return nil
}

type failingResults struct{ err error }

func (f failingResults) Range(func(uint64, m.GridResult) error) error {
	return f.err
}

func squareResult(index uint64) m.GridResult {
	return m.GridResult{
		Index:  index,
		Points: m.Route{m.Pt(-1, -1), m.Pt(-1, 1), m.Pt(1, -1), m.Pt(1, 1)},
		Best: m.Tour{
			Route:    m.Route{m.Pt(-1, 1), m.Pt(-1, -1), m.Pt(1, -1), m.Pt(1, 1)},
			Distance: 8,
		},
	}
}

func TestResultStore_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	store := NewResultStore()
	path := m.Path(filepath.Join(t.TempDir(), "results.yaml"))

	short := squareResult(0)
	long := m.GridResult{
		Index:  1,
		Points: m.Route{m.Pt(0, 0), m.Pt(3, 4)},
		Best:   m.Tour{Route: m.Route{m.Pt(0, 0), m.Pt(3, 4)}, Distance: 10},
	}
	unsolved := m.GridResult{
		Index:  2,
		Points: m.Route{m.Pt(math.NaN(), 0)},
		Best:   m.NoTour(),
	}

	summary := m.GridSummary{RunID: "run-1", Configurations: 3, Shortest: short, Longest: long}

	err := store.SaveResults(ctx, path, summary, sliceResults{short, long, unsolved})
	require.NoError(t, err)

	loaded, results, err := store.LoadResults(ctx, path)
	require.NoError(t, err)

	assert.Equal(t, "run-1", loaded.RunID)
	assert.Equal(t, uint64(3), loaded.Configurations)
	assert.Equal(t, short, loaded.Shortest)
	assert.Equal(t, long, loaded.Longest)

	require.Len(t, results, 3)
	assert.Equal(t, short, results[0])
	assert.Equal(t, long, results[1])

	assert.Equal(t, uint64(2), results[2].Index)
	assert.False(t, results[2].Best.Found())
	assert.True(t, math.IsInf(results[2].Best.Distance, 1))
	require.Len(t, results[2].Points, 1)
	assert.True(t, math.IsNaN(results[2].Points[0].X))
}

func TestResultStore_SummaryWithoutFiniteTours(t *testing.T) {
	ctx := context.Background()
	store := NewResultStore()
	path := m.Path(filepath.Join(t.TempDir(), "results.yaml"))

	summary := m.GridSummary{
		RunID:    "empty",
		Shortest: m.GridResult{Best: m.NoTour()},
		Longest:  m.GridResult{Best: m.NoTour()},
	}

	require.NoError(t, store.SaveResults(ctx, path, summary, sliceResults{}))

	data, err := os.ReadFile(string(path))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "shortest")

	loaded, results, err := store.LoadResults(ctx, path)
	require.NoError(t, err)

	assert.Empty(t, results)
	assert.False(t, loaded.Shortest.Best.Found())
	assert.False(t, loaded.Longest.Best.Found())
	assert.True(t, math.IsInf(loaded.Shortest.Best.Distance, 1))
}

func TestResultStore_LoadExample(t *testing.T) {
	summary, results, err := NewResultStore().LoadResults(context.Background(), m.Path("../../examples/square/results.yaml"))
	require.NoError(t, err)

	assert.Equal(t, uint64(1), summary.Configurations)
	assert.Equal(t, squareResult(0), summary.Shortest)
	require.Len(t, results, 1)
	assert.Equal(t, squareResult(0), results[0])
}

func TestResultStore_Errors(t *testing.T) {
	ctx := context.Background()
	store := NewResultStore()

	t.Run("save into missing directory", func(t *testing.T) {
		path := m.Path(filepath.Join(t.TempDir(), "missing", "results.yaml"))

		err := store.SaveResults(ctx, path, m.GridSummary{}, sliceResults{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "create results file")
	})

	t.Run("source failure is wrapped", func(t *testing.T) {
		sourceErr := errors.New("spill unreadable")
		path := m.Path(filepath.Join(t.TempDir(), "results.yaml"))

		err := store.SaveResults(ctx, path, m.GridSummary{}, failingResults{err: sourceErr})
		require.ErrorIs(t, err, sourceErr)
	})

	t.Run("cancelled while writing", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		path := m.Path(filepath.Join(t.TempDir(), "results.yaml"))

		err := store.SaveResults(cancelled, path, m.GridSummary{}, sliceResults{squareResult(0)})
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("load missing file", func(t *testing.T) {
		_, _, err := store.LoadResults(ctx, m.Path(filepath.Join(t.TempDir(), "missing.yaml")))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("load malformed result", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "results.yaml")
		writeTestFile(t, path, "run_id: x\nconfigurations: 1\n---\nindex: nope\n")

		_, _, err := store.LoadResults(ctx, m.Path(path))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode result 0")
	})
}
