package domain

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "tourbrute.dev/pkg/tourbrute/internal/model"
)

// threeValueBounds spans exactly three float32 values starting at 1.
func threeValueBounds() m.Bounds {
	second := math.Nextafter32(1, 2)
	third := math.Nextafter32(second, 2)

	return m.Bounds{Min: 1, Max: float64(third)}
}

func TestEnumerateGrid_SinglePointOrder(t *testing.T) {
	bounds := threeValueBounds()
	step, err := StepperFor(m.Float32)
	require.NoError(t, err)

	var got []m.Point

	err = EnumerateGrid(1, bounds, step, func(points m.Route) error {
		require.Len(t, points, 1)
		got = append(got, points[0])

		return nil
	})
	require.NoError(t, err)

	v0 := 1.0
	v1 := float64(math.Nextafter32(1, 2))
	v2 := bounds.Max

	want := []m.Point{
		m.Pt(v0, v0), m.Pt(v0, v1), m.Pt(v0, v2),
		m.Pt(v1, v0), m.Pt(v1, v1), m.Pt(v1, v2),
		m.Pt(v2, v0), m.Pt(v2, v1), m.Pt(v2, v2),
	}
	assert.Equal(t, want, got)
}

func TestEnumerateGrid_LastPointVariesSlowest(t *testing.T) {
	bounds := threeValueBounds()
	step, err := StepperFor(m.Float32)
	require.NoError(t, err)

	var (
		calls int
		first m.Route
		last  m.Route
	)

	err = EnumerateGrid(2, bounds, step, func(points m.Route) error {
		if calls == 0 {
			first = points.Clone()
		}

		if calls == 1 {
			// Only the first point advanced.
			assert.Equal(t, first[1], points[1])
			assert.NotEqual(t, first[0], points[0])
		}

		calls++
		last = points.Clone()

		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, 81, calls)
	assert.Equal(t, m.Route{m.Pt(1, 1), m.Pt(1, 1)}, first)
	assert.Equal(t, m.Route{m.Pt(bounds.Max, bounds.Max), m.Pt(bounds.Max, bounds.Max)}, last)
}

func TestEnumerateGrid_SingleValueAxis(t *testing.T) {
	calls := 0

	err := EnumerateGrid(3, m.Bounds{Min: 0.5, Max: 0.5}, NextUpper, func(points m.Route) error {
		calls++

		assert.Equal(t, m.Route{m.Pt(0.5, 0.5), m.Pt(0.5, 0.5), m.Pt(0.5, 0.5)}, points)

		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestEnumerateGrid_VisitErrorStops(t *testing.T) {
	wantErr := errors.New("stop")
	calls := 0

	err := EnumerateGrid(1, threeValueBounds(), NextUpper, func(m.Route) error {
		calls++
		if calls == 4 {
			return wantErr
		}

		return nil
	})
	require.ErrorIs(t, err, wantErr)
	assert.Equal(t, 4, calls)
}

func TestValidateGrid(t *testing.T) {
	tests := []struct {
		name    string
		count   int
		bounds  m.Bounds
		wantErr error
	}{
		{"valid", 2, m.Bounds{Min: -1, Max: 1}, nil},
		{"degenerate interval", 1, m.Bounds{Min: 0, Max: 0}, nil},
		{"zero count", 0, m.Bounds{Min: -1, Max: 1}, ErrInvalidCount},
		{"negative count", -3, m.Bounds{Min: -1, Max: 1}, ErrInvalidCount},
		{"reversed", 1, m.Bounds{Min: 1, Max: -1}, ErrInvalidBounds},
		{"nan", 1, m.Bounds{Min: math.NaN(), Max: 1}, ErrInvalidBounds},
		{"infinite max", 1, m.Bounds{Min: 0, Max: math.Inf(1)}, ErrInvalidBounds},
		{"infinite min", 1, m.Bounds{Min: math.Inf(-1), Max: 0}, ErrInvalidBounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateGrid(tt.count, tt.bounds)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestEnumerateGrid_InvalidArgs(t *testing.T) {
	err := EnumerateGrid(0, m.Bounds{Min: 0, Max: 1}, NextUpper, func(m.Route) error { return nil })
	require.ErrorIs(t, err, ErrInvalidCount)
}

func TestAxisLength(t *testing.T) {
	axis, err := AxisLength(threeValueBounds(), m.Float32)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), axis)

	axis, err = AxisLength(m.Bounds{Min: 2, Max: 2}, m.Float64)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), axis)

	tiny := math.SmallestNonzeroFloat64
	axis, err = AxisLength(m.Bounds{Min: -tiny, Max: tiny}, m.Float64)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), axis)

	_, err = AxisLength(m.Bounds{Min: 0, Max: 1}, m.Precision(1))
	require.ErrorIs(t, err, ErrUnknownPrecision)
}

func TestAxisLength_MatchesWalk(t *testing.T) {
	bounds := m.Bounds{Min: 0.1, Max: 0.1 + 1e-6}
	step, err := StepperFor(m.Float32)
	require.NoError(t, err)

	walked := uint64(0)
	for v := bounds.Min; v <= bounds.Max; v = step(v) {
		walked++
	}

	axis, err := AxisLength(bounds, m.Float32)
	require.NoError(t, err)
	assert.Equal(t, walked, axis)
}

func TestGridSize(t *testing.T) {
	size, ok, err := GridSize(2, threeValueBounds(), m.Float32)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, uint64(81), size)

	_, ok, err = GridSize(4, m.Bounds{Min: -1, Max: 1}, m.Float32)
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = GridSize(0, m.Bounds{Min: -1, Max: 1}, m.Float32)
	require.ErrorIs(t, err, ErrInvalidCount)
}
