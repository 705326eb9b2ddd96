package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "tourbrute.dev/pkg/tourbrute/internal/model"
)

func TestNextUpper_Specials(t *testing.T) {
	assert.True(t, math.IsNaN(NextUpper(math.NaN())))
	assert.Equal(t, math.Inf(1), NextUpper(math.Inf(1)))
	assert.Equal(t, -math.MaxFloat64, NextUpper(math.Inf(-1)))
	assert.Equal(t, math.Inf(1), NextUpper(math.MaxFloat64))

	smallest := math.Float64frombits(1)
	assert.Equal(t, smallest, NextUpper(0))
	assert.Equal(t, smallest, NextUpper(math.Copysign(0, -1)))
	assert.Greater(t, NextUpper(0), 0.0)

	// The negative subnormal closest to zero steps to negative zero.
	next := NextUpper(-smallest)
	assert.Equal(t, 0.0, next)
	assert.True(t, math.Signbit(next))
}

func TestNextUpper_MatchesNextafter(t *testing.T) {
	values := []float64{
		-1, 1, -0.5, 0.5, 1e-300, -1e-300, 123456.789, -math.MaxFloat64,
		math.SmallestNonzeroFloat64 * 7, 2.2250738585072014e-308,
	}

	for _, v := range values {
		next := NextUpper(v)
		require.Greater(t, next, v, "v=%g", v)
		assert.Equal(t, math.Nextafter(v, math.Inf(1)), next, "v=%g", v)
	}
}

func TestNextUpper32_Specials(t *testing.T) {
	nan := float32(math.NaN())
	assert.True(t, math.IsNaN(float64(NextUpper32(nan))))

	inf := float32(math.Inf(1))
	assert.Equal(t, inf, NextUpper32(inf))
	assert.Equal(t, float32(-math.MaxFloat32), NextUpper32(float32(math.Inf(-1))))

	smallest := math.Float32frombits(1)
	assert.Equal(t, smallest, NextUpper32(0))
	assert.Equal(t, smallest, NextUpper32(float32(math.Copysign(0, -1))))
}

func TestNextUpper32_MatchesNextafter(t *testing.T) {
	values := []float32{-1, 1, -0.5, 0.5, 1e-30, -1e-30, 3.25, math.SmallestNonzeroFloat32}

	for _, v := range values {
		next := NextUpper32(v)
		require.Greater(t, next, v, "v=%g", v)
		assert.Equal(t, math.Nextafter32(v, float32(math.Inf(1))), next, "v=%g", v)
	}
}

func TestNextUpper32_WalksAcrossZero(t *testing.T) {
	v := -math.Float32frombits(2)
	v = NextUpper32(v)
	assert.Equal(t, -math.Float32frombits(1), v)

	v = NextUpper32(v)
	assert.Equal(t, float32(0), v)

	v = NextUpper32(v)
	assert.Equal(t, math.Float32frombits(1), v)
}

func TestStepperFor(t *testing.T) {
	step32, err := StepperFor(m.Float32)
	require.NoError(t, err)
	assert.Equal(t, float64(math.Nextafter32(1, 2)), step32(1))

	step64, err := StepperFor(m.Float64)
	require.NoError(t, err)
	assert.Equal(t, math.Nextafter(1, 2), step64(1))

	_, err = StepperFor(m.Precision(8))
	require.ErrorIs(t, err, ErrUnknownPrecision)
}
