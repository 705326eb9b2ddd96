package domain

import (
	"errors"
	"fmt"
	"math"
	"math/bits"

	m "tourbrute.dev/pkg/tourbrute/internal/model"
)

var (
	// ErrInvalidCount is returned for a grid configuration size below one.
	ErrInvalidCount = errors.New("grid: count must be at least 1")
	// ErrInvalidBounds is returned for non-finite bounds or Min > Max.
	ErrInvalidBounds = errors.New("grid: bounds must be finite with min <= max")
)

// ValidateGrid checks the grid run parameters.
func ValidateGrid(count int, bounds m.Bounds) error {
	if count < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidCount, count)
	}

	if math.IsNaN(bounds.Min) || math.IsNaN(bounds.Max) ||
		math.IsInf(bounds.Min, 0) || math.IsInf(bounds.Max, 0) ||
		bounds.Min > bounds.Max {
		return fmt.Errorf("%w: got [%g, %g]", ErrInvalidBounds, bounds.Min, bounds.Max)
	}

	return nil
}

// EnumerateGrid calls visit with every configuration of count points whose
// coordinates lie on the grid spanned by bounds. Each axis starts at
// bounds.Min and advances with step while the value stays <= bounds.Max;
// step must return a value strictly greater than its input.
//
// The buffer passed to visit is reused between calls. Points are filled
// from the last index down: the last point varies slowest. Within a point,
// x is the outer loop and y the inner one. An error returned by visit stops
// the enumeration and is returned as is.
func EnumerateGrid(count int, bounds m.Bounds, step Stepper, visit func(m.Route) error) error {
	if err := ValidateGrid(count, bounds); err != nil {
		return err
	}

	points := make(m.Route, count)

	return enumerateGrid(count, points, bounds, step, visit)
}

func enumerateGrid(count int, points m.Route, bounds m.Bounds, step Stepper, visit func(m.Route) error) error {
	if count == 0 {
		return visit(points)
	}

	for x := bounds.Min; x <= bounds.Max; x = step(x) {
		for y := bounds.Min; y <= bounds.Max; y = step(y) {
			points[count-1] = m.Pt(x, y)

			if err := enumerateGrid(count-1, points, bounds, step, visit); err != nil {
				return err
			}
		}
	}

	return nil
}

// AxisLength returns how many values one grid axis visits between bounds
// when stepped at the given precision.
func AxisLength(bounds m.Bounds, precision m.Precision) (uint64, error) {
	if err := ValidateGrid(1, bounds); err != nil {
		return 0, err
	}

	switch precision {
	case m.Float32:
		second := NextUpper32(float32(bounds.Min))

		last := float32(bounds.Max)
		if float64(last) > bounds.Max {
			last = math.Nextafter32(last, float32(math.Inf(-1)))
		}

		if float64(second) > bounds.Max {
			return 1, nil
		}

		return 1 + uint64(ordered32(last)-ordered32(second)) + 1, nil
	case m.Float64:
		return uint64(ordered64(bounds.Max)-ordered64(bounds.Min)) + 1, nil
	}

	return 0, fmt.Errorf("%w: %s", ErrUnknownPrecision, precision)
}

// GridSize returns the number of configurations EnumerateGrid visits for
// the given parameters. ok is false if the count overflows uint64.
func GridSize(count int, bounds m.Bounds, precision m.Precision) (size uint64, ok bool, err error) {
	if err := ValidateGrid(count, bounds); err != nil {
		return 0, false, err
	}

	axis, err := AxisLength(bounds, precision)
	if err != nil {
		return 0, false, err
	}

	size = 1

	for i := 0; i < 2*count; i++ {
		hi, lo := bits.Mul64(size, axis)
		if hi != 0 {
			return 0, false, nil
		}

		size = lo
	}

	return size, true, nil
}

// ordered64 maps v to an integer that preserves float order, with both
// zeros mapping to 0.
func ordered64(v float64) int64 {
	b := math.Float64bits(v)
	if b&(1<<63) != 0 {
		return -int64(b &^ (1 << 63))
	}

	return int64(b)
}

func ordered32(v float32) int64 {
	b := math.Float32bits(v)
	if b&(1<<31) != 0 {
		return -int64(b &^ (1 << 31))
	}

	return int64(b)
}
