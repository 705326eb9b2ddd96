package domain

import (
	"errors"
	"fmt"
	"math"

	m "tourbrute.dev/pkg/tourbrute/internal/model"
)

// ErrUnknownPrecision is returned for a precision other than Float32 or Float64.
var ErrUnknownPrecision = errors.New("unknown precision")

// NextUpper returns the smallest float64 strictly greater than v.
//
// NaN and +Inf are returned unchanged. Both zeros step to the smallest
// positive subnormal. The successor is computed on the bit pattern so that
// platforms flushing subnormals to zero after arithmetic still step through
// them.
func NextUpper(v float64) float64 {
	const (
		tinyBits      = uint64(0x1)
		clearSignMask = uint64(0x7fff_ffff_ffff_ffff)
	)

	bits := math.Float64bits(v)
	if math.IsNaN(v) || bits == math.Float64bits(math.Inf(1)) {
		return v
	}

	abs := bits & clearSignMask

	var next uint64

	switch {
	case abs == 0:
		next = tinyBits
	case bits == abs:
		next = bits + 1
	default:
		next = bits - 1
	}

	return math.Float64frombits(next)
}

// NextUpper32 is NextUpper for float32.
func NextUpper32(v float32) float32 {
	const (
		tinyBits      = uint32(0x1)
		clearSignMask = uint32(0x7fff_ffff)
	)

	bits := math.Float32bits(v)
	if math.IsNaN(float64(v)) || bits == math.Float32bits(float32(math.Inf(1))) {
		return v
	}

	abs := bits & clearSignMask

	var next uint32

	switch {
	case abs == 0:
		next = tinyBits
	case bits == abs:
		next = bits + 1
	default:
		next = bits - 1
	}

	return math.Float32frombits(next)
}

// Stepper advances a coordinate to the next value of a grid axis.
type Stepper func(float64) float64

// StepperFor returns the axis stepper for the given precision.
func StepperFor(precision m.Precision) (Stepper, error) {
	switch precision {
	case m.Float32:
		return func(v float64) float64 {
			return float64(NextUpper32(float32(v)))
		}, nil
	case m.Float64:
		return NextUpper, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownPrecision, precision)
}
