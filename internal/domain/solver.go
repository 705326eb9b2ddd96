package domain

import (
	"context"
	"errors"
	"log/slog"
	"time"

	m "tourbrute.dev/pkg/tourbrute/internal/model"
)

// ErrEmptyRoute is returned when a solver is asked to solve zero points.
var ErrEmptyRoute = errors.New("solve: empty route")

// SolveOption configures a single Solve call.
type SolveOption func(*solveConfig)

type solveConfig struct {
	onImprovement func(m.Improvement)
}

// WithImprovements forwards every accepted improvement to fn.
func WithImprovements(fn func(m.Improvement)) SolveOption {
	return func(c *solveConfig) {
		c.onImprovement = fn
	}
}

// Solver finds the shortest closed tour through a set of points.
type Solver interface {
	Solve(ctx context.Context, points m.Route, opts ...SolveOption) (m.Tour, error)
}

type bruteForceSolver struct{}

// NewSolver returns a Solver that evaluates every visiting order.
// Running time is O(n!) in the number of points.
func NewSolver() Solver {
	return &bruteForceSolver{}
}

// Solve never mutates points. A context that is already done is reported
// before enumeration starts; once started, enumeration runs to completion.
func (s *bruteForceSolver) Solve(ctx context.Context, points m.Route, opts ...SolveOption) (m.Tour, error) {
	if err := ctx.Err(); err != nil {
		return m.NoTour(), err
	}

	if len(points) == 0 {
		return m.NoTour(), ErrEmptyRoute
	}

	var cfg solveConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	var trackerOpts []TrackerOption
	if cfg.onImprovement != nil {
		trackerOpts = append(trackerOpts, WithImprovementHook(cfg.onImprovement))
	}

	tracker := NewTracker(trackerOpts...)
	start := time.Now()

	Permute(points.Clone(), func(arrangement []m.Point) {
		tracker.Observe(arrangement)
	})

	best := tracker.Best()
	slog.Debug("solved points",
		"points", len(points),
		"distance", best.Distance,
		"found", best.Found(),
		"elapsed", time.Since(start))

	return best, nil
}
