package domain

import (
	"log/slog"

	m "tourbrute.dev/pkg/tourbrute/internal/model"
)

// TrackerOption configures a Tracker.
type TrackerOption func(*Tracker)

// WithImprovementHook registers fn to be called every time the tracker
// accepts a strictly shorter tour.
func WithImprovementHook(fn func(m.Improvement)) TrackerOption {
	return func(t *Tracker) {
		t.onImprovement = fn
	}
}

// Tracker scores routes and keeps the shortest closed tour observed.
//
// Ties keep the first route observed. A NaN distance never compares less
// than the current best, so a tracker that only observed NaN routes still
// reports the initial state (+Inf, empty route).
type Tracker struct {
	best          m.Tour
	onImprovement func(m.Improvement)
}

// NewTracker returns a tracker in the initial state.
func NewTracker(opts ...TrackerOption) *Tracker {
	t := &Tracker{best: m.NoTour()}
	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Observe scores route. The route is copied only if it becomes the new
// best, so callers may pass storage they keep mutating.
func (t *Tracker) Observe(route m.Route) {
	total := route.Length()
	if !(total < t.best.Distance) {
		return
	}

	improvement := m.Improvement{
		Previous: t.best.Distance,
		Current:  total,
		Delta:    t.best.Distance - total,
	}

	slog.Debug("found new smallest distance",
		"improvedBy", improvement.Delta,
		"previous", improvement.Previous,
		"current", improvement.Current)

	t.best.Route = append(t.best.Route[:0], route...)
	t.best.Distance = total

	if t.onImprovement != nil {
		t.onImprovement(improvement)
	}
}

// Best returns the shortest tour observed so far. The returned route is an
// independent copy.
func (t *Tracker) Best() m.Tour {
	return m.Tour{
		Route:    t.best.Route.Clone(),
		Distance: t.best.Distance,
	}
}
