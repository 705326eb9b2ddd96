package model

import "fmt"

// Precision selects the representable-step width used to walk a grid axis.
type Precision int

const (
	// Float32 steps through successive float32 values.
	Float32 Precision = 32
	// Float64 steps through successive float64 values.
	Float64 Precision = 64
)

func (p Precision) String() string {
	switch p {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	}

	return fmt.Sprintf("Precision(%d)", int(p))
}

// Bounds is a closed coordinate interval [Min, Max] shared by both axes.
type Bounds struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// GridResult is one solved grid configuration.
type GridResult struct {
	Index  uint64
	Points Route
	Best   Tour
}

// GridSummary aggregates the results of a grid run. Shortest and Longest
// are the configurations whose optimal tours are the extremes of the run;
// configurations without a finite tour are excluded from both.
type GridSummary struct {
	RunID          string
	Configurations uint64
	Shortest       GridResult
	Longest        GridResult
}

// GridPlan describes a grid run before it starts. Size is the number of
// configurations the run will solve; SizeKnown is false when that number
// does not fit in a uint64.
type GridPlan struct {
	RunID     string
	Count     int
	Bounds    Bounds
	Precision Precision
	Size      uint64
	SizeKnown bool
}
