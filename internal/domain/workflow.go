package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rs/xid"
	"tourbrute.dev/pkg/tourbrute/internal/adapter"
	"tourbrute.dev/pkg/tourbrute/internal/controller"
	m "tourbrute.dev/pkg/tourbrute/internal/model"
	pkg "tourbrute.dev/pkg/tourbrute/pkg"
)

// ErrNoPoints is returned when a solve run has neither points nor a point file.
var ErrNoPoints = errors.New("no points to solve")

// SolveArgs contains the arguments for a single exhaustive solve.
type SolveArgs struct {
	// Points is used when PointsFile is empty.
	Points             m.Route
	PointsFile         m.Path
	ReportImprovements bool
}

// GridArgs contains the arguments for a grid enumeration run.
type GridArgs struct {
	Count     int
	Bounds    m.Bounds
	Precision m.Precision
	// Output is the YAML export path. Empty skips the export.
	Output m.Path
	// SpillDir holds the staged results. Empty uses the system temp directory.
	SpillDir m.Path
}

// ViewArgs contains the arguments for replaying an exported grid run.
type ViewArgs struct {
	Input m.Path
}

// MergeArgs contains the arguments for combining exported grid runs.
type MergeArgs struct {
	Inputs   []m.Path
	Output   m.Path
	SpillDir m.Path
}

var (
	// ErrNoInputs is returned when a merge has no exports to read.
	ErrNoInputs = errors.New("no grid exports to merge")
	// ErrNoOutput is returned when a merge has nowhere to write.
	ErrNoOutput = errors.New("no output path for merged results")
)

// Workflow runs tourbrute commands end to end.
type Workflow interface {
	Solve(ctx context.Context, args SolveArgs) error
	Grid(ctx context.Context, args GridArgs) error
	View(ctx context.Context, args ViewArgs) error
	Merge(ctx context.Context, args MergeArgs) error
}

type workflow struct {
	adapter.PointSource
	adapter.ResultStore
	controller.UI
	solver Solver
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	pointSource adapter.PointSource,
	resultStore adapter.ResultStore,
	ui controller.UI,
	solver Solver,
) Workflow {
	return &workflow{
		PointSource: pointSource,
		ResultStore: resultStore,
		UI:          ui,
		solver:      solver,
	}
}

func (w *workflow) Solve(ctx context.Context, args SolveArgs) error {
	points, err := w.solvePoints(ctx, args)
	if err != nil {
		return err
	}

	if err := w.Start(ctx, controller.WithSolveMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return fmt.Errorf("start ui: %w", err)
	}

	w.DisplaySolveStart(ctx, points)

	var opts []SolveOption
	if args.ReportImprovements {
		opts = append(opts, WithImprovements(func(improvement m.Improvement) {
			w.DisplayImprovement(ctx, improvement)
		}))
	}

	tour, err := w.solver.Solve(ctx, points, opts...)
	if err != nil {
		w.Close(ctx)
		slog.Error("Failed to solve points", "points", len(points), "error", err)

		return fmt.Errorf("solve points: %w", err)
	}

	w.DisplayTour(ctx, points, tour)

	w.Wait(ctx)
	w.Close(ctx)

	return nil
}

func (w *workflow) solvePoints(ctx context.Context, args SolveArgs) (m.Route, error) {
	if args.PointsFile == "" {
		if len(args.Points) == 0 {
			return nil, ErrNoPoints
		}

		return args.Points, nil
	}

	points, err := w.Load(ctx, args.PointsFile)
	if err != nil {
		slog.Error("Failed to load points", "path", args.PointsFile, "error", err)
		return nil, fmt.Errorf("load points: %w", err)
	}

	if len(points) == 0 {
		return nil, ErrNoPoints
	}

	return points, nil
}

func (w *workflow) Grid(ctx context.Context, args GridArgs) error {
	if err := ValidateGrid(args.Count, args.Bounds); err != nil {
		return err
	}

	step, err := StepperFor(args.Precision)
	if err != nil {
		return err
	}

	size, sizeKnown, err := GridSize(args.Count, args.Bounds, args.Precision)
	if err != nil {
		return err
	}

	plan := m.GridPlan{
		RunID:     xid.New().String(),
		Count:     args.Count,
		Bounds:    args.Bounds,
		Precision: args.Precision,
		Size:      size,
		SizeKnown: sizeKnown,
	}

	results, err := pkg.NewFileSpill[m.GridResult](pkg.WithDir(string(args.SpillDir)))
	if err != nil {
		slog.Error("Failed to create result spill", "error", err)
		return fmt.Errorf("create result spill: %w", err)
	}

	defer func() {
		if err := results.Close(); err != nil {
			slog.Error("Failed to close result spill", "path", results.Path(), "error", err)
		}
	}()

	if err := w.Start(ctx, controller.WithGridMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return fmt.Errorf("start ui: %w", err)
	}

	slog.Info("starting grid run", "run", plan.RunID, "count", plan.Count, "size", plan.Size, "size_known", plan.SizeKnown)
	w.DisplayGridStart(ctx, plan)

	if err := w.solveGrid(ctx, args, step, results); err != nil {
		w.Close(ctx)
		slog.Error("Failed to enumerate grid", "run", plan.RunID, "error", err)

		return fmt.Errorf("enumerate grid: %w", err)
	}

	summary, err := summarizeGrid(plan.RunID, results)
	if err != nil {
		w.Close(ctx)
		slog.Error("Failed to summarize grid", "run", plan.RunID, "error", err)

		return fmt.Errorf("summarize grid: %w", err)
	}

	if args.Output != "" {
		if err := w.SaveResults(ctx, args.Output, summary, results); err != nil {
			w.Close(ctx)
			slog.Error("Failed to export grid results", "path", args.Output, "error", err)

			return fmt.Errorf("export results: %w", err)
		}
	}

	w.DisplayGridSummary(ctx, summary)

	w.Wait(ctx)
	w.Close(ctx)

	return nil
}

func (w *workflow) solveGrid(ctx context.Context, args GridArgs, step Stepper, results pkg.FileSpill[m.GridResult]) error {
	var index uint64

	return EnumerateGrid(args.Count, args.Bounds, step, func(points m.Route) error {
		tour, err := w.solver.Solve(ctx, points)
		if err != nil {
			return err
		}

		// points is the driver's shared buffer.
		result := m.GridResult{Index: index, Points: points.Clone(), Best: tour}
		if err := results.Append(result); err != nil {
			return fmt.Errorf("stage result %d: %w", index, err)
		}

		w.DisplayGridResult(ctx, result)
		index++

		return nil
	})
}

// summarizeGrid picks the configurations with the shortest and longest
// optimal tours. Ties keep the earliest configuration.
func summarizeGrid(runID string, results adapter.ResultSource) (m.GridSummary, error) {
	summary := m.GridSummary{
		RunID:    runID,
		Shortest: m.GridResult{Best: m.NoTour()},
		Longest:  m.GridResult{Best: m.NoTour()},
	}

	err := results.Range(func(_ uint64, result m.GridResult) error {
		summary.Configurations++

		if !result.Best.Found() {
			return nil
		}

		if !summary.Shortest.Best.Found() || result.Best.Distance < summary.Shortest.Best.Distance {
			summary.Shortest = result
		}

		if !summary.Longest.Best.Found() || result.Best.Distance > summary.Longest.Best.Distance {
			summary.Longest = result
		}

		return nil
	})
	if err != nil {
		return m.GridSummary{}, err
	}

	return summary, nil
}

func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	summary, results, err := w.LoadResults(ctx, args.Input)
	if err != nil {
		slog.Error("Failed to load grid results", "path", args.Input, "error", err)
		return fmt.Errorf("load results: %w", err)
	}

	if err := w.Start(ctx, controller.WithGridMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return fmt.Errorf("start ui: %w", err)
	}

	for _, result := range results {
		w.DisplayGridResult(ctx, result)
	}

	w.DisplayGridSummary(ctx, summary)

	w.Wait(ctx)
	w.Close(ctx)

	return nil
}

// Merge concatenates exported grid runs into a single run. Results are
// re-indexed in input order and the summary is recomputed.
func (w *workflow) Merge(ctx context.Context, args MergeArgs) error {
	if len(args.Inputs) == 0 {
		return ErrNoInputs
	}

	if args.Output == "" {
		return ErrNoOutput
	}

	merged, err := pkg.NewFileSpill[m.GridResult](pkg.WithDir(string(args.SpillDir)))
	if err != nil {
		slog.Error("Failed to create result spill", "error", err)
		return fmt.Errorf("create result spill: %w", err)
	}

	defer func() {
		if err := merged.Close(); err != nil {
			slog.Error("Failed to close result spill", "path", merged.Path(), "error", err)
		}
	}()

	for _, input := range args.Inputs {
		_, results, err := w.LoadResults(ctx, input)
		if err != nil {
			slog.Error("Failed to load grid results", "path", input, "error", err)
			return fmt.Errorf("load results %s: %w", input, err)
		}

		for _, result := range results {
			result.Index = merged.Len()
			if err := merged.Append(result); err != nil {
				return fmt.Errorf("stage result %d: %w", result.Index, err)
			}
		}

		slog.Debug("merged grid export", "path", input, "results", len(results))
	}

	summary, err := summarizeGrid(xid.New().String(), merged)
	if err != nil {
		slog.Error("Failed to summarize merged results", "error", err)
		return fmt.Errorf("summarize grid: %w", err)
	}

	if err := w.SaveResults(ctx, args.Output, summary, merged); err != nil {
		slog.Error("Failed to export merged results", "path", args.Output, "error", err)
		return fmt.Errorf("export results: %w", err)
	}

	if err := w.Start(ctx, controller.WithGridMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return fmt.Errorf("start ui: %w", err)
	}

	w.DisplayGridSummary(ctx, summary)

	w.Wait(ctx)
	w.Close(ctx)

	return nil
}
