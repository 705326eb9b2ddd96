package controller

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	m "tourbrute.dev/pkg/tourbrute/internal/model"
)

// SimpleUI implements UI using cobra Command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// DisplaySolveStart prints the input point set.
func (s *SimpleUI) DisplaySolveStart(ctx context.Context, points m.Route) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Solving for %d point(s): %s\n", len(points), points)
}

// DisplayImprovement prints a new best distance.
func (s *SimpleUI) DisplayImprovement(ctx context.Context, improvement m.Improvement) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Found new smallest distance (improved by %s: %s -> %s)\n",
		formatDistance(improvement.Delta),
		formatDistance(improvement.Previous),
		formatDistance(improvement.Current))
}

// DisplayTour prints the best route as a table of stops.
func (s *SimpleUI) DisplayTour(ctx context.Context, points m.Route, tour m.Tour) {
	if err := ctx.Err(); err != nil {
		return
	}

	if !tour.Found() {
		s.printf("No finite tour for %s\n", points)
		return
	}

	s.printf("Best route for %s is %s with distance %s\n", points, tour.Route, formatDistance(tour.Distance))
	s.printf("\n%s", renderTourTable(tour))
}

func renderTourTable(tour m.Tour) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Stop", "X", "Y", "Leg"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_CENTER, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
	})

	n := len(tour.Route)
	for i, point := range tour.Route {
		next := tour.Route[(i+1)%n]
		table.Append([]string{
			strconv.Itoa(i + 1),
			formatDistance(point.X),
			formatDistance(point.Y),
			formatDistance(point.Distance(next)),
		})
	}

	table.SetFooter([]string{"", "", "Total", formatDistance(tour.Distance)})
	table.Render()

	return tableBuffer.String()
}

// DisplayGridStart prints the grid run parameters.
func (s *SimpleUI) DisplayGridStart(ctx context.Context, plan m.GridPlan) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Grid run %s: %d point(s) per configuration on [%s, %s] with %s steps, %s configuration(s)\n",
		plan.RunID, plan.Count,
		formatDistance(plan.Bounds.Min), formatDistance(plan.Bounds.Max),
		plan.Precision, formatGridSize(plan))
}

// DisplayGridResult prints one solved configuration.
func (s *SimpleUI) DisplayGridResult(ctx context.Context, result m.GridResult) {
	if err := ctx.Err(); err != nil {
		return
	}

	if !result.Best.Found() {
		s.printf("#%d %s -> no finite tour\n", result.Index, result.Points)
		return
	}

	s.printf("#%d %s -> %s (distance %s)\n",
		result.Index, result.Points, result.Best.Route, formatDistance(result.Best.Distance))
}

// DisplayGridSummary prints the shortest and longest optimal tours of the run.
func (s *SimpleUI) DisplayGridSummary(ctx context.Context, summary m.GridSummary) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("\n%s", renderGridSummaryTable(summary))
}

func renderGridSummaryTable(summary m.GridSummary) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"", "Configuration", "Distance", "Route"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT,
	})

	for _, row := range []struct {
		label  string
		result m.GridResult
	}{
		{"Shortest", summary.Shortest},
		{"Longest", summary.Longest},
	} {
		if !row.result.Best.Found() {
			table.Append([]string{row.label, "-", "-", "no finite tour"})
			continue
		}

		table.Append([]string{
			row.label,
			strconv.FormatUint(row.result.Index, 10),
			formatDistance(row.result.Best.Distance),
			row.result.Best.Route.String(),
		})
	}

	table.SetFooter([]string{"Run " + summary.RunID, "", "Configurations", strconv.FormatUint(summary.Configurations, 10)})
	table.Render()

	return tableBuffer.String()
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func formatDistance(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatGridSize(plan m.GridPlan) string {
	if !plan.SizeKnown {
		return "more than 18446744073709551615"
	}

	return strconv.FormatUint(plan.Size, 10)
}
