package controller

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"
	m "tourbrute.dev/pkg/tourbrute/internal/model"
)

// maxShownImprovements bounds the improvement history kept on screen.
const maxShownImprovements = 8

var errTUIStarted = errors.New("tui already started")

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	distanceStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	mutedStyle    = lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("244"))
	warnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer
	input  io.Reader

	mu      sync.Mutex
	program *tea.Program
	group   *errgroup.Group
}

// NewTUI creates a new TUI. A nil input disables keyboard handling, in
// which case the display only ends with Close.
func NewTUI(output io.Writer, input io.Reader) *TUI {
	return &TUI{output: output, input: input}
}

// Start launches the Bubble Tea program in the background.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.program != nil {
		return errTUIStarted
	}

	cfg := newStartConfig(options...)
	program := tea.NewProgram(
		newRunModel(cfg.mode),
		tea.WithContext(ctx),
		tea.WithOutput(t.output),
		tea.WithInput(t.input),
	)

	group := &errgroup.Group{}
	group.Go(func() error {
		_, err := program.Run()
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}

		return err
	})

	t.program = program
	t.group = group

	return nil
}

// Close stops the program if it is still running and releases it.
func (t *TUI) Close(_ context.Context) {
	t.mu.Lock()
	program, group := t.program, t.group
	t.program, t.group = nil, nil
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Quit()

	if err := group.Wait(); err != nil {
		slog.Error("TUI program failed", "error", err)
	}
}

// Wait blocks until the user quits the program.
func (t *TUI) Wait(_ context.Context) {
	t.mu.Lock()
	group := t.group
	t.mu.Unlock()

	if group == nil {
		return
	}

	if err := group.Wait(); err != nil {
		slog.Error("TUI program failed", "error", err)
	}
}

func (t *TUI) send(ctx context.Context, msg tea.Msg) {
	if err := ctx.Err(); err != nil {
		return
	}

	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program != nil {
		program.Send(msg)
	}
}

// DisplaySolveStart shows the input point set.
func (t *TUI) DisplaySolveStart(ctx context.Context, points m.Route) {
	t.send(ctx, solveStartedMsg{points: points.Clone()})
}

// DisplayImprovement records a new best distance.
func (t *TUI) DisplayImprovement(ctx context.Context, improvement m.Improvement) {
	t.send(ctx, improvementMsg(improvement))
}

// DisplayTour shows the final tour and marks the run as done.
func (t *TUI) DisplayTour(ctx context.Context, _ m.Route, tour m.Tour) {
	t.send(ctx, tourMsg{tour: m.Tour{Route: tour.Route.Clone(), Distance: tour.Distance}})
}

// DisplayGridStart shows the grid run parameters.
func (t *TUI) DisplayGridStart(ctx context.Context, plan m.GridPlan) {
	t.send(ctx, gridStartedMsg(plan))
}

// DisplayGridResult shows the latest solved configuration.
func (t *TUI) DisplayGridResult(ctx context.Context, result m.GridResult) {
	t.send(ctx, gridResultMsg{
		Index:  result.Index,
		Points: result.Points.Clone(),
		Best:   m.Tour{Route: result.Best.Route.Clone(), Distance: result.Best.Distance},
	})
}

// DisplayGridSummary shows the run summary and marks the run as done.
func (t *TUI) DisplayGridSummary(ctx context.Context, summary m.GridSummary) {
	t.send(ctx, gridSummaryMsg(summary))
}

type (
	solveStartedMsg struct{ points m.Route }
	improvementMsg  m.Improvement
	tourMsg         struct{ tour m.Tour }
	gridStartedMsg  m.GridPlan
	gridResultMsg   m.GridResult
	gridSummaryMsg  m.GridSummary
)

// runModel is the Bubble Tea model shared by solve and grid runs.
type runModel struct {
	mode    StartMode
	spinner spinner.Model

	points           m.Route
	improvements     []m.Improvement
	improvementCount int
	tour             *m.Tour

	plan    *m.GridPlan
	solved  uint64
	latest  *m.GridResult
	summary *m.GridSummary

	done     bool
	quitting bool
	width    int
}

func newRunModel(mode StartMode) runModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = titleStyle

	return runModel{mode: mode, spinner: s}
}

func (rm runModel) Init() tea.Cmd {
	return rm.spinner.Tick
}

//nolint:cyclop // One case per message type.
func (rm runModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		rm.width = msg.Width
		return rm, nil

	case tea.KeyMsg:
		return rm.handleKeyPress(msg)

	case spinner.TickMsg:
		if rm.done {
			return rm, nil
		}

		var cmd tea.Cmd
		rm.spinner, cmd = rm.spinner.Update(msg)

		return rm, cmd

	case solveStartedMsg:
		rm.points = msg.points
		return rm, nil

	case improvementMsg:
		rm.improvementCount++

		rm.improvements = append(rm.improvements, m.Improvement(msg))
		if len(rm.improvements) > maxShownImprovements {
			rm.improvements = rm.improvements[len(rm.improvements)-maxShownImprovements:]
		}

		return rm, nil

	case tourMsg:
		tour := msg.tour
		rm.tour = &tour
		rm.done = true

		return rm, nil

	case gridStartedMsg:
		plan := m.GridPlan(msg)
		rm.plan = &plan

		return rm, nil

	case gridResultMsg:
		result := m.GridResult(msg)
		rm.latest = &result
		rm.solved++

		return rm, nil

	case gridSummaryMsg:
		summary := m.GridSummary(msg)
		rm.summary = &summary
		rm.done = true

		return rm, nil
	}

	return rm, nil
}

func (rm runModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	//nolint:exhaustive // Only quit keys are handled.
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		rm.quitting = true
		return rm, tea.Quit
	default:
	}

	if msg.String() == "q" {
		rm.quitting = true
		return rm, tea.Quit
	}

	return rm, nil
}

func (rm runModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("tourbrute - exhaustive tour search"))
	b.WriteString("\n\n")

	switch rm.mode {
	case ModeGrid:
		rm.renderGrid(&b)
	default:
		rm.renderSolve(&b)
	}

	b.WriteString("\n")

	if rm.done {
		b.WriteString(mutedStyle.Render("  done | q: quit"))
	} else {
		b.WriteString(mutedStyle.Render("  q: close display"))
	}

	b.WriteString("\n")

	return b.String()
}

func (rm runModel) renderSolve(b *strings.Builder) {
	fmt.Fprintf(b, "  Points: %d %s\n\n", len(rm.points), mutedStyle.Render(rm.points.String()))

	if rm.improvementCount > 0 {
		fmt.Fprintf(b, "  Improvements: %d\n", rm.improvementCount)

		for _, imp := range rm.improvements {
			fmt.Fprintf(b, "    %s -> %s (by %s)\n",
				formatDistance(imp.Previous),
				formatDistance(imp.Current),
				formatDistance(imp.Delta))
		}

		b.WriteString("\n")
	}

	if rm.tour == nil {
		fmt.Fprintf(b, "  %s evaluating permutations...\n", rm.spinner.View())
		return
	}

	if !rm.tour.Found() {
		b.WriteString(warnStyle.Render("  No finite tour"))
		b.WriteString("\n")

		return
	}

	fmt.Fprintf(b, "  Best route: %s\n", rm.tour.Route)
	fmt.Fprintf(b, "  Distance:   %s\n", distanceStyle.Render(formatDistance(rm.tour.Distance)))
}

func (rm runModel) renderGrid(b *strings.Builder) {
	if rm.plan != nil {
		fmt.Fprintf(b, "  Run %s: %d point(s) on [%s, %s], %s steps\n",
			rm.plan.RunID, rm.plan.Count,
			formatDistance(rm.plan.Bounds.Min), formatDistance(rm.plan.Bounds.Max),
			rm.plan.Precision)
		fmt.Fprintf(b, "  Solved: %d / %s\n\n", rm.solved, formatGridSize(*rm.plan))
	}

	if rm.summary == nil {
		fmt.Fprintf(b, "  %s solving configurations...\n", rm.spinner.View())

		if rm.latest != nil {
			fmt.Fprintf(b, "  Latest #%d: %s\n", rm.latest.Index, mutedStyle.Render(rm.latest.Points.String()))
		}

		return
	}

	fmt.Fprintf(b, "  Configurations: %d\n", rm.summary.Configurations)
	renderGridExtreme(b, "Shortest", rm.summary.Shortest)
	renderGridExtreme(b, "Longest", rm.summary.Longest)
}

func renderGridExtreme(b *strings.Builder, label string, result m.GridResult) {
	if !result.Best.Found() {
		fmt.Fprintf(b, "  %-9s %s\n", label+":", warnStyle.Render("no finite tour"))
		return
	}

	fmt.Fprintf(b, "  %-9s #%d %s %s\n", label+":", result.Index,
		distanceStyle.Render(formatDistance(result.Best.Distance)), result.Best.Route)
}
