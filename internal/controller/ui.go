// Package controller provides output adapters for displaying solver results.
package controller

import (
	"context"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	m "tourbrute.dev/pkg/tourbrute/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeSolve StartMode = iota
	ModeGrid
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// Mode returns the configured start mode.
func (c StartConfig) Mode() StartMode {
	return c.mode
}

// WithSolveMode sets the UI to single point set mode.
func WithSolveMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeSolve
	}
}

// WithGridMode sets the UI to grid enumeration mode.
func WithGridMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeGrid
	}
}

func newStartConfig(options ...StartOption) StartConfig {
	var cfg StartConfig
	for _, option := range options {
		option(&cfg)
	}

	return cfg
}

// UI defines the interface for displaying solver progress and results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for UI to finish (user closes it)
	DisplaySolveStart(ctx context.Context, points m.Route)
	DisplayImprovement(ctx context.Context, improvement m.Improvement)
	DisplayTour(ctx context.Context, points m.Route, tour m.Tour)
	DisplayGridStart(ctx context.Context, plan m.GridPlan)
	DisplayGridResult(ctx context.Context, result m.GridResult)
	DisplayGridSummary(ctx context.Context, summary m.GridSummary)
}

// UI mode names accepted by NewUI.
const (
	UIModeAuto   = "auto"
	UIModeSimple = "simple"
	UIModeTUI    = "tui"
)

// NewUI returns the TUI when mode is "tui", or "auto" with a terminal on
// stdout, and a SimpleUI writing to cmd otherwise.
func NewUI(cmd *cobra.Command, mode string) UI {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case UIModeTUI:
		return NewTUI(os.Stdout, os.Stdin)
	case UIModeSimple:
		return NewSimpleUI(cmd)
	}

	if IsTTY(os.Stdout) {
		return NewTUI(os.Stdout, os.Stdin)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	fd := f.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
