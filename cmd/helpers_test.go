package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	domainmocks "tourbrute.dev/pkg/tourbrute/internal/domain/mocks"
)

// withMockWorkflow swaps the shared workflow for a mock for the duration of t.
func withMockWorkflow(t *testing.T) *domainmocks.MockWorkflow {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	originalWorkflow := workflow
	workflow = mockWorkflow

	t.Cleanup(func() { workflow = originalWorkflow })

	return mockWorkflow
}

// executeSubcommand runs sub under a fresh root command with logging
// redirected into a temp dir.
func executeSubcommand(t *testing.T, sub *cobra.Command, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	cmd.AddCommand(sub)

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})

	logFile := filepath.Join(t.TempDir(), "tourbrute.log")
	cmd.SetArgs(append([]string{"--" + logFileFlagName, logFile}, args...))

	err := cmd.Execute()

	return out.String(), err
}
