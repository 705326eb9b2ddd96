package cmd

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"tourbrute.dev/pkg/tourbrute/internal/domain"
	m "tourbrute.dev/pkg/tourbrute/internal/model"
)

func TestViewCmd_PassesInput(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	mockWorkflow.EXPECT().View(mock.Anything, domain.ViewArgs{Input: m.Path("grid.yaml")}).Return(nil).Once()

	_, err := executeSubcommand(t, newViewCmd(), "view", "grid.yaml")
	require.NoError(t, err)
}

func TestViewCmd_RequiresExactlyOneFile(t *testing.T) {
	withMockWorkflow(t)

	_, err := executeSubcommand(t, newViewCmd(), "view")
	require.Error(t, err)

	_, err = executeSubcommand(t, newViewCmd(), "view", "a.yaml", "b.yaml")
	require.Error(t, err)
}
