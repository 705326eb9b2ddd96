package cmd

import (
	"github.com/spf13/cobra"
	"tourbrute.dev/pkg/tourbrute/internal/domain"
	m "tourbrute.dev/pkg/tourbrute/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view FILE",
		Short: "View an exported grid run",
		Long:  "Replay the results and summary of a grid run exported with grid --output.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.View(cmd.Context(), domain.ViewArgs{Input: m.Path(args[0])})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
