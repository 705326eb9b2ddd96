package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"tourbrute.dev/pkg/tourbrute/internal/domain"
	m "tourbrute.dev/pkg/tourbrute/internal/model"
)

var mergeOutputFlag string

// mergeCmd represents the merge command.
var mergeCmd = newMergeCmd()

func newMergeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge FILE...",
		Short: "Merge exported grid runs into one",
		Long: `Concatenate grid runs exported with grid --output into a single export.
Results are re-indexed in argument order and the summary is recomputed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Merge(cmd.Context(), domain.MergeArgs{
				Inputs:   parsePaths(args),
				Output:   m.Path(viper.GetString(mergeOutputKey)),
				SpillDir: m.Path(viper.GetString(spillDirKey)),
			})
		},
	}

	cmd.Flags().StringVarP(&mergeOutputFlag, outputFlagName, "o", "", "YAML export path for the merged run")
	bindFlagToConfig(cmd.Flags().Lookup(outputFlagName), mergeOutputKey)

	return cmd
}

func init() {
	rootCmd.AddCommand(mergeCmd)
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
