package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"tourbrute.dev/pkg/tourbrute/internal/domain"
	m "tourbrute.dev/pkg/tourbrute/internal/model"
)

var gridCountFlag int
var gridMinFlag float64
var gridMaxFlag float64
var gridPrecisionFlag int
var gridOutputFlag string

const gridLongDescription = `Solve every configuration of --count points on a grid.

Both axes run from --min to --max through every representable value of the
chosen precision (32 or 64 bit), so even tiny ranges hold a huge number of
configurations. The run size is printed before solving starts.

Results are staged on disk (--spill-dir) and exported as a YAML stream with
--output.`

// gridCmd represents the grid command.
var gridCmd = newGridCmd()

func newGridCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Solve every point configuration on a coordinate grid",
		Long:  gridLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.Grid(cmd.Context(), domain.GridArgs{
				Count: viper.GetInt(gridCountKey),
				Bounds: m.Bounds{
					Min: viper.GetFloat64(gridMinKey),
					Max: viper.GetFloat64(gridMaxKey),
				},
				Precision: m.Precision(viper.GetInt(gridPrecisionKey)),
				Output:    m.Path(viper.GetString(gridOutputKey)),
				SpillDir:  m.Path(viper.GetString(spillDirKey)),
			})
		},
	}

	configureGridFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(gridCmd)
}

func configureGridFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&gridCountFlag, countFlagName, "n", defaultGridCount, "points per configuration")
	bindFlagToConfig(cmd.Flags().Lookup(countFlagName), gridCountKey)

	cmd.Flags().Float64Var(&gridMinFlag, minFlagName, defaultGridMin, "lower bound of both axes")
	bindFlagToConfig(cmd.Flags().Lookup(minFlagName), gridMinKey)

	cmd.Flags().Float64Var(&gridMaxFlag, maxFlagName, defaultGridMax, "upper bound of both axes")
	bindFlagToConfig(cmd.Flags().Lookup(maxFlagName), gridMaxKey)

	cmd.Flags().IntVar(&gridPrecisionFlag, precisionFlagName, defaultGridPrecision, "axis step precision in bits (32 or 64)")
	bindFlagToConfig(cmd.Flags().Lookup(precisionFlagName), gridPrecisionKey)

	cmd.Flags().StringVarP(&gridOutputFlag, outputFlagName, "o", "", "YAML export path for all results")
	bindFlagToConfig(cmd.Flags().Lookup(outputFlagName), gridOutputKey)
}
