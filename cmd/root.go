// Package cmd provides the root command and CLI setup for tourbrute.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"tourbrute.dev/pkg/tourbrute/internal/adapter"
	"tourbrute.dev/pkg/tourbrute/internal/controller"
	"tourbrute.dev/pkg/tourbrute/internal/domain"
)

var pointSource adapter.PointSource
var resultStore adapter.ResultStore
var solver domain.Solver
var workflow domain.Workflow
var ui controller.UI

// logFileFlag overrides log.filename for a single invocation.
var logFileFlag string

// verboseFlag switches logging to Debug.
var verboseFlag bool

// spillDirFlag is a root-level flag shared by commands that stage results on disk.
var spillDirFlag string

func init() {
	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, viper.GetString(uiModeKey))
	pointSource = adapter.NewLocalPointSource()
	resultStore = adapter.NewResultStore()
	solver = domain.NewSolver()
	workflow = domain.NewWorkflow(
		pointSource,
		resultStore,
		ui,
		solver,
	)
}

const rootLongDescription = `Tourbrute finds shortest closed tours through small 2-D point sets by
evaluating every visiting order.

Running time grows as n! in the number of points: thirteen points already
means more than six billion tours.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tourbrute",
		Short: "Exhaustive travelling salesman solver",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(logFileFlag, viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, "", "log file path (default from log.filename)")

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", defaultLogVerbose, "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&spillDirFlag, spillDirFlagName, "", "directory for staged grid results (default: system temp dir)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(spillDirFlagName), spillDirKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
// An interrupt cancels the command context; grid runs stop before the next
// configuration.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}
