package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"tourbrute.dev/pkg/tourbrute/internal/domain"
	m "tourbrute.dev/pkg/tourbrute/internal/model"
)

var errInvalidPoint = errors.New("point must be written as x,y")

var solvePointsFileFlag string
var solveImprovementsFlag bool

const solveLongDescription = `Solve the shortest closed tour through the given points.

Points are written as x,y pairs, for example:
  tourbrute solve -- -1,-1 -1,1 1,-1 1,1

With --points-file the points are read from a YAML file instead:
  points:
    - {x: -1, y: -1}
    - {x: 1, y: 1}

Without points or a file the built-in thirteen point set is solved.`

// solveCmd represents the solve command.
var solveCmd = newSolveCmd()

func newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve [x,y ...]",
		Short: "Find the shortest closed tour through a point set",
		Long:  solveLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			points, err := parsePoints(args)
			if err != nil {
				return err
			}

			if len(points) == 0 {
				points = defaultPoints()
			}

			return workflow.Solve(cmd.Context(), domain.SolveArgs{
				Points:             points,
				PointsFile:         m.Path(viper.GetString(solvePointsFileKey)),
				ReportImprovements: viper.GetBool(solveImprovementsKey),
			})
		},
	}

	configureSolveFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(solveCmd)
}

func configureSolveFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&solvePointsFileFlag, pointsFileFlagName, "f", "", "YAML file with the points to solve")
	bindFlagToConfig(cmd.Flags().Lookup(pointsFileFlagName), solvePointsFileKey)

	cmd.Flags().BoolVar(&solveImprovementsFlag, improvementsFlagName, defaultSolveImprovements, "report every new best distance")
	bindFlagToConfig(cmd.Flags().Lookup(improvementsFlagName), solveImprovementsKey)
}

func parsePoints(args []string) (m.Route, error) {
	points := make(m.Route, 0, len(args))

	for _, arg := range args {
		xs, ys, ok := strings.Cut(arg, ",")
		if !ok {
			return nil, fmt.Errorf("%w: %q", errInvalidPoint, arg)
		}

		x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", errInvalidPoint, arg, err)
		}

		y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", errInvalidPoint, arg, err)
		}

		points = append(points, m.Pt(x, y))
	}

	return points, nil
}

// defaultPoints is the corners of [-1, 1]^2 plus nine edge and interior points.
func defaultPoints() m.Route {
	return m.Route{
		m.Pt(-1.0, -1.0),
		m.Pt(-1.0, 1.0),
		m.Pt(1.0, -1.0),
		m.Pt(1.0, 1.0),
		m.Pt(0.5, 1.0),
		m.Pt(1.0, 0.5),
		m.Pt(0.5, 0.5),
		m.Pt(-1.0, -0.5),
		m.Pt(-0.5, -0.5),
		m.Pt(-0.5, -1.0),
		m.Pt(-0.5, 0.5),
		m.Pt(1.0, -0.5),
		m.Pt(-1.0, 0.5),
	}
}
