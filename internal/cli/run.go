package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/advent/internal/days"
	"github.com/mesh-intelligence/advent/internal/harness"
)

func newRunCmd(e *env) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "run [DAY]",
		Short: "Run a day's puzzle",
		Long: `Run the solution for DAY (1-25) against its input file and print both
answers with their timing. Without DAY, today's puzzle runs (December 1-25
only). With --all, every day runs in order and the first failure stops the run.`,
		Args: dayArgs(&all),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputDir, err := e.inputDir()
			if err != nil {
				return err
			}
			table := days.NewTable(inputDir, harness.NewTextReporter(cmd.OutOrStdout()))

			if all {
				e.logger.Debug("running all days", zap.String("input_dir", inputDir))
				return table.RunAll()
			}

			day, err := e.selectDay(args)
			if err != nil {
				return err
			}
			e.logger.Debug("running day", zap.Stringer("day", day), zap.String("input_dir", inputDir))
			return table.RunOne(day)
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "run all days sequentially")
	return cmd
}

// dayArgs accepts at most one DAY argument, and none when --all is set.
func dayArgs(all *bool) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) > 1 {
			return usageErrorf("accepts at most one DAY, received %d", len(args))
		}
		if *all && len(args) == 1 {
			return &usageError{err: fmt.Errorf("DAY and --all are mutually exclusive")}
		}
		return nil
	}
}
