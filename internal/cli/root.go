// Package cli implements the advent command-line interface: running puzzles
// by day and fetching their inputs.
package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/advent/internal/paths"
	"github.com/mesh-intelligence/advent/pkg/puzzle"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
	exitDataError = 3
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	inputDir  string
	verbose   bool
}

// env is the state shared by the commands of one invocation.
type env struct {
	flags  rootFlags
	cfg    *viper.Viper
	logger *zap.Logger

	// Overridable in tests.
	now  func() time.Time
	http *http.Client
}

// usageError marks errors caused by how the command was invoked.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func usageErrorf(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

// NewRootCmd creates the top-level "advent" command with global flags and
// all subcommands registered.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&env{now: time.Now})
}

func newRootCmd(e *env) *cobra.Command {
	root := &cobra.Command{
		Use:   "advent",
		Short: "Run daily puzzle solutions and fetch their inputs",
		Long: `advent runs the solution of each calendar day against its input file
(inputs/dayNN.txt) and prints both answers with their timing. Inputs are
downloaded with the session token of a logged-in user.`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: e.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if e.logger != nil {
				_ = e.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&e.flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/advent)")
	root.PersistentFlags().StringVar(&e.flags.inputDir, "input-dir", "", "puzzle input directory (default: $(CWD)/inputs)")
	root.PersistentFlags().BoolVarP(&e.flags.verbose, "verbose", "v", false, "debug logging")

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	root.AddCommand(newRunCmd(e))
	root.AddCommand(newFetchCmd(e))
	root.AddCommand(newInitCmd(e))
	root.AddCommand(newVersionCmd())

	return root
}

// setup loads configuration and builds the logger before any subcommand runs.
func (e *env) setup(cmd *cobra.Command, args []string) error {
	configDir, err := paths.ResolveConfigDir(e.flags.configDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}

	e.cfg, err = loadConfig(configDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if e.logger == nil {
		e.logger, err = newLogger(e.cfg.GetString(cfgKeyLogLevel), e.flags.verbose)
		if err != nil {
			return err
		}
	}
	e.logger.Debug("configuration loaded",
		zap.String("config_dir", configDir),
		zap.String("command", cmd.Name()))
	return nil
}

// inputDir resolves the puzzle input directory.
func (e *env) inputDir() (string, error) {
	dir, err := paths.ResolveInputDir(e.flags.inputDir, e.cfg.GetString(cfgKeyInputDir))
	if err != nil {
		return "", fmt.Errorf("resolve input dir: %w", err)
	}
	return dir, nil
}

// selectDay returns the day named by args, or today's day when args is empty.
func (e *env) selectDay(args []string) (puzzle.Day, error) {
	if len(args) == 1 {
		day, err := puzzle.ParseDay(args[0])
		if err != nil {
			return 0, &usageError{err: err}
		}
		return day, nil
	}
	day, err := puzzle.Today(e.now())
	if err != nil {
		return 0, &usageError{err: fmt.Errorf("%w; please specify a day", err)}
	}
	e.logger.Info("no day specified, using today", zap.Stringer("day", day))
	return day, nil
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error to the process exit code.
func exitCode(err error) int {
	var ue *usageError
	switch {
	case err == nil:
		return exitSuccess
	case errors.As(err, &ue):
		return exitUserError
	case puzzle.IsFileAccess(err), puzzle.IsParse(err):
		return exitDataError
	default:
		return exitSysError
	}
}
