package cli

import (
	"context"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/advent/internal/fetch"
	"github.com/mesh-intelligence/advent/internal/paths"
	"github.com/mesh-intelligence/advent/pkg/puzzle"
)

func newFetchCmd(e *env) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:     "fetch [DAY]",
		Aliases: []string{"get-input"},
		Short:   "Download a day's puzzle input",
		Long: `Download the input for DAY (1-25) into the input directory using the
session token stored in the session file. Without DAY, today's input is
fetched. With --all, every day is fetched in order and the first failure
stops the download.`,
		Args: dayArgs(&all),
		RunE: func(cmd *cobra.Command, args []string) error {
			selected := puzzle.AllDays()
			if !all {
				day, err := e.selectDay(args)
				if err != nil {
					return err
				}
				selected = []puzzle.Day{day}
			}

			inputDir, err := e.inputDir()
			if err != nil {
				return err
			}
			client, err := e.fetchClient()
			if err != nil {
				return err
			}

			for _, day := range selected {
				path := paths.InputFile(inputDir, day)
				if err := e.download(cmd.Context(), client, day, path); err != nil {
					return fmt.Errorf("fetch day %s: %w", day, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Downloaded input for day %s to %s\n", day, path)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "fetch all days sequentially")
	return cmd
}

// fetchClient reads the session token once and builds the client.
func (e *env) fetchClient() (*fetch.Client, error) {
	sessionFile, err := paths.ResolveSessionFile(e.cfg.GetString(cfgKeySessionFile))
	if err != nil {
		return nil, fmt.Errorf("resolve session file: %w", err)
	}
	token, err := fetch.ReadSession(sessionFile)
	if err != nil {
		return nil, err
	}

	httpClient := e.http
	if httpClient == nil {
		httpClient = &http.Client{Timeout: e.cfg.GetDuration(cfgKeyTimeout)}
	}
	e.logger.Debug("session loaded", zap.String("session_file", sessionFile))

	return &fetch.Client{
		BaseURL: e.cfg.GetString(cfgKeyBaseURL),
		Year:    e.cfg.GetInt(cfgKeyYear),
		Session: token,
		HTTP:    httpClient,
		Logger:  e.logger,
	}, nil
}

func (e *env) download(ctx context.Context, client *fetch.Client, day puzzle.Day, path string) error {
	if timeout := e.cfg.GetDuration(cfgKeyTimeout); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return client.Download(ctx, day, path)
}
