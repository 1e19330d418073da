package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"textanalyzer/internal/logs"
)

func newLogsCommand(ctx *commandContext) *cobra.Command {
	var lines int
	var follow bool
	var raw bool

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show the daemon log",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			path := cfg.CurrentLogPath()
			out := cmd.OutOrStdout()
			emit := func(line string) {
				if !raw {
					line = logs.FormatLine(line)
				}
				fmt.Fprintln(out, line)
			}

			tail, offset, err := logs.Last(path, lines)
			if err != nil {
				return err
			}
			if len(tail) == 0 && !follow {
				fmt.Fprintf(out, "No log entries in %s\n", path)
				return nil
			}
			for _, line := range tail {
				emit(line)
			}
			if !follow {
				return nil
			}

			err = logs.Follow(cmd.Context(), path, offset, emit)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", 50, "Number of trailing lines to show")
	cmd.Flags().BoolVarP(&follow, "follow", "f", false, "Keep printing new log lines")
	cmd.Flags().BoolVar(&raw, "raw", false, "Print JSON records without formatting")
	return cmd
}
