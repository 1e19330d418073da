package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"textanalyzer/internal/daemonctl"
	"textanalyzer/internal/daemonrun"
)

const (
	startWaitTimeout = 10 * time.Second
	stopGracePeriod  = 5 * time.Second
)

func newDaemonCommands(ctx *commandContext) []*cobra.Command {
	startCmd := &cobra.Command{
		Use:   "start",
		Short: "Start the textanalyzer daemon in the background",
		RunE: func(cmd *cobra.Command, args []string) error {
			stdout := cmd.OutOrStdout()
			exe, err := daemonExecutable()
			if err != nil {
				return err
			}

			result, err := daemonctl.EnsureStarted(cmd.Context(), ctx.socketPath(), exe, daemonLaunchOptions(ctx), startWaitTimeout)
			if err != nil {
				return err
			}

			switch result.State {
			case daemonctl.StartStateStarted:
				fmt.Fprintf(stdout, "Daemon started (pid %d)\n", result.PID)
			case daemonctl.StartStateAlreadyRunning:
				fmt.Fprintf(stdout, "Daemon already running (pid %d)\n", result.PID)
			}
			return nil
		},
	}

	stopCmd := &cobra.Command{
		Use:   "stop",
		Short: "Stop the textanalyzer daemon (completely terminates the process)",
		RunE: func(cmd *cobra.Command, args []string) error {
			stdout := cmd.OutOrStdout()
			result, err := daemonctl.StopAndTerminate(cmd.Context(), ctx.configValue(), stopGracePeriod)
			if errors.Is(err, daemonctl.ErrDaemonNotRunning) {
				fmt.Fprintln(stdout, "Daemon is not running")
				return nil
			}
			if err != nil {
				return err
			}
			if result.StopAcknowledged {
				fmt.Fprintln(stdout, "Stop request acknowledged")
			}
			if result.Signalled && result.PID > 0 {
				fmt.Fprintf(stdout, "Sent SIGTERM to daemon process (pid %d)\n", result.PID)
			}
			fmt.Fprintln(stdout, "Daemon stopped")
			return nil
		},
	}

	var statusJSON bool
	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show daemon status and request counters",
		RunE: func(cmd *cobra.Command, args []string) error {
			stdout := cmd.OutOrStdout()
			running, status, err := daemonctl.ProcessInfo(cmd.Context(), ctx.socketPath())
			if err != nil {
				return err
			}
			if statusJSON {
				if status == nil {
					return writeJSON(cmd, map[string]bool{"running": false})
				}
				return writeJSON(cmd, status)
			}

			p := newStatusPrinter(stdout)
			p.section("Daemon Status")
			if !running || status == nil || !status.Running {
				p.line("Daemon", statusWarn, "Not running (run `textanalyzer start`)")
				return nil
			}

			p.line("Daemon", statusOK, fmt.Sprintf("Running (pid %d)", status.PID))
			if status.APIBind != "" {
				p.line("HTTP API", statusOK, status.APIBind)
			} else {
				p.line("HTTP API", statusInfo, "Disabled")
			}
			p.line("Socket", statusInfo, status.SocketPath)
			p.line("Uptime", statusInfo, formatUptime(status.UptimeSeconds))
			fmt.Fprintln(stdout)

			fmt.Fprintln(stdout, renderTable(tableSpec{
				Title:   "Requests",
				Headers: []string{"Operation", "Count"},
				Rows: [][]string{
					{"Analyze", strconv.FormatInt(status.Requests.Analyze, 10)},
					{"Similarity", strconv.FormatInt(status.Requests.Similarity, 10)},
					{"Failed", strconv.FormatInt(status.Requests.Failed, 10)},
				},
				Aligns: []columnAlignment{alignLeft, alignRight},
			}))
			return nil
		},
	}
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "Output as JSON")

	return []*cobra.Command{startCmd, stopCmd, statusCmd}
}

func newDaemonRunCommand(ctx *commandContext) *cobra.Command {
	var development bool
	cmd := &cobra.Command{
		Use:   "daemon",
		Short: "Run the textanalyzer daemon in the foreground",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			return daemonrun.Run(cmd.Context(), cfg, daemonrun.Options{
				LogLevel:    ctx.logLevel(),
				Development: development,
			})
		},
	}
	cmd.Flags().BoolVar(&development, "dev", false, "Include source locations in log output")
	return cmd
}

func daemonExecutable() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("resolve executable: %w", err)
	}
	return exe, nil
}

func daemonLaunchOptions(ctx *commandContext) daemonctl.LaunchOptions {
	return daemonctl.LaunchOptions{
		ConfigPath: ctx.configPath(),
		LogLevel:   ctx.logLevel(),
	}
}
