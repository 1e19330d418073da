package daemonctl

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"syscall"
	"time"

	"golang.org/x/sys/unix"

	"textanalyzer/internal/config"
	"textanalyzer/internal/ipc"
)

const pollInterval = 200 * time.Millisecond

// ErrDaemonNotRunning indicates daemon IPC is unavailable.
var ErrDaemonNotRunning = errors.New("daemon not running")

// LaunchOptions controls daemon process launch behavior.
type LaunchOptions struct {
	ConfigPath string
	LogLevel   string
}

type StartState string

const (
	StartStateStarted        StartState = "started"
	StartStateAlreadyRunning StartState = "already_running"
)

// StartResult captures daemon start orchestration state.
type StartResult struct {
	State StartState
	PID   int
}

// StopResult captures daemon stop/termination outcome.
type StopResult struct {
	StopAcknowledged bool
	Signalled        bool
	PID              int
}

// Launch starts a detached textanalyzer daemon process in its own session.
func Launch(executablePath string, opts LaunchOptions) error {
	if strings.TrimSpace(executablePath) == "" {
		return fmt.Errorf("resolve executable: executable path is empty")
	}

	args := []string{"daemon"}
	if cfg := strings.TrimSpace(opts.ConfigPath); cfg != "" {
		args = append(args, "--config", cfg)
	}
	if level := strings.TrimSpace(opts.LogLevel); level != "" {
		args = append(args, "--log-level", level)
	}

	proc := exec.Command(executablePath, args...)
	proc.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	if err := proc.Start(); err != nil {
		return fmt.Errorf("launch daemon: %w", err)
	}
	return proc.Process.Release()
}

// WaitForClient dials socketPath until it answers or timeout elapses.
func WaitForClient(ctx context.Context, socketPath string, timeout time.Duration) (*ipc.Client, error) {
	var client *ipc.Client
	err := poll(ctx, timeout, func() (bool, error) {
		c, err := ipc.Dial(socketPath)
		if err != nil {
			return false, err
		}
		client = c
		return true, nil
	})
	if err != nil {
		return nil, fmt.Errorf("daemon failed to start: %w", err)
	}
	return client, nil
}

// EnsureStarted launches the daemon unless one already answers on socketPath.
func EnsureStarted(ctx context.Context, socketPath, executablePath string, opts LaunchOptions, waitTimeout time.Duration) (StartResult, error) {
	state := StartStateAlreadyRunning
	client, err := ipc.Dial(socketPath)
	if err != nil {
		if launchErr := Launch(executablePath, opts); launchErr != nil {
			return StartResult{}, launchErr
		}
		client, err = WaitForClient(ctx, socketPath, waitTimeout)
		if err != nil {
			return StartResult{}, err
		}
		state = StartStateStarted
	}
	defer client.Close()

	result := StartResult{State: state}
	if status, statusErr := client.Status(ctx); statusErr == nil && status != nil {
		result.PID = status.PID
	}
	return result, nil
}

// WaitForShutdown waits until the socket stops answering or the daemon
// reports it is no longer running.
func WaitForShutdown(ctx context.Context, socketPath string, timeout time.Duration) error {
	err := poll(ctx, timeout, func() (bool, error) {
		client, err := ipc.Dial(socketPath)
		if err != nil {
			return isDaemonUnavailable(err), err
		}
		defer client.Close()
		status, err := client.Status(ctx)
		if err != nil {
			return false, err
		}
		if status.Running {
			return false, errors.New("daemon still running")
		}
		return true, nil
	})
	if err != nil {
		return fmt.Errorf("daemon did not stop: %w", err)
	}
	return nil
}

// ProcessInfo returns whether daemon IPC is reachable and the daemon status when available.
func ProcessInfo(ctx context.Context, socketPath string) (bool, *ipc.StatusResponse, error) {
	client, err := ipc.Dial(socketPath)
	if err != nil {
		if isDaemonUnavailable(err) {
			return false, nil, nil
		}
		return false, nil, err
	}
	defer client.Close()
	status, statusErr := client.Status(ctx)
	if statusErr != nil {
		return true, nil, statusErr
	}
	return true, status, nil
}

// StopAndTerminate requests daemon stop over IPC and falls back to SIGTERM
// via the pid file when the process is still alive after gracePeriod.
func StopAndTerminate(ctx context.Context, cfg *config.Config, gracePeriod time.Duration) (StopResult, error) {
	if cfg == nil {
		return StopResult{}, errors.New("configuration not available")
	}
	socketPath := cfg.SocketPath()
	pidPath := cfg.PIDPath()

	client, err := ipc.Dial(socketPath)
	if err != nil {
		if !isDaemonUnavailable(err) {
			return StopResult{}, err
		}
		// Socket missing or stale: the pid file is the only remaining handle.
		pid, pidErr := ReadPID(pidPath)
		if pidErr != nil || !ProcessAlive(pid) {
			return StopResult{}, ErrDaemonNotRunning
		}
		if err := terminate(pid); err != nil {
			return StopResult{}, err
		}
		return StopResult{Signalled: true, PID: pid}, nil
	}

	result := StopResult{}
	if status, statusErr := client.Status(ctx); statusErr == nil && status != nil {
		result.PID = status.PID
	}
	resp, err := client.Stop(ctx)
	_ = client.Close()
	if err != nil {
		return StopResult{}, err
	}
	result.StopAcknowledged = resp != nil && resp.Stopped

	if err := WaitForShutdown(ctx, socketPath, gracePeriod); err == nil {
		return result, nil
	}

	pid, pidErr := ReadPID(pidPath)
	if pidErr != nil {
		pid = result.PID
	}
	if pid <= 0 || !ProcessAlive(pid) {
		return result, nil
	}
	if err := terminate(pid); err != nil {
		return result, fmt.Errorf("failed to stop daemon process: %w", err)
	}
	result.Signalled = true
	result.PID = pid
	return result, nil
}

// ReadPID parses the daemon pid file.
func ReadPID(pidPath string) (int, error) {
	data, err := os.ReadFile(pidPath)
	if err != nil {
		return 0, fmt.Errorf("read daemon pid file %q: %w", pidPath, err)
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || pid <= 0 {
		return 0, fmt.Errorf("invalid daemon pid file %q", pidPath)
	}
	return pid, nil
}

// ProcessAlive reports whether a process with pid exists.
func ProcessAlive(pid int) bool {
	if pid <= 0 {
		return false
	}
	err := unix.Kill(pid, 0)
	return err == nil || errors.Is(err, unix.EPERM)
}

func terminate(pid int) error {
	if pid == os.Getpid() {
		return fmt.Errorf("refusing to signal current process (pid %d)", pid)
	}
	if err := unix.Kill(pid, unix.SIGTERM); err != nil && !errors.Is(err, unix.ESRCH) {
		return fmt.Errorf("signal daemon process %d: %w", pid, err)
	}
	return nil
}

// SocketMissing reports whether a dial failed because the socket file is absent.
func SocketMissing(err error) bool {
	return errors.Is(err, os.ErrNotExist) || errors.Is(err, unix.ENOENT)
}

// ConnectionRefused reports whether a dial reached a socket nobody listens on.
func ConnectionRefused(err error) bool {
	return errors.Is(err, unix.ECONNREFUSED)
}

func isDaemonUnavailable(err error) bool {
	return SocketMissing(err) || ConnectionRefused(err)
}

// poll calls check every pollInterval until it reports done, ctx ends, or
// timeout elapses. On timeout the last error from check is returned.
func poll(ctx context.Context, timeout time.Duration, check func() (bool, error)) error {
	deadline := time.Now().Add(timeout)
	lastErr := errors.New("timed out")
	for time.Now().Before(deadline) {
		done, err := check()
		if done {
			return nil
		}
		if err != nil {
			lastErr = err
		}
		timer := time.NewTimer(pollInterval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
	return lastErr
}
