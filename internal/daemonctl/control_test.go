package daemonctl_test

import (
	"context"
	"errors"
	"net"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"textanalyzer/internal/daemon"
	"textanalyzer/internal/daemonctl"
	"textanalyzer/internal/ipc"
	"textanalyzer/internal/logging"
	"textanalyzer/internal/testsupport"
)

func TestReadPID(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	if _, err := daemonctl.ReadPID(cfg.PIDPath()); err == nil {
		t.Fatal("expected error for missing pid file")
	}
	if err := os.WriteFile(cfg.PIDPath(), []byte("garbage\n"), 0o644); err != nil {
		t.Fatalf("write pid: %v", err)
	}
	if _, err := daemonctl.ReadPID(cfg.PIDPath()); err == nil {
		t.Fatal("expected error for invalid pid file")
	}
	if err := os.WriteFile(cfg.PIDPath(), []byte("4242\n"), 0o644); err != nil {
		t.Fatalf("write pid: %v", err)
	}
	pid, err := daemonctl.ReadPID(cfg.PIDPath())
	if err != nil || pid != 4242 {
		t.Fatalf("ReadPID = %d, %v", pid, err)
	}
}

func TestProcessAlive(t *testing.T) {
	if !daemonctl.ProcessAlive(os.Getpid()) {
		t.Fatal("expected current process to be alive")
	}
	if daemonctl.ProcessAlive(0) || daemonctl.ProcessAlive(-1) {
		t.Fatal("expected non-positive pids to be reported dead")
	}
}

func TestStopWithoutDaemon(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	_, err := daemonctl.StopAndTerminate(context.Background(), cfg, 100*time.Millisecond)
	if !errors.Is(err, daemonctl.ErrDaemonNotRunning) {
		t.Fatalf("expected ErrDaemonNotRunning, got %v", err)
	}

	running, status, err := daemonctl.ProcessInfo(context.Background(), cfg.SocketPath())
	if err != nil || running || status != nil {
		t.Fatalf("ProcessInfo = %v, %v, %v", running, status, err)
	}
}

func TestStopRefusesToSignalSelf(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	if err := os.WriteFile(cfg.PIDPath(), []byte(strconv.Itoa(os.Getpid())), 0o644); err != nil {
		t.Fatalf("write pid: %v", err)
	}
	_, err := daemonctl.StopAndTerminate(context.Background(), cfg, 100*time.Millisecond)
	if err == nil || !strings.Contains(err.Error(), "refusing") {
		t.Fatalf("expected refusal, got %v", err)
	}
}

func TestStopViaIPC(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithBind(""))
	d, err := daemon.New(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("daemon.New: %v", err)
	}
	t.Cleanup(func() { d.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	if err := d.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}

	var srv *ipc.Server
	srv, err = ipc.NewServer(ctx, cfg.SocketPath(), d, logging.NewNop(), ipc.WithShutdown(func() {
		srv.Close()
	}))
	if err != nil {
		if strings.Contains(err.Error(), "operation not permitted") {
			t.Skipf("skipping IPC server test: %v", err)
		}
		t.Fatalf("ipc.NewServer: %v", err)
	}
	srv.Serve()
	t.Cleanup(srv.Close)

	running, status, err := daemonctl.ProcessInfo(ctx, cfg.SocketPath())
	if err != nil || !running || status == nil || !status.Running {
		t.Fatalf("ProcessInfo = %v, %+v, %v", running, status, err)
	}

	result, err := daemonctl.StopAndTerminate(ctx, cfg, 5*time.Second)
	if err != nil {
		t.Fatalf("StopAndTerminate: %v", err)
	}
	if !result.StopAcknowledged || result.Signalled {
		t.Fatalf("unexpected stop result: %+v", result)
	}
	if result.PID != os.Getpid() {
		t.Fatalf("PID = %d, want %d", result.PID, os.Getpid())
	}
	if d.Status(ctx).Running {
		t.Fatal("expected daemon to be stopped")
	}
}

func TestWaitForClientTimesOut(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	if _, err := daemonctl.WaitForClient(context.Background(), cfg.SocketPath(), 300*time.Millisecond); err == nil {
		t.Fatal("expected timeout error")
	}
}

func TestLaunchRequiresExecutable(t *testing.T) {
	if err := daemonctl.Launch("  ", daemonctl.LaunchOptions{}); err == nil {
		t.Fatal("expected error for empty executable path")
	}
}

func TestDialErrorClassification(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	socket := cfg.SocketPath()

	_, err := ipc.Dial(socket)
	if !daemonctl.SocketMissing(err) || daemonctl.ConnectionRefused(err) {
		t.Fatalf("expected missing socket, got %v", err)
	}

	listener, err := net.Listen("unix", socket)
	if err != nil {
		t.Skipf("unix sockets unavailable: %v", err)
	}
	listener.(*net.UnixListener).SetUnlinkOnClose(false)
	_ = listener.Close()
	t.Cleanup(func() { _ = os.Remove(socket) })

	_, err = ipc.Dial(socket)
	if !daemonctl.ConnectionRefused(err) || daemonctl.SocketMissing(err) {
		t.Fatalf("expected refused connection, got %v", err)
	}
}
