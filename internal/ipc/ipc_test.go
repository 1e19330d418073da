package ipc_test

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"textanalyzer/internal/daemon"
	"textanalyzer/internal/ipc"
	"textanalyzer/internal/logging"
	"textanalyzer/internal/testsupport"
	"textanalyzer/internal/textutil"
)

func startServer(t *testing.T, opts ...ipc.ServerOption) (*daemon.Daemon, *ipc.Server, *ipc.Client) {
	t.Helper()
	cfg := testsupport.NewConfig(t, testsupport.WithBind(""))
	logger := logging.NewNop()
	d, err := daemon.New(cfg, logger)
	if err != nil {
		t.Fatalf("daemon.New: %v", err)
	}
	t.Cleanup(func() {
		d.Close()
	})

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	if err := d.Start(ctx); err != nil {
		t.Fatalf("daemon.Start: %v", err)
	}

	srv, err := ipc.NewServer(ctx, cfg.SocketPath(), d, logger, opts...)
	if err != nil {
		if strings.Contains(err.Error(), "operation not permitted") {
			t.Skipf("skipping IPC server test: %v", err)
		}
		t.Fatalf("ipc.NewServer: %v", err)
	}
	srv.Serve()
	t.Cleanup(func() {
		srv.Close()
	})

	client, err := ipc.Dial(cfg.SocketPath())
	if err != nil {
		t.Fatalf("ipc.Dial: %v", err)
	}
	t.Cleanup(func() {
		client.Close()
	})
	return d, srv, client
}

func TestIPCServerClient(t *testing.T) {
	_, _, client := startServer(t)
	ctx := context.Background()

	status, err := client.Status(ctx)
	if err != nil {
		t.Fatalf("Status RPC failed: %v", err)
	}
	if !status.Running {
		t.Fatal("expected daemon to be running")
	}
	if status.PID == 0 {
		t.Fatal("expected pid in status")
	}

	analysis, err := client.Analyze(ctx, "The cat sat. The dog ran.")
	if err != nil {
		t.Fatalf("Analyze RPC failed: %v", err)
	}
	if analysis.Result.WordCount != 6 || analysis.Result.CharCount != 20 {
		t.Fatalf("unexpected analysis: %+v", analysis.Result)
	}
	if analysis.Result.MostFrequentWord == nil || analysis.Result.MostFrequentWord.Word != "The" {
		t.Fatalf("unexpected most frequent word: %+v", analysis.Result.MostFrequentWord)
	}

	similarity, err := client.Similarity(ctx, "the cat sat", "the cat ran")
	if err != nil {
		t.Fatalf("Similarity RPC failed: %v", err)
	}
	if similarity.Result.Similarity != 66.67 {
		t.Fatalf("Similarity = %v, want 66.67", similarity.Result.Similarity)
	}

	status, err = client.Status(ctx)
	if err != nil {
		t.Fatalf("Status RPC failed: %v", err)
	}
	if status.Requests.Analyze != 1 || status.Requests.Similarity != 1 {
		t.Fatalf("unexpected request counters: %+v", status.Requests)
	}
}

func TestIPCErrorsMapToSentinels(t *testing.T) {
	_, _, client := startServer(t)
	ctx := context.Background()

	if _, err := client.Analyze(ctx, ""); !errors.Is(err, textutil.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	_, err := client.Similarity(ctx, "?!", "hello")
	if !errors.Is(err, textutil.ErrDegenerateInput) {
		t.Fatalf("expected ErrDegenerateInput, got %v", err)
	}
	if !strings.Contains(err.Error(), "text1 contains no words") {
		t.Fatalf("expected detail to survive, got %q", err.Error())
	}
}

func TestIPCStopInvokesShutdown(t *testing.T) {
	var called atomic.Bool
	done := make(chan struct{})
	d, _, client := startServer(t, ipc.WithShutdown(func() {
		called.Store(true)
		close(done)
	}))

	resp, err := client.Stop(context.Background())
	if err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
	if !resp.Stopped {
		t.Fatalf("expected Stop to report stopped, got: %#v", resp)
	}
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("shutdown hook not invoked")
	}
	if !called.Load() {
		t.Fatal("expected shutdown hook")
	}
	if d.Status(context.Background()).Running {
		t.Fatal("expected daemon to be stopped")
	}
}

func TestClientCallHonorsContext(t *testing.T) {
	_, _, client := startServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := client.Status(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestServerCloseDisconnectsIdleClients(t *testing.T) {
	_, srv, client := startServer(t)
	if _, err := client.Status(context.Background()); err != nil {
		t.Fatalf("Status RPC failed: %v", err)
	}

	closed := make(chan struct{})
	go func() {
		srv.Close()
		close(closed)
	}()
	select {
	case <-closed:
	case <-time.After(5 * time.Second):
		t.Fatal("Close blocked while a client stayed connected")
	}

	if _, err := client.Status(context.Background()); err == nil {
		t.Fatal("expected call on closed server to fail")
	}
}

func TestDialMissingSocket(t *testing.T) {
	if _, err := ipc.Dial("/nonexistent/textanalyzer.sock"); err == nil {
		t.Fatal("expected dial error")
	}
}
