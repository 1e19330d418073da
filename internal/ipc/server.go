package ipc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"os"
	"sync"

	"textanalyzer/internal/api"
	"textanalyzer/internal/daemon"
	"textanalyzer/internal/logging"
)

// Server exposes the daemon via JSON-RPC over a Unix domain socket.
type Server struct {
	path     string
	logger   *slog.Logger
	listener net.Listener
	rpc      *rpc.Server
	wg       sync.WaitGroup

	mu     sync.Mutex
	conns  map[net.Conn]struct{}
	closed bool
}

// ServerOption customizes a Server.
type ServerOption func(*service)

// WithShutdown registers fn to run after a Stop request has been answered.
// The daemon runtime uses it to end the process.
func WithShutdown(fn func()) ServerOption {
	return func(s *service) {
		s.shutdown = fn
	}
}

// NewServer listens on path, replacing any stale socket file. ctx is passed
// to daemon operations served over the connection.
func NewServer(ctx context.Context, path string, d *daemon.Daemon, logger *slog.Logger, opts ...ServerOption) (*Server, error) {
	if d == nil {
		return nil, errors.New("ipc server requires daemon")
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	logger = logging.NewComponentLogger(logger, "ipc")

	svc := &service{daemon: d, logger: logger, ctx: ctx}
	for _, opt := range opts {
		opt(svc)
	}
	rpcServer := rpc.NewServer()
	if err := rpcServer.RegisterName(serviceName, svc); err != nil {
		return nil, fmt.Errorf("register rpc service: %w", err)
	}

	if err := os.RemoveAll(path); err != nil {
		return nil, fmt.Errorf("remove existing socket: %w", err)
	}
	listener, err := net.Listen("unix", path)
	if err != nil {
		return nil, fmt.Errorf("listen on socket: %w", err)
	}

	return &Server{
		path:     path,
		logger:   logger,
		listener: listener,
		rpc:      rpcServer,
		conns:    make(map[net.Conn]struct{}),
	}, nil
}

// Serve accepts connections in the background until Close.
func (s *Server) Serve() {
	s.logger.Debug("IPC server listening", logging.String("socket", s.path))
	s.wg.Add(1)
	go s.acceptLoop()
}

func (s *Server) acceptLoop() {
	defer s.wg.Done()
	for {
		conn, err := s.listener.Accept()
		if errors.Is(err, net.ErrClosed) {
			return
		}
		if err != nil {
			logging.WarnWithContext(s.logger, "accept failed", "ipc_accept_failed",
				logging.Error(err),
				logging.String(logging.FieldImpact, "a CLI request was dropped"),
				logging.String(logging.FieldErrorHint, "check socket permissions"))
			continue
		}
		if !s.track(conn) {
			_ = conn.Close()
			return
		}
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			defer s.untrack(conn)
			s.rpc.ServeCodec(jsonrpc.NewServerCodec(conn))
		}()
	}
}

// track registers conn unless the server is closing.
func (s *Server) track(conn net.Conn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	s.conns[conn] = struct{}{}
	return true
}

func (s *Server) untrack(conn net.Conn) {
	s.mu.Lock()
	delete(s.conns, conn)
	s.mu.Unlock()
}

// Close stops accepting connections, hangs up on connected clients, waits for
// in-flight calls to return, and removes the socket file.
func (s *Server) Close() {
	s.mu.Lock()
	s.closed = true
	for conn := range s.conns {
		_ = conn.Close()
	}
	s.mu.Unlock()

	_ = s.listener.Close()
	s.wg.Wait()
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		logging.WarnWithContext(s.logger, "failed to remove socket", "ipc_socket_cleanup_failed",
			logging.String("socket", s.path),
			logging.Error(err),
			logging.String(logging.FieldImpact, "next start replaces the stale socket"))
	}
}

type service struct {
	daemon   *daemon.Daemon
	logger   *slog.Logger
	ctx      context.Context
	shutdown func()
}

func (s *service) Stop(_ StopRequest, resp *StopResponse) error {
	s.logger.Debug("daemon stop requested")
	s.daemon.Stop()
	resp.Stopped = true
	s.logger.Info("daemon stopped via IPC",
		logging.String(logging.FieldEventType, "daemon_stop"))
	if s.shutdown != nil {
		// The reply is written after this method returns.
		go s.shutdown()
	}
	return nil
}

func (s *service) Status(_ StatusRequest, resp *StatusResponse) error {
	*resp = daemon.StatusPayload(s.daemon.Status(s.ctx))
	return nil
}

func (s *service) Analyze(req AnalyzeRequest, resp *AnalyzeResponse) error {
	result, err := s.daemon.Analyze(s.ctx, req.Text)
	if err != nil {
		return err
	}
	resp.Result = api.FromAnalysis(result)
	return nil
}

func (s *service) Similarity(req SimilarityRequest, resp *SimilarityResponse) error {
	result, err := s.daemon.Similarity(s.ctx, req.Text1, req.Text2)
	if err != nil {
		return err
	}
	resp.Result = api.FromSimilarity(result)
	return nil
}
