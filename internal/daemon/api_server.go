package daemon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"textanalyzer/internal/api"
	"textanalyzer/internal/config"
	"textanalyzer/internal/logging"
)

const (
	routeAnalyze      = "/api/textanalyzer/analyze"
	routeSimilarities = "/api/textanalyzer/similarities"
	routeStatus       = "/api/status"
	routeMetrics      = "/metrics"
	routeOther        = "other"

	requestIDHeader = "X-Request-ID"
)

var knownRoutes = map[string]struct{}{
	routeAnalyze:      {},
	routeSimilarities: {},
	routeStatus:       {},
	routeMetrics:      {},
}

type apiServer struct {
	bind         string
	maxBodyBytes int64
	logger       *slog.Logger
	daemon       *Daemon
	handler      http.Handler

	listener net.Listener
	server   *http.Server
}

func newAPIServer(cfg *config.Config, d *Daemon, logger *slog.Logger) *apiServer {
	if cfg == nil || d == nil {
		return nil
	}
	bind := trimmedBind(cfg)
	if bind == "" {
		return nil
	}

	srv := &apiServer{
		bind:         bind,
		maxBodyBytes: cfg.Server.MaxBodyBytes,
		logger:       logger,
		daemon:       d,
	}

	mux := http.NewServeMux()
	mux.HandleFunc(routeAnalyze, srv.handleAnalyze)
	mux.HandleFunc(routeSimilarities, srv.handleSimilarities)
	mux.HandleFunc(routeStatus, srv.handleStatus)
	if d.metrics != nil {
		mux.Handle(routeMetrics, d.metrics.handler())
	}
	mux.HandleFunc("/", srv.handleNotFound)
	srv.handler = srv.instrument(mux)

	srv.server = &http.Server{
		Handler:           srv.handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.ReadTimeout(),
		WriteTimeout:      cfg.WriteTimeout(),
		IdleTimeout:       60 * time.Second,
	}
	return srv
}

func (s *apiServer) start(ctx context.Context) error {
	if s == nil {
		return nil
	}
	listener, err := net.Listen("tcp", s.bind)
	if err != nil {
		return fmt.Errorf("api listen: %w", err)
	}
	s.listener = listener

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.ErrorWithContext(s.log(), "api server error", "api_server_failed",
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "check that server.bind is reachable"),
			)
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}()

	s.log().Info("api server listening",
		logging.String("address", listener.Addr().String()),
		logging.String(logging.FieldEventType, "api_server_listening"),
	)
	return nil
}

func (s *apiServer) stop() {
	if s == nil {
		return
	}
	if s.server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}
	if s.listener != nil {
		_ = s.listener.Close()
		s.listener = nil
	}
}

// address returns the bound listener address once started, else the configured bind.
func (s *apiServer) address() string {
	if s == nil {
		return ""
	}
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.bind
}

// instrument lower-cases the request path, assigns a request ID, and records
// per-route metrics around next.
func (s *apiServer) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		r.URL.Path = strings.ToLower(r.URL.Path)

		requestID := strings.TrimSpace(r.Header.Get(requestIDHeader))
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, requestID)
		r = r.WithContext(logging.WithRequestID(r.Context(), requestID))

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		route := r.URL.Path
		if _, ok := knownRoutes[route]; !ok {
			route = routeOther
		}
		elapsed := time.Since(start)
		s.daemon.metrics.observeRequest(route, rec.status, elapsed)
		logging.WithContext(r.Context(), s.log()).Debug("request served",
			logging.String(logging.FieldRoute, route),
			logging.String("method", r.Method),
			logging.Int("status", rec.status),
			logging.Duration("elapsed", elapsed),
		)
	})
}

func (s *apiServer) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var input api.TextAnalysisInput
	if !s.decodeBody(w, r, &input) {
		return
	}
	result, err := s.daemon.Analyze(r.Context(), input.Text)
	if err != nil {
		s.writeOperationError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, api.FromAnalysis(result))
}

func (s *apiServer) handleSimilarities(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var input api.TextSimilarityInput
	if !s.decodeBody(w, r, &input) {
		return
	}
	result, err := s.daemon.Similarity(r.Context(), input.Text1, input.Text2)
	if err != nil {
		s.writeOperationError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, api.FromSimilarity(result))
}

func (s *apiServer) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	s.writeJSON(w, http.StatusOK, StatusPayload(s.daemon.Status(r.Context())))
}

func (s *apiServer) handleNotFound(w http.ResponseWriter, _ *http.Request) {
	s.writeError(w, http.StatusNotFound, "not found")
}

// decodeBody reads a JSON body bounded by maxBodyBytes. It writes the error
// response itself and reports whether decoding succeeded.
func (s *apiServer) decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	body := r.Body
	if s.maxBodyBytes > 0 {
		body = http.MaxBytesReader(w, r.Body, s.maxBodyBytes)
	}
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit))
			return false
		}
		s.writeError(w, http.StatusBadRequest, "malformed request body")
		return false
	}
	return true
}

func (s *apiServer) writeOperationError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case isClientError(err):
		s.writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		s.writeError(w, http.StatusServiceUnavailable, "request cancelled")
	default:
		logging.ErrorWithContext(logging.WithContext(r.Context(), s.log()), "request failed", "request_failed",
			logging.String(logging.FieldRoute, r.URL.Path),
			logging.Error(err),
		)
		s.writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func (s *apiServer) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log().Error("failed to encode response", logging.Error(err))
	}
}

func (s *apiServer) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, api.ErrorResponse{Error: message})
}

func (s *apiServer) log() *slog.Logger {
	if s.logger != nil {
		return logging.NewComponentLogger(s.logger, "api-server")
	}
	return logging.NewNop()
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

// StatusPayload converts a daemon status to its API representation.
func StatusPayload(status Status) api.DaemonStatus {
	return api.DaemonStatus{
		Running:       status.Running,
		PID:           status.PID,
		LockFilePath:  status.LockFilePath,
		SocketPath:    status.SocketPath,
		APIBind:       status.APIBind,
		StartedAt:     api.FormatTimestamp(status.StartedAt),
		UptimeSeconds: int64(status.Uptime / time.Second),
		Requests: api.RequestCounters{
			Analyze:    status.Requests.Analyze,
			Similarity: status.Requests.Similarity,
			Failed:     status.Requests.Failed,
		},
	}
}
