package daemon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gofrs/flock"

	"textanalyzer/internal/config"
	"textanalyzer/internal/logging"
	"textanalyzer/internal/textutil"
)

const (
	operationAnalyze    = "analyze"
	operationSimilarity = "similarity"
)

// Daemon serves text analysis requests and enforces single-instance execution.
type Daemon struct {
	cfg     *config.Config
	logger  *slog.Logger
	metrics *metrics
	api     *apiServer

	lockPath string
	lock     *flock.Flock

	running atomic.Bool
	mu      sync.Mutex
	started time.Time
	cancel  context.CancelFunc

	analyzed atomic.Int64
	compared atomic.Int64
	failed   atomic.Int64
}

// RequestStats counts operations served since the daemon started.
type RequestStats struct {
	Analyze    int64
	Similarity int64
	Failed     int64
}

// Status represents daemon runtime information.
type Status struct {
	Running      bool
	PID          int
	LockFilePath string
	SocketPath   string
	APIBind      string
	StartedAt    time.Time
	Uptime       time.Duration
	Requests     RequestStats
}

// New constructs a daemon. The HTTP API is created when cfg.Server.Bind is set.
func New(cfg *config.Config, logger *slog.Logger) (*Daemon, error) {
	if cfg == nil {
		return nil, errors.New("daemon requires config")
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	lockPath := cfg.LockPath()
	d := &Daemon{
		cfg:      cfg,
		logger:   logging.NewComponentLogger(logger, "daemon"),
		lockPath: lockPath,
		lock:     flock.New(lockPath),
	}
	if cfg.Metrics.Enabled {
		d.metrics = newMetrics()
	}
	d.api = newAPIServer(cfg, d, logger)
	return d, nil
}

// Start acquires the daemon lock and starts the HTTP API when configured.
func (d *Daemon) Start(ctx context.Context) error {
	if d.running.Load() {
		return errors.New("daemon already running")
	}

	ok, err := d.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return errors.New("another textanalyzer daemon instance is already running")
	}

	runCtx, cancel := context.WithCancel(ctx)
	if err := d.api.start(runCtx); err != nil {
		cancel()
		_ = d.lock.Unlock()
		return fmt.Errorf("start api server: %w", err)
	}

	d.mu.Lock()
	d.cancel = cancel
	d.started = time.Now()
	d.mu.Unlock()

	d.running.Store(true)
	d.logger.Info("textanalyzer daemon started",
		logging.String("lock", d.lockPath),
		logging.String("api_bind", d.api.address()),
		logging.String(logging.FieldEventType, "daemon_started"),
	)
	return nil
}

// Stop shuts down the HTTP API and releases the daemon lock.
func (d *Daemon) Stop() {
	if !d.running.Load() {
		return
	}

	d.mu.Lock()
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.mu.Unlock()

	d.api.stop()
	if err := d.lock.Unlock(); err != nil {
		logging.WarnWithContext(d.logger, "failed to release daemon lock", "daemon_lock_release_failed",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "remove the lock file if no daemon is running"),
			logging.String(logging.FieldImpact, "next start may report another instance"),
		)
	}
	d.running.Store(false)
	d.logger.Info("textanalyzer daemon stopped", logging.String(logging.FieldEventType, "daemon_stopped"))
}

// Close releases resources held by the daemon.
func (d *Daemon) Close() error {
	d.Stop()
	return nil
}

// Status returns the current daemon status.
func (d *Daemon) Status(context.Context) Status {
	d.mu.Lock()
	started := d.started
	d.mu.Unlock()

	running := d.running.Load()
	status := Status{
		Running:      running,
		PID:          os.Getpid(),
		LockFilePath: d.lockPath,
		SocketPath:   d.cfg.SocketPath(),
		APIBind:      d.api.address(),
		Requests: RequestStats{
			Analyze:    d.analyzed.Load(),
			Similarity: d.compared.Load(),
			Failed:     d.failed.Load(),
		},
	}
	if running && !started.IsZero() {
		status.StartedAt = started
		status.Uptime = time.Since(started)
	}
	return status
}

// Analyze computes text statistics for text.
func (d *Daemon) Analyze(ctx context.Context, text string) (textutil.Analysis, error) {
	if err := ctx.Err(); err != nil {
		return textutil.Analysis{}, err
	}
	result, err := textutil.Analyze(text)
	d.record(ctx, operationAnalyze, err, logging.Int("text_length", len(text)))
	if err != nil {
		return textutil.Analysis{}, err
	}
	return result, nil
}

// Similarity scores the shared vocabulary of text1 and text2.
func (d *Daemon) Similarity(ctx context.Context, text1, text2 string) (textutil.SimilarityResult, error) {
	if err := ctx.Err(); err != nil {
		return textutil.SimilarityResult{}, err
	}
	result, err := textutil.Similarity(text1, text2)
	d.record(ctx, operationSimilarity, err,
		logging.Int("text1_length", len(text1)),
		logging.Int("text2_length", len(text2)),
	)
	if err != nil {
		return textutil.SimilarityResult{}, err
	}
	return result, nil
}

func (d *Daemon) record(ctx context.Context, operation string, err error, attrs ...logging.Attr) {
	d.metrics.observeOperation(operation, err)
	logger := logging.WithContext(ctx, d.logger)
	if err != nil {
		d.failed.Add(1)
		attrs = append(attrs,
			logging.String("operation", operation),
			logging.Error(err),
			logging.String(logging.FieldEventType, operation+"_rejected"),
		)
		logger.Debug("request rejected", logging.Args(attrs...)...)
		return
	}
	switch operation {
	case operationAnalyze:
		d.analyzed.Add(1)
	case operationSimilarity:
		d.compared.Add(1)
	}
	attrs = append(attrs,
		logging.String("operation", operation),
		logging.String(logging.FieldEventType, operation+"_completed"),
	)
	logger.Debug("request completed", logging.Args(attrs...)...)
}

// isClientError reports whether err stems from invalid caller input.
func isClientError(err error) bool {
	return errors.Is(err, textutil.ErrInvalidInput) || errors.Is(err, textutil.ErrDegenerateInput)
}

func trimmedBind(cfg *config.Config) string {
	if cfg == nil {
		return ""
	}
	return strings.TrimSpace(cfg.Server.Bind)
}
