package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"textanalyzer/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// The run directory lives under a short os.MkdirTemp path so unix socket
// paths stay below the platform length limit.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	runDir, err := os.MkdirTemp("", "ta-run-")
	if err != nil {
		t.Fatalf("create run dir: %v", err)
	}
	t.Cleanup(func() {
		_ = os.RemoveAll(runDir)
	})

	cfgVal := config.Default()
	cfgVal.Paths.RunDir = runDir
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Server.Bind = "127.0.0.1:0"

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	if err := builder.cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	return builder.cfg
}

// WithBind overrides the HTTP bind address. An empty value disables the API.
func WithBind(bind string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Server.Bind = bind
	}
}

// WithMaxBodyBytes overrides the request body limit.
func WithMaxBodyBytes(limit int64) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Server.MaxBodyBytes = limit
	}
}

// WithMetrics toggles the Prometheus endpoint.
func WithMetrics(enabled bool) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Metrics.Enabled = enabled
	}
}
