// Package daemonctl drives the daemon process from the CLI: detached launch,
// readiness polling over IPC, and shutdown with a pid-file SIGTERM fallback.
package daemonctl
