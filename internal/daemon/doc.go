// Package daemon coordinates the long-running textanalyzer process.
//
// It wires configuration, logging, and the HTTP API into a single lifecycle
// with flock-based locking to prevent multiple instances. The daemon owns the
// request counters and Prometheus collectors, and exposes Analyze and
// Similarity so the HTTP and IPC transports share one entry point into
// textutil.
//
// Keep orchestration logic here: text processing lives in textutil while the
// daemon focuses on startup, shutdown, and request accounting.
package daemon
