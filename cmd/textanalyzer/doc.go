// Package main hosts the textanalyzer CLI entrypoint and command graph.
//
// The Cobra-based command tree runs text analysis and similarity scoring
// either in-process or against the daemon over IPC, manages the daemon
// process, and scaffolds configuration. It centralizes configuration
// resolution and socket discovery so subcommands can focus on output.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
