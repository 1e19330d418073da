// Package config loads, normalizes, and validates textanalyzer configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the TEXTANALYZER_BIND environment
// override. Always obtain settings through this package so the daemon and CLI
// agree on socket, lock, and log locations.
package config
