// Package logs reads the daemon's JSON log files for the CLI.
//
// Last returns the trailing lines of a file with bounded memory, Follow polls
// for appended lines until its context ends, and FormatLine renders a JSON
// record as a single console line. Callers supply contexts so follow-mode
// polling shuts down cleanly when the CLI exits.
package logs
