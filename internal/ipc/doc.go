// Package ipc exposes the daemon over JSON-RPC Unix sockets and ships the
// matching client used by the CLI.
//
// It owns socket lifecycle management and the request/response DTOs for the
// TextAnalyzer service. The server embeds the daemon while the client bounds
// every call with a context so CLI commands fail fast when the daemon is
// offline. Rejected input crosses the wire as an error string and is mapped
// back to the textutil sentinels on the client side.
package ipc
