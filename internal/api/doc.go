// Package api defines wire-format types and converters for the IPC and HTTP
// API layer. It translates textutil results into transport-friendly DTOs so
// HTTP clients and the CLI can render them without coupling to internal types.
//
// # Key Types
//
// TextAnalysisInput/TextAnalysisResult: request and response bodies for the
// analyze route.
//
// TextSimilarityInput/TextSimilarityResult: request and response bodies for
// the similarities route.
//
// DaemonStatus: running state, process and path details, and request counters.
//
// # Design Notes
//
// DTOs use camelCase JSON tags. Absent most-frequent or longest words encode
// as null rather than an empty object. Timestamps use RFC3339 with
// milliseconds.
package api
