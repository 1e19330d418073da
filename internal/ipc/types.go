package ipc

import "textanalyzer/internal/api"

// serviceName is the JSON-RPC receiver name registered by the server.
const serviceName = "TextAnalyzer"

// StopRequest asks the daemon process to shut down.
type StopRequest struct{}

// StopResponse indicates stop result.
type StopResponse struct {
	Stopped bool `json:"stopped"`
}

// StatusRequest fetches daemon status.
type StatusRequest struct{}

// StatusResponse mirrors the HTTP status payload.
type StatusResponse = api.DaemonStatus

// AnalyzeRequest carries the text to analyze.
type AnalyzeRequest struct {
	Text string `json:"text"`
}

// AnalyzeResponse wraps the analysis result.
type AnalyzeResponse struct {
	Result api.TextAnalysisResult `json:"result"`
}

// SimilarityRequest carries the two texts to compare.
type SimilarityRequest struct {
	Text1 string `json:"text1"`
	Text2 string `json:"text2"`
}

// SimilarityResponse wraps the similarity result.
type SimilarityResponse struct {
	Result api.TextSimilarityResult `json:"result"`
}
