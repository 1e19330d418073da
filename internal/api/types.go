package api

// dateTimeFormat is used for RFC3339 timestamps in API payloads.
const dateTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// TextAnalysisInput is the request body for text analysis.
type TextAnalysisInput struct {
	Text string `json:"text"`
}

// TextSimilarityInput is the request body for similarity scoring.
type TextSimilarityInput struct {
	Text1 string `json:"text1"`
	Text2 string `json:"text2"`
}

// WordFrequency pairs a word with its occurrence count.
type WordFrequency struct {
	Word      string `json:"word"`
	Frequency int    `json:"frequency"`
}

// WordLength pairs a word with its punctuation-stripped length.
type WordLength struct {
	Word   string `json:"word"`
	Length int    `json:"length"`
}

// TextAnalysisResult summarizes a single text.
type TextAnalysisResult struct {
	CharCount        int            `json:"charCount"`
	WordCount        int            `json:"wordCount"`
	SentenceCount    int            `json:"sentenceCount"`
	MostFrequentWord *WordFrequency `json:"mostFrequentWord"`
	LongestWord      *WordLength    `json:"longestWord"`
}

// TextSimilarityResult carries the similarity percentage rounded to two decimals.
type TextSimilarityResult struct {
	Similarity float64 `json:"similarity"`
}

// ErrorResponse is returned by the HTTP API on failure.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RequestCounters tracks served requests by outcome.
type RequestCounters struct {
	Analyze    int64 `json:"analyze"`
	Similarity int64 `json:"similarity"`
	Failed     int64 `json:"failed"`
}

// DaemonStatus aggregates daemon runtime information for API consumers.
type DaemonStatus struct {
	Running       bool            `json:"running"`
	PID           int             `json:"pid"`
	LockFilePath  string          `json:"lockFilePath"`
	SocketPath    string          `json:"socketPath"`
	APIBind       string          `json:"apiBind,omitempty"`
	StartedAt     string          `json:"startedAt,omitempty"`
	UptimeSeconds int64           `json:"uptimeSeconds"`
	Requests      RequestCounters `json:"requests"`
}
