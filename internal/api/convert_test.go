package api

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"textanalyzer/internal/textutil"
)

func TestFromAnalysisCopiesFields(t *testing.T) {
	analysis, err := textutil.Analyze("The cat sat. The dog ran.")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	dto := FromAnalysis(analysis)
	if dto.CharCount != 20 || dto.WordCount != 6 || dto.SentenceCount != 2 {
		t.Fatalf("unexpected counts: %+v", dto)
	}
	if dto.MostFrequentWord == nil || *dto.MostFrequentWord != (WordFrequency{Word: "The", Frequency: 2}) {
		t.Fatalf("unexpected most frequent word: %+v", dto.MostFrequentWord)
	}
	if dto.LongestWord == nil || *dto.LongestWord != (WordLength{Word: "sat.", Length: 4}) {
		t.Fatalf("unexpected longest word: %+v", dto.LongestWord)
	}

	payload, err := json.Marshal(dto)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"charCount":20,"wordCount":6,"sentenceCount":2,"mostFrequentWord":{"word":"The","frequency":2},"longestWord":{"word":"sat.","length":4}}`
	if string(payload) != want {
		t.Fatalf("payload = %s, want %s", payload, want)
	}
}

func TestFromAnalysisEncodesMissingWordsAsNull(t *testing.T) {
	dto := FromAnalysis(textutil.Analysis{WordCount: 1})
	payload, err := json.Marshal(dto)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(payload), `"mostFrequentWord":null`) || !strings.Contains(string(payload), `"longestWord":null`) {
		t.Fatalf("expected null words, got %s", payload)
	}
}

func TestFromSimilarity(t *testing.T) {
	payload, err := json.Marshal(FromSimilarity(textutil.SimilarityResult{Similarity: 66.67}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(payload) != `{"similarity":66.67}` {
		t.Fatalf("unexpected payload %s", payload)
	}
}

func TestFormatTimestamp(t *testing.T) {
	if got := FormatTimestamp(time.Time{}); got != "" {
		t.Fatalf("expected empty string for zero time, got %q", got)
	}
	ts := time.Date(2024, 3, 1, 12, 30, 0, 5_000_000, time.FixedZone("x", 3600))
	if got := FormatTimestamp(ts); got != "2024-03-01T11:30:00.005Z" {
		t.Fatalf("FormatTimestamp = %q", got)
	}
}
