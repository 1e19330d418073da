package api

import (
	"time"

	"textanalyzer/internal/textutil"
)

// FromAnalysis converts a textutil analysis to its API representation.
func FromAnalysis(a textutil.Analysis) TextAnalysisResult {
	dto := TextAnalysisResult{
		CharCount:     a.CharCount,
		WordCount:     a.WordCount,
		SentenceCount: a.SentenceCount,
	}
	if a.MostFrequentWord != nil {
		dto.MostFrequentWord = &WordFrequency{
			Word:      a.MostFrequentWord.Word,
			Frequency: a.MostFrequentWord.Frequency,
		}
	}
	if a.LongestWord != nil {
		dto.LongestWord = &WordLength{
			Word:   a.LongestWord.Word,
			Length: a.LongestWord.Length,
		}
	}
	return dto
}

// FromSimilarity converts a textutil similarity result to its API representation.
func FromSimilarity(r textutil.SimilarityResult) TextSimilarityResult {
	return TextSimilarityResult{Similarity: r.Similarity}
}

// FormatTimestamp renders t in the API timestamp layout. Zero times render empty.
func FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(dateTimeFormat)
}
