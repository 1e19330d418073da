package textutil

import (
	"fmt"
	"math"
)

// SimilarityResult is a vocabulary-overlap percentage in [0, 100] rounded to
// two decimal places.
type SimilarityResult struct {
	Similarity float64
}

// Similarity scores how much vocabulary two texts share. Each direction
// measures the share of one text's words found anywhere in the other; the
// score is the average of both directions, so Similarity(a, b) equals
// Similarity(b, a).
//
// Empty texts yield ErrInvalidInput. Texts with no words left after stripping
// punctuation yield ErrDegenerateInput.
func Similarity(text1, text2 string) (SimilarityResult, error) {
	if text1 == "" || text2 == "" {
		return SimilarityResult{}, fmt.Errorf("%w: both text1 and text2 must be provided", ErrInvalidInput)
	}

	words1 := similarityWords(text1)
	if len(words1) == 0 {
		return SimilarityResult{}, fmt.Errorf("%w: text1 contains no words", ErrDegenerateInput)
	}
	words2 := similarityWords(text2)
	if len(words2) == 0 {
		return SimilarityResult{}, fmt.Errorf("%w: text2 contains no words", ErrDegenerateInput)
	}

	pct1 := float64(CountCommonWords(words1, words2)) * 100.0 / float64(len(words1))
	pct2 := float64(CountCommonWords(words2, words1)) * 100.0 / float64(len(words2))
	return SimilarityResult{Similarity: roundPercent((pct1 + pct2) / 2)}, nil
}

// CountCommonWords counts the words of a that appear, compared
// case-insensitively, at least once in b. Duplicates in a count separately and
// a single match in b can satisfy any number of them.
func CountCommonWords(a, b []string) int {
	present := make(map[string]struct{}, len(b))
	for _, word := range b {
		present[FoldKey(word)] = struct{}{}
	}

	common := 0
	for _, word := range a {
		if _, ok := present[FoldKey(word)]; ok {
			common++
		}
	}
	return common
}

func similarityWords(text string) []string {
	return SplitWordsNonEmpty(StripPunctuation(Lower(text)))
}

// roundPercent rounds to two decimals, half to even.
func roundPercent(value float64) float64 {
	return math.RoundToEven(value*100) / 100
}
