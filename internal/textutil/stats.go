package textutil

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// WordFrequency pairs a word with the number of times it occurs.
type WordFrequency struct {
	Word      string
	Frequency int
}

// WordLength pairs a word as it appeared in the text with the rune length of
// its punctuation-stripped form.
type WordLength struct {
	Word   string
	Length int
}

// Analysis holds the descriptive statistics of a single text.
type Analysis struct {
	CharCount        int
	WordCount        int
	SentenceCount    int
	MostFrequentWord *WordFrequency
	LongestWord      *WordLength
}

// Analyze computes descriptive statistics for text. It returns ErrInvalidInput
// when text is empty.
func Analyze(text string) (Analysis, error) {
	if text == "" {
		return Analysis{}, fmt.Errorf("%w: input text is required", ErrInvalidInput)
	}

	words := SplitWords(text)
	return Analysis{
		CharCount:        utf8.RuneCountInString(RemoveSpaceAndPunctuation(text)),
		WordCount:        len(words),
		SentenceCount:    strings.Count(text, string(sentenceMark)),
		MostFrequentWord: MostFrequentWord(words),
		LongestWord:      LongestWord(words),
	}, nil
}

// MostFrequentWord counts punctuation-stripped tokens case-insensitively and
// returns the one with the highest count. Counts accumulate under the casing
// seen first, and ties go to the word encountered first. Returns nil when
// words is empty.
func MostFrequentWord(words []string) *WordFrequency {
	index := make(map[string]int, len(words))
	counts := make([]WordFrequency, 0, len(words))
	for _, word := range words {
		cleaned := StripPunctuation(word)
		key := FoldKey(cleaned)
		if i, ok := index[key]; ok {
			counts[i].Frequency++
			continue
		}
		index[key] = len(counts)
		counts = append(counts, WordFrequency{Word: cleaned, Frequency: 1})
	}
	if len(counts) == 0 {
		return nil
	}

	best := counts[0]
	for _, candidate := range counts[1:] {
		if candidate.Frequency > best.Frequency {
			best = candidate
		}
	}
	return &best
}

// LongestWord returns the token whose punctuation-stripped form has the most
// runes, reporting the original token. Ties go to the first occurrence.
// Returns nil when words is empty.
func LongestWord(words []string) *WordLength {
	var best *WordLength
	for _, word := range words {
		length := utf8.RuneCountInString(StripPunctuation(word))
		if best == nil || length > best.Length {
			best = &WordLength{Word: word, Length: length}
		}
	}
	return best
}
